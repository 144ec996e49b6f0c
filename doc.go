// Package glance renders small status displays (about 240x240 pixels) for
// external display devices.
//
// # Overview
//
// A frame is described as a tree of visual components (package ui), laid out
// with a flex-lite algorithm, drawn onto a supersampled canvas (package
// canvas) and encoded as a size-bounded JPEG or a lossless PNG.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glance"
//	    "github.com/gogpu/glance/canvas"
//	    "github.com/gogpu/glance/ui"
//	)
//
//	tree := ui.Column{
//	    Gap: 4,
//	    Children: []ui.Node{
//	        ui.Text{Text: "75%", Size: ui.Primary, Bold: true},
//	        ui.Bar{Percent: 75, Color: glance.Cyan},
//	        ui.Text{Text: "CPU", Size: ui.Label, Tone: ui.ToneSecondary},
//	    },
//	}
//	img, err := ui.Render(tree, 240, 240, glance.Black)
//	if err != nil {
//	    return err
//	}
//	jpg, err := canvas.EncodeJPEG(img, canvas.WithMaxBytes(64<<10))
//
// # Architecture
//
// The module is organized into:
//   - glance: colors and the shared logger
//   - text/emoji: pictograph classification and segmentation
//   - text: font loading, fallback and mixed-run measurement
//   - curve: spline smoothing and OHLC aggregation
//   - canvas: supersampled drawing primitives and the frame encoder
//   - theme: immutable named themes
//   - ui: component tree, layout and the Render entry point
//   - widget, screen: mapping of sensor data to trees and slot layouts
//
// # Logging
//
// Logging is silent by default. See [SetLogger].
package glance
