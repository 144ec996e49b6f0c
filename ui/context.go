package ui

import (
	"math"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/canvas"
	"github.com/gogpu/glance/theme"
)

// FontSize is a relative font size class. The pixel size is derived from
// the reference height: the height of the nearest enclosing Panel, or of
// the whole frame.
type FontSize uint8

const (
	// Legacy classes scale a base size defined for a 120 px reference.
	Regular FontSize = iota
	Tiny
	Small
	Medium
	Large
	XLarge
	Huge

	// Semantic classes are a fixed fraction of the reference height.
	Primary
	Secondary
	Label
	Title
)

// Font size limits in pixels.
const (
	MinFontPx = 7
	MaxFontPx = 96

	legacyReference = 120.0
	minLegacyScale  = 0.6
	maxLegacyScale  = 2.0
)

var legacyBase = [...]float64{
	Regular: 13,
	Tiny:    9,
	Small:   11,
	Medium:  16,
	Large:   22,
	XLarge:  32,
	Huge:    48,
}

var semanticRatio = map[FontSize]float64{
	Primary:   0.24,
	Secondary: 0.14,
	Label:     0.11,
	Title:     0.16,
}

var sizeNames = [...]string{
	Regular:   "regular",
	Tiny:      "tiny",
	Small:     "small",
	Medium:    "medium",
	Large:     "large",
	XLarge:    "xlarge",
	Huge:      "huge",
	Primary:   "primary",
	Secondary: "secondary",
	Label:     "label",
	Title:     "title",
}

// String returns the class name.
func (s FontSize) String() string {
	if int(s) < len(sizeNames) {
		return sizeNames[s]
	}
	return "regular"
}

// ParseFontSize returns the class called name and whether it exists.
func ParseFontSize(name string) (FontSize, bool) {
	for i, n := range sizeNames {
		if n == name {
			return FontSize(i), true
		}
	}
	return Regular, false
}

// FontPx returns the pixel size of class s for a reference height.
func FontPx(s FontSize, refHeight int) int {
	var px float64
	if r, ok := semanticRatio[s]; ok {
		px = float64(refHeight) * r
	} else {
		base := legacyBase[Regular]
		if int(s) < len(legacyBase) {
			base = legacyBase[s]
		}
		scale := min(max(float64(refHeight)/legacyReference, minLegacyScale), maxLegacyScale)
		px = base * scale
	}
	return min(max(int(math.Round(px)), MinFontPx), MaxFontPx)
}

// Observer is called for every node drawn, with the box it was given.
type Observer func(n Node, x, y, w, h int)

// Context carries the state shared by one render pass.
type Context struct {
	Canvas *canvas.Canvas
	Theme  theme.Theme

	refHeight int
	observer  Observer
}

// NewContext returns a context drawing on c with theme th. The reference
// height starts at the canvas height.
func NewContext(c *canvas.Canvas, th theme.Theme) *Context {
	return &Context{Canvas: c, Theme: th, refHeight: c.Height()}
}

// RefHeight returns the current reference height for font sizing.
func (ctx *Context) RefHeight() int { return ctx.refHeight }

// FontPx returns the pixel size of class s at the current reference height.
func (ctx *Context) FontPx(s FontSize) int {
	return FontPx(s, ctx.refHeight)
}

// withRef runs f with the reference height set to h.
func (ctx *Context) withRef(h int, f func()) {
	prev := ctx.refHeight
	ctx.refHeight = h
	f()
	ctx.refHeight = prev
}

func (ctx *Context) accent(c glance.Color) glance.Color {
	return c.Or(ctx.Theme.Accent(0))
}

func (ctx *Context) track(c glance.Color) glance.Color {
	return c.Or(glance.DarkGray)
}

func (ctx *Context) ink(c glance.Color, t Tone) glance.Color {
	if !c.IsZero() {
		return c
	}
	switch t {
	case ToneSecondary:
		return ctx.Theme.TextSecondary
	case ToneAccent:
		return ctx.Theme.Accent(0)
	case ToneSuccess:
		return ctx.Theme.Success
	case ToneError:
		return ctx.Theme.Error
	default:
		return ctx.Theme.TextPrimary
	}
}
