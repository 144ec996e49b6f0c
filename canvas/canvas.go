// Package canvas is a supersampled RGBA drawing surface.
//
// All coordinates passed to a Canvas are logical pixels. The backing image
// is Scale times larger in each dimension, and every primitive multiplies
// its coordinates by Scale before rasterization; Downsample produces the
// final frame. Fills and strokes are rasterized with rasterx, text goes
// through a text.Service.
//
//	c := canvas.New(240, 240, canvas.WithScale(2))
//	c.Clear(glance.Black)
//	c.FillRoundRect(canvas.R(8, 8, 224, 224), 8, glance.Panel)
//	c.Text("21.5°C", 120, 120, 32, true, glance.White, text.Centered)
//	img := c.Downsample()
//
// A Canvas is not safe for concurrent use.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/text"
)

// DefaultScale is the supersampling factor used when none is given.
const DefaultScale = 2

// Option configures a Canvas during creation.
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	scale int
	fonts *text.Service
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{scale: DefaultScale}
}

// WithScale sets the supersampling factor. Values below 1 are treated as 1.
func WithScale(s int) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithFonts sets the font service used for text. Without it the canvas
// uses text.Default().
func WithFonts(s *text.Service) Option {
	return func(o *options) {
		o.fonts = s
	}
}

// Rect is an axis-aligned box in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks r by d on every side. The result never has a negative size.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: max(0, r.W-2*d), H: max(0, r.H-2*d)}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Canvas is a supersampled drawing surface.
type Canvas struct {
	img           *image.RGBA
	width, height int
	scale         int
	fonts         *text.Service

	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// New creates a canvas of width x height logical pixels. Negative sizes
// are clamped to zero.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = text.Default()
	}
	s := max(o.scale, 1)
	width, height = max(width, 0), max(height, 0)

	img := image.NewRGBA(image.Rect(0, 0, width*s, height*s))
	pw, ph := img.Rect.Dx(), img.Rect.Dy()
	scanner := rasterx.NewScannerGV(pw, ph, img, img.Bounds())

	return &Canvas{
		img:     img,
		width:   width,
		height:  height,
		scale:   s,
		fonts:   o.fonts,
		filler:  rasterx.NewFiller(pw, ph, scanner),
		stroker: rasterx.NewStroker(pw, ph, scanner),
	}
}

// Width returns the logical width.
func (c *Canvas) Width() int { return c.width }

// Height returns the logical height.
func (c *Canvas) Height() int { return c.height }

// Scale returns the supersampling factor.
func (c *Canvas) Scale() int { return c.scale }

// Fonts returns the font service used for text.
func (c *Canvas) Fonts() *text.Service { return c.fonts }

// Image returns the supersampled backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the full logical canvas box.
func (c *Canvas) Bounds() Rect {
	return R(0, 0, float64(c.width), float64(c.height))
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col glance.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Downsample returns the canvas reduced to its logical size.
func (c *Canvas) Downsample() *image.RGBA {
	return Downsample(c.img, c.width, c.height)
}

// pt converts a logical point to a supersampled fixed point.
func (c *Canvas) pt(x, y float64) fixed.Point26_6 {
	s := float64(c.scale)
	return rasterx.ToFixedP(x*s, y*s)
}

// px converts a logical length to supersampled pixels.
func (c *Canvas) px(v float64) float64 {
	return v * float64(c.scale)
}

// fill rasterizes the path added by build with the non-zero rule.
func (c *Canvas) fill(col color.Color, build func(p rasterx.Adder)) {
	if c.img.Rect.Empty() {
		return
	}
	c.filler.Clear()
	c.filler.SetColor(col)
	build(c.filler)
	c.filler.Draw()
	c.filler.Clear()
}

// stroke rasterizes the outline of the path added by build.
func (c *Canvas) stroke(col color.Color, width float64, lineCap rasterx.CapFunc, join rasterx.JoinMode, build func(p rasterx.Adder)) {
	if c.img.Rect.Empty() || width <= 0 {
		return
	}
	c.stroker.Clear()
	c.stroker.SetStroke(fixed.Int26_6(c.px(width)*64), fixed.I(4), lineCap, nil, rasterx.RoundGap, join)
	c.stroker.SetColor(col)
	build(c.stroker)
	c.stroker.Draw()
	c.stroker.Clear()
}

// arcSteps returns how many line segments approximate an arc of sweep
// radians at radius logical pixels.
func (c *Canvas) arcSteps(radius, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * c.px(radius) / 2))
	return min(max(n, 4), 720)
}

// addArc appends an arc from angle a0 to a1 (radians, clockwise on screen)
// to p. If start is true the arc begins a new subpath.
func (c *Canvas) addArc(p rasterx.Adder, cx, cy, radius, a0, a1 float64, start bool) {
	n := c.arcSteps(radius, a1-a0)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		q := c.pt(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		if i == 0 && start {
			p.Start(q)
			continue
		}
		p.Line(q)
	}
}
