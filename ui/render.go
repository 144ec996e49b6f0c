package ui

import (
	"errors"
	"image"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/canvas"
	"github.com/gogpu/glance/text"
	"github.com/gogpu/glance/theme"
)

// ErrFrameSize is returned by Render for a frame without area.
var ErrFrameSize = errors.New("ui: frame width and height must be positive")

// Scanline overlay strength for themes that enable it.
const scanlineStrength = 0.25

// RenderOption configures a render pass.
type RenderOption func(*renderOptions)

type renderOptions struct {
	scale    int
	fonts    *text.Service
	theme    theme.Theme
	observer Observer
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		scale: canvas.DefaultScale,
		theme: theme.Lookup(theme.Default),
	}
}

// WithScale sets the supersampling factor.
func WithScale(s int) RenderOption {
	return func(o *renderOptions) {
		o.scale = s
	}
}

// WithFonts sets the font service. Without it the process default is used.
func WithFonts(s *text.Service) RenderOption {
	return func(o *renderOptions) {
		o.fonts = s
	}
}

// WithTheme sets the theme.
func WithTheme(t theme.Theme) RenderOption {
	return func(o *renderOptions) {
		o.theme = t
	}
}

// WithObserver installs a callback that sees the box of every drawn node.
func WithObserver(f Observer) RenderOption {
	return func(o *renderOptions) {
		o.observer = f
	}
}

// Render draws tree into a width x height frame over bg and returns the
// downsampled image. A zero bg uses the theme background.
func Render(tree Node, width, height int, bg glance.Color, opts ...RenderOption) (*image.RGBA, error) {
	img, _, err := RenderFrame(tree, width, height, bg, opts...)
	return img, err
}

// RenderFrame is Render that also returns the supersampled canvas.
func RenderFrame(tree Node, width, height int, bg glance.Color, opts ...RenderOption) (*image.RGBA, *canvas.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, ErrFrameSize
	}
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	copts := []canvas.Option{canvas.WithScale(o.scale)}
	if o.fonts != nil {
		copts = append(copts, canvas.WithFonts(o.fonts))
	}
	c := canvas.New(width, height, copts...)
	c.Clear(bg.Or(o.theme.Background))

	ctx := NewContext(c, o.theme)
	ctx.observer = o.observer
	Draw(ctx, tree, 0, 0, width, height)

	if o.theme.Scanlines {
		c.Scanlines(c.Bounds(), scanlineStrength, glance.Black)
	}
	return c.Downsample(), c, nil
}
