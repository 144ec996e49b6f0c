package canvas

import (
	"github.com/gogpu/glance"
	"github.com/gogpu/glance/text"
)

// Text draws str at (x, y) positioned by anchor. size is the logical font
// size in pixels. The returned extent is in logical pixels.
func (c *Canvas) Text(str string, x, y float64, size int, bold bool, col glance.Color, anchor text.Anchor) text.Extent {
	if str == "" || size <= 0 {
		return text.Extent{}
	}
	ext := c.fonts.Draw(c.img, str, c.px(x), c.px(y), size*c.scale, bold, col, anchor)
	return c.logical(ext)
}

// MeasureText returns the logical extent of str at size.
func (c *Canvas) MeasureText(str string, size int, bold bool) text.Extent {
	if str == "" || size <= 0 {
		return text.Extent{}
	}
	return c.logical(c.fonts.Measure(str, size*c.scale, bold))
}

// FitText returns the largest size in [minSize, maxSize] at which str fits
// a w x h logical box.
func (c *Canvas) FitText(str string, w, h float64, minSize, maxSize int, bold bool) int {
	return c.fonts.Fit(str, c.px(w), c.px(h), minSize*c.scale, maxSize*c.scale, bold) / c.scale
}

// TruncateText shortens str to fit maxWidth logical pixels at size.
func (c *Canvas) TruncateText(str string, maxWidth float64, size int, bold bool) string {
	return c.fonts.Truncate(str, c.px(maxWidth), size*c.scale, bold)
}

func (c *Canvas) logical(e text.Extent) text.Extent {
	s := float64(c.scale)
	return text.Extent{Width: e.Width / s, Ascent: e.Ascent / s, Descent: e.Descent / s}
}
