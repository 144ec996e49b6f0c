package canvas

import (
	"math"

	"github.com/srwiley/rasterx"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/curve"
)

// FillRect fills r with col.
func (c *Canvas) FillRect(r Rect, col glance.Color) {
	if r.Empty() {
		return
	}
	s := float64(c.scale)
	c.fill(col, func(p rasterx.Adder) {
		rasterx.AddRect(r.X*s, r.Y*s, r.MaxX()*s, r.MaxY()*s, 0, p)
	})
}

// StrokeRect strokes the outline of r, centered on its edges.
func (c *Canvas) StrokeRect(r Rect, width float64, col glance.Color) {
	if r.Empty() {
		return
	}
	s := float64(c.scale)
	c.stroke(col, width, rasterx.ButtCap, rasterx.Miter, func(p rasterx.Adder) {
		rasterx.AddRect(r.X*s, r.Y*s, r.MaxX()*s, r.MaxY()*s, 0, p)
	})
}

// FillRoundRect fills r with corners of the given radius. The radius is
// limited to half the shorter side.
func (c *Canvas) FillRoundRect(r Rect, radius float64, col glance.Color) {
	if r.Empty() {
		return
	}
	c.fill(col, func(p rasterx.Adder) { c.addRoundRect(p, r, radius) })
}

// StrokeRoundRect strokes the outline of a rounded rectangle.
func (c *Canvas) StrokeRoundRect(r Rect, radius, width float64, col glance.Color) {
	if r.Empty() {
		return
	}
	c.stroke(col, width, rasterx.ButtCap, rasterx.Round, func(p rasterx.Adder) { c.addRoundRect(p, r, radius) })
}

func (c *Canvas) addRoundRect(p rasterx.Adder, r Rect, radius float64) {
	s := float64(c.scale)
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		rasterx.AddRect(r.X*s, r.Y*s, r.MaxX()*s, r.MaxY()*s, 0, p)
		return
	}
	rasterx.AddRoundRect(r.X*s, r.Y*s, r.MaxX()*s, r.MaxY()*s, radius*s, radius*s, 0, rasterx.RoundGap, p)
}

// FillEllipse fills the ellipse inscribed in r.
func (c *Canvas) FillEllipse(r Rect, col glance.Color) {
	if r.Empty() {
		return
	}
	s := float64(c.scale)
	cx, cy := r.Center()
	c.fill(col, func(p rasterx.Adder) {
		rasterx.AddEllipse(cx*s, cy*s, r.W/2*s, r.H/2*s, 0, p)
	})
}

// StrokeEllipse strokes the ellipse inscribed in r.
func (c *Canvas) StrokeEllipse(r Rect, width float64, col glance.Color) {
	if r.Empty() {
		return
	}
	s := float64(c.scale)
	cx, cy := r.Center()
	c.stroke(col, width, rasterx.ButtCap, rasterx.Round, func(p rasterx.Adder) {
		rasterx.AddEllipse(cx*s, cy*s, r.W/2*s, r.H/2*s, 0, p)
	})
}

// FillCircle fills a circle.
func (c *Canvas) FillCircle(cx, cy, radius float64, col glance.Color) {
	c.FillEllipse(R(cx-radius, cy-radius, 2*radius, 2*radius), col)
}

// Arc strokes a circular arc. Angles are in degrees, measured clockwise
// from the positive x axis as seen on screen. Ends are rounded.
func (c *Canvas) Arc(cx, cy, radius, startDeg, endDeg, width float64, col glance.Color) {
	if radius <= 0 || endDeg == startDeg {
		return
	}
	a0, a1 := startDeg*math.Pi/180, endDeg*math.Pi/180
	c.stroke(col, width, rasterx.RoundCap, rasterx.Round, func(p rasterx.Adder) {
		c.addArc(p, cx, cy, radius, a0, a1, true)
		p.Stop(false)
	})
}

// Circle strokes a full circle.
func (c *Canvas) Circle(cx, cy, radius, width float64, col glance.Color) {
	if radius <= 0 {
		return
	}
	c.stroke(col, width, rasterx.RoundCap, rasterx.Round, func(p rasterx.Adder) {
		c.addArc(p, cx, cy, radius, 0, 2*math.Pi, true)
		p.Stop(true)
	})
}

// Line strokes a single segment with round caps.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col glance.Color) {
	c.Polyline([]curve.Point{curve.Pt(x0, y0), curve.Pt(x1, y1)}, width, col)
}

// Polyline strokes connected segments with round caps and joins.
func (c *Canvas) Polyline(pts []curve.Point, width float64, col glance.Color) {
	if len(pts) < 2 {
		return
	}
	c.stroke(col, width, rasterx.RoundCap, rasterx.Round, func(p rasterx.Adder) {
		last := c.pt(pts[0].X, pts[0].Y)
		p.Start(last)
		for _, q := range pts[1:] {
			// repeated points confuse the joiner
			if next := c.pt(q.X, q.Y); next != last {
				p.Line(next)
				last = next
			}
		}
		p.Stop(false)
	})
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(pts []curve.Point, col glance.Color) {
	if len(pts) < 3 {
		return
	}
	c.fill(col, func(p rasterx.Adder) {
		p.Start(c.pt(pts[0].X, pts[0].Y))
		for _, q := range pts[1:] {
			p.Line(c.pt(q.X, q.Y))
		}
		p.Stop(true)
	})
}

// StrokePolygon strokes the closed polygon through pts.
func (c *Canvas) StrokePolygon(pts []curve.Point, width float64, col glance.Color) {
	if len(pts) < 2 {
		return
	}
	c.stroke(col, width, rasterx.ButtCap, rasterx.Round, func(p rasterx.Adder) {
		p.Start(c.pt(pts[0].X, pts[0].Y))
		for _, q := range pts[1:] {
			p.Line(c.pt(q.X, q.Y))
		}
		p.Stop(true)
	})
}

// Scanlines blends every other logical row of r toward col with the given
// strength in [0, 1], the retro CRT effect.
func (c *Canvas) Scanlines(r Rect, strength float64, col glance.Color) {
	if r.Empty() || strength <= 0 {
		return
	}
	s := float64(c.scale)
	overlay := col.NRGBA(uint8(min(strength, 1) * 255))
	c.fill(overlay, func(p rasterx.Adder) {
		for y := math.Floor(r.Y) + 1; y < r.MaxY(); y += 2 {
			rasterx.AddRect(r.X*s, y*s, r.MaxX()*s, min(y+1, r.MaxY())*s, 0, p)
		}
	})
}
