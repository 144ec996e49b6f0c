package canvas

import (
	"math"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/curve"
)

// Chart geometry.
const (
	BarRadius       = 2.0
	ArcStartDeg     = 135.0
	ArcSweepDeg     = 270.0
	RingStartDeg    = -90.0
	SparklineWidth  = 2.0
	MiniBarMinH     = 2.0
	miniBarFill     = 0.9
	candleMargin    = 0.05
	candleGapFactor = 0.2
)

// Segment is one colored part of a segmented bar.
type Segment struct {
	Percent float64
	Color   glance.Color
}

// clampPercent limits p to [0, 100].
func clampPercent(p float64) float64 {
	return min(max(p, 0), 100)
}

// Bar draws a horizontal progress bar: a rounded background with a rounded
// fill covering percent of the width.
func (c *Canvas) Bar(r Rect, percent float64, col, bg glance.Color) {
	c.FillRoundRect(r, BarRadius, bg)
	if fw := math.Floor(r.W * clampPercent(percent) / 100); fw > 0 {
		c.FillRoundRect(R(r.X, r.Y, fw, r.H), BarRadius, col)
	}
}

// OutlineBar draws a bar whose background is only outlined, used by themes
// with inverted bars.
func (c *Canvas) OutlineBar(r Rect, percent float64, col, border glance.Color) {
	c.StrokeRoundRect(r, BarRadius, 1, border)
	if fw := math.Floor(r.W * clampPercent(percent) / 100); fw > 0 {
		c.FillRoundRect(R(r.X, r.Y, fw, r.H), BarRadius, col)
	}
}

// SegmentedBar draws consecutive colored segments over a rounded
// background. Segments past the right edge are cut off.
func (c *Canvas) SegmentedBar(r Rect, segs []Segment, bg glance.Color) {
	c.FillRoundRect(r, BarRadius, bg)
	x := r.X
	for _, s := range segs {
		w := math.Floor(r.W * clampPercent(s.Percent) / 100)
		if w <= 0 || x >= r.MaxX() {
			continue
		}
		c.FillRect(R(x, r.Y, min(w, r.MaxX()-x), r.H), s.Color)
		x += w
	}
}

// RingGauge draws a full background circle and a progress arc starting at
// the top and running clockwise.
func (c *Canvas) RingGauge(cx, cy, radius, percent, width float64, col, bg glance.Color) {
	c.Circle(cx, cy, radius, width, bg)
	p := clampPercent(percent)
	switch {
	case p >= 100:
		c.Circle(cx, cy, radius, width, col)
	case p > 0:
		c.Arc(cx, cy, radius, RingStartDeg, RingStartDeg+p/100*360, width, col)
	}
}

// ArcGauge draws a 270 degree gauge open at the bottom, inscribed in the
// square of side r.W at r's origin.
func (c *Canvas) ArcGauge(r Rect, percent, width float64, col, bg glance.Color) {
	cx, cy := r.X+r.W/2, r.Y+r.W/2
	radius := r.W / 2
	c.Arc(cx, cy, radius, ArcStartDeg, ArcStartDeg+ArcSweepDeg, width, bg)
	if p := clampPercent(percent); p > 0 {
		c.Arc(cx, cy, radius, ArcStartDeg, ArcStartDeg+p/100*ArcSweepDeg, width, col)
	}
}

// MiniBars draws a compact bar chart, newest value at the right edge.
// Values that do not fit are dropped from the left.
func (c *Canvas) MiniBars(r Rect, data []float64, barWidth, gap float64, col glance.Color) {
	if len(data) == 0 || r.Empty() || barWidth <= 0 {
		return
	}
	if n := int(r.W / (barWidth + gap)); len(data) > n {
		data = data[len(data)-n:]
	}
	if len(data) == 0 {
		return
	}

	hi := max(slicesMax(data), 0)
	if hi == 0 {
		hi = 1
	}
	lo := slicesMin(data)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for i := range data {
		v := data[len(data)-1-i]
		x := r.MaxX() - float64(i+1)*(barWidth+gap)
		if x < r.X {
			break
		}
		h := max(math.Floor((v-lo)/span*r.H*miniBarFill), MiniBarMinH)
		c.FillRect(R(x, r.MaxY()-h, barWidth, h), col)
	}
}

// Sparkline draws a line chart of data scaled to fill r. With fill set the
// area under the line is filled with a quarter-intensity version of col.
// With smooth set, series of three or more points are drawn through a
// Catmull-Rom spline.
func (c *Canvas) Sparkline(r Rect, data []float64, col glance.Color, fill, smooth bool) {
	if len(data) < 2 || r.Empty() {
		return
	}
	lo, _, span := curve.Normalize(data)

	pts := make([]curve.Point, len(data))
	for i, v := range data {
		pts[i] = curve.Pt(
			r.X+float64(i)/float64(len(data)-1)*r.W,
			r.MaxY()-(v-lo)/span*r.H,
		)
	}
	if smooth && len(pts) >= 3 {
		pts = curve.CatmullRom(pts, curve.SmoothCount(r.W))
	}

	if fill {
		area := make([]curve.Point, 0, len(pts)+2)
		area = append(area, curve.Pt(r.X, r.MaxY()))
		area = append(area, pts...)
		area = append(area, curve.Pt(r.MaxX(), r.MaxY()))
		c.FillPolygon(area, glance.Dim(col, 0.25))
	}
	c.Polyline(pts, SparklineWidth, col)
}

// Candles draws an OHLC chart filling r. Rising candles (close >= open)
// use up, falling ones down. The value range gets a 5% margin; a flat
// range is widened to one unit.
func (c *Canvas) Candles(r Rect, candles []curve.Candle, up, down glance.Color) {
	if len(candles) == 0 || r.Empty() {
		return
	}

	lo, hi := candles[0].Low, candles[0].High
	for _, cd := range candles[1:] {
		lo, hi = min(lo, cd.Low), max(hi, cd.High)
	}
	if hi == lo {
		lo, hi = lo-0.5, hi+0.5
	}
	margin := (hi - lo) * candleMargin
	lo, hi = lo-margin, hi+margin
	span := hi - lo

	slot := r.W / float64(len(candles))
	gap := max(1, math.Floor(slot*candleGapFactor))
	body := max(1, math.Floor(slot-gap))
	valueY := func(v float64) float64 {
		return r.MaxY() - math.Floor((v-lo)/span*r.H)
	}

	for i, cd := range candles {
		col := down
		if cd.Bullish() {
			col = up
		}
		x := r.X + math.Floor(float64(i)*slot) + math.Floor(gap/2)
		mid := x + math.Floor(body/2)

		top, bottom := valueY(max(cd.Open, cd.Close)), valueY(min(cd.Open, cd.Close))
		if bottom <= top {
			bottom = top + 1
		}
		c.Line(mid, valueY(cd.High), mid, valueY(cd.Low), 1, col)
		c.FillRect(R(x, top, body, bottom-top), col)
	}
}

func slicesMax(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		m = max(m, x)
	}
	return m
}

func slicesMin(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		m = min(m, x)
	}
	return m
}
