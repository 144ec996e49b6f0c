package canvas

import (
	"math"
	"slices"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/curve"
)

// iconFunc draws an icon into the square at (x, y) with side s.
type iconFunc func(c *Canvas, x, y, s float64, col glance.Color)

var icons = map[string]iconFunc{
	"cpu":     iconCPU,
	"memory":  iconMemory,
	"disk":    iconDisk,
	"temp":    iconTemp,
	"power":   iconBolt,
	"bolt":    iconBolt,
	"network": iconWifi,
	"wifi":    iconWifi,
	"home":    iconHome,
	"sun":     iconSun,
	"drop":    iconDrop,
	"clock":   iconClock,
	"lock":    iconLock,
	"light":   iconLight,
	"battery": iconBattery,
	"cloud":   iconCloud,
	"rain":    iconRain,
	"moon":    iconMoon,
	"wind":    iconWind,
	"pause":   iconPause,
	"play":    iconPlay,
	"dot":     iconDot,
}

// Icons returns the names of the built-in icons in sorted order.
func Icons() []string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HasIcon reports whether name is a built-in icon.
func HasIcon(name string) bool {
	_, ok := icons[name]
	return ok
}

// Icon draws the named icon with its top-left corner at (x, y) and side
// size. Unknown names draw a small outlined square.
func (c *Canvas) Icon(name string, x, y, size float64, col glance.Color) {
	if size <= 0 {
		return
	}
	if f, ok := icons[name]; ok {
		f(c, x, y, size, col)
		return
	}
	q := size / 4
	c.StrokeRect(R(x+q, y+q, size-2*q, size-2*q), iconLine(size), col)
}

// iconLine is the stroke width for an icon of side s.
func iconLine(s float64) float64 {
	return max(1, s/16)
}

func iconCPU(c *Canvas, x, y, s float64, col glance.Color) {
	q := s / 4
	lw := iconLine(s)
	c.StrokeRect(R(x+q, y+q, s-2*q, s-2*q), lw, col)
	for i := range 3 {
		px := x + q + float64(i)*q
		c.Line(px, y, px, y+q, lw, col)
		c.Line(px, y+s-q, px, y+s, lw, col)
		c.Line(x, px-x+y, x+q, px-x+y, lw, col)
		c.Line(x+s-q, px-x+y, x+s, px-x+y, lw, col)
	}
}

func iconMemory(c *Canvas, x, y, s float64, col glance.Color) {
	q := s / 4
	c.StrokeRect(R(x+s/8, y+q, s-s/4, s-2*q), iconLine(s), col)
	chip := s / 8
	for i := range 3 {
		cx := x + s/4 + float64(i)*(q+chip/2)
		c.FillRect(R(cx, y+q+chip, chip, s-2*q-2*chip), col)
	}
}

func iconDisk(c *Canvas, x, y, s float64, col glance.Color) {
	q := s / 4
	c.StrokeRoundRect(R(x+s/16, y+q, s-s/8, s-2*q), 2, iconLine(s), col)
	c.FillCircle(x+s-q, y+s/2, s/8, col)
}

func iconTemp(c *Canvas, x, y, s float64, col glance.Color) {
	cx := x + s/2
	lw := iconLine(s)
	bulb := s / 5
	c.StrokeRoundRect(R(cx-s/8, y+s/8, s/4, s-bulb*2-s/8), s/8, lw, col)
	c.FillCircle(cx, y+s-bulb-s/16, bulb, col)
	c.FillRect(R(cx-s/16, y+s/2, s/8, s/2-bulb), col)
}

func iconBolt(c *Canvas, x, y, s float64, col glance.Color) {
	h := s / 2
	u := s / 16
	c.FillPolygon([]curve.Point{
		curve.Pt(x+h+u, y),
		curve.Pt(x+2*u, y+h+u),
		curve.Pt(x+h-u, y+h+u),
		curve.Pt(x+h-3*u, y+s),
		curve.Pt(x+s-2*u, y+h-2*u),
		curve.Pt(x+h+u, y+h-2*u),
	}, col)
}

func iconWifi(c *Canvas, x, y, s float64, col glance.Color) {
	cx, base := x+s/2, y+s-s/6
	lw := iconLine(s) * 1.5
	for _, f := range []float64{0.75, 0.5, 0.25} {
		c.Arc(cx, base, s*f, 225, 315, lw, col)
	}
	c.FillCircle(cx, base, s/12, col)
}

func iconHome(c *Canvas, x, y, s float64, col glance.Color) {
	lw := iconLine(s)
	c.StrokePolygon([]curve.Point{
		curve.Pt(x+s/2, y+s/16),
		curve.Pt(x+s/16, y+s/2),
		curve.Pt(x+s-s/16, y+s/2),
	}, lw, col)
	c.StrokeRect(R(x+s/5, y+s/2, s-2*s/5, s/2-s/16), lw, col)
}

func iconSun(c *Canvas, x, y, s float64, col glance.Color) {
	cx, cy := x+s/2, y+s/2
	r := s / 4
	lw := iconLine(s)
	c.Circle(cx, cy, r, lw, col)
	for deg := 0; deg < 360; deg += 45 {
		a := float64(deg) * math.Pi / 180
		cos, sin := math.Cos(a), math.Sin(a)
		c.Line(cx+(r+s/8)*cos, cy+(r+s/8)*sin, cx+(r+s/4)*cos, cy+(r+s/4)*sin, lw, col)
	}
}

func iconDrop(c *Canvas, x, y, s float64, col glance.Color) {
	cx := x + s/2
	r := s / 3
	cy := y + s - r - s/16
	pts := []curve.Point{curve.Pt(cx, y+s/16)}
	// the lower half of the drop is a half circle
	for i := 0; i <= 16; i++ {
		a := -math.Pi/6 + float64(i)/16*(math.Pi+math.Pi/3)
		pts = append(pts, curve.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	c.FillPolygon(pts, col)
}

func iconClock(c *Canvas, x, y, s float64, col glance.Color) {
	cx, cy := x+s/2, y+s/2
	lw := iconLine(s)
	c.Circle(cx, cy, s/2-lw, lw, col)
	c.Line(cx, cy, cx, cy-s/3, lw, col)
	c.Line(cx, cy, cx+s/4, cy, lw, col)
}

func iconLock(c *Canvas, x, y, s float64, col glance.Color) {
	lw := iconLine(s)
	c.Arc(x+s/2, y+s/2-s/16, s/4, 180, 360, lw*1.5, col)
	c.FillRoundRect(R(x+s/6, y+s/2-s/16, s-s/3, s/2), 2, col)
}

func iconLight(c *Canvas, x, y, s float64, col glance.Color) {
	cx := x + s/2
	lw := iconLine(s)
	c.Circle(cx, y+s*0.4, s*0.3, lw, col)
	c.FillRect(R(cx-s/8, y+s*0.72, s/4, s/8), col)
	c.Line(cx-s/10, y+s-s/16, cx+s/10, y+s-s/16, lw, col)
}

func iconBattery(c *Canvas, x, y, s float64, col glance.Color) {
	lw := iconLine(s)
	body := R(x+s/16, y+s/4, s-s/4, s/2)
	c.StrokeRoundRect(body, 2, lw, col)
	c.FillRect(R(body.MaxX(), y+s*0.4, s/8, s/5), col)
	c.FillRect(body.Inset(lw*2), col)
}

func iconCloud(c *Canvas, x, y, s float64, col glance.Color) {
	base := y + s*0.75
	c.FillCircle(x+s*0.32, base-s*0.15, s*0.18, col)
	c.FillCircle(x+s*0.55, base-s*0.28, s*0.25, col)
	c.FillCircle(x+s*0.76, base-s*0.14, s*0.16, col)
	c.FillRect(R(x+s*0.32, base-s*0.15, s*0.44, s*0.15), col)
}

func iconDot(c *Canvas, x, y, s float64, col glance.Color) {
	c.FillCircle(x+s/2, y+s/2, s/2, col)
}

func iconRain(c *Canvas, x, y, s float64, col glance.Color) {
	iconCloud(c, x, y-s/6, s, col)
	lw := iconLine(s) * 1.5
	for i := range 3 {
		dx := x + s*0.3 + float64(i)*s*0.2
		c.Line(dx, y+s*0.68, dx-s/12, y+s*0.9, lw, col)
	}
}

func iconMoon(c *Canvas, x, y, s float64, col glance.Color) {
	// a thick arc open to the right reads as a crescent
	c.Arc(x+s/2, y+s/2, s*0.28, 60, 300, s/6, col)
}

func iconWind(c *Canvas, x, y, s float64, col glance.Color) {
	lw := iconLine(s) * 1.5
	for i, f := range []float64{0.8, 0.6, 0.7} {
		ly := y + s*0.3 + float64(i)*s*0.2
		c.Line(x+s/8, ly, x+s/8+s*f*0.75, ly, lw, col)
	}
}

func iconPause(c *Canvas, x, y, s float64, col glance.Color) {
	w := s / 5
	c.FillRect(R(x+s/2-w*1.5, y+s/6, w, s-s/3), col)
	c.FillRect(R(x+s/2+w/2, y+s/6, w, s-s/3), col)
}

func iconPlay(c *Canvas, x, y, s float64, col glance.Color) {
	c.FillPolygon([]curve.Point{
		curve.Pt(x+s/4, y+s/6),
		curve.Pt(x+s-s/5, y+s/2),
		curve.Pt(x+s/4, y+s-s/6),
	}, col)
}
