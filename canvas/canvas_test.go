package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/curve"
	"github.com/gogpu/glance/text"
)

var (
	pureRed   = glance.RGB(255, 0, 0)
	pureGreen = glance.RGB(0, 255, 0)
)

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c := New(w, h, WithScale(2), WithFonts(text.NewService(text.WithSystemFonts(false))))
	c.Clear(glance.Black)
	return c
}

// inked counts pixels of the downsampled canvas inside r that differ from black.
func inked(c *Canvas, r image.Rectangle) int {
	img := c.Downsample()
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := img.RGBAAt(x, y)
			if p.R|p.G|p.B != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewClampsSizeAndScale(t *testing.T) {
	c := New(-5, 10, WithScale(0))
	if c.Width() != 0 || c.Height() != 10 || c.Scale() != 1 {
		t.Errorf("New(-5, 10, scale 0) = %dx%d@%d, want 0x10@1", c.Width(), c.Height(), c.Scale())
	}
	// drawing on an empty canvas is a no-op
	c.FillRect(R(0, 0, 5, 5), glance.White)

	c = New(30, 20, WithScale(3))
	if b := c.Image().Bounds(); b.Dx() != 90 || b.Dy() != 60 {
		t.Errorf("backing image = %v, want 90x60", b)
	}
	if got := c.Downsample().Bounds(); got.Dx() != 30 || got.Dy() != 20 {
		t.Errorf("Downsample() = %v, want 30x20", got)
	}
}

func TestRect(t *testing.T) {
	r := R(10, 20, 30, 40)
	if r.MaxX() != 40 || r.MaxY() != 60 {
		t.Errorf("Max = (%v, %v), want (40, 60)", r.MaxX(), r.MaxY())
	}
	if x, y := r.Center(); x != 25 || y != 40 {
		t.Errorf("Center() = (%v, %v), want (25, 40)", x, y)
	}
	if got := r.Inset(5); got != R(15, 25, 20, 30) {
		t.Errorf("Inset(5) = %+v", got)
	}
	if got := r.Inset(100); !got.Empty() || got.W != 0 || got.H != 0 {
		t.Errorf("Inset(100) = %+v, want empty", got)
	}
}

func TestFillRect(t *testing.T) {
	c := newTestCanvas(t, 40, 40)
	c.FillRect(R(10, 10, 20, 20), pureRed)
	img := c.Downsample()

	if p := img.RGBAAt(20, 20); p.R < 250 || p.G > 5 {
		t.Errorf("center pixel = %v, want red", p)
	}
	if p := img.RGBAAt(5, 5); p.R != 0 {
		t.Errorf("outside pixel = %v, want black", p)
	}
}

func TestShapesPaint(t *testing.T) {
	tests := []struct {
		name string
		draw func(c *Canvas)
	}{
		{"round rect", func(c *Canvas) { c.FillRoundRect(R(4, 4, 40, 40), 6, glance.White) }},
		{"stroke round rect", func(c *Canvas) { c.StrokeRoundRect(R(4, 4, 40, 40), 6, 2, glance.White) }},
		{"ellipse", func(c *Canvas) { c.FillEllipse(R(4, 4, 40, 30), glance.White) }},
		{"stroke ellipse", func(c *Canvas) { c.StrokeEllipse(R(4, 4, 40, 30), 2, glance.White) }},
		{"arc", func(c *Canvas) { c.Arc(24, 24, 16, 135, 405, 4, glance.White) }},
		{"circle", func(c *Canvas) { c.Circle(24, 24, 16, 3, glance.White) }},
		{"line", func(c *Canvas) { c.Line(2, 2, 40, 40, 2, glance.White) }},
		{"polygon", func(c *Canvas) {
			c.FillPolygon([]curve.Point{curve.Pt(4, 40), curve.Pt(24, 4), curve.Pt(44, 40)}, glance.White)
		}},
		{"stroke polygon", func(c *Canvas) {
			c.StrokePolygon([]curve.Point{curve.Pt(4, 40), curve.Pt(24, 4), curve.Pt(44, 40)}, 2, glance.White)
		}},
		{"bar", func(c *Canvas) { c.Bar(R(4, 20, 40, 8), 50, glance.Green, glance.DarkGray) }},
		{"ring", func(c *Canvas) { c.RingGauge(24, 24, 16, 75, 5, glance.Cyan, glance.DarkGray) }},
		{"arc gauge", func(c *Canvas) { c.ArcGauge(R(4, 4, 40, 40), 60, 6, glance.Cyan, glance.DarkGray) }},
		{"sparkline", func(c *Canvas) { c.Sparkline(R(4, 4, 40, 40), []float64{1, 5, 2, 8, 3}, glance.Cyan, true, true) }},
		{"mini bars", func(c *Canvas) { c.MiniBars(R(4, 4, 40, 40), []float64{1, 2, 3}, 3, 1, glance.Cyan) }},
		{"icon", func(c *Canvas) { c.Icon("cpu", 8, 8, 32, glance.White) }},
		{"unknown icon", func(c *Canvas) { c.Icon("no-such-icon", 8, 8, 32, glance.White) }},
		{"text", func(c *Canvas) { c.Text("Hi", 24, 24, 16, true, glance.White, text.Centered) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 48, 48)
			tt.draw(c)
			if n := inked(c, image.Rect(0, 0, 48, 48)); n == 0 {
				t.Error("nothing was drawn")
			}
		})
	}
}

func TestEmptyInputsDrawNothing(t *testing.T) {
	tests := []struct {
		name string
		draw func(c *Canvas)
	}{
		{"empty rect", func(c *Canvas) { c.FillRect(R(4, 4, 0, 10), glance.White) }},
		{"zero radius arc", func(c *Canvas) { c.Arc(10, 10, 0, 0, 90, 2, glance.White) }},
		{"single point sparkline", func(c *Canvas) { c.Sparkline(R(0, 0, 20, 20), []float64{4}, glance.White, true, true) }},
		{"no candles", func(c *Canvas) { c.Candles(R(0, 0, 20, 20), nil, glance.Green, glance.Red) }},
		{"no bars", func(c *Canvas) { c.MiniBars(R(0, 0, 20, 20), nil, 3, 1, glance.White) }},
		{"empty text", func(c *Canvas) { c.Text("", 10, 10, 12, false, glance.White, text.Centered) }},
		{"zero width line", func(c *Canvas) { c.Line(0, 0, 10, 10, 0, glance.White) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 20, 20)
			tt.draw(c)
			if n := inked(c, image.Rect(0, 0, 20, 20)); n != 0 {
				t.Errorf("%d pixels drawn, want 0", n)
			}
		})
	}
}

func TestBarFillWidth(t *testing.T) {
	c := newTestCanvas(t, 100, 10)
	c.Bar(R(0, 0, 100, 10), 30, glance.White, glance.Black)
	img := c.Downsample()
	if p := img.RGBAAt(15, 5); p.R < 250 {
		t.Errorf("pixel inside fill = %v, want white", p)
	}
	if p := img.RGBAAt(60, 5); p.R > 5 {
		t.Errorf("pixel past fill = %v, want black", p)
	}
}

func TestSegmentedBarClipsAtRightEdge(t *testing.T) {
	c := newTestCanvas(t, 60, 10)
	c.SegmentedBar(R(0, 0, 40, 10), []Segment{
		{Percent: 60, Color: pureRed},
		{Percent: 60, Color: pureGreen},
	}, glance.Black)
	img := c.Downsample()
	if p := img.RGBAAt(10, 5); p.R < 250 {
		t.Errorf("first segment pixel = %v, want red", p)
	}
	if p := img.RGBAAt(30, 5); p.G < 120 {
		t.Errorf("second segment pixel = %v, want green", p)
	}
	if n := inked(c, image.Rect(42, 0, 60, 10)); n != 0 {
		t.Errorf("%d pixels drawn past the bar", n)
	}
}

func TestMiniBarsNewestOnRight(t *testing.T) {
	c := newTestCanvas(t, 40, 20)
	// only the last 10 values fit (40 / (3+1))
	data := make([]float64, 30)
	data[len(data)-1] = 10
	c.MiniBars(R(0, 0, 40, 20), data, 3, 1, glance.White)

	right := inked(c, image.Rect(36, 0, 40, 20))
	left := inked(c, image.Rect(0, 0, 4, 20))
	if right <= left {
		t.Errorf("right column ink %d <= left column ink %d", right, left)
	}
}

func TestCandlesColorByDirection(t *testing.T) {
	c := newTestCanvas(t, 40, 40)
	c.Candles(R(0, 0, 40, 40), []curve.Candle{
		{Open: 1, High: 10, Low: 0, Close: 9},
		{Open: 9, High: 10, Low: 0, Close: 1},
	}, pureGreen, pureRed)
	img := c.Downsample()

	if p := img.RGBAAt(8, 20); p.G < 150 || p.R > 50 {
		t.Errorf("bullish body pixel = %v, want green", p)
	}
	if p := img.RGBAAt(28, 20); p.R < 150 || p.G > 50 {
		t.Errorf("bearish body pixel = %v, want red", p)
	}
}

func TestCandlesFlatRange(t *testing.T) {
	c := newTestCanvas(t, 20, 20)
	c.Candles(R(0, 0, 20, 20), []curve.Candle{{Open: 5, High: 5, Low: 5, Close: 5}}, glance.White, glance.Red)
	if n := inked(c, image.Rect(0, 0, 20, 20)); n == 0 {
		t.Error("flat candle was not drawn")
	}
}

func TestIcons(t *testing.T) {
	names := Icons()
	for _, want := range []string{"cpu", "memory", "disk", "temp", "power", "bolt", "network", "wifi", "home", "sun", "drop", "clock", "lock", "light", "battery", "cloud", "rain", "moon", "wind", "pause", "play"} {
		if !HasIcon(want) {
			t.Errorf("HasIcon(%q) = false", want)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Icons() not sorted: %v", names)
		}
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			c := newTestCanvas(t, 32, 32)
			c.Icon(name, 4, 4, 24, glance.White)
			if n := inked(c, image.Rect(0, 0, 32, 32)); n == 0 {
				t.Error("icon drew nothing")
			}
		})
	}
}

func TestTextExtentIsLogical(t *testing.T) {
	fonts := text.NewService(text.WithSystemFonts(false))
	c1 := New(100, 40, WithScale(1), WithFonts(fonts))
	c2 := New(100, 40, WithScale(2), WithFonts(fonts))

	e1 := c1.MeasureText("Hello", 16, false)
	e2 := c2.MeasureText("Hello", 16, false)
	if e1.Width <= 0 {
		t.Fatalf("MeasureText() = %+v", e1)
	}
	if d := e1.Width - e2.Width; d > 2 || d < -2 {
		t.Errorf("width at scale 2 = %v, want about %v", e2.Width, e1.Width)
	}
	if got := c2.Text("Hello", 50, 20, 16, false, glance.White, text.Centered); got != e2 {
		t.Errorf("Text() = %+v, want %+v", got, e2)
	}
	if size := c2.FitText("Hello", 1000, 1000, 8, 24, false); size != 24 {
		t.Errorf("FitText(roomy) = %d, want 24", size)
	}
	if got := c2.TruncateText("Hello world", 1000, 12, false); got != "Hello world" {
		t.Errorf("TruncateText(roomy) = %q", got)
	}
}

func TestRotate(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(0, 0, color.White)

	tests := []struct {
		deg        int
		w, h       int
		markX, mkY int
	}{
		{0, 3, 2, 0, 0},
		{90, 2, 3, 1, 0},
		{180, 3, 2, 2, 1},
		{270, 2, 3, 0, 2},
		{-90, 2, 3, 0, 2},
		{450, 2, 3, 1, 0},
	}
	for _, tt := range tests {
		got, err := Rotate(src, tt.deg)
		if err != nil {
			t.Fatalf("Rotate(%d) error = %v", tt.deg, err)
		}
		if b := got.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
			t.Errorf("Rotate(%d) size = %dx%d, want %dx%d", tt.deg, b.Dx(), b.Dy(), tt.w, tt.h)
		}
		if p := got.RGBAAt(tt.markX, tt.mkY); p.R != 255 {
			t.Errorf("Rotate(%d) marker at (%d, %d) = %v, want white", tt.deg, tt.markX, tt.mkY, p)
		}
	}

	if _, err := Rotate(src, 45); !errors.Is(err, ErrRotation) {
		t.Errorf("Rotate(45) error = %v, want ErrRotation", err)
	}
	if _, err := EncodeJPEG(src, WithRotation(30)); !errors.Is(err, ErrRotation) {
		t.Errorf("EncodeJPEG(rotation 30) error = %v, want ErrRotation", err)
	}
	if _, err := EncodePNG(src, 100); !errors.Is(err, ErrRotation) {
		t.Errorf("EncodePNG(rotation 100) error = %v, want ErrRotation", err)
	}
}

func noise(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range img.Pix {
		if i%4 == 3 {
			img.Pix[i] = 0xff
			continue
		}
		img.Pix[i] = uint8(rng.UintN(256))
	}
	return img
}

func TestEncodeJPEGBudget(t *testing.T) {
	img := noise(240, 240)

	full, err := EncodeJPEG(img, WithMaxBytes(0))
	if err != nil {
		t.Fatal(err)
	}

	budget := len(full) / 2
	got, err := EncodeJPEG(img, WithMaxBytes(budget))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) >= len(full) {
		t.Errorf("budgeted size %d >= unbudgeted size %d", len(got), len(full))
	}

	// an impossible budget still returns the floor-quality image
	tiny, err := EncodeJPEG(img, WithMaxBytes(10), WithQualityFloor(30))
	if err != nil {
		t.Fatal(err)
	}
	if len(tiny) == 0 || len(tiny) > len(got) {
		t.Errorf("EncodeJPEG(budget 10) size = %d, want at most %d", len(tiny), len(got))
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(tiny)); err != nil {
		t.Errorf("over-budget result does not decode: %v", err)
	}
}

func TestEncodeJPEGUnderBudgetKeepsQuality(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	a, err := EncodeJPEG(img)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeJPEG(img, WithQuality(DefaultQuality), WithMaxBytes(DefaultMaxBytes))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("default options differ from explicit defaults")
	}
}

func TestEncodePNG(t *testing.T) {
	src := noise(8, 4)
	data, err := EncodePNG(src, 90)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 8 {
		t.Errorf("decoded size = %v, want 4x8", b)
	}
	want, _ := Rotate(src, 90)
	r, g, b, _ := img.At(1, 2).RGBA()
	wr, wg, wb, _ := want.At(1, 2).RGBA()
	if r != wr || g != wg || b != wb {
		t.Errorf("pixel (1, 2) = %v, want %v", img.At(1, 2), want.At(1, 2))
	}
}
