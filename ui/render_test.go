package ui

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/curve"
	"github.com/gogpu/glance/theme"
)

func TestFontPx(t *testing.T) {
	tests := []struct {
		size FontSize
		ref  int
		want int
	}{
		{Primary, 240, 58},
		{Secondary, 100, 14},
		{Label, 100, 11},
		{Title, 100, 16},
		{Title, 1000, MaxFontPx},
		{Regular, 120, 13},
		{Medium, 120, 16},
		{Huge, 240, 96},
		{Large, 60, 13},
		{Tiny, 30, MinFontPx},
		{XLarge, 1000, 64},
		{FontSize(200), 120, 13},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			if got := FontPx(tt.size, tt.ref); got != tt.want {
				t.Errorf("FontPx(%v, %d) = %d, want %d", tt.size, tt.ref, got, tt.want)
			}
		})
	}
}

func TestParseFontSize(t *testing.T) {
	for _, name := range []string{"tiny", "small", "regular", "medium", "large", "xlarge", "huge", "primary", "secondary", "label", "title"} {
		s, ok := ParseFontSize(name)
		if !ok || s.String() != name {
			t.Errorf("ParseFontSize(%q) = %v, %v", name, s, ok)
		}
	}
	if _, ok := ParseFontSize("gigantic"); ok {
		t.Error("ParseFontSize(\"gigantic\") = ok")
	}
}

func TestPanelSetsReferenceHeight(t *testing.T) {
	ctx := newTestContext(t, 200, 200)
	var inside int
	ctx.observer = func(n Node, x, y, w, h int) {
		if _, ok := n.(Text); ok {
			inside = ctx.RefHeight()
		}
	}
	Draw(ctx, Column{Children: []Node{
		Expanded{Child: Panel{Child: Text{Text: "a"}}},
		Padding{Child: Empty{}, Vertical: Px(75)},
	}}, 0, 0, 200, 200)

	if inside != 50 {
		t.Errorf("reference height inside panel = %d, want the panel height 50", inside)
	}
	if ctx.RefHeight() != 200 {
		t.Errorf("reference height after panel = %d, want 200", ctx.RefHeight())
	}
}

func TestPanelMeasureMatchesDraw(t *testing.T) {
	ctx := newTestContext(t, 240, 240)
	label := Text{Text: "42", Size: Primary}
	var ref, textW, panelH int
	ctx.observer = func(n Node, x, y, w, h int) {
		switch n.(type) {
		case Text:
			ref, textW = ctx.RefHeight(), w
		case Panel:
			panelH = h
		}
	}
	Draw(ctx, Center{Child: Panel{Child: label}}, 0, 0, 240, 240)

	if panelH != 240 || ref != 240 {
		t.Errorf("panel height = %d, text reference = %d, want 240 and 240", panelH, ref)
	}
	ext := ctx.Canvas.MeasureText(label.Text, FontPx(Primary, 240), false)
	if float64(textW) < ext.Width {
		t.Errorf("text box width = %d, want at least the %.1f measured at the panel reference", textW, ext.Width)
	}
}

func TestRenderFrameSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := Render(Empty{}, size[0], size[1], glance.Black); !errors.Is(err, ErrFrameSize) {
			t.Errorf("Render(%dx%d) error = %v, want ErrFrameSize", size[0], size[1], err)
		}
	}
}

func TestRenderBackground(t *testing.T) {
	bg := glance.RGB(10, 20, 30)
	img, err := Render(nil, 40, 30, bg, WithFonts(testFonts))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 40, 30) {
		t.Fatalf("bounds = %v, want 40x30", b)
	}
	if p := img.RGBAAt(20, 15); p.R != 10 || p.G != 20 || p.B != 30 {
		t.Errorf("pixel = %v, want background", p)
	}

	img, err = Render(nil, 10, 10, glance.Color{}, WithFonts(testFonts), WithTheme(theme.Soft))
	if err != nil {
		t.Fatal(err)
	}
	if p := img.RGBAAt(5, 5); p.R != 15 || p.G != 15 || p.B != 20 {
		t.Errorf("zero background pixel = %v, want theme background", p)
	}

	img, err = Render(Text{Text: "x", Color: glance.Black}, 10, 10, glance.Black, WithFonts(testFonts), WithTheme(theme.Soft))
	if err != nil {
		t.Fatal(err)
	}
	if p := img.RGBAAt(0, 0); p.R != 0 || p.G != 0 || p.B != 0 {
		t.Errorf("black background pixel = %v, want explicit black", p)
	}
}

func TestRenderScale(t *testing.T) {
	_, c, err := RenderFrame(Empty{}, 30, 20, glance.Black, WithScale(3), WithFonts(testFonts))
	if err != nil {
		t.Fatal(err)
	}
	if c.Scale() != 3 || c.Image().Bounds().Dx() != 90 {
		t.Errorf("canvas scale = %d, width %d, want 3, 90", c.Scale(), c.Image().Bounds().Dx())
	}
}

func TestRenderScanlines(t *testing.T) {
	bg := glance.RGB(0, 200, 0)
	plain, err := Render(nil, 20, 20, bg, WithFonts(testFonts), WithTheme(theme.Classic))
	if err != nil {
		t.Fatal(err)
	}
	retro, err := Render(nil, 20, 20, bg, WithFonts(testFonts), WithTheme(theme.Retro))
	if err != nil {
		t.Fatal(err)
	}
	darker := 0
	for y := range 20 {
		if retro.RGBAAt(10, y).G < plain.RGBAAt(10, y).G {
			darker++
		}
	}
	if darker == 0 {
		t.Error("retro theme did not darken any row")
	}
}

func TestRenderObserverBounds(t *testing.T) {
	tree := Panel{Child: Column{Padding: 6, Gap: 4, Children: []Node{
		Text{Text: "CPU \U0001F525", Size: Label},
		Ring{Percent: 64},
		MiniBars{Data: []float64{1, 4, 2, 8}},
		Candles{Data: []curve.Candle{{Open: 1, High: 3, Low: 0, Close: 2}}},
		SegmentedBar{Segments: nil},
	}}}
	var boxes int
	_, err := Render(tree, 120, 160, glance.Black, WithFonts(testFonts), WithObserver(func(n Node, x, y, w, h int) {
		boxes++
		if x < 0 || y < 0 || x+w > 120 || y+h > 160 || w <= 0 || h <= 0 {
			t.Errorf("%T box (%d, %d, %d, %d) outside frame", n, x, y, w, h)
		}
	}))
	if err != nil {
		t.Fatal(err)
	}
	if boxes < 7 {
		t.Errorf("observer saw %d nodes, want at least 7", boxes)
	}
}

func TestLeavesPaint(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"text", Text{Text: "42", Size: Primary, Bold: true}},
		{"fit text", Text{Text: "Hello", Fit: true, MinSize: 8, MaxSize: 40}},
		{"truncated text", Text{Text: "A very long label that will not fit", Truncate: true}},
		{"icon", Icon{Name: "sun"}},
		{"bar", Bar{Percent: 60}},
		{"ring", Ring{Percent: 60}},
		{"arc", Arc{Percent: 60}},
		{"sparkline", Sparkline{Data: []float64{3, 1, 4, 1, 5}, Fill: true, Smooth: true}},
		{"straight sparkline", Sparkline{Data: []float64{3, 1, 4}}},
		{"mini bars", MiniBars{Data: []float64{1, 2, 3}}},
		{"candles", Candles{Data: []curve.Candle{{Open: 1, High: 4, Low: 0, Close: 3}, {Open: 3, High: 5, Low: 2, Close: 2}}}},
		{"no candles", Candles{}},
		{"panel", Panel{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Render(tt.node, 64, 48, glance.Black, WithFonts(testFonts))
			if err != nil {
				t.Fatal(err)
			}
			inked := 0
			for i := 0; i < len(img.Pix); i += 4 {
				if img.Pix[i]|img.Pix[i+1]|img.Pix[i+2] != 0 {
					inked++
				}
			}
			if inked == 0 {
				t.Error("nothing painted")
			}
		})
	}
}

func TestTextMeasure(t *testing.T) {
	ctx := newTestContext(t, 200, 100)
	w, h := Measure(ctx, Text{Text: "Hello", Px: 20}, 200, 100)
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure(text) = (%d, %d)", w, h)
	}
	tw, _ := Measure(ctx, Text{Text: "Hello Hello Hello Hello", Px: 20, Truncate: true}, 60, 100)
	if tw > 60 {
		t.Errorf("truncated width = %d, want <= 60", tw)
	}
	fw, fh := Measure(ctx, Text{Text: "88", Fit: true, MinSize: 8, MaxSize: 96}, 50, 30)
	if fw > 50 || fh > 30 || fw < 20 {
		t.Errorf("fitted text = (%d, %d), want close to the 50x30 box", fw, fh)
	}
}

func TestPanelThemes(t *testing.T) {
	for _, name := range theme.Names() {
		t.Run(name, func(t *testing.T) {
			th := theme.Lookup(name)
			img, err := Render(Panel{Child: Bar{Percent: 50}}, 60, 40, glance.Black, WithFonts(testFonts), WithTheme(th))
			if err != nil {
				t.Fatal(err)
			}
			if th.BorderWidth > 0 {
				p := img.RGBAAt(30, 0)
				if p.R|p.G|p.B == 0 {
					t.Errorf("border pixel = %v, want the border color", p)
				}
			}
		})
	}
}
