package ui

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/glance/canvas"
	"github.com/gogpu/glance/text"
	"github.com/gogpu/glance/theme"
)

var testFonts = text.NewService(text.WithSystemFonts(false))

func newTestContext(t *testing.T, w, h int) *Context {
	t.Helper()
	c := canvas.New(w, h, canvas.WithScale(1), canvas.WithFonts(testFonts))
	return NewContext(c, theme.Classic)
}

// box is a fixed size leaf built from an inset Empty.
func box(w, h int) Node {
	return Padding{Child: Empty{}, Horizontal: Px(w / 2), Vertical: Px(h / 2)}
}

type drawn struct {
	node       Node
	x, y, w, h int
}

func record(ctx *Context) *[]drawn {
	var got []drawn
	ctx.observer = func(n Node, x, y, w, h int) {
		got = append(got, drawn{n, x, y, w, h})
	}
	return &got
}

func TestRowMeasureScenario(t *testing.T) {
	ctx := newTestContext(t, 120, 30)
	row := Row{Gap: 10, Children: []Node{box(40, 30), box(60, 30)}}

	if w, h := Measure(ctx, row, 120, 30); w != 110 || h != 30 {
		t.Errorf("Measure(row) = (%d, %d), want (110, 30)", w, h)
	}

	got := record(ctx)
	Draw(ctx, row, 0, 0, 120, 30)
	var children []drawn
	for _, d := range *got {
		if _, ok := d.node.(Padding); ok {
			children = append(children, d)
		}
	}
	want := []drawn{{row.Children[0], 0, 0, 40, 30}, {row.Children[1], 50, 0, 60, 30}}
	if len(children) != 2 {
		t.Fatalf("drew %d children, want 2", len(children))
	}
	for i := range want {
		g, w := children[i], want[i]
		if g.x != w.x || g.y != w.y || g.w != w.w || g.h != w.h {
			t.Errorf("child %d box = (%d, %d, %d, %d), want (%d, %d, %d, %d)", i, g.x, g.y, g.w, g.h, w.x, w.y, w.w, w.h)
		}
	}
}

func TestMeasureClamps(t *testing.T) {
	ctx := newTestContext(t, 100, 100)
	tests := []struct {
		name         string
		node         Node
		maxW, maxH   int
		wantW, wantH int
	}{
		{"nil", nil, 50, 50, 0, 0},
		{"empty", Empty{}, 50, 50, 0, 0},
		{"big icon", Icon{Name: "cpu", Size: 50}, 20, 30, 20, 30},
		{"auto icon max", Icon{Name: "cpu"}, 100, 100, 32, 32},
		{"auto icon min", Icon{Name: "cpu"}, 100, 5, 12, 5},
		{"bar default", Bar{Percent: 50}, 80, 100, 80, 15},
		{"bar minimum", Bar{Percent: 50}, 80, 20, 80, 6},
		{"bar fixed", Bar{Height: 10}, 80, 100, 80, 10},
		{"ring", Ring{}, 80, 60, 60, 60},
		{"arc", Arc{}, 40, 60, 40, 40},
		{"sparkline", Sparkline{}, 80, 60, 80, 60},
		{"spacer", Spacer{MinSize: 7}, 80, 60, 7, 7},
		{"panel without child", Panel{}, 80, 60, 80, 60},
		{"panel with child", Panel{Child: box(20, 10)}, 80, 60, 20, 60},
		{"padding larger than box", Padding{Child: box(10, 10), All: 40}, 50, 50, 50, 50},
		{"stack", Stack{Children: []Node{box(10, 30), box(20, 5)}}, 80, 60, 20, 30},
		{"center", Center{Child: box(10, 12)}, 80, 60, 10, 12},
		{"column", Column{Gap: 4, Padding: 2, Children: []Node{box(10, 10), box(20, 10)}}, 80, 60, 24, 28},
		{"negative box", box(10, 10), -5, -5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Measure(ctx, tt.node, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Measure() = (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSpacerDistribution(t *testing.T) {
	tests := []struct {
		name  string
		inner int
		want  int
	}{
		{"room to spare", 200, 200 - 70 - 10},
		{"exact fit", 80, 0},
		{"too small", 60, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []item{{main: 40, cross: 10}, {spacer: true}, {main: 30, cross: 10}}
			slots := flex(items, tt.inner, 20, 5, AlignCenter, JustifyStart)
			if got := slots[1].mainSize; got != tt.want {
				t.Errorf("spacer width = %d, want %d", got, tt.want)
			}
			if tt.inner >= 80 && slots[2].main+slots[2].mainSize != tt.inner {
				t.Errorf("last child ends at %d, want %d", slots[2].main+slots[2].mainSize, tt.inner)
			}
		})
	}
}

func TestSpacerSharesEvenly(t *testing.T) {
	items := []item{{spacer: true}, {main: 10}, {spacer: true}}
	slots := flex(items, 51, 10, 0, AlignCenter, JustifyStart)
	if slots[0].mainSize != 20 || slots[2].mainSize != 20 {
		t.Errorf("spacer widths = %d, %d, want 20, 20", slots[0].mainSize, slots[2].mainSize)
	}
	if slots[0].crossSize != 10 {
		t.Errorf("spacer cross size = %d, want full 10", slots[0].crossSize)
	}
}

func TestJustify(t *testing.T) {
	tests := []struct {
		name    string
		justify Justify
		want    []int
	}{
		{"start", JustifyStart, []int{0, 10}},
		{"center", JustifyCenter, []int{35, 45}},
		{"end", JustifyEnd, []int{70, 80}},
		{"space between", JustifySpaceBetween, []int{0, 80}},
		{"space around", JustifySpaceAround, []int{17, 62}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := flex([]item{{main: 10}, {main: 20}}, 100, 10, 0, AlignCenter, tt.justify)
			got := []int{slots[0].main, slots[1].main}
			if !slices.Equal(got, tt.want) {
				t.Errorf("positions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name      string
		align     Align
		pos, size int
	}{
		{"center", AlignCenter, 15, 10},
		{"start", AlignStart, 0, 10},
		{"end", AlignEnd, 30, 10},
		{"stretch", AlignStretch, 0, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := flex([]item{{main: 10, cross: 10}}, 100, 40, 0, tt.align, JustifyStart)[0]
			if s.cross != tt.pos || s.crossSize != tt.size {
				t.Errorf("cross box = (%d, %d), want (%d, %d)", s.cross, s.crossSize, tt.pos, tt.size)
			}
		})
	}
	if s := flex([]item{{main: 10, cross: 90}}, 100, 40, 0, AlignEnd, JustifyStart)[0]; s.cross != 0 || s.crossSize != 40 {
		t.Errorf("oversized cross box = (%d, %d), want (0, 40)", s.cross, s.crossSize)
	}
}

func TestOverflowShrinks(t *testing.T) {
	slots := flex([]item{{main: 60}, {main: 60}}, 100, 10, 0, AlignCenter, JustifyStart)
	if slots[0].mainSize != 50 || slots[1].main != 50 || slots[1].mainSize != 50 {
		t.Errorf("slots = %+v, want two halves", slots)
	}
	// gaps alone exceed the box
	slots = flex([]item{{main: 5}, {main: 5}, {main: 5}}, 10, 10, 20, AlignCenter, JustifyStart)
	for i, s := range slots {
		if s.main < 0 || s.main+s.mainSize > 10 {
			t.Errorf("slot %d = %+v leaves the box", i, s)
		}
	}
}

func TestFlexBoundsProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for iter := range 2000 {
		n := 1 + rng.IntN(6)
		items := make([]item, n)
		for i := range items {
			items[i] = item{main: rng.IntN(120) - 10, cross: rng.IntN(80) - 10, spacer: rng.IntN(5) == 0}
		}
		inner, cross := rng.IntN(150)-5, rng.IntN(60)
		gap := rng.IntN(20) - 2
		align := Align(rng.IntN(4))
		justify := Justify(rng.IntN(5))

		for i, s := range flex(items, inner, cross, gap, align, justify) {
			if s.mainSize < 0 || s.crossSize < 0 {
				t.Fatalf("iter %d slot %d has negative size: %+v", iter, i, s)
			}
			if s.main < 0 || s.main+s.mainSize > max(inner, 0) || s.cross < 0 || s.cross+s.crossSize > cross {
				t.Fatalf("iter %d slot %d = %+v outside (%d, %d)", iter, i, s, inner, cross)
			}
		}
	}
}

func TestAdaptiveFallback(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"fits as row", 200, "row"},
		{"exactly fits", 126, "row"},
		{"falls back to column", 100, "column"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, tt.width, 100)
			got := record(ctx)
			Draw(ctx, Adaptive{Children: []Node{box(60, 20), box(60, 20)}}, 0, 0, tt.width, 100)

			var kinds []string
			for _, d := range *got {
				switch d.node.(type) {
				case Row:
					kinds = append(kinds, "row")
				case Column:
					kinds = append(kinds, "column")
				}
			}
			if len(kinds) != 1 || kinds[0] != tt.want {
				t.Errorf("rendered as %v, want [%s]", kinds, tt.want)
			}
		})
	}
}

func TestAdaptiveGap(t *testing.T) {
	tests := []struct {
		gap, want int
	}{
		{0, DefaultAdaptiveGap},
		{-1, 0},
		{3, 3},
	}
	for _, tt := range tests {
		if got := (Adaptive{Gap: tt.gap}).gap(); got != tt.want {
			t.Errorf("Adaptive{Gap: %d}.gap() = %d, want %d", tt.gap, got, tt.want)
		}
	}
}

func TestPaddingEdges(t *testing.T) {
	tests := []struct {
		name                     string
		pad                      Padding
		top, right, bottom, left int
	}{
		{"all", Padding{All: 4}, 4, 4, 4, 4},
		{"axis over all", Padding{All: 4, Horizontal: Px(2)}, 4, 2, 4, 2},
		{"side over axis", Padding{All: 4, Vertical: Px(6), Top: Px(1)}, 1, 4, 6, 4},
		{"negative clamps", Padding{All: -3, Left: Px(-1), Right: Px(2)}, 0, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, right, bottom, left := tt.pad.edges()
			if top != tt.top || right != tt.right || bottom != tt.bottom || left != tt.left {
				t.Errorf("edges() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					top, right, bottom, left, tt.top, tt.right, tt.bottom, tt.left)
			}
		})
	}
}

func TestPaddingSkipsCollapsedChild(t *testing.T) {
	ctx := newTestContext(t, 60, 60)
	got := record(ctx)
	Draw(ctx, Padding{Child: Text{Text: "x"}, All: 30}, 0, 0, 60, 60)
	for _, d := range *got {
		if _, ok := d.node.(Text); ok {
			t.Errorf("collapsed child drawn at (%d, %d, %d, %d)", d.x, d.y, d.w, d.h)
		}
	}
}

func TestCenter(t *testing.T) {
	ctx := newTestContext(t, 100, 100)
	got := record(ctx)
	child := box(20, 10)
	Draw(ctx, Center{Child: child}, 0, 0, 100, 100)
	for _, d := range *got {
		if _, ok := d.node.(Padding); ok {
			if d.x != 40 || d.y != 45 || d.w != 20 || d.h != 10 {
				t.Errorf("centered child box = (%d, %d, %d, %d), want (40, 45, 20, 10)", d.x, d.y, d.w, d.h)
			}
			return
		}
	}
	t.Error("child not drawn")
}

func TestLayoutBounds(t *testing.T) {
	tree := Column{Padding: 4, Gap: 6, Align: AlignStretch, Children: []Node{
		Row{Gap: 4, Justify: JustifySpaceBetween, Children: []Node{
			Icon{Name: "temp"},
			Text{Text: "Living room", Size: Label, Truncate: true},
			Spacer{},
			Text{Text: "21.5°C", Size: Primary, Bold: true},
		}},
		Panel{Child: Padding{All: 6, Child: Sparkline{Data: []float64{1, 3, 2, 5}, Fill: true, Smooth: true}}},
		Adaptive{Children: []Node{Ring{Percent: 40}, Arc{Percent: 70}, Bar{Percent: 55}}},
		Stack{Children: []Node{Bar{Percent: 20}, Center{Child: Text{Text: "20%"}}}},
		Padding{Left: Px(300), Child: Text{Text: "gone"}},
	}}

	for _, size := range [][2]int{{240, 240}, {120, 80}, {30, 200}, {8, 8}} {
		ctx := newTestContext(t, size[0], size[1])
		got := record(ctx)
		Draw(ctx, tree, 0, 0, size[0], size[1])
		for _, d := range *got {
			if d.w <= 0 || d.h <= 0 {
				t.Errorf("%dx%d: node %T drawn with empty box %dx%d", size[0], size[1], d.node, d.w, d.h)
			}
			if d.x < 0 || d.y < 0 || d.x+d.w > size[0] || d.y+d.h > size[1] {
				t.Errorf("%dx%d: node %T box (%d, %d, %d, %d) leaves the frame",
					size[0], size[1], d.node, d.x, d.y, d.w, d.h)
			}
		}
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	tree := Row{Gap: 3, Justify: JustifySpaceAround, Children: []Node{box(11, 7), Spacer{}, box(13, 9), box(5, 5)}}
	run := func() []drawn {
		ctx := newTestContext(t, 97, 31)
		got := record(ctx)
		Draw(ctx, tree, 0, 0, 97, 31)
		return *got
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs drew %d and %d nodes", len(a), len(b))
	}
	for i := range a {
		if a[i].x != b[i].x || a[i].y != b[i].y || a[i].w != b[i].w || a[i].h != b[i].h {
			t.Errorf("node %d box differs between runs", i)
		}
	}
}

func TestExpandedFillsFreeSpace(t *testing.T) {
	ctx := newTestContext(t, 100, 40)
	got := record(ctx)
	Draw(ctx, Row{Gap: 10, Children: []Node{
		box(20, 10),
		Expanded{Child: Center{Child: box(10, 10)}},
	}}, 0, 0, 100, 40)

	for _, d := range *got {
		if _, ok := d.node.(Expanded); ok {
			if d.x != 30 || d.w != 70 || d.h != 40 {
				t.Errorf("expanded box = (%d, %d, %d, %d), want x 30, w 70, h 40", d.x, d.y, d.w, d.h)
			}
			return
		}
	}
	t.Fatal("expanded node not drawn")
}

func TestSpacerWeights(t *testing.T) {
	items := []item{{spacer: true}, {spacer: true, weight: 3}, {main: 20}}
	slots := flex(items, 100, 10, 0, AlignCenter, JustifyStart)
	if slots[0].mainSize != 20 || slots[1].mainSize != 60 {
		t.Errorf("weighted sizes = %d, %d, want 20, 60", slots[0].mainSize, slots[1].mainSize)
	}
	if slots[2].main != 80 {
		t.Errorf("fixed child at %d, want 80", slots[2].main)
	}
}

func TestSpacerMinSize(t *testing.T) {
	tests := []struct {
		name  string
		inner int
		want  []int
	}{
		{"minimum pins the small share", 100, []int{40, 60}},
		{"shares above the minimum", 200, []int{100, 100}},
		{"minimum ignored without room", 20, []int{10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []item{{spacer: true}, {spacer: true, min: 60}}
			slots := flex(items, tt.inner, 10, 0, AlignCenter, JustifyStart)
			got := []int{slots[0].mainSize, slots[1].mainSize}
			if !slices.Equal(got, tt.want) {
				t.Errorf("spacer sizes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResponsive(t *testing.T) {
	full, compact := box(30, 30), box(10, 10)
	n := Responsive{Threshold: 120, Full: full, Compact: compact}
	tests := []struct {
		h    int
		want Node
	}{
		{121, full},
		{120, compact},
		{40, compact},
	}
	for _, tt := range tests {
		ctx := newTestContext(t, 100, tt.h)
		got := record(ctx)
		Draw(ctx, n, 0, 0, 100, tt.h)
		if len(*got) < 2 || (*got)[1].node != tt.want {
			t.Errorf("height %d: drew %v, want %v", tt.h, *got, tt.want)
		}
		w, _ := Measure(ctx, n, 100, tt.h)
		if wantW, _ := Measure(ctx, tt.want, 100, tt.h); w != wantW {
			t.Errorf("height %d: Measure width = %d, want %d", tt.h, w, wantW)
		}
	}
}
