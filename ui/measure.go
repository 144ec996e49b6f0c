package ui

import (
	"math"

	"github.com/gogpu/glance/text"
)

// Icon size bounds when no fixed size is set.
const (
	DefaultIconMin = 12
	DefaultIconMax = 32
)

// Measure returns the natural size of n inside a maxW x maxH box. The
// result never exceeds the box and is never negative. Measure does not draw.
func Measure(ctx *Context, n Node, maxW, maxH int) (w, h int) {
	maxW, maxH = max(maxW, 0), max(maxH, 0)
	w, h = measure(ctx, n, maxW, maxH)
	return min(max(w, 0), maxW), min(max(h, 0), maxH)
}

func measure(ctx *Context, n Node, maxW, maxH int) (int, int) {
	switch n := n.(type) {
	case nil, Empty:
		return 0, 0
	case Text:
		str, px := resolveText(ctx, n, maxW, maxH)
		ext := ctx.Canvas.MeasureText(str, px, n.bold(ctx))
		return int(math.Ceil(ext.Width)), int(math.Ceil(ext.Height()))
	case Icon:
		s := n.size(min(maxW, maxH))
		return s, s
	case Bar:
		return maxW, barHeight(n.Height, maxH)
	case SegmentedBar:
		return maxW, barHeight(n.Height, maxH)
	case Ring, Arc:
		s := min(maxW, maxH)
		return s, s
	case Sparkline, MiniBars, Candles:
		return maxW, maxH
	case Panel:
		if n.Child == nil {
			return maxW, maxH
		}
		// The panel is the font reference of its child, so it keeps the
		// offered height and the child is measured at that reference.
		var w int
		ctx.withRef(maxH, func() { w, _ = Measure(ctx, n.Child, maxW, maxH) })
		return w, maxH
	case Spacer:
		return n.MinSize, n.MinSize
	case Row:
		return measureLine(ctx, n.Children, n.Gap, n.Padding, maxW, maxH, true)
	case Column:
		return measureLine(ctx, n.Children, n.Gap, n.Padding, maxW, maxH, false)
	case Adaptive:
		return measureLine(ctx, n.Children, n.gap(), n.Padding, maxW, maxH, true)
	case Stack:
		w, h := 0, 0
		for _, c := range n.Children {
			cw, ch := Measure(ctx, c, maxW, maxH)
			w, h = max(w, cw), max(h, ch)
		}
		return w, h
	case Center:
		return Measure(ctx, n.Child, maxW, maxH)
	case Expanded:
		return Measure(ctx, n.Child, maxW, maxH)
	case Responsive:
		return Measure(ctx, n.pick(maxH), maxW, maxH)
	case Padding:
		t, r, b, l := n.edges()
		cw, ch := Measure(ctx, n.Child, maxW-l-r, maxH-t-b)
		return cw + l + r, ch + t + b
	default:
		panic("ui: unknown node type")
	}
}

// measureLine measures a Row (horizontal) or Column: the main axis sums
// children and gaps, the cross axis takes the largest child.
func measureLine(ctx *Context, children []Node, gap, pad, maxW, maxH int, horizontal bool) (int, int) {
	pad = max(pad, 0)
	innerW, innerH := max(maxW-2*pad, 0), max(maxH-2*pad, 0)
	main, cross, count := 0, 0, 0
	for _, c := range children {
		if c == nil {
			continue
		}
		if count > 0 {
			main += gap
		}
		count++
		cw, ch := Measure(ctx, c, innerW, innerH)
		if horizontal {
			main, cross = main+cw, max(cross, ch)
		} else {
			main, cross = main+ch, max(cross, cw)
		}
	}
	if horizontal {
		return main + 2*pad, cross + 2*pad
	}
	return cross + 2*pad, main + 2*pad
}

func (n Responsive) pick(h int) Node {
	if h > n.Threshold {
		return n.Full
	}
	return n.Compact
}

func barHeight(fixed, maxH int) int {
	if fixed > 0 {
		return fixed
	}
	return max(6, int(float64(maxH)*0.15))
}

func (n Icon) size(avail int) int {
	if n.Size > 0 {
		return n.Size
	}
	lo, hi := n.Min, n.Max
	if lo <= 0 {
		lo = DefaultIconMin
	}
	if hi <= 0 {
		hi = DefaultIconMax
	}
	return max(lo, min(hi, avail))
}

// resolveText returns the string and pixel size a Text node uses inside a
// w x h box.
func resolveText(ctx *Context, n Text, w, h int) (string, int) {
	px := n.Px
	if px <= 0 {
		px = ctx.FontPx(n.Size)
	}
	str := n.Text
	if n.Fit {
		lo, hi := n.MinSize, n.MaxSize
		if lo <= 0 {
			lo = MinFontPx
		}
		if hi <= 0 {
			hi = MaxFontPx
		}
		px = ctx.Canvas.FitText(str, float64(w), float64(h), lo, hi, n.bold(ctx))
	}
	if n.Truncate {
		str = ctx.Canvas.TruncateText(str, float64(w), px, n.bold(ctx))
	}
	return str, px
}

// anchor returns the text anchor and x position for a Text aligned in a
// box starting at x with width w.
func (n Text) anchor(x, w int) (text.Anchor, float64) {
	switch n.Align {
	case AlignStart:
		return text.LeftMiddle, float64(x)
	case AlignEnd:
		return text.RightMiddle, float64(x + w)
	default:
		return text.Centered, float64(x) + float64(w)/2
	}
}

func (n Text) bold(ctx *Context) bool {
	return n.Bold || (n.Value && ctx.Theme.ValueBold)
}
