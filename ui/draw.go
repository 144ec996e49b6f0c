package ui

import (
	"github.com/gogpu/glance"
	"github.com/gogpu/glance/canvas"
	"github.com/gogpu/glance/text"
	"github.com/gogpu/glance/theme"
)

// Placeholder texts for missing data.
const (
	NoData  = "No data"
	NoValue = "--"
)

// Draw lays out n in the box (x, y, w, h) and paints it. Boxes with no
// area are skipped together with their subtree.
func Draw(ctx *Context, n Node, x, y, w, h int) {
	if n == nil || w <= 0 || h <= 0 {
		return
	}
	if ctx.observer != nil {
		ctx.observer(n, x, y, w, h)
	}

	c := ctx.Canvas
	box := canvas.R(float64(x), float64(y), float64(w), float64(h))

	switch n := n.(type) {
	case Empty, Spacer:
	case Text:
		str, px := resolveText(ctx, n, w, h)
		anchor, tx := n.anchor(x, w)
		c.Text(str, tx, float64(y)+float64(h)/2, px, n.bold(ctx), ctx.ink(n.Color, n.Tone), anchor)
	case Icon:
		s := n.size(min(w, h))
		c.Icon(n.Name, float64(x+(w-s)/2), float64(y+(h-s)/2), float64(s), ctx.ink(n.Color, n.Tone))
	case Bar:
		drawBar(ctx, box, n.Percent, ctx.accent(n.Color), ctx.track(n.Background))
	case SegmentedBar:
		c.SegmentedBar(box, n.Segments, ctx.track(n.Background))
	case Ring:
		size := min(w, h)
		radius := size / 2
		thickness := n.Thickness
		if thickness <= 0 {
			thickness = max(4, radius/5)
		}
		cx, cy := box.Center()
		c.RingGauge(cx, cy, float64(radius-thickness), n.Percent, float64(thickness), ctx.accent(n.Color), ctx.track(n.Background))
	case Arc:
		width := n.Width
		if width <= 0 {
			width = 8
		}
		size := float64(min(w, h))
		cx, cy := box.Center()
		// keep the stroke inside the box
		side := max(size-float64(width), 1)
		c.ArcGauge(canvas.R(cx-side/2, cy-side/2, side, side), n.Percent, float64(width), ctx.accent(n.Color), ctx.track(n.Background))
	case Sparkline:
		c.Sparkline(box, n.Data, ctx.accent(n.Color), n.Fill, n.Smooth)
	case MiniBars:
		bw, gap := n.BarWidth, n.Gap
		if bw <= 0 {
			bw = 3
		}
		if gap <= 0 {
			gap = 1
		}
		c.MiniBars(box, n.Data, float64(bw), float64(gap), ctx.accent(n.Color))
	case Candles:
		if len(n.Data) == 0 {
			c.Text(NoData, float64(x)+float64(w)/2, float64(y)+float64(h)/2,
				ctx.FontPx(Secondary), false, ctx.Theme.TextSecondary, text.Centered)
			break
		}
		c.Candles(box, n.Data, n.Up.Or(ctx.Theme.Success), n.Down.Or(ctx.Theme.Error))
	case Panel:
		drawPanel(ctx, n, box)
		ctx.withRef(h, func() { Draw(ctx, n.Child, x, y, w, h) })
	case Row:
		drawLine(ctx, n.Children, n.Gap, n.Padding, n.Align, n.Justify, x, y, w, h, true)
	case Column:
		drawLine(ctx, n.Children, n.Gap, n.Padding, n.Align, n.Justify, x, y, w, h, false)
	case Adaptive:
		drawAdaptive(ctx, n, x, y, w, h)
	case Stack:
		for _, child := range n.Children {
			Draw(ctx, child, x, y, w, h)
		}
	case Center:
		cw, ch := Measure(ctx, n.Child, w, h)
		Draw(ctx, n.Child, x+(w-cw)/2, y+(h-ch)/2, cw, ch)
	case Expanded:
		Draw(ctx, n.Child, x, y, w, h)
	case Responsive:
		Draw(ctx, n.pick(h), x, y, w, h)
	case Padding:
		t, r, b, l := n.edges()
		if cw, ch := w-l-r, h-t-b; cw > 0 && ch > 0 {
			Draw(ctx, n.Child, x+l, y+t, cw, ch)
		}
	default:
		panic("ui: unknown node type")
	}
}

// drawLine arranges a Row (horizontal) or Column with the flex algorithm.
func drawLine(ctx *Context, children []Node, gap, pad int, align Align, justify Justify, x, y, w, h int, horizontal bool) {
	pad = max(pad, 0)
	innerW, innerH := max(w-2*pad, 0), max(h-2*pad, 0)
	if innerW == 0 || innerH == 0 {
		return
	}

	items := make([]item, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		it := item{node: c}
		switch c := c.(type) {
		case Spacer:
			it.spacer, it.min = true, c.MinSize
		case Expanded:
			it.spacer, it.weight = true, c.Weight
		default:
			cw, ch := Measure(ctx, c, innerW, innerH)
			if horizontal {
				it.main, it.cross = cw, ch
			} else {
				it.main, it.cross = ch, cw
			}
		}
		items = append(items, it)
	}

	inner, innerCross := innerW, innerH
	if !horizontal {
		inner, innerCross = innerH, innerW
	}
	for i, s := range flex(items, inner, innerCross, gap, align, justify) {
		if horizontal {
			Draw(ctx, items[i].node, x+pad+s.main, y+pad+s.cross, s.mainSize, s.crossSize)
		} else {
			Draw(ctx, items[i].node, x+pad+s.cross, y+pad+s.main, s.crossSize, s.mainSize)
		}
	}
}

// drawAdaptive decides once between a Row and a Column.
func drawAdaptive(ctx *Context, n Adaptive, x, y, w, h int) {
	if rowFits(ctx, n, w, h) {
		Draw(ctx, Row{Children: n.Children, Gap: n.gap(), Padding: n.Padding, Align: AlignCenter, Justify: JustifySpaceBetween}, x, y, w, h)
		return
	}
	Draw(ctx, Column{Children: n.Children, Gap: n.gap(), Padding: n.Padding, Align: AlignCenter, Justify: JustifyCenter}, x, y, w, h)
}

// rowFits reports whether the children of n fit side by side in width w.
func rowFits(ctx *Context, n Adaptive, w, h int) bool {
	innerW := max(w-2*max(n.Padding, 0), 0)
	total, count := 0, 0
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		cw, _ := Measure(ctx, c, innerW, h)
		total += cw
		count++
	}
	if count > 1 {
		total += n.gap() * (count - 1)
	}
	return total <= innerW
}

func drawBar(ctx *Context, r canvas.Rect, percent float64, col, track glance.Color) {
	if ctx.Theme.InvertBars {
		ctx.Canvas.OutlineBar(r, percent, col, col)
		return
	}
	ctx.Canvas.Bar(r, percent, col, track)
}

// drawPanel paints the themed card of a Panel.
func drawPanel(ctx *Context, n Panel, r canvas.Rect) {
	th := ctx.Theme
	c := ctx.Canvas
	radius := float64(th.CornerRadius)
	switch {
	case n.Radius < 0:
		radius = 0
	case n.Radius > 0:
		radius = float64(n.Radius)
	}

	if th.Border != theme.BorderOutline || !n.Fill.IsZero() {
		c.FillRoundRect(r, radius, n.Fill.Or(th.PanelFill))
	}
	if th.BorderWidth <= 0 {
		return
	}
	bw := float64(th.BorderWidth)
	border := n.Border.Or(th.PanelBorder)
	c.StrokeRoundRect(r.Inset(bw/2), radius, bw, border)
	if th.Glow {
		fill := n.Fill.Or(th.PanelFill)
		for i := 1; i <= 3; i++ {
			f := float64(i)
			c.StrokeRoundRect(r.Inset(bw+f-0.5), max(radius-bw-f, 0), 1, glance.BlendLab(border, fill, f/4))
		}
	}
}
