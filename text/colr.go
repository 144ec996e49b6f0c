package text

import (
	"image/color"
	"image/draw"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// foregroundIndex is the CPAL index that stands for the text color.
const foregroundIndex = 0xFFFF

// maxPaintDepth bounds PaintColrGlyph recursion in malformed fonts.
const maxPaintDepth = 8

// colorGlyph composites the layers of a COLR glyph, bottom to top, with
// the default palette. Layers whose paint cannot be resolved use the text
// color; drawn counts the layers filled.
type colorGlyph struct {
	dst   draw.Image
	face  *gtfont.Face
	x, y  float64
	scale float64
	fg    color.Color
	drawn int
}

func (g *colorGlyph) paint(p tables.PaintTable, depth int) {
	if depth > maxPaintDepth {
		return
	}
	switch p := p.(type) {
	case tables.PaintColrLayersResolved:
		for _, l := range p {
			g.layer(l.GlyphID, g.paletteColor(l.PaletteIndex, 1))
		}
	case tables.PaintColrLayers:
		if g.face.COLR == nil {
			return
		}
		layers, err := g.face.COLR.LayerList.Resolve(p)
		if err != nil {
			return
		}
		for _, l := range layers {
			g.paint(l, depth+1)
		}
	case tables.PaintGlyph:
		g.layer(p.GlyphID, g.fill(p.Paint))
	case tables.PaintColrGlyph:
		if next, ok := g.face.COLR.Search(p.GlyphID); ok {
			g.paint(next, depth+1)
		}
	}
}

// layer fills the outline of gid with col.
func (g *colorGlyph) layer(gid tables.GlyphID, col color.Color) {
	o, ok := g.face.GlyphDataOutline(gid)
	if !ok {
		return
	}
	fillOutline(g.dst, o, g.x, g.y, g.scale, col)
	g.drawn++
}

// fill resolves the color of a PaintGlyph. Gradients are flattened to
// their first stop; transforms and composites use the text color.
func (g *colorGlyph) fill(p tables.PaintTable) color.Color {
	switch p := p.(type) {
	case tables.PaintSolid:
		return g.paletteColor(p.PaletteIndex, alpha(p.Alpha))
	case tables.PaintVarSolid:
		return g.paletteColor(p.PaletteIndex, alpha(p.Alpha))
	case tables.PaintLinearGradient:
		return g.firstStop(p.ColorLine.ColorStops)
	case tables.PaintRadialGradient:
		return g.firstStop(p.ColorLine.ColorStops)
	case tables.PaintSweepGradient:
		return g.firstStop(p.ColorLine.ColorStops)
	}
	return g.fg
}

func (g *colorGlyph) firstStop(stops []tables.ColorStop) color.Color {
	if len(stops) == 0 {
		return g.fg
	}
	return g.paletteColor(stops[0].PaletteIndex, alpha(stops[0].Alpha))
}

// paletteColor looks idx up in the default palette, scaling its alpha by a.
func (g *colorGlyph) paletteColor(idx uint16, a float64) color.Color {
	if idx == foregroundIndex || len(g.face.CPAL) == 0 || int(idx) >= len(g.face.CPAL[0]) {
		return g.fg
	}
	c := g.face.CPAL[0][idx]
	return color.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: uint8(float64(c.Alpha) * min(max(a, 0), 1))}
}

// alpha converts a F2DOT14 alpha to [0, 1].
func alpha(v tables.Fixed214) float64 {
	return float64(v) / (1 << 14)
}
