package text

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"

	"github.com/gogpu/glance"
)

const directionLTR = di.DirectionLTR

var shapingLanguage = language.NewLanguage("en")

// scriptOf returns the script of the first rune with a specific script,
// or Common for pure symbol sequences.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if sc := language.LookupScript(r); sc != language.Common && sc != language.Inherited {
			return sc
		}
	}
	return language.Common
}

// bitmapKey identifies a decoded bitmap glyph.
type bitmapKey struct {
	font int
	gid  gtfont.GID
	ppem uint16
}

// drawPictograph draws a shaped pictograph run with its pen at
// (x, baseline). The caller holds s.mu.
func (s *Service) drawPictograph(dst draw.Image, r run, x, baseline float64, col color.Color) {
	f := s.pictographs[r.font]
	face := gtfont.NewFace(f)
	ppem := uint16(min(r.size, math.MaxUint16))
	face.SetPpem(ppem, ppem)
	scale := float64(r.size) / float64(f.Upem())

	penX := x
	for _, g := range r.shaped.Glyphs {
		gx := penX + fromFixed(g.XOffset)
		gy := baseline - fromFixed(g.YOffset)

		switch data := face.GlyphData(g.GlyphID).(type) {
		case gtfont.GlyphBitmap:
			box := image.Rect(
				int(math.Round(gx+fromFixed(g.XBearing))),
				int(math.Round(gy-fromFixed(g.YBearing))),
				int(math.Round(gx+fromFixed(g.XBearing+g.Width))),
				int(math.Round(gy-fromFixed(g.YBearing+g.Height))),
			)
			if box.Empty() {
				// no extents from the font: fill the em box on the baseline
				box = image.Rect(int(gx), int(gy)-r.size, int(gx)+r.size, int(gy))
			}
			key := bitmapKey{font: r.font, gid: g.GlyphID, ppem: ppem}
			img := s.bitmaps.GetOrCreate(key, func() image.Image { return decodeBitmap(data) })
			switch {
			case img != nil:
				xdraw.CatmullRom.Scale(dst, box, img, img.Bounds(), xdraw.Over, nil)
			case data.Outline != nil:
				fillOutline(dst, *data.Outline, gx, gy, scale, col)
			}
		case gtfont.GlyphOutline:
			fillOutline(dst, data, gx, gy, scale, col)
		case gtfont.GlyphSVG:
			fillOutline(dst, data.Outline, gx, gy, scale, col)
		case gtfont.GlyphColor:
			cg := colorGlyph{dst: dst, face: face, x: gx, y: gy, scale: scale, fg: col}
			cg.paint(data.Paint, 0)
			if cg.drawn == 0 {
				if o, ok := face.GlyphDataOutline(uint16(g.GlyphID)); ok {
					fillOutline(dst, o, gx, gy, scale, col)
				}
			}
		}
		penX += fromFixed(g.Advance)
	}
}

// decodeBitmap decodes an embedded bitmap glyph, or returns nil when the
// format is not an image file.
func decodeBitmap(b gtfont.GlyphBitmap) image.Image {
	var (
		img image.Image
		err error
	)
	switch b.Format {
	case gtfont.PNG:
		img, err = png.Decode(bytes.NewReader(b.Data))
	case gtfont.JPG:
		img, err = jpeg.Decode(bytes.NewReader(b.Data))
	case gtfont.TIFF:
		img, err = tiff.Decode(bytes.NewReader(b.Data))
	default:
		return nil
	}
	if err != nil {
		glance.Logger().Debug("text: bitmap glyph decode failed", "format", b.Format, "err", err)
		return nil
	}
	return img
}

// fillOutline fills a glyph outline given in font units (Y up) with its
// origin at (x, y) in destination pixels.
func fillOutline(dst draw.Image, o gtfont.GlyphOutline, x, y, scale float64, col color.Color) {
	if len(o.Segments) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range o.Segments {
		for _, p := range seg.Args[:argCount(seg.Op)] {
			px, py := x+float64(p.X)*scale, y-float64(p.Y)*scale
			minX, maxX = min(minX, px), max(maxX, px)
			minY, maxY = min(minY, py), max(maxY, py)
		}
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	if box.Empty() || box.Intersect(dst.Bounds()).Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return float32(x + float64(p.X)*scale - ox), float32(y - float64(p.Y)*scale - oy)
	}

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, box, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}

// argCount returns how many points a segment operation uses.
func argCount(op ot.SegmentOp) int {
	switch op {
	case ot.SegmentOpQuadTo:
		return 2
	case ot.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}
