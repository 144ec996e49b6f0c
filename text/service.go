package text

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/cache"
	"github.com/gogpu/glance/text/emoji"
)

// Key identifies a cached face.
type Key struct {
	Size int
	Bold bool
}

// Service loads fonts once and hands out faces by pixel size and weight.
//
// Service is safe for concurrent use. Measuring and drawing are serialized
// because x/image faces and the HarfBuzz shaper keep per-call buffers.
type Service struct {
	mu sync.Mutex

	regular     *opentype.Font
	bold        *opentype.Font
	pictographs []*gtfont.Font
	coverage    map[rune]int

	faces   *cache.Cache[Key, font.Face]
	bitmaps *cache.Cache[bitmapKey, image.Image]
	shaper  shaping.HarfbuzzShaper
}

// NewService loads the configured fonts, falling back to system locations
// and finally to the embedded Go fonts. It never fails.
func NewService(opts ...Option) *Service {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Service{
		regular:     loadOutlineFont(candidatePaths(cfg.regular, systemRegular, cfg.systemFonts), embeddedRegular),
		bold:        loadOutlineFont(candidatePaths(cfg.bold, systemBold, cfg.systemFonts), embeddedBold),
		pictographs: loadPictographFonts(candidatePaths(cfg.pictograph, systemPictograph, cfg.systemFonts)),
		coverage:    make(map[rune]int),
		faces:       cache.New[Key, font.Face](cfg.cacheSize),
		bitmaps:     cache.New[bitmapKey, image.Image](cache.DefaultCapacity),
	}
	s.faces.OnEvict(func(_ Key, f font.Face) { _ = f.Close() })
	return s
}

var defaultService = sync.OnceValue(func() *Service { return NewService() })

// Default returns a process-wide Service built on first use with default
// options. Prefer injecting an explicit Service where possible.
func Default() *Service {
	return defaultService()
}

// PictographFonts returns the number of loaded pictograph fonts.
func (s *Service) PictographFonts() int {
	return len(s.pictographs)
}

// FaceStats returns the face cache counters.
func (s *Service) FaceStats() cache.Stats {
	return s.faces.Stats()
}

// Measure returns the extent of str drawn at size pixels.
func (s *Service) Measure(str string, size int, bold bool) Extent {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ext := s.layout(str, size, bold)
	return ext
}

// Draw draws str with its anchor point at (x, y) and returns the extent
// that was drawn.
func (s *Service) Draw(dst draw.Image, str string, x, y float64, size int, bold bool, col color.Color, anchor Anchor) Extent {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, ext := s.layout(str, size, bold)
	if len(runs) == 0 {
		return ext
	}
	penX, baseline := ext.Origin(x, y, anchor)
	src := image.NewUniform(col)
	for _, r := range runs {
		if r.font >= 0 {
			s.drawPictograph(dst, r, penX, baseline, col)
		} else {
			d := font.Drawer{
				Dst:  dst,
				Src:  src,
				Face: s.face(size, bold),
				Dot:  fixed.Point26_6{X: toFixed(penX), Y: toFixed(baseline)},
			}
			d.DrawString(r.text)
		}
		penX += r.advance
	}
	return ext
}

// run is one measured piece of a segmented string.
type run struct {
	text    string
	font    int // index into pictographs, -1 for the primary face
	size    int
	advance float64
	shaped  shaping.Output
}

// layout segments str and measures every run. The caller holds s.mu.
func (s *Service) layout(str string, size int, bold bool) ([]run, Extent) {
	if str == "" {
		return nil, Extent{}
	}
	size = max(size, 1)

	var (
		runs []run
		ext  Extent
	)
	for _, seg := range emoji.Segment(str) {
		r := run{text: seg.Text, font: -1, size: size}
		var ascent, descent float64

		if seg.Pictograph {
			r.text = seg.Visible()
			if idx, ok := s.pictographFor(r.text); ok {
				r.font = idx
				r.shaped = s.shape(s.pictographs[idx], r.text, size)
				r.advance = fromFixed(r.shaped.Advance)
				ascent = fromFixed(r.shaped.LineBounds.Ascent)
				descent = -fromFixed(r.shaped.LineBounds.Descent)
			}
		}
		if r.font < 0 {
			face := s.face(size, bold)
			m := face.Metrics()
			r.advance = fromFixed(font.MeasureString(face, r.text))
			ascent = fromFixed(m.Ascent)
			descent = fromFixed(m.Descent)
		}

		ext.Width += r.advance
		ext.Ascent = max(ext.Ascent, ascent)
		ext.Descent = max(ext.Descent, descent)
		runs = append(runs, r)
	}
	return runs, ext
}

// face returns the cached primary face. The caller holds s.mu.
func (s *Service) face(size int, bold bool) font.Face {
	return s.faces.GetOrCreate(Key{Size: size, Bold: bold}, func() font.Face {
		f := s.regular
		if bold {
			f = s.bold
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			glance.Logger().Warn("text: face creation failed", "size", size, "bold", bold, "err", err)
			return basicfont.Face7x13
		}
		glance.Logger().Debug("text: new face", "size", size, "bold", bold)
		return face
	})
}

// pictographFor returns the first pictograph font covering the base
// codepoint of seq. The caller holds s.mu.
func (s *Service) pictographFor(seq string) (int, bool) {
	var base rune = -1
	for _, r := range seq {
		base = r
		break
	}
	if base < 0 || len(s.pictographs) == 0 {
		return 0, false
	}
	if idx, ok := s.coverage[base]; ok {
		return idx, idx >= 0
	}
	idx := -1
	for i, f := range s.pictographs {
		if _, ok := f.NominalGlyph(base); ok {
			idx = i
			break
		}
	}
	s.coverage[base] = idx
	return idx, idx >= 0
}

// shape runs HarfBuzz over one pictograph sequence. The caller holds s.mu.
func (s *Service) shape(f *gtfont.Font, seq string, size int) shaping.Output {
	runes := []rune(seq)
	return s.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: directionLTR,
		Face:      gtfont.NewFace(f),
		Size:      fixed.I(size),
		Script:    scriptOf(runes),
		Language:  shapingLanguage,
	})
}

// toFixed converts a float64 to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts a fixed.Int26_6 value to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
