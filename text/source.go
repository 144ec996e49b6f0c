package text

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/glance"
)

// System font locations tried after the configured paths.
var (
	systemRegular = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
		"/System/Library/Fonts/SFNSText.ttf",
		"C:/Windows/Fonts/arial.ttf",
	}
	systemBold = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
		"C:/Windows/Fonts/arialbd.ttf",
	}
	systemPictograph = []string{
		"/usr/share/fonts/truetype/noto/NotoColorEmoji.ttf",
		"/usr/share/fonts/noto/NotoColorEmoji.ttf",
		"/usr/share/fonts/google-noto-emoji/NotoColorEmoji.ttf",
		"/System/Library/Fonts/Apple Color Emoji.ttc",
		"C:/Windows/Fonts/seguiemj.ttf",
		"/usr/share/fonts/truetype/noto/NotoEmoji-Regular.ttf",
		"/usr/share/fonts/truetype/ancient-scripts/Symbola_hint.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
)

// isCollection reports whether path names a font collection file.
func isCollection(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ttc" || ext == ".otc"
}

// parseOutlineFont parses font data for plain text drawing. The first font
// of a collection is used.
func parseOutlineFont(data []byte, collection bool) (*opentype.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !collection {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse font: %w", err)
		}
		return f, nil
	}
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
	}
	f, err := c.Font(0)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font collection: %w", err)
	}
	return f, nil
}

// parseShapingFont parses font data for pictograph shaping.
func parseShapingFont(data []byte, collection bool) (*gtfont.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !collection {
		face, err := gtfont.ParseTTF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse font: %w", err)
		}
		return face.Font, nil
	}
	faces, err := gtfont.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
	}
	if len(faces) == 0 {
		return nil, ErrEmptyFontData
	}
	return faces[0].Font, nil
}

// readFont reads a font file, returning fs.ErrNotExist unchanged so callers
// can tell a missing file from a broken one.
func readFont(path string) ([]byte, error) {
	// #nosec G304 -- font paths come from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return data, nil
}

// loadOutlineFont walks paths and returns the first font that loads, or
// the embedded fallback.
func loadOutlineFont(paths []string, fallback []byte) *opentype.Font {
	for _, path := range paths {
		data, err := readFont(path)
		if err != nil {
			logLoadFailure(path, err)
			continue
		}
		f, err := parseOutlineFont(data, isCollection(path))
		if err != nil {
			logLoadFailure(path, err)
			continue
		}
		glance.Logger().Debug("text: loaded font", "path", path)
		return f
	}
	f, err := opentype.Parse(fallback)
	if err != nil {
		// The embedded Go fonts are known good.
		panic(err)
	}
	glance.Logger().Debug("text: using embedded font")
	return f
}

// loadPictographFonts returns every loadable font among paths, in order.
func loadPictographFonts(paths []string) []*gtfont.Font {
	var fonts []*gtfont.Font
	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		if seen[path] {
			continue
		}
		seen[path] = true

		data, err := readFont(path)
		if err != nil {
			logLoadFailure(path, err)
			continue
		}
		f, err := parseShapingFont(data, isCollection(path))
		if err != nil {
			logLoadFailure(path, err)
			continue
		}
		glance.Logger().Debug("text: loaded pictograph font", "path", path)
		fonts = append(fonts, f)
	}
	return fonts
}

// logLoadFailure logs missing files at debug level and files that exist but
// fail to load at warn level.
func logLoadFailure(path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		glance.Logger().Debug("text: font not found", "path", path)
		return
	}
	glance.Logger().Warn("text: font failed to load", "path", path, "err", err)
}

// candidatePaths joins configured paths with the system list.
func candidatePaths(configured, system []string, useSystem bool) []string {
	paths := append([]string(nil), configured...)
	if useSystem {
		paths = append(paths, system...)
	}
	return paths
}

// embedded fallbacks used when no configured or system font loads.
var (
	embeddedRegular = goregular.TTF
	embeddedBold    = gobold.TTF
)
