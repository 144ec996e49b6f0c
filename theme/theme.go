// Package theme defines the named visual themes of a status screen.
//
// A Theme goes beyond colors: it also sets corner rounding, borders,
// spacing, font weights and optional effects such as a glow around panels
// or a scanline overlay. Themes are immutable values looked up by name:
//
//	t := theme.Lookup("neon")
//	accent := t.Accent(slot)
package theme

import (
	"slices"

	"github.com/gogpu/glance"
)

// BorderStyle selects how panel borders are drawn.
type BorderStyle uint8

const (
	// BorderNone draws no border.
	BorderNone BorderStyle = iota
	// BorderSolid draws a filled panel with a border.
	BorderSolid
	// BorderOutline draws only the border, without a panel fill.
	BorderOutline
)

// String returns the style name.
func (b BorderStyle) String() string {
	switch b {
	case BorderSolid:
		return "solid"
	case BorderOutline:
		return "outline"
	default:
		return "none"
	}
}

// Weight is a font weight for labels.
type Weight uint8

const (
	WeightRegular Weight = iota
	WeightLight
)

// String returns the weight name.
func (w Weight) String() string {
	if w == WeightLight {
		return "light"
	}
	return "regular"
}

// Theme is a named bundle of visual settings.
type Theme struct {
	Name string

	CornerRadius  int
	BorderWidth   int
	Border        BorderStyle
	LayoutPadding int
	// WidgetPadding is the padding inside widgets as a percentage of the
	// widget width.
	WidgetPadding int
	Gap           int

	Background    glance.Color
	PanelFill     glance.Color
	PanelBorder   glance.Color
	TextPrimary   glance.Color
	TextSecondary glance.Color
	Success       glance.Color
	Error         glance.Color

	ValueBold   bool
	LabelWeight Weight

	Glow       bool
	Scanlines  bool
	InvertBars bool

	accents []glance.Color
}

// Accent returns the accent color for slot i, cycling through the palette.
// Negative indexes count from the end.
func (t Theme) Accent(i int) glance.Color {
	if len(t.accents) == 0 {
		return t.TextPrimary
	}
	n := len(t.accents)
	return t.accents[((i%n)+n)%n]
}

// Accents returns a copy of the accent palette.
func (t Theme) Accents() []glance.Color {
	return slices.Clone(t.accents)
}

// PanelPadding returns the inner padding in pixels for a widget of the
// given width.
func (t Theme) PanelPadding(width int) int {
	return width * t.WidgetPadding / 100
}

// Default is the theme used for unknown names.
const Default = "classic"

var (
	Classic = Theme{
		Name:          "classic",
		CornerRadius:  8,
		Border:        BorderNone,
		LayoutPadding: 8,
		WidgetPadding: 6,
		Gap:           6,
		Background:    glance.RGB(0, 0, 0),
		PanelFill:     glance.RGB(18, 18, 18),
		PanelBorder:   glance.RGB(60, 60, 60),
		TextPrimary:   glance.RGB(255, 255, 255),
		TextSecondary: glance.RGB(150, 150, 150),
		Success:       glance.Green,
		Error:         glance.Red,
		ValueBold:     true,
		accents: []glance.Color{
			glance.RGB(27, 158, 119),
			glance.RGB(217, 95, 2),
			glance.RGB(117, 112, 179),
			glance.RGB(231, 41, 138),
			glance.RGB(102, 166, 30),
			glance.RGB(230, 171, 2),
		},
	}

	Minimal = Theme{
		Name:          "minimal",
		BorderWidth:   1,
		Border:        BorderSolid,
		LayoutPadding: 4,
		WidgetPadding: 4,
		Gap:           4,
		Background:    glance.RGB(0, 0, 0),
		PanelFill:     glance.RGB(0, 0, 0),
		PanelBorder:   glance.RGB(80, 80, 80),
		TextPrimary:   glance.RGB(255, 255, 255),
		TextSecondary: glance.RGB(120, 120, 120),
		Success:       glance.Green,
		Error:         glance.Red,
		LabelWeight:   WeightLight,
		accents:       []glance.Color{glance.RGB(100, 200, 255)},
	}

	Neon = Theme{
		Name:          "neon",
		CornerRadius:  4,
		BorderWidth:   3,
		Border:        BorderSolid,
		LayoutPadding: 8,
		WidgetPadding: 6,
		Gap:           6,
		Background:    glance.RGB(0, 0, 0),
		PanelFill:     glance.RGB(10, 10, 15),
		PanelBorder:   glance.RGB(0, 255, 255),
		TextPrimary:   glance.RGB(255, 255, 255),
		TextSecondary: glance.RGB(200, 200, 200),
		Success:       glance.RGB(0, 255, 128),
		Error:         glance.RGB(255, 0, 255),
		ValueBold:     true,
		Glow:          true,
		accents: []glance.Color{
			glance.RGB(0, 255, 255),
			glance.RGB(255, 0, 255),
			glance.RGB(0, 255, 128),
			glance.RGB(255, 100, 200),
			glance.RGB(100, 200, 255),
		},
	}

	Retro = Theme{
		Name:          "retro",
		BorderWidth:   1,
		Border:        BorderOutline,
		LayoutPadding: 10,
		WidgetPadding: 8,
		Gap:           8,
		Background:    glance.RGB(0, 5, 0),
		PanelFill:     glance.RGB(0, 0, 0),
		PanelBorder:   glance.RGB(0, 180, 0),
		TextPrimary:   glance.RGB(0, 255, 0),
		TextSecondary: glance.RGB(0, 150, 0),
		Success:       glance.RGB(0, 255, 0),
		Error:         glance.RGB(255, 180, 0),
		Scanlines:     true,
		InvertBars:    true,
		accents: []glance.Color{
			glance.RGB(0, 255, 0),
			glance.RGB(255, 180, 0),
		},
	}

	Soft = Theme{
		Name:          "soft",
		CornerRadius:  16,
		BorderWidth:   1,
		Border:        BorderSolid,
		LayoutPadding: 12,
		WidgetPadding: 8,
		Gap:           10,
		Background:    glance.RGB(15, 15, 20),
		PanelFill:     glance.RGB(30, 30, 40),
		PanelBorder:   glance.RGB(50, 50, 65),
		TextPrimary:   glance.RGB(240, 240, 245),
		TextSecondary: glance.RGB(140, 140, 155),
		Success:       glance.RGB(140, 200, 160),
		Error:         glance.RGB(220, 140, 140),
		accents: []glance.Color{
			glance.RGB(120, 180, 220),
			glance.RGB(180, 140, 200),
			glance.RGB(140, 200, 160),
			glance.RGB(220, 180, 140),
			glance.RGB(200, 150, 180),
		},
	}
)

var registry = map[string]Theme{
	Classic.Name: Classic,
	Minimal.Name: Minimal,
	Neon.Name:    Neon,
	Retro.Name:   Retro,
	Soft.Name:    Soft,
}

// Lookup returns the theme called name, or Classic for unknown names.
func Lookup(name string) Theme {
	if t, ok := registry[name]; ok {
		return t
	}
	return Classic
}

// Exists reports whether name is a registered theme.
func Exists(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the registered theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
