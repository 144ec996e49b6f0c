package glance

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("glance: invalid color")

// Color is an opaque RGB color with 8-bit channels.
//
// The zero Color is unset: component fields and Render treat it as "use
// the theme default". Colors built with RGB, ParseHex or the package
// variables are always set, so RGB(0, 0, 0) is an explicit black.
type Color struct {
	R, G, B uint8

	set bool
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// Common colors.
var (
	White    = RGB(255, 255, 255)
	Black    = RGB(0, 0, 0)
	Cyan     = RGB(0, 212, 255)
	Green    = RGB(0, 255, 136)
	Yellow   = RGB(255, 204, 0)
	Red      = RGB(255, 107, 107)
	Gray     = RGB(136, 136, 136)
	DarkGray = RGB(68, 68, 68)
	Panel    = RGB(18, 18, 18)
)

// RGB creates a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsZero reports whether c is the unset zero Color.
func (c Color) IsZero() bool {
	return !c.set
}

// Or returns c, or fallback when c is unset.
func (c Color) Or(fallback Color) Color {
	if c.IsZero() {
		return fallback
	}
	return c
}

// RGBA implements color.Color. Alpha is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// NRGBA returns c with the given alpha.
func (c Color) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "#rgb" and
// "#rrggbb" with or without the leading '#'.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHex parses "#rrggbb" or "#rgb". The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if s[0] != '#' {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}
	return fromColorful(cf), nil
}

// MustHex is like ParseHex but panics on error. Intended for package-level
// color tables.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend interpolates linearly per channel: t=0 gives a, t=1 gives b.
// Channels are truncated and clamped to [0, 255].
func Blend(a, b Color, t float64) Color {
	lerp := func(x, y uint8) uint8 {
		return clamp255(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGB(lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B))
}

// Dim multiplies every channel by f, truncating and clamping to [0, 255].
func Dim(c Color, f float64) Color {
	return RGB(clamp255(float64(c.R)*f), clamp255(float64(c.G)*f), clamp255(float64(c.B)*f))
}

// BlendLab interpolates a and b in CIE L*a*b* space. Used for tints where
// a perceptually even mix matters (glow halos, scanline shading).
func BlendLab(a, b Color, t float64) Color {
	return fromColorful(a.colorful().BlendLab(b.colorful(), t).Clamped())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cf colorful.Color) Color {
	return RGB(cf.RGB255())
}

// clamp255 truncates toward zero and clamps to [0, 255].
func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
