package theme

import (
	"slices"
	"testing"

	"github.com/gogpu/glance"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"classic", "classic"},
		{"minimal", "minimal"},
		{"neon", "neon"},
		{"retro", "retro"},
		{"soft", "soft"},
		{"", Default},
		{"Neon", Default},
		{"unknown", Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.name).Name; got != tt.want {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	want := []string{"classic", "minimal", "neon", "retro", "soft"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for _, name := range want {
		if !Exists(name) {
			t.Errorf("Exists(%q) = false", name)
		}
	}
	if Exists("plasma") {
		t.Error("Exists(\"plasma\") = true")
	}
}

func TestAccentCycles(t *testing.T) {
	th := Lookup("retro")
	tests := []struct {
		i    int
		want glance.Color
	}{
		{0, glance.RGB(0, 255, 0)},
		{1, glance.RGB(255, 180, 0)},
		{2, glance.RGB(0, 255, 0)},
		{7, glance.RGB(255, 180, 0)},
		{-1, glance.RGB(255, 180, 0)},
	}
	for _, tt := range tests {
		if got := th.Accent(tt.i); got != tt.want {
			t.Errorf("Accent(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
	if got := (Theme{TextPrimary: glance.White}).Accent(3); got != glance.White {
		t.Errorf("Accent() without palette = %v, want text color", got)
	}
}

func TestAccentsIsACopy(t *testing.T) {
	a := Lookup("classic").Accents()
	a[0] = glance.Black
	if Lookup("classic").Accent(0) == glance.Black {
		t.Error("modifying Accents() changed the registered theme")
	}
}

func TestThemeFlags(t *testing.T) {
	tests := []struct {
		name                        string
		glow, scanlines, invertBars bool
		border                      BorderStyle
	}{
		{"classic", false, false, false, BorderNone},
		{"minimal", false, false, false, BorderSolid},
		{"neon", true, false, false, BorderSolid},
		{"retro", false, true, true, BorderOutline},
		{"soft", false, false, false, BorderSolid},
	}
	for _, tt := range tests {
		th := Lookup(tt.name)
		if th.Glow != tt.glow || th.Scanlines != tt.scanlines || th.InvertBars != tt.invertBars || th.Border != tt.border {
			t.Errorf("%s flags = (%v, %v, %v, %v), want (%v, %v, %v, %v)", tt.name,
				th.Glow, th.Scanlines, th.InvertBars, th.Border,
				tt.glow, tt.scanlines, tt.invertBars, tt.border)
		}
		if th.Success.IsZero() || th.Error.IsZero() {
			t.Errorf("%s has no success/error colors", tt.name)
		}
	}
}

func TestPanelPadding(t *testing.T) {
	if got := Lookup("classic").PanelPadding(100); got != 6 {
		t.Errorf("PanelPadding(100) = %d, want 6", got)
	}
	if got := Lookup("soft").PanelPadding(50); got != 4 {
		t.Errorf("PanelPadding(50) = %d, want 4", got)
	}
}

func TestStrings(t *testing.T) {
	if BorderOutline.String() != "outline" || BorderNone.String() != "none" || BorderSolid.String() != "solid" {
		t.Error("BorderStyle.String() mismatch")
	}
	if WeightLight.String() != "light" || WeightRegular.String() != "regular" {
		t.Error("Weight.String() mismatch")
	}
}
