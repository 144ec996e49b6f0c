package widget

import (
	"strconv"
	"strings"

	"github.com/gogpu/glance/ui"
)

// Gauge shows a numeric entity as a bar, ring or arc.
//
// Options: style ("bar", "ring", "arc"), min (0), max (100), unit (default
// the entity unit), attribute (read the value from an attribute), icon
// (bar style only), show_value (true).
func Gauge(cfg Config, st State) ui.Node {
	o := cfg.Options
	attr := o.String("attribute", "")
	v, ok := numeric(st.Entity, attr)
	display := ui.NoValue
	if ok {
		display = strconv.FormatFloat(v, 'f', 0, 64)
	}
	unit := o.String("unit", "")
	if unit == "" && st.Entity != nil {
		unit = st.Entity.Unit
	}
	if o.Bool("show_value", true) {
		display += unit
	} else {
		display = ""
	}
	percent := Percent(v, o.Float("min", 0), o.Float("max", 100))

	name := cfg.Label
	if name == "" && st.Entity != nil {
		name = st.Entity.FriendlyName
	}
	name = upper(name)

	switch strings.ToLower(o.String("style", "bar")) {
	case "ring":
		return ui.Column{Gap: 2, Justify: ui.JustifyCenter, Children: []ui.Node{
			ui.Stack{Children: []ui.Node{
				ui.Ring{Percent: percent, Color: cfg.Color},
				ui.Center{Child: ui.Text{Text: display, Size: ui.Large, Value: true}},
			}},
			optionalText(name, ui.Tiny),
		}}
	case "arc":
		return ui.Column{Gap: 2, Justify: ui.JustifyCenter, Children: []ui.Node{
			optionalText(name, ui.Small),
			ui.Stack{Children: []ui.Node{
				ui.Arc{Percent: percent, Color: cfg.Color},
				ui.Center{Child: ui.Text{Text: display, Size: ui.Large, Value: true}},
			}},
		}}
	}

	var header []ui.Node
	if icon := o.String("icon", ""); icon != "" {
		header = append(header, ui.Icon{Name: icon, Min: 10, Max: 24, Color: cfg.Color, Tone: ui.ToneAccent})
	}
	header = append(header,
		ui.Text{Text: name, Size: ui.Tiny, Tone: ui.ToneSecondary, Align: ui.AlignStart, Truncate: true},
		ui.Spacer{},
		ui.Text{Text: display, Size: ui.Medium, Bold: true},
	)
	return ui.Column{Gap: 6, Justify: ui.JustifyCenter, Align: ui.AlignStretch, Children: []ui.Node{
		ui.Row{Children: header, Gap: 4},
		ui.Bar{Percent: percent, Color: cfg.Color},
	}}
}

// Percent maps v from [lo, hi] to 0..100, clamped. An empty range gives 0.
func Percent(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return 0
	}
	return min(max((v-lo)/span*100, 0), 100)
}

// numeric parses the entity state, or attribute attr, as a number.
func numeric(e *Entity, attr string) (float64, bool) {
	s, ok := e.Value(attr)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// optionalText is a muted label, or nothing when s is empty.
func optionalText(s string, size ui.FontSize) ui.Node {
	if s == "" {
		return nil
	}
	return ui.Text{Text: s, Size: size, Tone: ui.ToneSecondary, Truncate: true}
}
