package widget

import (
	"strconv"

	"github.com/gogpu/glance/ui"
)

// Progress shows a value against a target with a bar and a percentage.
//
// Options: target (100), unit (default the entity unit), show_target
// (true), icon.
func Progress(cfg Config, st State) ui.Node {
	o := cfg.Options
	v, ok := numeric(st.Entity, "")
	display := "0"
	if ok {
		display = strconv.FormatFloat(v, 'f', 0, 64)
	}
	unit := o.String("unit", "")
	if unit == "" && st.Entity != nil {
		unit = st.Entity.Unit
	}
	target := o.Float("target", 100)
	if target == 0 {
		target = 100
	}
	percent := 0.0
	if target > 0 {
		percent = min(100, v/target*100)
	}

	name := cfg.Label
	if name == "" && st.Entity != nil {
		name = st.Entity.FriendlyName
	}
	if name == "" {
		name = "Progress"
	}

	value := display
	if o.Bool("show_target", true) {
		value += "/" + strconv.FormatFloat(target, 'f', 0, 64)
	}
	if unit != "" {
		value += " " + unit
	}

	var top []ui.Node
	if icon := o.String("icon", ""); icon != "" {
		top = append(top, ui.Icon{Name: icon, Min: 10, Max: 24, Color: cfg.Color, Tone: ui.ToneAccent})
	}
	top = append(top,
		ui.Text{Text: upper(name), Size: ui.Small, Tone: ui.ToneSecondary, Align: ui.AlignStart, Truncate: true},
		ui.Spacer{},
		ui.Text{Text: value, Size: ui.Regular, Value: true},
	)

	return ui.Column{Gap: 6, Justify: ui.JustifyCenter, Align: ui.AlignStretch, Children: []ui.Node{
		ui.Row{Children: top, Gap: 4},
		ui.Row{Gap: 6, Align: ui.AlignCenter, Children: []ui.Node{
			ui.Expanded{Child: ui.Center{Child: ui.Bar{Percent: percent, Color: cfg.Color}}},
			ui.Text{Text: strconv.FormatFloat(max(percent, 0), 'f', 0, 64) + "%", Size: ui.Small},
		}},
	}}
}

// MultiProgress shows a progress row for each configured item.
//
// Options: title, items (tables with entity, label, target (100), color,
// icon, unit).
func MultiProgress(cfg Config, st State) ui.Node {
	o := cfg.Options

	var rows []ui.Node
	if title := o.String("title", cfg.Label); title != "" {
		rows = append(rows, ui.Text{Text: upper(title), Size: ui.Small, Tone: ui.ToneSecondary, Align: ui.AlignStart, Truncate: true})
	}
	for _, item := range listEntries(o, "items") {
		opts := item.opts
		e := st.EntityByID(item.id)
		v, _ := numeric(e, "")
		name := item.label
		if name == "" {
			name = e.Name()
		}
		if name == "" {
			name = "Item"
		}
		unit := opts.String("unit", "")
		if unit == "" && e != nil {
			unit = e.Unit
		}
		target := opts.Float("target", 100)
		percent := 0.0
		if target > 0 {
			percent = max(min(100, v/target*100), 0)
		}
		value := strconv.FormatFloat(v, 'f', 0, 64) + "/" + strconv.FormatFloat(target, 'f', 0, 64)
		if unit != "" {
			value += " " + unit
		}
		col := opts.Color("color", cfg.Color)

		var top []ui.Node
		if icon := opts.String("icon", ""); icon != "" {
			top = append(top, ui.Icon{Name: icon, Min: 8, Max: 16, Color: col, Tone: ui.ToneAccent})
		}
		top = append(top,
			ui.Text{Text: upper(name), Size: ui.Tiny, Tone: ui.ToneSecondary, Align: ui.AlignStart, Truncate: true},
			ui.Spacer{},
			ui.Text{Text: value, Size: ui.Tiny},
		)
		rows = append(rows, ui.Column{Gap: 2, Align: ui.AlignStretch, Children: []ui.Node{
			ui.Row{Children: top, Gap: 4},
			ui.Row{Gap: 6, Align: ui.AlignCenter, Children: []ui.Node{
				ui.Expanded{Child: ui.Center{Child: ui.Bar{Percent: percent, Color: col, Height: 4}}},
				ui.Text{Text: strconv.FormatFloat(percent, 'f', 0, 64) + "%", Size: ui.Tiny},
			}},
		}})
	}
	return ui.Column{Children: rows, Gap: 6, Align: ui.AlignStretch, Justify: ui.JustifyCenter}
}
