package widget

import "github.com/gogpu/glance/ui"

// EntityValue shows an entity state with its unit and name.
//
// Options: show_name (true), show_unit (true), icon (name of a built-in
// icon; switches to the icon layout).
func EntityValue(cfg Config, st State) ui.Node {
	value, unit, name := ui.NoValue, "", cfg.Label
	if st.Entity != nil {
		value = st.Entity.State
		if cfg.Options.Bool("show_unit", true) {
			unit = st.Entity.Unit
		}
		if name == "" {
			name = st.Entity.Name()
		}
	}
	if name == "" {
		name = cfg.Entity
	}
	if name == "" {
		name = "Unknown"
	}
	text := value + unit
	showName := cfg.Options.Bool("show_name", true)

	var children []ui.Node
	if icon := cfg.Options.String("icon", ""); icon != "" {
		children = append(children,
			ui.Icon{Name: icon, Min: 12, Max: 24, Color: cfg.Color, Tone: ui.ToneAccent},
			ui.Text{Text: text, Size: ui.Medium, Bold: true, Value: true, Truncate: true},
		)
	} else {
		children = append(children,
			ui.Text{Text: text, Size: ui.Large, Color: cfg.Color, Tone: ui.ToneAccent, Value: true, Truncate: true},
		)
	}
	if showName {
		children = append(children, ui.Text{Text: upper(name), Size: ui.Tiny, Tone: ui.ToneSecondary, Truncate: true})
	}
	return ui.Column{Children: children, Gap: 4, Justify: ui.JustifyCenter}
}
