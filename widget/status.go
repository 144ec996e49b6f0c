package widget

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/ui"
)

// onStates are the entity states shown as on.
var onStates = []string{"on", "true", "home", "locked", "1"}

// IsOn reports whether an entity state reads as on.
func IsOn(state string) bool {
	return slices.Contains(onStates, strings.ToLower(strings.TrimSpace(state)))
}

// Status shows an on/off indicator dot, the entity name and a status word.
//
// Options: on_color, off_color (hex; default the theme success and error
// colors), on_text ("ON"), off_text ("OFF"), icon, show_status_text (true).
func Status(cfg Config, st State) ui.Node {
	o := cfg.Options
	on := st.Entity != nil && IsOn(st.Entity.State)

	tone, col, word := ui.ToneError, o.Color("off_color", glance.Color{}), o.String("off_text", "OFF")
	if on {
		tone, col, word = ui.ToneSuccess, o.Color("on_color", glance.Color{}), o.String("on_text", "ON")
	}

	name := cfg.Label
	if name == "" {
		name = st.Entity.Name()
	}
	if name == "" {
		name = "Unknown"
	}

	children := []ui.Node{ui.Icon{Name: "dot", Min: 6, Max: 14, Color: col, Tone: tone}}
	if icon := o.String("icon", ""); icon != "" {
		children = append(children, ui.Icon{Name: icon, Min: 10, Max: 24, Tone: ui.ToneSecondary})
	}
	children = append(children, ui.Text{Text: name, Size: ui.Small, Align: ui.AlignStart, Truncate: true})
	if o.Bool("show_status_text", true) {
		children = append(children, ui.Spacer{}, ui.Text{Text: word, Size: ui.Small, Color: col, Tone: tone})
	}
	return ui.Row{Children: children, Gap: 6}
}

// listEntry is one configured row of a list widget.
type listEntry struct {
	id, label string
	opts      Options
}

// listEntries reads key as a list of entity IDs, [id, label] pairs or
// tables with an entity and optional label.
func listEntries(o Options, key string) []listEntry {
	var out []listEntry
	for _, item := range o.List(key) {
		switch v := item.(type) {
		case string:
			out = append(out, listEntry{id: v})
		case []any:
			var e listEntry
			if len(v) > 0 {
				e.id = fmt.Sprint(v[0])
			}
			if len(v) > 1 {
				e.label = fmt.Sprint(v[1])
			}
			out = append(out, e)
		default:
			if m, ok := asOptions(v); ok {
				id := m.String("entity", m.String("entity_id", ""))
				out = append(out, listEntry{id: id, label: m.String("label", ""), opts: m})
			}
		}
	}
	return out
}

// StatusList shows one on/off row per entity.
//
// Options: entities (IDs, [id, label] pairs or tables), title, on_color,
// off_color, on_text, off_text. Status words are shown only when on_text
// or off_text is set.
func StatusList(cfg Config, st State) ui.Node {
	o := cfg.Options
	onWord, offWord := o.String("on_text", ""), o.String("off_text", "")

	var rows []ui.Node
	if title := o.String("title", cfg.Label); title != "" {
		rows = append(rows, ui.Text{Text: upper(title), Size: ui.Small, Tone: ui.ToneSecondary, Align: ui.AlignStart, Truncate: true})
	}
	for _, entry := range listEntries(o, "entities") {
		e := st.EntityByID(entry.id)
		on := e != nil && IsOn(e.State)
		name := entry.label
		if name == "" {
			name = e.Name()
		}
		if name == "" {
			name = entry.id
		}

		tone, col, word := ui.ToneError, o.Color("off_color", glance.Color{}), offWord
		if on {
			tone, col, word = ui.ToneSuccess, o.Color("on_color", glance.Color{}), onWord
		}
		row := []ui.Node{
			ui.Icon{Name: "dot", Min: 4, Max: 10, Color: col, Tone: tone},
			ui.Text{Text: name, Size: ui.Tiny, Align: ui.AlignStart, Truncate: true},
		}
		if word != "" {
			row = append(row, ui.Spacer{}, ui.Text{Text: word, Size: ui.Tiny, Color: col, Tone: tone})
		}
		rows = append(rows, ui.Row{Children: row, Gap: 6})
	}
	return ui.Column{Children: rows, Gap: 4, Align: ui.AlignStretch, Justify: ui.JustifyCenter}
}
