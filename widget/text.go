package widget

import (
	"strings"

	"github.com/gogpu/glance/ui"
)

// Text shows a static string, or the entity state when an entity is
// available, with an optional label above.
//
// Options: text, size (a font size class; without it the text is fitted
// to the box), align ("left", "center", "right").
func Text(cfg Config, st State) ui.Node {
	o := cfg.Options
	str := o.String("text", "")
	if st.Entity != nil && st.Entity.State != "" {
		str = st.Entity.State
	}

	t := ui.Text{Text: str, Color: cfg.Color, Align: parseAlign(o.String("align", "center"))}
	if name := o.String("size", ""); name != "" {
		size, ok := ui.ParseFontSize(strings.ToLower(name))
		if !ok {
			size = ui.Regular
		}
		t.Size, t.Truncate = size, true
	} else {
		t.Fit, t.MinSize, t.MaxSize = true, 8, 64
	}

	if cfg.Label == "" {
		return ui.Column{Children: []ui.Node{ui.Expanded{Child: t}}, Align: ui.AlignStretch}
	}
	return ui.Column{Gap: 2, Align: ui.AlignStretch, Children: []ui.Node{
		ui.Text{Text: upper(cfg.Label), Size: ui.Small, Tone: ui.ToneSecondary, Truncate: true},
		ui.Expanded{Child: t},
	}}
}

func parseAlign(s string) ui.Align {
	switch strings.ToLower(s) {
	case "left", "start":
		return ui.AlignStart
	case "right", "end":
		return ui.AlignEnd
	default:
		return ui.AlignCenter
	}
}
