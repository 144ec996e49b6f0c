package widget

import (
	"time"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/ui"
)

// Clock shows the current time with an optional date line.
//
// Options: show_date (true), show_seconds (false), time_format ("24h" or
// "12h"), timezone (IANA name, default UTC).
func Clock(cfg Config, st State) ui.Node {
	now := st.Now
	if now.IsZero() {
		now = time.Now()
	}
	if tz := cfg.Options.String("timezone", ""); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			now = now.In(loc)
		} else {
			glance.Logger().Debug("widget: unknown timezone", "timezone", tz, "error", err)
		}
	}

	clock, ampm := formatClock(now, cfg.Options.String("time_format", "24h") == "12h", cfg.Options.Bool("show_seconds", false))

	timeRow := []ui.Node{ui.Text{Text: clock, Size: ui.XLarge, Bold: true, Color: cfg.Color}}
	if ampm != "" {
		timeRow = append(timeRow, ui.Text{Text: ampm, Size: ui.Small, Tone: ui.ToneSecondary})
	}

	var children []ui.Node
	if cfg.Label != "" {
		children = append(children, ui.Text{Text: label(cfg, ""), Size: ui.Small, Tone: ui.ToneSecondary})
	}
	children = append(children, ui.Row{Children: timeRow, Gap: 5, Align: ui.AlignStart})
	if cfg.Options.Bool("show_date", true) {
		children = append(children, ui.Text{Text: now.Format("Mon, Jan 02"), Size: ui.Regular, Tone: ui.ToneSecondary})
	}
	return ui.Column{Children: children, Gap: 4, Justify: ui.JustifyCenter}
}

// formatClock returns the time text and, for 12 hour clocks, the AM/PM
// marker.
func formatClock(t time.Time, twelve, seconds bool) (string, string) {
	layout := "15:04"
	if twelve {
		layout = "03:04"
	}
	if seconds {
		layout += ":05"
	}
	if twelve {
		return t.Format(layout), t.Format("PM")
	}
	return t.Format(layout), ""
}
