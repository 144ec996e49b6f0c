package widget

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/glance/ui"
)

// idleStates are the media player states shown as paused.
var idleStates = []string{"off", "unavailable", "unknown", "idle"}

// Media shows what a media player is playing.
//
// Reads the entity attributes media_title, media_artist,
// media_album_name, media_position and media_duration (seconds).
// Options: show_artist (true), show_album (false), show_progress (true).
func Media(cfg Config, st State) ui.Node {
	e := st.Entity
	if e == nil || slices.Contains(idleStates, strings.ToLower(e.State)) {
		return ui.Column{Gap: 6, Justify: ui.JustifyCenter, Children: []ui.Node{
			ui.Icon{Name: "pause", Min: 16, Max: 40, Tone: ui.ToneSecondary},
			ui.Text{Text: "PAUSED", Size: ui.Small, Tone: ui.ToneSecondary},
		}}
	}
	o := cfg.Options

	title := e.Attributes["media_title"]
	if title == "" {
		title = "Unknown"
	}
	rows := []ui.Node{
		ui.Text{Text: "NOW PLAYING", Size: ui.Small, Tone: ui.ToneSecondary},
		ui.Text{Text: title, Size: ui.Regular, Value: true, Truncate: true},
	}
	if artist := e.Attributes["media_artist"]; artist != "" && o.Bool("show_artist", true) {
		rows = append(rows, ui.Text{Text: artist, Size: ui.Small, Tone: ui.ToneSecondary, Truncate: true})
	}
	if album := e.Attributes["media_album_name"]; album != "" && o.Bool("show_album", false) {
		rows = append(rows, ui.Text{Text: album, Size: ui.Small, Tone: ui.ToneSecondary, Truncate: true})
	}

	position, _ := numeric(e, "media_position")
	duration, _ := numeric(e, "media_duration")
	if duration > 0 && o.Bool("show_progress", true) {
		rows = append(rows,
			ui.Bar{Percent: min(100, position/duration*100), Color: cfg.Color},
			ui.Row{Children: []ui.Node{
				ui.Text{Text: mediaTime(position), Size: ui.Small, Tone: ui.ToneSecondary},
				ui.Spacer{},
				ui.Text{Text: mediaTime(duration), Size: ui.Small, Tone: ui.ToneSecondary},
			}},
		)
	}
	return ui.Column{Children: rows, Gap: 4, Align: ui.AlignStretch, Justify: ui.JustifyCenter}
}

// mediaTime formats seconds as M:SS, or H:MM:SS from one hour.
func mediaTime(seconds float64) string {
	s := max(int(seconds), 0)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s%3600/60, s%60)
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
