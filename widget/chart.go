package widget

import (
	"slices"
	"strconv"

	"github.com/gogpu/glance/curve"
	"github.com/gogpu/glance/ui"
)

// DefaultCandleCount is the number of candles when candle_count is unset.
const DefaultCandleCount = 20

// Chart shows the history series as a filled sparkline with the current
// value and the min/max range.
//
// Options: show_value (true), show_range (true), smooth (true).
func Chart(cfg Config, st State) ui.Node {
	o := cfg.Options
	var header []ui.Node
	if cfg.Label != "" {
		header = append(header, ui.Text{Text: upper(cfg.Label), Size: ui.Small, Tone: ui.ToneSecondary, Align: ui.AlignStart, Truncate: true})
	}
	if v, ok := numeric(st.Entity, ""); ok && o.Bool("show_value", true) {
		header = append(header, ui.Spacer{},
			ui.Text{Text: format1(v) + st.Entity.Unit, Size: ui.Regular, Color: cfg.Color, Tone: ui.ToneAccent, Value: true})
	}

	children := []ui.Node{ui.Row{Children: header, Gap: 4}}
	if len(st.History) < 2 {
		children = append(children, ui.Spacer{}, ui.Text{Text: ui.NoData, Size: ui.Small, Tone: ui.ToneSecondary}, ui.Spacer{})
		return ui.Column{Children: children, Gap: 2, Align: ui.AlignStretch}
	}

	children = append(children, ui.Expanded{Child: ui.Sparkline{Data: st.History, Color: cfg.Color, Fill: true, Smooth: o.Bool("smooth", true)}})
	if o.Bool("show_range", true) {
		children = append(children, ui.Row{Children: []ui.Node{
			ui.Text{Text: format1(slices.Min(st.History)), Size: ui.Small, Tone: ui.ToneSecondary},
			ui.Spacer{},
			ui.Text{Text: format1(slices.Max(st.History)), Size: ui.Small, Tone: ui.ToneSecondary},
		}})
	}
	return ui.Column{Children: children, Gap: 2, Align: ui.AlignStretch}
}

// Candlestick aggregates the timestamped series into OHLC candles.
//
// Options: candle_interval ("1 hour", "4 hours", "1 day"), candle_count
// (20), show_value (true). The current value is green when the last
// candle closed at or above its open and red otherwise.
func Candlestick(cfg Config, st State) ui.Node {
	o := cfg.Options
	count := o.Int("candle_count", DefaultCandleCount)
	if count <= 0 {
		count = DefaultCandleCount
	}
	candles := curve.AggregateOHLC(st.Samples, curve.Interval(o.String("candle_interval", "4 hours")), count)

	name := cfg.Label
	if name == "" {
		name = st.Entity.Name()
	}
	var header []ui.Node
	if name != "" {
		header = append(header, ui.Text{Text: upper(name), Size: ui.Small, Tone: ui.ToneSecondary, Align: ui.AlignStart, Truncate: true})
	}
	if v, ok := numeric(st.Entity, ""); ok && o.Bool("show_value", true) {
		tone := ui.ToneSecondary
		if len(candles) > 0 {
			tone = ui.ToneError
			if candles[len(candles)-1].Bullish() {
				tone = ui.ToneSuccess
			}
		}
		if len(header) > 0 {
			header = append(header, ui.Spacer{})
		}
		header = append(header, ui.Text{Text: format1(v) + st.Entity.Unit, Size: ui.Regular, Tone: tone, Value: true, Align: ui.AlignEnd})
	}

	return ui.Column{Gap: 2, Align: ui.AlignStretch, Children: []ui.Node{
		ui.Row{Children: header, Gap: 4},
		ui.Expanded{Child: ui.Candles{Data: candles}},
	}}
}

func format1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
