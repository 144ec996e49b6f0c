package widget

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/ui"
)

// weatherIcons maps weather conditions to built-in icons.
var weatherIcons = map[string]string{
	"sunny":           "sun",
	"clear-night":     "moon",
	"partlycloudy":    "cloud",
	"cloudy":          "cloud",
	"rainy":           "rain",
	"pouring":         "rain",
	"snowy":           "cloud",
	"fog":             "cloud",
	"windy":           "wind",
	"lightning":       "bolt",
	"lightning-rainy": "bolt",
}

// fullWeatherHeight is the slot height above which the forecast is shown.
const fullWeatherHeight = 120

// WeatherIcon returns the icon for a weather condition, "sun" when the
// condition is unknown.
func WeatherIcon(condition string) string {
	if icon, ok := weatherIcons[strings.ToLower(condition)]; ok {
		return icon
	}
	return "sun"
}

// Weather shows the current condition and temperature, and in tall slots
// a forecast.
//
// Reads the entity state as the condition and the attributes temperature,
// humidity, wind_speed and wind_speed_unit; the forecast comes from
// Entity.Forecast. Options: show_forecast (true), forecast_days (3),
// show_humidity (true), show_wind (false).
func Weather(cfg Config, st State) ui.Node {
	e := st.Entity
	if e == nil {
		return ui.Text{Text: "No Weather Data", Size: ui.Regular, Tone: ui.ToneSecondary}
	}
	o := cfg.Options

	temp := ui.NoValue
	if t, ok := e.Attributes["temperature"]; ok && t != "" {
		temp = t + "°"
	}
	humidity := e.Attributes["humidity"]
	if humidity == "" {
		humidity = ui.NoValue
	}
	icon := ui.Icon{Name: WeatherIcon(e.State), Color: glance.Yellow}

	var extras []ui.Node
	if o.Bool("show_humidity", true) {
		extras = append(extras,
			ui.Icon{Name: "drop", Min: 8, Max: 14, Color: glance.Cyan},
			ui.Text{Text: humidity + "%", Size: ui.Tiny, Color: glance.Cyan},
		)
	}
	if wind := e.Attributes["wind_speed"]; wind != "" && o.Bool("show_wind", false) {
		if unit := e.Attributes["wind_speed_unit"]; unit != "" {
			wind += " " + unit
		}
		extras = append(extras,
			ui.Icon{Name: "wind", Min: 8, Max: 14, Tone: ui.ToneSecondary},
			ui.Text{Text: wind, Size: ui.Tiny, Tone: ui.ToneSecondary},
		)
	}

	compactIcon := icon
	compactIcon.Min, compactIcon.Max = 16, 32
	compactSide := []ui.Node{ui.Text{Text: temp, Size: ui.Large, Value: true, Align: ui.AlignEnd}}
	if o.Bool("show_humidity", true) {
		compactSide = append(compactSide, ui.Text{Text: humidity + "%", Size: ui.Tiny, Color: glance.Cyan, Align: ui.AlignEnd})
	}
	compact := ui.Row{Gap: 6, Children: []ui.Node{
		compactIcon,
		ui.Spacer{},
		ui.Column{Gap: 2, Align: ui.AlignEnd, Children: compactSide},
	}}

	days := e.Forecast[:min(len(e.Forecast), max(o.Int("forecast_days", 3), 0))]
	if !o.Bool("show_forecast", true) || len(days) == 0 {
		return compact
	}

	fullIcon := icon
	fullIcon.Min, fullIcon.Max = 24, 48
	full := []ui.Node{
		fullIcon,
		ui.Text{Text: temp, Size: ui.XLarge, Value: true},
		ui.Text{Text: conditionText(e.State), Size: ui.Small, Tone: ui.ToneSecondary, Truncate: true},
	}
	if len(extras) > 0 {
		full = append(full, ui.Row{Gap: 4, Children: extras})
	}
	cols := make([]ui.Node, len(days))
	for i, d := range days {
		cols[i] = ui.Expanded{Child: ui.Column{Gap: 2, Children: []ui.Node{
			ui.Text{Text: upper(dayName(d.Date, i)), Size: ui.Tiny, Tone: ui.ToneSecondary},
			ui.Icon{Name: WeatherIcon(d.Condition), Min: 10, Max: 16, Tone: ui.ToneSecondary},
			ui.Text{Text: strconv.FormatFloat(d.Temperature, 'f', 0, 64) + "°", Size: ui.Tiny},
		}}}
	}
	full = append(full, ui.Spacer{}, ui.Row{Children: cols})

	return ui.Responsive{
		Threshold: fullWeatherHeight,
		Full:      ui.Column{Gap: 2, Align: ui.AlignStretch, Children: full},
		Compact:   compact,
	}
}

// conditionText turns "clear-night" into "Clear Night".
func conditionText(condition string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(condition, "-", " "))
}

// dayName returns the weekday of an ISO date, the first three letters of
// anything else, or "D1", "D2", ... when the date is empty.
func dayName(date string, i int) string {
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Weekday().String()[:3]
		}
	}
	if date == "" {
		return "D" + strconv.Itoa(i+1)
	}
	r := []rune(date)
	return string(r[:min(len(r), 3)])
}
