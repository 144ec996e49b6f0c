// Package widget maps widget configurations and entity snapshots to
// component trees.
//
// A widget is a pure function of its Config and the State sampled for the
// current frame. It never draws; it returns a ui.Node that the caller
// places into a screen slot:
//
//	m, ok := widget.Lookup("gauge")
//	if ok {
//		tree := m(cfg, widget.State{Entity: &widget.Entity{State: "42", Unit: "%"}})
//		img, err := ui.Render(tree, 120, 120, glance.Black)
//	}
//
// Missing data never fails a widget; placeholders ("--", "No data") are
// rendered instead.
package widget

import (
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/curve"
	"github.com/gogpu/glance/ui"
)

// Config describes one widget instance.
type Config struct {
	Kind    string       `yaml:"type" toml:"type"`
	Label   string       `yaml:"label,omitempty" toml:"label,omitempty"`
	Entity  string       `yaml:"entity,omitempty" toml:"entity,omitempty"`
	Color   glance.Color `yaml:"color,omitempty" toml:"color,omitempty"`
	Options Options      `yaml:"options,omitempty" toml:"options,omitempty"`
}

// Entity is a snapshot of one sensor or device.
type Entity struct {
	ID           string            `yaml:"id" toml:"id"`
	State        string            `yaml:"state" toml:"state"`
	Unit         string            `yaml:"unit,omitempty" toml:"unit,omitempty"`
	FriendlyName string            `yaml:"name,omitempty" toml:"name,omitempty"`
	Attributes   map[string]string `yaml:"attributes,omitempty" toml:"attributes,omitempty"`
	// Forecast holds the upcoming days of a weather entity.
	Forecast []Forecast `yaml:"forecast,omitempty" toml:"forecast,omitempty"`
}

// Forecast is one day of a weather forecast.
type Forecast struct {
	// Date is an ISO date or a day name.
	Date        string  `yaml:"datetime" toml:"datetime"`
	Condition   string  `yaml:"condition" toml:"condition"`
	Temperature float64 `yaml:"temperature" toml:"temperature"`
}

// Name returns the friendly name, or the ID when there is none.
func (e *Entity) Name() string {
	if e == nil {
		return ""
	}
	if e.FriendlyName != "" {
		return e.FriendlyName
	}
	return e.ID
}

// Value returns the entity state, or attr when it is set and present.
func (e *Entity) Value(attr string) (string, bool) {
	if e == nil {
		return "", false
	}
	if attr != "" {
		v, ok := e.Attributes[attr]
		return v, ok
	}
	return e.State, e.State != ""
}

// State is everything a widget may read for one frame.
type State struct {
	// Entity is nil when the configured entity is unavailable.
	Entity *Entity
	// History is the recent numeric series, oldest first.
	History []float64
	// Samples is the timestamped series used for candles.
	Samples []curve.Sample
	Now     time.Time
	// Entities holds every entity of the frame by ID, for widgets that
	// list several of them.
	Entities map[string]*Entity
}

// EntityByID returns the entity with the given ID, or nil.
func (s State) EntityByID(id string) *Entity {
	if id == "" {
		return nil
	}
	if e := s.Entities[id]; e != nil {
		return e
	}
	if s.Entity != nil && s.Entity.ID == id {
		return s.Entity
	}
	return nil
}

// Mapper builds the component tree of one widget kind.
type Mapper func(Config, State) ui.Node

var (
	registryMu sync.RWMutex
	registry   = map[string]Mapper{
		"clock":          Clock,
		"entity":         EntityValue,
		"gauge":          Gauge,
		"chart":          Chart,
		"candlestick":    Candlestick,
		"progress":       Progress,
		"text":           Text,
		"status":         Status,
		"status_list":    StatusList,
		"multi_progress": MultiProgress,
		"media":          Media,
		"weather":        Weather,
	}
)

// Lookup returns the mapper registered for kind.
func Lookup(kind string) (Mapper, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[strings.ToLower(kind)]
	return m, ok
}

// Register adds or replaces the mapper for kind.
func Register(kind string, m Mapper) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(kind)] = m
}

// Kinds returns the registered widget kinds, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Build maps cfg with the registered mapper. Unknown kinds build an empty
// node.
func Build(cfg Config, st State) ui.Node {
	m, ok := Lookup(cfg.Kind)
	if !ok {
		glance.Logger().Debug("widget: unknown kind", "kind", cfg.Kind)
		return ui.Empty{}
	}
	return m(cfg, st)
}

// upper upper-cases s. A Caser is stateful, so each call gets its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// label returns the configured label, or fallback, upper-cased.
func label(cfg Config, fallback string) string {
	if cfg.Label != "" {
		return upper(cfg.Label)
	}
	return upper(fallback)
}
