package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/canvas"
	"github.com/gogpu/glance/curve"
	"github.com/gogpu/glance/screen"
	"github.com/gogpu/glance/text"
	"github.com/gogpu/glance/theme"
	"github.com/gogpu/glance/widget"
)

var (
	errConfigFormat = errors.New("glance: unsupported config format")
	errOutputFormat = errors.New("glance: output format must be jpeg or png")
)

// Config is a screen description file.
type Config struct {
	Layout     string       `yaml:"layout" toml:"layout"`
	Theme      string       `yaml:"theme" toml:"theme"`
	Width      int          `yaml:"width" toml:"width"`
	Height     int          `yaml:"height" toml:"height"`
	Scale      int          `yaml:"scale" toml:"scale"`
	Background glance.Color `yaml:"background,omitempty" toml:"background,omitempty"`
	// Now fixes the clock time; zero means the current time.
	Now time.Time `yaml:"now,omitempty" toml:"now,omitempty"`

	Output   OutputConfig    `yaml:"output" toml:"output"`
	Fonts    FontConfig      `yaml:"fonts" toml:"fonts"`
	Entities []EntityConfig  `yaml:"entities" toml:"entities"`
	Widgets  []widget.Config `yaml:"widgets" toml:"widgets"`
}

// OutputConfig controls encoding.
type OutputConfig struct {
	Format   string `yaml:"format" toml:"format"`
	Quality  int    `yaml:"quality" toml:"quality"`
	MaxBytes int    `yaml:"max_bytes" toml:"max_bytes"`
	Rotation int    `yaml:"rotation" toml:"rotation"`
}

// FontConfig lists font files tried before the built-in fallback.
type FontConfig struct {
	Regular    []string `yaml:"regular" toml:"regular"`
	Bold       []string `yaml:"bold" toml:"bold"`
	Pictograph []string `yaml:"pictograph" toml:"pictograph"`
	NoSystem   bool     `yaml:"no_system" toml:"no_system"`
	CacheFaces int      `yaml:"cache_faces" toml:"cache_faces"`
}

// EntityConfig is a sensor snapshot with its history.
type EntityConfig struct {
	widget.Entity `yaml:",inline"`
	History       []float64      `yaml:"history,omitempty" toml:"history,omitempty"`
	Samples       []curve.Sample `yaml:"samples,omitempty" toml:"samples,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Layout: string(screen.DefaultLayout),
		Theme:  theme.Default,
		Width:  240,
		Height: 240,
		Scale:  canvas.DefaultScale,
		Output: OutputConfig{
			Format:   "jpeg",
			Quality:  canvas.DefaultQuality,
			MaxBytes: canvas.DefaultMaxBytes,
		},
	}
}

// loadConfig reads a YAML or TOML file, picked by extension, and fills
// unset fields from the defaults.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("glance: read config: %w", err)
	}
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", errConfigFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("glance: parse %s: %w", path, err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if err := mergo.Merge(c, defaultConfig()); err != nil {
		return fmt.Errorf("glance: merge defaults: %w", err)
	}
	return nil
}

// validate checks the values flags and files may set.
func (c *Config) validate() error {
	if _, err := screen.ParseLayout(c.Layout); err != nil {
		return err
	}
	if !theme.Exists(c.Theme) {
		glance.Logger().Warn("unknown theme, using default", "theme", c.Theme, "default", theme.Default)
	}
	switch c.Output.Format {
	case "jpeg", "jpg", "png":
	default:
		return fmt.Errorf("%w: %q", errOutputFormat, c.Output.Format)
	}
	switch c.Output.Rotation {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("%w: %d", canvas.ErrRotation, c.Output.Rotation)
	}
	return nil
}

// fonts builds the font service described by the config.
func (c *Config) fonts() *text.Service {
	opts := []text.Option{text.WithSystemFonts(!c.Fonts.NoSystem)}
	if len(c.Fonts.Regular) > 0 {
		opts = append(opts, text.WithFontPaths(c.Fonts.Regular...))
	}
	if len(c.Fonts.Bold) > 0 {
		opts = append(opts, text.WithBoldPaths(c.Fonts.Bold...))
	}
	if len(c.Fonts.Pictograph) > 0 {
		opts = append(opts, text.WithPictographPaths(c.Fonts.Pictograph...))
	}
	if c.Fonts.CacheFaces > 0 {
		opts = append(opts, text.WithCacheSize(c.Fonts.CacheFaces))
	}
	return text.NewService(opts...)
}

// slots pairs every widget with the state of its entity. Every slot also
// sees all entities, for the list widgets.
func (c *Config) slots() []screen.Slot {
	byID := make(map[string]EntityConfig, len(c.Entities))
	all := make(map[string]*widget.Entity, len(c.Entities))
	for _, e := range c.Entities {
		byID[e.ID] = e
		all[e.ID] = &e.Entity
	}
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}

	slots := make([]screen.Slot, len(c.Widgets))
	for i, w := range c.Widgets {
		st := widget.State{Now: now, Entities: all}
		if e, ok := byID[w.Entity]; ok && w.Entity != "" {
			ent := e.Entity
			st.Entity = &ent
			st.History = e.History
			st.Samples = e.Samples
		} else if w.Entity != "" {
			glance.Logger().Debug("entity not found", "entity", w.Entity, "widget", w.Kind)
		}
		slots[i] = screen.Slot{Widget: w, State: st}
	}
	return slots
}
