package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/canvas"
	"github.com/gogpu/glance/screen"
	"github.com/gogpu/glance/theme"
	"github.com/gogpu/glance/ui"
)

var errNoConfig = errors.New("glance: a screen config is required (-c)")

type renderFlags struct {
	config   string
	output   string
	format   string
	theme    string
	rotation int
	quality  int
	maxBytes int
	scale    int
	outline  bool
}

func bindRenderFlags(fs *pflag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "Screen config file (.yaml, .yml or .toml)")
	fs.StringVarP(&f.output, "output", "o", "frame.jpg", "Output file, - for stdout")
	fs.StringVar(&f.format, "format", "", "Output format: jpeg or png (default from config)")
	fs.StringVar(&f.theme, "theme", "", "Theme name (default from config)")
	fs.IntVar(&f.rotation, "rotation", 0, "Clockwise rotation: 0, 90, 180 or 270")
	fs.IntVar(&f.quality, "quality", 0, "Initial JPEG quality (default from config)")
	fs.IntVar(&f.maxBytes, "max-bytes", 0, "JPEG size budget in bytes (default from config)")
	fs.IntVar(&f.scale, "scale", 0, "Supersampling factor (default from config)")
	fs.BoolVar(&f.outline, "outline", false, "Draw panels as outlines only")
}

// apply overrides cfg with the flags the user set.
func (f *renderFlags) apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("format") {
		cfg.Output.Format = strings.ToLower(f.format)
	}
	if fs.Changed("theme") {
		cfg.Theme = f.theme
	}
	if fs.Changed("rotation") {
		cfg.Output.Rotation = f.rotation
	}
	if fs.Changed("quality") {
		cfg.Output.Quality = f.quality
	}
	if fs.Changed("max-bytes") {
		cfg.Output.MaxBytes = f.maxBytes
	}
	if fs.Changed("scale") {
		cfg.Scale = f.scale
	}
	if !fs.Changed("format") && strings.HasSuffix(strings.ToLower(f.output), ".png") {
		cfg.Output.Format = "png"
	}
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a screen config to an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.config == "" {
				return errNoConfig
			}
			cfg, err := loadConfig(flags.config)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &cfg)

			data, err := renderConfig(cfg, flags.outline)
			if err != nil {
				return err
			}
			if flags.output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(flags.output, data, 0o644); err != nil {
				return fmt.Errorf("glance: write output: %w", err)
			}
			glance.Logger().Info("frame written", "path", flags.output, "bytes", len(data), "layout", cfg.Layout, "theme", cfg.Theme)
			printDone(cmd.ErrOrStderr(), flags.output, len(data))
			return nil
		},
	}
	bindRenderFlags(renderCmd.Flags(), flags)
	return renderCmd
}

// renderConfig renders and encodes the screen described by cfg.
func renderConfig(cfg Config, outline bool) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layout, err := screen.ParseLayout(cfg.Layout)
	if err != nil {
		return nil, err
	}
	th := theme.Lookup(cfg.Theme)
	if outline {
		th.Border = theme.BorderOutline
		th.BorderWidth = max(th.BorderWidth, 1)
	}
	if !cfg.Background.IsZero() {
		th.Background = cfg.Background
	}

	img, err := screen.Render(layout, th, cfg.slots(), cfg.Width, cfg.Height,
		ui.WithScale(cfg.Scale), ui.WithFonts(cfg.fonts()))
	if err != nil {
		return nil, err
	}

	if cfg.Output.Format == "png" {
		return canvas.EncodePNG(img, cfg.Output.Rotation)
	}
	return canvas.EncodeJPEG(img,
		canvas.WithQuality(cfg.Output.Quality),
		canvas.WithMaxBytes(cfg.Output.MaxBytes),
		canvas.WithRotation(cfg.Output.Rotation),
	)
}

func printDone(w io.Writer, path string, n int) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(w, "%s %s (%d bytes)\n", green("wrote"), path, n)
}
