// Command glance renders status screens to JPEG or PNG frames.
//
//	glance render -c screen.yaml -o frame.jpg
//	glance themes
//	glance segment "Hello 👋🏽 World"
package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogpu/glance"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debug bool
	rootCmd := &cobra.Command{
		Use:   "glance <command> [options]",
		Short: "Render status screens for small displays",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			glance.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newThemesCommand())
	rootCmd.AddCommand(newSegmentCommand())

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return rootCmd
}
