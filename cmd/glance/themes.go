package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogpu/glance/canvas"
	"github.com/gogpu/glance/screen"
	"github.com/gogpu/glance/text/emoji"
	"github.com/gogpu/glance/theme"
	"github.com/gogpu/glance/widget"
)

func newThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List themes, layouts, widgets and icons",
		RunE: func(cmd *cobra.Command, args []string) error {
			listThemes(cmd.OutOrStdout())
			return nil
		},
	}
}

func listThemes(w io.Writer) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	fmt.Fprintln(w, bold("Themes"))
	for _, name := range theme.Names() {
		t := theme.Lookup(name)
		accents := make([]string, 0, len(t.Accents()))
		for _, a := range t.Accents() {
			accents = append(accents, a.Hex())
		}
		marker := " "
		if name == theme.Default {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-8s bg %s  border %-7s radius %-2d %s\n",
			marker, name, t.Background.Hex(), t.Border, t.CornerRadius, faint(strings.Join(accents, " ")))
	}

	layouts := make([]string, 0, len(screen.Layouts()))
	for _, l := range screen.Layouts() {
		layouts = append(layouts, fmt.Sprintf("%s (%d)", l, l.Slots()))
	}
	fmt.Fprintf(w, "\n%s\n  %s\n", bold("Layouts"), strings.Join(layouts, ", "))
	fmt.Fprintf(w, "\n%s\n  %s\n", bold("Widgets"), strings.Join(widget.Kinds(), ", "))
	fmt.Fprintf(w, "\n%s\n  %s\n", bold("Icons"), strings.Join(canvas.Icons(), ", "))
}

func newSegmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "segment TEXT",
		Short: "Show how text splits into plain and pictograph runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printRuns(cmd.OutOrStdout(), args[0])
			return nil
		},
	}
}

func printRuns(w io.Writer, s string) {
	pict := color.New(color.FgYellow).SprintFunc()
	for _, r := range emoji.Segment(s) {
		kind := "text"
		if r.Pictograph {
			kind = pict("pictograph")
		}
		fmt.Fprintf(w, "%3d..%-3d %-10s %q\n", r.Start, r.End, kind, r.Text)
	}
}
