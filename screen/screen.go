// Package screen arranges widgets into the slots of a screen layout.
//
// Every slot wraps its widget in a themed panel with the theme's widget
// padding. Widgets without a color get the theme accent of their slot
// index, so neighbouring widgets differ by default.
package screen

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/glance"
	"github.com/gogpu/glance/theme"
	"github.com/gogpu/glance/ui"
	"github.com/gogpu/glance/widget"
)

// Layout names a slot arrangement.
type Layout string

const (
	// Grid2x2 is two rows of two slots.
	Grid2x2 Layout = "grid_2x2"
	// Grid2x3 is three rows of two slots.
	Grid2x3 Layout = "grid_2x3"
	// Hero is one large slot above a row of three small ones.
	Hero Layout = "hero"
	// Split is two side by side halves.
	Split Layout = "split"
)

// DefaultLayout is used when no layout is configured.
const DefaultLayout = Grid2x2

var (
	ErrUnknownLayout  = errors.New("screen: unknown layout")
	ErrTooManyWidgets = errors.New("screen: more widgets than slots")
)

// Layouts returns all layouts.
func Layouts() []Layout {
	return []Layout{Grid2x2, Grid2x3, Hero, Split}
}

// ParseLayout returns the layout named s. An empty name gives
// DefaultLayout.
func ParseLayout(s string) (Layout, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultLayout, nil
	}
	for _, l := range Layouts() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// Slots returns the number of widget slots.
func (l Layout) Slots() int {
	switch l {
	case Grid2x2, Hero:
		return 4
	case Grid2x3:
		return 6
	case Split:
		return 2
	default:
		return 0
	}
}

// columns is the number of slots side by side in the widest row.
func (l Layout) columns() int {
	if l == Hero {
		return 3
	}
	return 2
}

// Slot is one widget with the state sampled for it.
type Slot struct {
	Widget widget.Config
	State  widget.State
}

// Build composes the tree of a width x height screen. Slots beyond the
// given ones stay empty.
func Build(l Layout, th theme.Theme, slots []Slot, width, height int) (ui.Node, error) {
	n := l.Slots()
	if n == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, l)
	}
	if len(slots) > n {
		return nil, fmt.Errorf("%w: %s has %d, got %d", ErrTooManyWidgets, l, n, len(slots))
	}

	gap := max(th.Gap, 0)
	cols := l.columns()
	pad := th.PanelPadding((width - 2*th.LayoutPadding - (cols-1)*gap) / cols)

	cells := make([]ui.Node, n)
	for i := range cells {
		cells[i] = ui.Empty{}
	}
	for i, s := range slots {
		if s.Widget.Kind == "" {
			continue
		}
		cfg := s.Widget
		cfg.Color = cfg.Color.Or(th.Accent(i))
		cells[i] = ui.Panel{Child: ui.Padding{Child: widget.Build(cfg, s.State), All: pad}}
	}

	row := func(nodes ...ui.Node) ui.Node {
		children := make([]ui.Node, len(nodes))
		for i, c := range nodes {
			children[i] = ui.Expanded{Child: c}
		}
		return ui.Row{Children: children, Gap: gap, Align: ui.AlignStretch}
	}

	var rows []ui.Node
	switch l {
	case Grid2x2:
		rows = []ui.Node{
			ui.Expanded{Child: row(cells[0], cells[1])},
			ui.Expanded{Child: row(cells[2], cells[3])},
		}
	case Grid2x3:
		rows = []ui.Node{
			ui.Expanded{Child: row(cells[0], cells[1])},
			ui.Expanded{Child: row(cells[2], cells[3])},
			ui.Expanded{Child: row(cells[4], cells[5])},
		}
	case Hero:
		rows = []ui.Node{
			ui.Expanded{Child: cells[0], Weight: 2},
			ui.Expanded{Child: row(cells[1], cells[2], cells[3])},
		}
	case Split:
		rows = []ui.Node{ui.Expanded{Child: row(cells[0], cells[1])}}
	}

	glance.Logger().Debug("screen: built", "layout", l, "widgets", len(slots), "width", width, "height", height)
	return ui.Column{Children: rows, Gap: gap, Padding: max(th.LayoutPadding, 0), Align: ui.AlignStretch}, nil
}

// Render builds and renders a screen over the theme background.
func Render(l Layout, th theme.Theme, slots []Slot, width, height int, opts ...ui.RenderOption) (*image.RGBA, error) {
	tree, err := Build(l, th, slots, width, height)
	if err != nil {
		return nil, err
	}
	opts = append([]ui.RenderOption{ui.WithTheme(th)}, opts...)
	return ui.Render(tree, width, height, th.Background, opts...)
}
