// Package ui is the declarative component tree of a status screen.
//
// A screen is described by a tree of Node values built fresh for every
// frame. Leaves show something (Text, Icon, Bar, Ring, Arc, Sparkline,
// SegmentedBar, MiniBars, Candles, Panel); containers arrange their
// children (Row, Column, Stack, Adaptive, Center, Expanded, Padding,
// Responsive).
// Measure asks a node for its natural size inside a box and Draw lays it
// out and paints it onto a canvas:
//
//	tree := ui.Column{Gap: 4, Children: []ui.Node{
//		ui.Text{Text: "75%", Size: ui.Primary, Bold: true},
//		ui.Bar{Percent: 75},
//		ui.Text{Text: "CPU", Size: ui.Label},
//	}}
//	img, err := ui.Render(tree, 240, 240, glance.Black)
//
// The node set is closed. Zero colors in node fields select the theme
// default.
package ui

import (
	"github.com/gogpu/glance"
	"github.com/gogpu/glance/canvas"
	"github.com/gogpu/glance/curve"
)

// Node is one element of a component tree. The set of implementations is
// fixed to the types of this package.
type Node interface {
	node()
}

// Align positions children on the cross axis of a Row or Column.
type Align uint8

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
	AlignStretch
)

// Justify distributes children on the main axis of a Row or Column.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// Tone is a theme color role for text and icons.
type Tone uint8

const (
	TonePrimary Tone = iota
	ToneSecondary
	ToneAccent
	ToneSuccess
	ToneError
)

// Text is a single line of text that may contain pictographs.
type Text struct {
	Text string
	// Size is the relative size class. Px, when positive, sets a fixed
	// pixel size instead.
	Size  FontSize
	Px    int
	Bold  bool
	Color glance.Color
	// Tone picks the theme color used when Color is zero.
	Tone Tone
	// Value marks the main reading of a widget; it is bold when the
	// theme asks for bold values.
	Value bool
	// Align is the horizontal position inside the box; AlignStretch
	// centers like AlignCenter.
	Align Align
	// Truncate shortens the text with an ellipsis to fit the box width.
	Truncate bool
	// Fit picks the largest size in [MinSize, MaxSize] that fits the box.
	Fit              bool
	MinSize, MaxSize int
}

// Icon is a built-in vector icon. Without a fixed Size it takes the
// smaller box side clamped to [Min, Max] (default 12 and 32).
type Icon struct {
	Name     string
	Size     int
	Min, Max int
	Color    glance.Color
	Tone     Tone
}

// Bar is a horizontal progress bar spanning the box width. Height
// defaults to 15% of the available height, at least 6.
type Bar struct {
	Percent    float64
	Color      glance.Color
	Background glance.Color
	Height     int
}

// Ring is a circular gauge filling clockwise from the top.
type Ring struct {
	Percent    float64
	Color      glance.Color
	Background glance.Color
	// Thickness defaults to a fifth of the radius, at least 4.
	Thickness int
}

// Arc is a 270 degree gauge open at the bottom.
type Arc struct {
	Percent    float64
	Color      glance.Color
	Background glance.Color
	// Width defaults to 8.
	Width int
}

// Sparkline is a line chart filling its box.
type Sparkline struct {
	Data   []float64
	Color  glance.Color
	Fill   bool
	Smooth bool
}

// SegmentedBar is a bar made of consecutive colored parts.
type SegmentedBar struct {
	Segments   []canvas.Segment
	Background glance.Color
	Height     int
}

// MiniBars is a compact bar chart, newest value on the right.
type MiniBars struct {
	Data     []float64
	Color    glance.Color
	BarWidth int // default 3
	Gap      int // default 1
}

// Candles is an OHLC chart. Empty data shows a "No data" placeholder.
type Candles struct {
	Data     []curve.Candle
	Up, Down glance.Color
}

// Panel draws a themed card behind its child. The panel height becomes
// the reference height for relative font sizes inside it.
type Panel struct {
	Child  Node
	Fill   glance.Color
	Border glance.Color
	// Radius is the corner radius; zero uses the theme radius and a
	// negative value gives square corners.
	Radius int
}

// Spacer absorbs free main-axis space in a Row or Column.
type Spacer struct {
	MinSize int
}

// Expanded takes the free main-axis space of a Row or Column like a
// Spacer and draws its child over the whole slot. Wrap the child in a
// Center to keep its natural size.
type Expanded struct {
	Child Node
	// Weight is the share of the free space relative to the other
	// Expanded children and Spacers, which weigh 1. Zero means 1.
	Weight int
}

// Responsive shows Full when its box is taller than Threshold and
// Compact otherwise.
type Responsive struct {
	Threshold     int
	Full, Compact Node
}

// Empty renders nothing.
type Empty struct{}

// Row lays children out horizontally.
type Row struct {
	Children []Node
	Gap      int
	Align    Align
	Justify  Justify
	Padding  int
}

// Column lays children out vertically.
type Column struct {
	Children []Node
	Gap      int
	Align    Align
	Justify  Justify
	Padding  int
}

// Stack draws all children over the same box, later ones on top.
type Stack struct {
	Children []Node
}

// Adaptive renders its children as a Row when they fit side by side and
// as a Column otherwise.
type Adaptive struct {
	Children []Node
	// Gap defaults to 6; a negative value means no gap.
	Gap     int
	Padding int
}

// Center centers its child at the child's natural size.
type Center struct {
	Child Node
}

// Padding insets its child. A side takes its specific value if set, else
// the axis value (Horizontal or Vertical), else All.
type Padding struct {
	Child                    Node
	All                      int
	Horizontal, Vertical     *int
	Top, Right, Bottom, Left *int
}

// Px returns a pointer to v for the optional fields of Padding.
func Px(v int) *int { return &v }

func (Text) node()         {}
func (Icon) node()         {}
func (Bar) node()          {}
func (Ring) node()         {}
func (Arc) node()          {}
func (Sparkline) node()    {}
func (SegmentedBar) node() {}
func (MiniBars) node()     {}
func (Candles) node()      {}
func (Panel) node()        {}
func (Spacer) node()       {}
func (Expanded) node()     {}
func (Empty) node()        {}
func (Row) node()          {}
func (Column) node()       {}
func (Stack) node()        {}
func (Adaptive) node()     {}
func (Center) node()       {}
func (Padding) node()      {}
func (Responsive) node()   {}

// DefaultAdaptiveGap is the Adaptive gap when none is set.
const DefaultAdaptiveGap = 6

func (a Adaptive) gap() int {
	switch {
	case a.Gap < 0:
		return 0
	case a.Gap == 0:
		return DefaultAdaptiveGap
	}
	return a.Gap
}

// edges returns the resolved (top, right, bottom, left) insets, never
// negative.
func (p Padding) edges() (top, right, bottom, left int) {
	pick := func(side, axis *int) int {
		v := p.All
		if axis != nil {
			v = *axis
		}
		if side != nil {
			v = *side
		}
		return max(v, 0)
	}
	return pick(p.Top, p.Vertical), pick(p.Right, p.Horizontal),
		pick(p.Bottom, p.Vertical), pick(p.Left, p.Horizontal)
}
