package text

// Horizontal is the horizontal part of an Anchor.
type Horizontal uint8

// Horizontal anchor positions.
const (
	Start Horizontal = iota
	Middle
	End
)

// Vertical is the vertical part of an Anchor.
type Vertical uint8

// Vertical anchor positions.
const (
	Top Vertical = iota
	Center
	Bottom
	Baseline
)

// Anchor selects which point of a string's bounding box is placed at the
// drawing position.
type Anchor struct {
	H Horizontal
	V Vertical
}

// Common anchors.
var (
	LeftTop      = Anchor{Start, Top}
	LeftMiddle   = Anchor{Start, Center}
	Centered     = Anchor{Middle, Center}
	RightMiddle  = Anchor{End, Center}
	LeftBaseline = Anchor{Start, Baseline}
)

// Extent is the bounding box of a measured string. Ascent extends above
// the baseline and Descent below it; both are non-negative.
type Extent struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (e Extent) Height() float64 {
	return e.Ascent + e.Descent
}

// Origin returns the left end of the baseline for a string of extent e
// whose anchor point is at (x, y).
func (e Extent) Origin(x, y float64, a Anchor) (float64, float64) {
	switch a.H {
	case Middle:
		x -= e.Width / 2
	case End:
		x -= e.Width
	}
	switch a.V {
	case Top:
		y += e.Ascent
	case Center:
		y += e.Ascent - e.Height()/2
	case Bottom:
		y -= e.Descent
	}
	return x, y
}
