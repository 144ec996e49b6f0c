package canvas

import "errors"

var (
	// ErrRotation is returned for rotations other than multiples of 90 degrees.
	ErrRotation = errors.New("canvas: rotation must be 0, 90, 180 or 270")

	// ErrEncode wraps failures of the underlying image encoder.
	ErrEncode = errors.New("canvas: encode failed")
)
