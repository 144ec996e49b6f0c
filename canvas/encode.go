package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glance"
)

// Encoder defaults.
const (
	DefaultQuality      = 92
	DefaultMaxBytes     = 400 * 1024
	DefaultQualityStep  = 10
	DefaultQualityFloor = 20
)

// Downsample scales src to w x h with a Catmull-Rom filter.
func Downsample(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if dst.Rect.Empty() || src.Bounds().Empty() {
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Rotate returns img rotated clockwise by deg, which must be 0, 90, 180 or
// 270. Rotating by 0 returns an RGBA copy.
func Rotate(img image.Image, deg int) (*image.RGBA, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var (
		dst *image.RGBA
		at  func(x, y int) (int, int)
	)
	switch ((deg % 360) + 360) % 360 {
	case 0:
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
		at = func(x, y int) (int, int) { return x, y }
	case 90:
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
		at = func(x, y int) (int, int) { return h - 1 - y, x }
	case 180:
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
		at = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case 270:
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
		at = func(x, y int) (int, int) { return y, w - 1 - x }
	default:
		return nil, fmt.Errorf("%w: %d", ErrRotation, deg)
	}

	for y := range h {
		for x := range w {
			dx, dy := at(x, y)
			dst.Set(dx, dy, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst, nil
}

// EncodeOption configures JPEG encoding.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	quality  int
	maxBytes int
	rotation int
	step     int
	floor    int
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{
		quality:  DefaultQuality,
		maxBytes: DefaultMaxBytes,
		step:     DefaultQualityStep,
		floor:    DefaultQualityFloor,
	}
}

// WithQuality sets the starting JPEG quality (1-100).
func WithQuality(q int) EncodeOption {
	return func(o *encodeOptions) {
		o.quality = q
	}
}

// WithMaxBytes sets the size budget. Zero or less disables the budget.
func WithMaxBytes(n int) EncodeOption {
	return func(o *encodeOptions) {
		o.maxBytes = n
	}
}

// WithRotation rotates the image clockwise before encoding.
func WithRotation(deg int) EncodeOption {
	return func(o *encodeOptions) {
		o.rotation = deg
	}
}

// WithQualityStep sets how much the quality drops per retry.
func WithQualityStep(step int) EncodeOption {
	return func(o *encodeOptions) {
		o.step = step
	}
}

// WithQualityFloor sets the lowest quality the budget loop will try.
func WithQualityFloor(q int) EncodeOption {
	return func(o *encodeOptions) {
		o.floor = q
	}
}

// EncodeJPEG encodes img as JPEG. When the result exceeds the size budget
// the quality is lowered step by step down to the floor; the last attempt
// is returned even if it is still over budget.
func EncodeJPEG(img image.Image, opts ...EncodeOption) ([]byte, error) {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	quality := min(max(o.quality, 1), 100)
	floor := min(max(o.floor, 1), quality)
	step := max(o.step, 1)

	src, err := rotated(img, o.rotation)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for {
		buf.Reset()
		if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		if o.maxBytes <= 0 || buf.Len() <= o.maxBytes {
			break
		}
		if quality <= floor {
			glance.Logger().Debug("canvas: jpeg over budget at floor quality",
				"bytes", buf.Len(), "max", o.maxBytes, "quality", quality)
			break
		}
		glance.Logger().Debug("canvas: jpeg over budget",
			"bytes", buf.Len(), "max", o.maxBytes, "quality", quality)
		quality = max(quality-step, floor)
	}
	return bytes.Clone(buf.Bytes()), nil
}

// EncodePNG encodes img losslessly after rotating it clockwise by rotation
// degrees.
func EncodePNG(img image.Image, rotation int) ([]byte, error) {
	src, err := rotated(img, rotation)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// rotated skips the copy for a zero rotation.
func rotated(img image.Image, deg int) (image.Image, error) {
	if deg%360 == 0 {
		return img, nil
	}
	return Rotate(img, deg)
}
