package video

import (
	"errors"
	"fmt"
	"image"
)

// Batch is an ordered sequence of frames. All frames in a batch are expected
// to share the same dimensions; operations that merge batches check this.
type Batch []image.Image

// Shaped is implemented by tensor-like values handed over by the host bridge.
// Shape follows the host's layout conventions: [batch, height, width, channels],
// [height, width, channels] or [height, width].
type Shaped interface {
	Shape() []int
}

var (
	// ErrUnsupportedImage is returned when a value carries no usable shape.
	ErrUnsupportedImage = errors.New("unsupported image value")
	// ErrInvalidImageDimensions is returned when an extracted width or height
	// is not a positive integer.
	ErrInvalidImageDimensions = errors.New("invalid image dimensions")
	// ErrEmptyBatch is returned when an operation needs at least one frame.
	ErrEmptyBatch = errors.New("empty image batch")
	// ErrDimensionMismatch is returned when batches disagree on frame size.
	ErrDimensionMismatch = errors.New("image batch dimension mismatch")
)

// FrameDimensions extracts (height, width) from an image-like value. It
// accepts image.Image, Batch (first frame) and Shaped tensor-like values.
func FrameDimensions(v any) (height, width int, err error) {
	switch img := v.(type) {
	case nil:
		return 0, 0, fmt.Errorf("%w: nil image", ErrUnsupportedImage)
	case image.Image:
		b := img.Bounds()
		height, width = b.Dy(), b.Dx()
	case Batch:
		if len(img) == 0 {
			return 0, 0, fmt.Errorf("%w: empty batch", ErrUnsupportedImage)
		}
		b := img[0].Bounds()
		height, width = b.Dy(), b.Dx()
	case []image.Image:
		return FrameDimensions(Batch(img))
	case Shaped:
		height, width, err = shapeDimensions(img.Shape())
		if err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, fmt.Errorf("%w: %T has no shape", ErrUnsupportedImage, v)
	}

	if height <= 0 || width <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidImageDimensions, width, height)
	}
	return height, width, nil
}

func shapeDimensions(shape []int) (height, width int, err error) {
	switch len(shape) {
	case 4: // [batch, height, width, channels]
		return shape[1], shape[2], nil
	case 3: // [height, width, channels]
		return shape[0], shape[1], nil
	case 2: // [height, width]
		return shape[0], shape[1], nil
	default:
		return 0, 0, fmt.Errorf("%w: unexpected shape %v", ErrUnsupportedImage, shape)
	}
}

// LastFrame returns the final frame of the batch, useful for preserving
// transition frames between video segments.
func (b Batch) LastFrame() (image.Image, error) {
	if len(b) == 0 {
		return nil, ErrEmptyBatch
	}
	return b[len(b)-1], nil
}

// Combine merges two batches for video sequencing. Frames from first are
// placed before last, with the final frame of first dropped to avoid
// duplicating the transition frame. When ignoreFirst is set, last is
// returned unchanged.
func Combine(first, last Batch, ignoreFirst bool) (Batch, error) {
	if ignoreFirst {
		return last, nil
	}
	if len(last) == 0 {
		return nil, fmt.Errorf("%w: last batch has no frames", ErrEmptyBatch)
	}
	if len(first) <= 1 {
		// Nothing left of first once its transition frame is dropped
		return last, nil
	}

	fh, fw, err := FrameDimensions(first)
	if err != nil {
		return nil, err
	}
	lh, lw, err := FrameDimensions(last)
	if err != nil {
		return nil, err
	}
	if fh != lh || fw != lw {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, fw, fh, lw, lh)
	}

	combined := make(Batch, 0, len(first)-1+len(last))
	combined = append(combined, first[:len(first)-1]...)
	combined = append(combined, last...)
	return combined, nil
}
