package fit

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Easel/pkg/resolution"
)

func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// A gradient gives smartcrop something to score
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 255 / width), uint8(y * 255 / height), 128, 255})
		}
	}
	return img
}

func TestFitImage(t *testing.T) {
	p := NewProcessor(DefaultTuningConfig(), nil)
	ctx := context.Background()

	t.Run("perfect fit passes through", func(t *testing.T) {
		input := createTestImage(832, 480)
		out, err := p.FitImage(ctx, input, resolution.Dimensions{Width: 832, Height: 480})
		require.NoError(t, err)
		assert.Same(t, input, out)
	})

	t.Run("matching aspect resizes", func(t *testing.T) {
		input := createTestImage(1664, 960) // 2x the target, same aspect
		out, err := p.FitImage(ctx, input, resolution.Dimensions{Width: 832, Height: 480})
		require.NoError(t, err)
		assert.Equal(t, 832, out.Bounds().Dx())
		assert.Equal(t, 480, out.Bounds().Dy())
	})

	t.Run("mismatched aspect crops", func(t *testing.T) {
		input := createTestImage(1000, 1000) // square into 16:9
		out, err := p.FitImage(ctx, input, resolution.Dimensions{Width: 832, Height: 480})
		require.NoError(t, err)
		assert.Equal(t, 832, out.Bounds().Dx())
		assert.Equal(t, 480, out.Bounds().Dy())
	})

	t.Run("invalid target rejected", func(t *testing.T) {
		_, err := p.FitImage(ctx, createTestImage(100, 100), resolution.Dimensions{})
		assert.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.FitImage(canceled, createTestImage(100, 100), resolution.Dimensions{Width: 64, Height: 64})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecodeEncodeImage(t *testing.T) {
	p := NewProcessor(DefaultTuningConfig(), nil)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, createTestImage(64, 48)))

	t.Run("decode png", func(t *testing.T) {
		img, ext, err := p.DecodeImage(ctx, buf.Bytes(), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "png", ext)
		assert.Equal(t, 64, img.Bounds().Dx())
	})

	t.Run("decode garbage", func(t *testing.T) {
		_, _, err := p.DecodeImage(ctx, []byte("not an image"), "image/png")
		assert.Error(t, err)
	})

	t.Run("encode round trip", func(t *testing.T) {
		src := createTestImage(32, 32)
		data, err := p.EncodeImage(ctx, src, "image/png")
		require.NoError(t, err)

		decoded, _, err := p.DecodeImage(ctx, data, "image/png")
		require.NoError(t, err)
		assert.Equal(t, src.Bounds(), decoded.Bounds())
	})

	t.Run("encode unsupported format", func(t *testing.T) {
		_, err := p.EncodeImage(ctx, createTestImage(8, 8), "image/webp")
		assert.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := p.DecodeImage(canceled, buf.Bytes(), "image/png")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNodeMetadata(t *testing.T) {
	n := NewNode(NewProcessor(DefaultTuningConfig(), nil))
	assert.Equal(t, "ResolutionFit", n.Name())
	assert.Equal(t, "Easel/Image", n.Category())

	spec := n.InputSpec()
	assert.Contains(t, spec.Required, "image")
	assert.Contains(t, spec.Required, "width")
	assert.Contains(t, spec.Required, "height")
}

func TestNodeFit(t *testing.T) {
	n := NewNode(NewProcessor(DefaultTuningConfig(), nil))
	out, err := n.Fit(context.Background(), createTestImage(960, 960), resolution.Dimensions{Width: 640, Height: 480})
	require.NoError(t, err)
	assert.Equal(t, 640, out.Bounds().Dx())
	assert.Equal(t, 480, out.Bounds().Dy())
}
