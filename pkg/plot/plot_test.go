package plot

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidCell(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestParseAxis(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		axis, err := ParseAxis("steps", "10, 20, 30")
		require.NoError(t, err)
		assert.Equal(t, "steps", axis.Param)
		assert.Equal(t, []any{10, 20, 30}, axis.Values)
	})

	t.Run("floats", func(t *testing.T) {
		axis, err := ParseAxis("cfg", "6.5, 7, 8.5")
		require.NoError(t, err)
		assert.Equal(t, []any{6.5, 7.0, 8.5}, axis.Values)
	})

	t.Run("strings", func(t *testing.T) {
		axis, err := ParseAxis("sampler_name", "euler, dpmpp_2m")
		require.NoError(t, err)
		assert.Equal(t, []any{"euler", "dpmpp_2m"}, axis.Values)
	})

	t.Run("empty values rejected", func(t *testing.T) {
		_, err := ParseAxis("steps", " , ,")
		assert.Error(t, err)
	})

	t.Run("empty param rejected", func(t *testing.T) {
		_, err := ParseAxis("", "1,2")
		assert.Error(t, err)
	})
}

func TestRunnerSweep(t *testing.T) {
	var calls []map[string]any
	sampler := SamplerFunc(func(_ context.Context, params map[string]any) (image.Image, error) {
		calls = append(calls, params)
		return solidCell(40, 30, color.RGBA{0, 255, 0, 255}), nil
	})

	x := Axis{Param: "cfg", Values: []any{6.0, 7.0, 8.0}}
	y := Axis{Param: "steps", Values: []any{10, 20}}

	runner := NewRunner(sampler, DefaultLabelStyle(), 4)
	grid, err := runner.Run(context.Background(), map[string]any{"seed": 42}, x, y)
	require.NoError(t, err)

	assert.Len(t, calls, 6)
	assert.Equal(t, 42, calls[0]["seed"])
	assert.Equal(t, 6.0, calls[0]["cfg"])
	assert.Equal(t, 10, calls[0]["steps"])
	assert.Equal(t, 8.0, calls[5]["cfg"])
	assert.Equal(t, 20, calls[5]["steps"])

	// 3 cols * 40px + 2 gaps * 4px; 2 rows * 30px + 1 gap * 4px
	assert.Equal(t, 128, grid.Bounds().Dx())
	assert.Equal(t, 64, grid.Bounds().Dy())
}

func TestRunnerSingleRow(t *testing.T) {
	sampler := SamplerFunc(func(_ context.Context, _ map[string]any) (image.Image, error) {
		return solidCell(20, 20, color.RGBA{255, 0, 0, 255}), nil
	})

	x := Axis{Param: "denoise", Values: []any{0.5, 1.0}}
	grid, err := NewRunner(sampler, DefaultLabelStyle(), 0).Run(context.Background(), nil, x, Axis{})
	require.NoError(t, err)
	assert.Equal(t, 40, grid.Bounds().Dx())
	assert.Equal(t, 20, grid.Bounds().Dy())
}

func TestRunnerEmptyXCollapses(t *testing.T) {
	called := 0
	sampler := SamplerFunc(func(_ context.Context, _ map[string]any) (image.Image, error) {
		called++
		return solidCell(10, 10, color.RGBA{}), nil
	})

	_, err := NewRunner(sampler, DefaultLabelStyle(), 0).Run(context.Background(), nil, Axis{}, Axis{})
	require.NoError(t, err)
	assert.Equal(t, 1, called)
}

func TestRunnerSamplerError(t *testing.T) {
	boom := errors.New("backend down")
	sampler := SamplerFunc(func(_ context.Context, _ map[string]any) (image.Image, error) {
		return nil, boom
	})

	x := Axis{Param: "cfg", Values: []any{1.0}}
	_, err := NewRunner(sampler, DefaultLabelStyle(), 0).Run(context.Background(), nil, x, Axis{})
	assert.ErrorIs(t, err, boom)
}

func TestRunnerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sampler := SamplerFunc(func(_ context.Context, _ map[string]any) (image.Image, error) {
		cancel() // cancel after the first cell
		return solidCell(10, 10, color.RGBA{}), nil
	})

	x := Axis{Param: "cfg", Values: []any{1.0, 2.0}}
	_, err := NewRunner(sampler, DefaultLabelStyle(), 0).Run(ctx, nil, x, Axis{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerMismatchedCells(t *testing.T) {
	i := 0
	sampler := SamplerFunc(func(_ context.Context, _ map[string]any) (image.Image, error) {
		i++
		return solidCell(10*i, 10, color.RGBA{}), nil
	})

	x := Axis{Param: "cfg", Values: []any{1.0, 2.0}}
	_, err := NewRunner(sampler, DefaultLabelStyle(), 0).Run(context.Background(), nil, x, Axis{})
	assert.Error(t, err)
}

func TestNodeMetadata(t *testing.T) {
	n := NewNode(nil)
	assert.Equal(t, "XYPlotSampler", n.Name())
	assert.Equal(t, "Easel/Plot", n.Category())

	spec := n.InputSpec()
	assert.Contains(t, spec.Required, "x_param")
	assert.Contains(t, spec.Required, "x_values")
	assert.Contains(t, spec.Optional, "y_param")
}
