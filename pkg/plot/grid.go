package plot

import (
	"context"
	"fmt"
	"image"

	"github.com/dixieflatline76/Easel/util/log"
)

// Sampler produces one image for a set of parameter values. Implementations
// bridge to whatever generation backend the host provides.
type Sampler interface {
	Sample(ctx context.Context, params map[string]any) (image.Image, error)
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func(ctx context.Context, params map[string]any) (image.Image, error)

// Sample calls f.
func (f SamplerFunc) Sample(ctx context.Context, params map[string]any) (image.Image, error) {
	return f(ctx, params)
}

// Runner sweeps a sampler across one or two axes and assembles the results
// into a labeled comparison grid.
type Runner struct {
	sampler Sampler
	style   LabelStyle
	spacing int
}

// NewRunner creates a runner with the given sampler and rendering options.
func NewRunner(sampler Sampler, style LabelStyle, spacing int) *Runner {
	if spacing < 0 {
		spacing = 0
	}
	return &Runner{sampler: sampler, style: style, spacing: spacing}
}

// Run samples every grid position sequentially and returns the assembled
// grid image. The Y axis may be empty for a single-row sweep. Base
// parameters apply to every cell; axis values override them per cell.
func (r *Runner) Run(ctx context.Context, base map[string]any, x, y Axis) (image.Image, error) {
	if x.Empty() {
		// No sweep at all collapses to a single sample
		return r.sampler.Sample(ctx, cloneParams(base))
	}

	yValues := y.Values
	if y.Empty() {
		yValues = []any{nil}
	}

	cells := make([][]image.Image, len(yValues))
	for yIdx, yVal := range yValues {
		cells[yIdx] = make([]image.Image, len(x.Values))
		for xIdx, xVal := range x.Values {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			params := cloneParams(base)
			params[x.Param] = xVal
			if y.Param != "" && yVal != nil {
				params[y.Param] = yVal
			}

			log.Debugf("Sampling grid position (%d/%d, %d/%d)", xIdx+1, len(x.Values), yIdx+1, len(yValues))

			img, err := r.sampler.Sample(ctx, params)
			if err != nil {
				return nil, fmt.Errorf("sampling %s=%v: %w", x.Param, xVal, err)
			}
			cells[yIdx][xIdx] = img
		}
	}

	return assembleGrid(cells, x, y, r.spacing, r.style)
}

func cloneParams(base map[string]any) map[string]any {
	params := make(map[string]any, len(base)+2)
	for k, v := range base {
		params[k] = v
	}
	return params
}
