package plot

import (
	"context"
	"image"

	"github.com/dixieflatline76/Easel/pkg/graph"
)

// Node sweeps a sampler across one or two parameter axes and outputs a
// labeled comparison grid.
type Node struct {
	sampler Sampler
}

// NewNode creates the plot node around a host-provided sampler.
func NewNode(sampler Sampler) *Node {
	return &Node{sampler: sampler}
}

// Name returns the node's registration name.
func (n *Node) Name() string { return "XYPlotSampler" }

// DisplayName returns the name shown in the host UI.
func (n *Node) DisplayName() string { return "Easel XY Plot Sampler" }

// Category returns the host UI category.
func (n *Node) Category() string { return "Easel/Plot" }

// InputSpec returns the declared inputs for the host UI.
func (n *Node) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"x_param":  graph.StringInput("cfg", "Parameter swept along the X axis"),
			"x_values": graph.StringInput("6.0, 7.0, 8.0", "Comma-separated X axis values"),
			"grid_spacing": graph.IntInput(0, 0, 128, 1,
				"Pixel gap between grid cells"),
			"font_color": graph.EnumInput([]string{"white", "black"}, "white",
				"Cell label color"),
			"font_border": graph.BoolInput(true, "Outline cell labels for readability"),
		},
		Optional: map[string]graph.Input{
			"y_param":  graph.StringInput("", "Parameter swept along the Y axis"),
			"y_values": graph.StringInput("", "Comma-separated Y axis values"),
		},
	}
}

// Plot runs the sweep and returns the assembled grid. The Y axis may be
// zero-valued for a single-row sweep.
func (n *Node) Plot(ctx context.Context, base map[string]any, x, y Axis, spacing int, style LabelStyle) (image.Image, error) {
	return NewRunner(n.sampler, style, spacing).Run(ctx, base, x, y)
}
