package fit

import (
	"context"
	"image"

	"github.com/dixieflatline76/Easel/pkg/graph"
	"github.com/dixieflatline76/Easel/pkg/resolution"
)

// Node fits an input image to a target resolution using the smart crop
// pipeline.
type Node struct {
	processor *Processor
}

// NewNode creates the fit node around an existing processor.
func NewNode(processor *Processor) *Node {
	return &Node{processor: processor}
}

// Name returns the node's registration name.
func (n *Node) Name() string { return "ResolutionFit" }

// DisplayName returns the name shown in the host UI.
func (n *Node) DisplayName() string { return "Easel Resolution Fit" }

// Category returns the host UI category.
func (n *Node) Category() string { return "Easel/Image" }

// InputSpec returns the declared inputs for the host UI.
func (n *Node) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"image": graph.ImageInput("Image to fit to the target resolution"),
			"width": graph.IntInput(832, resolution.DefaultAlignment, resolution.MaxDimension,
				resolution.DefaultAlignment, "Target width"),
			"height": graph.IntInput(480, resolution.DefaultAlignment, resolution.MaxDimension,
				resolution.DefaultAlignment, "Target height"),
		},
	}
}

// Fit crops and resizes the image to the target dimensions.
func (n *Node) Fit(ctx context.Context, img image.Image, target resolution.Dimensions) (image.Image, error) {
	return n.processor.FitImage(ctx, img, target)
}
