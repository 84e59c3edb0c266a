package video

import (
	"image"

	"github.com/dixieflatline76/Easel/pkg/graph"
)

// ExtractLastFrame is a node that returns the final frame of an image batch.
type ExtractLastFrame struct{}

// Name returns the node's registration name.
func (n *ExtractLastFrame) Name() string { return "ExtractLastFrame" }

// DisplayName returns the name shown in the host UI.
func (n *ExtractLastFrame) DisplayName() string { return "Easel Extract Last Frame" }

// Category returns the host UI category.
func (n *ExtractLastFrame) Category() string { return "Easel/Video" }

// InputSpec returns the declared inputs for the host UI.
func (n *ExtractLastFrame) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"images": graph.ImageInput("Input image batch to extract last frame from"),
		},
	}
}

// Extract returns the last frame of the batch. An empty batch is an error;
// the host should not feed this node from a producer that can yield nothing.
func (n *ExtractLastFrame) Extract(images Batch) (image.Image, error) {
	return images.LastFrame()
}

// ImageBatchCombiner is a node that concatenates two image batches for video
// merging, dropping the duplicated transition frame between them.
type ImageBatchCombiner struct{}

// Name returns the node's registration name.
func (n *ImageBatchCombiner) Name() string { return "ImageBatchCombiner" }

// DisplayName returns the name shown in the host UI.
func (n *ImageBatchCombiner) DisplayName() string { return "Easel Image Batch Combiner" }

// Category returns the host UI category.
func (n *ImageBatchCombiner) Category() string { return "Easel/Video" }

// InputSpec returns the declared inputs for the host UI.
func (n *ImageBatchCombiner) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"first_images":        graph.ImageInput("First images in sequence (placed before last). All images must have same dimensions."),
			"last_images":         graph.ImageInput("Last images in sequence. All images must have same dimensions."),
			"ignore_first_images": graph.BoolInput(false, "If true, ignores first_images and returns only last_images"),
		},
	}
}

// Combine merges the two batches; see the package-level Combine for rules.
func (n *ImageBatchCombiner) Combine(first, last Batch, ignoreFirst bool) (Batch, error) {
	return Combine(first, last, ignoreFirst)
}
