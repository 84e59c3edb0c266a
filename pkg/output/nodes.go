package output

import (
	"context"

	"github.com/dixieflatline76/Easel/pkg/graph"
	"github.com/dixieflatline76/Easel/pkg/video"
)

// SeedGeneratorNode passes a seed through so samplers and save nodes can
// share one value.
type SeedGeneratorNode struct{}

// Name returns the node's registration name.
func (n *SeedGeneratorNode) Name() string { return "SeedGenerator" }

// DisplayName returns the name shown in the host UI.
func (n *SeedGeneratorNode) DisplayName() string { return "Easel Seed Generator" }

// Category returns the host UI category.
func (n *SeedGeneratorNode) Category() string { return "Easel/Utility" }

// InputSpec returns the declared inputs for the host UI.
func (n *SeedGeneratorNode) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"seed": graph.IntInput(0, 0, int(^uint(0)>>1), 1, "Seed number for generation"),
		},
	}
}

// Invoke returns the seed unchanged.
func (n *SeedGeneratorNode) Invoke(_ context.Context, args map[string]any) (map[string]any, error) {
	return map[string]any{"seed": graph.ArgInt(args, "seed", 0)}, nil
}

// SaveNode saves an image batch with counter and seed filename tagging.
type SaveNode struct {
	saver *Saver
}

// NewSaveNode creates the save node around a saver.
func NewSaveNode(saver *Saver) *SaveNode {
	return &SaveNode{saver: saver}
}

// Name returns the node's registration name.
func (n *SaveNode) Name() string { return "SaveImageWithSeed" }

// DisplayName returns the name shown in the host UI.
func (n *SaveNode) DisplayName() string { return "Easel Save Image With Seed" }

// Category returns the host UI category.
func (n *SaveNode) Category() string { return "Easel/Utility" }

// InputSpec returns the declared inputs for the host UI.
func (n *SaveNode) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"images":          graph.ImageInput("Images to save"),
			"filename_prefix": graph.StringInput("Easel", "Base filename prefix"),
		},
		Optional: map[string]graph.Input{
			"seed": graph.IntInput(0, 0, int(^uint(0)>>1), 1, "Seed number from another node"),
		},
	}
}

// Save writes the batch through the underlying saver.
func (n *SaveNode) Save(ctx context.Context, images video.Batch, prefix string, seed *uint64, metadata map[string]any) ([]SavedImage, error) {
	return n.saver.Save(ctx, images, prefix, seed, metadata)
}
