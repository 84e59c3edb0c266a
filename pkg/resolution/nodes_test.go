package resolution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Easel/pkg/graph"
)

func TestSelectorNodeMetadata(t *testing.T) {
	n := NewSelectorNode()
	assert.Equal(t, "ResolutionSelector", n.Name())
	assert.Equal(t, "Easel Resolution Selector", n.DisplayName())
	assert.Equal(t, "Easel/Resolution", n.Category())
}

func TestSelectorNodeInputSpec(t *testing.T) {
	spec := NewSelectorNode().InputSpec()

	for _, name := range []string{
		"mode", "model", "quality", "aspect_ratio_override",
		"aspect_ratio", "manual_width", "manual_height",
	} {
		assert.Contains(t, spec.Required, name)
	}
	assert.Contains(t, spec.Optional, "image")

	mode := spec.Required["mode"]
	assert.Equal(t, []string{"auto", "manual"}, mode.Options)
	assert.Equal(t, "auto", mode.Default)

	ratio := spec.Required["aspect_ratio"]
	assert.Equal(t, "1024×1024  (1:1)", ratio.Default)
	assert.Len(t, ratio.Options, 23)

	width := spec.Required["manual_width"]
	assert.Equal(t, 16, width.Min)
	assert.Equal(t, 8192, width.Max)
	assert.Equal(t, 16, width.Step)
	assert.Equal(t, 832, width.Default)
}

func TestWanSelectorNodeInputSpec(t *testing.T) {
	spec := NewWanSelectorNode().InputSpec()

	assert.NotContains(t, spec.Required, "model")
	assert.NotContains(t, spec.Required, "aspect_ratio")
	assert.Equal(t, "720p", spec.Required["quality"].Default)

	width := spec.Required["manual_width"]
	assert.Equal(t, 32, width.Min)
	assert.Equal(t, 32, width.Step)
}

func TestSelectorNodeInvoke(t *testing.T) {
	n := NewSelectorNode()
	ctx := context.Background()

	t.Run("manual", func(t *testing.T) {
		out, err := n.Invoke(ctx, map[string]any{
			"mode":          "manual",
			"manual_width":  float64(1024), // JSON numbers decode as float64
			"manual_height": float64(768),
		})
		require.NoError(t, err)
		assert.Equal(t, 1024, out["width"])
		assert.Equal(t, 768, out["height"])
	})

	t.Run("named preset", func(t *testing.T) {
		out, err := n.Invoke(ctx, map[string]any{
			"mode":         "auto",
			"model":        "FLUX",
			"aspect_ratio": "1344×768  (16:9)",
		})
		require.NoError(t, err)
		assert.Equal(t, 1344, out["width"])
		assert.Equal(t, 768, out["height"])
	})

	t.Run("wan override without image", func(t *testing.T) {
		out, err := n.Invoke(ctx, map[string]any{
			"mode":                  "auto",
			"model":                 "WAN",
			"quality":               "480p",
			"aspect_ratio_override": "9:16",
		})
		require.NoError(t, err)
		assert.Equal(t, 480, out["width"])
		assert.Equal(t, 832, out["height"])
	})

	t.Run("wan no override fails", func(t *testing.T) {
		_, err := n.Invoke(ctx, map[string]any{
			"mode":  "auto",
			"model": "WAN",
		})
		assert.ErrorIs(t, err, ErrMissingOverride)
	})

	t.Run("bad mode fails", func(t *testing.T) {
		_, err := n.Invoke(ctx, map[string]any{"mode": "batch"})
		assert.ErrorIs(t, err, ErrUnsupportedMode)
	})
}

func TestSelectorNodeSelectWithImage(t *testing.T) {
	n := NewSelectorNode()
	dims, err := n.Select(Request{
		Mode:     ModeAuto,
		Model:    ModelWAN,
		Quality:  Quality480p,
		Override: OverrideOff,
		Image:    newImage(1920, 1080),
	})
	require.NoError(t, err)
	assert.Equal(t, Dimensions{832, 480}, dims)
}

func TestWanSelectorNodeInvoke(t *testing.T) {
	n := NewWanSelectorNode()
	ctx := context.Background()

	t.Run("quality defaults to 720p", func(t *testing.T) {
		out, err := n.Invoke(ctx, map[string]any{
			"mode":                  "auto",
			"aspect_ratio_override": "16:9",
		})
		require.NoError(t, err)
		assert.Equal(t, 1280, out["width"])
		assert.Equal(t, 720, out["height"])
	})

	t.Run("model is always WAN", func(t *testing.T) {
		// A model argument cannot switch this variant to a preset catalog
		out, err := n.Invoke(ctx, map[string]any{
			"mode":                  "auto",
			"model":                 "FLUX",
			"quality":               "480p",
			"aspect_ratio_override": "4:3",
		})
		require.NoError(t, err)
		assert.Equal(t, 640, out["width"])
		assert.Equal(t, 480, out["height"])
	})

	t.Run("manual uses 32-pixel alignment", func(t *testing.T) {
		_, err := n.Invoke(ctx, map[string]any{
			"mode":          "manual",
			"manual_width":  float64(848),
			"manual_height": float64(480),
		})
		assert.ErrorIs(t, err, ErrInvalidManualDimensions)
	})
}

func TestDimensionsNode(t *testing.T) {
	n := &DimensionsNode{}
	w, h, err := n.Dimensions(newImage(1920, 1080))
	require.NoError(t, err)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	_, _, err = n.Dimensions(nil)
	assert.Error(t, err)
}

func TestAspectRatioNode(t *testing.T) {
	n := &AspectRatioNode{}
	ratio, err := n.AspectRatio(newImage(800, 600))
	require.NoError(t, err)
	assert.Equal(t, "4:3", ratio)
}

func TestMatcherNodeInvoke(t *testing.T) {
	n := &MatcherNode{}
	ctx := context.Background()

	out, err := n.Invoke(ctx, map[string]any{"input_ratio": "21:9"})
	require.NoError(t, err)
	assert.Equal(t, "21:9 (Epic Ultrawide)", out["closest_named_ratio"])

	// Malformed input never fails the node
	out, err = n.Invoke(ctx, map[string]any{"input_ratio": "garbage"})
	require.NoError(t, err)
	assert.Equal(t, "1:1 (Perfect Square)", out["closest_named_ratio"])
}

func TestNodesImplementInterfaces(t *testing.T) {
	var _ graph.Invoker = NewSelectorNode()
	var _ graph.Invoker = NewWanSelectorNode()
	var _ graph.Invoker = (*MatcherNode)(nil)
	var _ graph.Node = (*AspectRatioNode)(nil)
	var _ graph.Node = (*DimensionsNode)(nil)
}
