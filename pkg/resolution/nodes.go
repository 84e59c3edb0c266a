package resolution

import (
	"context"

	"github.com/dixieflatline76/Easel/pkg/graph"
	"github.com/dixieflatline76/Easel/pkg/video"
	"github.com/dixieflatline76/Easel/util/log"
)

// SelectorNode is the universal resolution selector node for WAN and the
// named-preset model families.
type SelectorNode struct {
	selector *Selector
}

// NewSelectorNode creates the node with the general 16-pixel selector.
func NewSelectorNode() *SelectorNode {
	return &SelectorNode{selector: NewSelector()}
}

// NewStrictSelectorNode creates the node with the 32-pixel WAN alignment
// applied to manual dimensions across all model families.
func NewStrictSelectorNode() *SelectorNode {
	return &SelectorNode{selector: NewWanSelector()}
}

// Name returns the node's registration name.
func (n *SelectorNode) Name() string { return "ResolutionSelector" }

// DisplayName returns the name shown in the host UI.
func (n *SelectorNode) DisplayName() string { return "Easel Resolution Selector" }

// Category returns the host UI category.
func (n *SelectorNode) Category() string { return "Easel/Resolution" }

// InputSpec returns the declared inputs for the host UI.
func (n *SelectorNode) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"mode": graph.EnumInput(modeOptions(), string(ModeAuto),
				"Auto from image or override; or manual size"),
			"model": graph.EnumInput(modelOptions(), string(ModelWAN),
				"Model type: WAN uses quality presets, others use specific resolution presets"),
			"quality": graph.EnumInput(qualityOptions(), string(Quality480p),
				"Preset quality tier (WAN only)"),
			"aspect_ratio_override": graph.EnumInput(overrideOptions(), string(OverrideOff),
				"Force a specific aspect ratio in auto mode (WAN only)"),
			"aspect_ratio": graph.EnumInput(PresetLabels(ModelFlux), "1024×1024  (1:1)",
				"Resolution preset for the selected model"),
			"manual_width": graph.IntInput(832, n.selector.MinDimension(), MaxDimension,
				n.selector.Alignment(), "Manual width"),
			"manual_height": graph.IntInput(480, n.selector.MinDimension(), MaxDimension,
				n.selector.Alignment(), "Manual height"),
		},
		Optional: map[string]graph.Input{
			"image": graph.ImageInput("Optional input image"),
		},
	}
}

// Select resolves a resolution for in-process callers, including image-based
// classification.
func (n *SelectorNode) Select(req Request) (Dimensions, error) {
	return n.selector.SelectResolution(req)
}

// Invoke resolves a resolution from JSON-decoded arguments. Image inputs do
// not travel over JSON; image-driven selection uses Select in-process.
func (n *SelectorNode) Invoke(_ context.Context, args map[string]any) (map[string]any, error) {
	dims, err := n.selector.SelectResolution(requestFromArgs(args))
	if err != nil {
		return nil, err
	}
	return map[string]any{"width": dims.Width, "height": dims.Height}, nil
}

// WanSelectorNode is the WAN-only selector variant with the stricter
// 32-pixel manual alignment.
type WanSelectorNode struct {
	selector *Selector
}

// NewWanSelectorNode creates the WAN-only node.
func NewWanSelectorNode() *WanSelectorNode {
	return &WanSelectorNode{selector: NewWanSelector()}
}

// Name returns the node's registration name.
func (n *WanSelectorNode) Name() string { return "WanResolutionSelector" }

// DisplayName returns the name shown in the host UI.
func (n *WanSelectorNode) DisplayName() string { return "Easel WAN Resolution Selector" }

// Category returns the host UI category.
func (n *WanSelectorNode) Category() string { return "Easel/Resolution" }

// InputSpec returns the declared inputs for the host UI.
func (n *WanSelectorNode) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"mode": graph.EnumInput(modeOptions(), string(ModeAuto),
				"Auto from image or override; or manual size"),
			"quality": graph.EnumInput(qualityOptions(), string(Quality720p),
				"Preset quality tier"),
			"aspect_ratio_override": graph.EnumInput(overrideOptions(), string(OverrideOff),
				"Force a specific aspect ratio in auto mode"),
			"manual_width": graph.IntInput(832, n.selector.MinDimension(), MaxDimension,
				n.selector.Alignment(), "Manual width"),
			"manual_height": graph.IntInput(480, n.selector.MinDimension(), MaxDimension,
				n.selector.Alignment(), "Manual height"),
		},
		Optional: map[string]graph.Input{
			"image": graph.ImageInput("Optional input image"),
		},
	}
}

// Select resolves a resolution for in-process callers. The model family is
// always WAN for this variant.
func (n *WanSelectorNode) Select(req Request) (Dimensions, error) {
	req.Model = ModelWAN
	return n.selector.SelectResolution(req)
}

// Invoke resolves a resolution from JSON-decoded arguments.
func (n *WanSelectorNode) Invoke(_ context.Context, args map[string]any) (map[string]any, error) {
	req := requestFromArgs(args)
	req.Model = ModelWAN
	if _, ok := args["quality"]; !ok {
		req.Quality = Quality720p
	}
	dims, err := n.selector.SelectResolution(req)
	if err != nil {
		return nil, err
	}
	return map[string]any{"width": dims.Width, "height": dims.Height}, nil
}

func requestFromArgs(args map[string]any) Request {
	return Request{
		Mode:         Mode(graph.ArgString(args, "mode", string(ModeAuto))),
		Model:        Model(graph.ArgString(args, "model", string(ModelWAN))),
		Quality:      Quality(graph.ArgString(args, "quality", string(Quality480p))),
		Override:     Override(graph.ArgString(args, "aspect_ratio_override", string(OverrideOff))),
		PresetKey:    graph.ArgString(args, "aspect_ratio", ""),
		ManualWidth:  graph.ArgInt(args, "manual_width", 832),
		ManualHeight: graph.ArgInt(args, "manual_height", 480),
	}
}

func modeOptions() []string {
	return []string{string(ModeAuto), string(ModeManual)}
}

func modelOptions() []string {
	return []string{string(ModelWAN), string(ModelFlux), string(ModelFluxKontext), string(ModelSDXL)}
}

func qualityOptions() []string {
	opts := make([]string, 0, 2)
	for _, q := range Qualities() {
		opts = append(opts, string(q))
	}
	return opts
}

func overrideOptions() []string {
	opts := make([]string, 0, 6)
	for _, o := range Overrides() {
		opts = append(opts, string(o))
	}
	return opts
}

// AspectRatioNode extracts a gcd-normalized "width:height" string from an
// image.
type AspectRatioNode struct{}

// Name returns the node's registration name.
func (n *AspectRatioNode) Name() string { return "AspectRatioFromImage" }

// DisplayName returns the name shown in the host UI.
func (n *AspectRatioNode) DisplayName() string { return "Easel Aspect Ratio From Image" }

// Category returns the host UI category.
func (n *AspectRatioNode) Category() string { return "Easel/Resolution" }

// InputSpec returns the declared inputs for the host UI.
func (n *AspectRatioNode) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"image": graph.ImageInput("Input image to extract aspect ratio from"),
		},
	}
}

// AspectRatio returns the image's normalized aspect ratio.
func (n *AspectRatioNode) AspectRatio(img any) (string, error) {
	return AspectRatioOf(img)
}

// DimensionsNode extracts width and height from an image.
type DimensionsNode struct{}

// Name returns the node's registration name.
func (n *DimensionsNode) Name() string { return "ImageDimensions" }

// DisplayName returns the name shown in the host UI.
func (n *DimensionsNode) DisplayName() string { return "Easel Image Dimensions" }

// Category returns the host UI category.
func (n *DimensionsNode) Category() string { return "Easel/Resolution" }

// InputSpec returns the declared inputs for the host UI.
func (n *DimensionsNode) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"image": graph.ImageInput("Input image to extract dimensions from"),
		},
	}
}

// Dimensions returns the image's width and height.
func (n *DimensionsNode) Dimensions(img any) (width, height int, err error) {
	h, w, err := video.FrameDimensions(img)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// MatcherNode finds the closest named aspect ratio from the fixed catalog.
type MatcherNode struct{}

// Name returns the node's registration name.
func (n *MatcherNode) Name() string { return "NamedAspectRatioMatcher" }

// DisplayName returns the name shown in the host UI.
func (n *MatcherNode) DisplayName() string { return "Easel Match Named Aspect Ratio" }

// Category returns the host UI category.
func (n *MatcherNode) Category() string { return "Easel/Resolution" }

// InputSpec returns the declared inputs for the host UI.
func (n *MatcherNode) InputSpec() graph.Spec {
	return graph.Spec{
		Required: map[string]graph.Input{
			"input_ratio": graph.StringInput("16:9", "Input ratio in 'width:height' format"),
		},
	}
}

// Invoke matches the input ratio against the catalog. Malformed input falls
// back to the square label so an optional annotation input cannot break a
// whole graph run.
func (n *MatcherNode) Invoke(_ context.Context, args map[string]any) (map[string]any, error) {
	input := graph.ArgString(args, "input_ratio", "16:9")
	matched, err := MatchNamedRatio(input)
	if err != nil {
		log.Printf("Invalid ratio %q, using square fallback: %v", input, err)
		matched = "1:1 (Perfect Square)"
	}
	return map[string]any{"closest_named_ratio": matched}, nil
}
