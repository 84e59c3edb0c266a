package resolution

import (
	"fmt"
	"math"

	"github.com/dixieflatline76/Easel/pkg/video"
)

// Configuration constants shared by both selector variants.
const (
	// AspectRatioTolerance is the band around 1.0 inside which an image is
	// classified as square, so near-square sources (e.g. 1000×980) are not
	// forced into a skewed landscape or portrait preset.
	AspectRatioTolerance = 0.05

	// MaxDimension bounds manual width and height.
	MaxDimension = 8192

	// DefaultAlignment is the required divisor for manual dimensions in the
	// general selector; WanAlignment is the stricter WAN-only variant.
	DefaultAlignment = 16
	WanAlignment     = 32
)

// DimensionExtractor extracts (height, width) from an opaque image-like
// value. It is called exactly once per image-bearing invocation.
type DimensionExtractor func(v any) (height, width int, err error)

// Selector resolves output resolutions. It is purely functional per call:
// it reads only the static preset tables and its arguments, so a single
// Selector is safe for concurrent use from any number of goroutines.
type Selector struct {
	alignment int
	minDim    int
	maxDim    int
	extract   DimensionExtractor
}

// NewSelector returns the general selector: 16-pixel alignment, all model
// families. Frame dimensions are read with video.FrameDimensions.
func NewSelector() *Selector {
	return &Selector{
		alignment: DefaultAlignment,
		minDim:    DefaultAlignment,
		maxDim:    MaxDimension,
		extract:   video.FrameDimensions,
	}
}

// NewWanSelector returns the WAN-only variant with 32-pixel alignment.
func NewWanSelector() *Selector {
	return &Selector{
		alignment: WanAlignment,
		minDim:    WanAlignment,
		maxDim:    MaxDimension,
		extract:   video.FrameDimensions,
	}
}

// WithExtractor returns a copy of the selector using the given dimension
// extractor. Useful for hosts with their own tensor bridge.
func (s *Selector) WithExtractor(extract DimensionExtractor) *Selector {
	clone := *s
	clone.extract = extract
	return &clone
}

// Alignment returns the required divisor for manual dimensions.
func (s *Selector) Alignment() int { return s.alignment }

// MinDimension returns the lower bound for manual dimensions.
func (s *Selector) MinDimension() int { return s.minDim }

// Request carries one resolution-selection invocation.
type Request struct {
	Mode     Mode
	Model    Model
	Quality  Quality
	Override Override

	// PresetKey selects from a named-preset catalog (FLUX/SDXL families).
	PresetKey string

	// Manual dimensions, used only in manual mode.
	ManualWidth  int
	ManualHeight int

	// Image is an optional image-like value; its dimensions drive ratio
	// classification for the WAN family in auto mode.
	Image any
}

// SelectResolution resolves a single (width, height) pair for the request,
// or fails with a descriptive error. There is no partial result and no
// silent fallback.
func (s *Selector) SelectResolution(req Request) (Dimensions, error) {
	switch req.Mode {
	case ModeManual:
		// Manual mode ignores every other parameter
		return s.manualResolution(req.ManualWidth, req.ManualHeight)
	case ModeAuto:
		switch req.Model {
		case ModelFlux, ModelFluxKontext, ModelSDXL:
			return NamedPreset(req.Model, req.PresetKey)
		default:
			return s.ratioDriven(req)
		}
	default:
		return Dimensions{}, fmt.Errorf("%w: %q", ErrUnsupportedMode, req.Mode)
	}
}

// manualResolution validates and passes through manual dimensions.
func (s *Selector) manualResolution(width, height int) (Dimensions, error) {
	if width%s.alignment != 0 || height%s.alignment != 0 {
		return Dimensions{}, fmt.Errorf("%w: %dx%d must be divisible by %d",
			ErrInvalidManualDimensions, width, height, s.alignment)
	}
	if width < s.minDim || width > s.maxDim || height < s.minDim || height > s.maxDim {
		return Dimensions{}, fmt.Errorf("%w: %dx%d outside [%d, %d]",
			ErrInvalidManualDimensions, width, height, s.minDim, s.maxDim)
	}
	return Dimensions{Width: width, Height: height}, nil
}

// ratioDriven handles the quality-tiered WAN family, with or without an image.
func (s *Selector) ratioDriven(req Request) (Dimensions, error) {
	if req.Image != nil {
		height, width, err := s.extract(req.Image)
		if err != nil {
			return Dimensions{}, err
		}

		key, forced := resolveRatioKey(req.Override, width, height)
		base, err := selectBaseResolution(req.Quality, key.Landscape())
		if err != nil {
			return Dimensions{}, err
		}

		// Obey forced orientation if the override set one; otherwise infer
		// from the image.
		orientation := forced
		if orientation == OrientationNone && key != RatioSquare {
			if width >= height {
				orientation = OrientationLandscape
			} else {
				orientation = OrientationPortrait
			}
		}
		return applyOrientation(base, key, orientation), nil
	}

	// No image: the override is the only basis for choosing a ratio.
	if req.Override == OverrideOff {
		return Dimensions{}, fmt.Errorf("%w: auto mode with no image", ErrMissingOverride)
	}

	key, forced := resolveRatioKey(req.Override, 1, 1)
	base, err := selectBaseResolution(req.Quality, key.Landscape())
	if err != nil {
		return Dimensions{}, err
	}
	return applyOrientation(base, key, forced), nil
}

// resolveRatioKey classifies a width/height pair (or an explicit override)
// into a canonical ratio key and a forced orientation. Orientation is left
// unset for image-derived classifications because normalizing the aspect to
// >=1 discards which dimension was larger; the caller infers it from the
// image instead.
func resolveRatioKey(override Override, width, height int) (RatioKey, Orientation) {
	switch override {
	case Override16x9:
		return Ratio16x9, OrientationLandscape
	case Override4x3:
		return Ratio4x3, OrientationLandscape
	case Override1x1:
		// Swapping a square has no effect, so orientation is never forced
		return RatioSquare, OrientationNone
	case Override3x4:
		return Ratio3x4Portrait, OrientationPortrait
	case Override9x16:
		return Ratio9x16Portrait, OrientationPortrait
	}

	longer, shorter := width, height
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	if shorter == 0 {
		return RatioSquare, OrientationNone
	}
	aspect := float64(longer) / float64(shorter)

	if math.Abs(aspect-1.0) <= AspectRatioTolerance {
		return RatioSquare, OrientationNone
	}

	// Closest of the two candidate landscape ratios; exact ties prefer 16:9.
	if math.Abs(aspect-16.0/9.0) <= math.Abs(aspect-4.0/3.0) {
		return Ratio16x9, OrientationNone
	}
	return Ratio4x3, OrientationNone
}

// selectBaseResolution looks up the WAN base resolution for a quality tier
// and a landscape ratio key. It never remaps portrait keys; that is the
// caller's responsibility, keeping the table keyed by landscape ratios only.
func selectBaseResolution(quality Quality, key RatioKey) (Dimensions, error) {
	tier, ok := wanPresets[quality]
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: quality=%q ratio=%q", ErrUnsupportedCombination, quality, key)
	}
	dims, ok := tier[key]
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: quality=%q ratio=%q", ErrUnsupportedCombination, quality, key)
	}
	return dims, nil
}

// applyOrientation swaps the base dimensions for portrait output. Square
// ratios are never swapped.
func applyOrientation(base Dimensions, key RatioKey, orientation Orientation) Dimensions {
	if orientation == OrientationPortrait && key != RatioSquare {
		return base.Swapped()
	}
	return base
}

// NamedPreset looks up a resolution by catalog label for a named-preset
// model family. Image and override inputs play no part for these families.
func NamedPreset(model Model, label string) (Dimensions, error) {
	presets, ok := namedPresets[model]
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: model %q has no preset catalog", ErrInvalidPreset, model)
	}
	dims, ok := presets[label]
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: %q for model %q", ErrInvalidPreset, label, model)
	}
	return dims, nil
}
