package resolution

import "errors"

// Resolution errors are immediate and non-retryable. The resolver never
// substitutes a fallback resolution; a wrong size silently flowing into a
// sampler is worse than aborting the graph run.
var (
	// ErrUnsupportedMode is returned when mode is not auto or manual.
	ErrUnsupportedMode = errors.New("unsupported mode")
	// ErrInvalidManualDimensions is returned when manual width/height are
	// misaligned or out of bounds.
	ErrInvalidManualDimensions = errors.New("invalid manual dimensions")
	// ErrInvalidPreset is returned when a preset label is unknown for a
	// named-preset model family.
	ErrInvalidPreset = errors.New("invalid resolution preset")
	// ErrUnsupportedCombination is returned when (quality, ratio) has no
	// preset table entry. With the closed ratio enumeration this indicates a
	// classification bug or an unsupported quality tier.
	ErrUnsupportedCombination = errors.New("unsupported quality/ratio combination")
	// ErrMissingOverride is returned in auto mode when no image is supplied
	// and the aspect ratio override is off; there is nothing to infer from.
	ErrMissingOverride = errors.New("aspect ratio override required without an image")
)
