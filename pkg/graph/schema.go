package graph

// Input describes a single node input for the host UI.
type Input struct {
	Type    string   `json:"type"` // "INT", "ENUM", "BOOLEAN", "STRING" or "IMAGE"
	Options []string `json:"options,omitempty"`
	Default any      `json:"default,omitempty"`
	Min     int      `json:"min,omitempty"`
	Max     int      `json:"max,omitempty"`
	Step    int      `json:"step,omitempty"`
	Tooltip string   `json:"tooltip,omitempty"`
}

// Spec declares the required and optional inputs of a node.
type Spec struct {
	Required map[string]Input `json:"required"`
	Optional map[string]Input `json:"optional,omitempty"`
}

// EnumInput declares an input restricted to a fixed set of values.
func EnumInput(options []string, def, tooltip string) Input {
	return Input{Type: "ENUM", Options: options, Default: def, Tooltip: tooltip}
}

// IntInput declares a bounded, stepped integer input.
func IntInput(def, min, max, step int, tooltip string) Input {
	return Input{Type: "INT", Default: def, Min: min, Max: max, Step: step, Tooltip: tooltip}
}

// BoolInput declares a boolean input.
func BoolInput(def bool, tooltip string) Input {
	return Input{Type: "BOOLEAN", Default: def, Tooltip: tooltip}
}

// StringInput declares a free-form string input.
func StringInput(def, tooltip string) Input {
	return Input{Type: "STRING", Default: def, Tooltip: tooltip}
}

// ImageInput declares an image (or image batch) input.
func ImageInput(tooltip string) Input {
	return Input{Type: "IMAGE", Tooltip: tooltip}
}
