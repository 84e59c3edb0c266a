package plot

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis is one plot dimension: a parameter name and the values it sweeps.
type Axis struct {
	Param  string
	Values []any
}

// Empty reports whether the axis has no values to sweep.
func (a Axis) Empty() bool {
	return len(a.Values) == 0
}

// Labels returns the axis values formatted for cell labels.
func (a Axis) Labels() []string {
	labels := make([]string, len(a.Values))
	for i, v := range a.Values {
		labels[i] = fmt.Sprintf("%v", v)
	}
	return labels
}

// ParseAxis builds an axis from a parameter name and a comma-separated
// value list. All-integer lists parse as ints, all-numeric as floats,
// anything else stays strings.
func ParseAxis(param, valueList string) (Axis, error) {
	param = strings.TrimSpace(param)
	if param == "" {
		return Axis{}, fmt.Errorf("axis parameter name is empty")
	}

	var raw []string
	for _, part := range strings.Split(valueList, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			raw = append(raw, part)
		}
	}
	if len(raw) == 0 {
		return Axis{}, fmt.Errorf("axis %q has no values", param)
	}

	return Axis{Param: param, Values: parseValues(raw)}, nil
}

func parseValues(raw []string) []any {
	ints := make([]any, 0, len(raw))
	allInts := true
	for _, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			allInts = false
			break
		}
		ints = append(ints, n)
	}
	if allInts {
		return ints
	}

	floats := make([]any, 0, len(raw))
	allFloats := true
	for _, s := range raw {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			allFloats = false
			break
		}
		floats = append(floats, f)
	}
	if allFloats {
		return floats
	}

	strs := make([]any, len(raw))
	for i, s := range raw {
		strs[i] = s
	}
	return strs
}
