package resolution

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dixieflatline76/Easel/pkg/video"
	"github.com/dixieflatline76/Easel/util"
)

// namedRatio pairs a canonical ratio with its human-friendly label.
type namedRatio struct {
	ratio string
	label string
}

// knownRatios is the fixed catalog of named ratios, portrait first then
// landscape, matched by closest value.
var knownRatios = []namedRatio{
	{"1:1", "Perfect Square"},
	{"2:3", "Classic Portrait"},
	{"3:4", "Golden Ratio"},
	{"3:5", "Elegant Vertical"},
	{"4:5", "Artistic Frame"},
	{"5:7", "Balanced Portrait"},
	{"5:8", "Tall Portrait"},
	{"7:9", "Modern Portrait"},
	{"9:16", "Slim Vertical"},
	{"9:19", "Tall Slim"},
	{"9:21", "Ultra Tall"},
	{"9:32", "Skyline"},
	{"3:2", "Golden Landscape"},
	{"4:3", "Classic Landscape"},
	{"5:3", "Wide Horizon"},
	{"5:4", "Balanced Frame"},
	{"7:5", "Elegant Landscape"},
	{"8:5", "Cinematic View"},
	{"16:9", "Panorama"},
	{"19:9", "Cinematic Ultrawide"},
	{"21:9", "Epic Ultrawide"},
	{"32:9", "Extreme Ultrawide"},
}

// ParseRatio parses a "width:height" string into its two positive parts.
func ParseRatio(s string) (w, h float64, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid ratio format: %q", s)
	}
	w, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ratio format: %q", s)
	}
	h, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ratio format: %q", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("ratio parts must be positive: %q", s)
	}
	return w, h, nil
}

// MatchNamedRatio finds the closest named ratio to the input "width:height"
// string and returns it with its label, e.g. "16:9 (Panorama)".
func MatchNamedRatio(input string) (string, error) {
	w, h, err := ParseRatio(input)
	if err != nil {
		return "", err
	}
	target := w / h

	closest := knownRatios[0]
	minDiff := math.Inf(1)
	for _, nr := range knownRatios {
		rw, rh, _ := ParseRatio(nr.ratio) // catalog entries always parse
		diff := math.Abs(rw/rh - target)
		if diff < minDiff {
			minDiff = diff
			closest = nr
		}
	}
	return fmt.Sprintf("%s (%s)", closest.ratio, closest.label), nil
}

// AspectRatioOf returns the gcd-normalized "width:height" aspect ratio of an
// image-like value.
func AspectRatioOf(img any) (string, error) {
	height, width, err := video.FrameDimensions(img)
	if err != nil {
		return "", err
	}
	gcd := util.Gcd(width, height)
	return fmt.Sprintf("%d:%d", width/gcd, height/gcd), nil
}
