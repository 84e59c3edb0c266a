package resolution

// Mode selects how the resolver chooses an output resolution.
type Mode string

// Supported modes.
const (
	ModeAuto   Mode = "auto"
	ModeManual Mode = "manual"
)

// Model identifies a target model family.
type Model string

// Supported model families. WAN resolves through quality tiers and aspect
// ratio classification; the others use fixed named preset catalogs.
const (
	ModelWAN         Model = "WAN"
	ModelFlux        Model = "FLUX"
	ModelFluxKontext Model = "FLUX Kontext"
	ModelSDXL        Model = "SDXL"
)

// Quality is a WAN preset quality tier.
type Quality string

// Supported quality tiers.
const (
	Quality480p Quality = "480p"
	Quality720p Quality = "720p"
)

// RatioKey is a canonical aspect ratio. Landscape keys are 1:1, 4:3 and
// 16:9; 3:4 and 9:16 are their portrait transposes.
type RatioKey string

// Canonical ratio keys.
const (
	RatioSquare       RatioKey = "1:1"
	Ratio4x3          RatioKey = "4:3"
	Ratio16x9         RatioKey = "16:9"
	Ratio3x4Portrait  RatioKey = "3:4"
	Ratio9x16Portrait RatioKey = "9:16"
)

// Landscape maps a portrait key to its landscape equivalent. Landscape and
// square keys map to themselves. Preset tables are keyed by landscape keys
// only; callers remap before lookup.
func (k RatioKey) Landscape() RatioKey {
	if l, ok := portraitToLandscape[k]; ok {
		return l
	}
	return k
}

// Orientation tags how base dimensions are applied. The zero value means the
// orientation is not forced and will be inferred from the source image.
type Orientation string

// Orientations. OrientationNone applies only to the square ratio or to
// classifications that leave orientation to be inferred.
const (
	OrientationNone      Orientation = ""
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// Override is a caller-supplied token that forces ratio classification,
// bypassing image-based inference.
type Override string

// Override tokens.
const (
	OverrideOff  Override = "off"
	Override1x1  Override = "1:1"
	Override4x3  Override = "4:3"
	Override16x9 Override = "16:9"
	Override3x4  Override = "3:4"
	Override9x16 Override = "9:16"
)

// Dimensions is an output (width, height) pair.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Swapped returns the dimensions with width and height exchanged.
func (d Dimensions) Swapped() Dimensions {
	return Dimensions{Width: d.Height, Height: d.Width}
}

var portraitToLandscape = map[RatioKey]RatioKey{
	Ratio3x4Portrait:  Ratio4x3,
	Ratio9x16Portrait: Ratio16x9,
}

// wanPresets maps quality tier and landscape ratio key to the WAN base
// resolution. Portrait orientation is applied later by swapping.
var wanPresets = map[Quality]map[RatioKey]Dimensions{
	Quality480p: {
		RatioSquare: {512, 512},
		Ratio4x3:    {640, 480},
		Ratio16x9:   {832, 480},
	},
	Quality720p: {
		RatioSquare: {768, 768},
		Ratio4x3:    {960, 720},
		Ratio16x9:   {1280, 720},
	},
}

type presetEntry struct {
	label string
	dims  Dimensions
}

// General FLUX presets (labels must stay in sync with the host frontend).
var fluxPresetList = []presetEntry{
	{"576×2048  (9:32)", Dimensions{576, 2048}},
	{"640×1472  (9:21)", Dimensions{640, 1472}},
	{"704×1472  (9:19)", Dimensions{704, 1472}},
	{"768×1344  (9:16)", Dimensions{768, 1344}},
	{"896×1152  (7:9)", Dimensions{896, 1152}},
	{"832×1280  (5:8)", Dimensions{832, 1280}},
	{"832×1152  (5:7)", Dimensions{832, 1152}},
	{"896×1152  (4:5)", Dimensions{896, 1152}},
	{"768×1280  (3:5)", Dimensions{768, 1280}},
	{"896×1152  (3:4)", Dimensions{896, 1152}},
	{"832×1280  (2:3)", Dimensions{832, 1280}},
	{"1024×1024  (1:1)", Dimensions{1024, 1024}},
	{"1280×832  (3:2)", Dimensions{1280, 832}},
	{"1152×896  (4:3)", Dimensions{1152, 896}},
	{"1280×768  (5:3)", Dimensions{1280, 768}},
	{"1152×896  (5:4)", Dimensions{1152, 896}},
	{"1152×832  (7:5)", Dimensions{1152, 832}},
	{"1280×832  (8:5)", Dimensions{1280, 832}},
	{"1152×896  (9:7)", Dimensions{1152, 896}},
	{"1344×768  (16:9)", Dimensions{1344, 768}},
	{"1472×704  (19:9)", Dimensions{1472, 704}},
	{"1472×640  (21:9)", Dimensions{1472, 640}},
	{"2048×576  (32:9)", Dimensions{2048, 576}},
}

// FLUX Kontext specific resolution presets.
var fluxKontextPresetList = []presetEntry{
	{"672×1568  (9:21)", Dimensions{672, 1568}},
	{"688×1504  (9:19.5)", Dimensions{688, 1504}},
	{"720×1456  (9:18)", Dimensions{720, 1456}},
	{"752×1392  (9:17)", Dimensions{752, 1392}},
	{"800×1328  (5:8)", Dimensions{800, 1328}},
	{"832×1248  (2:3)", Dimensions{832, 1248}},
	{"880×1184  (3:4)", Dimensions{880, 1184}},
	{"944×1104  (4:5)", Dimensions{944, 1104}},
	{"1024×1024  (1:1)", Dimensions{1024, 1024}},
	{"1104×944  (5:4)", Dimensions{1104, 944}},
	{"1184×880  (4:3)", Dimensions{1184, 880}},
	{"1248×832  (3:2)", Dimensions{1248, 832}},
	{"1328×800  (8:5)", Dimensions{1328, 800}},
	{"1392×752  (17:9)", Dimensions{1392, 752}},
	{"1456×720  (18:9)", Dimensions{1456, 720}},
	{"1504×688  (19.5:9)", Dimensions{1504, 688}},
	{"1568×672  (21:9)", Dimensions{1568, 672}},
}

// SDXL optimized resolution presets.
var sdxlPresetList = []presetEntry{
	{"640×1536  (5:12)", Dimensions{640, 1536}},
	{"768×1344  (4:7)", Dimensions{768, 1344}},
	{"832×1216  (2:3)", Dimensions{832, 1216}},
	{"896×1152  (7:9)", Dimensions{896, 1152}},
	{"1024×1024  (1:1)", Dimensions{1024, 1024}},
	{"1152×896  (9:7)", Dimensions{1152, 896}},
	{"1216×832  (3:2)", Dimensions{1216, 832}},
	{"1344×768  (7:4)", Dimensions{1344, 768}},
	{"1536×640  (12:5)", Dimensions{1536, 640}},
}

var namedPresets = map[Model]map[string]Dimensions{
	ModelFlux:        presetMap(fluxPresetList),
	ModelFluxKontext: presetMap(fluxKontextPresetList),
	ModelSDXL:        presetMap(sdxlPresetList),
}

var namedPresetLabels = map[Model][]string{
	ModelFlux:        presetLabels(fluxPresetList),
	ModelFluxKontext: presetLabels(fluxKontextPresetList),
	ModelSDXL:        presetLabels(sdxlPresetList),
}

func presetMap(entries []presetEntry) map[string]Dimensions {
	m := make(map[string]Dimensions, len(entries))
	for _, e := range entries {
		m[e.label] = e.dims
	}
	return m
}

func presetLabels(entries []presetEntry) []string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}
	return labels
}

// PresetLabels returns the catalog labels for a named-preset model family,
// in host UI order. Returns nil for ratio-driven families like WAN.
func PresetLabels(model Model) []string {
	return namedPresetLabels[model]
}

// Qualities returns the supported WAN quality tiers.
func Qualities() []Quality {
	return []Quality{Quality480p, Quality720p}
}

// Overrides returns the accepted aspect ratio override tokens.
func Overrides() []Override {
	return []Override{OverrideOff, Override1x1, Override4x3, Override16x9, Override3x4, Override9x16}
}
