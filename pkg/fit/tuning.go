package fit

// TuningConfig holds the internal magic numbers and thresholds for image
// fitting. These are currently static but centralized here to allow for
// future per-host configuration.
type TuningConfig struct {
	// Aspect difference above which an image is cropped instead of resized.
	AspectThreshold float64 `json:"aspect_threshold"` // Default: 0.01

	// Face logic
	FaceRescueQThreshold float32 `json:"face_rescue_q_threshold"` // Default: 20.0
	FaceIoUThreshold     float64 `json:"face_iou_threshold"`      // Default: 0.2 (clustering)
	FaceDetectConfidence float64 `json:"face_detect_confidence"`  // Default: 10.0 (base filter)
	FaceDetectMinSizePct int     `json:"face_detect_min_size_pct"` // Default: 1 (1% of min dim)
	FaceDetectShift      float64 `json:"face_detect_shift"`       // Default: 0.1 (stride)
	FaceScaleFactor      float64 `json:"face_scale_factor"`       // Default: 1.1

	// Encoding
	EncodingQuality int `json:"encoding_quality"` // Default: 95
}

// DefaultTuningConfig returns the standard values.
func DefaultTuningConfig() TuningConfig {
	return TuningConfig{
		AspectThreshold:      0.01,
		FaceRescueQThreshold: 20.0,
		FaceIoUThreshold:     0.2,
		FaceDetectConfidence: 10.0,
		FaceDetectMinSizePct: 1,
		FaceDetectShift:      0.1,
		FaceScaleFactor:      1.1,
		EncodingQuality:      95,
	}
}
