package fit

import (
	"image"

	pigo "github.com/esimov/pigo/core"

	"github.com/dixieflatline76/Easel/util"
)

// detectFaces runs the cascade over a grayscale copy of the image and
// returns clustered detections above the confidence floor.
func (p *Processor) detectFaces(img image.Image) []pigo.Detection {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	if rows == 0 || cols == 0 {
		return nil
	}

	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	// The cascade needs a sane floor to avoid scanning noise-sized windows
	minSize := util.Clamp(minDim*p.tuning.FaceDetectMinSizePct/100, 20, minDim)

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = pigo.ImgToNRGBA(img)
	}

	params := pigo.CascadeParams{
		MinSize:     minSize,
		MaxSize:     minDim,
		ShiftFactor: p.tuning.FaceDetectShift,
		ScaleFactor: p.tuning.FaceScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(nrgba),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := p.faces.RunCascade(params, 0.0)
	dets = p.faces.ClusterDetections(dets, p.tuning.FaceIoUThreshold)

	kept := dets[:0]
	for _, d := range dets {
		if float64(d.Q) >= p.tuning.FaceDetectConfidence {
			kept = append(kept, d)
		}
	}
	return kept
}

// rescueCrop shifts the crop window to cover the strongest detected face
// when that face falls outside the window. The window size never changes,
// only its position, so the target aspect is preserved.
func (p *Processor) rescueCrop(img image.Image, crop image.Rectangle) image.Rectangle {
	faces := p.detectFaces(img)
	if len(faces) == 0 {
		return crop
	}

	best := faces[0]
	for _, f := range faces[1:] {
		if f.Q > best.Q {
			best = f
		}
	}
	if best.Q < p.tuning.FaceRescueQThreshold {
		return crop
	}

	center := image.Pt(best.Col, best.Row)
	if center.In(crop) {
		return crop
	}

	shifted := crop
	if center.X < crop.Min.X {
		shifted = shifted.Add(image.Pt(center.X-crop.Min.X, 0))
	} else if center.X >= crop.Max.X {
		shifted = shifted.Add(image.Pt(center.X-crop.Max.X+1, 0))
	}
	if center.Y < crop.Min.Y {
		shifted = shifted.Add(image.Pt(0, center.Y-crop.Min.Y))
	} else if center.Y >= crop.Max.Y {
		shifted = shifted.Add(image.Pt(0, center.Y-crop.Max.Y+1))
	}

	// Keep the window inside the image
	bounds := img.Bounds()
	if shifted.Min.X < bounds.Min.X {
		shifted = shifted.Add(image.Pt(bounds.Min.X-shifted.Min.X, 0))
	}
	if shifted.Min.Y < bounds.Min.Y {
		shifted = shifted.Add(image.Pt(0, bounds.Min.Y-shifted.Min.Y))
	}
	if shifted.Max.X > bounds.Max.X {
		shifted = shifted.Add(image.Pt(bounds.Max.X-shifted.Max.X, 0))
	}
	if shifted.Max.Y > bounds.Max.Y {
		shifted = shifted.Add(image.Pt(0, bounds.Max.Y-shifted.Max.Y))
	}
	return shifted
}
