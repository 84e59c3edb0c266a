package fit

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"

	pigo "github.com/esimov/pigo/core"

	"github.com/dixieflatline76/Easel/pkg/resolution"
)

// Processor fits source images to a target resolution using smart cropping,
// with optional face-aware crop rescue.
type Processor struct {
	tuning    TuningConfig
	resampler imaging.ResampleFilter
	faces     *pigo.Pigo // nil disables face boost
}

// NewProcessor creates a processor. faceModel may be nil, in which case crop
// placement relies on smartcrop alone.
func NewProcessor(tuning TuningConfig, faceModel *pigo.Pigo) *Processor {
	return &Processor{
		tuning:    tuning,
		resampler: imaging.Lanczos,
		faces:     faceModel,
	}
}

// LoadFaceModel unpacks a pigo face detection cascade from raw model bytes.
func LoadFaceModel(modelData []byte) (*pigo.Pigo, error) {
	p := pigo.NewPigo()
	classifier, err := p.Unpack(modelData)
	if err != nil {
		return nil, fmt.Errorf("unpacking face model: %w", err)
	}
	return classifier, nil
}

// DecodeImage decodes an image from a byte slice with context awareness.
func (p *Processor) DecodeImage(ctx context.Context, imgBytes []byte, contentType string) (image.Image, string, error) {
	var img image.Image
	var err error
	var ext string

	if err := checkContext(ctx); err != nil {
		return nil, "", err
	}

	switch contentType {
	case "image/png":
		img, err = png.Decode(bytes.NewReader(imgBytes))
		ext = "png"
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(imgBytes))
		ext = "jpg"
	default:
		img, ext, err = image.Decode(bytes.NewReader(imgBytes))
	}
	if err != nil {
		return nil, ext, fmt.Errorf("decoding image: %w", err)
	}

	if err := checkContext(ctx); err != nil {
		return nil, "", err
	}
	return img, ext, nil
}

// EncodeImage encodes an image to a byte slice with context awareness.
func (p *Processor) EncodeImage(ctx context.Context, img image.Image, contentType string) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	switch contentType {
	case "image/png":
		err = png.Encode(&buf, img)
	case "image/jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.tuning.EncodingQuality})
	default:
		return nil, fmt.Errorf("unsupported format: %s", contentType)
	}

	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FitImage fits an image to the target dimensions with context awareness.
// Images already at the target pass through untouched; matching aspect
// ratios resize directly; everything else is smart-cropped first.
func (p *Processor) FitImage(ctx context.Context, img image.Image, target resolution.Dimensions) (image.Image, error) {
	if target.Width <= 0 || target.Height <= 0 {
		return nil, fmt.Errorf("invalid target dimensions %dx%d", target.Width, target.Height)
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	imageWidth := img.Bounds().Dx()
	imageHeight := img.Bounds().Dy()
	if imageWidth == 0 || imageHeight == 0 {
		return nil, fmt.Errorf("empty source image")
	}

	targetAspect := float64(target.Width) / float64(target.Height)
	imageAspect := float64(imageWidth) / float64(imageHeight)
	aspectDiff := math.Abs(targetAspect - imageAspect)

	r := &resizer{resampler: p.resampler}

	switch {
	case imageWidth == target.Width && imageHeight == target.Height:
		return img, nil
	case aspectDiff <= p.tuning.AspectThreshold:
		resized := r.resizeWithContext(ctx, img, uint(target.Width), uint(target.Height))
		if resized == nil {
			return nil, ctx.Err()
		}
		return resized, nil
	default:
		cropped, err := p.cropImage(ctx, img, target)
		if err != nil {
			return nil, fmt.Errorf("cropping image: %w", err)
		}
		return cropped, nil
	}
}

// cropImage finds the best crop window for the target aspect, rescues it
// toward detected faces when needed, then crops and resizes.
func (p *Processor) cropImage(ctx context.Context, img image.Image, target resolution.Dimensions) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	r := &resizer{resampler: p.resampler}
	analyzer := smartcrop.NewAnalyzer(r)

	// FindBestCrop has no context support; run it in a goroutine so
	// cancellation is still honored.
	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)

	go func() {
		topCrop, err := analyzer.FindBestCrop(img, target.Width, target.Height)
		resultChan <- cropResult{crop: topCrop, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return nil, fmt.Errorf("finding best crop: %w", result.err)
		}

		crop := result.crop
		if p.faces != nil {
			crop = p.rescueCrop(img, crop)
		}

		type SubImager interface {
			SubImage(r image.Rectangle) image.Image
		}
		sub, ok := img.(SubImager)
		if !ok {
			return nil, fmt.Errorf("image type %T does not support cropping", img)
		}

		resized := r.resizeWithContext(ctx, sub.SubImage(crop), uint(target.Width), uint(target.Height))
		if resized == nil {
			return nil, ctx.Err()
		}
		return resized, nil
	}
}

// resizer implements the smartcrop.Resizer interface and adds context
// awareness on top.
type resizer struct {
	resampler imaging.ResampleFilter
}

// Resize satisfies smartcrop.Resizer, which has no context support;
// cancellation is handled in resizeWithContext.
func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}

// resizeWithContext performs the resize operation with context awareness.
// A nil return means the context was canceled.
func (r *resizer) resizeWithContext(ctx context.Context, img image.Image, width, height uint) image.Image {
	resultChan := make(chan image.Image, 1)

	go func() {
		resultChan <- imaging.Resize(img, int(width), int(height), r.resampler)
	}()

	select {
	case <-ctx.Done():
		return nil
	case result := <-resultChan:
		return result
	}
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
