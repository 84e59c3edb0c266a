package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/dixieflatline76/Easel/pkg/resolution"
)

func main() {
	mode := flag.String("mode", "auto", "auto or manual")
	model := flag.String("model", "WAN", "WAN, FLUX, FLUX Kontext or SDXL")
	quality := flag.String("quality", "480p", "quality tier for WAN")
	override := flag.String("override", "off", "aspect ratio override")
	preset := flag.String("preset", "", "preset label for named-preset models")
	width := flag.Int("width", 832, "manual width")
	height := flag.Int("height", 480, "manual height")
	imagePath := flag.String("image", "", "optional image file to classify")
	wan := flag.Bool("wan", false, "use the WAN-only selector (32px alignment)")
	flag.Parse()

	req := resolution.Request{
		Mode:         resolution.Mode(*mode),
		Model:        resolution.Model(*model),
		Quality:      resolution.Quality(*quality),
		Override:     resolution.Override(*override),
		PresetKey:    *preset,
		ManualWidth:  *width,
		ManualHeight: *height,
	}

	if *imagePath != "" {
		f, err := os.Open(*imagePath)
		if err != nil {
			fmt.Printf("Error opening image: %v\n", err)
			os.Exit(1)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			fmt.Printf("Error decoding image: %v\n", err)
			os.Exit(1)
		}
		req.Image = img
		fmt.Printf("Image: %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())
	}

	selector := resolution.NewSelector()
	if *wan {
		selector = resolution.NewWanSelector()
		req.Model = resolution.ModelWAN
	}

	dims, err := selector.SelectResolution(req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Resolution: %dx%d\n", dims.Width, dims.Height)
}
