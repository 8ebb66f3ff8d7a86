// Command bokeh applies a disc-approximation (bokeh) blur to an image file.
//
// The input format is detected from the file contents; PNG, JPEG, GIF, BMP,
// TIFF and WebP are supported. Output is always PNG. An optional mask image
// restricts the blur to the region where the mask's alpha channel is at
// least 128.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/bokeh"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func main() {
	var (
		input      = flag.String("input", "", "input image file (required)")
		output     = flag.String("output", "out.png", "output PNG file")
		radius     = flag.Float64("radius", 8.0, "blur radius in pixels")
		samples    = flag.Int("samples", 0, "kernel taps per side of center (0 = one per pixel of radius)")
		gamma      = flag.Float64("gamma", 3.0, "exposure gamma (1 = linear)")
		components = flag.Int("components", 5, "kernel components, 1-9 (more = rounder discs, slower)")
		maskFile   = flag.String("mask", "", "optional mask image; blur only where its alpha >= 128")
		verbose    = flag.Bool("v", false, "log timing to stderr")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *components < 1 || *components > len(presets) {
		log.Fatalf("invalid -components %d: want 1-%d", *components, len(presets))
	}
	if *samples == 0 {
		// Taps sit one per pixel, so the kernel support ends at the radius.
		*samples = int(math.Ceil(*radius))
	}
	if *verbose {
		bokeh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pm, err := bokeh.LoadPixmap(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	table := presets[*components-1]

	if *maskFile != "" {
		mask, err := loadMask(*maskFile)
		if err != nil {
			log.Fatalf("Failed to load mask %s: %v", *maskFile, err)
		}
		err = pm.BlurMasked(mask, *radius, *samples, *gamma, table)
		if err != nil {
			log.Fatalf("Blur failed: %v", err)
		}
	} else {
		if err := pm.Blur(*radius, *samples, *gamma, table); err != nil {
			log.Fatalf("Blur failed: %v", err)
		}
	}

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Blurred %s -> %s (%dx%d, r=%.1f, %d components)\n",
		*input, *output, pm.Width(), pm.Height(), *radius, *components)
}

var presets = []*bokeh.ParamTable{
	bokeh.Kernel1, bokeh.Kernel2, bokeh.Kernel3,
	bokeh.Kernel4, bokeh.Kernel5, bokeh.Kernel6,
	bokeh.Kernel7, bokeh.Kernel8, bokeh.Kernel9,
}

func loadMask(path string) (*bokeh.Mask, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return bokeh.NewMaskFromAlpha(img, 128), nil
}
