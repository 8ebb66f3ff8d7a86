package bokeh

import (
	"fmt"
	"math"
	"time"
)

// Blur blurs pixels in place with an approximation of a disc-shaped kernel.
//
// pixels is a flat row-major buffer of 4-channel float64 pixels with channel
// values conventionally in [0, 255]; it must hold exactly width*height
// pixels. radius is the blur radius in pixels and must be positive and
// finite; samples is the discretization count (the kernel spans 2*samples+1
// taps, which must fit inside both image dimensions). gamma selects the
// exposure space the blur runs in; 1 means linear. table selects the kernel
// family, typically one of Kernel1..Kernel9.
//
// On error nothing is written: the call either blurs the whole image or
// rejects its inputs with one of ErrParamTable, ErrDimensions or ErrGamma.
func Blur(pixels [][4]float64, width, height int, radius float64, samples int, gamma float64, table *ParamTable) error {
	return blur(pixels, nil, width, height, radius, samples, gamma, table)
}

// BlurMasked is Blur gated by a per-pixel mask: where mask is true the pixel
// is replaced by its blurred value, where false it keeps its original value.
// Masked-out pixels still contribute to their neighbours' blur. mask must
// have exactly one entry per pixel.
func BlurMasked(pixels [][4]float64, mask []bool, width, height int, radius float64, samples int, gamma float64, table *ParamTable) error {
	if mask == nil {
		return fmt.Errorf("%w: nil mask, use Blur for an unmasked pass", ErrDimensions)
	}
	return blur(pixels, mask, width, height, radius, samples, gamma, table)
}

func blur(pixels [][4]float64, mask []bool, width, height int, radius float64, samples int, gamma float64, table *ParamTable) error {
	if err := validate(pixels, mask, width, height, radius, samples, gamma); err != nil {
		return err
	}

	start := time.Now()

	kernels, err := KernelComponents(table, radius, samples)
	if err != nil {
		return err
	}

	blurred := accumulate(gammaEncode(pixels, gamma), width, height, table, kernels)

	if mask == nil {
		for p := range pixels {
			pixels[p] = gammaDecode(blurred[p], gamma)
		}
	} else {
		for p := range pixels {
			if mask[p] {
				pixels[p] = gammaDecode(blurred[p], gamma)
			}
		}
	}

	Logger().Debug("bokeh blur",
		"width", width, "height", height,
		"components", table.Components(),
		"samples", samples,
		"radius", radius,
		"masked", mask != nil,
		"duration", time.Since(start))

	return nil
}

// validate checks every precondition up front so a bad call fails before
// any pixel is touched.
func validate(pixels [][4]float64, mask []bool, width, height int, radius float64, samples int, gamma float64) error {
	if len(pixels) != width*height {
		return fmt.Errorf("%w: pixel buffer holds %d pixels, want %d (%dx%d)",
			ErrDimensions, len(pixels), width*height, width, height)
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return fmt.Errorf("%w: radius %v, want positive and finite", ErrDimensions, radius)
	}
	if samples < 1 {
		return fmt.Errorf("%w: sample count %d, want at least 1", ErrDimensions, samples)
	}
	if size := 2*samples + 1; width < size || height < size {
		return fmt.Errorf("%w: %dx%d image cannot hold a %d-tap kernel",
			ErrDimensions, width, height, size)
	}
	if mask != nil && len(mask) != len(pixels) {
		return fmt.Errorf("%w: mask has %d entries, want %d",
			ErrDimensions, len(mask), len(pixels))
	}
	if !(gamma > 0) || math.IsInf(gamma, 1) {
		return fmt.Errorf("%w: gamma %v, want positive and finite", ErrGamma, gamma)
	}
	return nil
}
