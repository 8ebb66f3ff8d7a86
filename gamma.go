package bokeh

import "math"

// gammaEncode lifts real pixels into the complex plane, raising each channel
// to gamma first so the blur runs in exposure space. gamma 1 skips Pow
// entirely: the encode/decode pair must be an exact identity at gamma 1,
// and math.Pow(math.Pow(x, 1), 1) does not guarantee that for every x.
func gammaEncode(pixels [][4]float64, gamma float64) []complexPixel {
	encoded := make([]complexPixel, len(pixels))

	if gamma == 1 {
		for p, px := range pixels {
			for c, v := range px {
				encoded[p][c] = complex(v, 0)
			}
		}
		return encoded
	}

	for p, px := range pixels {
		for c, v := range px {
			encoded[p][c] = complex(math.Pow(v, gamma), 0)
		}
	}

	return encoded
}

// gammaDecode undoes gammaEncode on an accumulated real image, clamping each
// channel to [0, 255] to absorb floating-point excursions.
func gammaDecode(pixel [4]float64, gamma float64) [4]float64 {
	if gamma != 1 {
		inv := 1 / gamma
		for c, v := range pixel {
			pixel[c] = math.Pow(v, inv)
		}
	}
	for c, v := range pixel {
		pixel[c] = min(max(v, 0), 255)
	}
	return pixel
}
