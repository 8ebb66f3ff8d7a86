package bokeh

// complexPixel holds one pixel's four channels mid-pipeline. Channel
// semantics are opaque here; all four are treated uniformly.
type complexPixel [4]complex128

// horizontalFilter convolves each row of input with kernel. The interior,
// where every tap lands inside the row, runs without range checks; the two
// border strips re-test every tap and drop the ones that fall outside.
// Dropped taps are not compensated for: border pixels receive a partial,
// under-weighted sum. See the package doc's Edge Policy section.
func horizontalFilter(input []complexPixel, kernel []complex128, w, h int) []complexPixel {
	output := make([]complexPixel, w*h)
	half := len(kernel) / 2

	for j := 0; j < h; j++ {
		row := j * w

		for i := half; i < w-half; i++ {
			var out complexPixel
			for n, k := range kernel {
				in := &input[row+i-half+n]
				for c := range out {
					out[c] += in[c] * k
				}
			}
			output[row+i] = out
		}

		for _, r := range [2][2]int{{0, half}, {w - half, w}} {
			for x := r[0]; x < r[1]; x++ {
				var out complexPixel
				for n, k := range kernel {
					src := x - half + n
					if src < 0 || src >= w {
						continue
					}
					in := &input[row+src]
					for c := range out {
						out[c] += in[c] * k
					}
				}
				output[row+x] = out
			}
		}
	}

	return output
}

// verticalFilter convolves each column of input with kernel, with the same
// interior/border split and dropped-tap policy as horizontalFilter.
func verticalFilter(input []complexPixel, kernel []complex128, w, h int) []complexPixel {
	output := make([]complexPixel, w*h)
	half := len(kernel) / 2

	for i := 0; i < w; i++ {
		for j := half; j < h-half; j++ {
			var out complexPixel
			for n, k := range kernel {
				in := &input[(j-half+n)*w+i]
				for c := range out {
					out[c] += in[c] * k
				}
			}
			output[j*w+i] = out
		}

		for _, r := range [2][2]int{{0, half}, {h - half, h}} {
			for y := r[0]; y < r[1]; y++ {
				var out complexPixel
				for n, k := range kernel {
					src := y - half + n
					if src < 0 || src >= h {
						continue
					}
					in := &input[src*w+i]
					for c := range out {
						out[c] += in[c] * k
					}
				}
				output[y*w+i] = out
			}
		}
	}

	return output
}
