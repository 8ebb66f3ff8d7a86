// Package bokeh blurs images with an approximation of a disc-shaped kernel,
// producing the out-of-focus highlights of a camera lens.
//
// # Overview
//
// A disc kernel is not separable, so a direct implementation costs
// O(w*h*r^2). This package instead approximates the disc as a sum of complex
// Gaussian components, each of which *is* separable: every component is
// applied as a horizontal then a vertical 1-D pass, and the complex results
// are folded back into a real image using per-component weights. Total cost
// is O(w*h*r*N) for N components; more components give a crisper disc edge.
//
// The component parameters come from a [ParamTable]. Nine reference tables
// are shipped as [Kernel1] through [Kernel9], trading speed (fewer
// components) against ring quality (more components).
//
// # Quick Start
//
//	import "github.com/gogpu/bokeh"
//
//	pm, err := bokeh.LoadPixmap("input.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := pm.Blur(8.0, 24, 3.0, bokeh.Kernel5); err != nil {
//	    log.Fatal(err)
//	}
//	if err := pm.SavePNG("output.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// Callers that manage their own pixel buffers can use [Blur] and
// [BlurMasked] directly on a flat slice of 4-channel float64 pixels.
//
// # Edge Policy
//
// Kernel taps that fall outside the image are dropped from the sum, not
// clamped or mirrored, and the partial sum is not renormalized. Pixels
// within the kernel support of an edge therefore come out slightly darker
// than an edge-extended blur would make them. The policy is deliberate and
// stable: changing it would silently change every output image near its
// borders, so it is pinned by tests instead.
//
// # Gamma
//
// Blurring in gamma-encoded space keeps highlights from washing out.
// A gamma around 2.2-3.0 gives the punchy bokeh discs photographers expect;
// gamma 1.0 blurs in linear space and is an exact pass-through encode.
package bokeh
