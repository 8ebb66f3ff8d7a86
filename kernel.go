package bokeh

import (
	"fmt"
	"math"
)

// complexKernel builds one unnormalized 1-D complex Gaussian kernel of
// length 2*samples+1. Tap i sits i pixels from the kernel center and is
// evaluated at the scaled offset
//
//	ax     = i * scale / radius
//	kernel = exp(-a*ax^2) * (cos(b*ax^2) + i*sin(b*ax^2))
//
// a controls amplitude decay, b the oscillation frequency. One blur radius
// from the center ax reaches scale, the edge of the fitted support, so taps
// much beyond radius pixels out carry no weight.
func complexKernel(radius float64, samples int, scale, a, b float64) []complex128 {
	kernel := make([]complex128, 2*samples+1)

	for i := -samples; i <= samples; i++ {
		ax := float64(i) * scale / radius
		ax2 := ax * ax
		amp := math.Exp(-a * ax2)
		kernel[i+samples] = complex(amp*math.Cos(b*ax2), amp*math.Sin(b*ax2))
	}

	return kernel
}

// familyEnergy computes the weighted self/cross energy of a kernel family:
// the double sum over all tap pairs of every component, weighted by the
// component's real and imaginary fold weights. A family whose energy is 1
// preserves image brightness when its components are summed.
func familyEnergy(table *ParamTable, kernels [][]complex128) float64 {
	s := 0.0
	for n, k := range kernels {
		c := table.Component(n)
		for _, ki := range k {
			for _, kj := range k {
				s += c.Real*(real(ki)*real(kj)-imag(ki)*imag(kj)) +
					c.Imag*(real(ki)*imag(kj)+imag(ki)*real(kj))
			}
		}
	}
	return s
}

// KernelComponents builds the normalized 1-D complex kernels for every
// component of table, discretized to one tap per pixel over 2*samples+1
// taps. Normalization is joint: all components are rescaled by a single
// factor so the family energy is exactly 1, which keeps overall image
// brightness unchanged when the blurred components are recombined.
//
// Returns ErrParamTable if the table is empty, has a degenerate scale, or
// its energy is non-finite or not positive. Most callers want Blur instead;
// this is exported for tools that inspect or plot the kernels themselves.
func KernelComponents(table *ParamTable, radius float64, samples int) ([][]complex128, error) {
	if table.Components() == 0 {
		return nil, fmt.Errorf("%w: table has no components", ErrParamTable)
	}
	if !(table.Scale() > 0) || math.IsInf(table.Scale(), 1) {
		return nil, fmt.Errorf("%w: support scale %v, want positive and finite", ErrParamTable, table.Scale())
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("%w: radius %v, want positive and finite", ErrDimensions, radius)
	}
	if samples < 1 {
		return nil, fmt.Errorf("%w: sample count %d, want at least 1", ErrDimensions, samples)
	}

	kernels := make([][]complex128, table.Components())
	for n := range kernels {
		c := table.Component(n)
		kernels[n] = complexKernel(radius, samples, table.Scale(), c.A, c.B)
	}

	s := familyEnergy(table, kernels)
	if !(s > 0) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("%w: family energy %v, want positive and finite", ErrParamTable, s)
	}

	norm := complex(1/math.Sqrt(s), 0)
	for _, k := range kernels {
		for i := range k {
			k[i] *= norm
		}
	}

	// Brightness preservation hinges on this; a violation means the table
	// itself is inconsistent, not a tolerable rounding artifact.
	if s = familyEnergy(table, kernels); math.Abs(s-1) > 1e-9 {
		return nil, fmt.Errorf("%w: normalized family energy %v, want 1", ErrParamTable, s)
	}

	return kernels, nil
}
