package bokeh

import (
	"runtime"

	"github.com/gogpu/bokeh/internal/parallel"
)

// accumulate runs the separable pass for every kernel component and reduces
// the complex results into one real 4-channel image.
//
// Components are independent: each reads the shared encoded input and the
// shared normalized kernels, and writes its own buffer. They fan out on a
// worker pool and are folded afterwards in index order, so the output is
// deterministic even though completion order is not. The fold itself is a
// commutative elementwise add over a zero accumulator, so ordering only
// matters up to floating-point rounding anyway.
func accumulate(input []complexPixel, w, h int, table *ParamTable, kernels [][]complex128) [][4]float64 {
	results := make([][][4]float64, len(kernels))

	workers := min(len(kernels), runtime.GOMAXPROCS(0))
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	work := make([]func(), len(kernels))
	for n := range kernels {
		n := n
		work[n] = func() {
			results[n] = applyComponent(input, w, h, kernels[n], table.Component(n))
		}
	}
	pool.ExecuteAll(work)

	out := results[0]
	for _, r := range results[1:] {
		for p := range out {
			for c := range out[p] {
				out[p][c] += r[p][c]
			}
		}
	}

	return out
}

// applyComponent blurs input with one component's kernel (horizontal then
// vertical pass) and folds the complex response into a real image using the
// component's weights.
func applyComponent(input []complexPixel, w, h int, kernel []complex128, comp Component) [][4]float64 {
	filtered := verticalFilter(horizontalFilter(input, kernel, w, h), kernel, w, h)

	out := make([][4]float64, len(filtered))
	for p, px := range filtered {
		for c, v := range px {
			out[p][c] = comp.Real*real(v) + comp.Imag*imag(v)
		}
	}

	return out
}
