package bokeh

import (
	"math/rand"
	"testing"
)

// sequentialAccumulate is the single-goroutine reference: same per-component
// work, same index-order fold, no pool.
func sequentialAccumulate(input []complexPixel, w, h int, table *ParamTable, kernels [][]complex128) [][4]float64 {
	out := make([][4]float64, w*h)
	for n, k := range kernels {
		r := applyComponent(input, w, h, k, table.Component(n))
		for p := range out {
			for c := range out[p] {
				out[p][c] += r[p][c]
			}
		}
	}
	return out
}

func randomComplexImage(w, h int, rng *rand.Rand) []complexPixel {
	img := make([]complexPixel, w*h)
	for p := range img {
		for c := range img[p] {
			img[p][c] = complex(rng.Float64()*255, 0)
		}
	}
	return img
}

func TestAccumulateMatchesSequential(t *testing.T) {
	// The parallel fan-out must be invisible: identical per-component
	// buffers folded in identical index order give bit-identical output.
	rng := rand.New(rand.NewSource(1))
	const w, h = 13, 7

	input := randomComplexImage(w, h, rng)

	kernels, err := KernelComponents(Kernel4, 2.5, 3)
	if err != nil {
		t.Fatal(err)
	}

	got := accumulate(input, w, h, Kernel4, kernels)
	want := sequentialAccumulate(input, w, h, Kernel4, kernels)

	for p := range want {
		if got[p] != want[p] {
			t.Fatalf("pixel %d = %v, want %v", p, got[p], want[p])
		}
	}
}

func TestAccumulateSingleComponent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const w, h = 9, 9

	input := randomComplexImage(w, h, rng)

	kernels, err := KernelComponents(Kernel1, 1.5, 2)
	if err != nil {
		t.Fatal(err)
	}

	got := accumulate(input, w, h, Kernel1, kernels)
	want := applyComponent(input, w, h, kernels[0], Kernel1.Component(0))

	for p := range want {
		if got[p] != want[p] {
			t.Fatalf("pixel %d = %v, want %v", p, got[p], want[p])
		}
	}
}
