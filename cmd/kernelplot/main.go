// Command kernelplot renders the combined 1-D response of each preset
// kernel family, the curve a single row of pixels is effectively convolved
// with after all components are summed. Useful for eyeballing how the disc
// approximation sharpens as the component count grows.
//
// One PNG per family is written to the output directory; -csv additionally
// dumps the tap values for external tooling.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/bokeh"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	var (
		outDir   = flag.String("out", "plots", "output directory")
		radius   = flag.Float64("radius", 10.0, "kernel radius")
		samples  = flag.Int("samples", 12, "kernel taps per side of center")
		writeCSV = flag.Bool("csv", false, "also write tap values as CSV")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	presets := []*bokeh.ParamTable{
		bokeh.Kernel1, bokeh.Kernel2, bokeh.Kernel3,
		bokeh.Kernel4, bokeh.Kernel5, bokeh.Kernel6,
		bokeh.Kernel7, bokeh.Kernel8, bokeh.Kernel9,
	}

	for n, table := range presets {
		response, err := familyResponse(table, *radius, *samples)
		if err != nil {
			log.Fatalf("Kernel%d: %v", n+1, err)
		}

		name := fmt.Sprintf("kernel%d_r%g", n+1, *radius)
		if err := plotResponse(filepath.Join(*outDir, name+".png"), n+1, *radius, response); err != nil {
			log.Fatalf("Failed to plot %s: %v", name, err)
		}
		if *writeCSV {
			if err := saveCSV(filepath.Join(*outDir, name+".csv"), *samples, response); err != nil {
				log.Fatalf("Failed to write %s.csv: %v", name, err)
			}
		}
	}

	log.Printf("Wrote %d kernel plots to %s\n", len(presets), *outDir)
}

// familyResponse folds the normalized complex kernels of a family into the
// real per-tap response a blurred row actually sees.
func familyResponse(table *bokeh.ParamTable, radius float64, samples int) ([]float64, error) {
	kernels, err := bokeh.KernelComponents(table, radius, samples)
	if err != nil {
		return nil, err
	}

	response := make([]float64, 2*samples+1)
	tap := make([]float64, len(response))
	for n, k := range kernels {
		c := table.Component(n)
		for i, v := range k {
			tap[i] = c.Real*real(v) + c.Imag*imag(v)
		}
		floats.Add(response, tap)
	}
	return response, nil
}

func plotResponse(path string, components int, radius float64, response []float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d-component disc approximation (r=%g)", components, radius)
	p.X.Label.Text = "Offset, (px)"
	p.Y.Label.Text = "Weight"

	// One tap per pixel, centered on tap samples.
	half := len(response) / 2
	pts := make(plotter.XYs, len(response))
	for i, v := range response {
		pts[i].X = float64(i - half)
		pts[i].Y = v
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid(), line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func saveCSV(path string, samples int, response []float64) error {
	file, err := os.Create(path) //nolint:gosec // path derives from the -out flag
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for i, v := range response {
		record := []string{
			strconv.Itoa(i - samples),
			strconv.FormatFloat(v, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
