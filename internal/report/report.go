// Package report renders a harness radius sweep as charts: an interactive
// HTML page via go-echarts and a static PNG via gonum/plot.
package report

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/gridcover/internal/harness"
)

// seriesColors keeps PNG line colors stable across renders.
var seriesColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
	color.RGBA{R: 214, G: 39, B: 40, A: 255},
}

// WriteHTML renders the sweep as a self-contained HTML page with a timing
// chart (mean microseconds per engine) and a coverage chart (covered cells
// per radius).
func WriteHTML(w io.Writer, sw *harness.SweepResult) error {
	x := make([]string, len(sw.Radii))
	for i, r := range sw.Radii {
		x[i] = strconv.Itoa(r)
	}
	subtitle := fmt.Sprintf("board %s | %dx%d | %d seeds | %d runs per point | run %s",
		sw.Name, sw.Rows, sw.Cols, sw.Seeds, sw.Runs, sw.RunID)

	timing := charts.NewLine()
	timing.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Neighborhood Engine Sweep", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Engine Timings", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "radius"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "mean (µs)"}),
	)
	timing.SetXAxis(x)
	for _, series := range sw.Series {
		data := make([]opts.LineData, len(series.MeanNs))
		for i, ns := range series.MeanNs {
			data[i] = opts.LineData{Value: ns / 1e3}
		}
		timing.AddSeries(series.Method, data)
	}

	coverage := charts.NewLine()
	coverage.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Covered Cells", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "radius"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "cells"}),
	)
	counts := make([]opts.LineData, len(sw.Counts))
	for i, c := range sw.Counts {
		counts[i] = opts.LineData{Value: c}
	}
	coverage.SetXAxis(x).AddSeries("covered", counts)

	page := components.NewPage()
	page.AddCharts(timing, coverage)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("report: render html: %w", err)
	}
	return nil
}

// WritePNG saves the sweep's timing curves as a PNG at path.
func WritePNG(path string, sw *harness.SweepResult) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Engine timings: %s (%dx%d, %d seeds)",
		sw.Name, sw.Rows, sw.Cols, sw.Seeds)
	p.X.Label.Text = "radius"
	p.Y.Label.Text = "mean (µs)"

	for i, series := range sw.Series {
		pts := make(plotter.XYs, len(series.MeanNs))
		for j, ns := range series.MeanNs {
			pts[j] = plotter.XY{X: float64(sw.Radii[j]), Y: ns / 1e3}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("report: series %s: %w", series.Method, err)
		}
		line.Color = seriesColors[i%len(seriesColors)]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(series.Method, line)
	}
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save png: %w", err)
	}
	return nil
}
