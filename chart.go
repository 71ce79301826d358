package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders the calibrated waveform as a self-contained HTML line
// chart for browser inspection.
func WriteChart(blocks *Blocks, factor float64, path string) error {
	trace := calibratedTrace(blocks, factor)
	if len(trace) == 0 {
		return fmt.Errorf("no DataPts samples")
	}

	xs := make([]string, len(trace))
	data := make([]opts.LineData, len(trace))
	for i, p := range trace {
		xs[i] = fmt.Sprintf("%.1f", p[0])
		data[i] = opts.LineData{Value: p[1]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "OTDR Trace"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Distance (m)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Level (dBm)"}),
	)
	line.SetXAxis(xs).AddSeries("trace", data)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := line.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
