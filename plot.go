package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// calibratedTrace returns the waveform samples with the distance factor
// applied, as (distance_m, level_dbm) pairs. Short/malformed pairs are
// skipped.
func calibratedTrace(blocks *Blocks, factor float64) [][]float64 {
	if blocks == nil || blocks.DataPts == nil {
		return nil
	}
	out := make([][]float64, 0, len(blocks.DataPts.DataPoints))
	for _, p := range blocks.DataPts.DataPoints {
		if len(p) < 2 {
			continue
		}
		out = append(out, []float64{p[0] * factor, p[1]})
	}
	return out
}

// PlotTrace writes the calibrated waveform to a PNG, with a scatter marker
// at each detected event. Returns an error when there is nothing to plot.
func PlotTrace(blocks *Blocks, rows []EventRow, factor float64, path string) error {
	trace := calibratedTrace(blocks, factor)
	if len(trace) == 0 {
		return fmt.Errorf("no DataPts samples")
	}

	pts := make(plotter.XYs, len(trace))
	for i, p := range trace {
		pts[i].X = p[0]
		pts[i].Y = p[1]
	}

	p := plot.New()
	p.Title.Text = "OTDR Trace"
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Level (dBm)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 255, A: 255}
	p.Add(line)

	if markers := eventMarkers(rows, pts); len(markers) > 0 {
		scatter, err := plotter.NewScatter(markers)
		if err != nil {
			return err
		}
		scatter.Color = color.RGBA{B: 255, A: 255}
		p.Add(scatter)
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// eventMarkers places one marker per event row at the nearest waveform
// sample, so the marker sits on the trace line.
func eventMarkers(rows []EventRow, pts plotter.XYs) plotter.XYs {
	if len(pts) == 0 {
		return nil
	}
	markers := make(plotter.XYs, 0, len(rows))
	for _, r := range rows {
		nearest := pts[0]
		best := abs(pts[0].X - r.DistanceM)
		for _, p := range pts[1:] {
			if d := abs(p.X - r.DistanceM); d < best {
				best = d
				nearest = p
			}
		}
		markers = append(markers, nearest)
	}
	return markers
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
