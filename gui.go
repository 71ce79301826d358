package main

import (
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// traceView holds the waveform normalized to the unit square plus event
// positions as fractions of the x range.
type traceView struct {
	points  []f32.Point
	markers []float32
}

func loadUI(trace [][]float64, rows []EventRow) {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("SOR Loss Viewer"))
		w.Option(app.Size(unit.Dp(900), unit.Dp(600)))

		if err := runViewer(w, newTraceView(trace, rows)); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func runViewer(w *app.Window, view *traceView) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			drawTrace(gtx, view)
			e.Frame(gtx.Ops)
		}
	}
}

func newTraceView(trace [][]float64, rows []EventRow) *traceView {
	view := &traceView{}
	if len(trace) == 0 {
		return view
	}

	minX, maxX := trace[0][0], trace[0][0]
	minY, maxY := trace[0][1], trace[0][1]
	for _, p := range trace {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	view.points = make([]f32.Point, len(trace))
	for i, p := range trace {
		view.points[i] = f32.Point{
			X: float32((p[0] - minX) / rangeX),
			Y: float32((p[1] - minY) / rangeY),
		}
	}

	for _, r := range rows {
		if r.DistanceM < minX || r.DistanceM > maxX {
			continue
		}
		view.markers = append(view.markers, float32((r.DistanceM-minX)/rangeX))
	}
	return view
}

func drawTrace(gtx layout.Context, view *traceView) layout.Dimensions {
	rect := image.Rect(100, 50, gtx.Constraints.Max.X-50, gtx.Constraints.Max.Y-50)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 230, G: 230, B: 230, A: 255}, clip.Rect(rect).Op())

	// Axes
	var axes clip.Path
	axes.Begin(gtx.Ops)
	axes.MoveTo(f32.Pt(float32(rect.Min.X), float32(rect.Min.Y)))
	axes.LineTo(f32.Pt(float32(rect.Min.X), float32(rect.Max.Y)))
	axes.LineTo(f32.Pt(float32(rect.Max.X), float32(rect.Max.Y)))
	paint.FillShape(gtx.Ops, color.NRGBA{A: 255}, clip.Stroke{
		Path:  axes.End(),
		Width: 2,
	}.Op())

	// Event markers as vertical lines behind the trace
	for _, frac := range view.markers {
		x := float32(rect.Min.X) + frac*float32(rect.Dx())
		var m clip.Path
		m.Begin(gtx.Ops)
		m.MoveTo(f32.Pt(x, float32(rect.Min.Y)))
		m.LineTo(f32.Pt(x, float32(rect.Max.Y)))
		paint.FillShape(gtx.Ops, color.NRGBA{B: 255, A: 120}, clip.Stroke{
			Path:  m.End(),
			Width: 1,
		}.Op())
	}

	// Waveform
	if len(view.points) > 1 {
		var path clip.Path
		path.Begin(gtx.Ops)

		scaled := scaleToRect(view.points, rect)
		path.MoveTo(scaled[0])
		for _, p := range scaled[1:] {
			path.LineTo(p)
		}

		paint.FillShape(gtx.Ops, color.NRGBA{R: 255, A: 255}, clip.Stroke{
			Path:  path.End(),
			Width: 2,
		}.Op())
	}

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func scaleToRect(points []f32.Point, rect image.Rectangle) []f32.Point {
	scaled := make([]f32.Point, len(points))
	for i, p := range points {
		scaled[i] = f32.Point{
			X: float32(rect.Min.X) + p.X*float32(rect.Dx()),
			Y: float32(rect.Max.Y) - p.Y*float32(rect.Dy()),
		}
	}
	return scaled
}
