package plot

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

/*
Surface is a drawing target for a Figure. All coordinates are figure coordinates, [0,1] x [0,1] with y pointing up,
widths and radii are in pixels.
*/
type Surface interface {
	Polyline(pts []r2.Vec, col color.RGBA, width float64)
	Markers(pts []r2.Vec, col color.RGBA, radius float64)
	Text(at r2.Vec, text string, col color.RGBA, align Align)
}

type Op uint8

const (
	OpPolyline Op = iota
	OpMarkers
	OpText
)

type Call struct {
	Op     Op
	Points []r2.Vec
	Color  color.RGBA
	Width  float64 // Line width or marker radius
	Text   string
}

// Recorder is a Surface that keeps every call, for tests and headless inspection
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Polyline(pts []r2.Vec, col color.RGBA, width float64) {
	r.Calls = append(r.Calls, Call{Op: OpPolyline, Points: copyPoints(pts), Color: col, Width: width})
}

func (r *Recorder) Markers(pts []r2.Vec, col color.RGBA, radius float64) {
	r.Calls = append(r.Calls, Call{Op: OpMarkers, Points: copyPoints(pts), Color: col, Width: radius})
}

func (r *Recorder) Text(at r2.Vec, text string, col color.RGBA, align Align) {
	r.Calls = append(r.Calls, Call{Op: OpText, Points: []r2.Vec{at}, Color: col, Text: text})
}

// Filter returns the recorded calls of one kind drawn in one color
func (r *Recorder) Filter(op Op, col color.RGBA) (calls []Call) {
	for _, c := range r.Calls {
		if c.Op == op && c.Color == col {
			calls = append(calls, c)
		}
	}
	return
}

func copyPoints(pts []r2.Vec) []r2.Vec {
	return append([]r2.Vec(nil), pts...)
}
