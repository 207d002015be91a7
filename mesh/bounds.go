package mesh

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/delaunayplot/types"
)

// DefaultPadding is the margin added on every side of a plotted point set, in input units
const DefaultPadding = 20.

type BoundingBox struct {
	Min, Max r2.Vec
}

func (bb BoundingBox) Width() float64  { return bb.Max.X - bb.Min.X }
func (bb BoundingBox) Height() float64 { return bb.Max.Y - bb.Min.Y }

// Bounds returns [min(x)-padding, max(x)+padding] x [min(y)-padding, max(y)+padding]
func Bounds(points []types.Point, padding float64) (bb BoundingBox, err error) {
	if len(points) == 0 {
		err = &GeometryError{Msg: "unable to compute bounds of an empty point set"}
		return
	}
	X, Y := SplitXY(points)
	bb.Min = r2.Vec{X: floats.Min(X) - padding, Y: floats.Min(Y) - padding}
	bb.Max = r2.Vec{X: floats.Max(X) + padding, Y: floats.Max(Y) + padding}
	return
}

func (m *Mesh) Bounds(padding float64) (bb BoundingBox, err error) {
	if bb, err = Bounds(m.Points, padding); err != nil {
		err.(*GeometryError).Name = m.Name
	}
	return
}
