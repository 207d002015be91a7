package plot

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/delaunayplot/mesh"
)

type SeriesKind uint8

const (
	MarkerSeries SeriesKind = iota
	LineSeries
)

// Series is one group of markers or one polyline, in the panel's data coordinates
type Series struct {
	Name   string
	Kind   SeriesKind
	Points []r2.Vec
	Color  color.RGBA
	Width  float64 // Line width or marker radius, in pixels
}

type Label struct {
	At    r2.Vec
	Text  string
	Color color.RGBA
}

// Panel holds the drawing commands of one grid slot, it is filled once and never updated
type Panel struct {
	Slot   int
	Title  string
	Box    mesh.BoundingBox
	Series []Series
	Labels []Label
	Err    error // Set when the panel could not be rendered
}

func (p *Panel) addMarkers(name string, pts []r2.Vec, col color.RGBA, radius float64) {
	p.Series = append(p.Series, Series{Name: name, Kind: MarkerSeries, Points: pts, Color: col, Width: radius})
}

func (p *Panel) addLine(name string, pts []r2.Vec, col color.RGBA, width float64) {
	p.Series = append(p.Series, Series{Name: name, Kind: LineSeries, Points: pts, Color: col, Width: width})
}

func (p *Panel) SeriesOf(kind SeriesKind, col color.RGBA) (series []Series) {
	for _, s := range p.Series {
		if s.Kind == kind && s.Color == col {
			series = append(series, s)
		}
	}
	return
}
