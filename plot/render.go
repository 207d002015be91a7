package plot

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/delaunayplot/mesh"
	"github.com/notargets/delaunayplot/types"
	"github.com/notargets/delaunayplot/utils"
)

const (
	MarkerRadius       = 3.5 // pixels
	TriangleLineWidth  = 2.
	AdjacencyLineWidth = 2.
	LabelOffset        = 3. // data units above the labeled point
)

/*
RenderMesh draws m into slot: points as red filled circles, every triangle as a closed blue polyline, and the
adjacency overlay when the figure has it enabled. The axes are fitted to the points with the figure's padding.
*/
func RenderMesh(fig *Figure, m *mesh.Mesh, slot int, title string) (err error) {
	var (
		box mesh.BoundingBox
		p   *Panel
	)
	if err = m.Validate(); err != nil {
		return
	}
	if box, err = m.Bounds(fig.Padding); err != nil {
		return
	}
	if p, err = fig.newPanel(slot, title, box); err != nil {
		return
	}
	p.addMarkers("Points", xy(m.Points), utils.GetColor(utils.Red), MarkerRadius)
	for k := range m.Triangles {
		p.addLine(fmt.Sprintf("Triangle %d", k), m.Loop(k), utils.GetColor(utils.Blue), TriangleLineWidth)
	}
	for _, pair := range m.Adjacency {
		drawAdjacency(fig, p, m, pair)
	}
	return
}

// drawAdjacency joins the centroids of the two triangles in pair
func drawAdjacency(fig *Figure, p *Panel, m *mesh.Mesh, pair types.AdjacencyPair) {
	if !fig.ShowAdjacency {
		return
	}
	p.addLine(fmt.Sprintf("Adjacency %d-%d", pair[0], pair[1]),
		[]r2.Vec{m.Centroid(pair[0]), m.Centroid(pair[1])},
		utils.GetColor(utils.Red), AdjacencyLineWidth)
}

// RenderPoints draws a raw point set into slot, each point labeled with its index
func RenderPoints(fig *Figure, points []types.Point, slot int, title string) (err error) {
	var (
		box mesh.BoundingBox
		p   *Panel
	)
	if box, err = mesh.Bounds(points, fig.Padding); err != nil {
		return
	}
	if p, err = fig.newPanel(slot, title, box); err != nil {
		return
	}
	p.addMarkers("Points", xy(points), utils.GetColor(utils.Red), MarkerRadius)
	for i, pt := range points {
		p.Labels = append(p.Labels, Label{
			At:    r2.Vec{X: pt.X, Y: pt.Y + LabelOffset},
			Text:  strconv.Itoa(i),
			Color: utils.GetColor(utils.Black),
		})
	}
	return
}

func xy(points []types.Point) (pts []r2.Vec) {
	pts = make([]r2.Vec, len(points))
	for i, p := range points {
		pts[i] = p.XY()
	}
	return
}
