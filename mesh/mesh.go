package mesh

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/delaunayplot/types"
)

// Mesh is a triangulation read back from a triangulation program's output file
type Mesh struct {
	Name string // Source file, used in diagnostics

	// Geometry
	Points []types.Point // Vertex id is the index

	// Element data
	Triangles []types.Triangle // Triangle id is the index
	Neighbors [][3]int         // Raw neighbor fields per triangle, NoNeighbor on boundary edges

	// Connectivity, one pair per neighbor field that is not NoNeighbor
	Adjacency []types.AdjacencyPair
}

// MaxPrealloc bounds the capacity reserved up front from a declared count, larger meshes grow by append
const MaxPrealloc = 1 << 16

// NewMesh allocates a mesh with room for the given counts, up to MaxPrealloc records each
func NewMesh(name string, nPoints, nTriangles int) *Mesh {
	nPoints, nTriangles = min(max(nPoints, 0), MaxPrealloc), min(max(nTriangles, 0), MaxPrealloc)
	return &Mesh{
		Name:      name,
		Points:    make([]types.Point, 0, nPoints),
		Triangles: make([]types.Triangle, 0, nTriangles),
		Neighbors: make([][3]int, 0, nTriangles),
		Adjacency: make([]types.AdjacencyPair, 0, 3*nTriangles),
	}
}

func (m *Mesh) NumPoints() int    { return len(m.Points) }
func (m *Mesh) NumTriangles() int { return len(m.Triangles) }

// AddTriangle appends a triangle and records an adjacency pair for every neighbor field that is not NoNeighbor.
// Pairs are never deduplicated.
func (m *Mesh) AddTriangle(tri types.Triangle, neighbors [3]int) (k int) {
	k = len(m.Triangles)
	m.Triangles = append(m.Triangles, tri)
	m.Neighbors = append(m.Neighbors, neighbors)
	for _, n := range neighbors {
		if n == types.NoNeighbor {
			continue
		}
		m.Adjacency = append(m.Adjacency, types.AdjacencyPair{k, n})
	}
	return
}

// Validate checks every vertex and neighbor index against the point and triangle counts
func (m *Mesh) Validate() error {
	var (
		Np, K = len(m.Points), len(m.Triangles)
	)
	for k, tri := range m.Triangles {
		for _, v := range tri {
			if v < 0 || v >= Np {
				return &GeometryError{
					Name: m.Name,
					Msg:  fmt.Sprintf("triangle %d: vertex index %d out of range [0,%d)", k, v, Np),
				}
			}
		}
	}
	for _, pair := range m.Adjacency {
		if pair[1] < 0 || pair[1] >= K {
			return &GeometryError{
				Name: m.Name,
				Msg:  fmt.Sprintf("triangle %d: neighbor index %d out of range [0,%d)", pair[0], pair[1], K),
			}
		}
	}
	return nil
}

// Loop returns the closed polyline p1 -> p2 -> p3 -> p1 of triangle k in the XY plane
func (m *Mesh) Loop(k int) (loop []r2.Vec) {
	tri := m.Triangles[k]
	loop = make([]r2.Vec, 4)
	for i := 0; i < 4; i++ {
		loop[i] = m.Points[tri[i%3]].XY()
	}
	return
}

func (m *Mesh) Centroid(k int) r2.Vec {
	tri := m.Triangles[k]
	sum := r2.Add(r2.Add(m.Points[tri[0]].XY(), m.Points[tri[1]].XY()), m.Points[tri[2]].XY())
	return r2.Scale(1./3., sum)
}

// XY returns the X and Y coordinates of all points as separate slices
func (m *Mesh) XY() (X, Y []float64) {
	return SplitXY(m.Points)
}

/*
AdjacencyMatrix counts the adjacency declarations in a K x K sparse matrix, entry (i,j) is the number of times triangle
i names triangle j. Returns nil for a mesh without triangles.
*/
func (m *Mesh) AdjacencyMatrix() (A *sparse.DOK) {
	var (
		K = len(m.Triangles)
	)
	if K == 0 {
		return nil
	}
	A = sparse.NewDOK(K, K)
	for _, pair := range m.Adjacency {
		A.Set(pair[0], pair[1], A.At(pair[0], pair[1])+1)
	}
	return
}

func SplitXY(points []types.Point) (X, Y []float64) {
	X, Y = make([]float64, len(points)), make([]float64, len(points))
	for i, p := range points {
		X[i], Y[i] = p.X, p.Y
	}
	return
}
