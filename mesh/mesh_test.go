package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/delaunayplot/types"
)

func rightTriangle() *Mesh {
	m := NewMesh("right", 3, 1)
	m.Points = append(m.Points,
		types.Point{X: 0, Y: 0}, types.Point{X: 4, Y: 0}, types.Point{X: 0, Y: 3})
	m.AddTriangle(types.Triangle{0, 1, 2}, [3]int{-1, -1, -1})
	return m
}

// Two triangles sharing edge 1-2 of a unit square, each naming the other
func square() *Mesh {
	m := NewMesh("square", 4, 2)
	m.Points = append(m.Points,
		types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0},
		types.Point{X: 0, Y: 1}, types.Point{X: 1, Y: 1})
	m.AddTriangle(types.Triangle{0, 1, 2}, [3]int{-1, 1, -1})
	m.AddTriangle(types.Triangle{1, 3, 2}, [3]int{-1, -1, 0})
	return m
}

func TestNewMeshCapacity(t *testing.T) {
	m := NewMesh("huge", 100000000000, 100000000000)
	assert.Equal(t, MaxPrealloc, cap(m.Points))
	assert.Equal(t, MaxPrealloc, cap(m.Triangles))
	assert.Equal(t, 3*MaxPrealloc, cap(m.Adjacency))
	assert.Zero(t, m.NumPoints())

	m = NewMesh("negative", -1, 2)
	assert.Zero(t, cap(m.Points))
	assert.Equal(t, 2, cap(m.Neighbors))
}

func TestAddTriangle(t *testing.T) {
	m := rightTriangle()
	assert.Equal(t, 1, m.NumTriangles())
	assert.Empty(t, m.Adjacency, "sentinel neighbors must not produce pairs")

	m = square()
	require.Len(t, m.Adjacency, 2, "mutual neighbors are stored once from each side")
	assert.Equal(t, types.AdjacencyPair{0, 1}, m.Adjacency[0])
	assert.Equal(t, types.AdjacencyPair{1, 0}, m.Adjacency[1])
}

func TestValidate(t *testing.T) {
	assert.NoError(t, square().Validate())

	m := rightTriangle()
	m.Triangles[0][2] = 3
	err := m.Validate()
	var ge *GeometryError
	require.True(t, errors.As(err, &ge))
	assert.Contains(t, err.Error(), "vertex index 3 out of range")

	m = rightTriangle()
	m.AddTriangle(types.Triangle{0, 1, 2}, [3]int{5, -1, -1})
	err = m.Validate()
	require.True(t, errors.As(err, &ge))
	assert.Contains(t, err.Error(), "neighbor index 5")
}

func TestBounds(t *testing.T) {
	bb, err := rightTriangle().Bounds(DefaultPadding)
	require.NoError(t, err)
	assert.Equal(t, -20., bb.Min.X)
	assert.Equal(t, 24., bb.Max.X)
	assert.Equal(t, -20., bb.Min.Y)
	assert.Equal(t, 23., bb.Max.Y)
	assert.Equal(t, 44., bb.Width())
	assert.Equal(t, 43., bb.Height())

	_, err = NewMesh("empty", 0, 0).Bounds(DefaultPadding)
	var ge *GeometryError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "empty", ge.Name)
}

func TestLoopAndCentroid(t *testing.T) {
	m := rightTriangle()
	loop := m.Loop(0)
	require.Len(t, loop, 4)
	assert.Equal(t, loop[0], loop[3])
	assert.Equal(t, 4., loop[1].X)
	assert.Equal(t, 3., loop[2].Y)

	c := m.Centroid(0)
	assert.InDelta(t, 4./3., c.X, 1e-12)
	assert.InDelta(t, 1., c.Y, 1e-12)
}

func TestSummarize(t *testing.T) {
	s := Summarize(square())
	assert.Equal(t, 4, s.Points)
	assert.Equal(t, 2, s.Triangles)
	assert.Equal(t, 2, s.Pairs)
	assert.Equal(t, 4, s.BoundaryEdges)
	assert.Equal(t, 1, s.InteriorEdges)
	assert.Equal(t, 1, s.MutualPairs)
	assert.Equal(t, 0, s.OneSidedPairs)

	m := square()
	m.Neighbors[1] = [3]int{-1, -1, -1}
	m.Adjacency = m.Adjacency[:1]
	s = Summarize(m)
	assert.Equal(t, 0, s.MutualPairs)
	assert.Equal(t, 1, s.OneSidedPairs)
	assert.Equal(t, 5, s.BoundaryEdges)

	s = Summarize(NewMesh("empty", 0, 0))
	assert.Equal(t, Summary{}, s)
}

func TestFormatError(t *testing.T) {
	inner := errors.New("boom")
	err := &FormatError{Name: "a.out", Line: 3, Msg: "bad field", Err: inner}
	assert.Equal(t, "a.out:3: bad field: boom", err.Error())
	assert.True(t, errors.Is(err, inner))
	assert.Equal(t, "a.out: truncated", (&FormatError{Name: "a.out", Msg: "truncated"}).Error())
}
