package mesh

import (
	"fmt"
	"io"

	"github.com/notargets/delaunayplot/types"
)

// Summary describes the connectivity declared in a mesh file. It does not check the triangulation itself.
type Summary struct {
	Points, Triangles int
	Pairs             int // Stored adjacency pairs
	BoundaryEdges     int // Neighbor fields set to NoNeighbor
	InteriorEdges     int // Distinct unordered triangle pairs
	MutualPairs       int // Unordered pairs declared from both sides
	OneSidedPairs     int // Unordered pairs declared from only one side
	SelfPairs         int // Triangles naming themselves
	RepeatedPairs     int // Extra declarations of an already declared directed pair
}

func Summarize(m *Mesh) (s Summary) {
	s.Points, s.Triangles = m.NumPoints(), m.NumTriangles()
	s.Pairs = len(m.Adjacency)
	for _, nbrs := range m.Neighbors {
		for _, n := range nbrs {
			if n == types.NoNeighbor {
				s.BoundaryEdges++
			}
		}
	}
	A := m.AdjacencyMatrix()
	if A == nil {
		return
	}
	unique := make(map[types.AdjacencyPair]struct{}, A.NNZ())
	A.DoNonZero(func(i, j int, v float64) {
		if v > 1 {
			s.RepeatedPairs += int(v) - 1
		}
		switch {
		case i == j:
			s.SelfPairs++
		case A.At(j, i) > 0:
			if i < j {
				s.MutualPairs++
			}
		default:
			s.OneSidedPairs++
		}
		if i != j {
			unique[types.AdjacencyPair{i, j}.Unordered()] = struct{}{}
		}
	})
	s.InteriorEdges = len(unique)
	return
}

func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "[%d]\t\t= Points\n", s.Points)
	fmt.Fprintf(w, "[%d]\t\t= Triangles\n", s.Triangles)
	fmt.Fprintf(w, "[%d]\t\t= Adjacency Pairs\n", s.Pairs)
	fmt.Fprintf(w, "[%d]\t\t= Boundary Edges\n", s.BoundaryEdges)
	fmt.Fprintf(w, "[%d]\t\t= Interior Edges\n", s.InteriorEdges)
	fmt.Fprintf(w, "[%d]\t\t= Mutual Pairs\n", s.MutualPairs)
	fmt.Fprintf(w, "[%d]\t\t= One Sided Pairs\n", s.OneSidedPairs)
	if s.SelfPairs > 0 {
		fmt.Fprintf(w, "[%d]\t\t= Self Pairs\n", s.SelfPairs)
	}
	if s.RepeatedPairs > 0 {
		fmt.Fprintf(w, "[%d]\t\t= Repeated Pairs\n", s.RepeatedPairs)
	}
}
