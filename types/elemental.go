package types

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// NoNeighbor marks a triangle edge that lies on the mesh boundary
const NoNeighbor = -1

// Point is a mesh vertex, Z is carried along but never plotted
type Point struct {
	X, Y, Z float64
}

func (p Point) XY() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Triangle holds three indices into the owning mesh's point list
type Triangle [3]int

/*
AdjacencyPair records that triangle [0] names triangle [1] as a neighbor. The pair is directed, when both triangles
name each other two pairs are stored.
*/
type AdjacencyPair [2]int

// Unordered returns the pair with the lower triangle id first, so both directions of a shared edge compare equal
func (ap AdjacencyPair) Unordered() AdjacencyPair {
	if ap[1] < ap[0] {
		return AdjacencyPair{ap[1], ap[0]}
	}
	return ap
}
