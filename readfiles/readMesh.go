package readfiles

import (
	"fmt"
	"io"
	"os"

	"github.com/notargets/delaunayplot/mesh"
	"github.com/notargets/delaunayplot/types"
)

/*
ReadMesh reads the output of a triangulation program:

	<pointCount> <triangleCount>
	<x> <y> <z>                        x pointCount
	<p1> <p2> <p3> <n1> <n2> <n3>      x triangleCount, n == -1 for a boundary edge
*/
func ReadMesh(filename string, verbose bool) (m *mesh.Mesh, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading mesh file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		return nil, &mesh.FormatError{Name: filename, Msg: "unable to open file", Err: err}
	}
	defer file.Close()
	if m, err = ParseMesh(file, filename); err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Read %d points, %d triangles, %d adjacency pairs\n",
			m.NumPoints(), m.NumTriangles(), len(m.Adjacency))
	}
	return
}

// ParseMesh reads a mesh in a single pass, then checks every vertex and neighbor index
func ParseMesh(r io.Reader, name string) (m *mesh.Mesh, err error) {
	var (
		lr     = newLineReader(r, name)
		counts = make([]int, 2)
		fields []string
		coords = make([]float64, 3)
		idx    = make([]int, 6)
	)
	if err = lr.readCount("header", counts); err != nil {
		return
	}
	Np, K := counts[0], counts[1]
	m = mesh.NewMesh(name, Np, K)
	for range Np {
		if fields, err = lr.getFields("point", 3); err != nil {
			return nil, err
		}
		if err = lr.parseFloats("point", fields, coords); err != nil {
			return nil, err
		}
		m.Points = append(m.Points, types.Point{X: coords[0], Y: coords[1], Z: coords[2]})
	}
	for range K {
		if fields, err = lr.getFields("triangle", 6); err != nil {
			return nil, err
		}
		if err = lr.parseInts("triangle", fields, idx); err != nil {
			return nil, err
		}
		m.AddTriangle(types.Triangle{idx[0], idx[1], idx[2]}, [3]int{idx[3], idx[4], idx[5]})
	}
	if err = lr.expectEnd("triangle"); err != nil {
		return nil, err
	}
	// Neighbor ids may point forward, so they are only checked once all triangles are known
	if err = m.Validate(); err != nil {
		return nil, err
	}
	return
}
