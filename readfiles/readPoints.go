package readfiles

import (
	"fmt"
	"io"
	"os"

	"github.com/notargets/delaunayplot/mesh"
	"github.com/notargets/delaunayplot/types"
)

/*
ReadPoints reads the raw point set given to the triangulation programs:

	<N>
	<x> <y>    x N
*/
func ReadPoints(filename string, verbose bool) (points []types.Point, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading points file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		return nil, &mesh.FormatError{Name: filename, Msg: "unable to open file", Err: err}
	}
	defer file.Close()
	if points, err = ParsePoints(file, filename); err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Read %d points\n", len(points))
	}
	return
}

func ParsePoints(r io.Reader, name string) (points []types.Point, err error) {
	var (
		lr     = newLineReader(r, name)
		count  = make([]int, 1)
		fields []string
		coords = make([]float64, 2)
	)
	if err = lr.readCount("point count", count); err != nil {
		return
	}
	points = make([]types.Point, 0, min(count[0], mesh.MaxPrealloc))
	for range count[0] {
		if fields, err = lr.getFields("point", 2); err != nil {
			return nil, err
		}
		if err = lr.parseFloats("point", fields, coords); err != nil {
			return nil, err
		}
		points = append(points, types.Point{X: coords[0], Y: coords[1]})
	}
	if err = lr.expectEnd("point"); err != nil {
		return nil, err
	}
	return
}
