package utils

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = color.RGBA{
			R: 255,
			G: 255,
			B: 255,
			A: 255,
		}
	case Blue:
		c = color.RGBA{
			R: 50,
			G: 0,
			B: 255,
			A: 255,
		}
	case Red:
		c = color.RGBA{
			R: 255,
			G: 0,
			B: 50,
			A: 255,
		}
	case Green:
		c = color.RGBA{
			R: 25,
			G: 255,
			B: 25,
			A: 255,
		}
	case Black:
		c = color.RGBA{
			R: 0,
			G: 0,
			B: 0,
			A: 255,
		}
	}
	return
}

// AddLine appends the segment (x1,y1)-(x2,y2) to a packed segment list
func AddLine(x1, y1, x2, y2 float64, lines []float32) []float32 {
	return append(lines,
		float32(x1), float32(y1),
		float32(x2), float32(y2),
	)
}

// AddPolyline appends one segment per consecutive pair of points
func AddPolyline(pts []r2.Vec, lines []float32) []float32 {
	for i := 1; i < len(pts); i++ {
		lines = AddLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, lines)
	}
	return lines
}

/*
AddCircle appends a closed polygon of nSides segments approximating an ellipse centered on c. The radii are separate
so a circle stays round when the x and y scales differ.
*/
func AddCircle(c r2.Vec, rx, ry float64, nSides int, lines []float32) []float32 {
	var (
		dTheta = 2 * math.Pi / float64(nSides)
	)
	for i := 0; i < nSides; i++ {
		t1, t2 := float64(i)*dTheta, float64(i+1)*dTheta
		lines = AddLine(
			c.X+rx*math.Cos(t1), c.Y+ry*math.Sin(t1),
			c.X+rx*math.Cos(t2), c.Y+ry*math.Sin(t2),
			lines)
	}
	return lines
}
