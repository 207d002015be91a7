package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/delaunayplot/utils"
)

// RasterSurface draws a figure into an in-memory RGBA image, no display needed
type RasterSurface struct {
	Width, Height int
	img           *image.RGBA
	gc            *draw2dimg.GraphicContext
	face          font.Face
}

func NewRasterSurface(width, height int) (rs *RasterSurface) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(utils.GetColor(utils.White)), image.Point{}, draw.Src)
	rs = &RasterSurface{
		Width:  width,
		Height: height,
		img:    img,
		gc:     draw2dimg.NewGraphicContext(img),
		face:   basicfont.Face7x13,
	}
	return
}

func (rs *RasterSurface) Image() *image.RGBA { return rs.img }

// ToPixel maps figure coordinates to image coordinates, the image y axis points down
func (rs *RasterSurface) ToPixel(v r2.Vec) (x, y float64) {
	return v.X * float64(rs.Width), (1. - v.Y) * float64(rs.Height)
}

func (rs *RasterSurface) Polyline(pts []r2.Vec, col color.RGBA, width float64) {
	if len(pts) < 2 {
		return
	}
	gc := rs.gc
	gc.SetStrokeColor(col)
	gc.SetLineWidth(width)
	gc.BeginPath()
	gc.MoveTo(rs.ToPixel(pts[0]))
	for _, v := range pts[1:] {
		gc.LineTo(rs.ToPixel(v))
	}
	gc.Stroke()
}

func (rs *RasterSurface) Markers(pts []r2.Vec, col color.RGBA, radius float64) {
	gc := rs.gc
	gc.SetFillColor(col)
	for _, v := range pts {
		x, y := rs.ToPixel(v)
		gc.BeginPath()
		draw2dkit.Circle(gc, x, y, radius)
		gc.Fill()
	}
}

func (rs *RasterSurface) Text(at r2.Vec, text string, col color.RGBA, align Align) {
	d := &font.Drawer{
		Dst:  rs.img,
		Src:  image.NewUniform(col),
		Face: rs.face,
	}
	x, y := rs.ToPixel(at)
	switch align {
	case AlignCenter:
		x -= float64(d.MeasureString(text).Round()) / 2
	case AlignRight:
		x -= float64(d.MeasureString(text).Round())
	}
	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
	d.DrawString(text)
}

func (rs *RasterSurface) SavePNG(fileName string) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(fileName); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(file, rs.img)
}
