package chart

import (
	"context"
	"image/color"
	"os"
	"os/signal"
	"syscall"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/delaunayplot/plot"
	"github.com/notargets/delaunayplot/utils"
)

const (
	textPitch    = 14
	markerSides  = 12
	markerFill   = 3 // Concentric rings drawn per marker
	glyphAdvance = 0.6
)

/*
Surface draws a figure into an interactive avs chart window. The chart spans the figure coordinates directly.
Lines are drawn one pixel wide, the chart has no notion of line width.
*/
type Surface struct {
	Width, Height int
	chart         *chart2d.Chart2D
}

func NewSurface(width, height int) (cs *Surface) {
	cs = &Surface{
		Width:  width,
		Height: height,
		chart: chart2d.NewChart2D(0, 1, 0, 1,
			width, height, utils2.WHITE, utils2.BLACK),
	}
	return
}

// The chart background is dark, black strokes would vanish
func foreground(col color.RGBA) color.RGBA {
	if col == utils.GetColor(utils.Black) {
		return utils2.WHITE
	}
	return col
}

func (cs *Surface) Polyline(pts []r2.Vec, col color.RGBA, width float64) {
	if len(pts) < 2 {
		return
	}
	cs.chart.AddLine(utils.AddPolyline(pts, nil), foreground(col))
}

func (cs *Surface) Markers(pts []r2.Vec, col color.RGBA, radius float64) {
	var (
		lines  []float32
		rx, ry = radius / float64(cs.Width), radius / float64(cs.Height)
	)
	if len(pts) == 0 {
		return
	}
	for _, v := range pts {
		for ring := markerFill; ring > 0; ring-- {
			scale := float64(ring) / markerFill
			lines = utils.AddCircle(v, scale*rx, scale*ry, markerSides, lines)
		}
	}
	cs.chart.AddLine(lines, foreground(col))
}

func (cs *Surface) Text(at r2.Vec, text string, col color.RGBA, align plot.Align) {
	at.X -= alignOffset(text, cs.Width, align)
	tf := assets.NewTextFormatter("NotoSans", "Regular", textPitch,
		foreground(col), true, false)
	cs.chart.Printf(tf, float32(at.X), float32(at.Y), "%s", text)
}

// alignOffset estimates how far left of the anchor a string starts, in figure units
func alignOffset(text string, width int, align plot.Align) float64 {
	w := glyphAdvance * textPitch * float64(len(text)) / float64(width)
	switch align {
	case plot.AlignCenter:
		return w / 2
	case plot.AlignRight:
		return w
	}
	return 0
}

/*
Show keeps the process alive while the chart window is up and returns on an interrupt or terminate signal.
avs gives no notice when its window closes, the window's event loop just stops.
*/
func (cs *Surface) Show() {
	cs.ShowContext(context.Background())
}

// ShowContext is Show that also returns when ctx is done
func (cs *Surface) ShowContext(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}
