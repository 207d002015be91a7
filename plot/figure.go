package plot

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/delaunayplot/mesh"
	"github.com/notargets/delaunayplot/utils"
)

const (
	titleBand = 0.06 // Share of the figure height above the grid when the figure has a title

	// Plot area insets, as shares of a cell
	insetLeft      = 0.10
	insetRight     = 0.03
	insetBottom    = 0.09
	insetTop       = 0.12
	panelTitleDrop = 0.07

	axisLabelGap = 0.008
	frameWidth   = 1.
)

/*
Figure is the drawing context shared by the render calls: a rows x cols grid of panels addressed by 1-based slot,
filled in row major order. Render calls add panels, Draw sends everything to a Surface.
*/
type Figure struct {
	Rows, Cols    int
	Title         string
	Padding       float64 // Margin around plotted points, in data units
	ShowAdjacency bool
	panels        map[int]*Panel
}

type FigureOption func(f *Figure)

func WithTitle(title string) FigureOption {
	return func(f *Figure) { f.Title = title }
}

func WithPadding(padding float64) FigureOption {
	return func(f *Figure) { f.Padding = padding }
}

// WithAdjacency turns on the triangle adjacency overlay, off by default
func WithAdjacency(show bool) FigureOption {
	return func(f *Figure) { f.ShowAdjacency = show }
}

func NewFigure(rows, cols int, opts ...FigureOption) (f *Figure) {
	f = &Figure{
		Rows:    rows,
		Cols:    cols,
		Padding: mesh.DefaultPadding,
		panels:  make(map[int]*Panel),
	}
	for _, opt := range opts {
		opt(f)
	}
	return
}

func (f *Figure) NumSlots() int { return f.Rows * f.Cols }

// Panel returns the panel in slot, nil if nothing was rendered there
func (f *Figure) Panel(slot int) *Panel { return f.panels[slot] }

func (f *Figure) checkSlot(slot int) error {
	if slot < 1 || slot > f.NumSlots() {
		return fmt.Errorf("panel slot %d out of range [1,%d]", slot, f.NumSlots())
	}
	if _, ok := f.panels[slot]; ok {
		return fmt.Errorf("panel slot %d already rendered", slot)
	}
	return nil
}

func (f *Figure) newPanel(slot int, title string, box mesh.BoundingBox) (p *Panel, err error) {
	if err = f.checkSlot(slot); err != nil {
		return
	}
	p = &Panel{Slot: slot, Title: title, Box: box}
	f.panels[slot] = p
	return
}

// SetFailed fills slot with an empty panel that shows title and the render error
func (f *Figure) SetFailed(slot int, title string, failure error) (err error) {
	if err = f.checkSlot(slot); err != nil {
		return
	}
	f.panels[slot] = &Panel{Slot: slot, Title: title, Err: failure}
	return
}

// Cell locates a slot in figure coordinates
type Cell struct {
	Slot, Row, Col int
	Min, Max       r2.Vec // Plot area
	TitleAt        r2.Vec
}

func (f *Figure) Cell(slot int) (c Cell, err error) {
	if slot < 1 || slot > f.NumSlots() {
		err = fmt.Errorf("panel slot %d out of range [1,%d]", slot, f.NumSlots())
		return
	}
	var (
		band         float64
		cellW, cellH float64
	)
	if f.Title != "" {
		band = titleBand
	}
	cellW, cellH = 1./float64(f.Cols), (1.-band)/float64(f.Rows)
	c.Slot = slot
	c.Row, c.Col = (slot-1)/f.Cols, (slot-1)%f.Cols
	x0 := float64(c.Col) * cellW
	yTop := 1. - band - float64(c.Row)*cellH
	c.Min = r2.Vec{X: x0 + insetLeft*cellW, Y: yTop - cellH + insetBottom*cellH}
	c.Max = r2.Vec{X: x0 + cellW - insetRight*cellW, Y: yTop - insetTop*cellH}
	c.TitleAt = r2.Vec{X: 0.5 * (c.Min.X + c.Max.X), Y: yTop - panelTitleDrop*cellH}
	return
}

// ToFigure maps a point in data coordinates inside box onto the cell's plot area
func (c Cell) ToFigure(box mesh.BoundingBox, v r2.Vec) r2.Vec {
	var (
		w, h = box.Width(), box.Height()
	)
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return r2.Vec{
		X: c.Min.X + (v.X-box.Min.X)/w*(c.Max.X-c.Min.X),
		Y: c.Min.Y + (v.Y-box.Min.Y)/h*(c.Max.Y-c.Min.Y),
	}
}

func (c Cell) frame() []r2.Vec {
	return []r2.Vec{
		c.Min, {X: c.Max.X, Y: c.Min.Y}, c.Max, {X: c.Min.X, Y: c.Max.Y}, c.Min,
	}
}

// Draw sends the figure title, then every rendered panel in slot order, to s
func (f *Figure) Draw(s Surface) (err error) {
	var (
		black = utils.GetColor(utils.Black)
		red   = utils.GetColor(utils.Red)
	)
	if len(f.panels) == 0 {
		return fmt.Errorf("figure has no panels to draw")
	}
	if f.Title != "" {
		s.Text(r2.Vec{X: 0.5, Y: 1. - 0.6*titleBand}, f.Title, black, AlignCenter)
	}
	for slot := 1; slot <= f.NumSlots(); slot++ {
		p, ok := f.panels[slot]
		if !ok {
			continue
		}
		var c Cell
		if c, err = f.Cell(slot); err != nil {
			return
		}
		s.Polyline(c.frame(), black, frameWidth)
		s.Text(c.TitleAt, p.Title, black, AlignCenter)
		if p.Err != nil {
			mid := r2.Vec{X: c.TitleAt.X, Y: 0.5 * (c.Min.Y + c.Max.Y)}
			s.Text(mid, p.Err.Error(), red, AlignCenter)
			continue
		}
		f.drawAxisLabels(s, c, p.Box)
		for _, series := range p.Series {
			pts := make([]r2.Vec, len(series.Points))
			for i, v := range series.Points {
				pts[i] = c.ToFigure(p.Box, v)
			}
			switch series.Kind {
			case MarkerSeries:
				s.Markers(pts, series.Color, series.Width)
			case LineSeries:
				s.Polyline(pts, series.Color, series.Width)
			}
		}
		for _, label := range p.Labels {
			s.Text(c.ToFigure(p.Box, label.At), label.Text, label.Color, AlignLeft)
		}
	}
	return
}

func (f *Figure) drawAxisLabels(s Surface, c Cell, box mesh.BoundingBox) {
	var (
		black = utils.GetColor(utils.Black)
		ff    = func(v float64) string { return strconv.FormatFloat(v, 'g', 5, 64) }
		below = c.Min.Y - 3*axisLabelGap
	)
	s.Text(r2.Vec{X: c.Min.X, Y: below}, ff(box.Min.X), black, AlignLeft)
	s.Text(r2.Vec{X: c.Max.X, Y: below}, ff(box.Max.X), black, AlignRight)
	s.Text(r2.Vec{X: c.Min.X - axisLabelGap, Y: c.Min.Y}, ff(box.Min.Y), black, AlignRight)
	s.Text(r2.Vec{X: c.Min.X - axisLabelGap, Y: c.Max.Y - 3*axisLabelGap}, ff(box.Max.Y), black, AlignRight)
}
