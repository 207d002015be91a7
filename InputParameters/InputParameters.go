package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"
)

// Grid geometry of the comparison figure, slot 1 holds the raw points
const (
	FigureRows = 2
	FigureCols = 2
	MaxPanels  = FigureRows*FigureCols - 1
)

type PanelParameters struct {
	Title    string `json:"Title"`
	MeshFile string `json:"MeshFile"`
}

// Parameters obtained from the YAML figure file
type FigureParameters struct {
	Title         string            `json:"Title"`
	PointsFile    string            `json:"PointsFile"`
	Panels        []PanelParameters `json:"Panels"`
	ShowAdjacency bool              `json:"ShowAdjacency"`
	Padding       float64           `json:"Padding"`
	Width         int               `json:"Width"`
	Height        int               `json:"Height"`
}

func NewFigureParameters() (fp *FigureParameters) {
	fp = &FigureParameters{}
	fp.SetDefaults()
	return
}

func DefaultPanels() []PanelParameters {
	return []PanelParameters{
		{Title: "Flip Algorithm", MeshFile: "data/delaunay_flip.out"},
		{Title: "Bowyer-Watson Algorithm", MeshFile: "data/delaunay_bowyerwatson.out"},
		{Title: "Online Algorithm", MeshFile: "data/delaunay_online.out"},
	}
}

// SetDefaults fills every unset field, panels are defaulted one field at a time
func (fp *FigureParameters) SetDefaults() {
	if fp.PointsFile == "" {
		fp.PointsFile = "data/delaunay.in"
	}
	defaults := DefaultPanels()
	if len(fp.Panels) == 0 {
		fp.Panels = defaults
	}
	for i := range fp.Panels {
		if i >= len(defaults) {
			break
		}
		if fp.Panels[i].Title == "" {
			fp.Panels[i].Title = defaults[i].Title
		}
		if fp.Panels[i].MeshFile == "" {
			fp.Panels[i].MeshFile = defaults[i].MeshFile
		}
	}
	if fp.Padding == 0 {
		fp.Padding = 20
	}
	if fp.Width == 0 {
		fp.Width = 1100
	}
	if fp.Height == 0 {
		fp.Height = 700
	}
}

func (fp *FigureParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, fp); err != nil {
		return
	}
	fp.SetDefaults()
	return fp.Validate()
}

func (fp *FigureParameters) Validate() error {
	if len(fp.Panels) > MaxPanels {
		return fmt.Errorf("figure has room for %d mesh panels, %d given", MaxPanels, len(fp.Panels))
	}
	for i, panel := range fp.Panels {
		if panel.MeshFile == "" {
			return fmt.Errorf("panel %d has no MeshFile", i+1)
		}
	}
	if fp.Padding < 0 {
		return fmt.Errorf("padding must not be negative, have %g", fp.Padding)
	}
	if fp.Width <= 0 || fp.Height <= 0 {
		return fmt.Errorf("figure size must be positive, have %dx%d", fp.Width, fp.Height)
	}
	return nil
}

func (fp *FigureParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", fp.Title)
	fmt.Fprintf(w, "[%s]\t= Points File\n", fp.PointsFile)
	for i, panel := range fp.Panels {
		fmt.Fprintf(w, "Panels[%d] = \"%s\" [%s]\n", i+2, panel.Title, panel.MeshFile)
	}
	fmt.Fprintf(w, "%v\t\t\t= Show Adjacency\n", fp.ShowAdjacency)
	fmt.Fprintf(w, "%8.5f\t\t= Padding\n", fp.Padding)
	fmt.Fprintf(w, "[%dx%d]\t\t= Figure Size\n", fp.Width, fp.Height)
}
