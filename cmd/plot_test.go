package cmd

import (
	"bytes"
	"errors"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/delaunayplot/InputParameters"
	"github.com/notargets/delaunayplot/mesh"
	"github.com/notargets/delaunayplot/plot"
	"github.com/notargets/delaunayplot/utils"
)

const (
	pointsFile = "3\n0 0\n4 0\n0 3\n"
	meshFile   = "3 1\n0 0 0\n4 0 0\n0 3 0\n0 1 2 -1 -1 -1\n"
)

// writeInputs lays out the files the triangulation programs leave behind
func writeInputs(t *testing.T) (dir string, fp *InputParameters.FigureParameters) {
	t.Helper()
	dir = t.TempDir()
	write := func(name, content string) string {
		fileName := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fileName, []byte(content), 0644))
		return fileName
	}
	fp = InputParameters.NewFigureParameters()
	fp.PointsFile = write("delaunay.in", pointsFile)
	for i := range fp.Panels {
		fp.Panels[i].MeshFile = write(filepath.Base(fp.Panels[i].MeshFile), meshFile)
	}
	return
}

func quietOptions() *PlotOptions {
	return &PlotOptions{Log: log.New(&bytes.Buffer{}, "", 0)}
}

func TestBuildFigure(t *testing.T) {
	_, fp := writeInputs(t)
	fig, err := BuildFigure(fp, quietOptions())
	require.NoError(t, err)

	titles := []string{"Initial Points", "Flip Algorithm", "Bowyer-Watson Algorithm", "Online Algorithm"}
	for slot, title := range titles {
		p := fig.Panel(slot + 1)
		require.NotNil(t, p, "slot %d", slot+1)
		assert.Equal(t, title, p.Title)
		assert.NoError(t, p.Err)
	}
	assert.Len(t, fig.Panel(1).Labels, 3)

	rec := &plot.Recorder{}
	require.NoError(t, fig.Draw(rec))
	assert.Len(t, rec.Filter(plot.OpMarkers, utils.GetColor(utils.Red)), 4)
	assert.Len(t, rec.Filter(plot.OpPolyline, utils.GetColor(utils.Blue)), 3)
	assert.Empty(t, rec.Filter(plot.OpPolyline, utils.GetColor(utils.Red)))
}

func TestBuildFigureBadPanel(t *testing.T) {
	dir, fp := writeInputs(t)
	fp.Panels[1].MeshFile = filepath.Join(dir, "missing.out")

	_, err := BuildFigure(fp, quietOptions())
	var fe *mesh.FormatError
	require.True(t, errors.As(err, &fe), "missing files stop the run by default")

	opts := quietOptions()
	opts.SkipBadPanels = true
	fig, err := BuildFigure(fp, opts)
	require.NoError(t, err)
	require.NotNil(t, fig.Panel(3))
	assert.Error(t, fig.Panel(3).Err)
	assert.Equal(t, "Bowyer-Watson Algorithm", fig.Panel(3).Title)
	assert.NoError(t, fig.Panel(4).Err)
}

func TestRunPlotToPNG(t *testing.T) {
	dir, fp := writeInputs(t)
	opts := quietOptions()
	opts.OutputFile = filepath.Join(dir, "comparison.png")
	require.NoError(t, RunPlot(fp, opts))

	file, err := os.Open(opts.OutputFile)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, fp.Width, img.Bounds().Dx())
	assert.Equal(t, fp.Height, img.Bounds().Dy())
}

func TestProcessFigureInput(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	figureFile := filepath.Join(dir, "figure.yaml")
	require.NoError(t, os.WriteFile(figureFile, []byte(`
Title: From file
Panels:
  - MeshFile: a.out
  - MeshFile: b.out
Padding: 7
`), 0644))

	viper.Reset()
	viper.Set("figure", figureFile)
	viper.Set("bowyerwatson", "override.out")
	viper.Set("adjacency", true)
	fp, err := processFigureInput()
	require.NoError(t, err)
	assert.Equal(t, "From file", fp.Title)
	assert.Equal(t, "a.out", fp.Panels[0].MeshFile)
	assert.Equal(t, "override.out", fp.Panels[1].MeshFile)
	assert.True(t, fp.ShowAdjacency)
	assert.Equal(t, 7., fp.Padding)

	// Only two panels in the file, so there is nothing for --online to replace
	viper.Set("online", "c.out")
	_, err = processFigureInput()
	assert.Error(t, err)

	viper.Reset()
	fp, err = processFigureInput()
	require.NoError(t, err)
	assert.Equal(t, InputParameters.NewFigureParameters(), fp)
}
