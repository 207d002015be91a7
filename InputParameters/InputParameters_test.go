package InputParameters

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFigureParameters(t *testing.T) {
	{ // Defaults reproduce the comparison of the three triangulation programs
		fp := NewFigureParameters()
		assert.Equal(t, "data/delaunay.in", fp.PointsFile)
		require.Len(t, fp.Panels, 3)
		assert.Equal(t, "Flip Algorithm", fp.Panels[0].Title)
		assert.Equal(t, "data/delaunay_bowyerwatson.out", fp.Panels[1].MeshFile)
		assert.Equal(t, "Online Algorithm", fp.Panels[2].Title)
		assert.False(t, fp.ShowAdjacency)
		assert.Equal(t, 20., fp.Padding)
		assert.NoError(t, fp.Validate())
	}
	{
		fileInput := []byte(`
Title: Test Case
PointsFile: pts.in
Panels:
  - Title: Mine
    MeshFile: mine.out
  - MeshFile: other.out
ShowAdjacency: true
Padding: 5
`)
		fp := &FigureParameters{}
		require.NoError(t, fp.Parse(fileInput))
		assert.Equal(t, "Test Case", fp.Title)
		assert.Equal(t, "pts.in", fp.PointsFile)
		require.Len(t, fp.Panels, 2)
		assert.Equal(t, PanelParameters{Title: "Mine", MeshFile: "mine.out"}, fp.Panels[0])
		// Missing titles come from the default panel in the same position
		assert.Equal(t, "Bowyer-Watson Algorithm", fp.Panels[1].Title)
		assert.True(t, fp.ShowAdjacency)
		assert.Equal(t, 5., fp.Padding)
		assert.Equal(t, 1100, fp.Width)

		var buf bytes.Buffer
		fp.Print(&buf)
		assert.Contains(t, buf.String(), "Panels[3] = \"Bowyer-Watson Algorithm\" [other.out]")
	}
	{
		fp := &FigureParameters{}
		err := fp.Parse([]byte(`
Panels:
  - MeshFile: a.out
  - MeshFile: b.out
  - MeshFile: c.out
  - MeshFile: d.out
`))
		assert.ErrorContains(t, err, "room for 3 mesh panels")

		fp = &FigureParameters{}
		assert.Error(t, fp.Parse([]byte("Padding: -1\n")))
		fp = &FigureParameters{}
		assert.Error(t, fp.Parse([]byte("Panels: [1, 2\n")))
	}
}
