/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/delaunayplot/InputParameters"
	"github.com/notargets/delaunayplot/mesh"
	"github.com/notargets/delaunayplot/plot"
	"github.com/notargets/delaunayplot/plot/chart"
	"github.com/notargets/delaunayplot/readfiles"
)

const pointsTitle = "Initial Points"

type PlotOptions struct {
	OutputFile    string // PNG written instead of opening a window when set
	SkipBadPanels bool
	Verbose       bool
	Log           *log.Logger
}

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Show the input points and the three triangulations in one figure",
	Long: `
Reads the raw point file and one mesh file per triangulation program, then draws
"Initial Points", "Flip Algorithm", "Bowyer-Watson Algorithm" and "Online Algorithm"
into a 2x2 figure. Without --output an interactive window is opened and the command
waits until it is closed.

delaunayplot plot -F figure.yaml --adjacency`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fp *InputParameters.FigureParameters
		)
		if fp, err = processFigureInput(); err != nil {
			return
		}
		opts := &PlotOptions{
			OutputFile:    viper.GetString("output"),
			SkipBadPanels: viper.GetBool("skip-bad-panels"),
			Verbose:       viper.GetBool("verbose"),
			Log:           newLogger(cmd.ErrOrStderr()),
		}
		if opts.Verbose {
			fp.Print(cmd.OutOrStdout())
		}
		switch viper.GetString("profile") {
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
		case "":
		default:
			return errors.Errorf("unknown profile type [%s], use cpu or mem", viper.GetString("profile"))
		}
		return RunPlot(fp, opts)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	defaults := InputParameters.NewFigureParameters()
	PlotCmd.Flags().StringP("figure", "F", "", "YAML file describing the figure (points file, panels, padding)")
	PlotCmd.Flags().String("points", defaults.PointsFile, "raw point file, N followed by N lines of x y")
	PlotCmd.Flags().String("flip", defaults.Panels[0].MeshFile, "mesh written by the flip algorithm")
	PlotCmd.Flags().String("bowyerwatson", defaults.Panels[1].MeshFile, "mesh written by the Bowyer-Watson algorithm")
	PlotCmd.Flags().String("online", defaults.Panels[2].MeshFile, "mesh written by the online algorithm")
	PlotCmd.Flags().BoolP("adjacency", "a", false, "draw a line between the centroids of adjacent triangles")
	PlotCmd.Flags().StringP("output", "o", "", "write the figure to this PNG file instead of opening a window")
	PlotCmd.Flags().Int("width", defaults.Width, "figure width in pixels")
	PlotCmd.Flags().Int("height", defaults.Height, "figure height in pixels")
	PlotCmd.Flags().Float64("padding", defaults.Padding, "margin around the points, in input units")
	PlotCmd.Flags().Bool("skip-bad-panels", false, "leave a panel empty when its file can not be plotted instead of stopping")
	PlotCmd.Flags().String("profile", "", "write a pprof profile to the current directory: cpu or mem")
	for _, name := range []string{"figure", "points", "flip", "bowyerwatson", "online", "adjacency", "output",
		"width", "height", "padding", "skip-bad-panels", "profile"} {
		_ = viper.BindPFlag(name, PlotCmd.Flags().Lookup(name))
	}
}

/*
processFigureInput layers the figure description: built in defaults, then the --figure YAML file, then values set
in the config file, the environment or on the command line.
*/
func processFigureInput() (fp *InputParameters.FigureParameters, err error) {
	fp = InputParameters.NewFigureParameters()
	if figureFile := viper.GetString("figure"); figureFile != "" {
		var data []byte
		if data, err = os.ReadFile(figureFile); err != nil {
			return nil, errors.Wrap(err, "unable to read figure file")
		}
		fp = &InputParameters.FigureParameters{}
		if err = fp.Parse(data); err != nil {
			return nil, errors.Wrap(err, figureFile)
		}
	}
	if viper.IsSet("points") {
		fp.PointsFile = viper.GetString("points")
	}
	for i, key := range []string{"flip", "bowyerwatson", "online"} {
		if !viper.IsSet(key) {
			continue
		}
		if i >= len(fp.Panels) {
			return nil, errors.Errorf("--%s given but the figure only has %d mesh panels", key, len(fp.Panels))
		}
		fp.Panels[i].MeshFile = viper.GetString(key)
	}
	if viper.IsSet("adjacency") {
		fp.ShowAdjacency = viper.GetBool("adjacency")
	}
	if viper.IsSet("padding") {
		fp.Padding = viper.GetFloat64("padding")
	}
	if viper.IsSet("width") {
		fp.Width = viper.GetInt("width")
	}
	if viper.IsSet("height") {
		fp.Height = viper.GetInt("height")
	}
	if err = fp.Validate(); err != nil {
		return nil, err
	}
	return
}

// BuildFigure reads every input file and renders it into its slot
func BuildFigure(fp *InputParameters.FigureParameters, opts *PlotOptions) (fig *plot.Figure, err error) {
	fig = plot.NewFigure(InputParameters.FigureRows, InputParameters.FigureCols,
		plot.WithTitle(fp.Title),
		plot.WithPadding(fp.Padding),
		plot.WithAdjacency(fp.ShowAdjacency))
	// failed applies the error policy: stop the run, or leave the panel empty and carry on
	failed := func(slot int, title string, cause error) error {
		if !opts.SkipBadPanels {
			return errors.Wrapf(cause, "panel %d [%s]", slot, title)
		}
		opts.Log.Printf("skipping panel %d [%s]: %v", slot, title, cause)
		return fig.SetFailed(slot, title, cause)
	}

	points, err := readfiles.ReadPoints(fp.PointsFile, opts.Verbose)
	if err == nil {
		err = plot.RenderPoints(fig, points, 1, pointsTitle)
	}
	if err != nil {
		if err = failed(1, pointsTitle, err); err != nil {
			return nil, err
		}
	}
	for i, panel := range fp.Panels {
		var (
			slot = i + 2
			m    *mesh.Mesh
		)
		m, err = readfiles.ReadMesh(panel.MeshFile, opts.Verbose)
		if err == nil {
			err = plot.RenderMesh(fig, m, slot, panel.Title)
		}
		if err != nil {
			if err = failed(slot, panel.Title, err); err != nil {
				return nil, err
			}
			continue
		}
		opts.Log.Printf("panel %d [%s]: %d points, %d triangles", slot, panel.Title,
			m.NumPoints(), m.NumTriangles())
	}
	return fig, nil
}

// RunPlot builds the figure, then writes it to a PNG file or shows it in a window until the window is closed
func RunPlot(fp *InputParameters.FigureParameters, opts *PlotOptions) (err error) {
	var (
		fig *plot.Figure
	)
	if opts.Log == nil {
		opts.Log = newLogger(os.Stderr)
	}
	if fig, err = BuildFigure(fp, opts); err != nil {
		return
	}
	if opts.OutputFile != "" {
		rs := plot.NewRasterSurface(fp.Width, fp.Height)
		if err = fig.Draw(rs); err != nil {
			return
		}
		if err = rs.SavePNG(opts.OutputFile); err != nil {
			return
		}
		opts.Log.Printf("wrote %s", opts.OutputFile)
		return
	}
	cs := chart.NewSurface(fp.Width, fp.Height)
	if err = fig.Draw(cs); err != nil {
		return
	}
	cs.Show()
	return
}
