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
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/delaunayplot/mesh"
	"github.com/notargets/delaunayplot/readfiles"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info FILE...",
	Short: "Summarize the points, triangles and adjacency declared in mesh files",
	Long: `
Prints counts of points, triangles, stored adjacency pairs, boundary edges and
how many triangle pairs name each other from one or both sides. The triangulation
itself is not checked.

delaunayplot info data/delaunay_flip.out data/delaunay_online.out`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInfo(cmd.OutOrStdout(), args, viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
}

func RunInfo(w io.Writer, files []string, verbose bool) (err error) {
	var (
		m *mesh.Mesh
	)
	for i, fileName := range files {
		if m, err = readfiles.ReadMesh(fileName, verbose); err != nil {
			return
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", fileName)
		mesh.Summarize(m).Print(w)
	}
	return
}
