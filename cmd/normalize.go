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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/delaunayplot/mesh"
	"github.com/notargets/delaunayplot/readfiles"
)

// NormalizeCmd represents the normalize command
var NormalizeCmd = &cobra.Command{
	Use:   "normalize IN OUT",
	Short: "Rewrite a mesh file with single spaces and no trailing whitespace",
	Long: `
Reads a mesh file, checks its indices and writes it back in the canonical layout.
Use "-" as OUT to write to standard output.

delaunayplot normalize data/delaunay_flip.out flip.out`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunNormalize(args[0], args[1], viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.AddCommand(NormalizeCmd)
}

func RunNormalize(inFile, outFile string, verbose bool) (err error) {
	var (
		m    *mesh.Mesh
		file *os.File
	)
	if m, err = readfiles.ReadMesh(inFile, verbose); err != nil {
		return
	}
	if outFile == "-" {
		return readfiles.WriteMesh(os.Stdout, m)
	}
	if file, err = os.Create(outFile); err != nil {
		return errors.Wrap(err, "unable to create output file")
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return readfiles.WriteMesh(file, m)
}
