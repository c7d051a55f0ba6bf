// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "delaunay-svg",
	Short: "triangulate point sets and render them to SVG",
	Long: `delaunay-svg builds a Delaunay triangulation (and, optionally, its
Voronoi dual) from a 2D point set and renders the result to an SVG file.

Points can be read from a file, or generated on the fly from a YAML
generator config; see 'delaunay-svg config'.`,
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main and only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
