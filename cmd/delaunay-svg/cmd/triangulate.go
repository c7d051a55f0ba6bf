// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2dChan/delaunay"
	"github.com/2dChan/delaunay/points"
	"github.com/2dChan/delaunay/voronoi"
)

var (
	pointsFlag  string
	configFlag  string
	outFlag     string
	seedFlag    int64
	voronoiFlag bool
	widthFlag   int
	heightFlag  int
)

// triangulateCmd represents the triangulate command.
var triangulateCmd = &cobra.Command{
	Use:   "triangulate",
	Short: "triangulate a point set and render it to SVG",
	Long: `Build a Delaunay triangulation from a point set and render it to an
SVG file.

The point set comes from --points (a newline-delimited "x,y" file) or
--config (a YAML generator config written by 'delaunay-svg config'); if
both are given, --points wins. --seed overrides the seed in a generator
config.`,
	RunE: runTriangulate,
}

func init() {
	RootCmd.AddCommand(triangulateCmd)

	triangulateCmd.Flags().StringVar(&pointsFlag, "points", "", "newline-delimited \"x,y\" point file")
	triangulateCmd.Flags().StringVar(&configFlag, "config", "", "YAML generator config")
	triangulateCmd.Flags().StringVar(&outFlag, "out", "delaunay.svg", "output SVG file")
	triangulateCmd.Flags().Int64Var(&seedFlag, "seed", -1, "override the generator config's seed")
	triangulateCmd.Flags().BoolVar(&voronoiFlag, "voronoi", false, "overlay the Voronoi dual")
	triangulateCmd.Flags().IntVar(&widthFlag, "width", 1000, "canvas width in pixels")
	triangulateCmd.Flags().IntVar(&heightFlag, "height", 1000, "canvas height in pixels")
}

func runTriangulate(cmd *cobra.Command, args []string) error {
	pts, err := resolvePoints()
	if err != nil {
		return err
	}
	if len(pts) == 0 {
		return fmt.Errorf("triangulate: no points to triangulate (use --points or --config)")
	}

	tri, err := delaunay.Triangulate(pts, delaunay.WithCapacityHint(len(pts)))
	if err != nil {
		return fmt.Errorf("triangulate: %w", err)
	}

	var diagram *voronoi.Diagram
	if voronoiFlag {
		diagram, err = voronoi.NewDiagram(pts)
		if err != nil {
			return fmt.Errorf("triangulate: building voronoi dual: %w", err)
		}
	}

	if err := renderTriangulation(outFlag, tri, pts, diagram, widthFlag, heightFlag); err != nil {
		return fmt.Errorf("triangulate: rendering %s: %w", outFlag, err)
	}

	fmt.Fprintf(os.Stdout, "%d points, %d triangles written to %s\n", len(pts), tri.NumTriangles(), outFlag)
	return nil
}

// resolvePoints loads the point set named by --points or --config.
// --points takes priority when both are set.
func resolvePoints() ([]delaunay.Point, error) {
	if pointsFlag != "" {
		return loadPointsFile(pointsFlag)
	}
	if configFlag != "" {
		cfg, err := loadGeneratorConfig(configFlag)
		if err != nil {
			return nil, err
		}
		if seedFlag >= 0 {
			cfg.Seed = seedFlag
		}
		return cfg.generate()
	}
	cfg := defaultGeneratorConfig()
	if seedFlag >= 0 {
		cfg.Seed = seedFlag
	}
	return points.GenerateRandomPoints(cfg.Count, cfg.Width, cfg.Height, cfg.Seed), nil
}
