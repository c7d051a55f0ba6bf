// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command delaunay-svg triangulates a point set and renders the
// triangulation (and optionally its Voronoi dual) to an SVG file.
package main

import "github.com/2dChan/delaunay/cmd/delaunay-svg/cmd"

func main() {
	cmd.Execute()
}
