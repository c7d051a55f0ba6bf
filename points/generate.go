// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package points

import (
	"math"
	"math/rand"

	"github.com/2dChan/delaunay"
)

// GenerateRandomPoints generates cnt points drawn uniformly from
// [0, width] x [0, height]. The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, width, height float64, seed int64) []delaunay.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	pts := make([]delaunay.Point, cnt)
	for i := range cnt {
		pts[i] = delaunay.Point{
			X: random.Float64() * width,
			Y: random.Float64() * height,
		}
	}
	return pts
}

// GenerateGridPoints generates a cols x rows regular grid of points spanning
// [0, width] x [0, height] inclusive of both endpoints on each axis. cols
// and rows below 2 are raised to 2.
func GenerateGridPoints(cols, rows int, width, height float64) []delaunay.Point {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	pts := make([]delaunay.Point, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			pts = append(pts, delaunay.Point{
				X: width * float64(col) / float64(cols-1),
				Y: height * float64(row) / float64(rows-1),
			})
		}
	}
	return pts
}

// GenerateCirclePoints generates cnt points evenly spaced around a circle of
// the given radius centered at (centerX, centerY).
func GenerateCirclePoints(cnt int, centerX, centerY, radius float64) []delaunay.Point {
	pts := make([]delaunay.Point, cnt)
	for i := range cnt {
		theta := 2 * math.Pi * float64(i) / float64(cnt)
		pts[i] = delaunay.Point{
			X: centerX + radius*math.Cos(theta),
			Y: centerY + radius*math.Sin(theta),
		}
	}
	return pts
}
