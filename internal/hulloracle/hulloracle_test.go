// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hulloracle

import (
	"testing"

	"github.com/2dChan/delaunay"
)

func TestPointIndices_Square(t *testing.T) {
	points := []delaunay.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	got := PointIndices(points, 1e-9)
	if len(got) != 4 {
		t.Errorf("PointIndices(square) = %v, want all 4 points on hull", got)
	}
}

func TestPointIndices_SquareWithInteriorPoint(t *testing.T) {
	points := []delaunay.Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
		{X: 2, Y: 2}, // interior
	}
	got := PointIndices(points, 1e-9)
	for _, idx := range got {
		if idx == 4 {
			t.Errorf("PointIndices(...) includes interior point 4, want it excluded")
		}
	}
	if len(got) != 4 {
		t.Errorf("PointIndices(...) = %v, want 4 hull points", got)
	}
}
