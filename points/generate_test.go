// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package points

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := GenerateRandomPoints(tt.cnt, 100, 100, tt.seed)
			require.Len(t, pts, tt.cnt)
		})
	}
}

func TestGenerateRandomPoints_WithinBounds(t *testing.T) {
	const (
		cnt          = 200
		width        = 50.0
		height       = 30.0
		seed   int64 = 7
	)
	pts := GenerateRandomPoints(cnt, width, height, seed)
	for i, p := range pts {
		require.GreaterOrEqualf(t, p.X, 0.0, "point %d X", i)
		require.LessOrEqualf(t, p.X, width, "point %d X", i)
		require.GreaterOrEqualf(t, p.Y, 0.0, "point %d Y", i)
		require.LessOrEqualf(t, p.Y, height, "point %d Y", i)
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt          = 20
		seed   int64 = 0
	)
	a := GenerateRandomPoints(cnt, 10, 10, seed)
	b := GenerateRandomPoints(cnt, 10, 10, seed)
	require.Equal(t, a, b)
}

func TestGenerateGridPoints(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantLen    int
	}{
		{"2x2", 2, 2, 4},
		{"3x4", 3, 4, 12},
		{"clamps below minimum", 1, 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := GenerateGridPoints(tt.cols, tt.rows, 10, 10)
			require.Len(t, pts, tt.wantLen)
		})
	}
}

func TestGenerateGridPoints_Corners(t *testing.T) {
	pts := GenerateGridPoints(3, 3, 9, 9)
	require.Equal(t, 9.0, pts[len(pts)-1].X)
	require.Equal(t, 9.0, pts[len(pts)-1].Y)
	require.Equal(t, 0.0, pts[0].X)
	require.Equal(t, 0.0, pts[0].Y)
}

func TestGenerateCirclePoints(t *testing.T) {
	const (
		cnt    = 16
		radius = 5.0
	)
	pts := GenerateCirclePoints(cnt, 0, 0, radius)
	require.Len(t, pts, cnt)
	for i, p := range pts {
		dist := p.X*p.X + p.Y*p.Y
		require.InDeltaf(t, radius*radius, dist, 1e-9, "point %d not on circle", i)
	}
}
