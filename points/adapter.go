// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package points adapts third-party and lowest-common-denominator 2D point
// representations to and from delaunay.Point, and generates synthetic point
// sets for testing and the delaunay-svg command.
package points

import (
	"github.com/golang/geo/r2"

	"github.com/2dChan/delaunay"
)

// FromR2 converts a slice of r2.Point (github.com/golang/geo's planar point
// type) to delaunay.Point.
func FromR2(pts []r2.Point) []delaunay.Point {
	out := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		out[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	return out
}

// ToR2 converts a slice of delaunay.Point to r2.Point.
func ToR2(pts []delaunay.Point) []r2.Point {
	out := make([]r2.Point, len(pts))
	for i, p := range pts {
		out[i] = r2.Point{X: p.X, Y: p.Y}
	}
	return out
}

// FromXY converts a slice of [x, y] pairs to delaunay.Point.
func FromXY(pts [][2]float64) []delaunay.Point {
	out := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		out[i] = delaunay.Point{X: p[0], Y: p[1]}
	}
	return out
}

// ToXY converts a slice of delaunay.Point to [x, y] pairs.
func ToXY(pts []delaunay.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}
