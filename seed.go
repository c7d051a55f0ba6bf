// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "math"

// bboxCenter returns the center of the axis-aligned bounding box of points.
func bboxCenter(points []Point) Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return Point{(minX + maxX) / 2, (minY + maxY) / 2}
}

// findClosestPoint returns the index of the point in points closest to p0,
// excluding points exactly at distance 0. It returns ok = false if every
// point coincides with p0.
func findClosestPoint(points []Point, p0 Point) (k uint32, ok bool) {
	minDist := math.Inf(1)
	for i, p := range points {
		d := distanceSquared(p0, p)
		if d > 0 && d < minDist {
			k = uint32(i)
			minDist = d
			ok = true
		}
	}
	return k, ok
}

// findSeedTriangle implements the seed selection of spec §4.3: the point
// closest to the bounding-box center, the point closest to that, and the
// third point minimizing the circumradius with the first two, oriented CCW.
// It returns ok = false when no such triangle exists (fewer than three
// distinct points, or all points collinear).
func findSeedTriangle(points []Point) (i0, i1, i2 uint32, ok bool) {
	center := bboxCenter(points)

	i0, ok = findClosestPoint(points, center)
	if !ok {
		return 0, 0, 0, false
	}
	p0 := points[i0]

	i1, ok = findClosestPoint(points, p0)
	if !ok {
		return 0, 0, 0, false
	}
	p1 := points[i1]

	minRadius := math.Inf(1)
	found := false
	for i, p := range points {
		if uint32(i) == i0 || uint32(i) == i1 {
			continue
		}
		r := circumradiusSquared(p0, p1, p)
		if r < minRadius {
			i2 = uint32(i)
			minRadius = r
			found = true
		}
	}
	if !found {
		return 0, 0, 0, false
	}

	if orient(p0, p1, points[i2]) {
		// p0 -> p1 -> p2 is clockwise; swap to obtain CCW.
		i1, i2 = i2, i1
	}
	return i0, i1, i2, true
}
