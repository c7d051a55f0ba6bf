// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hulloracle is a test-only helper that computes the convex hull of
// a planar point set independently of the core's incremental sweep-hull,
// by lifting the points onto the z=0 plane and running a 3D quickhull. It
// exists solely so core tests can cross-check the hull-closure property
// (spec §8.6) against a second, unrelated implementation; production code
// never imports this package.
package hulloracle

import (
	"sort"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/2dChan/delaunay"
)

// PointIndices returns the indices, in ascending order, of the points that
// lie on the convex hull of points, computed by lifting points to the
// z=0 plane and running quickhull.
func PointIndices(points []delaunay.Point, eps float64) []int {
	verts := make([]r3.Vector, len(points))
	for i, p := range points {
		verts[i] = r3.Vector{X: p.X, Y: p.Y, Z: 0}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(verts, true, true, eps)

	seen := make(map[int]bool, len(ch.Indices))
	for _, idx := range ch.Indices {
		seen[idx] = true
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
