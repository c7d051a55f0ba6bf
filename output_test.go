// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "testing"

func TestTriangulation_OutputSurface(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tri, err := Triangulate(points)
	if err != nil {
		t.Fatalf("Triangulate(...) error = %v, want nil", err)
	}

	if got, want := tri.NumHullPoints(), len(tri.Hull); got != want {
		t.Errorf("NumHullPoints() = %d, want %d", got, want)
	}

	for triIdx := uint32(0); triIdx < uint32(tri.NumTriangles()); triIdx++ {
		edges := tri.EdgesOfTriangle(triIdx)
		for _, e := range edges {
			if got := tri.TriangleOfEdge(e); got != triIdx {
				t.Errorf("TriangleOfEdge(%d) = %d, want %d", e, got, triIdx)
			}
			if got := tri.PointOfEdge(e); int(got) < 0 || int(got) >= len(points) {
				t.Errorf("PointOfEdge(%d) = %d, out of range", e, got)
			}
		}
		for k := range 3 {
			neighbor, ok := tri.TriangleNeighbor(triIdx, k)
			isHull := tri.IsHullEdge(triIdx*3 + uint32(k))
			if ok == isHull {
				t.Errorf("TriangleNeighbor(%d, %d) ok = %v, IsHullEdge = %v, want opposite", triIdx, k,
					ok, isHull)
			}
			if ok && neighbor >= uint32(tri.NumTriangles()) {
				t.Errorf("TriangleNeighbor(%d, %d) = %d, out of range", triIdx, k, neighbor)
			}
		}
	}
}
