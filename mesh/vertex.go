// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mesh

import (
	"github.com/2dChan/delaunay"
)

// Vertex is one vertex within a Mesh, identified by the half-edge that
// starts there (a point may be the start of several half-edges; any one
// identifies the same vertex).
type Vertex struct {
	m     *Mesh
	index uint32 // half-edge index this vertex is the start of
}

// ID returns the index of this vertex's point in the original input slice.
func (v Vertex) ID() int {
	return int(v.m.t.Triangles[v.index])
}

// Point returns the coordinates of this vertex.
func (v Vertex) Point() delaunay.Point {
	return v.m.points[v.ID()]
}

// Edges returns an iterator over the half-edges that start at this vertex.
// Iteration order is undefined (generally counter-clockwise, switching to
// clockwise if it reaches the convex hull); on the hull, exactly one
// half-edge touching this vertex does not start at it and is not visited.
func (v Vertex) Edges() *VertexEdgeIter {
	return &VertexEdgeIter{
		m:          v.m,
		index:      v.index,
		indexValid: true,
		start:      v.index,
		startValid: true,
	}
}

// Triangles returns an iterator over the triangles adjacent to this vertex.
func (v Vertex) Triangles() *VertexTriangleIter {
	return &VertexTriangleIter{inner: v.Edges()}
}

// VertexEdgeIter walks the half-edges starting at a vertex by repeatedly
// crossing to the twin of the previous half-edge. If that walk reaches the
// convex hull (a half-edge with no twin), it restarts from the original
// vertex and walks the other direction to cover the remaining edges.
type VertexEdgeIter struct {
	m          *Mesh
	index      uint32
	indexValid bool
	start      uint32
	startValid bool
}

// Next returns the next half-edge starting at this vertex, or
// ok == false once exhausted.
func (it *VertexEdgeIter) Next() (HalfEdge, bool) {
	if !it.indexValid {
		return HalfEdge{}, false
	}
	index := it.index

	if !it.startValid {
		// Already past the hull, walking backwards.
		twin := it.m.t.Halfedges[index]
		if twin == delaunay.NoIndex {
			it.indexValid = false
		} else {
			it.index = delaunay.NextHalfedge(twin)
		}
		return HalfEdge{m: it.m, index: index}, true
	}

	prevTwin := it.m.t.Halfedges[delaunay.PrevHalfedge(index)]
	switch {
	case prevTwin == delaunay.NoIndex:
		// Hit the convex hull; restart from the starting edge and walk
		// the other direction.
		it.startValid = false
		startTwin := it.m.t.Halfedges[it.start]
		if startTwin == delaunay.NoIndex {
			it.indexValid = false
		} else {
			it.index = delaunay.NextHalfedge(startTwin)
		}
	case prevTwin == it.start:
		it.indexValid = false
	default:
		it.index = prevTwin
	}

	return HalfEdge{m: it.m, index: index}, true
}

// VertexTriangleIter walks the triangles adjacent to a vertex.
type VertexTriangleIter struct {
	inner *VertexEdgeIter
}

// Next returns the next adjacent triangle, or ok == false once exhausted.
func (it *VertexTriangleIter) Next() (Triangle, bool) {
	e, ok := it.inner.Next()
	if !ok {
		return Triangle{}, false
	}
	return e.Triangle(), true
}
