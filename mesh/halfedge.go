// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mesh

import "github.com/2dChan/delaunay"

// HalfEdge is one half-edge within a Mesh.
type HalfEdge struct {
	m     *Mesh
	index uint32
}

// ID is a fixed identifier for this half-edge, usable with Mesh.HalfEdge.
func (e HalfEdge) ID() int {
	return int(e.index)
}

// Twin returns the corresponding half-edge of the adjacent triangle, or
// ok == false if e lies on the convex hull.
func (e HalfEdge) Twin() (twin HalfEdge, ok bool) {
	idx := e.m.t.Halfedges[e.index]
	if idx == delaunay.NoIndex {
		return HalfEdge{}, false
	}
	return HalfEdge{m: e.m, index: idx}, true
}

// Next returns the next (counter-clockwise) half-edge of the triangle to
// the left of e.
func (e HalfEdge) Next() HalfEdge {
	return HalfEdge{m: e.m, index: delaunay.NextHalfedge(e.index)}
}

// Prev returns the previous (clockwise) half-edge of the triangle to the
// left of e.
func (e HalfEdge) Prev() HalfEdge {
	return HalfEdge{m: e.m, index: delaunay.PrevHalfedge(e.index)}
}

// Start returns the vertex this half-edge starts at.
func (e HalfEdge) Start() Vertex {
	return Vertex{m: e.m, index: e.index}
}

// End returns the vertex this half-edge ends at.
func (e HalfEdge) End() Vertex {
	return Vertex{m: e.m, index: delaunay.NextHalfedge(e.index)}
}

// Triangle returns the triangle to the left of e.
func (e HalfEdge) Triangle() Triangle {
	return Triangle{m: e.m, index: e.index - e.index%3}
}

// Opposite returns the triangle to the right of e, or ok == false if e
// lies on the convex hull.
func (e HalfEdge) Opposite() (t Triangle, ok bool) {
	twin, ok := e.Twin()
	if !ok {
		return Triangle{}, false
	}
	return twin.Triangle(), true
}

// IsHullEdge reports whether e lies on the convex hull (has no twin).
func (e HalfEdge) IsHullEdge() bool {
	return e.m.t.Halfedges[e.index] == delaunay.NoIndex
}

// HalfEdgeIter iterates over all half-edges of a Mesh.
type HalfEdgeIter struct {
	m     *Mesh
	index uint32
	end   uint32
}

// HalfEdges returns an iterator over every half-edge in m.
func HalfEdges(m *Mesh) *HalfEdgeIter {
	return &HalfEdgeIter{m: m, index: 0, end: uint32(m.NumHalfEdges())}
}

// Next returns the next half-edge, or ok == false once exhausted.
func (it *HalfEdgeIter) Next() (e HalfEdge, ok bool) {
	if it.index >= it.end {
		return HalfEdge{}, false
	}
	e = HalfEdge{m: it.m, index: it.index}
	it.index++
	return e, true
}

// TriangleIter iterates over all triangles of a Mesh.
type TriangleIter struct {
	m     *Mesh
	index uint32
	end   uint32
}

// Triangles returns an iterator over every triangle in m.
func Triangles(m *Mesh) *TriangleIter {
	return &TriangleIter{m: m, index: 0, end: uint32(m.NumTriangles()) * 3}
}

// Next returns the next triangle, or ok == false once exhausted.
func (it *TriangleIter) Next() (t Triangle, ok bool) {
	if it.index >= it.end {
		return Triangle{}, false
	}
	t = Triangle{m: it.m, index: it.index}
	it.index += 3
	return t, true
}
