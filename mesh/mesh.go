// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mesh presents a *delaunay.Triangulation as a navigable half-edge
// graph of Triangle, HalfEdge, and Vertex handles, the traversal layer
// spec.md's §1/§4.6 single out as an external collaborator with read-only
// access to the core's three output arrays. It copies nothing: every
// handle is a thin (pointer, index) pair resolved against the wrapped
// Mesh on demand.
package mesh

import (
	"fmt"

	"github.com/2dChan/delaunay"
)

// Mesh wraps a triangulation together with the point slice it was built
// from (needed to resolve coordinates for Vertex.Point) and provides
// bounds-checked access to its triangles, half-edges, and vertices.
type Mesh struct {
	t      *delaunay.Triangulation
	points []delaunay.Point

	// firstEdge[p] is the half-edge index of the first occurrence of point
	// p in t.Triangles, or delaunay.NoIndex if p was never inserted (a
	// near-duplicate the builder skipped). Built lazily on first use.
	firstEdge []uint32
}

// New wraps t and its source point slice as a Mesh. points must be the
// same slice (or an equal one) originally passed to delaunay.Triangulate;
// Mesh does not validate this.
func New(t *delaunay.Triangulation, points []delaunay.Point) *Mesh {
	return &Mesh{t: t, points: points}
}

// Triangulation returns the underlying triangulation.
func (m *Mesh) Triangulation() *delaunay.Triangulation {
	return m.t
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return m.t.NumTriangles()
}

// NumHalfEdges returns the number of half-edges in the mesh.
func (m *Mesh) NumHalfEdges() int {
	return len(m.t.Halfedges)
}

// Triangle returns the triangle with the given id. It panics if id is out
// of range.
func (m *Mesh) Triangle(id int) Triangle {
	if id < 0 || id >= m.NumTriangles() {
		panic(fmt.Sprintf("mesh: Triangle(%d) out of range [0, %d)", id, m.NumTriangles()))
	}
	return Triangle{m: m, index: uint32(id) * 3}
}

// HalfEdge returns the half-edge with the given id. It panics if id is out
// of range.
func (m *Mesh) HalfEdge(id int) HalfEdge {
	if id < 0 || id >= m.NumHalfEdges() {
		panic(fmt.Sprintf("mesh: HalfEdge(%d) out of range [0, %d)", id, m.NumHalfEdges()))
	}
	return HalfEdge{m: m, index: uint32(id)}
}

// Vertex returns the vertex for the given point index. It panics if
// pointIndex is out of range, or if the point was dropped during
// construction as a near-duplicate and never appears in the triangulation.
func (m *Mesh) Vertex(pointIndex int) Vertex {
	if pointIndex < 0 || pointIndex >= len(m.points) {
		panic(fmt.Sprintf("mesh: Vertex(%d) out of range [0, %d)", pointIndex, len(m.points)))
	}
	m.ensureFirstEdge()
	edge := m.firstEdge[pointIndex]
	if edge == delaunay.NoIndex {
		panic(fmt.Sprintf("mesh: Vertex(%d) is not part of the triangulation (dropped as a near-duplicate)", pointIndex))
	}
	return Vertex{m: m, index: edge}
}

func (m *Mesh) ensureFirstEdge() {
	if m.firstEdge != nil {
		return
	}
	first := make([]uint32, len(m.points))
	for i := range first {
		first[i] = delaunay.NoIndex
	}
	for e, p := range m.t.Triangles {
		if first[p] == delaunay.NoIndex {
			first[p] = uint32(e)
		}
	}
	m.firstEdge = first
}
