// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voronoi computes the planar Voronoi diagram dual to a Delaunay
// triangulation: one Voronoi vertex per triangle (its circumcenter), one
// Voronoi cell per input site, with each cell's vertices and neighboring
// cells listed in a CSR-like sparse representation.
package voronoi

import (
	"fmt"
	"slices"

	"github.com/2dChan/delaunay"
	"github.com/2dChan/delaunay/mesh"
)

// Diagram represents a Voronoi diagram over a set of planar sites.
type Diagram struct {
	// Sites are the input points.
	Sites []delaunay.Point
	// Vertices are the Voronoi vertices, one per Delaunay triangle,
	// indexed by triangle ID.
	Vertices []delaunay.Point

	// CellVertices contains, for each cell, the indices into Vertices of
	// its corners in CCW order, forming a CSR-like sparse representation.
	CellVertices []int
	// CellNeighbors contains, for each cell, the indices into Sites of the
	// neighboring cells, parallel to CellVertices (CellNeighbors[k] is the
	// site across the Voronoi edge from CellVertices[k]).
	CellNeighbors []int
	// CellOffsets contains offsets for slicing cell data in a CSR-like
	// format: cell i's data is [CellOffsets[i], CellOffsets[i+1]).
	CellOffsets []int

	// bounded[i] reports whether cell i is a closed polygon (its site is
	// interior) or an open fan (its site lies on the convex hull).
	bounded []bool
	// present[i] reports whether site i appears in the triangulation at
	// all (false for points the builder dropped as near-duplicates).
	present []bool

	m *mesh.Mesh
}

// NewDiagram triangulates points and computes the Voronoi dual. It returns
// delaunay.ErrNoTriangulation under the same conditions as
// delaunay.Triangulate.
func NewDiagram(points []delaunay.Point, opts ...delaunay.Option) (*Diagram, error) {
	t, err := delaunay.Triangulate(points, opts...)
	if err != nil {
		return nil, err
	}
	return newDiagram(t, points)
}

func newDiagram(t *delaunay.Triangulation, points []delaunay.Point) (*Diagram, error) {
	m := mesh.New(t, points)
	numTriangles := m.NumTriangles()

	vertices := make([]delaunay.Point, numTriangles)
	for i := range numTriangles {
		tri := m.Triangle(i)
		vertices[i] = delaunay.Circumcenter(tri.A().Point(), tri.B().Point(), tri.C().Point())
	}

	present := make([]bool, len(points))
	for _, p := range t.Triangles {
		present[p] = true
	}

	onHull := make(map[int]bool, len(t.Hull))
	for _, h := range t.Hull {
		onHull[int(h)] = true
	}

	d := &Diagram{
		Sites:        points,
		Vertices:     vertices,
		CellOffsets:  make([]int, len(points)+1),
		present:      present,
		bounded:      make([]bool, len(points)),
		m:            m,
	}

	cellVertices := make([]int, 0, numTriangles*2)
	cellNeighbors := make([]int, 0, numTriangles*2)

	for i := range points {
		d.CellOffsets[i] = len(cellVertices)
		if !present[i] {
			continue
		}
		d.bounded[i] = !onHull[i]

		// Edges walks counter-clockwise from its start edge and, for a hull
		// site, then clockwise from the start edge; the clockwise run goes
		// first, reversed, so the corners are listed in CCW order.
		var ccw, cw []mesh.HalfEdge
		it := m.Vertex(i).Edges()
		for {
			e, ok := it.Next()
			if !ok {
				break
			}
			if len(ccw) > 0 && ccw[len(ccw)-1].Prev().IsHullEdge() {
				cw = append(cw, e)
			} else {
				ccw = append(ccw, e)
			}
		}
		slices.Reverse(cw)
		for _, e := range append(cw, ccw...) {
			cellVertices = append(cellVertices, e.Triangle().ID())
			cellNeighbors = append(cellNeighbors, e.End().ID())
		}
	}
	d.CellOffsets[len(points)] = len(cellVertices)
	d.CellVertices = cellVertices
	d.CellNeighbors = cellNeighbors

	return d, nil
}

// NumCells returns the number of cells in the diagram (equal to the number
// of input sites, including any dropped as near-duplicates).
func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns the Voronoi cell at the specified index. It panics if the
// index is out of range.
func (d *Diagram) Cell(i int) Cell {
	if i < 0 || i >= len(d.Sites) {
		panic(fmt.Sprintf("Cell: index %d out of range [0, %d)", i, len(d.Sites)))
	}
	return Cell{idx: i, d: d}
}

// Relax performs one or more steps of Lloyd's relaxation: each bounded
// cell's site is moved to the average of its cell's vertices and the diagram is
// rebuilt. Unbounded (hull) cells are left in place, since an open fan has
// no well-defined centroid. As in the teacher this rebuilds the whole
// diagram per step rather than repairing it incrementally.
func (d *Diagram) Relax(steps int) error {
	if steps < 0 {
		return fmt.Errorf("Relax: steps must be non-negative, got %d", steps)
	}

	sites := make([]delaunay.Point, len(d.Sites))
	copy(sites, d.Sites)

	for range steps {
		for i := range sites {
			if i >= len(d.bounded) || !d.present[i] || !d.bounded[i] {
				continue
			}
			sites[i] = d.Cell(i).centroid()
		}

		t, err := delaunay.Triangulate(sites)
		if err != nil {
			return err
		}
		nd, err := newDiagram(t, sites)
		if err != nil {
			return err
		}
		*d = *nd
	}

	return nil
}
