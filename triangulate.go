// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "sort"

// Triangulation is the result of a Delaunay triangulation: triples of point
// indices (Triangles), their half-edge adjacency (Halfedges), and the
// convex hull of the input (Hull). All indices are zero-based into the
// point slice originally passed to Triangulate, except Halfedges entries,
// which index into Triangles/Halfedges themselves (or equal NoIndex).
type Triangulation struct {
	Triangles []uint32
	Halfedges []uint32
	Hull      []uint32
}

// Triangulate computes the Delaunay triangulation of points using the
// incremental sweep-hull algorithm: a seed triangle is bootstrapped near
// the center of the input's bounding box, remaining points are inserted in order of
// increasing distance from the seed circumcenter, and each insertion fans
// triangles across the visible arc of the advancing hull before legalizing
// the new edges by recursive flipping.
//
// It returns ErrNoTriangulation if points has fewer than three distinct,
// non-collinear values.
func Triangulate(points []Point, opts ...Option) (*Triangulation, error) {
	o := TriangulationOptions{Epsilon: defaultEpsilon}
	for _, set := range opts {
		if err := set(&o); err != nil {
			return nil, err
		}
	}

	i0, i1, i2, ok := findSeedTriangle(points)
	if !ok {
		return nil, ErrNoTriangulation
	}

	n := len(points)
	capHint := o.CapacityHint
	if capHint < n {
		capHint = n
	}
	maxTriangles := 2*capHint - 5

	b := &builder{
		triangles: make([]uint32, 0, 3*maxTriangles),
		halfedges: make([]uint32, 0, 3*maxTriangles),
	}

	center := circumcenter(points[i0], points[i1], points[i2])
	b.addTriangle(i0, i1, i2, NoIndex, NoIndex, NoIndex)

	h := newHull(n, center, i0, i1, i2, points)

	order := radialOrder(points, center)

	for k, idx := range order {
		i := idx
		p := points[i]

		if k > 0 && nearlyEquals(p, points[order[k-1]], o.Epsilon) {
			continue
		}
		if i == i0 || i == i1 || i == i2 {
			continue
		}

		e, walkBack, found := h.findVisibleEdge(p, points)
		if !found {
			continue
		}

		t := b.addTriangle(e, i, h.next[e], NoIndex, NoIndex, h.tri[e])
		h.tri[i] = b.legalize(t+2, points, h)
		h.tri[e] = t

		next := h.next[e]
		for {
			q := h.next[next]
			if !orient(p, points[next], points[q]) {
				break
			}
			t := b.addTriangle(next, i, q, h.tri[i], NoIndex, h.tri[next])
			h.tri[i] = b.legalize(t+2, points, h)
			h.next[next] = NoIndex
			next = q
		}

		if walkBack {
			for {
				q := h.prev[e]
				if !orient(p, points[q], points[e]) {
					break
				}
				t := b.addTriangle(q, i, e, NoIndex, h.tri[e], h.tri[q])
				b.legalize(t+2, points, h)
				h.tri[q] = t
				h.next[e] = NoIndex
				e = q
			}
		}

		h.prev[i] = e
		h.next[i] = next
		h.prev[next] = i
		h.next[e] = i
		h.start = e

		h.hashEdge(p, i)
		h.hashEdge(points[e], e)
	}

	hullOut := make([]uint32, 0)
	e := h.start
	for {
		hullOut = append(hullOut, e)
		e = h.next[e]
		if e == h.start {
			break
		}
	}

	return &Triangulation{
		Triangles: b.triangles,
		Halfedges: b.halfedges,
		Hull:      hullOut,
	}, nil
}

// radialOrder returns point indices sorted by ascending squared distance
// from center. The sort is unstable: duplicate points are filtered in the
// insertion loop by comparing each point only to its immediate predecessor
// in this order, so ties among equal-distance points need no particular
// tiebreak.
func radialOrder(points []Point, center Point) []uint32 {
	order := make([]uint32, len(points))
	dist := make([]float64, len(points))
	for i, p := range points {
		order[i] = uint32(i)
		dist[i] = distanceSquared(center, p)
	}
	sort.Slice(order, func(a, b int) bool {
		return dist[order[a]] < dist[order[b]]
	})
	return order
}

// builder accumulates the triangles and half-edge twins produced during
// insertion.
type builder struct {
	triangles []uint32
	halfedges []uint32
}

// addTriangle appends a new triangle (i0, i1, i2) with twin half-edges
// (a, b, c) opposite each vertex, patching each twin's own twin pointer to
// point back at the new triangle. It returns the base edge index of the
// new triangle.
func (b *builder) addTriangle(i0, i1, i2, a, bHE, c uint32) uint32 {
	t := uint32(len(b.triangles))

	b.triangles = append(b.triangles, i0, i1, i2)
	b.halfedges = append(b.halfedges, a, bHE, c)

	if a != NoIndex {
		b.halfedges[a] = t
	}
	if bHE != NoIndex {
		b.halfedges[bHE] = t + 1
	}
	if c != NoIndex {
		b.halfedges[c] = t + 2
	}

	return t
}

// legalize restores the Delaunay property around the newly created edge a
// by recursive edge flipping. The original algorithm recurses on a (for
// side effects only, its result discarded) and tail-recurses on br
// (returning that result). This follows the br tail-chain in a loop and
// queues each flip's discarded a-branch on an explicit stack instead of
// the call stack, bounding recursion depth on adversarial inputs (spec
// Design Notes §9). It returns the edge that should replace a in the
// caller's outer bookkeeping.
func (b *builder) legalize(a uint32, points []Point, h *hull) uint32 {
	var discard []uint32

	cur := a
	for {
		ar, br, flipped := b.legalizeEdge(cur, points, h)
		if !flipped {
			b.drainDiscard(discard, points, h)
			return ar
		}
		discard = append(discard, cur)
		cur = br
	}
}

// drainDiscard fully legalizes every edge on stack (and whichever further
// edges its flips produce), ignoring the results: these are the "a"
// branches of legalize that the original algorithm recurses into purely
// for side effects.
func (b *builder) drainDiscard(stack []uint32, points []Point, h *hull) {
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		_, br, flipped := b.legalizeEdge(e, points, h)
		if flipped {
			stack = append(stack, e, br)
		}
	}
}

// legalizeEdge performs a single Delaunay check, flipping the quad across
// edge if it is illegal. ar is the replacement edge when edge has no twin
// or the pair was already legal (flipped == false). When flipped == true,
// br is the far edge of the flip that still needs legalizing.
func (b *builder) legalizeEdge(edge uint32, points []Point, h *hull) (ar, br uint32, flipped bool) {
	ar = PrevHalfedge(edge)
	twin := b.halfedges[edge]
	if twin == NoIndex {
		return ar, 0, false
	}

	al := NextHalfedge(edge)
	bl := PrevHalfedge(twin)

	p0 := b.triangles[ar]
	pr := b.triangles[edge]
	pl := b.triangles[al]
	p1 := b.triangles[bl]

	if !inCircle(points[p1], points[p0], points[pr], points[pl]) {
		return ar, 0, false
	}

	b.triangles[edge] = p1
	b.triangles[twin] = p0

	hbl := b.halfedges[bl]
	har := b.halfedges[ar]

	if hbl == NoIndex {
		// The flipped diagonal now borders the hull on the bl side.
		h.swapHalfedge(bl, edge)
	}

	b.halfedges[edge] = hbl
	b.halfedges[twin] = har
	b.halfedges[ar] = bl

	if hbl != NoIndex {
		b.halfedges[hbl] = edge
	}
	if har != NoIndex {
		b.halfedges[har] = twin
	}
	b.halfedges[bl] = ar

	br = NextHalfedge(twin)
	return ar, br, true
}
