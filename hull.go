// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// hull tracks the advancing convex hull as a doubly linked ring of point
// indices, keyed by original point index, plus an angular hash used to
// locate the hull edge visible from a newly inserted point in roughly O(1).
//
// prev, next, and tri are sized n; only the entries for points currently on
// the hull are meaningful. Points never on the hull hold NoIndex; a point
// removed from the hull has next set to NoIndex and keeps stale prev and tri.
type hull struct {
	start uint32
	prev  []uint32
	next  []uint32
	tri   []uint32
	hash  []uint32
	center Point
}

func newHull(n int, center Point, i0, i1, i2 uint32, points []Point) *hull {
	hashLen := isqrt(n)
	if hashLen < 1 {
		hashLen = 1
	}

	h := &hull{
		prev:   make([]uint32, n),
		next:   make([]uint32, n),
		tri:    make([]uint32, n),
		hash:   make([]uint32, hashLen),
		start:  i0,
		center: center,
	}
	for i := range h.prev {
		h.prev[i] = NoIndex
		h.next[i] = NoIndex
		h.tri[i] = NoIndex
	}
	for i := range h.hash {
		h.hash[i] = NoIndex
	}

	h.next[i0] = i1
	h.prev[i2] = i1
	h.next[i1] = i2
	h.prev[i0] = i2
	h.next[i2] = i0
	h.prev[i1] = i0

	h.tri[i0] = 0
	h.tri[i1] = 1
	h.tri[i2] = 2

	h.hashEdge(points[i0], i0)
	h.hashEdge(points[i1], i1)
	h.hashEdge(points[i2], i2)

	return h
}

// isqrt returns floor(sqrt(n)) without pulling in math.Sqrt's float64
// round-trip for what is always a small, non-negative integer.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// pseudoAngle is a trig-free, monotone-in-angle surrogate for the polar
// angle of v, mapped to [0, 1). It avoids the cost of atan2 while still
// preserving the angular ordering the hash needs.
func pseudoAngle(v Point) float64 {
	k := v.X / (abs(v.X) + abs(v.Y))
	if v.Y > 0 {
		return (3 - k) / 4
	}
	return (1 + k) / 4
}

func (h *hull) hashKey(p Point) int {
	l := len(h.hash)
	key := int(float64(l) * pseudoAngle(p.sub(h.center)))
	return ((key % l) + l) % l
}

// hashEdge records i as (one of) the hull vertices whose outgoing edge
// falls in p's angular bucket. Old entries are not invalidated; probing
// in findVisibleEdge verifies liveness instead.
func (h *hull) hashEdge(p Point, i uint32) {
	h.hash[h.hashKey(p)] = i
}

// findVisibleEdge locates a hull edge visible from p by probing the
// angular hash for a live candidate, then walking the ring forward until
// an edge facing p is found. walkBack reports whether the starting
// candidate was itself visible, meaning the caller must also walk
// backward from it to cover the full visible arc.
func (h *hull) findVisibleEdge(p Point, points []Point) (e uint32, walkBack bool, ok bool) {
	key := h.hashKey(p)
	l := len(h.hash)

	start := NoIndex
	for j := 0; j < l; j++ {
		cand := h.hash[(key+j)%l]
		if cand != NoIndex && h.next[cand] != NoIndex {
			start = cand
			break
		}
	}
	if start == NoIndex {
		return 0, false, false
	}
	start = h.prev[start]

	e = start
	for !orient(p, points[e], points[h.next[e]]) {
		e = h.next[e]
		if e == start {
			return 0, false, false
		}
	}
	return e, e == start, true
}

// swapHalfedge patches the hull's record of the boundary half-edge for
// whichever hull vertex currently points at fromEdge, after a flip moved
// that boundary edge elsewhere. Rare: only triggered when a flip's
// diagonal replaces a hull-adjacent edge.
func (h *hull) swapHalfedge(fromEdge, toEdge uint32) {
	v := h.start
	for {
		if h.tri[v] == fromEdge {
			h.tri[v] = toEdge
			break
		}
		v = h.prev[v]
		if v == h.start {
			break
		}
	}
}
