// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "testing"

func TestBboxCenter(t *testing.T) {
	points := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	want := Point{2, 2}
	if got := bboxCenter(points); got != want {
		t.Errorf("bboxCenter(%v) = %v, want %v", points, got, want)
	}
}

func TestFindClosestPoint(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {5, 5}}
	k, ok := findClosestPoint(points, Point{0.9, 0})
	if !ok {
		t.Fatalf("findClosestPoint(...) ok = false, want true")
	}
	if k != 1 {
		t.Errorf("findClosestPoint(...) = %v, want 1", k)
	}
}

func TestFindClosestPoint_AllCoincident(t *testing.T) {
	points := []Point{{1, 1}, {1, 1}, {1, 1}}
	_, ok := findClosestPoint(points, Point{1, 1})
	if ok {
		t.Errorf("findClosestPoint(...) ok = true, want false")
	}
}

func TestFindSeedTriangle(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		wantOK bool
	}{
		{"empty", nil, false},
		{"one point", []Point{{0, 0}}, false},
		{"two points", []Point{{0, 0}, {1, 0}}, false},
		{"three collinear", []Point{{0, 0}, {1, 0}, {2, 0}}, false},
		{"three non-collinear", []Point{{0, 0}, {1, 0}, {0, 1}}, true},
		{"square", []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i0, i1, i2, ok := findSeedTriangle(tt.points)
			if ok != tt.wantOK {
				t.Fatalf("findSeedTriangle(%v) ok = %v, want %v", tt.points, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if i0 == i1 || i1 == i2 || i0 == i2 {
				t.Errorf("findSeedTriangle(%v) returned duplicate indices %d,%d,%d", tt.points, i0, i1, i2)
			}
			if orient(tt.points[i0], tt.points[i1], tt.points[i2]) {
				t.Errorf("findSeedTriangle(%v) seed triangle %d,%d,%d is not CCW", tt.points, i0, i1, i2)
			}
		})
	}
}
