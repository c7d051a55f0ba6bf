// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "errors"

// ErrNoTriangulation is returned by Triangulate when no triangulation
// exists for the given input: fewer than three distinct points, all
// points coincident, or all points collinear.
var ErrNoTriangulation = errors.New("delaunay: no triangulation exists for input")
