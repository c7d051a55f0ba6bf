// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay implements 2D Delaunay triangulation via an incremental
// sweep-hull construction: a seed triangle is bootstrapped near the center
// of the input, the remaining points are inserted in order of increasing
// distance from the seed circumcenter, and each insertion fans triangles
// across the visible arc of the advancing convex hull before legalizing
// the new edges by recursive flipping.
package delaunay
