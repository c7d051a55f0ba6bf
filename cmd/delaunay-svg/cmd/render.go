// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cmd

import (
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/2dChan/delaunay"
	"github.com/2dChan/delaunay/mesh"
	"github.com/2dChan/delaunay/voronoi"
)

const (
	triangleStyle = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	cellStyle     = "fill:none;stroke:rgb(220,120,60);stroke-width:1;stroke-opacity:0.8"
	siteStyle     = "fill:rgb(0,0,255)"
	margin        = 20
)

// projection maps point space onto an integer screen canvas, preserving
// aspect ratio and leaving a fixed margin.
type projection struct {
	minX, minY float64
	scale      float64
	width      int
}

func newProjection(points []delaunay.Point, width, height int) projection {
	if len(points) == 0 {
		return projection{scale: 1, width: width}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	avail := float64(min(width, height) - 2*margin)
	scale := 1.0
	if spanX > 0 || spanY > 0 {
		scale = avail / max(spanX, spanY)
	}
	return projection{minX: minX, minY: minY, scale: scale, width: width}
}

func (p projection) toScreen(pt delaunay.Point) (int, int) {
	x := margin + (pt.X-p.minX)*p.scale
	y := margin + (pt.Y-p.minY)*p.scale
	return int(x), int(y)
}

// renderTriangulation draws the triangulation's triangles and sites to an
// SVG file at path. When diagram is non-nil its cell boundaries are drawn
// as an overlay.
func renderTriangulation(path string, t *delaunay.Triangulation, points []delaunay.Point, diagram *voronoi.Diagram,
	width, height int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	proj := newProjection(points, width, height)

	canvas := svg.New(file)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	m := mesh.New(t, points)
	it := mesh.Triangles(m)
	xPoints := make([]int, 0, 3)
	yPoints := make([]int, 0, 3)
	for {
		tri, ok := it.Next()
		if !ok {
			break
		}
		xPoints = xPoints[:0]
		yPoints = yPoints[:0]
		vIt := tri.Vertices()
		for {
			v, ok := vIt.Next()
			if !ok {
				break
			}
			x, y := proj.toScreen(v.Point())
			xPoints = append(xPoints, x)
			yPoints = append(yPoints, y)
		}
		canvas.Polygon(xPoints, yPoints, triangleStyle)
	}

	if diagram != nil {
		for i := range diagram.NumCells() {
			cell := diagram.Cell(i)
			if !cell.Bounded() || cell.NumVertices() < 3 {
				continue
			}
			xPoints = xPoints[:0]
			yPoints = yPoints[:0]
			for k := range cell.NumVertices() {
				x, y := proj.toScreen(cell.Vertex(k))
				xPoints = append(xPoints, x)
				yPoints = append(yPoints, y)
			}
			canvas.Polygon(xPoints, yPoints, cellStyle)
		}
	}

	for _, p := range points {
		x, y := proj.toScreen(p)
		canvas.Circle(x, y, 3, siteStyle)
	}

	canvas.End()
	return nil
}
