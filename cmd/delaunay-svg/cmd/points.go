// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/2dChan/delaunay"
)

// loadPointsFile reads a newline-delimited "x,y" point file. Blank lines
// and lines starting with '#' are skipped.
func loadPointsFile(path string) ([]delaunay.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pts []delaunay.Point
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("points: %s:%d: want \"x,y\", got %q", path, lineNo, line)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("points: %s:%d: %w", path, lineNo, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("points: %s:%d: %w", path, lineNo, err)
		}
		pts = append(pts, delaunay.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}
