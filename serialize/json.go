// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package serialize encodes and decodes delaunay.Triangulation values as
// JSON. The wire shape is a direct reflection of the three output arrays
// (spec.md §4.6); there is no third-party serialization library in the pack
// whose scope fits this (protobuf/gob schemas are a heavier commitment than
// three index slices warrant), so this collaborator is built on
// encoding/json alone — see DESIGN.md for the justification.
package serialize

import (
	"encoding/json"
	"io"

	"github.com/2dChan/delaunay"
)

// wire mirrors delaunay.Triangulation's exported fields, except Halfedges
// uses int32 with -1 for delaunay.NoIndex: JSON has no native optional-index
// type, and -1 reads better than the uint32 sentinel's raw bit pattern.
type wire struct {
	Triangles []uint32 `json:"triangles"`
	Halfedges []int32  `json:"halfedges"`
	Hull      []uint32 `json:"hull"`
}

// Marshal encodes t as JSON.
func Marshal(t *delaunay.Triangulation) ([]byte, error) {
	return json.Marshal(toWire(t))
}

// Unmarshal decodes JSON produced by Marshal into a new Triangulation.
func Unmarshal(data []byte) (*delaunay.Triangulation, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(w), nil
}

// Encode writes t to w as JSON.
func Encode(w io.Writer, t *delaunay.Triangulation) error {
	return json.NewEncoder(w).Encode(toWire(t))
}

// Decode reads a Triangulation previously written by Encode from r.
func Decode(r io.Reader) (*delaunay.Triangulation, error) {
	var w wire
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, err
	}
	return fromWire(w), nil
}

func toWire(t *delaunay.Triangulation) wire {
	halfedges := make([]int32, len(t.Halfedges))
	for i, h := range t.Halfedges {
		if h == delaunay.NoIndex {
			halfedges[i] = -1
		} else {
			halfedges[i] = int32(h)
		}
	}
	return wire{Triangles: t.Triangles, Halfedges: halfedges, Hull: t.Hull}
}

func fromWire(w wire) *delaunay.Triangulation {
	halfedges := make([]uint32, len(w.Halfedges))
	for i, h := range w.Halfedges {
		if h < 0 {
			halfedges[i] = delaunay.NoIndex
		} else {
			halfedges[i] = uint32(h)
		}
	}
	return &delaunay.Triangulation{Triangles: w.Triangles, Halfedges: halfedges, Hull: w.Hull}
}
