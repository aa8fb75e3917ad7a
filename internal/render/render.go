// Package render provides consumers for the turtle's path list.
//
// The core hands its Drawing to anything implementing Consumer; rendering,
// display and export stay outside the core. Two consumers ship here: a
// canonical JSON trace (deterministic, used for golden-file comparison and
// machine output) and an SVG polyline writer.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/curvelab/lsys/internal/turtle"
)

// Consumer accepts a finished drawing.
type Consumer interface {
	Render(d turtle.Drawing) error
}

// tracePath is one path in the canonical trace.
type tracePath struct {
	Color  [3]int       `json:"color"`
	Points [][3]float64 `json:"points"`
}

// trace is the canonical trace document.
type trace struct {
	Dimension int         `json:"dimension"`
	Paths     []tracePath `json:"paths"`
}

// EncodeTrace serializes a drawing to canonical single-line JSON.
//
// Coordinates are rounded to six decimal places before encoding and HTML
// escaping is disabled, so the same drawing always encodes to the same
// bytes on every platform. Golden tests compare against this encoding.
func EncodeTrace(d turtle.Drawing) ([]byte, error) {
	doc := trace{
		Dimension: d.Dimension,
		Paths:     make([]tracePath, len(d.Paths)),
	}
	for i, p := range d.Paths {
		points := make([][3]float64, len(p.Points))
		for j, pt := range p.Points {
			points[j] = [3]float64{round6(pt.X), round6(pt.Y), round6(pt.Z)}
		}
		doc.Paths[i] = tracePath{
			Color:  [3]int{int(p.Color.R), int(p.Color.G), int(p.Color.B)},
			Points: points,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode trace: %w", err)
	}
	// Encoder appends a newline; keep the document itself newline-free.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// round6 rounds to six decimal places and collapses negative zero, which
// would otherwise encode as "-0" and break byte-level reproducibility.
func round6(x float64) float64 {
	r := math.Round(x*1e6) / 1e6
	if r == 0 {
		return 0
	}
	return r
}
