package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/curvelab/lsys/internal/turtle"
)

// svgMargin is the padding around the drawing's bounding box, in drawing
// units.
const svgMargin = 10.0

// SVGRenderer writes a drawing as an SVG document of polylines, one
// polyline per path, stroked with the path's color. Z coordinates are
// dropped: SVG output is the 2D projection even for 3D drawings.
type SVGRenderer struct {
	W io.Writer

	// StrokeWidth is the polyline stroke width; 0 means 1.
	StrokeWidth float64
}

// Render implements Consumer.
func (r *SVGRenderer) Render(d turtle.Drawing) error {
	stroke := r.StrokeWidth
	if stroke <= 0 {
		stroke = 1
	}

	minX, minY, maxX, maxY := bounds(d)
	width := maxX - minX + 2*svgMargin
	height := maxY - minY + 2*svgMargin

	w := bufio.NewWriter(r.W)
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`+"\n",
		coord(width), coord(height))

	for _, path := range d.Paths {
		fmt.Fprintf(w, `  <polyline fill="none" stroke="rgb(%d,%d,%d)" stroke-width="%s" points="`,
			path.Color.R, path.Color.G, path.Color.B, coord(stroke))
		for i, pt := range path.Points {
			if i > 0 {
				io.WriteString(w, " ")
			}
			// SVG y grows downward; flip so the curve reads the
			// same way up as the turtle drew it.
			x := pt.X - minX + svgMargin
			y := maxY - pt.Y + svgMargin
			fmt.Fprintf(w, "%s,%s", coord(x), coord(y))
		}
		io.WriteString(w, `"/>`+"\n")
	}

	io.WriteString(w, "</svg>\n")
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// bounds returns the 2D bounding box of a drawing.
// An empty drawing yields a zero box at the origin.
func bounds(d turtle.Drawing) (minX, minY, maxX, maxY float64) {
	first := true
	for _, path := range d.Paths {
		for _, pt := range path.Points {
			if first {
				minX, maxX = pt.X, pt.X
				minY, maxY = pt.Y, pt.Y
				first = false
				continue
			}
			if pt.X < minX {
				minX = pt.X
			}
			if pt.X > maxX {
				maxX = pt.X
			}
			if pt.Y < minY {
				minY = pt.Y
			}
			if pt.Y > maxY {
				maxY = pt.Y
			}
		}
	}
	return minX, minY, maxX, maxY
}

// coord formats a coordinate compactly, trimming trailing zeros.
func coord(v float64) string {
	return strconv.FormatFloat(round6(v), 'f', -1, 64)
}
