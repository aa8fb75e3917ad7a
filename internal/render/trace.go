package render

import (
	"fmt"
	"io"

	"github.com/curvelab/lsys/internal/turtle"
)

// TraceRenderer writes the canonical JSON trace of a drawing.
type TraceRenderer struct {
	W io.Writer
}

// Render implements Consumer.
func (r *TraceRenderer) Render(d turtle.Drawing) error {
	data, err := EncodeTrace(d)
	if err != nil {
		return err
	}
	if _, err := r.W.Write(data); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	if _, err := io.WriteString(r.W, "\n"); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	return nil
}
