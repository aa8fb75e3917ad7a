// Package testutil provides deterministic helpers for tests.
package testutil

import "github.com/curvelab/lsys/internal/palette"

// SequentialPalette returns a color lookup whose channels encode the index
// (R=G=B=index). Tests asserting on color transitions read the index back
// from any channel instead of depending on a real colormap's values.
//
// The lookup is stateless and safe for concurrent use.
func SequentialPalette() palette.Func {
	return func(index int) palette.Color {
		v := uint8(index % 256)
		return palette.Color{R: v, G: v, B: v}
	}
}
