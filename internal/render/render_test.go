package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvelab/lsys/internal/palette"
	"github.com/curvelab/lsys/internal/turtle"
)

func square() turtle.Drawing {
	return turtle.Drawing{
		Dimension: 2,
		Paths: []turtle.Path{{
			Color: palette.Color{R: 228, G: 26, B: 28},
			Points: []turtle.Point{
				{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 0}, {X: 0, Y: 10, Z: 0}, {X: 0, Y: 0, Z: 0},
			},
		}},
	}
}

func TestEncodeTrace_CanonicalBytes(t *testing.T) {
	data, err := EncodeTrace(square())
	require.NoError(t, err)

	want := `{"dimension":2,"paths":[{"color":[228,26,28],"points":[[0,0,0],[10,0,0],[10,10,0],[0,10,0],[0,0,0]]}]}`
	assert.Equal(t, want, string(data))
}

func TestEncodeTrace_Deterministic(t *testing.T) {
	a, err := EncodeTrace(square())
	require.NoError(t, err)
	b, err := EncodeTrace(square())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodeTrace_RoundsToSixDecimals(t *testing.T) {
	d := turtle.Drawing{
		Dimension: 2,
		Paths: []turtle.Path{{
			Points: []turtle.Point{{X: 0, Y: 0, Z: 0}, {X: 0.12345678, Y: 1.9999999999, Z: 0}},
		}},
	}
	data, err := EncodeTrace(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[0.123457,2,0]")
}

func TestEncodeTrace_CollapsesNegativeZero(t *testing.T) {
	d := turtle.Drawing{
		Dimension: 2,
		Paths: []turtle.Path{{
			Points: []turtle.Point{{X: math.Copysign(0, -1), Y: 0, Z: 0}, {X: 1, Y: -1e-9, Z: 0}},
		}},
	}
	data, err := EncodeTrace(d)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "-0")
}

func TestEncodeTrace_EmptyDrawing(t *testing.T) {
	data, err := EncodeTrace(turtle.Drawing{Dimension: 2})
	require.NoError(t, err)
	assert.Equal(t, `{"dimension":2,"paths":[]}`, string(data))
}

func TestTraceRenderer_AppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	r := &TraceRenderer{W: &buf}
	require.NoError(t, r.Render(square()))

	out := buf.String()
	assert.True(t, len(out) > 0 && out[len(out)-1] == '\n')
	assert.NotContains(t, out[:len(out)-1], "\n")
}
