package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_InlineToStdout(t *testing.T) {
	out, err := execute(t, "draw", "--axiom", "F+F+F+F")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg xmlns")
	assert.Contains(t, out, "<polyline")
	assert.Contains(t, out, `stroke="rgb(228,26,28)"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestDraw_ToFile(t *testing.T) {
	svgPath := filepath.Join(t.TempDir(), "out.svg")
	out, err := execute(t, "draw", "--axiom", "F+F+F+F", "-o", svgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+svgPath)

	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<polyline")
}

func TestDraw_StrokeWidth(t *testing.T) {
	out, err := execute(t, "draw", "--axiom", "F", "--stroke-width", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `stroke-width="3"`)
}

func TestDraw_InvalidCurve(t *testing.T) {
	_, err := execute(t, "draw", "--axiom", "F", "--colormap", "plasma")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
