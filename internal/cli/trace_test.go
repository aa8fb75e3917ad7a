package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_InlineSquare(t *testing.T) {
	out, err := execute(t, "trace", "--axiom", "F+F+F+F")
	require.NoError(t, err)
	assert.Equal(t,
		`{"dimension":2,"paths":[{"color":[228,26,28],"points":[[0,0,0],[10,0,0],[10,10,0],[0,10,0],[0,0,0]]}]}`+"\n",
		out)
}

func TestTrace_FromCUEFile(t *testing.T) {
	path := writeCUE(t, t.TempDir(), "square.cue", `
curve: square: {axiom: "F+F+F+F"}
`)

	out, err := execute(t, "trace", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"dimension":2`)
	assert.Contains(t, out, "[0,0,0],[10,0,0]")
}

func TestTrace_WithRules(t *testing.T) {
	out, err := execute(t, "trace", "--axiom", "F", "--rules", "F:F+F-F-F+F", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t,
		`{"dimension":2,"paths":[{"color":[228,26,28],"points":[[0,0,0],[10,0,0],[10,10,0],[20,10,0],[20,0,0],[30,0,0]]}]}`+"\n",
		out)
}

func TestTrace_NoSource(t *testing.T) {
	_, err := execute(t, "trace")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
