package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidFile(t *testing.T) {
	path := writeCUE(t, t.TempDir(), "koch.cue", kochCUE)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Valid: 1 curve(s)")
}

func TestValidate_InvalidCurve(t *testing.T) {
	path := writeCUE(t, t.TempDir(), "bad.cue", `
curve: bad: {axiom: "", iterations: -1}
`)

	out, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "E201")
	assert.Contains(t, out, "E202")
	// Fields are prefixed with the curve name.
	assert.Contains(t, out, "bad.axiom")
}

func TestValidate_JSON(t *testing.T) {
	path := writeCUE(t, t.TempDir(), "bad.cue", `
curve: bad: {axiom: ""}
`)

	out, err := execute(t, "validate", path, "--format", "json")
	require.Error(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["valid"])
}

func TestValidate_MissingPath(t *testing.T) {
	_, err := execute(t, "validate", "/nonexistent/curves.cue")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidate_UnknownColormapReported(t *testing.T) {
	path := writeCUE(t, t.TempDir(), "map.cue", `
curve: mapped: {axiom: "F", turtle: {colormap: "plasma"}}
`)

	out, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "E204")
}
