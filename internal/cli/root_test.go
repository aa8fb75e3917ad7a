package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "lsys")
	assert.Contains(t, out, "develop")
	assert.Contains(t, out, "draw")
	assert.Contains(t, out, "trace")
	assert.Contains(t, out, "validate")
	assert.Contains(t, out, "catalog")
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "develop", "F", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootCommand_ValidFormats(t *testing.T) {
	for _, format := range ValidFormats {
		_, err := execute(t, "develop", "F", "--format", format)
		assert.NoError(t, err, "format %q", format)
	}
}
