package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevelop_EmptyRulesIdentity(t *testing.T) {
	got, err := Develop("F+F-F", nil, 5)
	require.NoError(t, err)
	assert.Equal(t, "F+F-F", got)
}

func TestDevelop_ZeroGenerationsIdentity(t *testing.T) {
	rules := []Rule{{Pattern: "F", Replacement: "FF"}}
	got, err := Develop("F+F", rules, 0)
	require.NoError(t, err)
	assert.Equal(t, "F+F", got)
}

func TestDevelop_Koch(t *testing.T) {
	rules := []Rule{{Pattern: "F", Replacement: "F+F-F-F+F"}}

	got, err := Develop("F", rules, 1)
	require.NoError(t, err)
	assert.Equal(t, "F+F-F-F+F", got)

	// Each generation rewrites every F exactly once, so generation 2
	// substitutes the expansion into all five F's of generation 1.
	got, err = Develop("F", rules, 2)
	require.NoError(t, err)
	assert.Equal(t,
		"F+F-F-F+F+F+F-F-F+F-F+F-F-F+F-F+F-F-F+F+F+F-F-F+F", got)
}

func TestDevelop_Algae(t *testing.T) {
	rules := []Rule{
		{Pattern: "A", Replacement: "AB"},
		{Pattern: "B", Replacement: "A"},
	}

	want := []string{"A", "AB", "ABA", "ABAAB", "ABAABABA"}
	for n, expected := range want {
		got, err := Develop("A", rules, n)
		require.NoError(t, err)
		assert.Equal(t, expected, got, "generation %d", n)
	}
}

func TestGeneration_InsertedTextNotRescanned(t *testing.T) {
	// The replacement contains its own pattern; a single generation must
	// rewrite the original occurrence once and stop.
	rules := []Rule{{Pattern: "X", Replacement: "XX"}}
	assert.Equal(t, "XX", Generation("X", rules))
	assert.Equal(t, "XXXX", Generation("XX", rules))
}

func TestGeneration_LeftmostMatchWins(t *testing.T) {
	// Rule order lists "AB" first, but "A" matches earlier in the string,
	// so the smallest match index wins regardless of rule order.
	rules := []Rule{
		{Pattern: "AB", Replacement: "x"},
		{Pattern: "A", Replacement: "y"},
	}
	assert.Equal(t, "yx", Generation("AAB", rules))
}

func TestGeneration_RuleOrderBreaksTies(t *testing.T) {
	// Both patterns match at index 0; the earlier rule in the list fires.
	rules := []Rule{
		{Pattern: "AB", Replacement: "1"},
		{Pattern: "A", Replacement: "2"},
	}
	assert.Equal(t, "1C", Generation("ABC", rules))

	reversed := []Rule{
		{Pattern: "A", Replacement: "2"},
		{Pattern: "AB", Replacement: "1"},
	}
	assert.Equal(t, "2BC", Generation("ABC", reversed))
}

func TestGeneration_EmptyReplacementDeletes(t *testing.T) {
	rules := []Rule{{Pattern: "F", Replacement: ""}}
	assert.Equal(t, "G", Generation("FGF", rules))
}

func TestGeneration_TextRightOfReplacementStillScanned(t *testing.T) {
	rules := []Rule{{Pattern: "A", Replacement: "BB"}}
	assert.Equal(t, "BBxBB", Generation("AxA", rules))
}

func TestGeneration_MultiCharacterPattern(t *testing.T) {
	rules := []Rule{{Pattern: "FG", Replacement: "F+G"}}
	assert.Equal(t, "F+GF+G", Generation("FGFG", rules))
}

func TestDevelop_EmptyPatternRejected(t *testing.T) {
	rules := []Rule{
		{Pattern: "F", Replacement: "FF"},
		{Pattern: "", Replacement: "X"},
	}
	_, err := Develop("F", rules, 1)
	require.Error(t, err)

	var patternErr *EmptyPatternError
	require.ErrorAs(t, err, &patternErr)
	assert.Equal(t, 1, patternErr.Index)
}

func TestValidateRules(t *testing.T) {
	assert.NoError(t, ValidateRules(nil))
	assert.NoError(t, ValidateRules([]Rule{{Pattern: "F", Replacement: ""}}))
	assert.Error(t, ValidateRules([]Rule{{Pattern: "", Replacement: "F"}}))
}
