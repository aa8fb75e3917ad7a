package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvelab/lsys/internal/rewrite"
)

func TestParseRules(t *testing.T) {
	rules, err := ParseRules("F:F+F-F-F+F; B:BB")
	require.NoError(t, err)
	assert.Equal(t, []rewrite.Rule{
		{Pattern: "F", Replacement: "F+F-F-F+F"},
		{Pattern: "B", Replacement: "BB"},
	}, rules)
}

func TestParseRules_EmptyReplacement(t *testing.T) {
	rules, err := ParseRules("F:")
	require.NoError(t, err)
	assert.Equal(t, []rewrite.Rule{{Pattern: "F", Replacement: ""}}, rules)
}

func TestParseRules_TrailingSemicolon(t *testing.T) {
	rules, err := ParseRules("F:FF;")
	require.NoError(t, err)
	require.Len(t, rules, 1)
}

func TestParseRules_Empty(t *testing.T) {
	rules, err := ParseRules("")
	require.NoError(t, err)
	assert.Nil(t, rules)

	rules, err = ParseRules("  ; ")
	require.NoError(t, err)
	assert.Nil(t, rules)
}

func TestParseRules_MissingColon(t *testing.T) {
	_, err := ParseRules("FFF")
	assert.Error(t, err)
}

func TestParseRules_EmptyPattern(t *testing.T) {
	_, err := ParseRules(":FF")
	assert.Error(t, err)
}

func TestFormatRules_RoundTrips(t *testing.T) {
	rules := []rewrite.Rule{
		{Pattern: "F", Replacement: "F+F"},
		{Pattern: "B", Replacement: ""},
	}
	s := FormatRules(rules)
	assert.Equal(t, "F:F+F; B:", s)

	parsed, err := ParseRules(s)
	require.NoError(t, err)
	assert.Equal(t, rules, parsed)
}

func TestNormalized(t *testing.T) {
	// U+0041 U+030A (A + combining ring) normalizes to U+00C5.
	decomposed := "A\u030a"
	composed := "\u00c5"
	d := Definition{
		Name:  "ring",
		Axiom: decomposed,
		Rules: []rewrite.Rule{{Pattern: decomposed, Replacement: decomposed + "F"}},
	}
	n := d.Normalized()
	assert.Equal(t, composed, n.Axiom)
	assert.Equal(t, composed, n.Rules[0].Pattern)
	assert.Equal(t, composed+"F", n.Rules[0].Replacement)

	// The original is untouched.
	assert.Equal(t, decomposed, d.Axiom)
}

func TestDevelopedAxiom(t *testing.T) {
	d := Definition{Axiom: "F+"}
	assert.Equal(t, "F+", d.DevelopedAxiom())

	d.Repeat = 4
	assert.Equal(t, "F+F+F+F+", d.DevelopedAxiom())

	d.Repeat = -1
	assert.Equal(t, "F+", d.DevelopedAxiom())
}

func TestParams_Defaults(t *testing.T) {
	p, err := Definition{}.Params()
	require.NoError(t, err)

	assert.Equal(t, 10.0, p.Step)
	assert.Equal(t, 90.0, p.Angle)
	assert.Equal(t, 0.0, p.AngleInit)
	assert.Equal(t, 1.1, p.Coeff)
	assert.Equal(t, 3, p.ColorCount)
	require.NotNil(t, p.ColorAt)
}

func TestParams_Overrides(t *testing.T) {
	d := Definition{Turtle: Turtle{
		Step:     5,
		Angle:    60,
		Start:    30,
		Colors:   7,
		Colormap: "Dark2",
	}}
	p, err := d.Params()
	require.NoError(t, err)

	assert.Equal(t, 5.0, p.Step)
	assert.Equal(t, 60.0, p.Angle)
	assert.Equal(t, 30.0, p.AngleInit)
	assert.Equal(t, 7, p.ColorCount)
	// Dark2's first color.
	got := p.ColorAt(0)
	assert.Equal(t, uint8(27), got.R)
}

func TestParams_UnknownColormap(t *testing.T) {
	d := Definition{Turtle: Turtle{Colormap: "plasma"}}
	_, err := d.Params()
	assert.Error(t, err)
}
