// Package preset defines curve definitions: the named bundle of axiom,
// rules, iteration count and turtle parameters that the CLI, the CUE
// loader, the catalog store and the test harness all exchange.
//
// Definitions are plain values. Symbol input (axioms, rule patterns and
// replacements, skip sets) is NFC-normalized on ingestion so symbols such
// as the 3D lift arrows compare equal regardless of how the source file
// composed them. Validation is collect-all with stable error codes.
package preset

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/curvelab/lsys/internal/palette"
	"github.com/curvelab/lsys/internal/rewrite"
	"github.com/curvelab/lsys/internal/turtle"
)

// Turtle holds the serializable turtle parameters of a definition.
// Zero values mean "use the default" (resolved by Params); this lets CUE
// and YAML sources specify only what they care about.
type Turtle struct {
	Step     float64 `yaml:"step,omitempty" json:"step,omitempty"`
	Angle    float64 `yaml:"angle,omitempty" json:"angle,omitempty"`
	Angle2   float64 `yaml:"angle2,omitempty" json:"angle2,omitempty"`
	Start    float64 `yaml:"start,omitempty" json:"start,omitempty"`
	Coeff    float64 `yaml:"coeff,omitempty" json:"coeff,omitempty"`
	Delta    float64 `yaml:"delta,omitempty" json:"delta,omitempty"`
	Colors   int     `yaml:"colors,omitempty" json:"colors,omitempty"`
	Colormap string  `yaml:"colormap,omitempty" json:"colormap,omitempty"`
}

// Definition is one complete curve definition.
type Definition struct {
	Name       string         `yaml:"name" json:"name"`
	Axiom      string         `yaml:"axiom" json:"axiom"`
	Repeat     int            `yaml:"repeat,omitempty" json:"repeat,omitempty"`
	Rules      []rewrite.Rule `yaml:"rules,omitempty" json:"rules,omitempty"`
	Iterations int            `yaml:"iterations" json:"iterations"`
	Skipped    string         `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Turtle     Turtle         `yaml:"turtle,omitempty" json:"turtle,omitempty"`
}

// Normalize returns s in Unicode NFC form.
// Applied to every symbol string on ingestion; different front ends
// compose characters like the lift arrows differently.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Normalized returns a copy of d with all symbol strings NFC-normalized.
func (d Definition) Normalized() Definition {
	d.Axiom = Normalize(d.Axiom)
	d.Skipped = Normalize(d.Skipped)
	rules := make([]rewrite.Rule, len(d.Rules))
	for i, r := range d.Rules {
		rules[i] = rewrite.Rule{
			Pattern:     Normalize(r.Pattern),
			Replacement: Normalize(r.Replacement),
		}
	}
	d.Rules = rules
	return d
}

// DevelopedAxiom returns the axiom repeated Repeat times (minimum once).
func (d Definition) DevelopedAxiom() string {
	repeat := d.Repeat
	if repeat < 1 {
		repeat = 1
	}
	return strings.Repeat(d.Axiom, repeat)
}

// Params resolves the definition's turtle parameters, filling defaults for
// zero values and resolving the colormap name to a lookup function.
func (d Definition) Params() (turtle.Params, error) {
	p := turtle.DefaultParams()
	t := d.Turtle
	if t.Step != 0 {
		p.Step = t.Step
	}
	if t.Angle != 0 {
		p.Angle = t.Angle
	}
	if t.Angle2 != 0 {
		p.Angle2 = t.Angle2
	}
	p.AngleInit = t.Start
	if t.Coeff != 0 {
		p.Coeff = t.Coeff
	}
	if t.Delta != 0 {
		p.Delta = t.Delta
	}
	if t.Colors != 0 {
		p.ColorCount = t.Colors
	}
	if t.Colormap != "" {
		fn, err := palette.Lookup(t.Colormap)
		if err != nil {
			return turtle.Params{}, err
		}
		p.ColorAt = fn
	}
	return p, nil
}

// ParseRules parses the compact rule-string syntax:
//
//	"F:F+F-F-F+F; B:BB"
//
// Rules are separated by semicolons; each rule is pattern, colon,
// replacement. Whitespace around either side is trimmed. The replacement
// may be empty; the pattern may not.
func ParseRules(s string) ([]rewrite.Rule, error) {
	s = strings.Trim(s, "; ")
	if s == "" {
		return nil, nil
	}

	var rules []rewrite.Rule
	for _, item := range strings.Split(s, ";") {
		if !strings.Contains(item, ":") {
			return nil, fmt.Errorf("rule %q must contain a colon separating pattern and replacement", strings.TrimSpace(item))
		}
		parts := strings.Split(item, ":")
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("rule %q must be written as pattern:replacement with a non-empty pattern", strings.TrimSpace(item))
		}
		rules = append(rules, rewrite.Rule{
			Pattern:     strings.TrimSpace(parts[0]),
			Replacement: strings.TrimSpace(parts[1]),
		})
	}
	return rules, nil
}

// FormatRules is the inverse of ParseRules.
func FormatRules(rules []rewrite.Rule) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = r.Pattern + ":" + r.Replacement
	}
	return strings.Join(parts, "; ")
}
