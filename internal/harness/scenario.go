package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/curvelab/lsys/internal/preset"
	"github.com/curvelab/lsys/internal/rewrite"
)

// Scenario defines one conformance scenario: a curve definition plus the
// expectations to evaluate against its output.
type Scenario struct {
	// Name uniquely identifies the scenario; golden files use it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Axiom is the starting string. Repeat optionally multiplies it.
	Axiom  string `yaml:"axiom"`
	Repeat int    `yaml:"repeat,omitempty"`

	// Rules is the ordered substitution rule list.
	Rules []RuleSpec `yaml:"rules,omitempty"`

	// Iterations is the number of rewrite generations.
	Iterations int `yaml:"iterations"`

	// Skipped extends the alphabet's skip set.
	Skipped string `yaml:"skipped,omitempty"`

	// Turtle overrides turtle parameters; zero values mean defaults.
	Turtle preset.Turtle `yaml:"turtle,omitempty"`

	// Expect holds the scenario's expectations.
	Expect Expect `yaml:"expect,omitempty"`
}

// RuleSpec is the YAML form of one substitution rule.
type RuleSpec struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Expect declares the assertions evaluated after interpretation.
// Zero-valued fields are not evaluated; PathCount is a pointer so an
// explicit zero ("this axiom draws nothing") remains expressible.
type Expect struct {
	// Development is the exact expected development string.
	Development string `yaml:"development,omitempty"`

	// DevelopmentLength is the expected length in runes.
	DevelopmentLength int `yaml:"development_length,omitempty"`

	// PathCount is the expected number of emitted paths.
	PathCount *int `yaml:"path_count,omitempty"`

	// Dimension is the expected drawing dimension (2 or 3).
	Dimension int `yaml:"dimension,omitempty"`
}

// Definition converts the scenario to a curve definition, NFC-normalized.
func (s *Scenario) Definition() preset.Definition {
	rules := make([]rewrite.Rule, len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = rewrite.Rule{Pattern: r.Pattern, Replacement: r.Replacement}
	}
	def := preset.Definition{
		Name:       s.Name,
		Axiom:      s.Axiom,
		Repeat:     s.Repeat,
		Rules:      rules,
		Iterations: s.Iterations,
		Skipped:    s.Skipped,
		Turtle:     s.Turtle,
	}
	return def.Normalized()
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if scenario.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if scenario.Axiom == "" {
		return nil, fmt.Errorf("scenario %s: axiom is required", path)
	}
	return &scenario, nil
}
