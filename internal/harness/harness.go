package harness

import (
	"fmt"

	"github.com/curvelab/lsys/internal/alphabet"
	"github.com/curvelab/lsys/internal/preset"
	"github.com/curvelab/lsys/internal/rewrite"
	"github.com/curvelab/lsys/internal/turtle"
)

// Result is the outcome of one scenario run.
type Result struct {
	// Development is the fully expanded symbol string.
	Development string

	// Drawing is the interpreter's output.
	Drawing turtle.Drawing

	// Passed is true when every expectation held.
	Passed bool

	// Failures lists each failed expectation.
	Failures []error
}

// Run executes a scenario: validate the definition, expand the axiom,
// interpret the expansion, evaluate every expectation. Returns an error
// only when the pipeline itself cannot run; expectation failures land in
// Result.Failures with Passed set to false.
func Run(scenario *Scenario) (*Result, error) {
	def := scenario.Definition()
	if errs := preset.Validate(def); len(errs) > 0 {
		return nil, fmt.Errorf("scenario %s: invalid definition: %v", scenario.Name, errs[0])
	}

	dev, err := rewrite.Develop(def.DevelopedAxiom(), def.Rules, def.Iterations)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	cfg := alphabet.DefaultConfig()
	cfg.Skipped = def.Skipped
	class, err := alphabet.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	params, err := def.Params()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	drawing, err := turtle.New(class).Interpret(dev, params)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := &Result{
		Development: dev,
		Drawing:     drawing,
	}
	result.Failures = evaluate(scenario.Expect, result)
	result.Passed = len(result.Failures) == 0
	return result, nil
}
