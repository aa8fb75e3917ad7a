package preset

import (
	"fmt"
	"strings"

	"github.com/curvelab/lsys/internal/palette"
)

// Validation error codes (E200-E299).
const (
	ErrNameEmpty          = "E200" // definition name is required
	ErrAxiomEmpty         = "E201" // axiom is required
	ErrIterationsNegative = "E202" // iteration count must be >= 0
	ErrRulePatternEmpty   = "E203" // rule pattern must be non-empty
	ErrUnknownColormap    = "E204" // colormap name not recognized
	ErrColorsNegative     = "E205" // color count must be >= 1 when set
	ErrRepeatNegative     = "E206" // axiom repeat must be >= 1 when set
	ErrStepNegative       = "E207" // step length must be > 0 when set
)

// ValidationError is a single schema violation in a definition.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a definition against the schema rules.
// Returns all errors found (does not fail-fast); an empty slice means the
// definition is valid.
func Validate(d Definition) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "name is required and must be non-empty",
			Code:    ErrNameEmpty,
		})
	}
	if d.Axiom == "" {
		errs = append(errs, ValidationError{
			Field:   "axiom",
			Message: "axiom is required and must be non-empty",
			Code:    ErrAxiomEmpty,
		})
	}
	if d.Iterations < 0 {
		errs = append(errs, ValidationError{
			Field:   "iterations",
			Message: fmt.Sprintf("iterations must be >= 0, got %d", d.Iterations),
			Code:    ErrIterationsNegative,
		})
	}
	if d.Repeat < 0 {
		errs = append(errs, ValidationError{
			Field:   "repeat",
			Message: fmt.Sprintf("repeat must be >= 1 when set, got %d", d.Repeat),
			Code:    ErrRepeatNegative,
		})
	}

	for i, rule := range d.Rules {
		if rule.Pattern == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("rules[%d].pattern", i),
				Message: "rule pattern must be non-empty",
				Code:    ErrRulePatternEmpty,
			})
		}
	}

	if d.Turtle.Colormap != "" {
		if _, ok := palette.Map(d.Turtle.Colormap); !ok {
			errs = append(errs, ValidationError{
				Field:   "turtle.colormap",
				Message: fmt.Sprintf("unknown colormap %q (supported: %v)", d.Turtle.Colormap, palette.Names()),
				Code:    ErrUnknownColormap,
			})
		}
	}
	if d.Turtle.Colors < 0 {
		errs = append(errs, ValidationError{
			Field:   "turtle.colors",
			Message: fmt.Sprintf("colors must be >= 1 when set, got %d", d.Turtle.Colors),
			Code:    ErrColorsNegative,
		})
	}
	if d.Turtle.Step < 0 {
		errs = append(errs, ValidationError{
			Field:   "turtle.step",
			Message: fmt.Sprintf("step must be > 0 when set, got %v", d.Turtle.Step),
			Code:    ErrStepNegative,
		})
	}

	return errs
}
