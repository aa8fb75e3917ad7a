package harness

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// AssertionError reports one failed scenario expectation.
type AssertionError struct {
	Kind     string // expectation kind for categorization
	Expected string // human-readable expected outcome
	Actual   string // human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "expectation failed: %s\n", e.Kind)
	fmt.Fprintf(&buf, "  expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  actual:   %s", e.Actual)
	return buf.String()
}

// evaluate checks every declared expectation against the run result.
// All failures are collected; evaluation never stops early.
func evaluate(expect Expect, result *Result) []error {
	var failures []error

	if expect.Development != "" && result.Development != expect.Development {
		failures = append(failures, &AssertionError{
			Kind:     "development",
			Expected: clip(expect.Development),
			Actual:   clip(result.Development),
		})
	}

	if expect.DevelopmentLength > 0 {
		if got := utf8.RuneCountInString(result.Development); got != expect.DevelopmentLength {
			failures = append(failures, &AssertionError{
				Kind:     "development_length",
				Expected: fmt.Sprintf("%d symbols", expect.DevelopmentLength),
				Actual:   fmt.Sprintf("%d symbols", got),
			})
		}
	}

	if expect.PathCount != nil {
		if got := len(result.Drawing.Paths); got != *expect.PathCount {
			failures = append(failures, &AssertionError{
				Kind:     "path_count",
				Expected: fmt.Sprintf("%d paths", *expect.PathCount),
				Actual:   fmt.Sprintf("%d paths", got),
			})
		}
	}

	if expect.Dimension != 0 && result.Drawing.Dimension != expect.Dimension {
		failures = append(failures, &AssertionError{
			Kind:     "dimension",
			Expected: fmt.Sprintf("%dD", expect.Dimension),
			Actual:   fmt.Sprintf("%dD", result.Drawing.Dimension),
		})
	}

	return failures
}

// clip shortens long development strings for readable failure output.
func clip(s string) string {
	const max = 80
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + fmt.Sprintf("... (%d symbols)", len(runes))
}
