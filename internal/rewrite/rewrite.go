// Package rewrite implements the L-system grammar expansion engine.
//
// A rule set is an ordered list of (pattern, replacement) pairs. One
// generation scans the string left to right: among all rules, the one whose
// pattern occurs at the smallest index at or after the cursor fires (ties
// broken by rule order), exactly one occurrence is replaced, and the cursor
// jumps past the inserted replacement so newly inserted text is never
// rescanned within the same generation. The process is fully deterministic;
// there is no randomness and no concurrency.
package rewrite

import (
	"fmt"
	"strings"
)

// Rule is a single substitution: Pattern may be replaced by Replacement.
// Pattern must be non-empty; Replacement may be empty.
type Rule struct {
	Pattern     string
	Replacement string
}

// EmptyPatternError reports a rule with an empty pattern.
// An empty pattern would match everywhere and loop forever, so Develop
// rejects it before rewriting starts.
type EmptyPatternError struct {
	Index int // position of the offending rule in the caller's list
}

// Error implements the error interface.
func (e *EmptyPatternError) Error() string {
	return fmt.Sprintf("rewrite: rule %d has an empty pattern", e.Index)
}

// ValidateRules checks that every rule pattern is non-empty.
// Returns the first offending rule as an *EmptyPatternError.
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return &EmptyPatternError{Index: i}
		}
	}
	return nil
}

// Develop expands axiom under rules for the given number of generations.
//
// An empty rule list returns the axiom unchanged for any generation count,
// and zero generations return the axiom unchanged for any rule list.
// Rules with empty patterns are rejected up front.
//
// Rewriting can grow the string exponentially (a replacement may contain
// its own pattern, which re-triggers in the next generation); bounding the
// generation count is the caller's responsibility.
func Develop(axiom string, rules []Rule, generations int) (string, error) {
	if err := ValidateRules(rules); err != nil {
		return "", err
	}

	result := axiom
	if len(rules) == 0 {
		return result, nil
	}
	for g := 0; g < generations; g++ {
		result = Generation(result, rules)
	}
	return result, nil
}

// Generation applies exactly one generation of leftmost rewriting.
//
// Precondition: every rule pattern is non-empty (Develop validates; direct
// callers must do the same).
func Generation(source string, rules []Rule) string {
	result := source
	cursor := 0

	for {
		// Leftmost occurrence across all rules wins; the earliest rule
		// in the list breaks ties.
		matchAt := -1
		matchRule := -1
		for i, rule := range rules {
			idx := strings.Index(result[cursor:], rule.Pattern)
			if idx < 0 {
				continue
			}
			at := cursor + idx
			if matchAt < 0 || at < matchAt {
				matchAt = at
				matchRule = i
			}
		}
		if matchAt < 0 {
			return result
		}

		rule := rules[matchRule]
		result = result[:matchAt] + rule.Replacement + result[matchAt+len(rule.Pattern):]

		// Skip past the replacement: inserted text is only rescanned
		// by the next generation, text to its right stays scannable.
		cursor = matchAt + len(rule.Replacement)
	}
}
