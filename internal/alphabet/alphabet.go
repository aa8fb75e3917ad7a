// Package alphabet partitions the L-system character alphabet into disjoint
// semantic roles.
//
// The partition is an immutable value: New builds a per-rune role table once
// from the configured character sets and rejects any configuration where a
// character would carry two roles. Classification afterwards is a single map
// lookup, shared by the rewriter's callers and the turtle interpreter.
package alphabet

import (
	"fmt"
	"strings"
)

// Role identifies the semantic role of a single symbol.
type Role int

const (
	// RoleNone marks symbols outside the partition. The interpreter
	// silently ignores them; this is defined behavior, not an error.
	RoleNone Role = iota

	// RoleSkip marks caller-supplied skipped symbols and whitespace.
	RoleSkip

	// RoleReserved marks separator symbols (": ;"). Always skippable.
	RoleReserved

	// RoleColor advances the color index and starts a new path.
	RoleColor

	// RoleMove steps forward with the pen down.
	RoleMove

	// RoleMoveScaled steps forward by step times the scale coefficient.
	RoleMoveScaled

	// RoleMoveAngleReset resets the heading to the initial angle, then
	// steps forward with the pen down.
	RoleMoveAngleReset

	// RoleMoveLifted steps forward with the pen lifted: the current path
	// is closed and a new one starts at the new position.
	RoleMoveLifted

	// RoleMoveUp3D and RoleMoveDown3D step along +z / -z and mark the
	// drawing as three-dimensional.
	RoleMoveUp3D
	RoleMoveDown3D

	// RoleTurnPlus and RoleTurnMinus rotate by the primary angle
	// ("+" / "-"). RoleTurn2Plus and RoleTurn2Minus rotate by the
	// secondary angle (">" / "<").
	RoleTurnPlus
	RoleTurnMinus
	RoleTurn2Plus
	RoleTurn2Minus

	// RoleAxis1Plus / RoleAxis1Minus rotate about the frame's forward
	// axis; RoleAxis2Plus / RoleAxis2Minus about the lateral axis.
	// The first occurrence of any of the four activates 3D mode.
	RoleAxis1Plus
	RoleAxis1Minus
	RoleAxis2Plus
	RoleAxis2Minus

	// RoleScaleUp and RoleScaleDown multiply / divide the step length by
	// the scale coefficient ("*" / "/").
	RoleScaleUp
	RoleScaleDown

	// RoleDeltaAdd and RoleDeltaSub add / subtract the fixed step delta.
	RoleDeltaAdd
	RoleDeltaSub

	// RoleBranchOpen pushes a state snapshot; RoleBranchClose pops one
	// ("[" "(" / "]" ")"). Closing with an empty stack is a no-op.
	RoleBranchOpen
	RoleBranchClose

	// RoleRoundTrip draws one step forward and back without moving the
	// cursor ("|").
	RoleRoundTrip

	// RoleReverse flips the sign applied to rotation angles ("!").
	RoleReverse
)

// Config declares the configurable character sets of the partition.
// Sets are plain strings; every rune in a set carries that set's role.
// The punctuation symbols (+ - > < * / [ ( ] ) | !) are fixed and always
// present, so configured sets must not claim them.
type Config struct {
	Color          string
	Move           string
	MoveScaled     string // defaults to lowercase of Move when empty
	MoveAngleReset string
	MoveLifted     string
	MoveUp3D       string
	MoveDown3D     string
	Axis1Plus      string
	Axis1Minus     string
	Axis2Plus      string
	Axis2Minus     string
	DeltaAdd       string
	DeltaSub       string
	Reserved       string
	Skipped        string // caller-extensible skip set
}

// DefaultConfig returns the standard alphabet.
// The movement letters deliberately omit M and P (3D rotation axes) and
// U, V, W (lifted-pen moves); u and v are the step-delta symbols.
func DefaultConfig() Config {
	return Config{
		Color:          ".",
		Move:           "ABCDEFGHIJKLNOQRST",
		MoveAngleReset: "_",
		MoveLifted:     "UVW",
		MoveUp3D:       "⇧", // ⇧
		MoveDown3D:     "⇩", // ⇩
		Axis1Plus:      "p",
		Axis1Minus:     "m",
		Axis2Plus:      "P",
		Axis2Minus:     "M",
		DeltaAdd:       "u",
		DeltaSub:       "v",
		Reserved:       ":; ",
	}
}

// fixed maps the non-configurable punctuation symbols to their roles.
var fixed = map[rune]Role{
	'+': RoleTurnPlus,
	'-': RoleTurnMinus,
	'>': RoleTurn2Plus,
	'<': RoleTurn2Minus,
	'*': RoleScaleUp,
	'/': RoleScaleDown,
	'[': RoleBranchOpen,
	'(': RoleBranchOpen,
	']': RoleBranchClose,
	')': RoleBranchClose,
	'|': RoleRoundTrip,
	'!': RoleReverse,
}

// Classifier is the immutable rune-to-role table built from a Config.
type Classifier struct {
	roles map[rune]Role
}

// New builds a Classifier from cfg.
// Returns an error if any rune would belong to two roles, including
// collisions with the fixed punctuation symbols.
func New(cfg Config) (*Classifier, error) {
	if cfg.MoveScaled == "" {
		cfg.MoveScaled = strings.ToLower(cfg.Move)
	}

	roles := make(map[rune]Role, len(fixed)+64)
	for r, role := range fixed {
		roles[r] = role
	}

	sets := []struct {
		chars string
		role  Role
	}{
		{cfg.Color, RoleColor},
		{cfg.Move, RoleMove},
		{cfg.MoveScaled, RoleMoveScaled},
		{cfg.MoveAngleReset, RoleMoveAngleReset},
		{cfg.MoveLifted, RoleMoveLifted},
		{cfg.MoveUp3D, RoleMoveUp3D},
		{cfg.MoveDown3D, RoleMoveDown3D},
		{cfg.Axis1Plus, RoleAxis1Plus},
		{cfg.Axis1Minus, RoleAxis1Minus},
		{cfg.Axis2Plus, RoleAxis2Plus},
		{cfg.Axis2Minus, RoleAxis2Minus},
		{cfg.DeltaAdd, RoleDeltaAdd},
		{cfg.DeltaSub, RoleDeltaSub},
		{cfg.Reserved, RoleReserved},
		{cfg.Skipped, RoleSkip},
	}

	for _, set := range sets {
		for _, r := range set.chars {
			if existing, ok := roles[r]; ok {
				// Re-listing a character inside the same role is
				// harmless (e.g. a space in both Reserved and
				// Skipped); two different roles is ambiguous.
				if existing == set.role || bothSkippable(existing, set.role) {
					continue
				}
				return nil, fmt.Errorf("alphabet: symbol %q assigned to two roles (%v and %v)", r, existing, set.role)
			}
			roles[r] = set.role
		}
	}

	return &Classifier{roles: roles}, nil
}

// bothSkippable reports whether both roles are no-op skip roles, in which
// case the overlap has no observable effect.
func bothSkippable(a, b Role) bool {
	skip := func(r Role) bool { return r == RoleSkip || r == RoleReserved }
	return skip(a) && skip(b)
}

// Default returns a Classifier for DefaultConfig.
func Default() *Classifier {
	c, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig is disjoint by construction.
		panic(err)
	}
	return c
}

// RoleOf returns the role of a symbol, RoleNone if it has no role.
func (c *Classifier) RoleOf(r rune) Role {
	return c.roles[r]
}
