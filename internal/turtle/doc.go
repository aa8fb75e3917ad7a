// Package turtle interprets an expanded L-system string as turtle-graphics
// drawing commands and emits colored polylines.
//
// ARCHITECTURE:
//
// Single-Pass State Machine:
// Interpret walks the string once, left to right, one symbol at a time with
// no lookahead. Each symbol mutates a single state value (position, heading,
// step length, color, direction sign, rotation frame) and optionally appends
// to the current path. This keeps behavior fully deterministic: the same
// string and parameters always produce the same paths, point for point.
//
// Path Emission:
// A path is flushed whenever the pen lifts - a color change, an explicit
// lifted-pen move, or a branch close - and at end of string. A path that
// never grew past its single seed point is discarded, so the output carries
// a two-point minimum guarantee.
//
// Branching:
// Branch-open symbols push a by-value snapshot (position, heading, color,
// step, frame) onto a stack; branch-close pops and restores it. Closing
// with an empty stack is defined as a no-op, so unbalanced bracket strings
// never fail.
//
// 2D/3D Split:
// Until a 3D axis-rotation symbol fires, orientation is a single heading
// angle and movement uses exact axis-aligned shortcuts for headings that
// are multiples of 90 degrees - rectilinear curves must be exact, not
// approximately right. The first axis-rotation symbol seeds an orthonormal
// (forward, lateral, vertical) frame from the current heading; from then on
// movement follows the forward vector and all rotations are axis-angle
// rotations of the frame, rounded to six decimals for reproducibility.
//
// The interpreter performs no I/O and holds no process-wide state.
// Rendering the resulting Drawing is a consumer concern (internal/render).
package turtle
