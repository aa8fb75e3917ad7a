package turtle

import (
	"fmt"
	"math"

	"github.com/curvelab/lsys/internal/alphabet"
	"github.com/curvelab/lsys/internal/palette"
)

// Point is a position in drawing space. Z stays zero until a 3D symbol
// fires; the Drawing's Dimension field tells renderers whether to use it.
type Point struct {
	X, Y, Z float64
}

// Path is one contiguous, single-colored polyline.
// Paths always contain at least two points: a path that never grew past its
// seed point is discarded, never emitted.
type Path struct {
	Points []Point
	Color  palette.Color
}

// Drawing is the interpreter's sole output: the emitted paths in order,
// plus the dimensionality observed while drawing (2 until a 3D symbol
// fires, 3 afterwards).
type Drawing struct {
	Paths     []Path
	Dimension int
}

// Params are the turtle parameters for one interpretation pass.
// Pass by value; the interpreter never retains or mutates the caller's copy.
type Params struct {
	// Step is the base step length.
	Step float64
	// Angle is the primary rotation angle in degrees ("+" "-").
	Angle float64
	// AngleInit is the starting heading in degrees.
	AngleInit float64
	// Coeff scales the step for scaled moves and the "*" "/" symbols.
	Coeff float64
	// Angle2 is the secondary rotation angle in degrees (">" "<").
	Angle2 float64
	// Delta is the fixed step increment for the delta symbols.
	Delta float64
	// ColorCount is the number of colors cycled through; must be >= 1.
	ColorCount int
	// ColorAt maps a zero-based color index to a color.
	// Nil defaults to the Set1 palette.
	ColorAt palette.Func
}

// DefaultParams returns the standard turtle parameters.
func DefaultParams() Params {
	return Params{
		Step:       10.0,
		Angle:      90.0,
		AngleInit:  0.0,
		Coeff:      1.1,
		Angle2:     10.0,
		Delta:      0.1,
		ColorCount: 3,
		ColorAt:    palette.Default(),
	}
}

// state is the full mutable turtle state during one pass.
type state struct {
	pos        Point
	heading    float64 // degrees; consulted only before 3D activation
	step       float64
	sign       float64 // rotation direction, +1 or -1
	color      palette.Color
	colorIndex int
	frame      Frame
	active3D   bool // a 3D axis rotation has fired
	dimension  int
}

// snapshot is a branch-stack entry. It holds exactly the fields a branch
// close restores: position, heading, color, step length, rotation frame.
// The color index and direction sign deliberately survive across branches.
type snapshot struct {
	pos     Point
	heading float64
	color   palette.Color
	step    float64
	frame   Frame
}

// Interpreter walks an expanded symbol string and emits a Drawing.
// It holds only the symbol classification; every Interpret call builds its
// own state and stack, so one Interpreter is safe to share across
// goroutines as long as calls do not share Params mutably.
type Interpreter struct {
	class *alphabet.Classifier
}

// New creates an Interpreter over the given classification.
func New(class *alphabet.Classifier) *Interpreter {
	return &Interpreter{class: class}
}

// Interpret processes the expanded string symbol by symbol, strictly left
// to right with no lookahead, and returns the resulting paths in emission
// order. Unknown symbols are ignored; a branch close without a matching
// open is a no-op. The only detected contract violation is a non-positive
// color count.
func (it *Interpreter) Interpret(dev string, p Params) (Drawing, error) {
	if p.ColorCount < 1 {
		return Drawing{}, fmt.Errorf("turtle: color count must be >= 1, got %d", p.ColorCount)
	}
	colorAt := p.ColorAt
	if colorAt == nil {
		colorAt = palette.Default()
	}

	st := state{
		heading:   p.AngleInit,
		step:      p.Step,
		sign:      1,
		color:     colorAt(0),
		frame:     NewFrame(),
		dimension: 2,
	}

	var out []Path
	var stack []snapshot
	current := []Point{st.pos}

	for _, sym := range dev {
		role := it.class.RoleOf(sym)

		// Per-symbol effects set these flags; the common tail below
		// turns them into path bookkeeping.
		var (
			moved     bool // position advanced with the pen down
			roundTrip bool // emit one step forward and back
			closePath bool // pen lifted: flush current path
			newColor  bool // advance the color after the flush
		)

		switch role {
		case alphabet.RoleNone, alphabet.RoleSkip, alphabet.RoleReserved:
			continue

		case alphabet.RoleColor:
			closePath = true
			newColor = true

		case alphabet.RoleMove:
			st.pos = it.advance(&st, st.step)
			moved = true

		case alphabet.RoleMoveScaled:
			st.pos = it.advance(&st, st.step*p.Coeff)
			moved = true

		case alphabet.RoleMoveAngleReset:
			st.heading = p.AngleInit
			st.pos = it.advance(&st, st.step)
			moved = true

		case alphabet.RoleMoveLifted:
			// The turtle jumps one step: the old path ends where it
			// was and the new one starts at the new position.
			st.pos = it.advance(&st, st.step)
			closePath = true

		case alphabet.RoleMoveUp3D:
			st.dimension = 3
			st.pos.Z += st.step
			moved = true

		case alphabet.RoleMoveDown3D:
			st.dimension = 3
			st.pos.Z -= st.step
			moved = true

		case alphabet.RoleTurnPlus:
			it.turn(&st, p.Angle, +1)
		case alphabet.RoleTurnMinus:
			it.turn(&st, p.Angle, -1)
		case alphabet.RoleTurn2Plus:
			it.turn(&st, p.Angle2, +1)
		case alphabet.RoleTurn2Minus:
			it.turn(&st, p.Angle2, -1)

		case alphabet.RoleAxis1Plus:
			it.axisRotate(&st, p, +1, AxisForward)
		case alphabet.RoleAxis1Minus:
			it.axisRotate(&st, p, -1, AxisForward)
		case alphabet.RoleAxis2Plus:
			it.axisRotate(&st, p, +1, AxisLateral)
		case alphabet.RoleAxis2Minus:
			it.axisRotate(&st, p, -1, AxisLateral)

		case alphabet.RoleScaleUp:
			st.step *= p.Coeff
		case alphabet.RoleScaleDown:
			st.step /= p.Coeff

		case alphabet.RoleDeltaAdd:
			st.step += p.Delta
		case alphabet.RoleDeltaSub:
			st.step -= p.Delta

		case alphabet.RoleBranchOpen:
			stack = append(stack, snapshot{
				pos:     st.pos,
				heading: st.heading,
				color:   st.color,
				step:    st.step,
				frame:   st.frame,
			})

		case alphabet.RoleBranchClose:
			if len(stack) == 0 {
				// Unbalanced close: defined as a no-op.
				continue
			}
			saved := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			st.pos = saved.pos
			st.heading = saved.heading
			st.color = saved.color
			st.step = saved.step
			st.frame = saved.frame
			// The pen lifted because the position jumped back.
			closePath = true

		case alphabet.RoleRoundTrip:
			roundTrip = true

		case alphabet.RoleReverse:
			st.sign = -st.sign
		}

		switch {
		case closePath:
			if len(current) > 1 {
				out = append(out, Path{Points: current, Color: st.color})
			}
			if newColor {
				st.colorIndex = (st.colorIndex + 1) % p.ColorCount
				st.color = colorAt(st.colorIndex)
			}
			current = []Point{st.pos}
		case moved:
			current = append(current, st.pos)
		case roundTrip:
			ahead := it.advance(&st, st.step)
			current = append(current, ahead, st.pos)
		}
	}

	if len(current) > 1 {
		out = append(out, Path{Points: current, Color: st.color})
	}

	return Drawing{Paths: out, Dimension: st.dimension}, nil
}

// advance returns the position one step ahead of the current state without
// modifying it. Before 3D activation the step follows the 2D heading, with
// exact axis-aligned shortcuts for headings 0, 90, 180 and 270 degrees so
// rectilinear curves carry no floating-point drift. After activation the
// step follows the frame's forward vector and the heading is not consulted.
func (it *Interpreter) advance(st *state, step float64) Point {
	if st.active3D {
		f := st.frame.Forward
		return Point{
			X: st.pos.X + step*f.X,
			Y: st.pos.Y + step*f.Y,
			Z: st.pos.Z + step*f.Z,
		}
	}

	switch st.heading {
	case 0:
		return Point{X: st.pos.X + step, Y: st.pos.Y, Z: st.pos.Z}
	case 90:
		return Point{X: st.pos.X, Y: st.pos.Y + step, Z: st.pos.Z}
	case 180:
		return Point{X: st.pos.X - step, Y: st.pos.Y, Z: st.pos.Z}
	case 270:
		return Point{X: st.pos.X, Y: st.pos.Y - step, Z: st.pos.Z}
	}
	rad := st.heading * math.Pi / 180
	return Point{
		X: st.pos.X + step*math.Cos(rad),
		Y: st.pos.Y + step*math.Sin(rad),
		Z: st.pos.Z,
	}
}

// turn handles the planar rotation symbols (+ - > <).
// Before 3D activation they adjust the heading modulo 360; afterwards they
// rotate the frame about its vertical axis by the same angle.
func (it *Interpreter) turn(st *state, angle, polarity float64) {
	if st.active3D {
		st.frame = st.frame.Rotate(AxisVertical, polarity*angle*st.sign)
		return
	}
	st.heading = mod360(st.heading + polarity*angle*st.sign)
}

// axisRotate handles the 3D axis-rotation symbols. The first occurrence
// activates 3D mode: the frame is seeded by rotating the initial forward
// and lateral vectors about the vertical axis by the current heading, then
// the requested rotation applies. Later occurrences only rotate. The
// primary angle is always used, scaled by the symbol polarity and the
// current direction sign.
func (it *Interpreter) axisRotate(st *state, p Params, polarity float64, axis Axis) {
	if !st.active3D {
		st.active3D = true
		st.dimension = 3
		st.frame = st.frame.Rotate(AxisVertical, st.heading)
	}
	st.frame = st.frame.Rotate(axis, polarity*p.Angle*st.sign)
}

// mod360 wraps an angle into [0, 360).
func mod360(a float64) float64 {
	m := math.Mod(a, 360)
	if m < 0 {
		m += 360
	}
	return m
}
