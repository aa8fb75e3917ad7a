package turtle

import "math"

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Axis selects which frame vector a rotation spins around.
type Axis int

const (
	// AxisForward rotates lateral and vertical around the forward vector.
	AxisForward Axis = iota
	// AxisLateral rotates forward and vertical around the lateral vector.
	AxisLateral
	// AxisVertical rotates forward and lateral around the vertical vector.
	AxisVertical
)

// Frame is the orthonormal basis tracking turtle orientation once any 3D
// rotation has fired. Frames are value types: copying one (for the branch
// stack) snapshots it, and Rotate returns a new Frame.
//
// Every rotated component is rounded to six decimal places. This suppresses
// floating-point noise so repeated rotation sequences stay reproducible
// across platforms; the axis vector itself is never touched, so it stays
// exactly unit length.
type Frame struct {
	Forward  Vec3
	Lateral  Vec3
	Vertical Vec3
}

// NewFrame returns the initial frame aligned with the world axes.
func NewFrame() Frame {
	return Frame{
		Forward:  Vec3{X: 1},
		Lateral:  Vec3{Y: 1},
		Vertical: Vec3{Z: 1},
	}
}

// Rotate returns the frame rotated by angle degrees (signed) about the
// selected axis vector. The axis vector is left exactly as it was; the two
// remaining vectors are rotated with the axis-angle (Rodrigues) formula and
// rounded to six decimals.
func (f Frame) Rotate(axis Axis, angle float64) Frame {
	switch axis {
	case AxisForward:
		f.Lateral = rotateAbout(f.Lateral, f.Forward, angle)
		f.Vertical = rotateAbout(f.Vertical, f.Forward, angle)
	case AxisLateral:
		f.Forward = rotateAbout(f.Forward, f.Lateral, angle)
		f.Vertical = rotateAbout(f.Vertical, f.Lateral, angle)
	case AxisVertical:
		f.Forward = rotateAbout(f.Forward, f.Vertical, angle)
		f.Lateral = rotateAbout(f.Lateral, f.Vertical, angle)
	}
	return f
}

// rotateAbout rotates v about the unit axis k by angle degrees using the
// Rodrigues formula:
//
//	v' = v cosθ + (k×v) sinθ + k (k·v)(1-cosθ)
//
// The result is rounded to six decimal places per component.
func rotateAbout(v, k Vec3, angle float64) Vec3 {
	theta := angle * math.Pi / 180
	cos := math.Cos(theta)
	sin := math.Sin(theta)

	cross := Vec3{
		X: k.Y*v.Z - k.Z*v.Y,
		Y: k.Z*v.X - k.X*v.Z,
		Z: k.X*v.Y - k.Y*v.X,
	}
	dot := k.X*v.X + k.Y*v.Y + k.Z*v.Z

	return Vec3{
		X: round6(v.X*cos + cross.X*sin + k.X*dot*(1-cos)),
		Y: round6(v.Y*cos + cross.Y*sin + k.Y*dot*(1-cos)),
		Z: round6(v.Z*cos + cross.Z*sin + k.Z*dot*(1-cos)),
	}
}

// round6 rounds to six decimal places.
func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
