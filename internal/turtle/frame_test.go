package turtle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFrame_WorldAligned(t *testing.T) {
	f := NewFrame()
	assert.Equal(t, Vec3{X: 1}, f.Forward)
	assert.Equal(t, Vec3{Y: 1}, f.Lateral)
	assert.Equal(t, Vec3{Z: 1}, f.Vertical)
}

func TestFrame_RotateVertical90(t *testing.T) {
	f := NewFrame().Rotate(AxisVertical, 90)

	// Counterclockwise about +z: forward swings to +y, lateral to -x.
	assert.Equal(t, Vec3{Y: 1}, f.Forward)
	assert.Equal(t, Vec3{X: -1}, f.Lateral)
	// The axis vector is never touched.
	assert.Equal(t, Vec3{Z: 1}, f.Vertical)
}

func TestFrame_RotateLateral90(t *testing.T) {
	f := NewFrame().Rotate(AxisLateral, 90)

	// Pitching about +y sends forward to -z and vertical to +x.
	assert.Equal(t, Vec3{Z: -1}, f.Forward)
	assert.Equal(t, Vec3{Y: 1}, f.Lateral)
	assert.Equal(t, Vec3{X: 1}, f.Vertical)
}

func TestFrame_RotateForward90(t *testing.T) {
	f := NewFrame().Rotate(AxisForward, 90)

	// Rolling about +x leaves forward alone.
	assert.Equal(t, Vec3{X: 1}, f.Forward)
	assert.Equal(t, Vec3{Z: 1}, f.Lateral)
	assert.Equal(t, Vec3{Y: -1}, f.Vertical)
}

func TestFrame_Rotate45Rounded(t *testing.T) {
	f := NewFrame().Rotate(AxisVertical, 45)

	// cos(45°) rounded to six decimal places.
	assert.Equal(t, Vec3{X: 0.707107, Y: 0.707107}, f.Forward)
	assert.Equal(t, Vec3{X: -0.707107, Y: 0.707107}, f.Lateral)
}

func TestFrame_FullTurnIsIdentity(t *testing.T) {
	f := NewFrame().Rotate(AxisVertical, 360)
	assert.Equal(t, NewFrame(), f)

	f = NewFrame()
	for i := 0; i < 4; i++ {
		f = f.Rotate(AxisLateral, 90)
	}
	assert.Equal(t, NewFrame(), f)
}

func TestFrame_NegativeAngle(t *testing.T) {
	f := NewFrame().Rotate(AxisVertical, -90)
	assert.Equal(t, Vec3{Y: -1}, f.Forward)
	assert.Equal(t, Vec3{X: 1}, f.Lateral)
}

func TestFrame_ValueSemantics(t *testing.T) {
	original := NewFrame()
	rotated := original.Rotate(AxisVertical, 90)

	assert.Equal(t, NewFrame(), original, "Rotate must not mutate the receiver")
	assert.NotEqual(t, original, rotated)
}

func TestFrame_StaysOrthonormal(t *testing.T) {
	f := NewFrame()
	angles := []float64{33, -17, 254, 90.5, -120}
	axes := []Axis{AxisForward, AxisVertical, AxisLateral, AxisForward, AxisVertical}
	for i := range angles {
		f = f.Rotate(axes[i], angles[i])
	}

	const tol = 1e-4
	assert.InDelta(t, 1, length(f.Forward), tol)
	assert.InDelta(t, 1, length(f.Lateral), tol)
	assert.InDelta(t, 1, length(f.Vertical), tol)
	assert.InDelta(t, 0, dot(f.Forward, f.Lateral), tol)
	assert.InDelta(t, 0, dot(f.Forward, f.Vertical), tol)
	assert.InDelta(t, 0, dot(f.Lateral, f.Vertical), tol)
}

func length(v Vec3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
