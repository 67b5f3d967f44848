package vantage

import (
	"fmt"
	"math"
)

// Axis selects one of the three coordinate axes. It is a closed set; every
// switch over it in this package is exhaustive.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "X", "Y", or "Z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Rotation builders. All angles are in radians with no domain restriction,
// and all matrices are the standard right-handed elemental rotations acting
// on column vectors under left-multiplication.

// RotationX returns the elemental rotation about the X axis.
func RotationX(angle float32) *Mat4 {
	out := NewMat4()
	RotationXInto(angle, out)
	return out
}

// RotationXInto overwrites out with the elemental rotation about X.
func RotationXInto(angle float32, out *Mat4) {
	s, c := sincos(angle)
	IdentityInto(out)
	d := out.data
	d[5], d[9] = c, -s
	d[6], d[10] = s, c
}

// RotationY returns the elemental rotation about the Y axis.
func RotationY(angle float32) *Mat4 {
	out := NewMat4()
	RotationYInto(angle, out)
	return out
}

// RotationYInto overwrites out with the elemental rotation about Y.
func RotationYInto(angle float32, out *Mat4) {
	s, c := sincos(angle)
	IdentityInto(out)
	d := out.data
	d[0], d[8] = c, s
	d[2], d[10] = -s, c
}

// RotationZ returns the elemental rotation about the Z axis.
func RotationZ(angle float32) *Mat4 {
	out := NewMat4()
	RotationZInto(angle, out)
	return out
}

// RotationZInto overwrites out with the elemental rotation about Z.
func RotationZInto(angle float32, out *Mat4) {
	s, c := sincos(angle)
	IdentityInto(out)
	d := out.data
	d[0], d[4] = c, -s
	d[1], d[5] = s, c
}

// Rotation returns the elemental rotation about the given axis.
func Rotation(axis Axis, angle float32) *Mat4 {
	out := NewMat4()
	RotationInto(axis, angle, out)
	return out
}

// RotationInto overwrites out with the elemental rotation about the given
// axis. Axis is a closed set; a value outside it is a programmer error and
// panics rather than leaving out silently untouched.
func RotationInto(axis Axis, angle float32, out *Mat4) {
	switch axis {
	case AxisX:
		RotationXInto(angle, out)
	case AxisY:
		RotationYInto(angle, out)
	case AxisZ:
		RotationZInto(angle, out)
	default:
		panic(fmt.Sprintf("vantage: invalid axis %v", axis))
	}
}

// RotationAboutAxis returns the rotation of angle radians about an arbitrary
// axis as a fresh matrix. Returns ErrDegenerateAxis for a zero-length axis.
func RotationAboutAxis(angle float32, axis *Vec4) (*Mat4, error) {
	out := NewMat4()
	if err := RotationAboutAxisInto(angle, axis, out); err != nil {
		return nil, err
	}
	return out, nil
}

// yzDegenerateEps bounds the YZ-projection norm below which the axis is
// treated as lying on the X axis and the X-realignment is skipped.
const yzDegenerateEps = 1e-9

// RotationAboutAxisInto writes the rotation of angle radians about axis into
// out. The axis is normalized, realigned onto Z by an X rotation (into the
// XZ plane) followed by a Y rotation, rotated about Z by angle, and the
// realignment is undone:
//
//	out = Rx⁻¹ · Ry⁻¹ · Rz(angle) · Ry · Rx
//
// The inverses are pure-rotation transposes, formed by negating the sin
// off-diagonal pair instead of re-deriving full matrices. An axis on the X
// axis has a degenerate YZ projection; the X-realignment is skipped for it,
// and the acos arguments are clamped so a nonzero axis never produces NaN.
// Returns ErrDegenerateAxis for a zero-length axis, leaving out untouched.
func RotationAboutAxisInto(angle float32, axis *Vec4, out *Mat4) error {
	unit := NewVec4(0, 0, 0, 0)
	if err := NormalizeInto(axis, unit); err != nil {
		return fmt.Errorf("RotationAboutAxis: %w", err)
	}
	x := float64(unit.data[0])
	y := float64(unit.data[1])
	z := float64(unit.data[2])

	// Angle of the X rotation bringing the axis into the XZ plane: the
	// angle between the axis's YZ projection and the Z unit vector.
	nyz := math.Hypot(y, z)
	var ax float64
	if nyz > yzDegenerateEps {
		ax = math.Acos(clamp1(z / nyz))
		if y < 0 {
			ax = -ax
		}
	}

	// Angle of the Y rotation aligning the X-rotated axis (x, 0, nyz) with
	// Z: acos of its dot product with the Z unit vector.
	ay := math.Acos(clamp1(nyz))
	if x > 0 {
		ay = -ay
	}

	rx := RotationX(float32(ax))
	ry := RotationY(float32(ay))

	m := Mul4(ry, rx)
	m = Mul4(RotationZ(angle), m)
	ry.data[2], ry.data[8] = -ry.data[2], -ry.data[8]
	m = Mul4(ry, m)
	rx.data[6], rx.data[9] = -rx.data[6], -rx.data[9]
	mulColumns(rx.data, m.data, out.data, 4)
	return nil
}

// sincos computes sin and cos of a float32 angle through float64 math.
func sincos(angle float32) (s, c float32) {
	s64, c64 := math.Sincos(float64(angle))
	return float32(s64), float32(c64)
}

// clamp1 clamps v to [-1, 1] so float rounding can't push an acos argument
// out of domain.
func clamp1(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
