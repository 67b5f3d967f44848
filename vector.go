package vantage

import "math"

// 3-vector operations over the x, y, z components of a Vec4. The fourth
// component is ignored on input; Cross and Normalize write 0 into it, since
// their results are directions.

// Dot returns a·b over the first three components.
func Dot(a, b *Vec4) float32 {
	return a.data[0]*b.data[0] + a.data[1]*b.data[1] + a.data[2]*b.data[2]
}

// Norm returns the Euclidean length of the first three components.
func Norm(v *Vec4) float32 {
	x, y, z := float64(v.data[0]), float64(v.data[1]), float64(v.data[2])
	return float32(math.Sqrt(x*x + y*y + z*z))
}

// Cross returns a×b as a fresh direction vector (w = 0).
func Cross(a, b *Vec4) *Vec4 {
	out := NewVec4(0, 0, 0, 0)
	CrossInto(a, b, out)
	return out
}

// CrossInto writes a×b into out. out may alias a or b; the operands are
// read into locals before anything is written.
func CrossInto(a, b, out *Vec4) {
	ax, ay, az := a.data[0], a.data[1], a.data[2]
	bx, by, bz := b.data[0], b.data[1], b.data[2]
	out.data[0] = ay*bz - az*by
	out.data[1] = az*bx - ax*bz
	out.data[2] = ax*by - ay*bx
	out.data[3] = 0
}

// Normalize returns v scaled to unit length as a fresh direction vector
// (w = 0). Returns ErrDegenerateAxis for the zero vector.
func Normalize(v *Vec4) (*Vec4, error) {
	out := NewVec4(0, 0, 0, 0)
	if err := NormalizeInto(v, out); err != nil {
		return nil, err
	}
	return out, nil
}

// NormalizeInto writes v scaled to unit length into out (w = 0). out may
// alias v. Returns ErrDegenerateAxis for the zero vector, leaving out
// untouched.
func NormalizeInto(v, out *Vec4) error {
	n := Norm(v)
	if n == 0 {
		return ErrDegenerateAxis
	}
	inv := 1 / n
	out.data[0] = v.data[0] * inv
	out.data[1] = v.data[1] * inv
	out.data[2] = v.data[2] * inv
	out.data[3] = 0
	return nil
}
