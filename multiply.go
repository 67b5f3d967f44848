package vantage

import "fmt"

// Hand-unrolled 4×4 composition and transform kernels. Each output element
// is a fully unrolled 4-term dot product.
//
// The aliasing contract, enforced everywhere: the left operand must not be
// the same view as the destination (its original values are needed for every
// output column), while the right operand may be — its columns are read into
// locals before the corresponding output column is written, which is what
// makes in-place transforms of a point buffer work. Columns are mutually
// independent, so a caller splitting a batch across goroutines by column
// needs no synchronization.

// mulColumns computes out = a·b column by column for n columns. a holds 16
// elements column-major; b and out hold 4*n. b and out may be the same
// slice.
func mulColumns(a, b, out []float32, n int) {
	a00, a01, a02, a03 := a[0], a[4], a[8], a[12]
	a10, a11, a12, a13 := a[1], a[5], a[9], a[13]
	a20, a21, a22, a23 := a[2], a[6], a[10], a[14]
	a30, a31, a32, a33 := a[3], a[7], a[11], a[15]

	for j := 0; j < n; j++ {
		k := j * 4
		x, y, z, w := b[k], b[k+1], b[k+2], b[k+3]
		out[k+0] = a00*x + a01*y + a02*z + a03*w
		out[k+1] = a10*x + a11*y + a12*z + a13*w
		out[k+2] = a20*x + a21*y + a22*z + a23*w
		out[k+3] = a30*x + a31*y + a32*z + a33*w
	}
}

// Mul4 returns a·b as a fresh matrix.
func Mul4(a, b *Mat4) *Mat4 {
	out := NewMat4()
	mulColumns(a.data, b.data, out.data, 4)
	return out
}

// Mul4Into computes out = a·b. out may be the same view as b (in-place
// right-composition); out being the same view as a returns ErrAliased
// before anything is written.
func Mul4Into(a, b, out *Mat4) error {
	if sameView(a.data, out.data) {
		return fmt.Errorf("Mul4Into: %w", ErrAliased)
	}
	mulColumns(a.data, b.data, out.data, 4)
	return nil
}

// MulBatch returns a·pts as a fresh batch, transforming every column.
func MulBatch(a *Mat4, pts *Batch) *Batch {
	out, _ := NewBatch(pts.cols)
	mulColumns(a.data, pts.data, out.data, pts.cols)
	return out
}

// MulBatchInto transforms every column of pts by a into out. pts and out
// must have the same column count (ErrDimensionMismatch otherwise); out may
// be the same view as pts, transforming the buffer in place; out being the
// same view as a returns ErrAliased. No output is written on failure.
func MulBatchInto(a *Mat4, pts, out *Batch) error {
	if pts.cols != out.cols {
		return fmt.Errorf("MulBatchInto: %d columns into %d: %w",
			pts.cols, out.cols, ErrDimensionMismatch)
	}
	if sameView(a.data, out.data) {
		return fmt.Errorf("MulBatchInto: %w", ErrAliased)
	}
	mulColumns(a.data, pts.data, out.data, pts.cols)
	return nil
}

// MulVec returns a·v as a fresh vector.
func MulVec(a *Mat4, v *Vec4) *Vec4 {
	out := NewVec4(0, 0, 0, 0)
	mulColumns(a.data, v.data, out.data, 1)
	return out
}

// MulVecInto computes out = a·v. out may be the same view as v; out being
// the same view as a returns ErrAliased.
func MulVecInto(a *Mat4, v, out *Vec4) error {
	if sameView(a.data, out.data) {
		return fmt.Errorf("MulVecInto: %w", ErrAliased)
	}
	mulColumns(a.data, v.data, out.data, 1)
	return nil
}

// Transpose4 returns the transpose of a as a fresh matrix.
func Transpose4(a *Mat4) *Mat4 {
	out := NewMat4()
	Transpose4Into(a, out)
	return out
}

// Transpose4Into writes the transpose of a into out. When out is the same
// view as a the six off-diagonal pairs are swapped through locals, so no
// element is read after being overwritten; a distinct out is written
// directly.
func Transpose4Into(a, out *Mat4) {
	ad, od := a.data, out.data
	if sameView(ad, od) {
		ad[1], ad[4] = ad[4], ad[1]
		ad[2], ad[8] = ad[8], ad[2]
		ad[3], ad[12] = ad[12], ad[3]
		ad[6], ad[9] = ad[9], ad[6]
		ad[7], ad[13] = ad[13], ad[7]
		ad[11], ad[14] = ad[14], ad[11]
		return
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			od[j+i*4] = ad[i+j*4]
		}
	}
}
