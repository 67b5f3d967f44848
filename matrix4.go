package vantage

import "fmt"

// The fixed-shape matrix family. Mat4, Batch, and Vec4 are distinct types on
// purpose: the rotation builders, multiply kernels, and Camera accept exactly
// the shape they need, so a structurally similar matrix of the wrong rank is
// a compile error rather than a runtime surprise. Create them through their
// constructors; the zero value has no storage and is not usable.

// Mat4 is a 4×4 homogeneous transform matrix.
type Mat4 struct {
	Mat
}

// NewMat4 creates a zeroed 4×4 matrix.
func NewMat4() *Mat4 {
	return &Mat4{Mat{rows: 4, cols: 4, data: make([]float32, 16)}}
}

// NewMat4View creates a 4×4 view over buf. Returns ErrDimensionMismatch
// unless len(buf) == 16.
func NewMat4View(buf []float32) (*Mat4, error) {
	if len(buf) != 16 {
		return nil, fmt.Errorf("NewMat4View: buffer length %d: %w", len(buf), ErrDimensionMismatch)
	}
	return &Mat4{Mat{rows: 4, cols: 4, data: buf}}, nil
}

// Identity4 creates a fresh 4×4 identity matrix.
func Identity4() *Mat4 {
	m := NewMat4()
	IdentityInto(m)
	return m
}

// IdentityInto overwrites out with the identity matrix.
func IdentityInto(out *Mat4) {
	d := out.data
	for i := range d {
		d[i] = 0
	}
	d[0], d[5], d[10], d[15] = 1, 1, 1, 1
}

// Clone returns a deep copy.
func (m *Mat4) Clone() *Mat4 {
	c := NewMat4()
	copy(c.data, m.data)
	return c
}

// Batch is a 4×N matrix whose columns are homogeneous points or directions:
// the fourth component is 1 for points and 0 for free vectors. It is the
// bulk currency of the package — MulBatchInto transforms all columns,
// Camera.Capture projects them to pixels, both reusable in place.
type Batch struct {
	Mat
}

// NewBatch creates a zeroed 4×n batch. Returns ErrDimensionMismatch if
// n < 1.
func NewBatch(n int) (*Batch, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewBatch(%d): %w", n, ErrDimensionMismatch)
	}
	return &Batch{Mat{rows: 4, cols: n, data: make([]float32, 4*n)}}, nil
}

// NewBatchView creates a 4×n view over buf. Returns ErrDimensionMismatch
// unless len(buf) == 4*n. The view aliases buf; passing the same buffer to
// both the input and output of a batch transform is the supported in-place
// path.
func NewBatchView(n int, buf []float32) (*Batch, error) {
	if n < 1 || len(buf) != 4*n {
		return nil, fmt.Errorf("NewBatchView(%d): buffer length %d: %w", n, len(buf), ErrDimensionMismatch)
	}
	return &Batch{Mat{rows: 4, cols: n, data: buf}}, nil
}

// SetPoint assigns the homogeneous column col. Returns ErrOutOfRange for a
// bad column index.
func (b *Batch) SetPoint(col int, x, y, z, w float32) error {
	if col < 0 || col >= b.cols {
		return fmt.Errorf("SetPoint(%d) on 4×%d: %w", col, b.cols, ErrOutOfRange)
	}
	d := b.data[col*4:]
	d[0], d[1], d[2], d[3] = x, y, z, w
	return nil
}

// Point returns the homogeneous column col. Returns ErrOutOfRange for a bad
// column index.
func (b *Batch) Point(col int) (x, y, z, w float32, err error) {
	if col < 0 || col >= b.cols {
		return 0, 0, 0, 0, fmt.Errorf("Point(%d) on 4×%d: %w", col, b.cols, ErrOutOfRange)
	}
	d := b.data[col*4:]
	return d[0], d[1], d[2], d[3], nil
}

// Clone returns a deep copy.
func (b *Batch) Clone() *Batch {
	c, _ := NewBatch(b.cols)
	copy(c.data, b.data)
	return c
}

// Vec4 is a single homogeneous point or direction (a 4×1 matrix).
type Vec4 struct {
	Mat
}

// NewVec4 creates a vector with the given components.
func NewVec4(x, y, z, w float32) *Vec4 {
	return &Vec4{Mat{rows: 4, cols: 1, data: []float32{x, y, z, w}}}
}

// NewVec4View creates a 4×1 view over buf. Returns ErrDimensionMismatch
// unless len(buf) == 4.
func NewVec4View(buf []float32) (*Vec4, error) {
	if len(buf) != 4 {
		return nil, fmt.Errorf("NewVec4View: buffer length %d: %w", len(buf), ErrDimensionMismatch)
	}
	return &Vec4{Mat{rows: 4, cols: 1, data: buf}}, nil
}

// X returns the first component.
func (v *Vec4) X() float32 { return v.data[0] }

// Y returns the second component.
func (v *Vec4) Y() float32 { return v.data[1] }

// Z returns the third component.
func (v *Vec4) Z() float32 { return v.data[2] }

// W returns the homogeneous component: 1 for points, 0 for directions.
func (v *Vec4) W() float32 { return v.data[3] }

// SetVec assigns all four components at once.
func (v *Vec4) SetVec(x, y, z, w float32) {
	v.data[0], v.data[1], v.data[2], v.data[3] = x, y, z, w
}

// Clone returns a deep copy.
func (v *Vec4) Clone() *Vec4 {
	return NewVec4(v.data[0], v.data[1], v.data[2], v.data[3])
}
