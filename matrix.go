package vantage

import (
	"fmt"
	"strings"
)

// Mat is a fixed-shape rows×cols matrix of float32 values stored column-major:
// element (i, j) lives at flat index i + j*rows. The shape is fixed for the
// life of the matrix and the backing slice always holds exactly rows*cols
// elements.
//
// A Mat either owns its storage (NewMat) or is a view over a caller-supplied
// slice (NewMatView). Two views over the same slice alias each other. The
// fast kernels treat "same backing array, same offset, same length" as the
// aliasing identity; see Mul4Into for the rules they enforce.
//
// Mat itself is shape-generic. The fixed-shape types Mat4, Batch, and Vec4
// are what the rotation, multiply, and camera operations accept, so a matrix
// of the wrong rank can't reach them.
type Mat struct {
	rows, cols int
	data       []float32
}

// NewMat creates a zeroed rows×cols matrix that owns its storage.
// Returns ErrDimensionMismatch if either dimension is less than 1.
func NewMat(rows, cols int) (*Mat, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewMat(%d, %d): %w", rows, cols, ErrDimensionMismatch)
	}
	return &Mat{rows: rows, cols: cols, data: make([]float32, rows*cols)}, nil
}

// NewMatView creates a rows×cols view over buf without copying. The matrix
// does not own buf: writes through the view are visible to every other
// holder of the slice, and two views over the same slice alias each other.
// Returns ErrDimensionMismatch unless len(buf) == rows*cols.
func NewMatView(rows, cols int, buf []float32) (*Mat, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewMatView(%d, %d): %w", rows, cols, ErrDimensionMismatch)
	}
	if len(buf) != rows*cols {
		return nil, fmt.Errorf("NewMatView(%d, %d): buffer length %d: %w",
			rows, cols, len(buf), ErrDimensionMismatch)
	}
	return &Mat{rows: rows, cols: cols, data: buf}, nil
}

// Rows returns the fixed row count.
func (m *Mat) Rows() int { return m.rows }

// Cols returns the fixed column count.
func (m *Mat) Cols() int { return m.cols }

// Data returns the column-major backing slice. Mutating it mutates the
// matrix; handing it to NewMatView creates an aliasing view.
func (m *Mat) Data() []float32 { return m.data }

// At returns the element at (row, col), or ErrOutOfRange.
func (m *Mat) At(row, col int) (float32, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("At(%d, %d) on %d×%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}
	return m.data[row+col*m.rows], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (m *Mat) Set(row, col int, v float32) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("Set(%d, %d) on %d×%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}
	m.data[row+col*m.rows] = v
	return nil
}

// SetColumn copies vals into column col. Returns ErrOutOfRange for a bad
// column index and ErrDimensionMismatch unless len(vals) equals the row
// count. Nothing is written on failure.
func (m *Mat) SetColumn(col int, vals []float32) error {
	if col < 0 || col >= m.cols {
		return fmt.Errorf("SetColumn(%d) on %d×%d: %w", col, m.rows, m.cols, ErrOutOfRange)
	}
	if len(vals) != m.rows {
		return fmt.Errorf("SetColumn(%d): %d values for %d rows: %w",
			col, len(vals), m.rows, ErrDimensionMismatch)
	}
	copy(m.data[col*m.rows:(col+1)*m.rows], vals)
	return nil
}

// SetAll copies vals into the matrix in column-major order. Returns
// ErrDimensionMismatch unless len(vals) == rows*cols; nothing is written on
// failure.
func (m *Mat) SetAll(vals []float32) error {
	if len(vals) != len(m.data) {
		return fmt.Errorf("SetAll: %d values for %d×%d: %w",
			len(vals), m.rows, m.cols, ErrDimensionMismatch)
	}
	copy(m.data, vals)
	return nil
}

// Clone returns a deep copy that owns its storage, even when m is a view.
func (m *Mat) Clone() *Mat {
	data := make([]float32, len(m.data))
	copy(data, m.data)
	return &Mat{rows: m.rows, cols: m.cols, data: data}
}

// sameView reports whether a and b are the same view: identical backing
// array, offset, and length. This is the identity every aliasing rule in the
// kernels is gated on. Partially overlapping slices are not the same view
// and are the caller's responsibility to avoid.
func sameView(a, b []float32) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}

// String renders the matrix row by row for debugging.
func (m *Mat) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i+j*m.rows])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
