package vantage

import "errors"

// Sentinel errors returned by the package. Match them with errors.Is.
// Every failure here is a caller mistake: operations validate their inputs
// up front and return before touching any output storage, so state is never
// left half-written.
var (
	// ErrDimensionMismatch reports a shape conflict: a backing buffer whose
	// length doesn't match rows*cols, a column slice of the wrong length, or
	// operands with differing column counts.
	ErrDimensionMismatch = errors.New("vantage: dimension mismatch")

	// ErrOutOfRange reports an index or configuration value outside its
	// declared bounds.
	ErrOutOfRange = errors.New("vantage: out of range")

	// ErrAliased reports that the left operand of a multiply shares storage
	// with the destination. The kernels read the left operand throughout the
	// whole product, so writing over it mid-computation would corrupt later
	// columns. The right operand may freely alias the destination.
	ErrAliased = errors.New("vantage: left operand aliases destination")

	// ErrDegenerateAxis reports a zero-length rotation axis or an attempt to
	// normalize the zero vector.
	ErrDegenerateAxis = errors.New("vantage: degenerate axis")

	// ErrNotConfigured reports a projection attempt before Camera.Configure
	// has established a resolution and view angle.
	ErrNotConfigured = errors.New("vantage: camera not configured")
)
