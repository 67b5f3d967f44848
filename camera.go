package vantage

import (
	"fmt"
	"math"
)

// Camera models a pinhole camera: it owns an orientation and a position,
// composes them into a world→camera view transform, and projects batches of
// homogeneous world points onto its sensor in pixel coordinates.
//
// A Camera starts out with identity orientation and position but no sensor;
// Configure must be called before Project or Capture. The view transform is
// cached and recomputed lazily: every mutator marks it dirty and every read
// recomputes it first, so a stale transform is never observable.
//
// A Camera is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves; the only parallelism on
// offer is per-column, inside a single batch (see MulBatchInto).
type Camera struct {
	resX, resY   int
	viewAngle    float32
	maxPx        float32
	aspect       float32
	eZ           float32
	pixelDensity float32
	configured   bool

	// invRot and invTra map world coordinates into the camera frame; the
	// cached product invRot·invTra is the view transform.
	invRot       *Mat4
	invTra       *Mat4
	camTransform *Mat4
	dirty        bool
}

// NewCamera creates a camera at the origin with identity orientation and no
// sensor configured.
func NewCamera() *Camera {
	return &Camera{
		invRot:       Identity4(),
		invTra:       Identity4(),
		camTransform: Identity4(),
	}
}

// Configure sets the sensor resolution and the maximum view angle in
// radians. The view angle applies along whichever sensor axis is larger;
// the other axis's angle shrinks with the aspect ratio, keeping a stable
// reference angle across resolution changes. Derives the sensor-to-pinhole
// distance e_z = 1/tan(angle/2) and the pixel density.
//
// Returns ErrOutOfRange unless resX and resY are positive and the angle is
// strictly between 0 and π, leaving the camera unchanged.
func (c *Camera) Configure(resX, resY int, maxViewAngle float32) error {
	if resX <= 0 || resY <= 0 {
		return fmt.Errorf("Configure: resolution %d×%d: %w", resX, resY, ErrOutOfRange)
	}
	if maxViewAngle <= 0 || float64(maxViewAngle) >= math.Pi {
		return fmt.Errorf("Configure: view angle %g: %w", maxViewAngle, ErrOutOfRange)
	}
	c.resX = resX
	c.resY = resY
	c.viewAngle = maxViewAngle
	c.maxPx = float32(max(resX, resY))
	c.aspect = float32(resX) / float32(resY)
	c.eZ = float32(1 / math.Tan(float64(maxViewAngle)/2))
	c.pixelDensity = 0.5 * c.maxPx / maxViewAngle
	c.configured = true
	return nil
}

// SetPosition places the camera at p in world coordinates. The stored
// translation is by −p: it maps world points into camera-relative ones.
func (c *Camera) SetPosition(p *Vec4) {
	IdentityInto(c.invTra)
	d := c.invTra.data
	d[12], d[13], d[14] = -p.X(), -p.Y(), -p.Z()
	c.dirty = true
}

// SetRotation sets the orientation from intrinsic Tait-Bryan angles applied
// in X then Y then Z order. The stored matrix is the inverse of that
// composition — reversed order, negated angles:
//
//	invRot = Rx(−x) · Ry(−y) · Rz(−z)
func (c *Camera) SetRotation(x, y, z float32) {
	// The left operand r is freshly allocated and invRot may alias the
	// destination on the right, so Mul4Into cannot fail here.
	RotationZInto(-z, c.invRot)
	r := RotationY(-y)
	_ = Mul4Into(r, c.invRot, c.invRot)
	RotationXInto(-x, r)
	_ = Mul4Into(r, c.invRot, c.invRot)
	c.dirty = true
}

// GlobalRotate rotates the camera about a world-frame axis, left-composing
// onto the current orientation: invRot ← R·invRot.
func (c *Camera) GlobalRotate(axis Axis, angle float32) {
	// Fresh left operand; Mul4Into cannot fail.
	_ = Mul4Into(Rotation(axis, angle), c.invRot, c.invRot)
	c.dirty = true
}

// LocalRotate rotates the camera about one of its own axes, right-composing
// onto the current orientation: invRot ← invRot·R. From an identity
// orientation this matches GlobalRotate; the two diverge once the camera is
// already turned.
func (c *Camera) LocalRotate(axis Axis, angle float32) {
	c.invRot = Mul4(c.invRot, Rotation(axis, angle))
	c.dirty = true
}

// UpdateTransform recomputes the cached view transform if any mutator has
// run since the last recompute. Transform and Capture call it implicitly;
// it is exported for callers that want to pay the multiply at a chosen
// moment rather than on first use.
func (c *Camera) UpdateTransform() {
	if !c.dirty {
		return
	}
	// invRot, invTra, and camTransform are three distinct owned matrices,
	// so the aliasing gate cannot trip.
	_ = Mul4Into(c.invRot, c.invTra, c.camTransform)
	c.dirty = false
}

// Transform returns a copy of the current world→camera view transform.
func (c *Camera) Transform() *Mat4 {
	c.UpdateTransform()
	return c.camTransform.Clone()
}

// Project maps camera-relative homogeneous points to sensor pixels in a
// fresh batch. See ProjectInto for the projection and its edge cases.
func (c *Camera) Project(pts *Batch) (*Batch, error) {
	out, _ := NewBatch(pts.cols)
	if err := c.ProjectInto(pts, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectInto maps each camera-relative column (x, y, z, w) of pts to
//
//	(0.5·resX + 0.5·maxPx·rel·x, 0.5·resY + 0.5·maxPx·rel·y, rel, 1)
//
// with rel = e_z/z, the similar-triangle scale through the pinhole. Columns
// are independent; out may be the same view as pts, projecting in place.
//
// A point with z == 0 sits on the pinhole plane and divides to ±Inf under
// IEEE semantics; that is not raised as an error, and avoiding such points
// is the caller's job. Returns ErrNotConfigured before Configure and
// ErrDimensionMismatch when the column counts differ, writing nothing.
func (c *Camera) ProjectInto(pts, out *Batch) error {
	if !c.configured {
		return fmt.Errorf("ProjectInto: %w", ErrNotConfigured)
	}
	if pts.cols != out.cols {
		return fmt.Errorf("ProjectInto: %d columns into %d: %w",
			pts.cols, out.cols, ErrDimensionMismatch)
	}
	halfX := 0.5 * float32(c.resX)
	halfY := 0.5 * float32(c.resY)
	halfPx := 0.5 * c.maxPx
	src, dst := pts.data, out.data
	for j := 0; j < pts.cols; j++ {
		k := j * 4
		x, y, z := src[k], src[k+1], src[k+2]
		rel := c.eZ / z
		dst[k+0] = halfX + halfPx*rel*x
		dst[k+1] = halfY + halfPx*rel*y
		dst[k+2] = rel
		dst[k+3] = 1
	}
	return nil
}

// Capture transforms world points through the view transform and projects
// them to sensor pixels, returning a fresh batch.
func (c *Camera) Capture(pts *Batch) (*Batch, error) {
	scratch, _ := NewBatch(pts.cols)
	if err := c.CaptureInto(pts, scratch); err != nil {
		return nil, err
	}
	return scratch, nil
}

// CaptureInto transforms world points into scratch via the view transform,
// then projects scratch in place; the projected pixels end up in scratch.
// scratch may be the same view as pts, consuming the input buffer. Returns
// ErrNotConfigured before Configure and ErrDimensionMismatch when the
// column counts differ.
func (c *Camera) CaptureInto(pts, scratch *Batch) error {
	if !c.configured {
		return fmt.Errorf("CaptureInto: %w", ErrNotConfigured)
	}
	c.UpdateTransform()
	if err := MulBatchInto(c.camTransform, pts, scratch); err != nil {
		return fmt.Errorf("CaptureInto: %w", err)
	}
	return c.ProjectInto(scratch, scratch)
}

// Resolution returns the configured sensor resolution.
func (c *Camera) Resolution() (resX, resY int) { return c.resX, c.resY }

// AspectRatio returns resX/resY.
func (c *Camera) AspectRatio() float32 { return c.aspect }

// PixelDensity returns pixels per radian along the larger sensor axis.
func (c *Camera) PixelDensity() float32 { return c.pixelDensity }

// ViewAngle returns the configured maximum view angle in radians.
func (c *Camera) ViewAngle() float32 { return c.viewAngle }
