package vantage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCamera returns an 800×600 camera with a 90° view angle, so
// e_z = 1/tan(45°) = 1 and projections have round numbers.
func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	cam := NewCamera()
	require.NoError(t, cam.Configure(800, 600, float32(2*math.Atan(1))))
	return cam
}

func singlePoint(t *testing.T, x, y, z, w float32) *Batch {
	t.Helper()
	pts, err := NewBatch(1)
	require.NoError(t, err)
	require.NoError(t, pts.SetPoint(0, x, y, z, w))
	return pts
}

func TestCameraAccessors(t *testing.T) {
	cam := newTestCamera(t)
	resX, resY := cam.Resolution()
	assert.Equal(t, 800, resX)
	assert.Equal(t, 600, resY)
	assert.InDelta(t, 800.0/600.0, float64(cam.AspectRatio()), 1e-6)
	assert.InDelta(t, math.Pi/2, float64(cam.ViewAngle()), 1e-6)
	assert.InDelta(t, 0.5*800/(math.Pi/2), float64(cam.PixelDensity()), 1e-3)
}

func TestConfigureRejectsBadArguments(t *testing.T) {
	cam := NewCamera()
	assert.ErrorIs(t, cam.Configure(0, 600, 1), ErrOutOfRange)
	assert.ErrorIs(t, cam.Configure(800, -1, 1), ErrOutOfRange)
	assert.ErrorIs(t, cam.Configure(800, 600, 0), ErrOutOfRange)
	assert.ErrorIs(t, cam.Configure(800, 600, math.Pi), ErrOutOfRange)
	assert.ErrorIs(t, cam.Configure(800, 600, -0.5), ErrOutOfRange)

	// Still unconfigured after every rejection.
	_, err := cam.Capture(singlePoint(t, 0, 0, 1, 1))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCaptureBeforeConfigure(t *testing.T) {
	cam := NewCamera()
	pts := singlePoint(t, 0, 0, 1, 1)
	_, err := cam.Capture(pts)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = cam.Project(pts)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestProjectUnitDepthPoint(t *testing.T) {
	// e_z = 1, identity pose: (1, 0, 1, 1) lands at the right sensor edge,
	// vertically centered, with a depth term of 1.
	cam := newTestCamera(t)
	out, err := cam.Capture(singlePoint(t, 1, 0, 1, 1))
	require.NoError(t, err)

	x, y, rel, w, err := out.Point(0)
	require.NoError(t, err)
	assert.InDelta(t, 800, float64(x), 1e-4)
	assert.InDelta(t, 300, float64(y), 1e-4)
	assert.InDelta(t, 1, float64(rel), 1e-6)
	assert.Equal(t, float32(1), w)
}

func TestTranslatedCameraMatchesAxialView(t *testing.T) {
	// A camera moved back 5 units viewing the origin sees exactly what an
	// unmoved camera sees viewing a point 5 units down its Z axis.
	moved := newTestCamera(t)
	moved.SetPosition(NewVec4(0, 0, -5, 1))
	fromMoved, err := moved.Capture(singlePoint(t, 0, 0, 0, 1))
	require.NoError(t, err)

	fixed := newTestCamera(t)
	fromFixed, err := fixed.Capture(singlePoint(t, 0, 0, 5, 1))
	require.NoError(t, err)

	assert.Equal(t, fromFixed.Data(), fromMoved.Data())

	x, y, _, _, err := fromMoved.Point(0)
	require.NoError(t, err)
	assert.InDelta(t, 400, float64(x), 1e-4, "pixel center")
	assert.InDelta(t, 300, float64(y), 1e-4, "pixel center")
}

func TestSetRotationComposition(t *testing.T) {
	// invRot must be Rx(−x)·Ry(−y)·Rz(−z).
	const rx, ry, rz = 0.3, -0.7, 1.1
	cam := newTestCamera(t)
	cam.SetRotation(rx, ry, rz)

	want := Mul4(RotationX(-rx), Mul4(RotationY(-ry), RotationZ(-rz)))
	assertMat4Near(t, want, cam.Transform(), 1e-6)
}

func TestSetRotationZeroIsIdentity(t *testing.T) {
	cam := newTestCamera(t)
	cam.SetRotation(0, 0, 0)
	assertMat4Near(t, Identity4(), cam.Transform(), 0)
}

func TestLocalEqualsGlobalFromIdentity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		local := newTestCamera(t)
		local.LocalRotate(axis, 0.42)
		global := newTestCamera(t)
		global.GlobalRotate(axis, 0.42)
		assertMat4Near(t, global.Transform(), local.Transform(), 1e-6)
	}
}

func TestLocalDivergesFromGlobalWhenTurned(t *testing.T) {
	local := newTestCamera(t)
	local.SetRotation(0.5, 0.3, 0)
	local.LocalRotate(AxisZ, 0.9)

	global := newTestCamera(t)
	global.SetRotation(0.5, 0.3, 0)
	global.GlobalRotate(AxisZ, 0.9)

	var diverged bool
	ld, gd := local.Transform().Data(), global.Transform().Data()
	for i := range ld {
		if math.Abs(float64(ld[i]-gd[i])) > 1e-4 {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "local and global rotation agreed on a turned camera")
}

func TestRotateUndoes(t *testing.T) {
	cam := newTestCamera(t)
	cam.GlobalRotate(AxisY, 0.8)
	cam.GlobalRotate(AxisX, -0.2)
	cam.GlobalRotate(AxisX, 0.2)
	cam.GlobalRotate(AxisY, -0.8)
	assertMat4Near(t, Identity4(), cam.Transform(), 1e-5)
}

func TestTransformNeverStale(t *testing.T) {
	cam := newTestCamera(t)
	before := cam.Transform()
	cam.SetPosition(NewVec4(1, 2, 3, 1))
	after := cam.Transform()

	assertMat4Near(t, Identity4(), before, 0)
	got, err := after.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(-1), got, "translation column must reflect the setter immediately")
	got, err = after.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(-3), got)
}

func TestTransformReturnsCopy(t *testing.T) {
	cam := newTestCamera(t)
	m := cam.Transform()
	require.NoError(t, m.Set(0, 3, 99))
	assertMat4Near(t, Identity4(), cam.Transform(), 0)
}

func TestCaptureIntoInPlace(t *testing.T) {
	cam := newTestCamera(t)
	cam.SetPosition(NewVec4(0, 0, -2, 1))

	pts, err := NewBatch(3)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		require.NoError(t, pts.SetPoint(j, float32(j)-1, 0.5, float32(j), 1))
	}
	want, err := cam.Capture(pts)
	require.NoError(t, err)

	require.NoError(t, cam.CaptureInto(pts, pts))
	assert.Equal(t, want.Data(), pts.Data())
}

func TestCaptureIntoColumnCountChecked(t *testing.T) {
	cam := newTestCamera(t)
	pts, err := NewBatch(2)
	require.NoError(t, err)
	scratch, err := NewBatch(3)
	require.NoError(t, err)
	assert.ErrorIs(t, cam.CaptureInto(pts, scratch), ErrDimensionMismatch)
}

func TestProjectZeroDepthYieldsInf(t *testing.T) {
	cam := newTestCamera(t)
	out, err := cam.Project(singlePoint(t, 1, 0, 0, 1))
	require.NoError(t, err)

	x, _, rel, _, err := out.Point(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(rel), 1), "rel = e_z/0 should be +Inf, got %v", rel)
	assert.True(t, math.IsInf(float64(x), 1), "pixel x should follow to +Inf, got %v", x)
}

func TestCaptureWholeCube(t *testing.T) {
	// All eight corners of a unit cube in front of the camera must land on
	// the sensor, symmetric about its center.
	cam := newTestCamera(t)
	cam.SetPosition(NewVec4(0, 0, -4, 1))

	pts, err := NewBatch(8)
	require.NoError(t, err)
	col := 0
	for _, x := range []float32{-0.5, 0.5} {
		for _, y := range []float32{-0.5, 0.5} {
			for _, z := range []float32{-0.5, 0.5} {
				require.NoError(t, pts.SetPoint(col, x, y, z, 1))
				col++
			}
		}
	}

	out, err := cam.Capture(pts)
	require.NoError(t, err)

	var sumX, sumY float64
	for j := 0; j < 8; j++ {
		x, y, rel, w, err := out.Point(j)
		require.NoError(t, err)
		assert.Equal(t, float32(1), w)
		assert.Greater(t, float64(rel), 0.0, "corner %d behind the camera", j)
		assert.InDelta(t, 400, float64(x), 100, "corner %d off sensor", j)
		assert.InDelta(t, 300, float64(y), 100, "corner %d off sensor", j)
		sumX += float64(x)
		sumY += float64(y)
	}
	assert.InDelta(t, 400, sumX/8, 1e-3)
	assert.InDelta(t, 300, sumY/8, 1e-3)
}
