// Package vantage is a minimal 3D math kernel for placing world points on a
// 2D image plane: fixed-shape column-major matrices, rigid-body rotation
// builders, hand-unrolled composition kernels, and a pinhole [Camera] that
// turns batches of homogeneous world points into sensor-pixel coordinates.
//
// Vantage is the math layer under a renderer or visualizer, not the renderer
// itself: there is no display loop, scene graph, or asset handling here.
// Front-ends fill a point [Batch], hand it to [Camera.Capture], and draw the
// pixels that come back (see examples/orbitcube and examples/termcube for
// two such front-ends).
//
// # Quick start
//
//	cam := vantage.NewCamera()
//	cam.Configure(800, 600, math.Pi/2)
//	cam.SetPosition(vantage.NewVec4(0, 0, -5, 1))
//
//	pts, _ := vantage.NewBatch(8)
//	// ... fill columns with homogeneous points (w = 1) ...
//	pixels, err := cam.Capture(pts)
//
// Each projected column holds the pixel x and y, a depth-proportional third
// coordinate, and 1.
//
// # Matrices
//
// [Mat] is the generic rows×cols container: float32, column-major, bounds
// checked, either owning its storage or a view over a caller slice. The
// fixed-shape family — [Mat4] (4×4 transform), [Batch] (4×N points), [Vec4]
// (one point or direction) — is what every operation in the package accepts,
// so shape errors are caught at compile time rather than at run time.
//
// Operations come in pairs: F allocates a fresh result, FInto writes into a
// caller buffer. The Into kernels allow the right operand to share storage
// with the destination (in-place transform of a point buffer) but reject a
// destination sharing storage with the left operand with [ErrAliased]; see
// [Mul4Into].
//
// # Rotations
//
// [RotationX], [RotationY], [RotationZ] build the right-handed elemental
// rotations; [Rotation] dispatches on an [Axis]; [RotationAboutAxis] builds
// a rotation about an arbitrary vector. [Camera.SetRotation] composes
// intrinsic Tait-Bryan angles, and [Camera.GlobalRotate] and
// [Camera.LocalRotate] turn the camera incrementally in the world frame or
// its own.
//
// All angles are radians. Everything is single-threaded by design; the
// per-column independence of the batch kernels is the one safe axis of
// caller-side parallelism.
package vantage
