package pose

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the instantaneous kinematic state of a joint: the same relative
// transform expressed as matrix, translation, Euler angles and quaternion.
// It is the current configuration, not the zero/reference one; resetting
// or remembering a home pose is a concern of the host scene, not of this
// package.
type State struct {
	Matrix             mgl64.Mat4
	Translation        mgl64.Vec3
	RotationEuler      mgl64.Vec3
	RotationQuaternion mgl64.Quat
}

// Derive computes the joint state from the current transform. It is a
// pure function of its input: no caching, no mutation, and two calls on
// the same transform return identical results.
func Derive(t Transform) State {
	q := t.Rotation.Normalize()
	return State{
		Matrix:             t.Mat4(),
		Translation:        t.Position,
		RotationEuler:      eulerXYZ(q),
		RotationQuaternion: q,
	}
}

// eulerXYZ extracts XYZ-order Euler angles (radians) from a unit
// quaternion, matching the composition of mgl64.AnglesToQuat with
// mgl64.XYZ. The pitch term is clamped before asin to stay inside its
// domain under floating point noise.
func eulerXYZ(q mgl64.Quat) mgl64.Vec3 {
	w, x, y, z := q.W, q.V.X(), q.V.Y(), q.V.Z()

	sinY := 2 * (x*z + w*y)
	sinY = math.Max(-1, math.Min(1, sinY))

	return mgl64.Vec3{
		math.Atan2(2*(w*x-y*z), 1-2*(x*x+y*y)),
		math.Asin(sinY),
		math.Atan2(2*(w*z-x*y), 1-2*(y*y+z*z)),
	}
}
