// Package pose provides the parent-relative transform of a link and the
// kinematic joint state derived from it.
package pose

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position and orientation in 3D space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// New creates an identity transform
func New() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// Mat4 returns the homogeneous matrix of the transform, rotation applied
// before translation.
func (t Transform) Mat4() mgl64.Mat4 {
	trans := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	return trans.Mul4(t.Rotation.Mat4())
}
