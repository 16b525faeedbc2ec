// Package pose holds device poses and rigid transforms.
package pose

import (
	"github.com/akmonengine/vrframe/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// RigidTransform is a rotation followed by a translation
type RigidTransform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewRigidTransform creates an identity transform
func NewRigidTransform() RigidTransform {
	return RigidTransform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// Translation creates a transform that only moves by offset
func Translation(offset mgl64.Vec3) RigidTransform {
	t := NewRigidTransform()
	t.Position = offset
	return t
}

// Mat4 returns T(position) * R(rotation)
func (t RigidTransform) Mat4() mgl64.Mat4 {
	return vmath.FromRotationTranslation(t.Rotation, t.Position)
}

// Inverse returns the transform undoing t
func (t RigidTransform) Inverse() RigidTransform {
	inverseRotation := t.Rotation.Inverse()
	return RigidTransform{
		Position: inverseRotation.Rotate(t.Position).Mul(-1),
		Rotation: inverseRotation,
	}
}
