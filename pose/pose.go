package pose

import (
	"github.com/akmonengine/vrframe/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is the tracked state of a device at an instant.
// A nil field means the device does not track it this frame.
type Pose struct {
	Orientation *mgl64.Quat
	Position    *mgl64.Vec3

	LinearVelocity     *mgl64.Vec3 // m/s
	LinearAcceleration *mgl64.Vec3 // m/s²

	AngularVelocity     *mgl64.Vec3 // rad/s
	AngularAcceleration *mgl64.Vec3 // rad/s²
}

// OrientationOrDefault returns the orientation, or identity when untracked.
// The pose is left untouched.
func (p Pose) OrientationOrDefault() mgl64.Quat {
	if p.Orientation == nil {
		return mgl64.QuatIdent()
	}
	return *p.Orientation
}

// PositionOrDefault returns the position, or the origin when untracked.
func (p Pose) PositionOrDefault() mgl64.Vec3 {
	if p.Position == nil {
		return mgl64.Vec3{0, 0, 0}
	}
	return *p.Position
}

// Matrix builds T(position) * R(orientation) with defaults for missing fields.
func (p Pose) Matrix() mgl64.Mat4 {
	return vmath.FromRotationTranslation(p.OrientationOrDefault(), p.PositionOrDefault())
}

// HasPosition reports whether the device tracks position (6DoF).
func (p Pose) HasPosition() bool {
	return p.Position != nil
}

// Transform applies matrix to the pose in place.
//
// Position goes through the full homogeneous transform. Orientation, linear
// velocity and linear acceleration only see the upper-left 3x3. The
// orientation is recomposed in matrix form and renormalized to keep drift out.
// The transform's rotation is applied on the left (R_matrix * R_orientation),
// the same side TransformView uses, so pose and views stay in one space.
// Angular velocity and angular acceleration are not transformed.
func (p *Pose) Transform(matrix mgl64.Mat4) {
	if p.Position != nil {
		*p.Position = vmath.TransformPoint(*p.Position, matrix)
	}

	if p.Orientation == nil && p.LinearVelocity == nil && p.LinearAcceleration == nil {
		return
	}

	rotation := vmath.RotationPart(matrix)

	if p.Orientation != nil {
		composed := rotation.Mul3(p.Orientation.Mat4().Mat3())
		*p.Orientation = vmath.QuatFromMat3(composed).Normalize()
	}

	if p.LinearVelocity != nil {
		*p.LinearVelocity = vmath.TransformDirection(*p.LinearVelocity, rotation)
	}

	if p.LinearAcceleration != nil {
		*p.LinearAcceleration = vmath.TransformDirection(*p.LinearAcceleration, rotation)
	}
}

// ClearPosition zeroes a tracked position. Untracked positions stay nil.
func (p *Pose) ClearPosition() {
	if p.Position != nil {
		*p.Position = mgl64.Vec3{0, 0, 0}
	}
}

// Clone returns a deep copy, so the copy's fields do not alias p's.
func (p Pose) Clone() Pose {
	return Pose{
		Orientation:         cloneQuat(p.Orientation),
		Position:            cloneVec3(p.Position),
		LinearVelocity:      cloneVec3(p.LinearVelocity),
		LinearAcceleration:  cloneVec3(p.LinearAcceleration),
		AngularVelocity:     cloneVec3(p.AngularVelocity),
		AngularAcceleration: cloneVec3(p.AngularAcceleration),
	}
}

func cloneQuat(q *mgl64.Quat) *mgl64.Quat {
	if q == nil {
		return nil
	}
	c := *q
	return &c
}

func cloneVec3(v *mgl64.Vec3) *mgl64.Vec3 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
