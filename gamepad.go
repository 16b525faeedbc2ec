package vrframe

import (
	"github.com/akmonengine/vrframe/pose"
	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line used for pointing and picking.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3 // unit length
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// GamepadMatrix turns a tracked controller pose into a matrix. Untracked
// fields default to identity, as for the head.
func GamepadMatrix(p pose.Pose) mgl64.Mat4 {
	return p.Matrix()
}

// PickingRay casts a ray from the origin of m along its local -Z axis, the
// pointing direction of controllers and heads.
func PickingRay(m mgl64.Mat4) Ray {
	origin := mgl64.TransformCoordinate(mgl64.Vec3{0, 0, 0}, m)
	direction := mgl64.TransformNormal(mgl64.Vec3{0, 0, -1}, m)
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}

	return Ray{Origin: origin, Direction: direction}
}

// HeadRay is the gaze ray of the frame's head pose.
func (fd *FrameData) HeadRay() Ray {
	return PickingRay(fd.HeadMatrix())
}
