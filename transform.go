package vrframe

import (
	"github.com/akmonengine/vrframe/pose"
	"github.com/akmonengine/vrframe/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// TransformPose applies matrix to the pose only. See pose.Pose.Transform for
// which fields are affected; angular velocity and acceleration are not.
func (fd *FrameData) TransformPose(matrix mgl64.Mat4) {
	fd.Invalidate()
	fd.frame.Pose.Transform(matrix)
}

// TransformView moves both view matrices by inverse(matrix), which gives the
// same picture as TransformPose without any quaternion work. The pose is left
// as is. A singular matrix zeroes the views.
func (fd *FrameData) TransformView(matrix mgl64.Mat4) {
	fd.Invalidate()

	inverse, _ := vmath.Invert(matrix)
	fd.frame.LeftViewMatrix = fd.frame.LeftViewMatrix.Mul4(inverse)
	fd.frame.RightViewMatrix = fd.frame.RightViewMatrix.Mul4(inverse)
}

// Transform applies matrix to both the pose and the view matrices so that
// every consumer sees the same space.
func (fd *FrameData) Transform(matrix mgl64.Mat4) {
	fd.TransformPose(matrix)
	fd.TransformView(matrix)
}

// removePosition strips positional tracking from the views and the pose.
// Multiplying by T(position) cancels the translation the inverse head
// transform put in the view, without inverting anything.
func (fd *FrameData) removePosition() {
	fd.Invalidate()

	translation := vmath.FromTranslation(*fd.frame.Pose.Position)
	fd.frame.LeftViewMatrix = fd.frame.LeftViewMatrix.Mul4(translation)
	fd.frame.RightViewMatrix = fd.frame.RightViewMatrix.Mul4(translation)

	fd.frame.Pose.ClearPosition()
}

// replaceWithMonoView rebuilds both views from the orientation alone.
// This assumes the device views carry no rotation beyond the head
// orientation; when they do (canted displays), the result is approximate.
func (fd *FrameData) replaceWithMonoView() {
	fd.Invalidate()

	head := pose.RigidTransform{Rotation: fd.frame.Pose.OrientationOrDefault()}
	view := head.Inverse().Mat4()
	fd.frame.LeftViewMatrix = view
	fd.frame.RightViewMatrix = view

	fd.frame.Pose.ClearPosition()
}
