// Package vrframe layers derived head/eye matrices and rigid-body
// conveniences over the per-frame data a VR device reports.
package vrframe

import (
	"github.com/akmonengine/vrframe/pose"
	"github.com/akmonengine/vrframe/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Frame is the raw data a device writes every frame.
// Matrices are column-major, the layout the device uses.
type Frame struct {
	Timestamp float64
	Pose      pose.Pose

	LeftProjectionMatrix mgl64.Mat4
	LeftViewMatrix       mgl64.Mat4

	RightProjectionMatrix mgl64.Mat4
	RightViewMatrix       mgl64.Mat4
}

// FrameData decorates a Frame with lazily derived matrices.
//
// Reading a derived matrix refreshes its cache slot, so a FrameData must not
// be shared between goroutines. Code that edits the wrapped Frame directly
// must call Invalidate afterwards.
type FrameData struct {
	frame *Frame

	headMatrix      mgl64.Mat4
	headMatrixValid bool

	leftEyeMatrix      mgl64.Mat4
	leftEyeMatrixValid bool

	rightEyeMatrix      mgl64.Mat4
	rightEyeMatrixValid bool
}

// NewFrameData creates a FrameData around an empty Frame.
func NewFrameData() *FrameData {
	return WrapFrame(&Frame{})
}

// WrapFrame decorates a Frame owned by the caller.
func WrapFrame(frame *Frame) *FrameData {
	if frame == nil {
		frame = &Frame{}
	}
	return &FrameData{frame: frame}
}

// Frame returns the wrapped frame.
func (fd *FrameData) Frame() *Frame {
	return fd.frame
}

// Pose returns the wrapped frame's pose.
func (fd *FrameData) Pose() *pose.Pose {
	return &fd.frame.Pose
}

// Invalidate marks every derived matrix stale.
func (fd *FrameData) Invalidate() {
	fd.headMatrixValid = false
	fd.leftEyeMatrixValid = false
	fd.rightEyeMatrixValid = false
}

// HeadMatrix is the head's pose as a matrix, T(position) * R(orientation).
// Untracked orientation or position fall back to identity.
func (fd *FrameData) HeadMatrix() mgl64.Mat4 {
	if !fd.headMatrixValid {
		fd.headMatrix = fd.frame.Pose.Matrix()
		fd.headMatrixValid = true
	}
	return fd.headMatrix
}

// LeftEyeMatrix is the inverse of the left view matrix.
func (fd *FrameData) LeftEyeMatrix() mgl64.Mat4 {
	if !fd.leftEyeMatrixValid {
		fd.leftEyeMatrix, _ = vmath.Invert(fd.frame.LeftViewMatrix)
		fd.leftEyeMatrixValid = true
	}
	return fd.leftEyeMatrix
}

// RightEyeMatrix is the inverse of the right view matrix.
func (fd *FrameData) RightEyeMatrix() mgl64.Mat4 {
	if !fd.rightEyeMatrixValid {
		fd.rightEyeMatrix, _ = vmath.Invert(fd.frame.RightViewMatrix)
		fd.rightEyeMatrixValid = true
	}
	return fd.rightEyeMatrix
}

// HeadToLeftEyeMatrix maps head space into left eye space, so that
// HeadMatrix() * HeadToLeftEyeMatrix() == LeftEyeMatrix().
func (fd *FrameData) HeadToLeftEyeMatrix() mgl64.Mat4 {
	return headToEye(fd.HeadMatrix(), fd.LeftEyeMatrix())
}

// HeadToRightEyeMatrix is the right eye counterpart of HeadToLeftEyeMatrix.
func (fd *FrameData) HeadToRightEyeMatrix() mgl64.Mat4 {
	return headToEye(fd.HeadMatrix(), fd.RightEyeMatrix())
}

func headToEye(head, eye mgl64.Mat4) mgl64.Mat4 {
	inverseHead, _ := vmath.Invert(head)
	return inverseHead.Mul4(eye)
}

// LeftFieldOfView derives the left eye frustum from its projection matrix.
func (fd *FrameData) LeftFieldOfView() vmath.FieldOfView {
	return vmath.FieldOfViewFromProjection(fd.frame.LeftProjectionMatrix)
}

// RightFieldOfView derives the right eye frustum from its projection matrix.
func (fd *FrameData) RightFieldOfView() vmath.FieldOfView {
	return vmath.FieldOfViewFromProjection(fd.frame.RightProjectionMatrix)
}
