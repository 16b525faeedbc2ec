// Package vmath gathers the few matrix helpers the frame transforms need on
// top of mgl64. Matrices are column-major, matching the layout the device API
// hands out.
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FromRotationTranslation builds T(translation) * R(rotation).
func FromRotationTranslation(rotation mgl64.Quat, translation mgl64.Vec3) mgl64.Mat4 {
	m := rotation.Mat4()
	m[12] = translation.X()
	m[13] = translation.Y()
	m[14] = translation.Z()
	return m
}

// FromTranslation builds a pure translation matrix.
func FromTranslation(translation mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(translation.X(), translation.Y(), translation.Z())
}

// RotationPart returns the upper-left 3x3 of m. For an affine matrix carrying
// scale or shear this is not a pure rotation.
func RotationPart(m mgl64.Mat4) mgl64.Mat3 {
	return m.Mat3()
}

// QuatFromMat3 converts a rotation matrix back into a unit quaternion.
func QuatFromMat3(m mgl64.Mat3) mgl64.Quat {
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// TransformPoint applies m to p as a homogeneous point (w = 1), dividing by
// the resulting w.
func TransformPoint(p mgl64.Vec3, m mgl64.Mat4) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, m)
}

// TransformDirection applies a 3x3 linear map to v, no translation.
func TransformDirection(v mgl64.Vec3, m mgl64.Mat3) mgl64.Vec3 {
	return m.Mul3x1(v)
}

// Invert returns the inverse of m and whether m was invertible. A singular
// matrix yields the zero matrix and false.
func Invert(m mgl64.Mat4) (mgl64.Mat4, bool) {
	det := m.Det()
	if math.Abs(det) < mgl64.Epsilon*mgl64.Epsilon {
		return mgl64.Mat4{}, false
	}
	return m.Inv(), true
}
