package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FieldOfView holds the four half-angles of an eye frustum, in degrees.
type FieldOfView struct {
	UpDegrees    float64
	DownDegrees  float64
	LeftDegrees  float64
	RightDegrees float64
}

// FieldOfViewFromProjection recovers the frustum half-angles from an
// off-axis perspective projection matrix.
func FieldOfViewFromProjection(projection mgl64.Mat4) FieldOfView {
	xScale := projection[0]
	yScale := projection[5]
	if xScale == 0 || yScale == 0 {
		return FieldOfView{}
	}

	xOffset := projection[8]
	yOffset := projection[9]

	return FieldOfView{
		UpDegrees:    mgl64.RadToDeg(math.Atan((1 + yOffset) / yScale)),
		DownDegrees:  mgl64.RadToDeg(math.Atan((1 - yOffset) / yScale)),
		LeftDegrees:  mgl64.RadToDeg(math.Atan((1 - xOffset) / xScale)),
		RightDegrees: mgl64.RadToDeg(math.Atan((1 + xOffset) / xScale)),
	}
}

// Projection builds the off-axis perspective matrix for fov. It is the
// inverse of FieldOfViewFromProjection for the frustum part.
func (fov FieldOfView) Projection(near, far float64) mgl64.Mat4 {
	upTan := math.Tan(mgl64.DegToRad(fov.UpDegrees))
	downTan := math.Tan(mgl64.DegToRad(fov.DownDegrees))
	leftTan := math.Tan(mgl64.DegToRad(fov.LeftDegrees))
	rightTan := math.Tan(mgl64.DegToRad(fov.RightDegrees))

	xScale := 2.0 / (leftTan + rightTan)
	yScale := 2.0 / (upTan + downTan)

	var m mgl64.Mat4
	m[0] = xScale
	m[5] = yScale
	m[8] = -((leftTan - rightTan) * xScale * 0.5)
	m[9] = (upTan - downTan) * yScale * 0.5
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = (far * near) / (near - far)
	return m
}
