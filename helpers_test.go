package vrframe

import (
	"math"

	"github.com/akmonengine/vrframe/pose"
	"github.com/akmonengine/vrframe/vmath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const interpupillaryDistance = 0.064

var approx = cmpopts.EquateApprox(0, 1e-9)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func vec3AlmostEqual(a, b mgl64.Vec3, epsilon float64) bool {
	return almostEqual(a.X(), b.X(), epsilon) &&
		almostEqual(a.Y(), b.Y(), epsilon) &&
		almostEqual(a.Z(), b.Z(), epsilon)
}

func vec3Ptr(x, y, z float64) *mgl64.Vec3 {
	v := mgl64.Vec3{x, y, z}
	return &v
}

func quatPtr(q mgl64.Quat) *mgl64.Quat {
	return &q
}

// makeFrame builds what a stereo headset would report for p: each eye sits
// half the IPD to the side of the head, and each view is that eye's inverse.
func makeFrame(p pose.Pose) Frame {
	head := p.Matrix()
	leftEye := head.Mul4(vmath.FromTranslation(mgl64.Vec3{-interpupillaryDistance / 2, 0, 0}))
	rightEye := head.Mul4(vmath.FromTranslation(mgl64.Vec3{interpupillaryDistance / 2, 0, 0}))

	projection := vmath.FieldOfView{UpDegrees: 50, DownDegrees: 50, LeftDegrees: 45, RightDegrees: 45}.Projection(0.1, 1000)

	return Frame{
		Timestamp:             16.6,
		Pose:                  p,
		LeftViewMatrix:        leftEye.Inv(),
		RightViewMatrix:       rightEye.Inv(),
		LeftProjectionMatrix:  projection,
		RightProjectionMatrix: projection,
	}
}

// fakeDevice replays a fixed frame, or fails when ok is false
type fakeDevice struct {
	frame Frame
	ok    bool
	stage *StageParameters
	polls int
}

func (d *fakeDevice) FrameData(frame *Frame) bool {
	d.polls++
	if !d.ok {
		return false
	}

	*frame = d.frame
	frame.Pose = d.frame.Pose.Clone()
	return true
}

func (d *fakeDevice) StageParameters() *StageParameters {
	return d.stage
}

// sharedPoseDevice hands out the pose storage it keeps between frames, the
// way a runtime reusing its buffers does
type sharedPoseDevice struct {
	frame Frame
}

func (d *sharedPoseDevice) FrameData(frame *Frame) bool {
	*frame = d.frame
	return true
}

func (d *sharedPoseDevice) StageParameters() *StageParameters {
	return nil
}
