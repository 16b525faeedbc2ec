package vrframe

import (
	"errors"

	"github.com/akmonengine/vrframe/pose"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultStandingHeight is the eye height, in metres, used for standing space
// when the device reports no stage parameters. Average adult height.
const DefaultStandingHeight = 1.65

// ErrNoDevice is returned by NewDisplay when there is no device to wrap.
var ErrNoDevice = errors.New("vrframe: no VR device available")

// StageParameters is the room-scale metadata some devices report.
type StageParameters struct {
	// SittingToStandingTransform moves seated space, whose origin is the
	// seated eye position, into standing space, whose origin is the floor.
	SittingToStandingTransform mgl64.Mat4

	// Play area extents in metres, 0 when unknown
	SizeX float64
	SizeZ float64
}

// Device is the VR runtime being wrapped.
type Device interface {
	// FrameData fills frame with the current pose and matrices. It returns
	// false when no pose is available yet; frame is then left untouched.
	// The pose fields may point at storage the device keeps; Display copies
	// them before anything is transformed.
	FrameData(frame *Frame) bool

	// StageParameters returns nil when the device has no stage.
	StageParameters() *StageParameters
}

// Display wraps a Device with the frame-acquisition helpers.
type Display struct {
	device Device
}

// NewDisplay wraps device. A nil device means the runtime has no VR support,
// and ErrNoDevice is returned.
func NewDisplay(device Device) (*Display, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	return &Display{device: device}, nil
}

// StageParameters forwards the device's stage, nil when there is none.
func (d *Display) StageParameters() *StageParameters {
	return d.device.StageParameters()
}

// GetFrameData polls the device into out and invalidates out's derived
// matrices. It returns the device's answer unchanged; on false, out is not
// modified. A nil out is never polled and reports false.
func (d *Display) GetFrameData(out *FrameData) bool {
	if out == nil {
		return false
	}

	var frame Frame
	if !d.device.FrameData(&frame) {
		return false
	}
	frame.Pose = frame.Pose.Clone()

	if out.frame == nil {
		out.frame = &Frame{}
	}
	*out.frame = frame
	out.Invalidate()
	return true
}

// GetStandingFrameData returns the frame in standing space. The device's
// sitting-to-standing transform is used when it has one, otherwise the head
// is lifted by defaultHeight metres. A defaultHeight <= 0 selects
// DefaultStandingHeight.
func (d *Display) GetStandingFrameData(out *FrameData, defaultHeight float64) bool {
	if !d.GetFrameData(out) {
		return false
	}

	out.Transform(d.standingTransform(defaultHeight))
	return true
}

// Get3DoFFrameData returns the frame with positional tracking removed.
// Rotation is kept exactly.
func (d *Display) Get3DoFFrameData(out *FrameData) bool {
	if !d.GetFrameData(out) {
		return false
	}

	// Already orientation-only
	if !out.frame.Pose.HasPosition() {
		return true
	}

	out.removePosition()
	return true
}

// GetMono3DoFFrameData returns orientation-only views with no eye offset,
// identical for both eyes. Meant for photospheres and 360 video.
func (d *Display) GetMono3DoFFrameData(out *FrameData) bool {
	if !d.GetFrameData(out) {
		return false
	}

	out.replaceWithMonoView()
	return true
}

// StandingGamepadMatrix returns a gamepad pose as a standing-space matrix,
// using the same transform as GetStandingFrameData. p is not modified.
func (d *Display) StandingGamepadMatrix(p pose.Pose, defaultHeight float64) mgl64.Mat4 {
	return d.standingTransform(defaultHeight).Mul4(GamepadMatrix(p))
}

// StandingGamepadPose moves a gamepad pose into standing space in place.
func (d *Display) StandingGamepadPose(p *pose.Pose, defaultHeight float64) {
	p.Transform(d.standingTransform(defaultHeight))
}

func (d *Display) standingTransform(defaultHeight float64) mgl64.Mat4 {
	if stage := d.device.StageParameters(); stage != nil {
		return stage.SittingToStandingTransform
	}

	if defaultHeight <= 0 {
		defaultHeight = DefaultStandingHeight
	}
	return pose.Translation(mgl64.Vec3{0, defaultHeight, 0}).Mat4()
}
