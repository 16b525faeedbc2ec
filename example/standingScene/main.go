package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/vrframe"
	"github.com/akmonengine/vrframe/pose"
	"github.com/akmonengine/vrframe/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

const interpupillaryDistance = 0.064

// ScriptedHeadset plays back a head turning in place, losing tracking on
// every tenth frame.
type ScriptedHeadset struct {
	frame int
	stage *vrframe.StageParameters
}

func (h *ScriptedHeadset) FrameData(frame *vrframe.Frame) bool {
	h.frame++
	if h.frame%10 == 0 {
		return false
	}

	orientation := mgl64.QuatRotate(float64(h.frame)*0.05, mgl64.Vec3{0, 1, 0})
	position := mgl64.Vec3{0.1 * math.Sin(float64(h.frame)*0.1), 0, 0}

	head := vmath.FromRotationTranslation(orientation, position)
	leftEye := head.Mul4(vmath.FromTranslation(mgl64.Vec3{-interpupillaryDistance / 2, 0, 0}))
	rightEye := head.Mul4(vmath.FromTranslation(mgl64.Vec3{interpupillaryDistance / 2, 0, 0}))
	projection := vmath.FieldOfView{UpDegrees: 50, DownDegrees: 50, LeftDegrees: 45, RightDegrees: 45}.Projection(0.1, 1000)

	*frame = vrframe.Frame{
		Timestamp: float64(h.frame) * 1000.0 / 90.0,
		Pose: pose.Pose{
			Orientation: &orientation,
			Position:    &position,
		},
		LeftProjectionMatrix:  projection,
		LeftViewMatrix:        leftEye.Inv(),
		RightProjectionMatrix: projection,
		RightViewMatrix:       rightEye.Inv(),
	}
	return true
}

func (h *ScriptedHeadset) StageParameters() *vrframe.StageParameters {
	return h.stage
}

func printFrame(label string, fd *vrframe.FrameData) {
	head := fd.HeadMatrix()
	fmt.Printf("%s:\n", label)
	fmt.Printf("   Head position: %v\n", head.Col(3).Vec3())
	fmt.Printf("   Left eye position: %v\n", fd.LeftEyeMatrix().Col(3).Vec3())
	fmt.Printf("   Right eye position: %v\n", fd.RightEyeMatrix().Col(3).Vec3())
	fmt.Printf("   Gaze: %v\n", fd.HeadRay().Direction)
	fmt.Printf("   Left field of view: %+v\n", fd.LeftFieldOfView())
}

func main() {
	display, err := vrframe.NewDisplay(&ScriptedHeadset{})
	if err != nil {
		fmt.Printf("No VR: %v\n", err)
		return
	}

	fd := vrframe.NewFrameData()

	const maxFrames = 30
	for i := 0; i < maxFrames; i++ {
		fmt.Printf("--- FRAME %d ---\n", i+1)

		var ok bool
		switch i % 3 {
		case 0:
			ok = display.GetStandingFrameData(fd, vrframe.DefaultStandingHeight)
			if ok {
				printFrame("Standing", fd)
			}
		case 1:
			ok = display.Get3DoFFrameData(fd)
			if ok {
				printFrame("3DoF", fd)
			}
		default:
			ok = display.GetMono3DoFFrameData(fd)
			if ok {
				printFrame("Mono 3DoF", fd)
			}
		}

		if !ok {
			fmt.Println("   Tracking lost, skipping frame")
		}
	}
}
