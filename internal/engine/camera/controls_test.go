package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestControlsRotateOnlyWhileHeld(t *testing.T) {
	cam := newDefault()
	ctl := NewControls(cam)
	yaw := cam.Yaw

	ctl.Move(50, 0)
	assert.Equal(t, yaw, cam.Yaw, "motion without a button does nothing")

	ctl.Press(ButtonLeft)
	assert.True(t, ctl.Active())
	ctl.Move(50, 0)
	assert.NotEqual(t, yaw, cam.Yaw)

	ctl.Release(ButtonLeft)
	assert.False(t, ctl.Active())
	yaw = cam.Yaw
	ctl.Move(50, 0)
	assert.Equal(t, yaw, cam.Yaw)
}

func TestControlsPan(t *testing.T) {
	cam := newDefault()
	ctl := NewControls(cam)

	ctl.Press(ButtonRight)
	ctl.Move(10, 10)
	assert.NotEqual(t, mgl32.Vec3{}, cam.Target)
	ctl.Release(ButtonRight)

	target := cam.Target
	ctl.Press(ButtonMiddle)
	ctl.Move(-10, 0)
	assert.NotEqual(t, target, cam.Target)
}

func TestControlsWheelAndDisable(t *testing.T) {
	cam := newDefault()
	ctl := NewControls(cam)
	d := cam.Distance

	ctl.Wheel(1)
	assert.Less(t, cam.Distance, d)

	ctl.Enabled = false
	d = cam.Distance
	ctl.Wheel(1)
	ctl.Press(ButtonLeft)
	ctl.Move(100, 100)
	assert.Equal(t, d, cam.Distance)
}
