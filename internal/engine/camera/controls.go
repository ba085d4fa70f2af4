package camera

// Button identifies a mouse button for Controls.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

// Controls maps mouse gestures onto an OrbitCamera: left drag rotates,
// right or middle drag pans, the wheel zooms.
type Controls struct {
	cam      *OrbitCamera
	rotating bool
	panning  bool
	Enabled  bool
}

// NewControls attaches controls to cam.
func NewControls(cam *OrbitCamera) *Controls {
	return &Controls{cam: cam, Enabled: true}
}

// Press starts a gesture.
func (c *Controls) Press(b Button) {
	switch b {
	case ButtonLeft:
		c.rotating = true
	case ButtonMiddle, ButtonRight:
		c.panning = true
	}
}

// Release ends a gesture.
func (c *Controls) Release(b Button) {
	switch b {
	case ButtonLeft:
		c.rotating = false
	case ButtonMiddle, ButtonRight:
		c.panning = false
	}
}

// Move applies relative mouse motion in pixels to the active gesture.
func (c *Controls) Move(dx, dy float32) {
	if !c.Enabled {
		return
	}
	switch {
	case c.rotating:
		c.cam.HandleDrag(dx, dy)
	case c.panning:
		c.cam.HandlePan(dx, dy)
	}
}

// Wheel zooms by scroll ticks; positive moves closer.
func (c *Controls) Wheel(ticks float32) {
	if !c.Enabled || ticks == 0 {
		return
	}
	c.cam.HandleZoom(ticks)
}

// Active reports whether a drag gesture is in progress.
func (c *Controls) Active() bool {
	return c.rotating || c.panning
}
