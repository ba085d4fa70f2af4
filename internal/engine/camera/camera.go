// Package camera provides the orbit camera used to inspect the board.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
)

// OrbitCamera orbits a target point on a sphere and owns the perspective
// projection.
type OrbitCamera struct {
	Target mgl32.Vec3

	// Spherical coordinates around Target
	Distance float32
	Pitch    float32 // elevation above the XZ plane, radians
	Yaw      float32 // rotation about +Y, radians; 0 looks down -Z

	// Projection
	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	PanSensitivity  float32
}

// NewOrbitCamera places a camera at position looking at target.
func NewOrbitCamera(position, target mgl32.Vec3, fov, near, far float32) *OrbitCamera {
	c := &OrbitCamera{
		Target:          target,
		FOV:             fov,
		Aspect:          1,
		Near:            near,
		Far:             far,
		MinDistance:     5,
		MaxDistance:     far * 0.4,
		MinPitch:        -1.55,
		MaxPitch:        1.55,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.0015,
	}
	c.SetPosition(position)
	return c
}

// SetPosition moves the camera to an absolute world position, keeping the
// target. Distance limits are widened if needed so the position is kept.
func (c *OrbitCamera) SetPosition(p mgl32.Vec3) {
	off := p.Sub(c.Target)
	d := off.Len()
	if d == 0 {
		return
	}
	c.Distance = d
	c.Pitch = float32(math.Asin(float64(off[1] / d)))
	c.Yaw = float32(math.Atan2(float64(off[0]), float64(off[2])))
	c.MinDistance = min(c.MinDistance, d)
	c.MaxDistance = max(c.MaxDistance, d)
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp, sp := math.Cos(float64(c.Pitch)), math.Sin(float64(c.Pitch))
	cy, sy := math.Cos(float64(c.Yaw)), math.Sin(float64(c.Yaw))
	return c.Target.Add(mgl32.Vec3{
		c.Distance * float32(cp*sy),
		c.Distance * float32(sp),
		c.Distance * float32(cp*cy),
	})
}

// ViewMatrix returns the world-to-camera transform.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// SetViewport updates the aspect ratio from a drawable size in pixels.
// Degenerate sizes (minimized windows) are ignored.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// HandleDrag rotates around the target from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom moves toward (positive delta) or away from the target.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = mgl32.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandlePan slides the target in the camera's screen plane from a mouse
// drag delta in pixels. Speed scales with distance.
func (c *OrbitCamera) HandlePan(deltaX, deltaY float32) {
	forward := c.Target.Sub(c.Position()).Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() < 1e-6 {
		right = mgl32.Vec3{float32(math.Cos(float64(c.Yaw))), 0, float32(-math.Sin(float64(c.Yaw)))}
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()

	speed := c.Distance * c.PanSensitivity
	c.Target = c.Target.Add(right.Mul(-deltaX * speed)).Add(up.Mul(deltaY * speed))
}

// FitToBounds centers the target on b and backs off far enough to see it.
func (c *OrbitCamera) FitToBounds(b geometry.Bounds) {
	c.Target = b.Center()
	size := b.Size()
	radius := size.Len() / 2
	halfFOV := float64(mgl32.DegToRad(c.FOV)) / 2
	d := radius / float32(math.Sin(halfFOV))
	c.Distance = mgl32.Clamp(d, c.MinDistance, c.MaxDistance)
}
