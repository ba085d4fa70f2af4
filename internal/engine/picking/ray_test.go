package picking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
)

func TestScreenToRayCenter(t *testing.T) {
	eye := mgl32.Vec3{0, 50, 50}
	view := mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 1, 1000)

	ray := ScreenToRay(400, 300, 800, 600, proj.Mul4(view).Inv())

	want := mgl32.Vec3{}.Sub(eye).Normalize()
	assert.InDelta(t, 1, ray.Direction.Len(), 1e-4)
	assert.InDelta(t, 1, ray.Direction.Dot(want), 1e-4)

	hit, ok := ray.IntersectPlaneY(0)
	require.True(t, ok)
	assert.InDelta(t, 0, hit[0], 1e-2)
	assert.InDelta(t, 0, hit[2], 1e-2)
}

func TestScreenToRayOffCenter(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 100, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 1, 1000)

	// Right half of the screen looks at +X from straight above.
	ray := ScreenToRay(600, 200, 800, 400, proj.Mul4(view).Inv())
	hit, ok := ray.IntersectPlaneY(0)
	require.True(t, ok)
	assert.Greater(t, hit[0], float32(0))
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, -1, 0}}
	p, ok := r.IntersectPlaneY(2)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 2, 0}, p)

	_, ok = r.IntersectPlaneY(20)
	assert.False(t, ok, "plane behind the origin")

	flat := Ray{Origin: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{1, 0, 0}}
	_, ok = flat.IntersectPlaneY(0)
	assert.False(t, ok, "parallel ray")
}

func TestIntersectBounds(t *testing.T) {
	box := geometry.Bounds{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}

	hit, ok := Ray{Origin: mgl32.Vec3{-5, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}}.IntersectBounds(box)
	require.True(t, ok)
	assert.InDelta(t, 4, hit, 1e-6)

	inside, ok := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 0, 1}}.IntersectBounds(box)
	require.True(t, ok)
	assert.InDelta(t, 1, inside, 1e-6)

	_, ok = Ray{Origin: mgl32.Vec3{-5, 3, 0}, Direction: mgl32.Vec3{1, 0, 0}}.IntersectBounds(box)
	assert.False(t, ok)

	_, ok = Ray{Origin: mgl32.Vec3{5, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}}.IntersectBounds(box)
	assert.False(t, ok, "box behind the ray")
}
