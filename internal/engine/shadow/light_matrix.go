package shadow

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
)

// DirectionalLightMatrix computes the view-projection used to render and
// sample the shadow map. toLight is the direction from the scene towards the
// light; bounds is the region that must be covered.
func DirectionalLightMatrix(toLight mgl32.Vec3, bounds geometry.Bounds) mgl32.Mat4 {
	if toLight.Len() == 0 {
		toLight = mgl32.Vec3{0, 1, 0}
	}
	dir := toLight.Normalize()
	center := bounds.Center()
	radius := max(bounds.Size().Len()/2, 1)

	// Far enough back that the whole bounding sphere is in front of the light.
	lightDistance := radius * 2
	lightPos := center.Add(dir.Mul(lightDistance))

	up := mgl32.Vec3{0, 1, 0}
	if math.Abs(float64(dir[1])) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(lightPos, center, up)

	// Padding avoids clipping at the map edges.
	halfSize := radius * 1.1
	far := lightDistance + halfSize
	proj := mgl32.Ortho(-halfSize, halfSize, -halfSize, halfSize, 0.1, far)

	return proj.Mul4(view)
}

// BiasMatrix maps clip space [-1,1] to texture space [0,1].
var BiasMatrix = mgl32.Mat4{
	0.5, 0, 0, 0,
	0, 0.5, 0, 0,
	0, 0, 0.5, 0,
	0.5, 0.5, 0.5, 1,
}
