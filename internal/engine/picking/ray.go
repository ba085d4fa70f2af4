// Package picking provides ray casting from screen coordinates.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // normalized
}

// ScreenToRay converts pixel coordinates to a world-space ray.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // screen Y grows down

	near := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 1, 1})

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near, Direction: dir}
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(ndc)
	if p[3] != 0 {
		return p.Vec3().Mul(1 / p[3])
	}
	return p.Vec3()
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane at planeY.
func (r Ray) IntersectPlaneY(planeY float32) (mgl32.Vec3, bool) {
	if math.Abs(float64(r.Direction[1])) < 0.001 {
		return mgl32.Vec3{}, false // parallel
	}
	t := (planeY - r.Origin[1]) / r.Direction[1]
	if t < 0 {
		return mgl32.Vec3{}, false // behind the origin
	}
	return r.At(t), true
}

// IntersectBounds tests the ray against an axis-aligned box with the slab
// method. It returns the entry distance, or the exit distance when the ray
// starts inside.
func (r Ray) IntersectBounds(box geometry.Bounds) (float32, bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < box.Min[axis] || o > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - o) / d
		t2 := (box.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
