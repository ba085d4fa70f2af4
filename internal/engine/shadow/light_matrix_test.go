package shadow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
)

func corners(b geometry.Bounds) []mgl32.Vec3 {
	var out []mgl32.Vec3
	for _, x := range []float32{b.Min[0], b.Max[0]} {
		for _, y := range []float32{b.Min[1], b.Max[1]} {
			for _, z := range []float32{b.Min[2], b.Max[2]} {
				out = append(out, mgl32.Vec3{x, y, z})
			}
		}
	}
	return out
}

func TestDirectionalLightMatrixCoversBounds(t *testing.T) {
	bounds := geometry.Bounds{Min: mgl32.Vec3{-80, -1, -70}, Max: mgl32.Vec3{80, 10, 70}}
	dirs := []mgl32.Vec3{
		{-60, 90, 30},
		{0, 1, 0},
		{1, 0.2, 0},
	}

	for _, d := range dirs {
		m := DirectionalLightMatrix(d, bounds)

		c := mgl32.TransformCoordinate(bounds.Center(), m)
		assert.InDelta(t, 0, c[0], 1e-4, "center x for %v", d)
		assert.InDelta(t, 0, c[1], 1e-4, "center y for %v", d)

		for _, p := range corners(bounds) {
			ndc := mgl32.TransformCoordinate(p, m)
			for axis := 0; axis < 3; axis++ {
				assert.True(t, ndc[axis] >= -1 && ndc[axis] <= 1, "corner %v axis %d = %v for light %v", p, axis, ndc[axis], d)
			}
		}
	}
}

func TestDirectionalLightMatrixDepthOrder(t *testing.T) {
	bounds := geometry.Bounds{Min: mgl32.Vec3{-10, 0, -10}, Max: mgl32.Vec3{10, 10, 10}}
	m := DirectionalLightMatrix(mgl32.Vec3{0, 1, 0}, bounds)

	high := mgl32.TransformCoordinate(mgl32.Vec3{0, 10, 0}, m)
	low := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, m)
	assert.Less(t, high[2], low[2], "points nearer the light have smaller depth")
}

func TestDirectionalLightMatrixZeroDirection(t *testing.T) {
	bounds := geometry.Bounds{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	assert.Equal(t,
		DirectionalLightMatrix(mgl32.Vec3{0, 1, 0}, bounds),
		DirectionalLightMatrix(mgl32.Vec3{}, bounds))
}

func TestBiasMatrix(t *testing.T) {
	lo := BiasMatrix.Mul4x1(mgl32.Vec4{-1, -1, -1, 1})
	hi := BiasMatrix.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, lo)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, hi)
}
