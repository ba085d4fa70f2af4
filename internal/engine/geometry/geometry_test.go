package geometry

import (
	"math"
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleHexagon(t *testing.T) {
	m := Circle(7, 6)

	require.Len(t, m.Vertices, 8)
	require.Len(t, m.Indices, 18)
	assert.Equal(t, 6, m.TriangleCount())

	center := m.Vertices[0]
	assert.Equal(t, mgl32.Vec3{}, center.Position)
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, center.UV)

	first := m.Vertices[1]
	assert.InDelta(t, 7, first.Position[0], 1e-5)
	assert.InDelta(t, 0, first.Position[1], 1e-5)
	assert.InDelta(t, 1, first.UV[0], 1e-6)
	assert.InDelta(t, 0.5, first.UV[1], 1e-6)

	for i, v := range m.Vertices[1:] {
		assert.InDelta(t, 7, v.Position.Len(), 1e-4, "rim vertex %d", i)
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Normal)
	}

	// Fan closes back on the center.
	for i := 2; i < len(m.Indices); i += 3 {
		assert.Equal(t, uint32(0), m.Indices[i])
	}
}

func TestCircleMinimumSegments(t *testing.T) {
	m := Circle(1, 1)
	assert.Equal(t, 3, m.TriangleCount())
}

func TestCircleOutline(t *testing.T) {
	lines := Circle(7, 6).OutlineEdges()

	require.Len(t, lines, 12, "a hexagon has six rim edges")
	for i := 0; i < len(lines); i += 2 {
		assert.InDelta(t, 7, lines[i].Sub(lines[i+1]).Len(), 1e-4)
	}
}

func TestPlane(t *testing.T) {
	m := Plane(2, 4)

	require.Len(t, m.Vertices, 4)
	assert.Equal(t, 2, m.TriangleCount())

	b := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-1, -2, 0}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, b.Max)
	assert.Equal(t, mgl32.Vec3{2, 4, 0}, b.Size())
	assert.Equal(t, mgl32.Vec3{}, b.Center())
}

func TestSphere(t *testing.T) {
	m := Sphere(4000, 32, 15)

	assert.Len(t, m.Vertices, 33*16)
	assert.Equal(t, 32*(2*15-2), m.TriangleCount())

	for _, v := range m.Vertices {
		assert.InDelta(t, 4000, v.Position.Len(), 0.5)
	}
	assert.InDelta(t, 4000, m.Vertices[0].Position[1], 1e-3, "first row is the +Y pole")
	assert.InDelta(t, -4000, m.Vertices[len(m.Vertices)-1].Position[1], 1e-3)

	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices))
	}
}

func TestTransformRotatesFlat(t *testing.T) {
	flat := Circle(7, 6).Transform(mgl32.HomogRotate3DX(-math.Pi / 2))

	for _, v := range flat.Vertices {
		assert.InDelta(t, 0, v.Position[1], 1e-5)
		assert.InDelta(t, 1, v.Normal[1], 1e-5, "normal should point up")
	}
	b := flat.Bounds()
	assert.InDelta(t, 7, b.Max[0], 1e-5)
}

func TestBoundsUnion(t *testing.T) {
	a := Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	b := Bounds{Min: mgl32.Vec3{-2, 0.5, 0}, Max: mgl32.Vec3{0, 3, 0.5}}

	u := a.Union(b)
	assert.Equal(t, mgl32.Vec3{-2, 0, 0}, u.Min)
	assert.Equal(t, mgl32.Vec3{1, 3, 1}, u.Max)
}

func TestEmptyMeshBounds(t *testing.T) {
	assert.Equal(t, Bounds{}, (&Mesh{}).Bounds())
}

func TestVertexStride(t *testing.T) {
	assert.Equal(t, uintptr(VertexStride), unsafe.Sizeof(Vertex{}))
}

func TestBoundsTransform(t *testing.T) {
	b := Bounds{Min: mgl32.Vec3{-1, 0, -2}, Max: mgl32.Vec3{1, 1, 2}}

	moved := b.Transform(mgl32.Translate3D(1, 2, 3))
	assert.Equal(t, mgl32.Vec3{0, 2, 1}, moved.Min)
	assert.Equal(t, mgl32.Vec3{2, 3, 5}, moved.Max)

	// Quarter turn about Y swaps the X and Z extents.
	turned := b.Transform(mgl32.HomogRotate3DY(math.Pi / 2))
	assert.InDelta(t, -2, turned.Min[0], 1e-5)
	assert.InDelta(t, 2, turned.Max[0], 1e-5)
	assert.InDelta(t, -1, turned.Min[2], 1e-5)
	assert.InDelta(t, 1, turned.Max[2], 1e-5)
}
