// Package geometry builds CPU-side triangle meshes for the scene: tile discs,
// the ground plane and the sky dome. Builders follow the vertex order and UV
// layout of the common WebGL primitives so textures land the same way.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved mesh vertex as uploaded to the GPU.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// VertexStride is the size in bytes of one Vertex.
const VertexStride = 8 * 4

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Union returns the smallest box containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: mgl32.Vec3{min(b.Min[0], o.Min[0]), min(b.Min[1], o.Min[1]), min(b.Min[2], o.Min[2])},
		Max: mgl32.Vec3{max(b.Max[0], o.Max[0]), max(b.Max[1], o.Max[1]), max(b.Max[2], o.Max[2])},
	}
}

// Transform returns the box around all eight corners of b moved by mat.
func (b Bounds) Transform(mat mgl32.Mat4) Bounds {
	var out Bounds
	for i := 0; i < 8; i++ {
		c := mgl32.Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		p := mgl32.TransformCoordinate(c, mat)
		if i == 0 {
			out = Bounds{Min: p, Max: p}
			continue
		}
		out = out.Union(Bounds{Min: p, Max: p})
	}
	return out
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds computes the bounding box of all vertex positions. An empty mesh
// yields the zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = min(b.Min[i], v.Position[i])
			b.Max[i] = max(b.Max[i], v.Position[i])
		}
	}
	return b
}

// Transform returns a copy of the mesh with positions multiplied by mat and
// normals by its inverse transpose.
func (m *Mesh) Transform(mat mgl32.Mat4) *Mesh {
	normalMat := mat.Mat3().Inv().Transpose()
	out := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  append([]uint32(nil), m.Indices...),
	}
	for i, v := range m.Vertices {
		n := normalMat.Mul3x1(v.Normal)
		if n.Len() > 0 {
			n = n.Normalize()
		}
		out.Vertices[i] = Vertex{
			Position: mgl32.TransformCoordinate(v.Position, mat),
			Normal:   n,
			UV:       v.UV,
		}
	}
	return out
}

// Circle builds a flat disc of the given radius in the XY plane facing +Z,
// split into segments triangles fanning out from a center vertex. The first
// rim vertex sits on +X. UVs map the disc into the unit square.
func Circle(radius float32, segments int) *Mesh {
	segments = max(segments, 3)
	m := &Mesh{
		Vertices: make([]Vertex, 0, segments+2),
		Indices:  make([]uint32, 0, segments*3),
	}
	normal := mgl32.Vec3{0, 0, 1}
	m.Vertices = append(m.Vertices, Vertex{Normal: normal, UV: mgl32.Vec2{0.5, 0.5}})

	for s := 0; s <= segments; s++ {
		theta := 2 * math.Pi * float64(s) / float64(segments)
		cos, sin := float32(math.Cos(theta)), float32(math.Sin(theta))
		m.Vertices = append(m.Vertices, Vertex{
			Position: mgl32.Vec3{radius * cos, radius * sin, 0},
			Normal:   normal,
			UV:       mgl32.Vec2{(cos + 1) / 2, (sin + 1) / 2},
		})
	}
	for i := uint32(1); i <= uint32(segments); i++ {
		m.Indices = append(m.Indices, i, i+1, 0)
	}
	return m
}

// Plane builds a single-quad rectangle centered on the origin in the XY
// plane facing +Z.
func Plane(width, height float32) *Mesh {
	hw, hh := width/2, height/2
	normal := mgl32.Vec3{0, 0, 1}
	return &Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-hw, hh, 0}, Normal: normal, UV: mgl32.Vec2{0, 1}},
			{Position: mgl32.Vec3{hw, hh, 0}, Normal: normal, UV: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-hw, -hh, 0}, Normal: normal, UV: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{hw, -hh, 0}, Normal: normal, UV: mgl32.Vec2{1, 0}},
		},
		Indices: []uint32{0, 2, 1, 2, 3, 1},
	}
}

// Sphere builds a UV sphere. Rows run from the +Y pole (v=0) to the -Y pole;
// the pole rows contribute one triangle per column instead of two.
func Sphere(radius float32, widthSegments, heightSegments int) *Mesh {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (widthSegments+1)*(heightSegments+1)),
	}
	grid := make([][]uint32, heightSegments+1)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		var uOffset float64
		switch iy {
		case 0:
			uOffset = 0.5 / float64(widthSegments)
		case heightSegments:
			uOffset = -0.5 / float64(widthSegments)
		}

		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi, theta := u*2*math.Pi, v*math.Pi
			p := mgl32.Vec3{
				float32(-float64(radius) * math.Cos(phi) * math.Sin(theta)),
				float32(float64(radius) * math.Cos(theta)),
				float32(float64(radius) * math.Sin(phi) * math.Sin(theta)),
			}
			n := p
			if n.Len() > 0 {
				n = n.Normalize()
			}
			row[ix] = uint32(len(m.Vertices))
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				Normal:   n,
				UV:       mgl32.Vec2{float32(u + uOffset), float32(1 - v)},
			})
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	return m
}
