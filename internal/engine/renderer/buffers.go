package renderer

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/ElliotMtb/battlefield-hexagons/internal/board"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/texture"
)

type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

func (m *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

type gpuLines struct {
	vao, vbo    uint32
	vertexCount int32
}

func (l *gpuLines) delete() {
	gl.DeleteVertexArrays(1, &l.vao)
	gl.DeleteBuffers(1, &l.vbo)
}

// mesh returns the GPU copy of m, uploading it on first use.
func (r *Renderer) mesh(m *geometry.Mesh) *gpuMesh {
	if g, ok := r.meshes[m]; ok {
		return g
	}
	g := &gpuMesh{indexCount: int32(len(m.Indices))}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		r.meshes[m] = g
		return g
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	vertexSize := int(unsafe.Sizeof(geometry.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// UV
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.meshes[m] = g
	r.log.Debug("mesh uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Uint32("vao", g.vao))
	return g
}

// lineBuffer returns the GPU copy of a line list, uploading it on first use.
func (r *Renderer) lineBuffer(points []mgl32.Vec3) *gpuLines {
	if len(points) == 0 {
		return nil
	}
	key := &points[0]
	if l, ok := r.lines[key]; ok {
		return l
	}
	l := &gpuLines{vertexCount: int32(len(points))}

	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)
	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(points)*3*4, unsafe.Pointer(&points[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	r.lines[key] = l
	return l
}

// UploadTileTextures uploads one texture per tile kind, replacing any
// previous upload for the same kind.
func (r *Renderer) UploadTileTextures(images map[board.Kind]*image.RGBA) {
	for k, img := range images {
		if img == nil || len(img.Pix) == 0 {
			continue
		}
		if old, ok := r.textures[k]; ok {
			gl.DeleteTextures(1, &old)
		}
		// Image rows run top-down; GL expects the first row at v = 0.
		flipped := image.NewRGBA(img.Bounds())
		copy(flipped.Pix, img.Pix)
		texture.FlipVertical(flipped)

		r.textures[k] = uploadTexture(flipped)
		r.log.Debug("tile texture uploaded", zap.Stringer("kind", k),
			zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	}
}

func (r *Renderer) tileTexture(k board.Kind) uint32 {
	if tex, ok := r.textures[k]; ok {
		return tex
	}
	return r.white
}
