// Package renderer draws a scene description with OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/ElliotMtb/battlefield-hexagons/internal/board"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/shader"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/shader/shaders"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/shadow"
	"github.com/ElliotMtb/battlefield-hexagons/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ShadowSize int // shadow map resolution, 0 disables shadows
}

// Renderer owns GL programs and every GPU resource it uploads.
type Renderer struct {
	config Config
	log    *zap.Logger

	lit   *shader.Program
	sky   *shader.Program
	line  *shader.Program
	depth *shader.Program

	shadows *shadow.Map

	// GPU copies keyed by the CPU data they were built from
	meshes   map[*geometry.Mesh]*gpuMesh
	lines    map[*mgl32.Vec3]*gpuLines
	textures map[board.Kind]uint32
	white    uint32

	stats FrameStats
}

// FrameStats counts the work done by the last frame.
type FrameStats struct {
	DrawCalls    int
	Triangles    int
	TextureBinds int
	LineSegments int
	ShadowCasts  int
}

// New creates a renderer. It must be called after the GL context is current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		meshes:   make(map[*geometry.Mesh]*gpuMesh),
		lines:    make(map[*mgl32.Vec3]*gpuLines),
		textures: make(map[board.Kind]uint32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.MULTISAMPLE)

	var err error
	if r.lit, err = shader.NewProgram("lit", shaders.MeshVertexShader, shaders.LitFragmentShader); err != nil {
		return nil, err
	}
	if r.sky, err = shader.NewProgram("sky", shaders.SkyVertexShader, shaders.SkyFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.line, err = shader.NewProgram("line", shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		r.Close()
		return nil, err
	}

	if cfg.ShadowSize > 0 {
		if r.depth, err = shader.NewProgram("depth", shaders.DepthVertexShader, shaders.DepthFragmentShader); err != nil {
			r.Close()
			return nil, err
		}
		if r.shadows, err = shadow.NewMap(int32(cfg.ShadowSize)); err != nil {
			r.log.Warn("shadows disabled", zap.Error(err))
		} else {
			r.log.Info("shadow map created", zap.Int("resolution", cfg.ShadowSize))
		}
	}

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Pix = []byte{255, 255, 255, 255}
	r.white = uploadTexture(white)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases every GL resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for k, m := range r.meshes {
		m.delete()
		delete(r.meshes, k)
	}
	for k, l := range r.lines {
		l.delete()
		delete(r.lines, k)
	}
	for k, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
		delete(r.textures, k)
	}
	if r.white != 0 {
		gl.DeleteTextures(1, &r.white)
		r.white = 0
	}
	if r.shadows != nil {
		r.shadows.Destroy()
		r.shadows = nil
	}
	for _, p := range []*shader.Program{r.lit, r.sky, r.line, r.depth} {
		if p != nil {
			p.Delete()
		}
	}
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Resize updates the viewport to a new drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Stats returns counters for the last drawn frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// ReadPixels returns the back buffer as bottom-up RGBA rows along with its
// size.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

func uploadTexture(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return texID
}
