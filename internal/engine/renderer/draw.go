package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/camera"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/lighting"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/shadow"
	"github.com/ElliotMtb/battlefield-hexagons/internal/scene"
)

// shading values understood by lit.frag
const (
	shadingPhong    = 0
	shadingLambert  = 1
	shadingStandard = 2
)

func shadingFor(k scene.MaterialKind) int32 {
	switch k {
	case scene.MaterialLambert:
		return shadingLambert
	case scene.MaterialStandard:
		return shadingStandard
	default:
		return shadingPhong
	}
}

// DrawScene renders one frame of s as seen by cam.
func (r *Renderer) DrawScene(s *scene.Scene, cam *camera.OrbitCamera) {
	r.stats = FrameStats{}
	lights := lighting.Pack(s.Hemisphere, s.Sun)

	// Shadow pass first; it binds its own framebuffer and viewport.
	var lightSpace mgl32.Mat4
	shadows := s.Sun.CastShadow && r.shadows.IsValid() && r.depth != nil
	if shadows {
		lightVP := shadow.DirectionalLightMatrix(lights.SunDir, s.ShadowBounds())
		r.drawShadowPass(s, lightVP)
		lightSpace = shadow.BiasMatrix.Mul4(lightVP)
	}

	bg := lighting.RGB(s.Background)
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()

	r.drawSky(s, view, proj)
	r.drawLit(s, cam, view, proj, lights, shadows, lightSpace)
	r.drawLines(s, proj.Mul4(view))
}

func (r *Renderer) drawSky(s *scene.Scene, view, proj mgl32.Mat4) {
	sky := s.Sky
	if sky.Mesh == nil {
		return
	}
	r.sky.Use()
	r.sky.SetMat4("uModel", sky.Transform)
	r.sky.SetMat4("uView", view)
	r.sky.SetMat4("uProjection", proj)
	r.sky.SetVec3("uTopColor", lighting.RGB(sky.TopColor))
	r.sky.SetVec3("uBottomColor", lighting.RGB(sky.BottomColor))
	r.sky.SetFloat("uOffset", sky.Offset)
	r.sky.SetFloat("uExponent", sky.Exponent)

	if sky.Material.BackSide {
		gl.CullFace(gl.FRONT)
	}
	gl.DepthMask(false)
	r.drawMesh(sky.Mesh)
	gl.DepthMask(true)
	gl.CullFace(gl.BACK)
}

func (r *Renderer) drawShadowPass(s *scene.Scene, lightVP mgl32.Mat4) {
	r.shadows.Bind()
	r.depth.Use()
	r.depth.SetMat4("uLightVP", lightVP)
	for _, obj := range s.Lit() {
		if !obj.CastShadow || obj.Mesh == nil {
			continue
		}
		r.depth.SetMat4("uModel", obj.Transform)
		r.drawMesh(obj.Mesh)
		r.stats.ShadowCasts++
	}
	r.shadows.Unbind()
}

func (r *Renderer) drawLit(s *scene.Scene, cam *camera.OrbitCamera, view, proj mgl32.Mat4,
	lights lighting.Uniforms, shadows bool, lightSpace mgl32.Mat4) {
	p := r.lit
	p.Use()
	p.SetMat4("uView", view)
	p.SetMat4("uProjection", proj)
	p.SetVec3("uCameraPos", cam.Position())
	p.SetVec3("uHemiSky", lights.SkyColor)
	p.SetVec3("uHemiGround", lights.GroundColor)
	p.SetVec3("uSunDir", lights.SunDir)
	p.SetVec3("uSunColor", lights.SunColor)

	p.SetVec3("uFogColor", lighting.RGB(s.Fog.Color))
	p.SetFloat("uFogNear", s.Fog.Near)
	p.SetFloat("uFogFar", s.Fog.Far)

	p.SetBool("uShadows", shadows)
	p.SetMat4("uLightSpace", lightSpace)
	p.SetInt("uShadowMap", 1)
	if shadows {
		r.shadows.BindTexture(gl.TEXTURE1)
	}

	gl.ActiveTexture(gl.TEXTURE0)
	p.SetInt("uTexture", 0)

	var bound uint32
	for _, obj := range scene.SortForDraw(s.Lit()) {
		if obj.Mesh == nil {
			continue
		}
		m := obj.Material
		p.SetMat4("uModel", obj.Transform)
		p.SetInt("uShading", shadingFor(m.Kind))
		p.SetVec3("uColor", lighting.RGB(m.Color))
		p.SetFloat("uRoughness", m.Roughness)
		p.SetFloat("uMetalness", m.Metalness)
		p.SetBool("uUseTexture", m.Textured)
		p.SetBool("uReceiveShadow", obj.ReceiveShadow)

		tex := r.white
		if m.Textured {
			tex = r.tileTexture(m.Texture)
		}
		if tex != bound {
			gl.BindTexture(gl.TEXTURE_2D, tex)
			bound = tex
			r.stats.TextureBinds++
		}
		r.drawMesh(obj.Mesh)
	}
}

func (r *Renderer) drawMesh(m *geometry.Mesh) {
	g := r.mesh(m)
	if g.vao == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	r.stats.DrawCalls++
	r.stats.Triangles += int(g.indexCount) / 3
}

func (r *Renderer) drawLines(s *scene.Scene, viewProj mgl32.Mat4) {
	sets := s.Lines()
	if len(sets) == 0 {
		return
	}
	r.line.Use()
	for _, ls := range sets {
		buf := r.lineBuffer(ls.Points)
		if buf == nil {
			continue
		}
		r.line.SetMat4("uMVP", viewProj.Mul4(ls.Transform))
		r.line.SetVec3("uColor", lighting.RGB(ls.Color))
		gl.BindVertexArray(buf.vao)
		gl.DrawArrays(gl.LINES, 0, buf.vertexCount)
		r.stats.DrawCalls++
		r.stats.LineSegments += int(buf.vertexCount) / 2
	}
	gl.BindVertexArray(0)
}
