// Package shadow provides shadow mapping for the directional sun light.
package shadow

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Map is a depth-only framebuffer sampled with sampler2DShadow.
type Map struct {
	FBO          uint32
	DepthTexture uint32
	Resolution   int32    // width = height
	prevViewport [4]int32 // restored by Unbind
}

// DefaultResolution is the default shadow map resolution.
const DefaultResolution = 2048

// NewMap creates a shadow map. Resolution should be a power of two.
func NewMap(resolution int32) (*Map, error) {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	sm := &Map{Resolution: resolution}

	gl.GenFramebuffers(1, &sm.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)

	gl.GenTextures(1, &sm.DepthTexture)
	gl.BindTexture(gl.TEXTURE_2D, sm.DepthTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, resolution, resolution, 0,
		gl.DEPTH_COMPONENT, gl.FLOAT, nil)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Outside the light frustum counts as lit.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	borderColor := []float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.DepthTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		sm.Destroy()
		return nil, fmt.Errorf("shadow framebuffer incomplete: 0x%x", status)
	}
	return sm, nil
}

// Bind targets the shadow map for the depth pass and sets its viewport.
func (sm *Map) Bind() {
	gl.GetIntegerv(gl.VIEWPORT, &sm.prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)
	gl.Viewport(0, 0, sm.Resolution, sm.Resolution)
	gl.Clear(gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// Front-face culling reduces acne on closed meshes.
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)
}

// Unbind restores the default framebuffer, viewport and culling.
func (sm *Map) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(sm.prevViewport[0], sm.prevViewport[1], sm.prevViewport[2], sm.prevViewport[3])
	gl.CullFace(gl.BACK)
	gl.DepthFunc(gl.LEQUAL)
}

// BindTexture binds the depth texture to a texture unit for sampling.
func (sm *Map) BindTexture(textureUnit uint32) {
	gl.ActiveTexture(textureUnit)
	gl.BindTexture(gl.TEXTURE_2D, sm.DepthTexture)
}

// Destroy releases the GPU resources.
func (sm *Map) Destroy() {
	if sm.FBO != 0 {
		gl.DeleteFramebuffers(1, &sm.FBO)
		sm.FBO = 0
	}
	if sm.DepthTexture != 0 {
		gl.DeleteTextures(1, &sm.DepthTexture)
		sm.DepthTexture = 0
	}
}

// IsValid reports whether the map can be rendered into.
func (sm *Map) IsValid() bool {
	return sm != nil && sm.FBO != 0 && sm.DepthTexture != 0
}
