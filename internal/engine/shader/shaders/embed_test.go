package shaders

import (
	"strings"
	"testing"
)

func TestSourcesEmbedded(t *testing.T) {
	sources := map[string]string{
		"mesh.vert":  MeshVertexShader,
		"lit.frag":   LitFragmentShader,
		"sky.vert":   SkyVertexShader,
		"sky.frag":   SkyFragmentShader,
		"line.vert":  LineVertexShader,
		"line.frag":  LineFragmentShader,
		"depth.vert": DepthVertexShader,
		"depth.frag": DepthFragmentShader,
	}
	for name, src := range sources {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s: missing version header", name)
		}
		if !strings.Contains(src, "void main()") {
			t.Errorf("%s: missing main", name)
		}
	}
}

func TestUniformNames(t *testing.T) {
	tests := []struct {
		src      string
		uniforms []string
	}{
		{SkyFragmentShader, []string{"uTopColor", "uBottomColor", "uOffset", "uExponent"}},
		{LitFragmentShader, []string{"uHemiSky", "uHemiGround", "uSunDir", "uSunColor", "uFogColor", "uFogNear", "uFogFar", "uTexture"}},
		{MeshVertexShader, []string{"uModel", "uView", "uProjection", "uLightSpace"}},
		{LitFragmentShader, []string{"uShadows", "uReceiveShadow", "uShadowMap"}},
		{DepthVertexShader, []string{"uLightVP", "uModel"}},
		{LineVertexShader, []string{"uMVP"}},
	}
	for _, tt := range tests {
		for _, u := range tt.uniforms {
			if !strings.Contains(tt.src, "uniform") || !strings.Contains(tt.src, u) {
				t.Errorf("expected uniform %s in shader source", u)
			}
		}
	}
}
