// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms lit meshes and passes world-space data on.
//
//go:embed mesh.vert
var MeshVertexShader string

// LitFragmentShader shades tiles, ground and vehicles with hemisphere and
// directional light plus linear fog.
//
//go:embed lit.frag
var LitFragmentShader string

// SkyVertexShader is the vertex shader for the sky dome.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader blends bottom to top color by view height.
//
//go:embed sky.frag
var SkyFragmentShader string

// LineVertexShader is the vertex shader for edge and helper lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader draws lines in a flat color.
//
//go:embed line.frag
var LineFragmentShader string

// DepthVertexShader renders shadow casters from the sun's point of view.
//
//go:embed depth.vert
var DepthVertexShader string

// DepthFragmentShader writes depth only.
//
//go:embed depth.frag
var DepthFragmentShader string
