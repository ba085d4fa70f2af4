// Package lighting describes the two light sources of the scene and packs
// them for shader upload.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Hemisphere is a sky/ground ambient light. Surfaces facing up receive
// SkyColor, surfaces facing down GroundColor, blended by the normal's Y.
type Hemisphere struct {
	SkyColor    colorful.Color
	GroundColor colorful.Color
	Intensity   float32
	Position    mgl32.Vec3 // only used to place the helper marker
}

// Directional is a light at infinity shining from Position toward Target.
type Directional struct {
	Color      colorful.Color
	Intensity  float32
	Position   mgl32.Vec3
	Target     mgl32.Vec3
	CastShadow bool
}

// Direction returns the unit vector from the lit surface toward the light.
func (d Directional) Direction() mgl32.Vec3 {
	dir := d.Position.Sub(d.Target)
	if dir.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return dir.Normalize()
}

// Uniforms is the light state in the form the shaders consume.
type Uniforms struct {
	SkyColor    mgl32.Vec3
	GroundColor mgl32.Vec3
	SunDir      mgl32.Vec3
	SunColor    mgl32.Vec3
}

// Pack premultiplies colors by intensity.
func Pack(hemi Hemisphere, sun Directional) Uniforms {
	return Uniforms{
		SkyColor:    RGB(hemi.SkyColor).Mul(hemi.Intensity),
		GroundColor: RGB(hemi.GroundColor).Mul(hemi.Intensity),
		SunDir:      sun.Direction(),
		SunColor:    RGB(sun.Color).Mul(sun.Intensity),
	}
}

// RGB converts a color to a float vector for uniform upload.
func RGB(c colorful.Color) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

// HSL builds a color from hue, saturation and lightness all in [0, 1].
func HSL(h, s, l float64) colorful.Color {
	return colorful.Hsl(h*360, s, l)
}

// Hex builds a color from a 0xRRGGBB value.
func Hex(v uint32) colorful.Color {
	return colorful.Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}
