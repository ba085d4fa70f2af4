// Package scene assembles a renderer-agnostic description of the battlefield:
// the tile board laid flat, vehicles, lights, fog, ground and sky dome.
// Nothing here touches OpenGL; the renderer consumes the result.
package scene

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ElliotMtb/battlefield-hexagons/internal/board"
	"github.com/ElliotMtb/battlefield-hexagons/internal/config"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/debug"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/lighting"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/picking"
)

// MaterialKind selects the shading model for an object.
type MaterialKind int

const (
	// MaterialPhong is textured per-pixel lighting with a specular term (tiles).
	MaterialPhong MaterialKind = iota
	// MaterialLambert is diffuse-only lighting (ground).
	MaterialLambert
	// MaterialStandard approximates roughness/metalness shading (vehicles).
	MaterialStandard
	// MaterialSkyGradient is the unlit vertical gradient of the sky dome.
	MaterialSkyGradient
)

func (k MaterialKind) String() string {
	switch k {
	case MaterialPhong:
		return "phong"
	case MaterialLambert:
		return "lambert"
	case MaterialStandard:
		return "standard"
	case MaterialSkyGradient:
		return "sky"
	}
	return "unknown"
}

// Material describes how an object is shaded.
type Material struct {
	Kind      MaterialKind
	Color     colorful.Color
	Textured  bool
	Texture   board.Kind // valid when Textured
	Roughness float32
	Metalness float32
	BackSide  bool // draw inner faces only
}

// Object is one mesh placed in the world.
type Object struct {
	Name          string
	Mesh          *geometry.Mesh
	Transform     mgl32.Mat4
	Material      Material
	CastShadow    bool
	ReceiveShadow bool
}

// WorldPosition returns the object's origin in world space.
func (o Object) WorldPosition() mgl32.Vec3 {
	return o.Transform.Col(3).Vec3()
}

// LineSet is a list of line segments (pairs of points) with one color.
type LineSet struct {
	Name      string
	Points    []mgl32.Vec3
	Color     colorful.Color
	Transform mgl32.Mat4
}

// Fog is linear distance fog.
type Fog struct {
	Color colorful.Color
	Near  float32
	Far   float32
}

// Sky is the gradient dome surrounding the scene.
type Sky struct {
	Object
	TopColor    colorful.Color
	BottomColor colorful.Color
	Offset      float32
	Exponent    float32
}

// CameraSetup is the initial camera placement.
type CameraSetup struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	FOV      float32 // degrees
	Near     float32
	Far      float32
}

// Scene is the complete description handed to the renderer.
type Scene struct {
	Background colorful.Color
	Fog        Fog
	Hemisphere lighting.Hemisphere
	Sun        lighting.Directional
	Camera     CameraSetup

	Sky    Sky
	Ground Object

	Board      *board.Board
	BoardGroup mgl32.Mat4 // lays the XY board plane onto the XZ ground
	Tiles      []Object
	Edges      []LineSet

	Vehicles  []Object
	Helpers   []LineSet
	Selection *LineSet

	opts    Options
	outline []mgl32.Vec3
}

// Options controls scene assembly.
type Options struct {
	CameraFOV        float32
	CameraNear       float32
	CameraFar        float32
	CameraPosition   mgl32.Vec3
	FogNear          float32
	FogFar           float32
	VehicleClones    []mgl32.Vec3
	ShowEdges        bool
	ShowLightHelpers bool
	ShowBoardBounds  bool
}

// DefaultOptions mirrors the default viewer configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig extracts scene options from the viewer config.
func OptionsFromConfig(cfg *config.Config) Options {
	sc := cfg.Scene
	opts := Options{
		CameraFOV:        sc.CameraFOV,
		CameraNear:       sc.CameraNear,
		CameraFar:        sc.CameraFar,
		CameraPosition:   mgl32.Vec3(sc.CameraPosition),
		FogNear:          sc.FogNear,
		FogFar:           sc.FogFar,
		ShowEdges:        cfg.Board.ShowEdges,
		ShowLightHelpers: sc.ShowLightHelpers,
		ShowBoardBounds:  sc.ShowBoardBounds,
	}
	for _, p := range sc.VehicleClones {
		opts.VehicleClones = append(opts.VehicleClones, mgl32.Vec3(p))
	}
	return opts
}

// Fixed scene dimensions.
const (
	hexSegments   = 6
	hexRotation   = math.Pi / 6
	groundSize    = 10000
	skyRadius     = 4000
	skyWidthSegs  = 32
	skyHeightSegs = 15
	skyOffset     = 33
	skyExponent   = 0.6
	helperSize    = 10
	selectionLift = 0.05
)

var selectionColor = lighting.HSL(0.14, 1, 0.5)

// VehicleColor is the flat paint applied to every vehicle mesh.
var VehicleColor = lighting.Hex(0x44607B)

// ErrNoBoard is returned by Build when no board is supplied.
var ErrNoBoard = errors.New("scene: board is required")

// Build lays out every static part of the scene around board b.
func Build(b *board.Board, opts Options) (*Scene, error) {
	if b == nil {
		return nil, ErrNoBoard
	}

	s := &Scene{
		Background: lighting.HSL(0.6, 0, 1),
		Board:      b,
		BoardGroup: mgl32.HomogRotate3DX(-math.Pi / 2),
		opts:       opts,
	}

	s.Hemisphere = lighting.Hemisphere{
		SkyColor:    lighting.HSL(0.6, 1, 0.6),
		GroundColor: lighting.HSL(0.095, 1, 0.75),
		Intensity:   0.6,
		Position:    mgl32.Vec3{0, 50, 0},
	}
	s.Sun = lighting.Directional{
		Color:      lighting.HSL(0.1, 1, 0.95),
		Intensity:  1,
		Position:   mgl32.Vec3{-60, 90, 30},
		CastShadow: true,
	}

	s.Camera = CameraSetup{
		Position: opts.CameraPosition,
		FOV:      opts.CameraFOV,
		Near:     opts.CameraNear,
		Far:      opts.CameraFar,
	}

	s.buildGround()
	s.buildSky()
	s.buildTiles()

	// Fog is created from the background, then takes the sky's bottom color.
	s.Fog = Fog{Color: s.Background, Near: opts.FogNear, Far: opts.FogFar}
	s.Fog.Color = s.Sky.BottomColor

	if opts.ShowLightHelpers {
		s.Helpers = append(s.Helpers, LineSet{
			Name:      "hemisphere-helper",
			Points:    octahedron(helperSize),
			Color:     s.Hemisphere.SkyColor,
			Transform: mgl32.Translate3D(s.Hemisphere.Position.Elem()),
		})
	}
	if opts.ShowBoardBounds {
		bb := s.BoardBounds()
		bb.Max[1] = float32(b.TileRadius())
		s.Helpers = append(s.Helpers, LineSet{
			Name:      "board-bounds",
			Points:    debug.BoxLines(bb),
			Color:     VehicleColor,
			Transform: mgl32.Ident4(),
		})
	}
	return s, nil
}

func (s *Scene) buildGround() {
	s.Ground = Object{
		Name:      "ground",
		Mesh:      geometry.Plane(groundSize, groundSize),
		Transform: mgl32.Translate3D(0, -0.1, -1).Mul4(mgl32.HomogRotate3DX(-math.Pi / 2)),
		Material: Material{
			Kind:  MaterialLambert,
			Color: lighting.HSL(0.095, 1, 0.75),
		},
		ReceiveShadow: true,
	}
}

func (s *Scene) buildSky() {
	s.Sky = Sky{
		Object: Object{
			Name:      "sky",
			Mesh:      geometry.Sphere(skyRadius, skyWidthSegs, skyHeightSegs),
			Transform: mgl32.HomogRotate3DX(math.Pi / 2),
			Material:  Material{Kind: MaterialSkyGradient, BackSide: true},
		},
		TopColor:    s.Hemisphere.SkyColor,
		BottomColor: lighting.Hex(0xffffff),
		Offset:      skyOffset,
		Exponent:    skyExponent,
	}
}

func (s *Scene) buildTiles() {
	disc := geometry.Circle(float32(s.Board.TileRadius()), hexSegments)
	var outline []mgl32.Vec3
	if s.opts.ShowEdges {
		outline = disc.OutlineEdges()
	}

	tiles := s.Board.Tiles()
	s.Tiles = make([]Object, 0, len(tiles))
	for _, t := range tiles {
		local := mgl32.Translate3D(float32(t.Position.X), float32(t.Position.Y), float32(t.Position.Z)).
			Mul4(mgl32.HomogRotate3DZ(hexRotation))
		world := s.BoardGroup.Mul4(local)

		s.Tiles = append(s.Tiles, Object{
			Name:      "tile " + t.Kind.String(),
			Mesh:      disc,
			Transform: world,
			Material: Material{
				Kind:     MaterialPhong,
				Color:    lighting.Hex(0xffffff),
				Textured: true,
				Texture:  t.Kind,
			},
			ReceiveShadow: true,
		})
		if outline != nil {
			s.Edges = append(s.Edges, LineSet{
				Name:      "tile-edges",
				Points:    outline,
				Color:     lighting.Hex(0x000000),
				Transform: world,
			})
		}
	}
}

// AttachVehicle places one copy of mesh at every configured clone offset.
// The model is authored Z-up and is stood upright first. Calling it again
// replaces earlier vehicles.
func (s *Scene) AttachVehicle(mesh *geometry.Mesh) {
	s.Vehicles = s.Vehicles[:0]
	if mesh == nil {
		return
	}
	upright := mgl32.HomogRotate3DX(-math.Pi / 2)
	for i, off := range s.opts.VehicleClones {
		name := "vehicle"
		if i > 0 {
			name = "vehicle clone"
		}
		s.Vehicles = append(s.Vehicles, Object{
			Name:      name,
			Mesh:      mesh,
			Transform: mgl32.Translate3D(off.Elem()).Mul4(upright),
			Material: Material{
				Kind:      MaterialStandard,
				Color:     VehicleColor,
				Roughness: 0.75,
				Metalness: 0.75,
			},
			CastShadow:    true,
			ReceiveShadow: true,
		})
	}
}

// Lit returns every lit object in draw order: ground, tiles, vehicles.
func (s *Scene) Lit() []Object {
	objs := make([]Object, 0, 1+len(s.Tiles)+len(s.Vehicles))
	objs = append(objs, s.Ground)
	objs = append(objs, s.Tiles...)
	objs = append(objs, s.Vehicles...)
	return objs
}

// Lines returns tile edges, then helpers, then the selection outline.
func (s *Scene) Lines() []LineSet {
	lines := make([]LineSet, 0, len(s.Edges)+len(s.Helpers)+1)
	lines = append(lines, s.Edges...)
	lines = append(lines, s.Helpers...)
	if s.Selection != nil {
		lines = append(lines, *s.Selection)
	}
	return lines
}

// TileAt maps a world-space point on the ground plane to the tile under it.
func (s *Scene) TileAt(world mgl32.Vec3) (board.Tile, int, bool) {
	p := mgl32.TransformCoordinate(world, s.BoardGroup.Inv())
	return s.Board.TileAt(float64(p[0]), float64(p[1]))
}

// Pick returns the tile hit by a world-space ray. Rays that miss the board
// box are rejected before the ground plane test.
func (s *Scene) Pick(ray picking.Ray) (board.Tile, int, bool) {
	if _, ok := ray.IntersectBounds(s.BoardBounds()); !ok {
		return board.Tile{}, -1, false
	}
	hit, ok := ray.IntersectPlaneY(0)
	if !ok {
		return board.Tile{}, -1, false
	}
	return s.TileAt(hit)
}

// Select outlines tile i. A negative index clears the selection.
func (s *Scene) Select(i int) {
	if i < 0 || i >= len(s.Tiles) {
		s.Selection = nil
		return
	}
	if s.outline == nil {
		s.outline = s.Tiles[i].Mesh.OutlineEdges()
	}
	s.Selection = &LineSet{
		Name:      "selection",
		Points:    s.outline,
		Color:     selectionColor,
		Transform: s.Tiles[i].Transform.Mul4(mgl32.Translate3D(0, 0, selectionLift)),
	}
}

// ShadowBounds returns the box the sun's shadow map must cover: the board
// and every vehicle.
func (s *Scene) ShadowBounds() geometry.Bounds {
	b := s.BoardBounds()
	for _, v := range s.Vehicles {
		if v.Mesh == nil || !v.CastShadow {
			continue
		}
		b = b.Union(v.Mesh.Bounds().Transform(v.Transform))
	}
	return b
}

// BoardBounds returns the world-space box around all tile centers, padded by
// one tile radius on the ground plane.
func (s *Scene) BoardBounds() geometry.Bounds {
	var b geometry.Bounds
	for i, t := range s.Tiles {
		p := t.WorldPosition()
		tb := geometry.Bounds{Min: p, Max: p}
		if i == 0 {
			b = tb
			continue
		}
		b = b.Union(tb)
	}
	r := float32(s.Board.TileRadius())
	b.Min = b.Min.Sub(mgl32.Vec3{r, 0, r})
	b.Max = b.Max.Add(mgl32.Vec3{r, 0, r})
	return b
}

// octahedron returns the 12 edges of an octahedron of the given half-size
// as a line list.
func octahedron(size float32) []mgl32.Vec3 {
	top, bottom := mgl32.Vec3{0, size, 0}, mgl32.Vec3{0, -size, 0}
	ring := []mgl32.Vec3{{size, 0, 0}, {0, 0, size}, {-size, 0, 0}, {0, 0, -size}}
	var pts []mgl32.Vec3
	for i, p := range ring {
		next := ring[(i+1)%len(ring)]
		pts = append(pts, top, p, bottom, p, p, next)
	}
	return pts
}
