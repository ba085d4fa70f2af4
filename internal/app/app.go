// Package app wires the board, scene, window and renderer into the viewer's
// main loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/ElliotMtb/battlefield-hexagons/internal/assets"
	"github.com/ElliotMtb/battlefield-hexagons/internal/board"
	"github.com/ElliotMtb/battlefield-hexagons/internal/config"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/camera"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/debug"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/input"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/picking"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/renderer"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/window"
	"github.com/ElliotMtb/battlefield-hexagons/internal/logger"
	"github.com/ElliotMtb/battlefield-hexagons/internal/scene"
)

const title = "Battlefield Hexagons"

// App is the running viewer.
type App struct {
	cfg *config.Config
	log *zap.Logger

	assets   *assets.Manager
	scene    *scene.Scene
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	controls *camera.Controls
	shots    *debug.ScreenshotCapture

	// left-button press position, for telling clicks from drags
	pressX, pressY int
}

// clickSlop is how far in pixels the mouse may move between press and
// release for the gesture to count as a click.
const clickSlop = 3

// New lays out the board, builds the scene and opens the window.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		log:    logger.Named("app"),
		assets: assets.NewDirManager(cfg.Assets.Root),
		input:  input.New(),
		shots:  debug.NewScreenshotCapture("screenshots", "hexboard"),
	}

	// Resolve a clock seed up front so a saved config reproduces this board.
	if cfg.Board.Seed == 0 {
		cfg.Board.Seed = uint64(time.Now().UnixNano())
	}
	b, err := board.Generate(cfg.Board.TileRadius, cfg.Board.Rings, board.NewSource(cfg.Board.Seed))
	if err != nil {
		return nil, fmt.Errorf("laying out board: %w", err)
	}
	a.log.Info("board generated",
		zap.Int("tiles", b.Len()),
		zap.Int("rings", b.Rings()),
		zap.Float64("tile_radius", b.TileRadius()),
		zap.Uint64("seed", cfg.Board.Seed),
	)
	hist := b.Histogram()
	for _, k := range board.Kinds() {
		a.log.Debug("kind count", zap.Stringer("kind", k), zap.Int("tiles", hist[k]))
	}

	a.scene, err = scene.Build(b, scene.OptionsFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	a.loadVehicle()

	// Window before renderer: GL calls need a current context.
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    4,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ShadowSize: cfg.Graphics.ShadowMap,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.loadTextures(); err != nil {
		a.Close()
		return nil, err
	}

	sc := a.scene.Camera
	a.camera = camera.NewOrbitCamera(sc.Position, mgl32.Vec3{}, sc.FOV, sc.Near, sc.Far)
	a.camera.SetViewport(dw, dh)
	a.controls = camera.NewControls(a.camera)

	a.log.Info("viewer initialized")
	return a, nil
}

// loadVehicle attaches the vehicle model. A missing or broken model leaves
// the board without vehicles.
func (a *App) loadVehicle() {
	name := a.cfg.Assets.VehicleModel
	if name == "" {
		return
	}
	start := time.Now()
	a.log.Info("loading vehicle model", zap.String("path", name))
	mesh, err := a.assets.LoadModel(name)
	if err != nil {
		a.log.Warn("vehicle model unavailable", zap.String("path", name), zap.Error(err))
		return
	}
	a.scene.AttachVehicle(mesh)
	a.log.Info("vehicle model loaded",
		zap.String("path", name),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("clones", len(a.scene.Vehicles)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func (a *App) loadTextures() error {
	paths, err := assets.ParseTexturePaths(a.cfg.Assets.Textures)
	if err != nil {
		return fmt.Errorf("texture paths: %w", err)
	}
	images, fallbacks := a.assets.TileTextures(paths)
	a.renderer.UploadTileTextures(images)
	if fallbacks > 0 {
		a.log.Warn("using fallback tile textures", zap.Int("count", fallbacks))
	}
	return nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	var frameBudget time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting render loop")
	for {
		frameStart := time.Now()

		if a.input.Update() {
			break
		}
		a.handleEvents()
		a.resizeToDisplay()

		a.renderer.DrawScene(a.scene, a.camera)

		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.screenshot()
		}
		if a.input.IsKeyPressed(sdl.SCANCODE_F9) {
			a.saveConfig()
		}

		a.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			st := a.renderer.Stats()
			a.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", title, fps))
			a.log.Debug("frame stats",
				zap.Float64("fps", fps),
				zap.Int("draw_calls", st.DrawCalls),
				zap.Int("triangles", st.Triangles),
				zap.Int("texture_binds", st.TextureBinds),
				zap.Int("line_segments", st.LineSegments),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
	return nil
}

func (a *App) handleEvents() {
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventMouseDown:
			if ev.Button == input.ButtonLeft {
				a.pressX, a.pressY = ev.MouseX, ev.MouseY
			}
			if b, ok := cameraButton(ev.Button); ok {
				a.controls.Press(b)
			}
		case input.EventMouseUp:
			if b, ok := cameraButton(ev.Button); ok {
				a.controls.Release(b)
			}
			// No picking while another button is still dragging the camera.
			if ev.Button == input.ButtonLeft && !a.controls.Active() &&
				isClick(a.pressX, a.pressY, ev.MouseX, ev.MouseY) {
				a.pick(ev.MouseX, ev.MouseY)
			}
		case input.EventMouseMove:
			a.controls.Move(float32(ev.RelX), float32(ev.RelY))
		case input.EventMouseWheel:
			a.controls.Wheel(ev.WheelY)
		case input.EventKeyDown:
			if ev.Key == sdl.SCANCODE_HOME && !a.controls.Active() {
				a.camera.FitToBounds(a.scene.BoardBounds())
			}
		}
	}
}

func isClick(x0, y0, x1, y1 int) bool {
	return max(x1-x0, x0-x1) <= clickSlop && max(y1-y0, y0-y1) <= clickSlop
}

// pick selects the tile under window coordinates (x, y), or clears the
// selection when the ray misses the board.
func (a *App) pick(x, y int) {
	ww, wh := a.window.GetSize()
	dw, dh := a.renderer.Size()
	if ww == 0 || wh == 0 {
		return
	}
	// Window coordinates to drawable pixels for high-DPI displays.
	px := float32(x) * float32(dw) / float32(ww)
	py := float32(y) * float32(dh) / float32(wh)

	ray := picking.ScreenToRay(px, py, float32(dw), float32(dh), a.camera.ViewProjection().Inv())
	tile, i, ok := a.scene.Pick(ray)
	if !ok {
		a.scene.Select(-1)
		return
	}
	a.scene.Select(i)
	a.log.Info("tile selected",
		zap.Int("q", tile.Coord.Q),
		zap.Int("r", tile.Coord.R),
		zap.Int("s", tile.Coord.S()),
		zap.Stringer("kind", tile.Kind),
		zap.Strings("neighbors", neighborKinds(a.scene.Board.Neighbors(i))),
	)
}

func neighborKinds(tiles []board.Tile) []string {
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = t.Kind.String()
	}
	return out
}

// resizeToDisplay matches the viewport and camera aspect to the drawable.
func (a *App) resizeToDisplay() {
	dw, dh := a.window.DrawableSize()
	w, h := a.renderer.Size()
	if dw == w && dh == h {
		return
	}
	a.renderer.Resize(dw, dh)
	a.camera.SetViewport(dw, dh)
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	img, err := debug.FromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	path, err := a.shots.Save(img)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) saveConfig() {
	if err := a.cfg.Save(); err != nil {
		a.log.Error("saving config failed", zap.Error(err))
		return
	}
	a.log.Info("config saved", zap.String("dir", config.ConfigDir()))
}

func cameraButton(b uint8) (camera.Button, bool) {
	switch b {
	case input.ButtonLeft:
		return camera.ButtonLeft, true
	case input.ButtonMiddle:
		return camera.ButtonMiddle, true
	case input.ButtonRight:
		return camera.ButtonRight, true
	}
	return 0, false
}

// Close releases GPU resources, the window and cached assets.
func (a *App) Close() {
	a.log.Info("closing viewer")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	a.assets.Close()
}
