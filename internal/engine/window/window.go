// Package window handles SDL2 window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/ElliotMtb/battlefield-hexagons/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Samples    int // MSAA samples, 0 disables
}

// Window wraps an SDL2 window and its OpenGL context.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	log       *zap.Logger
}

// New creates a window with an OpenGL 4.1 core context.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// 4.1 core is the newest profile macOS offers
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	if cfg.Samples > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.Samples)
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	dw, dh := w.DrawableSize()
	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("drawable_width", dw),
		zap.Int("drawable_height", dh),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and shuts SDL2 down.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// GetSize returns the window size in screen coordinates.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// DrawableSize returns the size of the GL drawable in pixels, which differs
// from GetSize on high-DPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
