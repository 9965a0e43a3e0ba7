package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/brushkit/internal/engine/input"
	"github.com/Faultbox/brushkit/internal/logger"
)

var sdlKeys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_W:      input.KeyW,
	sdl.SCANCODE_A:      input.KeyA,
	sdl.SCANCODE_S:      input.KeyS,
	sdl.SCANCODE_D:      input.KeyD,
	sdl.SCANCODE_SPACE:  input.KeySpace,
	sdl.SCANCODE_LSHIFT: input.KeyLeftShift,
	sdl.SCANCODE_LCTRL:  input.KeyLeftControl,
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_TAB:    input.KeyTab,
	sdl.SCANCODE_F1:     input.KeyF1,
	sdl.SCANCODE_F12:    input.KeyF12,
}

var sdlButtons = map[uint8]input.Key{
	sdl.BUTTON_LEFT:   input.MouseLeft,
	sdl.BUTTON_RIGHT:  input.MouseRight,
	sdl.BUTTON_MIDDLE: input.MouseMiddle,
}

type sdlWindow struct {
	window    *sdl.Window
	glContext sdl.GLContext
	start     uint64
	closing   bool

	onKey    KeyFunc
	onButton KeyFunc
	onResize ResizeFunc
}

func newSDL(cfg Config) (*sdlWindow, error) {
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window exists.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_FRAMEBUFFER_SRGB_CAPABLE, 1)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	win, err := sdl.CreateWindow(
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

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	logger.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return &sdlWindow{
		window:    win,
		glContext: ctx,
		start:     sdl.GetTicks64(),
	}, nil
}

func (w *sdlWindow) ShouldClose() bool     { return w.closing }
func (w *sdlWindow) SetShouldClose(v bool) { w.closing = v }
func (w *sdlWindow) SwapBuffers()          { w.window.GLSwap() }

// PollEvents drains the SDL queue and dispatches to the registered callbacks.
func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.closing = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED && w.onResize != nil {
				w.onResize(w.FramebufferSize())
			}

		case *sdl.KeyboardEvent:
			key, ok := sdlKeys[e.Keysym.Scancode]
			if ok && w.onKey != nil {
				w.onKey(key, e.Type == sdl.KEYDOWN)
			}

		case *sdl.MouseButtonEvent:
			key, ok := sdlButtons[e.Button]
			if ok && w.onButton != nil {
				w.onButton(key, e.Type == sdl.MOUSEBUTTONDOWN)
			}
		}
	}
}

func (w *sdlWindow) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

func (w *sdlWindow) FramebufferSize() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) Time() float64 {
	return float64(sdl.GetTicks64()-w.start) / 1000
}

func (w *sdlWindow) CursorPos() (float64, float64) {
	x, y, _ := sdl.GetMouseState()
	return float64(x), float64(y)
}

func (w *sdlWindow) SetCursorPos(x, y float64) {
	w.window.WarpMouseInWindow(int32(x), int32(y))
}

func (w *sdlWindow) CenterCursor() {
	width, height := w.Size()
	w.SetCursorPos(float64(width)/2, float64(height)/2)
}

func (w *sdlWindow) SetCursorVisible(visible bool) {
	toggle := sdl.DISABLE
	if visible {
		toggle = sdl.ENABLE
	}
	if _, err := sdl.ShowCursor(toggle); err != nil {
		logger.Warn("failed to toggle cursor", zap.Bool("visible", visible), zap.Error(err))
	}
}

func (w *sdlWindow) SetKeyCallback(fn KeyFunc)         { w.onKey = fn }
func (w *sdlWindow) SetMouseButtonCallback(fn KeyFunc) { w.onButton = fn }
func (w *sdlWindow) SetResizeCallback(fn ResizeFunc)   { w.onResize = fn }

// Close destroys the window and cleans up SDL2.
func (w *sdlWindow) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}

	sdl.Quit()
}
