package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/brushkit/internal/engine/input"
	"github.com/Faultbox/brushkit/internal/logger"
)

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyW:           input.KeyW,
	glfw.KeyA:           input.KeyA,
	glfw.KeyS:           input.KeyS,
	glfw.KeyD:           input.KeyD,
	glfw.KeySpace:       input.KeySpace,
	glfw.KeyLeftShift:   input.KeyLeftShift,
	glfw.KeyLeftControl: input.KeyLeftControl,
	glfw.KeyEscape:      input.KeyEscape,
	glfw.KeyTab:         input.KeyTab,
	glfw.KeyF1:          input.KeyF1,
	glfw.KeyF12:         input.KeyF12,
}

var glfwButtons = map[glfw.MouseButton]input.Key{
	glfw.MouseButtonLeft:   input.MouseLeft,
	glfw.MouseButtonRight:  input.MouseRight,
	glfw.MouseButtonMiddle: input.MouseMiddle,
}

type glfwWindow struct {
	window *glfw.Window

	onKey    KeyFunc
	onButton KeyFunc
	onResize ResizeFunc
}

// newGLFW creates the GLFW window and makes its context current.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &glfwWindow{window: win}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := glfwKeys[key]
		if !ok || gw.onKey == nil {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			gw.onKey(k, true)
		case glfw.Release:
			gw.onKey(k, false)
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := glfwButtons[button]
		if ok && gw.onButton != nil {
			gw.onButton(k, action == glfw.Press)
		}
	})

	// Framebuffer size, not window size: they differ on high-DPI displays.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if gw.onResize != nil {
			gw.onResize(width, height)
		}
	})

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return gw, nil
}

func (w *glfwWindow) ShouldClose() bool     { return w.window.ShouldClose() }
func (w *glfwWindow) SetShouldClose(v bool) { w.window.SetShouldClose(v) }
func (w *glfwWindow) SwapBuffers()          { w.window.SwapBuffers() }
func (w *glfwWindow) PollEvents()           { glfw.PollEvents() }
func (w *glfwWindow) Size() (int, int)      { return w.window.GetSize() }
func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}
func (w *glfwWindow) Time() float64                 { return glfw.GetTime() }
func (w *glfwWindow) CursorPos() (float64, float64) { return w.window.GetCursorPos() }
func (w *glfwWindow) SetCursorPos(x, y float64)     { w.window.SetCursorPos(x, y) }

func (w *glfwWindow) CenterCursor() {
	width, height := w.Size()
	w.window.SetCursorPos(float64(width)/2, float64(height)/2)
}

func (w *glfwWindow) SetCursorVisible(visible bool) {
	mode := glfw.CursorHidden
	if visible {
		mode = glfw.CursorNormal
	}
	w.window.SetInputMode(glfw.CursorMode, mode)
}

func (w *glfwWindow) SetKeyCallback(fn KeyFunc)         { w.onKey = fn }
func (w *glfwWindow) SetMouseButtonCallback(fn KeyFunc) { w.onButton = fn }
func (w *glfwWindow) SetResizeCallback(fn ResizeFunc)   { w.onResize = fn }

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	logger.Info("closing window")
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}
