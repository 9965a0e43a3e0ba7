// Package window creates the OS window and OpenGL context.
//
// Two backends are available: SDL2 and GLFW. Both request an OpenGL 4.1
// core context with double buffering and a 24-bit depth buffer, and both
// translate native key and button codes into input.Key values.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/brushkit/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend    string
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// KeyFunc receives key and mouse button transitions.
type KeyFunc func(key input.Key, down bool)

// ResizeFunc receives the new framebuffer size in pixels.
type ResizeFunc func(width, height int)

// Window is an OS window with a current OpenGL context.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	PollEvents()
	// Size returns the window size in screen coordinates, the space CursorPos uses.
	Size() (width, height int)
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
	// Time returns seconds since the window was created.
	Time() float64
	CursorPos() (x, y float64)
	SetCursorPos(x, y float64)
	// CenterCursor warps the cursor to the middle of the window.
	CenterCursor()
	SetCursorVisible(visible bool)
	SetKeyCallback(KeyFunc)
	SetMouseButtonCallback(KeyFunc)
	SetResizeCallback(ResizeFunc)
	Close()
}

// New creates a window using the backend named in cfg.
func New(cfg Config) (Window, error) {
	var (
		w   Window
		err error
	)
	switch cfg.Backend {
	case BackendSDL, "":
		w, err = newSDL(cfg)
	case BackendGLFW:
		w, err = newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s window: %w", cfg.Backend, err)
	}
	return w, nil
}

// MouseOffset returns the cursor position relative to the window centre.
func MouseOffset(w Window) mgl32.Vec2 {
	width, height := w.Size()
	x, y := w.CursorPos()
	return mgl32.Vec2{
		float32(x) - float32(width)/2,
		float32(y) - float32(height)/2,
	}
}

// MouseNormalized returns MouseOffset scaled so the window edges are at -1 and 1.
// A zero-sized window yields zero.
func MouseNormalized(w Window) mgl32.Vec2 {
	width, height := w.Size()
	if width == 0 || height == 0 {
		return mgl32.Vec2{}
	}
	off := MouseOffset(w)
	return mgl32.Vec2{
		off.X() / (float32(width) / 2),
		off.Y() / (float32(height) / 2),
	}
}
