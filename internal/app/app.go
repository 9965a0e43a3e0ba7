// Package app runs the brush viewer: window, input, camera, scene and
// renderer wired into one frame loop.
package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/brushkit/internal/config"
	"github.com/Faultbox/brushkit/internal/engine/camera"
	"github.com/Faultbox/brushkit/internal/engine/debug"
	"github.com/Faultbox/brushkit/internal/engine/gpu"
	"github.com/Faultbox/brushkit/internal/engine/gpu/opengl"
	"github.com/Faultbox/brushkit/internal/engine/input"
	"github.com/Faultbox/brushkit/internal/engine/picking"
	"github.com/Faultbox/brushkit/internal/engine/renderer"
	"github.com/Faultbox/brushkit/internal/engine/scene"
	"github.com/Faultbox/brushkit/internal/engine/window"
	"github.com/Faultbox/brushkit/internal/logger"
)

// Overlay colors.
var (
	SelectedColor = mgl32.Vec3{1, 0.85, 0.1}
	BoundsColor   = mgl32.Vec3{0.9, 0.9, 0.9}
)

// App is the viewer instance.
type App struct {
	cfg         *config.Config
	window      window.Window
	dev         gpu.Device
	renderer    *renderer.Renderer
	screenshots *debug.Screenshots
	scene       *scene.Scene
	camera      *camera.FlyCamera
	input       *input.State

	// captured means the cursor is hidden and drives the camera.
	captured   bool
	showBounds bool
}

// New creates the window, GL device and scene described by cfg.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("backend", cfg.Window.Backend),
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// Window first: it creates the OpenGL context.
	win, err := window.New(window.Config{
		Backend:    cfg.Window.Backend,
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dev, err := opengl.New()
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	a, err := newApp(cfg, win, dev)
	if err != nil {
		win.Close()
		return nil, err
	}
	return a, nil
}

// newApp wires the viewer around an existing window and device.
func newApp(cfg *config.Config, win window.Window, dev gpu.Device) (*App, error) {
	fbw, fbh := win.FramebufferSize()
	r, err := renderer.New(dev, renderer.Config{
		Width:      fbw,
		Height:     fbh,
		FOV:        cfg.Render.FOV,
		Near:       cfg.Render.Near,
		Far:        cfg.Render.Far,
		ClearColor: cfg.Render.ClearColor,
		CullFaces:  cfg.Render.CullFaces,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	sc := scene.New(dev)
	if err := sc.LoadBrushes(cfg.Scene.Brushes); err != nil {
		sc.Close()
		r.Close()
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	cam := camera.NewFlyCamera(mgl32.Vec3(cfg.Camera.Position))
	cam.Yaw = cfg.Camera.Yaw
	cam.Pitch = cfg.Camera.Pitch
	cam.Speed = cfg.Camera.Speed
	cam.Sensitivity = cfg.Camera.Sensitivity
	cam.InvertY = cfg.Camera.InvertY

	a := &App{
		cfg:         cfg,
		window:      win,
		dev:         dev,
		renderer:    r,
		screenshots: debug.NewScreenshots(cfg.Render.ScreenshotDir, "brushview"),
		scene:       sc,
		camera:      cam,
		input:       input.New(),
		showBounds:  cfg.Render.ShowBounds,
	}

	win.SetKeyCallback(a.input.OnKey)
	win.SetMouseButtonCallback(a.input.OnKey)
	win.SetResizeCallback(a.renderer.Resize)
	a.setCaptured(true)

	logger.Info("viewer initialized", zap.Int("entities", sc.Len()))
	return a, nil
}

// Run drives the frame loop until the window is asked to close.
func (a *App) Run() error {
	last := a.window.Time()
	fpsTimer := last
	frameCount := 0

	logger.Info("starting frame loop")

	for !a.window.ShouldClose() {
		now := a.window.Time()
		dt := float32(now - last)
		last = now

		a.window.PollEvents()
		a.update(dt)
		a.render()
		if a.input.Pressed(input.KeyF12) {
			a.screenshot()
		}
		a.window.SwapBuffers()
		a.input.EndFrame()

		frameCount++
		if now-fpsTimer >= 1 {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("draw_calls", a.renderer.DrawCalls),
				zap.Float32("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = now
		}
	}

	return nil
}

// Close cleans up viewer resources in reverse creation order.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// update applies one frame of input to the camera and selection.
func (a *App) update(dt float32) {
	if a.input.Pressed(input.KeyEscape) {
		if a.captured {
			a.setCaptured(false)
		} else {
			a.window.SetShouldClose(true)
			return
		}
	}
	if a.input.Pressed(input.KeyTab) {
		a.setCaptured(!a.captured)
	}
	if a.input.Pressed(input.KeyF1) {
		a.showBounds = !a.showBounds
		logger.Debug("bounds overlay", zap.Bool("enabled", a.showBounds))
	}

	if a.captured {
		off := window.MouseOffset(a.window)
		a.camera.Look(off.X(), off.Y())
		a.window.CenterCursor()
	}

	a.camera.Move(
		a.input.Axis(input.KeyS, input.KeyW),
		a.input.Axis(input.KeyA, input.KeyD),
		a.input.Axis(input.KeyLeftControl, input.KeySpace),
		a.input.Down(input.KeyLeftShift),
		dt,
	)

	if a.input.Pressed(input.MouseLeft) {
		a.pick()
	}
}

// pick selects the entity under the crosshair, or under the cursor when it
// is free.
func (a *App) pick() {
	var ray picking.Ray
	if a.captured {
		ray = picking.NewRay(a.camera.Position, a.camera.Front())
	} else {
		x, y := a.window.CursorPos()
		w, h := a.window.Size()
		inv := a.renderer.Projection().Mul4(a.camera.ViewMatrix()).Inv()
		ray = picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), inv)
	}

	hit, ok := a.scene.Pick(ray, a.cfg.Render.Far)
	if !ok {
		logger.Debug("pick missed")
		return
	}
	logger.Debug("picked entity",
		zap.Int("index", hit.Index),
		zap.Float32("distance", hit.Distance),
		zap.Float32s("point", hit.Point[:]),
	)
}

func (a *App) render() {
	a.renderer.BeginFrame()
	a.renderer.SetCamera(a.renderer.Projection(), a.camera.ViewMatrix())

	for _, e := range a.scene.Entities() {
		a.renderer.DrawEntity(e)
	}

	selected, idx := a.scene.Selected()
	if a.showBounds {
		for i, e := range a.scene.Entities() {
			if i != idx {
				a.renderer.DrawBounds(e.WorldBounds(), BoundsColor)
			}
		}
	}
	if selected != nil {
		a.renderer.DrawBounds(selected.WorldBounds(), SelectedColor)
	}
}

// screenshot saves the frame just drawn. Failures are logged, not fatal.
func (a *App) screenshot() {
	w, h := a.window.FramebufferSize()
	path, err := a.screenshots.Capture(a.dev, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (a *App) setCaptured(on bool) {
	a.captured = on
	a.window.SetCursorVisible(!on)
	if on {
		a.window.CenterCursor()
	}
}
