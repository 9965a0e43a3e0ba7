// Package config handles viewer configuration loading and management.
package config

import "fmt"

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	FOV           float32    `yaml:"fov"` // vertical, degrees
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	ClearColor    [3]float32 `yaml:"clear_color"`
	CullFaces     bool       `yaml:"cull_faces"`
	ShowBounds    bool       `yaml:"show_bounds"`
	ScreenshotDir string     `yaml:"screenshot_dir"` // F12 captures
}

// CameraConfig holds fly camera settings.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	InvertY     bool       `yaml:"invert_y"`
}

// SceneConfig lists the brushes to build at startup.
type SceneConfig struct {
	Brushes []BrushConfig `yaml:"brushes"`
}

// BrushConfig describes one box brush. Textures names either one texture for
// every side or six, in the order -X, +X, -Z, +Z, -Y, +Y.
type BrushConfig struct {
	Mins     [3]float32 `yaml:"mins"`
	Maxs     [3]float32 `yaml:"maxs"`
	Position [3]float32 `yaml:"position"`
	Textures []string   `yaml:"textures"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend:    BackendSDL,
			Title:      "brushview",
			Width:      1000,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			FOV:           70,
			Near:          0.1,
			Far:           500,
			ClearColor:    [3]float32{0.1, 0.2, 0.7},
			CullFaces:     true,
			ShowBounds:    false,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 2, 8},
			Speed:       8,
			Sensitivity: 0.1,
		},
		Scene: SceneConfig{
			Brushes: []BrushConfig{
				{Mins: [3]float32{-8, -1, -8}, Maxs: [3]float32{8, 0, 8}, Textures: []string{"floor"}},
				{Mins: [3]float32{0, 0, 0}, Maxs: [3]float32{2, 2, 2}, Textures: []string{"crate"}},
				{
					Mins:     [3]float32{-1, 0, -1},
					Maxs:     [3]float32{1, 4, 1},
					Position: [3]float32{-4, 0, -3},
					Textures: []string{"red", "green", "blue", "yellow", "grey", "white"},
				},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.Window.Backend {
	case BackendSDL, BackendGLFW:
	default:
		return fmt.Errorf("window.backend %q: want %q or %q", c.Window.Backend, BackendSDL, BackendGLFW)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Render.FOV <= 0 || c.Render.FOV >= 180 {
		return fmt.Errorf("render.fov %v must be between 0 and 180", c.Render.FOV)
	}
	if c.Render.Near <= 0 || c.Render.Far <= c.Render.Near {
		return fmt.Errorf("render clip planes near=%v far=%v are invalid", c.Render.Near, c.Render.Far)
	}
	for i, b := range c.Scene.Brushes {
		if n := len(b.Textures); n != 1 && n != 6 {
			return fmt.Errorf("scene.brushes[%d]: need 1 or 6 textures, got %d", i, n)
		}
		for axis := 0; axis < 3; axis++ {
			if b.Mins[axis] > b.Maxs[axis] {
				return fmt.Errorf("scene.brushes[%d]: mins %v exceed maxs %v", i, b.Mins, b.Maxs)
			}
		}
	}
	return nil
}
