// Package renderer draws brush entities and debug lines through a gpu.Device.
package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/brushkit/internal/engine/brush"
	"github.com/Faultbox/brushkit/internal/engine/debug"
	"github.com/Faultbox/brushkit/internal/engine/gpu"
	"github.com/Faultbox/brushkit/internal/engine/shader"
	"github.com/Faultbox/brushkit/internal/engine/shader/shaders"
	"github.com/Faultbox/brushkit/internal/engine/transform"
	"github.com/Faultbox/brushkit/internal/logger"
)

// Uniform names shared by the brush and line programs.
const (
	UniformPerspective = "Perspective"
	UniformCamera      = "CameraTransform"
	UniformModel       = "transform"
	UniformTexture     = "tex"
	UniformColor       = "color"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOV        float32 // vertical, degrees
	Near       float32
	Far        float32
	ClearColor [3]float32
	CullFaces  bool
}

// Renderer owns the GL state and programs used to draw a frame.
type Renderer struct {
	dev    gpu.Device
	config Config

	brushProgram *shader.Program
	lineProgram  *shader.Program

	lineVAO uint32
	lineVBO uint32

	// DrawCalls counts draws issued since the last BeginFrame.
	DrawCalls int
}

// New sets up pipeline state and compiles the programs.
// Must be called after the OpenGL context is current.
func New(dev gpu.Device, cfg Config) (*Renderer, error) {
	r := &Renderer{
		dev:    dev,
		config: cfg,
	}

	dev.Enable(gpu.DepthTest)
	dev.DepthLess()
	dev.Enable(gpu.FramebufferSRGB)
	if cfg.CullFaces {
		dev.Enable(gpu.CullFace)
	}
	dev.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)

	var err error
	r.brushProgram, err = shader.Compile(dev, "brush", shaders.BrushVertexShader, shaders.BrushFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create brush program: %w", err)
	}

	r.lineProgram, err = shader.Compile(dev, "line", shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		r.brushProgram.Delete()
		return nil, fmt.Errorf("failed to create line program: %w", err)
	}

	r.createLineBuffers()
	r.Resize(cfg.Width, cfg.Height)

	logger.Info("renderer ready",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("cull_faces", cfg.CullFaces),
	)
	return r, nil
}

// createLineBuffers sets up the streaming buffer for debug lines.
func (r *Renderer) createLineBuffers() {
	r.lineVAO = r.dev.GenVertexArray()
	r.dev.BindVertexArray(r.lineVAO)

	r.lineVBO = r.dev.GenBuffer()
	r.dev.BindBuffer(gpu.ArrayBuffer, r.lineVBO)
	r.dev.BufferFloats(gpu.ArrayBuffer, make([]float32, debug.BBoxWireframeVertexCount*3), gpu.DynamicDraw)

	r.dev.VertexAttribPointer(0, 3, 3, 0)
	r.dev.EnableVertexAttribArray(0)

	r.dev.BindVertexArray(0)
	r.dev.BindBuffer(gpu.ArrayBuffer, 0)
}

// Close releases the programs and line buffers. Safe to call twice.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.lineVBO != 0 {
		r.dev.DeleteBuffer(r.lineVBO)
		r.lineVBO = 0
	}
	if r.lineVAO != 0 {
		r.dev.DeleteVertexArray(r.lineVAO)
		r.lineVAO = 0
	}
	r.brushProgram.Delete()
	r.lineProgram.Delete()
}

// Resize handles window resize. Sizes are framebuffer pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.dev.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns width over height, or 1 for a minimized window.
func (r *Renderer) Aspect() float32 {
	if r.config.Width <= 0 || r.config.Height <= 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Projection returns the perspective matrix for the current size.
func (r *Renderer) Projection() mgl32.Mat4 {
	return transform.Perspective(r.config.FOV, r.Aspect(), r.config.Near, r.config.Far)
}

// BeginFrame clears color and depth.
func (r *Renderer) BeginFrame() {
	r.DrawCalls = 0
	r.dev.Clear(gpu.ColorBuffer | gpu.DepthBuffer)
}

// SetCamera uploads the projection and view matrices to every program.
func (r *Renderer) SetCamera(perspective, view mgl32.Mat4) {
	for _, p := range []*shader.Program{r.brushProgram, r.lineProgram} {
		p.Use()
		p.SetMat4(UniformPerspective, perspective)
		p.SetMat4(UniformCamera, view)
	}
}

// DrawEntity draws every face of e with its model transform.
// A face whose texture was never uploaded panics; released faces are skipped.
func (r *Renderer) DrawEntity(e *brush.Entity) {
	r.brushProgram.Use()
	r.brushProgram.SetMat4(UniformModel, e.Transform.Matrix())
	r.brushProgram.SetInt(UniformTexture, 0)

	for i, f := range e.Faces() {
		if f.Released() {
			continue
		}
		tex := f.Texture()
		if !tex.Initialized() {
			panic(fmt.Sprintf("renderer: face %d has no texture", i))
		}
		h := f.Handles()
		r.dev.BindVertexArray(h.VAO)
		r.dev.BindBuffer(gpu.ElementArrayBuffer, h.EBO)
		r.dev.BindTexture(tex.ID)
		r.dev.DrawElements(gpu.Triangles, int32(f.IndexCount()))
		r.DrawCalls++
	}
	r.dev.BindVertexArray(0)
}

// DrawBounds outlines a world-space box in a flat color.
func (r *Renderer) DrawBounds(box brush.BoundingBox, color mgl32.Vec3) {
	verts := debug.BBoxWireframe(box, debug.DefaultBBoxPadding)

	r.lineProgram.Use()
	r.lineProgram.SetVec3(UniformColor, color)

	r.dev.BindVertexArray(r.lineVAO)
	r.dev.BindBuffer(gpu.ArrayBuffer, r.lineVBO)
	r.dev.BufferFloats(gpu.ArrayBuffer, verts, gpu.DynamicDraw)
	r.dev.DrawArrays(gpu.Lines, 0, debug.BBoxWireframeVertexCount)
	r.DrawCalls++

	r.dev.BindBuffer(gpu.ArrayBuffer, 0)
	r.dev.BindVertexArray(0)
}
