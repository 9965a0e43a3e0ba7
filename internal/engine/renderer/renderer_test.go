package renderer

import (
	"image/color"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/brushkit/internal/engine/brush"
	"github.com/Faultbox/brushkit/internal/engine/debug"
	"github.com/Faultbox/brushkit/internal/engine/gpu"
	"github.com/Faultbox/brushkit/internal/engine/gpu/gputest"
	"github.com/Faultbox/brushkit/internal/engine/texture"
	"github.com/Faultbox/brushkit/internal/engine/transform"
)

func testConfig() Config {
	return Config{
		Width:      1000,
		Height:     720,
		FOV:        70,
		Near:       0.1,
		Far:        500,
		ClearColor: [3]float32{0.1, 0.2, 0.7},
		CullFaces:  true,
	}
}

func newRenderer(t *testing.T) (*Renderer, *gputest.Recorder) {
	t.Helper()
	dev := gputest.New()
	r, err := New(dev, testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, dev
}

func TestNewSetsPipelineState(t *testing.T) {
	_, dev := newRenderer(t)

	for _, c := range []gpu.Capability{gpu.DepthTest, gpu.FramebufferSRGB, gpu.CullFace} {
		if !dev.Caps[c] {
			t.Errorf("capability %#x not enabled", uint32(c))
		}
	}
	if !slices.Contains(dev.Calls, "depth less") {
		t.Error("depth function not set to LESS")
	}
	if dev.ClearRGBA != [4]float32{0.1, 0.2, 0.7, 1} {
		t.Errorf("clear color = %v", dev.ClearRGBA)
	}
	if dev.ViewportWH != [2]int32{1000, 720} {
		t.Errorf("viewport = %v, want 1000x720", dev.ViewportWH)
	}
	if n := dev.LiveCount(gputest.Program); n != 2 {
		t.Errorf("live programs = %d, want 2", n)
	}
}

func TestNewWithoutCulling(t *testing.T) {
	dev := gputest.New()
	cfg := testConfig()
	cfg.CullFaces = false
	if _, err := New(dev, cfg); err != nil {
		t.Fatalf("New: %v", err)
	}
	if dev.Caps[gpu.CullFace] {
		t.Error("face culling enabled although disabled in config")
	}
}

func TestNewProgramFailure(t *testing.T) {
	dev := gputest.New()
	dev.FailProgram = true

	r, err := New(dev, testConfig())
	if err == nil {
		t.Fatal("expected an error when the program fails to link")
	}
	if r != nil {
		t.Error("expected nil renderer on error")
	}
}

func TestBeginFrameClears(t *testing.T) {
	r, dev := newRenderer(t)
	r.DrawCalls = 7

	r.BeginFrame()

	if len(dev.Clears) != 1 || dev.Clears[0] != gpu.ColorBuffer|gpu.DepthBuffer {
		t.Errorf("clears = %v, want one color|depth clear", dev.Clears)
	}
	if r.DrawCalls != 0 {
		t.Errorf("DrawCalls = %d after BeginFrame, want 0", r.DrawCalls)
	}
}

func TestSetCamera(t *testing.T) {
	r, dev := newRenderer(t)
	proj := r.Projection()
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	r.SetCamera(proj, view)

	if got := dev.Uniforms[UniformPerspective]; got != [16]float32(proj) {
		t.Errorf("Perspective uniform = %v", got)
	}
	if got := dev.Uniforms[UniformCamera]; got != [16]float32(view) {
		t.Errorf("CameraTransform uniform = %v", got)
	}
}

func TestDrawEntity(t *testing.T) {
	r, dev := newRenderer(t)

	var textures []texture.Texture
	for i := 0; i < brush.BrushFaces; i++ {
		c := color.RGBA{R: uint8(40 * i), A: 255}
		textures = append(textures, texture.Upload(dev, "side", texture.Solid(4, c)))
	}
	e := brush.NewBrush(dev, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, textures...)
	e.Transform = transform.At(mgl32.Vec3{3, 0, -2})

	r.DrawEntity(e)

	if len(dev.Draws) != brush.BrushFaces {
		t.Fatalf("draws = %d, want %d", len(dev.Draws), brush.BrushFaces)
	}
	for i, d := range dev.Draws {
		h := e.Faces()[i].Handles()
		if d.Mode != gpu.Triangles || d.Count != 6 {
			t.Errorf("draw %d: mode %v count %d, want triangles x6", i, d.Mode, d.Count)
		}
		if d.VAO != h.VAO || d.EBO != h.EBO {
			t.Errorf("draw %d: bound VAO %d EBO %d, want %d %d", i, d.VAO, d.EBO, h.VAO, h.EBO)
		}
		if d.Texture != textures[i].ID {
			t.Errorf("draw %d: texture %d, want %d", i, d.Texture, textures[i].ID)
		}
		if d.Program != r.brushProgram.ID() {
			t.Errorf("draw %d: program %d, want brush program", i, d.Program)
		}
	}
	if got := dev.Uniforms[UniformModel]; got != [16]float32(e.Transform.Matrix()) {
		t.Errorf("model uniform = %v", got)
	}
	if got := dev.Uniforms[UniformTexture]; got != int32(0) {
		t.Errorf("sampler uniform = %v, want unit 0", got)
	}
	if r.DrawCalls != brush.BrushFaces {
		t.Errorf("DrawCalls = %d", r.DrawCalls)
	}
}

func TestDrawEntityWithoutTexturePanics(t *testing.T) {
	r, dev := newRenderer(t)
	e := brush.NewBrush(dev, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, texture.Texture{})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a face without texture")
		}
	}()
	r.DrawEntity(e)
}

func TestDrawReleasedEntity(t *testing.T) {
	r, dev := newRenderer(t)
	tex := texture.Upload(dev, "solid", texture.Solid(2, color.RGBA{A: 255}))
	e := brush.NewBrush(dev, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, tex)
	e.Release()

	r.DrawEntity(e)

	if len(dev.Draws) != 0 {
		t.Errorf("draws = %d for a released entity, want 0", len(dev.Draws))
	}
}

func TestDrawBounds(t *testing.T) {
	r, dev := newRenderer(t)
	box := brush.BoundingBox{Mins: mgl32.Vec3{-1, 0, -1}, Maxs: mgl32.Vec3{1, 2, 1}}
	yellow := mgl32.Vec3{1, 1, 0}

	r.DrawBounds(box, yellow)

	if len(dev.Draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(dev.Draws))
	}
	d := dev.Draws[0]
	if d.Mode != gpu.Lines || d.Count != debug.BBoxWireframeVertexCount {
		t.Errorf("draw mode %v count %d, want lines x%d", d.Mode, d.Count, debug.BBoxWireframeVertexCount)
	}
	if d.VAO != r.lineVAO || d.Program != r.lineProgram.ID() {
		t.Errorf("draw used VAO %d program %d", d.VAO, d.Program)
	}
	want := debug.BBoxWireframe(box, debug.DefaultBBoxPadding)
	if !slices.Equal(dev.Buffers[r.lineVBO], want) {
		t.Error("line buffer does not hold the box wireframe")
	}
	if got := dev.Uniforms[UniformColor]; got != [3]float32{1, 1, 0} {
		t.Errorf("color uniform = %v", got)
	}
}

func TestResizeAndAspect(t *testing.T) {
	r, dev := newRenderer(t)

	r.Resize(800, 400)
	if dev.ViewportWH != [2]int32{800, 400} {
		t.Errorf("viewport = %v", dev.ViewportWH)
	}
	if got := r.Aspect(); got != 2 {
		t.Errorf("Aspect = %v, want 2", got)
	}

	r.Resize(800, 0)
	if got := r.Aspect(); got != 1 {
		t.Errorf("Aspect for zero height = %v, want 1", got)
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	r, dev := newRenderer(t)

	r.Close()
	r.Close()

	for _, k := range []gputest.Kind{gputest.Program, gputest.Buffer, gputest.VertexArray} {
		if n := dev.LiveCount(k); n != 0 {
			t.Errorf("%d %s handles still live after Close", n, k)
		}
	}
	if len(dev.DoubleDeletes) != 0 {
		t.Errorf("double deletes: %v", dev.DoubleDeletes)
	}
}
