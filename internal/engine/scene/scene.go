// Package scene holds the brush entities being viewed and the textures they
// share.
package scene

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/brushkit/internal/config"
	"github.com/Faultbox/brushkit/internal/engine/brush"
	"github.com/Faultbox/brushkit/internal/engine/gpu"
	"github.com/Faultbox/brushkit/internal/engine/picking"
	"github.com/Faultbox/brushkit/internal/engine/texture"
	"github.com/Faultbox/brushkit/internal/engine/transform"
	"github.com/Faultbox/brushkit/internal/logger"
)

// TextureSize is the edge length of generated textures.
const TextureSize = 64

// FallbackTexture names the texture used for unknown names.
const FallbackTexture = "missing"

// Palette maps built-in texture names to their base colors. Each becomes a
// checkerboard of the color and a darker shade.
var Palette = map[string]color.RGBA{
	"floor":  {R: 110, G: 110, B: 120, A: 255},
	"crate":  {R: 170, G: 120, B: 60, A: 255},
	"red":    {R: 200, G: 50, B: 50, A: 255},
	"green":  {R: 60, G: 180, B: 70, A: 255},
	"blue":   {R: 60, G: 90, B: 200, A: 255},
	"yellow": {R: 220, G: 200, B: 60, A: 255},
	"grey":   {R: 128, G: 128, B: 128, A: 255},
	"white":  {R: 235, G: 235, B: 235, A: 255},
}

// Scene owns a list of entities and a texture cache.
type Scene struct {
	dev      gpu.Device
	entities []*brush.Entity
	textures map[string]texture.Texture
	selected int
	closed   bool
}

// New creates an empty scene.
func New(dev gpu.Device) *Scene {
	return &Scene{
		dev:      dev,
		textures: make(map[string]texture.Texture),
		selected: -1,
	}
}

// Texture returns the texture for name, generating and uploading it on
// first use. Unknown names share the fallback texture.
func (s *Scene) Texture(name string) texture.Texture {
	s.mustBeOpen()
	if tex, ok := s.textures[name]; ok {
		return tex
	}

	base, ok := Palette[name]
	if !ok {
		logger.Warn("unknown texture, using fallback", zap.String("name", name))
		tex := s.fallback()
		s.textures[name] = tex
		return tex
	}

	tex := texture.Upload(s.dev, name, texture.Checker(TextureSize, 8, base, texture.Darken(base, 0.8)))
	s.textures[name] = tex
	return tex
}

func (s *Scene) fallback() texture.Texture {
	if tex, ok := s.textures[FallbackTexture]; ok {
		return tex
	}
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	tex := texture.Upload(s.dev, FallbackTexture, texture.Checker(TextureSize, 2, magenta, black))
	s.textures[FallbackTexture] = tex
	return tex
}

// Add appends e and returns its index.
func (s *Scene) Add(e *brush.Entity) int {
	s.mustBeOpen()
	s.entities = append(s.entities, e)
	return len(s.entities) - 1
}

// AddBrush builds a box brush and adds it to the scene.
func (s *Scene) AddBrush(mins, maxs mgl32.Vec3, textures ...texture.Texture) *brush.Entity {
	s.mustBeOpen()
	e := brush.NewBrush(s.dev, mins, maxs, textures...)
	s.Add(e)
	return e
}

// LoadBrushes builds every configured brush. Texture counts are checked
// before anything is created for a brush.
func (s *Scene) LoadBrushes(brushes []config.BrushConfig) error {
	for i, b := range brushes {
		if n := len(b.Textures); n != 1 && n != brush.BrushFaces {
			return fmt.Errorf("brush %d: need 1 or %d textures, got %d", i, brush.BrushFaces, n)
		}
		textures := make([]texture.Texture, len(b.Textures))
		for j, name := range b.Textures {
			textures[j] = s.Texture(name)
		}
		e := s.AddBrush(mgl32.Vec3(b.Mins), mgl32.Vec3(b.Maxs), textures...)
		e.Transform = transform.At(mgl32.Vec3(b.Position))
	}
	logger.Info("scene loaded",
		zap.Int("brushes", len(brushes)),
		zap.Int("textures", len(s.textures)),
	)
	return nil
}

// Entities returns the scene's entities in insertion order.
func (s *Scene) Entities() []*brush.Entity {
	return s.entities
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Select marks entity i as selected. -1 or an out-of-range index clears
// the selection.
func (s *Scene) Select(i int) {
	if i < 0 || i >= len(s.entities) {
		i = -1
	}
	s.selected = i
}

// Selected returns the selected entity and its index, or nil and -1.
func (s *Scene) Selected() (*brush.Entity, int) {
	if s.selected < 0 {
		return nil, -1
	}
	return s.entities[s.selected], s.selected
}

// Pick selects the nearest entity along r and reports the hit.
// A miss clears the selection.
func (s *Scene) Pick(r picking.Ray, maxDist float32) (picking.Hit, bool) {
	hit, ok := picking.Trace(r, s.entities, maxDist)
	s.Select(hit.Index)
	return hit, ok
}

// Close releases every entity and texture exactly once. The scene cannot
// be added to afterwards.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true

	for _, e := range s.entities {
		e.Release()
	}

	// Unknown names alias the fallback; delete each handle once.
	deleted := make(map[uint32]bool, len(s.textures))
	for _, tex := range s.textures {
		if deleted[tex.ID] {
			continue
		}
		deleted[tex.ID] = true
		tex.Delete(s.dev)
	}
	clear(s.textures)

	logger.Debug("scene closed", zap.Int("entities", len(s.entities)))
	s.entities = nil
	s.selected = -1
}

func (s *Scene) mustBeOpen() {
	if s.closed {
		panic("scene: use after Close")
	}
}
