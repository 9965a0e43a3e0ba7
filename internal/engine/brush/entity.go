package brush

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/brushkit/internal/engine/gpu"
	"github.com/Faultbox/brushkit/internal/engine/texture"
	"github.com/Faultbox/brushkit/internal/engine/transform"
	"github.com/Faultbox/brushkit/internal/logger"
)

// MaxFaces is the most faces an entity may hold.
const MaxFaces = 20

// BrushFaces is the number of faces of a box brush.
const BrushFaces = 6

// BoundingBox is an axis-aligned box. Mins must not exceed Maxs on any axis;
// that is left to the caller.
type BoundingBox struct {
	Mins mgl32.Vec3
	Maxs mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Mins.Add(b.Maxs).Mul(0.5)
}

// Size returns the extent of the box on each axis.
func (b BoundingBox) Size() mgl32.Vec3 {
	return b.Maxs.Sub(b.Mins)
}

// Contains reports whether p lies inside or on the box.
func (b BoundingBox) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Mins.X() && p.X() <= b.Maxs.X() &&
		p.Y() >= b.Mins.Y() && p.Y() <= b.Maxs.Y() &&
		p.Z() >= b.Mins.Z() && p.Z() <= b.Maxs.Z()
}

// Entity is a set of faces placed by a transform.
type Entity struct {
	faces     []*Face
	Transform transform.Transform
	Bounds    BoundingBox
}

// NewEntity takes ownership of faces. Bounds are stored as given.
func NewEntity(faces []*Face, xf transform.Transform, mins, maxs mgl32.Vec3) *Entity {
	if len(faces) > MaxFaces {
		panic(fmt.Sprintf("brush: %d faces exceeds the limit of %d", len(faces), MaxFaces))
	}
	owned := make([]*Face, len(faces), MaxFaces)
	copy(owned, faces)
	return &Entity{
		faces:     owned,
		Transform: xf,
		Bounds:    BoundingBox{Mins: mins, Maxs: maxs},
	}
}

// AddFace appends a face the entity then owns.
func (e *Entity) AddFace(f *Face) {
	if len(e.faces) >= MaxFaces {
		panic(fmt.Sprintf("brush: entity already holds %d faces", MaxFaces))
	}
	e.faces = append(e.faces, f)
}

// NewBrush builds a box from mins to maxs. Pass one texture for every side
// or six, one per side in the order -X, +X, -Z, +Z, -Y, +Y.
//
// Any other texture count is a programming error and panics.
func NewBrush(dev gpu.Device, mins, maxs mgl32.Vec3, textures ...texture.Texture) *Entity {
	if len(textures) != 1 && len(textures) != BrushFaces {
		panic(fmt.Sprintf("brush: need 1 or %d textures, got %d", BrushFaces, len(textures)))
	}

	sides := boxSides(mins, maxs)
	faces := make([]*Face, 0, BrushFaces)
	for i := range sides {
		tex := textures[0]
		if len(textures) == BrushFaces {
			tex = textures[i]
		}
		faces = append(faces, NewFace(dev, sides[i][:], quadIndices[:], tex, gpu.DynamicDraw))
	}

	logger.Debug("brush created",
		zap.Float32s("mins", mins[:]),
		zap.Float32s("maxs", maxs[:]),
		zap.Int("textures", len(textures)),
	)

	return NewEntity(faces, transform.Identity(), mins, maxs)
}

// FaceCount returns the number of faces.
func (e *Entity) FaceCount() int {
	return len(e.faces)
}

// Faces returns the entity's faces for drawing. The slice must not be modified.
func (e *Entity) Faces() []*Face {
	return e.faces
}

// FaceAt returns a copy of face i. The copy has its own vertex data but
// shares the GPU objects, which stay owned by the entity.
func (e *Entity) FaceAt(i int) Face {
	if i < 0 || i >= len(e.faces) {
		panic(fmt.Sprintf("brush: face index %d out of range [0,%d)", i, len(e.faces)))
	}
	return e.faces[i].clone()
}

// WorldBounds returns Bounds moved by the entity's position and scale.
func (e *Entity) WorldBounds() BoundingBox {
	a := e.Transform.Apply(e.Bounds.Mins)
	b := e.Transform.Apply(e.Bounds.Maxs)
	return BoundingBox{
		Mins: mgl32.Vec3{min(a.X(), b.X()), min(a.Y(), b.Y()), min(a.Z(), b.Z())},
		Maxs: mgl32.Vec3{max(a.X(), b.X()), max(a.Y(), b.Y()), max(a.Z(), b.Z())},
	}
}

// Release frees every face's GPU objects in order. It is safe to call more
// than once.
func (e *Entity) Release() {
	for _, f := range e.faces {
		f.Release()
	}
}
