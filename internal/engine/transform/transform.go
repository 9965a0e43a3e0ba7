// Package transform provides entity transforms and matrix helpers.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform places an entity in the world.
type Transform struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Mat4
}

// Identity returns a transform at the origin with unit scale and no rotation.
func Identity() Transform {
	return Transform{
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.Ident4(),
	}
}

// At returns an identity transform moved to pos.
func At(pos mgl32.Vec3) Transform {
	t := Identity()
	t.Position = pos
	return t
}

// Matrix returns the model matrix T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	tr := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	sc := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(t.Rotation).Mul4(sc)
}

// Apply maps a local-space point into world space, ignoring rotation.
// Bounding boxes stay axis-aligned under it.
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		p.X()*t.Scale.X() + t.Position.X(),
		p.Y()*t.Scale.Y() + t.Position.Y(),
		p.Z()*t.Scale.Z() + t.Position.Z(),
	}
}

// Perspective returns a projection matrix. fovDeg is the vertical field of
// view in degrees.
func Perspective(fovDeg, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}

// Rotation returns a rotation of deg degrees around axis.
func Rotation(deg float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize())
}

// Multiply replaces *m with *m * by.
func Multiply(m *mgl32.Mat4, by mgl32.Mat4) {
	if m == nil {
		panic("transform: Multiply into nil matrix")
	}
	*m = m.Mul4(by)
}
