// Package picking finds the brush under the cursor or crosshair.
package picking

import (
	gomath "math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/brushkit/internal/engine/brush"
)

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay normalizes dir.
func NewRay(origin, dir mgl32.Vec3) Ray {
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToRay unprojects pixel coordinates into a world-space ray.
// invViewProj is the inverse of projection * view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // screen Y grows downward

	near := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})

	n := near.Vec3().Mul(1 / near.W())
	f := far.Vec3().Mul(1 / far.W())

	return NewRay(n, f.Sub(n))
}

// IntersectAABB runs the slab test against box. t is the entry distance, or
// the exit distance when the ray starts inside the box.
func (r Ray) IntersectAABB(box brush.BoundingBox) (t float32, hit bool) {
	t, _, hit = r.intersect(box)
	return t, hit
}

// intersect is IntersectAABB that also returns the outward normal of the box
// side at t.
func (r Ray) intersect(box brush.BoundingBox) (t float32, normal mgl32.Vec3, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)
	var inAxis, outAxis int
	var inSign, outSign float32

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		lo, hi := box.Mins[axis], box.Maxs[axis]
		if d == 0 {
			if o < lo || o > hi {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		// Entering through lo when moving up the axis.
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin, inAxis, inSign = t1, axis, sign
		}
		if t2 < tmax {
			tmax, outAxis, outSign = t2, axis, -sign
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, mgl32.Vec3{}, false
	}
	if tmin < 0 {
		normal[outAxis] = outSign
		return tmax, normal, true
	}
	normal[inAxis] = inSign
	return tmin, normal, true
}

// Hit describes the nearest entity a trace struck.
type Hit struct {
	Index    int
	Distance float32
	Point    mgl32.Vec3
	// Normal is the outward normal of the bounds side that was struck.
	Normal   mgl32.Vec3
}

// Trace returns the nearest entity whose world bounds the ray enters within
// maxDist, skipping any entity in ignore. ok is false when nothing is hit.
func Trace(r Ray, entities []*brush.Entity, maxDist float32, ignore ...*brush.Entity) (hit Hit, ok bool) {
	hit = Hit{Index: -1, Distance: maxDist}
	for i, e := range entities {
		if slices.Contains(ignore, e) {
			continue
		}
		t, n, h := r.intersect(e.WorldBounds())
		if !h || t > hit.Distance {
			continue
		}
		hit = Hit{Index: i, Distance: t, Point: r.At(t), Normal: n}
		ok = true
	}
	return hit, ok
}
