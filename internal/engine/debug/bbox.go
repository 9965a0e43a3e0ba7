// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/brushkit/internal/engine/brush"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding keeps the selection outline from z-fighting with the faces.
const DefaultBBoxPadding = 0.02

// BBoxWireframe returns line-list vertices ([x, y, z] per vertex) outlining
// box grown by padding on every side.
func BBoxWireframe(box brush.BoundingBox, padding float32) []float32 {
	pad := mgl32.Vec3{padding, padding, padding}
	mn := box.Mins.Sub(pad)
	mx := box.Maxs.Add(pad)
	minX, minY, minZ := mn.Elem()
	maxX, maxY, maxZ := mx.Elem()

	return []float32{
		// Bottom
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Verticals
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}
