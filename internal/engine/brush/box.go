package brush

import "github.com/go-gl/mathgl/mgl32"

// quadIndices splits a four-corner face into two triangles.
var quadIndices = [6]uint32{
	0, 1, 3,
	1, 2, 3,
}

// boxSides returns the interleaved position/uv data for the six sides of the
// box. Each side needs its own vertices because corners shared between sides
// take different UVs.
//
// Corners run counter-clockwise seen from outside the box so back faces can
// be culled, and the UVs run the same way so textures are never mirrored.
func boxSides(mn, mx mgl32.Vec3) [BrushFaces][4 * FloatsPerVertex]float32 {
	return [BrushFaces][4 * FloatsPerVertex]float32{
		// -X (yz plane)
		{
			mn.X(), mn.Y(), mn.Z(), 0, 0,
			mn.X(), mn.Y(), mx.Z(), 1, 0,
			mn.X(), mx.Y(), mx.Z(), 1, 1,
			mn.X(), mx.Y(), mn.Z(), 0, 1,
		},
		// +X (yz plane)
		{
			mx.X(), mn.Y(), mn.Z(), 1, 0,
			mx.X(), mx.Y(), mn.Z(), 1, 1,
			mx.X(), mx.Y(), mx.Z(), 0, 1,
			mx.X(), mn.Y(), mx.Z(), 0, 0,
		},
		// -Z (xy plane)
		{
			mn.X(), mn.Y(), mn.Z(), 1, 0,
			mn.X(), mx.Y(), mn.Z(), 1, 1,
			mx.X(), mx.Y(), mn.Z(), 0, 1,
			mx.X(), mn.Y(), mn.Z(), 0, 0,
		},
		// +Z (xy plane)
		{
			mn.X(), mn.Y(), mx.Z(), 0, 0,
			mx.X(), mn.Y(), mx.Z(), 1, 0,
			mx.X(), mx.Y(), mx.Z(), 1, 1,
			mn.X(), mx.Y(), mx.Z(), 0, 1,
		},
		// -Y (xz plane)
		{
			mn.X(), mn.Y(), mn.Z(), 1, 1,
			mx.X(), mn.Y(), mn.Z(), 0, 1,
			mx.X(), mn.Y(), mx.Z(), 0, 0,
			mn.X(), mn.Y(), mx.Z(), 1, 0,
		},
		// +Y (xz plane)
		{
			mn.X(), mx.Y(), mn.Z(), 0, 1,
			mn.X(), mx.Y(), mx.Z(), 0, 0,
			mx.X(), mx.Y(), mx.Z(), 1, 0,
			mx.X(), mx.Y(), mn.Z(), 1, 1,
		},
	}
}
