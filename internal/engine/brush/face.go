// Package brush builds drawable box geometry ("brushes") out of textured quads.
//
// A Face is one quad with its own vertex, index and vertex-array objects on
// the GPU. An Entity groups faces under a transform and a bounding box.
package brush

import (
	"fmt"
	"slices"

	"github.com/Faultbox/brushkit/internal/engine/gpu"
	"github.com/Faultbox/brushkit/internal/engine/texture"
)

// FloatsPerVertex is the interleaved layout: position xyz then uv.
const FloatsPerVertex = 5

// Vertex attribute locations.
const (
	AttribPosition = 0
	AttribUV       = 1
)

// Handles are the GPU objects backing a face.
type Handles struct {
	EBO uint32
	VAO uint32
	VBO uint32
}

// resources is shared by a face and all copies of it, so the handles are
// deleted at most once no matter which copy releases them.
type resources struct {
	dev      gpu.Device
	handles  Handles
	released bool
}

// Face is a textured polygon uploaded to the GPU.
type Face struct {
	vertices []float32
	indices  []uint32
	tex      texture.Texture
	res      *resources
}

// NewFace copies vertices and indices, uploads them and configures the
// vertex array for the position/uv layout. The caller may reuse both slices
// as soon as NewFace returns. tex is referenced, not owned.
//
// A current graphics context is required.
func NewFace(dev gpu.Device, vertices []float32, indices []uint32, tex texture.Texture, usage gpu.Usage) *Face {
	if len(vertices) == 0 || len(vertices)%FloatsPerVertex != 0 {
		panic(fmt.Sprintf("brush: vertex data length %d is not a positive multiple of %d", len(vertices), FloatsPerVertex))
	}
	if len(indices) == 0 {
		panic("brush: face needs at least one index")
	}

	f := &Face{
		vertices: slices.Clone(vertices),
		indices:  slices.Clone(indices),
		tex:      tex,
		res:      &resources{dev: dev},
	}
	h := &f.res.handles

	h.EBO = dev.GenBuffer()
	dev.BindBuffer(gpu.ElementArrayBuffer, h.EBO)
	dev.BufferIndices(gpu.ElementArrayBuffer, f.indices, usage)

	h.VAO = dev.GenVertexArray()
	dev.BindVertexArray(h.VAO)

	h.VBO = dev.GenBuffer()
	dev.BindBuffer(gpu.ArrayBuffer, h.VBO)
	dev.BufferFloats(gpu.ArrayBuffer, f.vertices, usage)

	// World space position
	dev.VertexAttribPointer(AttribPosition, 3, FloatsPerVertex, 0)
	dev.EnableVertexAttribArray(AttribPosition)
	// UV
	dev.VertexAttribPointer(AttribUV, 2, FloatsPerVertex, 3)
	dev.EnableVertexAttribArray(AttribUV)

	dev.BindVertexArray(0)
	dev.BindBuffer(gpu.ArrayBuffer, 0)
	dev.BindBuffer(gpu.ElementArrayBuffer, 0)

	return f
}

// VertexAt returns the i-th float of the interleaved vertex data.
func (f Face) VertexAt(i int) float32 {
	return f.vertices[i]
}

// IndexAt returns the i-th triangle index.
func (f Face) IndexAt(i int) uint32 {
	return f.indices[i]
}

// VertexCount returns the number of vertices (not floats).
func (f Face) VertexCount() int {
	return len(f.vertices) / FloatsPerVertex
}

// IndexCount returns the number of indices.
func (f Face) IndexCount() int {
	return len(f.indices)
}

// Position returns the world-space position of vertex v.
func (f Face) Position(v int) [3]float32 {
	o := v * FloatsPerVertex
	return [3]float32{f.vertices[o], f.vertices[o+1], f.vertices[o+2]}
}

// UV returns the texture coordinate of vertex v.
func (f Face) UV(v int) [2]float32 {
	o := v*FloatsPerVertex + 3
	return [2]float32{f.vertices[o], f.vertices[o+1]}
}

// Texture returns the texture the face is drawn with.
func (f Face) Texture() texture.Texture {
	return f.tex
}

// Handles returns the GPU objects to draw with. After Release they are zero.
func (f Face) Handles() Handles {
	if f.res.released {
		return Handles{}
	}
	return f.res.handles
}

// Released reports whether the GPU objects have been freed.
func (f Face) Released() bool {
	return f.res.released
}

// Release deletes the face's GPU objects. Later calls, on this face or any
// copy of it, do nothing.
func (f *Face) Release() {
	r := f.res
	if r.released {
		return
	}
	r.released = true
	r.dev.DeleteBuffer(r.handles.VBO)
	r.dev.DeleteVertexArray(r.handles.VAO)
	r.dev.DeleteBuffer(r.handles.EBO)
}

// clone returns a copy with its own vertex and index data that shares the
// GPU objects.
func (f Face) clone() Face {
	return Face{
		vertices: slices.Clone(f.vertices),
		indices:  slices.Clone(f.indices),
		tex:      f.tex,
		res:      f.res,
	}
}
