// Package gpu defines the graphics device used by the engine.
//
// Resources are addressed by opaque uint32 handles, the same way OpenGL
// names them. All calls must be made from the thread that owns the current
// context.
package gpu

// Target is a buffer binding point.
type Target uint32

// Usage hints how often buffer contents will change.
type Usage uint32

// Primitive is a draw mode.
type Primitive uint32

// Capability is a toggleable pipeline feature.
type Capability uint32

// ClearMask selects which buffers Clear resets.
type ClearMask uint32

// Enum values match their OpenGL counterparts.
const (
	ArrayBuffer        Target = 0x8892
	ElementArrayBuffer Target = 0x8893

	StaticDraw  Usage = 0x88E4
	DynamicDraw Usage = 0x88E8

	Lines     Primitive = 0x0001
	Triangles Primitive = 0x0004

	DepthTest       Capability = 0x0B71
	FramebufferSRGB Capability = 0x8DB9
	CullFace        Capability = 0x0B44

	ColorBuffer ClearMask = 0x4000
	DepthBuffer ClearMask = 0x0100
)

// Sizes in bytes of the element types uploaded to buffers.
const (
	FloatSize = 4 // float32 vertex component
	IndexSize = 4 // uint32 element index
)

// Device is the subset of a graphics API the engine draws with.
type Device interface {
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target Target, id uint32)
	BufferFloats(target Target, data []float32, usage Usage)
	BufferIndices(target Target, data []uint32, usage Usage)

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	// VertexAttribPointer describes a float attribute; stride and offset
	// are counted in floats, not bytes.
	VertexAttribPointer(index uint32, size, strideFloats, offsetFloats int32)
	EnableVertexAttribArray(index uint32)

	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(id uint32)
	// TexImageRGBA uploads tightly packed 8-bit RGBA pixels to the bound
	// texture, sets linear filtering with repeat wrapping and builds mipmaps.
	TexImageRGBA(width, height int32, pixels []uint8)

	CreateProgram(vertexSrc, fragmentSrc string) (uint32, error)
	UseProgram(id uint32)
	DeleteProgram(id uint32)
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m *[16]float32)
	Uniform1i(location int32, v int32)
	Uniform3f(location int32, x, y, z float32)

	DrawElements(mode Primitive, count int32)
	DrawArrays(mode Primitive, first, count int32)

	Enable(c Capability)
	Disable(c Capability)
	DepthLess()
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Viewport(x, y, width, height int32)
	// ReadPixels returns the back buffer as bottom-up RGBA rows.
	ReadPixels(width, height int32) []uint8
}
