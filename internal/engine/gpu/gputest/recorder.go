// Package gputest provides an in-memory gpu.Device for tests.
package gputest

import (
	"fmt"
	"slices"

	"github.com/Faultbox/brushkit/internal/engine/gpu"
)

// Kind labels a handle namespace.
type Kind string

const (
	Buffer      Kind = "buffer"
	VertexArray Kind = "vertex-array"
	Texture     Kind = "texture"
	Program     Kind = "program"
)

// MissingUniform is a uniform name the recorder reports as inactive.
const MissingUniform = "missing"

// Attrib records one VertexAttribPointer call.
type Attrib struct {
	VAO          uint32
	Index        uint32
	Size         int32
	StrideFloats int32
	OffsetFloats int32
}

// Draw records one draw call with the state bound at the time.
type Draw struct {
	Mode    gpu.Primitive
	Count   int32
	Program uint32
	VAO     uint32
	EBO     uint32
	Texture uint32
}

// Recorder implements gpu.Device by recording every call.
// Handles are unique across all kinds so tests can match them directly.
type Recorder struct {
	next uint32

	Live          map[uint32]Kind
	Deleted       []uint32
	// DoubleDeletes lists handles deleted when not live.
	DoubleDeletes []uint32

	Buffers  map[uint32][]float32
	Indices  map[uint32][]uint32
	Usages   map[uint32]gpu.Usage
	Attribs  []Attrib
	Enabled  map[uint32][]uint32
	Textures map[uint32][2]int32

	Uniforms map[string]any
	// Lookups counts UniformLocation calls.
	Lookups  int
	Draws    []Draw
	Calls    []string

	Caps       map[gpu.Capability]bool
	Clears     []gpu.ClearMask
	ClearRGBA  [4]float32
	ViewportWH [2]int32

	// FailProgram makes CreateProgram return an error.
	FailProgram bool
	// Pixels is returned by ReadPixels when set.
	Pixels      []uint8

	boundArray   uint32
	boundElement uint32
	boundVAO     uint32
	boundTexture uint32
	program      uint32
	locations    map[int32]string
}

var _ gpu.Device = (*Recorder)(nil)

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{
		Live:      make(map[uint32]Kind),
		Buffers:   make(map[uint32][]float32),
		Indices:   make(map[uint32][]uint32),
		Usages:    make(map[uint32]gpu.Usage),
		Enabled:   make(map[uint32][]uint32),
		Textures:  make(map[uint32][2]int32),
		Uniforms:  make(map[string]any),
		Caps:      make(map[gpu.Capability]bool),
		locations: make(map[int32]string),
	}
}

func (r *Recorder) gen(k Kind) uint32 {
	r.next++
	r.Live[r.next] = k
	r.Calls = append(r.Calls, "gen "+string(k))
	return r.next
}

func (r *Recorder) del(k Kind, id uint32) {
	r.Calls = append(r.Calls, "delete "+string(k))
	if got, ok := r.Live[id]; !ok || got != k {
		r.DoubleDeletes = append(r.DoubleDeletes, id)
		return
	}
	delete(r.Live, id)
	r.Deleted = append(r.Deleted, id)
}

// LiveCount returns how many handles of kind k are still allocated.
func (r *Recorder) LiveCount(k Kind) int {
	n := 0
	for _, got := range r.Live {
		if got == k {
			n++
		}
	}
	return n
}

// DeleteCount returns how many times id was successfully deleted.
func (r *Recorder) DeleteCount(id uint32) int {
	n := 0
	for _, d := range r.Deleted {
		if d == id {
			n++
		}
	}
	return n
}

func (r *Recorder) GenBuffer() uint32           { return r.gen(Buffer) }
func (r *Recorder) DeleteBuffer(id uint32)      { r.del(Buffer, id) }
func (r *Recorder) GenVertexArray() uint32      { return r.gen(VertexArray) }
func (r *Recorder) DeleteVertexArray(id uint32) { r.del(VertexArray, id) }
func (r *Recorder) GenTexture() uint32          { return r.gen(Texture) }
func (r *Recorder) DeleteTexture(id uint32)     { r.del(Texture, id) }
func (r *Recorder) DeleteProgram(id uint32)     { r.del(Program, id) }

func (r *Recorder) BindBuffer(target gpu.Target, id uint32) {
	switch target {
	case gpu.ArrayBuffer:
		r.boundArray = id
	case gpu.ElementArrayBuffer:
		r.boundElement = id
	}
}

func (r *Recorder) BufferFloats(target gpu.Target, data []float32, usage gpu.Usage) {
	id := r.bound(target)
	r.Buffers[id] = slices.Clone(data)
	r.Usages[id] = usage
}

func (r *Recorder) BufferIndices(target gpu.Target, data []uint32, usage gpu.Usage) {
	id := r.bound(target)
	r.Indices[id] = slices.Clone(data)
	r.Usages[id] = usage
}

func (r *Recorder) bound(target gpu.Target) uint32 {
	if target == gpu.ElementArrayBuffer {
		return r.boundElement
	}
	return r.boundArray
}

func (r *Recorder) BindVertexArray(id uint32) { r.boundVAO = id }

func (r *Recorder) VertexAttribPointer(index uint32, size, strideFloats, offsetFloats int32) {
	r.Attribs = append(r.Attribs, Attrib{
		VAO:          r.boundVAO,
		Index:        index,
		Size:         size,
		StrideFloats: strideFloats,
		OffsetFloats: offsetFloats,
	})
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.Enabled[r.boundVAO] = append(r.Enabled[r.boundVAO], index)
}

func (r *Recorder) BindTexture(id uint32) { r.boundTexture = id }

func (r *Recorder) TexImageRGBA(width, height int32, pixels []uint8) {
	r.Textures[r.boundTexture] = [2]int32{width, height}
}

func (r *Recorder) CreateProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if r.FailProgram {
		return 0, fmt.Errorf("link: forced failure")
	}
	return r.gen(Program), nil
}

func (r *Recorder) UseProgram(id uint32) { r.program = id }

// UniformLocation hands out a location per (program, name) pair.
func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	r.Lookups++
	if name == MissingUniform {
		return -1
	}
	loc := int32(len(r.locations))
	r.locations[loc] = name
	return loc
}

func (r *Recorder) UniformMatrix4(location int32, m *[16]float32) {
	r.Uniforms[r.locations[location]] = *m
}

func (r *Recorder) Uniform1i(location int32, v int32) {
	r.Uniforms[r.locations[location]] = v
}

func (r *Recorder) Uniform3f(location int32, x, y, z float32) {
	r.Uniforms[r.locations[location]] = [3]float32{x, y, z}
}

func (r *Recorder) DrawElements(mode gpu.Primitive, count int32) {
	r.record(mode, count)
}

func (r *Recorder) DrawArrays(mode gpu.Primitive, first, count int32) {
	r.record(mode, count)
}

func (r *Recorder) record(mode gpu.Primitive, count int32) {
	r.Draws = append(r.Draws, Draw{
		Mode:    mode,
		Count:   count,
		Program: r.program,
		VAO:     r.boundVAO,
		EBO:     r.boundElement,
		Texture: r.boundTexture,
	})
}

func (r *Recorder) Enable(c gpu.Capability)  { r.Caps[c] = true }
func (r *Recorder) Disable(c gpu.Capability) { r.Caps[c] = false }
func (r *Recorder) DepthLess()               { r.Calls = append(r.Calls, "depth less") }

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.ClearRGBA = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask gpu.ClearMask) { r.Clears = append(r.Clears, mask) }

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.ViewportWH = [2]int32{width, height}
}

// ReadPixels returns Pixels, or a zeroed buffer of the requested size.
func (r *Recorder) ReadPixels(width, height int32) []uint8 {
	r.Calls = append(r.Calls, "read pixels")
	if r.Pixels != nil {
		return slices.Clone(r.Pixels)
	}
	return make([]uint8, int(width)*int(height)*4)
}
