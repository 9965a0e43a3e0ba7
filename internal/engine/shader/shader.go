// Package shader wraps linked GPU programs and their uniforms.
package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/brushkit/internal/engine/gpu"
	"github.com/Faultbox/brushkit/internal/logger"
)

// Program is a linked shader program with cached uniform locations.
type Program struct {
	dev       gpu.Device
	id        uint32
	name      string
	locations map[string]int32
}

// Compile builds a program from vertex and fragment source.
func Compile(dev gpu.Device, name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := dev.CreateProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling %s program: %w", name, err)
	}
	logger.Debug("shader program created", zap.String("name", name), zap.Uint32("program", id))
	return &Program{
		dev:       dev,
		id:        id,
		name:      name,
		locations: make(map[string]int32),
	}, nil
}

// ID returns the program handle.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes the program current.
func (p *Program) Use() {
	p.dev.UseProgram(p.id)
}

// Uniform returns the location of name, or -1 if the program has no such
// active uniform. Lookups are cached.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.dev.UniformLocation(p.id, name)
	if loc < 0 {
		logger.Debug("uniform not found", zap.String("program", p.name), zap.String("uniform", name))
	}
	p.locations[name] = loc
	return loc
}

// SetMat4 uploads a matrix uniform. The program must be in use.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.Uniform(name); loc >= 0 {
		arr := [16]float32(m)
		p.dev.UniformMatrix4(loc, &arr)
	}
}

// SetInt uploads an integer (or sampler) uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.Uniform(name); loc >= 0 {
		p.dev.Uniform1i(loc, v)
	}
}

// SetVec3 uploads a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.Uniform(name); loc >= 0 {
		p.dev.Uniform3f(loc, v.X(), v.Y(), v.Z())
	}
}

// Delete frees the program.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.id = 0
}
