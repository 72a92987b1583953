package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/LeDaffy/FlappyClone/internal/engine/shader/shaders"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

// Program is a linked shader program with uniform locations resolved once at
// link time.
type Program struct {
	id        uint32
	locations map[string]int32
}

// Link compiles and links a program and resolves the named uniforms.
// Uniforms the driver optimized out resolve to -1 and are ignored by GL.
func Link(vertexSrc, fragmentSrc string, uniforms ...string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	p := &Program{
		id:        id,
		locations: make(map[string]int32, len(uniforms)),
	}
	for _, name := range uniforms {
		p.locations[name] = GetUniform(id, name)
	}
	return p, nil
}

// LinkSprite links the embedded sprite program.
func LinkSprite(uniforms ...string) (*Program, error) {
	return Link(shaders.SpriteVertexShader, shaders.SpriteFragmentShader, uniforms...)
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Location returns the cached location of a uniform named at link time.
// Asking for a uniform that was not named is a programming error.
func (p *Program) Location(name string) int32 {
	loc, ok := p.locations[name]
	if !ok {
		panic(fmt.Sprintf("shader: uniform %q was not resolved at link", name))
	}
	return loc
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetMat4 uploads a column-major 4x4 matrix.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, m.Ptr())
}

// SetInt uploads an integer uniform, typically a sampler unit.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Location(name), v)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
