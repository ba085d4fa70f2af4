// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, max(logLen, 1))
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, max(logLen, 1))
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name, or -1 if the
// uniform is not found or was optimized out.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Program is a linked shader program with cached uniform locations.
type Program struct {
	ID       uint32
	name     string
	uniforms map[string]int32
}

// NewProgram compiles and links a named program.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("%s program: %w", name, err)
	}
	return &Program{ID: id, name: name, uniforms: make(map[string]int32)}, nil
}

// Name returns the program's name.
func (p *Program) Name() string {
	return p.name
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// Uniform returns the cached location of a uniform.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := GetUniform(p.ID, name)
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a 4x4 matrix.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, &m[0])
}

// SetVec3 uploads a vec3.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.Uniform(name), v[0], v[1], v[2])
}

// SetFloat uploads a float.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

// SetInt uploads an int or sampler unit.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

// SetBool uploads a bool as an int.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.Uniform(name), i)
}
