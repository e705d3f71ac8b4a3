package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/lightlab/mesh"
)

// GL implements Device on an OpenGL 4.1 core context. The context must be
// current on the calling thread.
type GL struct {
	arrays map[Buffer]uint32
}

// NewGL loads the OpenGL entry points and sets the fixed pipeline state.
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize gl: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &GL{arrays: map[Buffer]uint32{}}, nil
}

func (*GL) Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (*GL) CompileProgram(vertexSource, fragmentSource string) (Program, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER, VertexStage)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER, FragmentStage)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, &LinkError{Log: strings.TrimRight(log, "\x00")}
	}

	return Program(program), nil
}

func compileShader(source string, shaderType uint32, stage Stage) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(terminate(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, &CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}

	return shader, nil
}

func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func (*GL) DeleteProgram(program Program) { gl.DeleteProgram(uint32(program)) }
func (*GL) UseProgram(program Program) { gl.UseProgram(uint32(program)) }

func (*GL) AttribLocation(program Program, name string) int32 {
	return gl.GetAttribLocation(uint32(program), gl.Str(terminate(name)))
}

func (*GL) UniformLocation(program Program, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(terminate(name)))
}

func (*GL) UniformMatrix4(location int32, v m.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &v[0])
}

func (*GL) Uniform4(location int32, v m.Vec4) { gl.Uniform4fv(location, 1, &v[0]) }
func (*GL) Uniform3(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }
func (*GL) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }
func (*GL) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

// UploadVertices creates a vertex array and a static buffer holding vertices.
// Core profile needs a bound vertex array for attribute state, so each
// buffer gets its own.
func (device *GL) UploadVertices(vertices []mesh.Vertex) Buffer {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(mesh.VertexBytes), gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	device.arrays[Buffer(vbo)] = vao
	return Buffer(vbo)
}

func (device *GL) DeleteBuffer(buffer Buffer) {
	if vao, ok := device.arrays[buffer]; ok {
		gl.DeleteVertexArrays(1, &vao)
		delete(device.arrays, buffer)
	}
	vbo := uint32(buffer)
	gl.DeleteBuffers(1, &vbo)
}

func (device *GL) BindBuffer(buffer Buffer) {
	gl.BindVertexArray(device.arrays[buffer])
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
}

func (*GL) EnableAttrib(location int32, components int32, stride int32, offset uintptr) {
	gl.EnableVertexAttribArray(uint32(location))
	gl.VertexAttribPointer(uint32(location), components, gl.FLOAT, false, stride, gl.PtrOffset(int(offset)))
}

func (*GL) DisableAttrib(location int32) { gl.DisableVertexAttribArray(uint32(location)) }

func (*GL) Viewport(width, height int32) { gl.Viewport(0, 0, width, height) }

func (*GL) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (*GL) DrawTriangles(count int32) { gl.DrawArrays(gl.TRIANGLES, 0, count) }
