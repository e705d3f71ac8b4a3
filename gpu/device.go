// Package gpu is the boundary between the renderer and the graphics API.
package gpu

import (
	"fmt"

	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/lightlab/mesh"
)

type (
	Program uint32
	Buffer  uint32
)

// Stage names a shader stage in diagnostics.
type Stage string

const (
	VertexStage   Stage = "vertex"
	FragmentStage Stage = "fragment"
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (err *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", err.Stage, err.Log)
}

// LinkError is returned when the stages fail to link.
type LinkError struct {
	Log string
}

func (err *LinkError) Error() string { return "link program: " + err.Log }

// Locator resolves named program inputs. Missing names resolve to -1.
type Locator interface {
	AttribLocation(program Program, name string) int32
	UniformLocation(program Program, name string) int32
}

// Uniforms writes values into the program currently in use.
type Uniforms interface {
	UniformMatrix4(location int32, v m.Mat4)
	Uniform4(location int32, v m.Vec4)
	Uniform3(location int32, x, y, z float32)
	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
}

// Device is everything the frame loop needs from the graphics API.
type Device interface {
	Locator
	Uniforms

	CompileProgram(vertexSource, fragmentSource string) (Program, error)
	DeleteProgram(program Program)
	UseProgram(program Program)

	// UploadVertices copies vertices into a static vertex buffer.
	UploadVertices(vertices []mesh.Vertex) Buffer
	DeleteBuffer(buffer Buffer)
	BindBuffer(buffer Buffer)

	EnableAttrib(location int32, components int32, stride int32, offset uintptr)
	DisableAttrib(location int32)

	Viewport(width, height int32)
	Clear(r, g, b, a float32)
	DrawTriangles(count int32)
}
