// Package gputest provides a gpu.Device that records calls instead of
// talking to a graphics driver.
package gputest

import (
	"regexp"
	"sort"

	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/lightlab/gpu"
	"github.com/adinfinit/lightlab/mesh"
)

// Call is one recorded device operation.
type Call struct {
	Op       string
	Location int32
	Value    any
}

// Recorder implements gpu.Device. Programs expose the attributes and
// uniforms declared in their GLSL source; nothing is optimized away.
type Recorder struct {
	Calls []Call
	Draws []int32

	// CompileErr, when set, is returned by CompileProgram.
	CompileErr error

	Buffers map[gpu.Buffer][]mesh.Vertex
	Deleted []string
	Enabled map[int32]bool
	Size    [2]int32

	programs map[gpu.Program]*program
	current  gpu.Program
	nextID   uint32
}

type program struct {
	attribs  map[string]int32
	uniforms map[string]int32
	values   map[int32]any
}

func NewRecorder() *Recorder {
	return &Recorder{
		Buffers:  map[gpu.Buffer][]mesh.Vertex{},
		Enabled:  map[int32]bool{},
		programs: map[gpu.Program]*program{},
	}
}

var (
	attribDecl  = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?(?:in|attribute)\s+\w+\s+(\w+)\s*;`)
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+(\w+)\s+([\w\s,]+);`)
	structDecl  = regexp.MustCompile(`(?s)struct\s+(\w+)\s*\{([^}]*)\}`)
	memberDecl  = regexp.MustCompile(`\w+\s+(\w+)\s*;`)
	nameList    = regexp.MustCompile(`\w+`)
)

func (rec *Recorder) CompileProgram(vertexSource, fragmentSource string) (gpu.Program, error) {
	rec.Calls = append(rec.Calls, Call{Op: "compile"})
	if rec.CompileErr != nil {
		return 0, rec.CompileErr
	}

	prog := &program{
		attribs:  map[string]int32{},
		uniforms: map[string]int32{},
		values:   map[int32]any{},
	}

	for _, match := range attribDecl.FindAllStringSubmatch(vertexSource, -1) {
		if _, ok := prog.attribs[match[1]]; !ok {
			prog.attribs[match[1]] = int32(len(prog.attribs))
		}
	}

	for _, source := range []string{vertexSource, fragmentSource} {
		structs := map[string][]string{}
		for _, match := range structDecl.FindAllStringSubmatch(source, -1) {
			for _, member := range memberDecl.FindAllStringSubmatch(match[2], -1) {
				structs[match[1]] = append(structs[match[1]], member[1])
			}
		}

		for _, match := range uniformDecl.FindAllStringSubmatch(source, -1) {
			typ := match[1]
			for _, name := range nameList.FindAllString(match[2], -1) {
				members, isStruct := structs[typ]
				if !isStruct {
					prog.declareUniform(name)
					continue
				}
				for _, member := range members {
					prog.declareUniform(name + "." + member)
				}
			}
		}
	}

	rec.nextID++
	id := gpu.Program(rec.nextID)
	rec.programs[id] = prog
	return id, nil
}

func (prog *program) declareUniform(name string) {
	if _, ok := prog.uniforms[name]; !ok {
		prog.uniforms[name] = int32(len(prog.uniforms))
	}
}

func (rec *Recorder) DeleteProgram(id gpu.Program) {
	delete(rec.programs, id)
	rec.Deleted = append(rec.Deleted, "program")
}

func (rec *Recorder) UseProgram(id gpu.Program) {
	rec.current = id
	rec.Calls = append(rec.Calls, Call{Op: "use", Value: id})
}

func (rec *Recorder) AttribLocation(id gpu.Program, name string) int32 {
	if prog, ok := rec.programs[id]; ok {
		if loc, ok := prog.attribs[name]; ok {
			return loc
		}
	}
	return -1
}

func (rec *Recorder) UniformLocation(id gpu.Program, name string) int32 {
	if prog, ok := rec.programs[id]; ok {
		if loc, ok := prog.uniforms[name]; ok {
			return loc
		}
	}
	return -1
}

// Uniforms lists the uniform names declared by a program.
func (rec *Recorder) Uniforms(id gpu.Program) []string {
	prog, ok := rec.programs[id]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(prog.uniforms))
	for name := range prog.uniforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Value returns the last value written to the named uniform of a program.
func (rec *Recorder) Value(id gpu.Program, name string) (any, bool) {
	prog, ok := rec.programs[id]
	if !ok {
		return nil, false
	}
	loc, ok := prog.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := prog.values[loc]
	return v, ok
}

func (rec *Recorder) set(location int32, v any) {
	rec.Calls = append(rec.Calls, Call{Op: "uniform", Location: location, Value: v})
	if prog, ok := rec.programs[rec.current]; ok && location >= 0 {
		prog.values[location] = v
	}
}

func (rec *Recorder) UniformMatrix4(location int32, v m.Mat4)  { rec.set(location, v) }
func (rec *Recorder) Uniform4(location int32, v m.Vec4)        { rec.set(location, v) }
func (rec *Recorder) Uniform3(location int32, x, y, z float32) { rec.set(location, m.Vec3{x, y, z}) }
func (rec *Recorder) Uniform1f(location int32, v float32)      { rec.set(location, v) }
func (rec *Recorder) Uniform1i(location int32, v int32)        { rec.set(location, v) }

func (rec *Recorder) UploadVertices(vertices []mesh.Vertex) gpu.Buffer {
	rec.nextID++
	id := gpu.Buffer(rec.nextID)
	rec.Buffers[id] = append([]mesh.Vertex(nil), vertices...)
	rec.Calls = append(rec.Calls, Call{Op: "upload", Value: len(vertices)})
	return id
}

func (rec *Recorder) DeleteBuffer(id gpu.Buffer) {
	delete(rec.Buffers, id)
	rec.Deleted = append(rec.Deleted, "buffer")
}

func (rec *Recorder) BindBuffer(id gpu.Buffer) {
	rec.Calls = append(rec.Calls, Call{Op: "bind", Value: id})
}

func (rec *Recorder) EnableAttrib(location int32, components int32, stride int32, offset uintptr) {
	rec.Enabled[location] = true
	rec.Calls = append(rec.Calls, Call{Op: "enable", Location: location, Value: [3]int64{int64(components), int64(stride), int64(offset)}})
}

func (rec *Recorder) DisableAttrib(location int32) {
	delete(rec.Enabled, location)
	rec.Calls = append(rec.Calls, Call{Op: "disable", Location: location})
}

func (rec *Recorder) Viewport(width, height int32) {
	rec.Size = [2]int32{width, height}
}

func (rec *Recorder) Clear(r, g, b, a float32) {
	rec.Calls = append(rec.Calls, Call{Op: "clear", Value: m.Vec4{r, g, b, a}})
}

func (rec *Recorder) DrawTriangles(count int32) {
	rec.Draws = append(rec.Draws, count)
	rec.Calls = append(rec.Calls, Call{Op: "draw", Value: count})
}

// Ops returns the operation names of the recorded calls.
func (rec *Recorder) Ops() []string {
	ops := make([]string, len(rec.Calls))
	for i, call := range rec.Calls {
		ops[i] = call.Op
	}
	return ops
}

// Reset forgets recorded calls and draws, keeping programs and buffers.
func (rec *Recorder) Reset() {
	rec.Calls = nil
	rec.Draws = nil
}

var _ gpu.Device = (*Recorder)(nil)
