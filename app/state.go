package app

import (
	"errors"
	"log"
	"time"

	"github.com/adinfinit/lightlab/gpu"
	"github.com/adinfinit/lightlab/light"
	"github.com/adinfinit/lightlab/mesh"
	"github.com/adinfinit/lightlab/shader"
)

// DefaultMesh is loaded when Config.MeshPath is empty.
const DefaultMesh = "dragon.obj"

// ErrShaderPair is returned when only one of the shader paths is set.
var ErrShaderPair = errors.New("vertex and fragment shader paths must be set together")

// Config selects the inputs of a program.
type Config struct {
	MeshPath string

	// VertexPath and FragmentPath replace the built-in shaders. They are
	// set together or not at all.
	VertexPath   string
	FragmentPath string
}

func (config *Config) meshPath() string {
	if config.MeshPath == "" {
		return DefaultMesh
	}
	return config.MeshPath
}

// shaderSource returns the external shaders if configured, otherwise the
// named embedded program, otherwise the unlit mesh program.
func (config *Config) shaderSource(embedded string) (shader.Source, error) {
	if (config.VertexPath == "") != (config.FragmentPath == "") {
		return shader.Source{}, ErrShaderPair
	}
	if config.VertexPath != "" {
		return shader.Load(config.VertexPath, config.FragmentPath)
	}
	if embedded == "" {
		return shader.MeshSource, nil
	}
	return shader.Embedded(embedded)
}

// State is everything a frame driver owns.
type State struct {
	Device gpu.Device
	Phase  Phase

	Width, Height int
	Camera        Camera
	Spin          Spin

	Buffer      gpu.Buffer
	VertexCount int32
	Program     *shader.Program

	Material light.Material
	Lights   light.Set
}

// ClearColor is the background of every frame.
var ClearColor = [4]float32{0.0, 0.0, 0.2, 1.0}

// init loads the mesh, uploads it and builds the program. On failure the
// state ends up Terminated and nothing stays allocated on the device.
func (state *State) init(device gpu.Device, loader *mesh.Loader, meshPath string, source shader.Source, contract shader.Contract) error {
	state.Device = device
	state.Camera = *NewCamera()
	state.Spin = NewSpin()
	state.Material = light.DefaultMaterial

	model, err := loader.Load(meshPath)
	if err != nil {
		state.Phase = Terminated
		return err
	}
	log.Printf("loaded %s: %d vertices", model.Name, model.Count())

	state.Buffer = device.UploadVertices(model.Vertices)
	state.VertexCount = int32(model.Count())

	state.Program, err = shader.Build(device, source, contract)
	if err != nil {
		device.DeleteBuffer(state.Buffer)
		state.Buffer = 0
		state.Phase = Terminated
		return err
	}

	state.Phase = Ready
	return nil
}

func (state *State) OnResize(width, height int) {
	state.Width, state.Height = width, height
	if state.Device != nil {
		state.Device.Viewport(int32(width), int32(height))
	}
	state.Camera.UpdateScreenSize(width, height)
}

func (state *State) OnTick(dt time.Duration) {
	state.Spin.Advance(dt)
}

// OnKey quits on escape and ignores everything else.
func (state *State) OnKey(key Key) Action {
	if key == KeyEscape {
		return Quit
	}
	return Continue
}

// Frame is the uniform state for the next draw.
func (state *State) Frame() shader.Frame {
	return shader.Frame{
		Model:      state.Spin.Model(),
		View:       state.Camera.View,
		Projection: state.Camera.Projection,
		Material:   state.Material,
		Lights:     &state.Lights,
	}
}

type vertexAttrib struct {
	semantic shader.Semantic
	offset   uintptr
}

var vertexAttribs = [...]vertexAttrib{
	{shader.VertexPosition, mesh.PositionOffset},
	{shader.VertexColor, mesh.ColorOffset},
	{shader.VertexNormal, mesh.NormalOffset},
}

func (state *State) OnRender() {
	if state.Phase != Ready && state.Phase != Rendering {
		return
	}
	state.Phase = Rendering

	device := state.Device
	device.Clear(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])

	device.UseProgram(state.Program.ID)
	frame := state.Frame()
	state.Program.Upload(device, &frame)

	device.BindBuffer(state.Buffer)
	var enabled []int32
	for _, attrib := range vertexAttribs {
		loc := state.Program.Attrib(attrib.semantic)
		if loc < 0 {
			continue
		}
		device.EnableAttrib(loc, 3, mesh.VertexBytes, attrib.offset)
		enabled = append(enabled, loc)
	}

	device.DrawTriangles(state.VertexCount)

	for _, loc := range enabled {
		device.DisableAttrib(loc)
	}
}

// Close releases the device resources.
func (state *State) Close() {
	if state.Device != nil {
		if state.Program != nil {
			state.Program.Delete(state.Device)
			state.Program = nil
		}
		if state.Buffer != 0 {
			state.Device.DeleteBuffer(state.Buffer)
			state.Buffer = 0
		}
	}
	state.Phase = Terminated
}
