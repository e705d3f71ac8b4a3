package app

import (
	"github.com/adinfinit/lightlab/gpu"
	"github.com/adinfinit/lightlab/light"
	"github.com/adinfinit/lightlab/mesh"
	"github.com/adinfinit/lightlab/shader"
)

// Application is a Driver that the host initializes once the graphics
// context exists and closes after the loop ends.
type Application interface {
	Driver
	Init(device gpu.Device) error
	Close()
}

// MeshViewer draws the mesh in its vertex colors with one combined transform.
type MeshViewer struct {
	Config
	State
}

func (viewer *MeshViewer) Init(device gpu.Device) error {
	source, err := viewer.shaderSource("")
	if err != nil {
		viewer.Phase = Terminated
		return err
	}
	loader := &mesh.Loader{GenerateNormals: false}
	return viewer.init(device, loader, viewer.meshPath(), source, shader.MeshContract())
}

// PointLit shades the mesh with a single point light.
type PointLit struct {
	Config
	State
}

func (lit *PointLit) Init(device gpu.Device) error {
	source, err := lit.shaderSource("point")
	if err != nil {
		lit.Phase = Terminated
		return err
	}
	lit.Lights = light.PointSet()
	return lit.init(device, mesh.NewLoader(), lit.meshPath(), source, shader.PointContract())
}

// Lit shades the mesh with spot, point, distant and ambient lights, toggled
// by keys 1 to 4.
type Lit struct {
	Config
	State
}

func (lit *Lit) Init(device gpu.Device) error {
	source, err := lit.shaderSource("lighting")
	if err != nil {
		lit.Phase = Terminated
		return err
	}
	lit.Lights = light.DefaultSet()
	return lit.init(device, mesh.NewLoader(), lit.meshPath(), source, shader.FullContract())
}

var toggleKeys = map[Key]light.Kind{
	Key1: light.Spot,
	Key2: light.Point,
	Key3: light.Distant,
	Key4: light.Ambient,
}

func (lit *Lit) OnKey(key Key) Action {
	if kind, ok := toggleKeys[key]; ok {
		lit.Lights.Toggle(kind)
		return Continue
	}
	return lit.State.OnKey(key)
}

var (
	_ Application = (*MeshViewer)(nil)
	_ Application = (*PointLit)(nil)
	_ Application = (*Lit)(nil)
)
