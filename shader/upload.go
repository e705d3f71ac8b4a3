package shader

import (
	"github.com/adinfinit/g"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/lightlab/gpu"
	"github.com/adinfinit/lightlab/light"
)

// Frame is the uniform state of one draw.
type Frame struct {
	Model      m.Mat4
	View       m.Mat4
	Projection m.Mat4

	Material light.Material
	Lights   *light.Set
}

func (frame *Frame) ModelView() m.Mat4 { return frame.View.Mul4(frame.Model) }

func (frame *Frame) ModelViewProjection() m.Mat4 {
	return frame.Projection.Mul4(frame.ModelView())
}

// Upload writes every uniform of the contract. Light geometry is authored in
// world space and converted to eye space here.
func (locs *Locations) Upload(device gpu.Uniforms, frame *Frame) {
	modelView := frame.ModelView()

	for i, binding := range locs.Contract {
		if binding.Scope != Uniform {
			continue
		}
		loc := locs.locations[i]

		switch binding.Semantic {
		case ModelViewProjection:
			device.UniformMatrix4(loc, frame.Projection.Mul4(modelView))
		case ModelView:
			device.UniformMatrix4(loc, modelView)
		case Projection:
			device.UniformMatrix4(loc, frame.Projection)
		case Diffuse:
			device.Uniform4(loc, frame.Material.Diffuse)
		case Specular:
			device.Uniform4(loc, frame.Material.Specular)
		case Shininess:
			device.Uniform1f(loc, frame.Material.Shininess)
		case LightField:
			uploadLightField(device, loc, frame, binding)
		}
	}
}

func uploadLightField(device gpu.Uniforms, loc int32, frame *Frame, binding Binding) {
	l := frame.Lights.Get(binding.Kind)

	switch binding.Field {
	case light.Color:
		device.Uniform3(loc, l.Color.X, l.Color.Y, l.Color.Z)
	case light.Position:
		p := frame.View.Mul4x1(homogeneous(l.Position, 1))
		device.Uniform3(loc, p[0], p[1], p[2])
	case light.Direction:
		d := frame.View.Mul4x1(homogeneous(l.Direction, 0))
		device.Uniform3(loc, d[0], d[1], d[2])
	case light.FOV:
		device.Uniform1f(loc, l.FieldOfView)
	case light.Enabled:
		var on int32
		if l.Enabled {
			on = 1
		}
		device.Uniform1i(loc, on)
	}
}

func homogeneous(v g.Vec3, w float32) m.Vec4 { return m.Vec4{v.X, v.Y, v.Z, w} }
