package mesh

import (
	"math"

	m "github.com/go-gl/mathgl/mgl32"
)

// Shapes are the procedural meshes accepted by Loader.Load in place of a path.
var Shapes = map[string]func() Mesh{
	"vase": Vase,
	"tube": func() Mesh {
		return Lathe(8, 24, true, func(t, phase float32) m.Vec3 {
			sn, cs := math.Sincos(float64(phase))
			return m.Vec3{float32(sn), float32(cs), (t - 0.5) * 4}
		})
	},
}

// Vase is a capped surface of revolution with a bulging profile.
func Vase() Mesh {
	return Lathe(12, 12, true, func(t, phase float32) m.Vec3 {
		r := 12.291*t*t*t - 20*t*t + 8.508*t
		h := 3 * t
		rx := 0.5 * h * float32(math.Exp(float64(1-h)))

		sn, cs := math.Sincos(float64(phase))
		return m.Vec3{
			r * float32(sn) * rx,
			r * float32(cs),
			(t - 0.5) * 3,
		}
	})
}

// Lathe sweeps fn around the z axis. fn maps the profile parameter t in [0,1]
// and the angle phase to a point; depth rings of corners points are joined
// into quads, and capped closes both ends with a fan around the ring center.
// Side normals point away from the axis.
func Lathe(depth, corners int, capped bool, fn func(t, phase float32) m.Vec3) Mesh {
	var mesh Mesh

	vertex := func(v m.Vec3) Vertex {
		return Vertex{Position: v, Normal: radial(v), Color: DefaultColor}
	}
	ring := func(t float32) []Vertex {
		layer := make([]Vertex, corners)
		for pi := range layer {
			p := float32(pi) * math.Pi * 2 / float32(corners)
			layer[pi] = vertex(fn(t, p))
		}
		return layer
	}
	center := func(layer []Vertex) Vertex {
		var avg m.Vec3
		for _, v := range layer {
			avg = avg.Add(v.Position)
		}
		return Vertex{Position: avg.Mul(1 / float32(len(layer))), Color: DefaultColor}
	}

	lastLayer := ring(0)
	if capped {
		z0 := center(lastLayer)
		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			mesh.Triangle(z0, a, b)
		}
	}

	for ti := 1; ti < depth; ti++ {
		nextLayer := ring(float32(ti) / float32(depth-1))
		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			c, d := nextLayer[pi], nextLayer[(pi+1)%corners]
			mesh.Triangle(a, c, d)
			mesh.Triangle(a, d, b)
		}
		lastLayer = nextLayer
	}

	if capped {
		zt := center(lastLayer)
		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			mesh.Triangle(a, zt, b)
		}
	}

	return mesh
}

func radial(v m.Vec3) m.Vec3 {
	n := m.Vec3{v[0], v[1], 0}
	if n.Len() < 1e-6 {
		return m.Vec3{}
	}
	return n.Normalize()
}
