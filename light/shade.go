package light

import (
	"math"

	"github.com/adinfinit/g"
)

// Surface is a shaded point. All vectors share one space, for the GPU that
// is eye space.
type Surface struct {
	Position g.Vec3
	Normal   g.Vec3
	Color    g.Vec3
	Viewer   g.Vec3
}

// Shade sums the contribution of every light in set. It mirrors
// shader/glsl/lighting.frag.
func Shade(set *Set, material Material, surface Surface) g.Vec3 {
	var total g.Vec3
	for _, kind := range Kinds {
		total = total.Add(Contribution(kind, set[kind], material, surface))
	}
	return total
}

// Contribution is the radiance that a single light adds at surface.
func Contribution(kind Kind, light Light, material Material, surface Surface) g.Vec3 {
	if !light.Enabled {
		return g.Vec3{}
	}

	if kind == Ambient {
		return modulate(light.Color, surface.Color)
	}

	var toLight g.Vec3
	switch kind {
	case Spot, Point:
		toLight = normalize(light.Position.Sub(surface.Position))
	case Distant:
		toLight = normalize(light.Direction.Mul(-1))
	default:
		return g.Vec3{}
	}

	if kind == Spot {
		axis := normalize(light.Direction)
		if dot(axis, toLight.Mul(-1)) < float32(math.Cos(float64(light.FieldOfView))) {
			return g.Vec3{}
		}
	}

	normal := normalize(surface.Normal)
	lambert := dot(normal, toLight)
	if lambert <= 0 {
		return g.Vec3{}
	}

	diffuse := g.V3(material.Diffuse[0], material.Diffuse[1], material.Diffuse[2])
	result := modulate(modulate(light.Color, diffuse), surface.Color).Mul(lambert)

	toViewer := normalize(surface.Viewer.Sub(surface.Position))
	reflected := reflect(toLight.Mul(-1), normal)
	highlight := dot(reflected, toViewer)
	if highlight > 0 {
		specular := g.V3(material.Specular[0], material.Specular[1], material.Specular[2])
		power := float32(math.Pow(float64(highlight), float64(material.Shininess)))
		result = result.Add(modulate(light.Color, specular).Mul(power))
	}
	return result
}

func dot(a, b g.Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func modulate(a, b g.Vec3) g.Vec3 { return g.V3(a.X*b.X, a.Y*b.Y, a.Z*b.Z) }

func normalize(v g.Vec3) g.Vec3 {
	if v.Len() < 1e-12 {
		return g.Vec3{}
	}
	return v.Normalize()
}

// reflect matches GLSL reflect(i, n) for a normalized n.
func reflect(i, n g.Vec3) g.Vec3 {
	return i.Sub(n.Mul(2 * dot(n, i)))
}
