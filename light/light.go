// Package light describes the scene lights and the surface material
// shared by the lit programs.
package light

import (
	"math"

	"github.com/adinfinit/g"
	m "github.com/go-gl/mathgl/mgl32"
)

// Kind identifies one of the four light slots.
type Kind uint8

const (
	Spot Kind = iota
	Point
	Distant
	Ambient
)

// Kinds lists every kind in key order (1..4).
var Kinds = [...]Kind{Spot, Point, Distant, Ambient}

func (kind Kind) String() string {
	switch kind {
	case Spot:
		return "spot"
	case Point:
		return "point"
	case Distant:
		return "distant"
	case Ambient:
		return "ambient"
	}
	return "unknown"
}

// Uniform is the name of the shader struct instance for the kind.
func (kind Kind) Uniform() string { return kind.String() + "Light" }

// Fields returns the fields the shading of this kind reads.
func (kind Kind) Fields() Field {
	switch kind {
	case Spot:
		return Color | Position | Direction | FOV | Enabled
	case Point:
		return Color | Position | Enabled
	case Distant:
		return Color | Direction | Enabled
	case Ambient:
		return Color | Enabled
	}
	return 0
}

// Field is a bit set over the members of a Light.
type Field uint8

const (
	Color Field = 1 << iota
	Position
	Direction
	FOV
	Enabled
)

// Fields lists single fields in declaration order.
var Fields = [...]Field{Color, Position, Direction, FOV, Enabled}

func (f Field) Has(x Field) bool { return f&x == x }

// Name is the shader struct member for a single field.
func (f Field) Name() string {
	switch f {
	case Color:
		return "color"
	case Position:
		return "position"
	case Direction:
		return "direction"
	case FOV:
		return "fov"
	case Enabled:
		return "on"
	}
	return ""
}

// Light is the descriptor used for every kind; see Kind.Fields for which
// members are meaningful.
type Light struct {
	Enabled     bool
	Color       g.Vec3
	Position    g.Vec3
	Direction   g.Vec3
	FieldOfView float32 // half-angle, radians
}

// Set holds one light per kind, indexed by Kind.
type Set [len(Kinds)]Light

func (set *Set) Get(kind Kind) *Light { return &set[kind] }

// Toggle flips the enabled flag of kind.
func (set *Set) Toggle(kind Kind) {
	set[kind].Enabled = !set[kind].Enabled
}

// DefaultSet is the lighting scene; every light starts disabled.
func DefaultSet() Set {
	var set Set
	set[Spot] = Light{
		Position:    g.V3(10, 10, 10),
		Direction:   g.V3(-1, -1, -1),
		Color:       g.V3(1, 1, 1),
		FieldOfView: 30.0 / 180.0 * math.Pi,
	}
	set[Point] = Light{
		Position: g.V3(3, 0, -3),
		Color:    g.V3(1, 1, 1),
	}
	set[Distant] = Light{
		Direction: g.V3(1, 0.5, 0.2),
		Color:     g.V3(1, 1, 1),
	}
	set[Ambient] = Light{
		Color: g.V3(1, 0.4, 0.1),
	}
	return set
}

// PointSet is the single point light scene with the point light on.
func PointSet() Set {
	var set Set
	set[Point] = DefaultSet()[Point]
	set[Point].Enabled = true
	return set
}

// Material holds the surface reflectance constants.
type Material struct {
	Diffuse   m.Vec4 // DP
	Specular  m.Vec4 // SP
	Shininess float32
}

var DefaultMaterial = Material{
	Diffuse:   m.Vec4{0.2, 0.5, 0.4, 1.0},
	Specular:  m.Vec4{0.5, 0.6, 0.9, 1.0},
	Shininess: 100,
}
