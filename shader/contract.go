package shader

import (
	"github.com/adinfinit/lightlab/light"
)

// Scope tells which namespace a binding is looked up in.
type Scope uint8

const (
	Attribute Scope = iota
	Uniform
)

func (scope Scope) String() string {
	if scope == Attribute {
		return "attribute"
	}
	return "uniform"
}

// Semantic is what a binding carries.
type Semantic uint8

const (
	VertexPosition Semantic = iota
	VertexColor
	VertexNormal

	ModelViewProjection
	ModelView
	Projection

	Diffuse
	Specular
	Shininess

	LightField
)

// Binding pairs a program input name with its role.
type Binding struct {
	Name     string
	Scope    Scope
	Semantic Semantic

	// Kind and Field are set for LightField bindings.
	Kind  light.Kind
	Field light.Field
}

// Contract is the table of names a program must declare.
type Contract []Binding

// MeshContract is the unlit program: position, color and one combined matrix.
func MeshContract() Contract {
	return Contract{
		{Name: "v_position", Scope: Attribute, Semantic: VertexPosition},
		{Name: "v_color", Scope: Attribute, Semantic: VertexColor},
		{Name: "mvpMatrix", Scope: Uniform, Semantic: ModelViewProjection},
	}
}

// LitContract is a Phong program reading the given fields of each light.
func LitContract(fields map[light.Kind]light.Field) Contract {
	contract := Contract{
		{Name: "v_position", Scope: Attribute, Semantic: VertexPosition},
		{Name: "v_color", Scope: Attribute, Semantic: VertexColor},
		{Name: "v_norm", Scope: Attribute, Semantic: VertexNormal},
		{Name: "ModelView", Scope: Uniform, Semantic: ModelView},
		{Name: "Projection", Scope: Uniform, Semantic: Projection},
		{Name: "DP", Scope: Uniform, Semantic: Diffuse},
		{Name: "SP", Scope: Uniform, Semantic: Specular},
		{Name: "shininess", Scope: Uniform, Semantic: Shininess},
	}

	for _, kind := range light.Kinds {
		mask, ok := fields[kind]
		if !ok {
			continue
		}
		for _, field := range light.Fields {
			if !mask.Has(field) {
				continue
			}
			contract = append(contract, Binding{
				Name:     kind.Uniform() + "." + field.Name(),
				Scope:    Uniform,
				Semantic: LightField,
				Kind:     kind,
				Field:    field,
			})
		}
	}
	return contract
}

// PointContract has a single always-on point light.
func PointContract() Contract {
	return LitContract(map[light.Kind]light.Field{
		light.Point: light.Color | light.Position,
	})
}

// FullContract has all four lights with their enable flags.
func FullContract() Contract {
	fields := map[light.Kind]light.Field{}
	for _, kind := range light.Kinds {
		fields[kind] = kind.Fields()
	}
	return LitContract(fields)
}
