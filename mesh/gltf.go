package mesh

import (
	"fmt"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// loadGLTF reads the triangle primitives of the first mesh in the document.
func loadGLTF(path string) (Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Mesh{}, fmt.Errorf("open gltf: %w", err)
	}
	if len(doc.Meshes) == 0 {
		return Mesh{}, ErrNoGeometry
	}

	mesh := Mesh{}
	for i, prim := range doc.Meshes[0].Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}
		if err := appendPrimitive(doc, prim, &mesh); err != nil {
			return Mesh{}, fmt.Errorf("primitive %d: %w", i, err)
		}
	}
	return mesh, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	}

	var colors []m.Vec3
	if idx, ok := prim.Attributes[gltf.COLOR_0]; ok {
		colors, err = readColors(doc, doc.Accessors[idx])
		if err != nil {
			return fmt.Errorf("read colors: %w", err)
		}
	}

	vertex := func(i uint32) (Vertex, error) {
		if int(i) >= len(positions) {
			return Vertex{}, fmt.Errorf("index %d out of range [0,%d)", i, len(positions))
		}
		v := Vertex{
			Position: m.Vec3(positions[i]),
			Color:    DefaultColor,
		}
		if int(i) < len(normals) {
			v.Normal = m.Vec3(normals[i])
		}
		if int(i) < len(colors) {
			v.Color = colors[i]
		}
		return v, nil
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		var tri [3]Vertex
		for k := range tri {
			v, err := vertex(indices[i+k])
			if err != nil {
				return err
			}
			tri[k] = v
		}
		mesh.Triangle(tri[0], tri[1], tri[2])
	}
	return nil
}

// readColors returns COLOR_0 as linear rgb. Float data is used as stored,
// normalized integers are scaled to [0,1].
func readColors(doc *gltf.Document, acr *gltf.Accessor) ([]m.Vec3, error) {
	data, err := modeler.ReadAccessor(doc, acr, nil)
	if err != nil {
		return nil, err
	}

	switch data := data.(type) {
	case [][3]float32:
		colors := make([]m.Vec3, len(data))
		for i, c := range data {
			colors[i] = m.Vec3{c[0], c[1], c[2]}
		}
		return colors, nil
	case [][4]float32:
		colors := make([]m.Vec3, len(data))
		for i, c := range data {
			colors[i] = m.Vec3{c[0], c[1], c[2]}
		}
		return colors, nil
	case [][3]uint8:
		colors := make([]m.Vec3, len(data))
		for i, c := range data {
			colors[i] = unorm(c[0], c[1], c[2], 255)
		}
		return colors, nil
	case [][4]uint8:
		colors := make([]m.Vec3, len(data))
		for i, c := range data {
			colors[i] = unorm(c[0], c[1], c[2], 255)
		}
		return colors, nil
	case [][3]uint16:
		colors := make([]m.Vec3, len(data))
		for i, c := range data {
			colors[i] = unorm(c[0], c[1], c[2], 65535)
		}
		return colors, nil
	case [][4]uint16:
		colors := make([]m.Vec3, len(data))
		for i, c := range data {
			colors[i] = unorm(c[0], c[1], c[2], 65535)
		}
		return colors, nil
	}
	return nil, fmt.Errorf("unsupported color accessor %T", data)
}

func unorm[T uint8 | uint16](r, g, b T, scale float32) m.Vec3 {
	return m.Vec3{float32(r) / scale, float32(g) / scale, float32(b) / scale}
}
