// Package mesh imports model files into a flat triangle list ready for upload.
package mesh

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	m "github.com/go-gl/mathgl/mgl32"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported mesh format")
	ErrNoGeometry        = errors.New("no triangle geometry")
)

// DefaultColor is assigned to vertices when the file carries no vertex colors.
var DefaultColor = m.Vec3{0, 1, 1}

// Vertex is the interleaved layout uploaded to the vertex buffer.
type Vertex struct {
	Position m.Vec3
	Normal   m.Vec3
	Color    m.Vec3
}

const VertexBytes = int32(unsafe.Sizeof(Vertex{}))

var (
	PositionOffset = unsafe.Offsetof(Vertex{}.Position)
	NormalOffset   = unsafe.Offsetof(Vertex{}.Normal)
	ColorOffset    = unsafe.Offsetof(Vertex{}.Color)
)

// Mesh is a non-indexed triangle list; every three vertices form a triangle.
type Mesh struct {
	Name     string
	Vertices []Vertex
}

func (mesh *Mesh) Count() int { return len(mesh.Vertices) }

// Triangle appends a face. Missing normals are marked with a zero vector and
// filled in by GenerateNormals.
func (mesh *Mesh) Triangle(a, b, c Vertex) {
	mesh.Vertices = append(mesh.Vertices, a, b, c)
}

// GenerateNormals assigns flat face normals to every triangle that has a
// vertex without a normal.
func (mesh *Mesh) GenerateNormals() {
	for i := 0; i+2 < len(mesh.Vertices); i += 3 {
		tri := mesh.Vertices[i : i+3]
		if !missingNormal(tri) {
			continue
		}
		n := faceNormal(tri[0].Position, tri[1].Position, tri[2].Position)
		for k := range tri {
			tri[k].Normal = n
		}
	}
}

func missingNormal(tri []Vertex) bool {
	for _, v := range tri {
		if v.Normal.Len() < 1e-6 {
			return true
		}
	}
	return false
}

func faceNormal(a, b, c m.Vec3) m.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-12 {
		return m.Vec3{}
	}
	return n.Normalize()
}

// Loader imports model files.
type Loader struct {
	GenerateNormals bool
}

// NewLoader returns a loader that fills in missing normals.
func NewLoader() *Loader {
	return &Loader{GenerateNormals: true}
}

// Load imports path with the default loader.
func Load(path string) (Mesh, error) {
	return NewLoader().Load(path)
}

// Load imports a .gltf, .glb or .obj file, or generates one of Shapes when
// path names it.
func (loader *Loader) Load(path string) (Mesh, error) {
	var mesh Mesh
	var err error

	shape, procedural := Shapes[path]
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case procedural:
		mesh = shape()
	case ext == ".gltf" || ext == ".glb":
		mesh, err = loadGLTF(path)
	case ext == ".obj":
		mesh, err = loadOBJ(path)
	default:
		return Mesh{}, fmt.Errorf("load mesh %q: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return Mesh{}, fmt.Errorf("load mesh %q: %w", path, err)
	}
	if len(mesh.Vertices) == 0 {
		return Mesh{}, fmt.Errorf("load mesh %q: %w", path, ErrNoGeometry)
	}

	if loader.GenerateNormals {
		mesh.GenerateNormals()
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}
