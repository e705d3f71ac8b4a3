// Package shader builds shader programs and feeds them their uniforms.
package shader

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
)

// Source is the text of a vertex and fragment stage pair.
type Source struct {
	Vertex   string
	Fragment string
}

//go:embed glsl
var glsl embed.FS

// embedded maps a program name to its stage files under glsl/.
var embedded = map[string][2]string{
	"point":    {"lit.vert", "point.frag"},
	"lighting": {"lit.vert", "lighting.frag"},
}

// Embedded returns one of the built-in lit programs: "point" or "lighting".
func Embedded(name string) (Source, error) {
	files, ok := embedded[name]
	if !ok {
		return Source{}, fmt.Errorf("unknown embedded shader %q", name)
	}
	vertex, err := glsl.ReadFile(path.Join("glsl", files[0]))
	if err != nil {
		return Source{}, err
	}
	fragment, err := glsl.ReadFile(path.Join("glsl", files[1]))
	if err != nil {
		return Source{}, err
	}
	return Source{Vertex: string(vertex), Fragment: string(fragment)}, nil
}

var ErrEmptySource = errors.New("shader file is empty")

// Load reads a stage pair from disk.
func Load(vertexPath, fragmentPath string) (Source, error) {
	vertex, err := readSource(vertexPath)
	if err != nil {
		return Source{}, err
	}
	fragment, err := readSource(fragmentPath)
	if err != nil {
		return Source{}, err
	}
	return Source{Vertex: vertex, Fragment: fragment}, nil
}

func readSource(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read shader: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("read shader %q: %w", name, ErrEmptySource)
	}
	return string(data), nil
}

// MeshSource is the unlit program: vertex colors under one combined transform.
var MeshSource = Source{
	Vertex: `
#version 330 core

in vec3 v_position;
in vec3 v_color;

uniform mat4 mvpMatrix;

out vec3 color;

void main(void) {
	gl_Position = mvpMatrix * vec4(v_position, 1.0);
	color = v_color;
}
`,
	Fragment: `
#version 330 core

in vec3 color;
out vec4 outputColor;

void main(void) {
	outputColor = vec4(color, 1.0);
}
`,
}
