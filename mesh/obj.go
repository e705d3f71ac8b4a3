package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	m "github.com/go-gl/mathgl/mgl32"
)

func loadOBJ(path string) (Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return Mesh{}, err
	}
	defer file.Close()

	return ParseOBJ(file)
}

type objCorner struct {
	position int
	normal   int // -1 when absent
}

// ParseOBJ reads Wavefront OBJ geometry. Only v, vn and f statements are
// interpreted; "v x y z r g b" carries a vertex color. Polygons are split
// into a triangle fan.
func ParseOBJ(r io.Reader) (Mesh, error) {
	var (
		positions []m.Vec3
		colors    []m.Vec3
		normals   []m.Vec3
		mesh      Mesh
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			values, err := parseFloats(fields[1:])
			if err != nil || (len(values) != 3 && len(values) != 4 && len(values) != 6 && len(values) != 7) {
				return Mesh{}, fmt.Errorf("line %d: invalid vertex %q", line, scanner.Text())
			}
			positions = append(positions, m.Vec3{values[0], values[1], values[2]})
			if len(values) >= 6 {
				rgb := values[len(values)-3:]
				colors = append(colors, m.Vec3{rgb[0], rgb[1], rgb[2]})
			} else {
				colors = append(colors, DefaultColor)
			}
		case "vn":
			values, err := parseFloats(fields[1:])
			if err != nil || len(values) != 3 {
				return Mesh{}, fmt.Errorf("line %d: invalid normal %q", line, scanner.Text())
			}
			normals = append(normals, m.Vec3{values[0], values[1], values[2]})
		case "f":
			if len(fields) < 4 {
				return Mesh{}, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, field := range fields[1:] {
				corner, err := parseCorner(field, len(positions), len(normals))
				if err != nil {
					return Mesh{}, fmt.Errorf("line %d: %w", line, err)
				}
				corners = append(corners, corner)
			}

			vertex := func(c objCorner) Vertex {
				v := Vertex{
					Position: positions[c.position],
					Color:    colors[c.position],
				}
				if c.normal >= 0 {
					v.Normal = normals[c.normal]
				}
				return v
			}
			for i := 1; i+1 < len(corners); i++ {
				mesh.Triangle(vertex(corners[0]), vertex(corners[i]), vertex(corners[i+1]))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Mesh{}, err
	}
	return mesh, nil
}

func parseFloats(fields []string) ([]float32, error) {
	values := make([]float32, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return nil, err
		}
		values[i] = float32(v)
	}
	return values, nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn" into zero-based indices.
func parseCorner(field string, positionCount, normalCount int) (objCorner, error) {
	parts := strings.Split(field, "/")
	if len(parts) > 3 {
		return objCorner{}, fmt.Errorf("invalid face vertex %q", field)
	}

	position, err := resolveIndex(parts[0], positionCount)
	if err != nil {
		return objCorner{}, fmt.Errorf("face vertex %q: %w", field, err)
	}

	corner := objCorner{position: position, normal: -1}
	if len(parts) == 3 && parts[2] != "" {
		corner.normal, err = resolveIndex(parts[2], normalCount)
		if err != nil {
			return objCorner{}, fmt.Errorf("face normal %q: %w", field, err)
		}
	}
	return corner, nil
}

// resolveIndex converts a one-based or negative relative OBJ index.
func resolveIndex(s string, count int) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case index > 0:
		index--
	case index < 0:
		index += count
	default:
		return 0, fmt.Errorf("index 0 is invalid")
	}
	if index < 0 || index >= count {
		return 0, fmt.Errorf("index out of range [1,%d]", count)
	}
	return index, nil
}
