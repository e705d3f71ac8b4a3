// pointlight renders a spinning mesh lit by a single point light.
package main

import (
	"flag"
	"log"

	"github.com/adinfinit/lightlab/app"
	"github.com/adinfinit/lightlab/host"
)

var (
	windowWidth  = flag.Int("width", 640, "window width")
	windowHeight = flag.Int("height", 480, "window height")

	meshPath     = flag.String("mesh", app.DefaultMesh, "mesh file (.obj, .gltf, .glb)")
	vertexPath   = flag.String("vs", "", "vertex shader file")
	fragmentPath = flag.String("fs", "", "fragment shader file")
)

func main() {
	flag.Parse()

	lit := &app.PointLit{Config: app.Config{
		MeshPath:     *meshPath,
		VertexPath:   *vertexPath,
		FragmentPath: *fragmentPath,
	}}

	err := host.Run(host.Config{
		Title:  "Point light",
		Width:  *windowWidth,
		Height: *windowHeight,
	}, lit)
	if err != nil {
		log.Fatalln(err)
	}
}
