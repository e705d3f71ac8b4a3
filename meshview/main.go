// meshview renders a spinning mesh in its vertex colors.
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

	meshPath = flag.String("mesh", app.DefaultMesh, "mesh file (.obj, .gltf, .glb)")
)

func main() {
	flag.Parse()

	viewer := &app.MeshViewer{Config: app.Config{MeshPath: *meshPath}}

	err := host.Run(host.Config{
		Title:  "Mesh",
		Width:  *windowWidth,
		Height: *windowHeight,
	}, viewer)
	if err != nil {
		log.Fatalln(err)
	}
}
