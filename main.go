// lightlab renders a spinning mesh lit by spot, point, distant and ambient
// lights. Keys 1 to 4 toggle the lights and escape quits.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/adinfinit/lightlab/app"
	"github.com/adinfinit/lightlab/host"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "profile")

	windowWidth  = flag.Int("width", 640, "window width")
	windowHeight = flag.Int("height", 480, "window height")

	meshPath     = flag.String("mesh", app.DefaultMesh, "mesh file (.obj, .gltf, .glb)")
	vertexPath   = flag.String("vs", "", "vertex shader file")
	fragmentPath = flag.String("fs", "", "fragment shader file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("unable to create cpu-profile %q: %v", *cpuprofile, err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("unable to start cpu-profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	lit := &app.Lit{Config: app.Config{
		MeshPath:     *meshPath,
		VertexPath:   *vertexPath,
		FragmentPath: *fragmentPath,
	}}

	err := host.Run(host.Config{
		Title:  "Lighting",
		Width:  *windowWidth,
		Height: *windowHeight,
	}, lit)
	if err != nil {
		pprof.StopCPUProfile()
		log.Fatalln(err)
	}
}
