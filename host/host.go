// Package host owns the window and the graphics context and feeds window
// events to an app.Driver.
package host

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/loov/hrtime"

	"github.com/adinfinit/lightlab/app"
	"github.com/adinfinit/lightlab/gpu"
)

func init() { runtime.LockOSThread() }

type Config struct {
	Title         string
	Width, Height int
}

var keys = map[glfw.Key]app.Key{
	glfw.KeyEscape: app.KeyEscape,
	glfw.Key1:      app.Key1,
	glfw.Key2:      app.Key2,
	glfw.Key3:      app.Key3,
	glfw.Key4:      app.Key4,
	glfw.KeyKP1:    app.Key1,
	glfw.KeyKP2:    app.Key2,
	glfw.KeyKP3:    app.Key3,
	glfw.KeyKP4:    app.Key4,
}

// TranslateKey maps a glfw key to the application key space.
func TranslateKey(key glfw.Key) app.Key {
	if k, ok := keys[key]; ok {
		return k
	}
	return app.KeyUnknown
}

// Run opens a window, initializes application against it and drives it
// until the window closes.
func Run(config Config, application app.Application) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 2)

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	device, err := gpu.NewGL()
	if err != nil {
		return err
	}
	log.Println("OpenGL version", device.Version())

	if err := application.Init(device); err != nil {
		return err
	}
	defer application.Close()

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		application.OnResize(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if application.OnKey(TranslateKey(key)) == app.Quit {
			w.SetShouldClose(true)
		}
	})

	application.OnResize(window.GetFramebufferSize())

	last := hrtime.Now()
	for !window.ShouldClose() {
		now := hrtime.Now()
		application.OnTick(now - last)
		last = now

		renderStart := hrtime.Now()
		application.OnRender()
		renderStop := hrtime.Now()

		window.SetTitle(fmt.Sprintf("%s\tRender:\t%v", config.Title, renderStop-renderStart))

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}
