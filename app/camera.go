package app

import (
	m "github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed viewer; only the projection follows the window size.
type Camera struct {
	Eye, LookAt, Up m.Vec3

	FOV       float32 // vertical, degrees
	Near, Far float32
	Aspect    float32

	Projection m.Mat4
	View       m.Mat4
}

func NewCamera() *Camera {
	camera := &Camera{
		Eye:    m.Vec3{0, 8, -16},
		LookAt: m.Vec3{0, 0, 0},
		Up:     m.Vec3{0, 1, 0},
		FOV:    45,
		Near:   0.01,
		Far:    100,
	}
	camera.View = m.LookAtV(camera.Eye, camera.LookAt, camera.Up)
	return camera
}

// UpdateScreenSize recomputes the projection for a width x height surface.
// An empty surface, as sent for a minimized window, keeps the previous
// projection.
func (camera *Camera) UpdateScreenSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	camera.Aspect = float32(width) / float32(height)
	camera.Projection = m.Perspective(m.DegToRad(camera.FOV), camera.Aspect, camera.Near, camera.Far)
}
