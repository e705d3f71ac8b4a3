package app

import (
	"math"
	"time"

	m "github.com/go-gl/mathgl/mgl32"
)

// Spin turns the model about the vertical axis at a constant rate.
type Spin struct {
	Rate    float64 // degrees per second
	Elapsed time.Duration
	Orient  m.Mat4
}

// NewSpin spins at 90 degrees per second. The orientation stands the model
// upright before spinning.
func NewSpin() Spin {
	return Spin{
		Rate:   90,
		Orient: m.HomogRotate3DX(m.DegToRad(100)),
	}
}

func (spin *Spin) Advance(dt time.Duration) {
	spin.Elapsed += dt
}

// Angle is the total rotation in degrees. It depends only on the elapsed
// time, not on how it was stepped.
func (spin *Spin) Angle() float64 {
	return spin.Rate * spin.Elapsed.Seconds()
}

func (spin *Spin) Model() m.Mat4 {
	rotate := m.HomogRotate3DY(float32(math.Mod(spin.Angle(), 360) * math.Pi / 180))
	return rotate.Mul4(spin.Orient)
}
