package app

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfinit/lightlab/gpu/gputest"
	"github.com/adinfinit/lightlab/light"
	"github.com/adinfinit/lightlab/mesh"
)

const quadOBJ = `o quad
v -1 -1 0 1 0 0
v 1 -1 0 0 1 0
v 1 1 0 0 0 1
v -1 1 0 1 1 1
vn 0 0 1
f 1//1 2//1 3//1 4//1
`

func writeQuad(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quadOBJ), 0o644))
	return path
}

func TestSpinAdvance(t *testing.T) {
	spin := NewSpin()
	for i := 0; i < 50; i++ {
		spin.Advance(20 * time.Millisecond)
	}
	assert.Equal(t, 90.0, spin.Angle())

	want := m.HomogRotate3DY(m.DegToRad(90)).Mul4(spin.Orient)
	assert.True(t, spin.Model().ApproxEqualThreshold(want, 1e-4))
}

func TestSpinIndependentOfStepping(t *testing.T) {
	coarse := NewSpin()
	coarse.Advance(time.Second)

	fine := NewSpin()
	for i := 0; i < 10; i++ {
		fine.Advance(100 * time.Millisecond)
	}

	uneven := NewSpin()
	for _, dt := range []time.Duration{7 * time.Millisecond, 333 * time.Millisecond, 660 * time.Millisecond} {
		uneven.Advance(dt)
	}

	assert.Equal(t, 90.0, coarse.Angle())
	assert.Equal(t, coarse.Angle(), fine.Angle())
	assert.Equal(t, coarse.Angle(), uneven.Angle())
}

func TestSpinZeroIsOrientation(t *testing.T) {
	spin := NewSpin()
	assert.True(t, spin.Model().ApproxEqual(spin.Orient))
}

func TestCameraResize(t *testing.T) {
	camera := NewCamera()
	camera.UpdateScreenSize(800, 400)
	assert.InDelta(t, 2.0, camera.Aspect, 1e-6)
	assert.Equal(t, float32(45), camera.FOV)
	assert.Equal(t, float32(0.01), camera.Near)
	assert.Equal(t, float32(100), camera.Far)

	want := m.Perspective(m.DegToRad(45), 2, 0.01, 100)
	assert.True(t, camera.Projection.ApproxEqual(want))
}

func TestCameraIgnoresEmptySurface(t *testing.T) {
	camera := NewCamera()
	camera.UpdateScreenSize(640, 480)
	projection := camera.Projection

	for _, size := range [][2]int{{0, 480}, {640, 0}, {0, 0}, {-1, 10}} {
		camera.UpdateScreenSize(size[0], size[1])
		assert.Equal(t, projection, camera.Projection, "size %v", size)
		assert.InDelta(t, 640.0/480.0, camera.Aspect, 1e-6)
	}
	for _, v := range camera.Projection {
		assert.False(t, math.IsInf(float64(v), 0) || math.IsNaN(float64(v)))
	}
}

func TestShaderPathsMustBePaired(t *testing.T) {
	for _, config := range []Config{
		{VertexPath: "lit.vert"},
		{FragmentPath: "lighting.frag"},
	} {
		_, err := config.shaderSource("lighting")
		assert.ErrorIs(t, err, ErrShaderPair)
	}

	device := gputest.NewRecorder()
	lit := &Lit{Config: Config{MeshPath: writeQuad(t), VertexPath: "lit.vert"}}
	assert.ErrorIs(t, lit.Init(device), ErrShaderPair)
	assert.Equal(t, Terminated, lit.Phase)

	source, err := (&Config{}).shaderSource("lighting")
	require.NoError(t, err)
	assert.NotEmpty(t, source.Fragment)
}

func TestLitInitAndFirstFrame(t *testing.T) {
	device := gputest.NewRecorder()
	lit := &Lit{Config: Config{MeshPath: writeQuad(t)}}

	require.NoError(t, lit.Init(device))
	assert.Equal(t, Ready, lit.Phase)
	assert.Equal(t, int32(6), lit.VertexCount)
	assert.Equal(t, light.DefaultSet(), lit.Lights)

	lit.OnResize(640, 480)
	assert.Equal(t, [2]int32{640, 480}, device.Size)

	device.Reset()
	lit.OnTick(500 * time.Millisecond)
	lit.OnRender()

	assert.Equal(t, Rendering, lit.Phase)
	assert.Equal(t, []int32{6}, device.Draws)
	assert.Equal(t, "clear", device.Ops()[0])
	assert.Equal(t, m.Vec4{0, 0, 0.2, 1}, device.Calls[0].Value)
	assert.Empty(t, device.Enabled, "attributes are disabled after the draw")

	enabled := 0
	for _, call := range device.Calls {
		if call.Op == "enable" {
			enabled++
			assert.Equal(t, int64(mesh.VertexBytes), call.Value.([3]int64)[1])
		}
	}
	assert.Equal(t, 3, enabled)

	lit.Close()
	assert.Equal(t, Terminated, lit.Phase)
	assert.Empty(t, device.Buffers)
}

func TestLitToggleKeys(t *testing.T) {
	lit := &Lit{}
	lit.Lights = light.DefaultSet()

	assert.Equal(t, Continue, lit.OnKey(Key1))
	assert.True(t, lit.Lights.Get(light.Spot).Enabled)
	assert.Equal(t, Continue, lit.OnKey(Key1))
	assert.Equal(t, light.DefaultSet(), lit.Lights)

	lit.OnKey(Key2)
	lit.OnKey(Key3)
	lit.OnKey(Key4)
	assert.False(t, lit.Lights.Get(light.Spot).Enabled)
	assert.True(t, lit.Lights.Get(light.Point).Enabled)
	assert.True(t, lit.Lights.Get(light.Distant).Enabled)
	assert.True(t, lit.Lights.Get(light.Ambient).Enabled)

	assert.Equal(t, Quit, lit.OnKey(KeyEscape))
	assert.Equal(t, Continue, lit.OnKey(KeyUnknown))
}

func TestOtherProgramsIgnoreLightKeys(t *testing.T) {
	point := &PointLit{}
	point.Lights = light.PointSet()
	point.OnKey(Key2)
	assert.Equal(t, light.PointSet(), point.Lights)
	assert.Equal(t, Quit, point.OnKey(KeyEscape))

	viewer := &MeshViewer{}
	assert.Equal(t, Continue, viewer.OnKey(Key1))
	assert.Equal(t, Quit, viewer.OnKey(KeyEscape))
}

func TestMeshViewerDrawsWithoutLights(t *testing.T) {
	device := gputest.NewRecorder()
	viewer := &MeshViewer{Config: Config{MeshPath: writeQuad(t)}}
	require.NoError(t, viewer.Init(device))

	viewer.OnResize(640, 480)
	device.Reset()
	viewer.OnRender()
	assert.Equal(t, []int32{6}, device.Draws)

	loc, ok := viewer.Program.Lookup("mvpMatrix")
	require.True(t, ok)
	value, ok := device.Value(viewer.Program.ID, "mvpMatrix")
	require.True(t, ok)
	assert.GreaterOrEqual(t, loc, int32(0))

	frame := viewer.Frame()
	assert.True(t, value.(m.Mat4).ApproxEqual(frame.ModelViewProjection()))
}

func TestPointLitInit(t *testing.T) {
	device := gputest.NewRecorder()
	point := &PointLit{Config: Config{MeshPath: writeQuad(t)}}
	require.NoError(t, point.Init(device))
	assert.True(t, point.Lights.Get(light.Point).Enabled)

	device.Reset()
	point.OnRender()
	_, ok := device.Value(point.Program.ID, "pointLight.position")
	assert.True(t, ok)
}

func TestInitMissingMesh(t *testing.T) {
	device := gputest.NewRecorder()
	lit := &Lit{Config: Config{MeshPath: filepath.Join(t.TempDir(), "missing.obj")}}

	err := lit.Init(device)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load mesh")
	assert.Equal(t, Terminated, lit.Phase)

	device.Reset()
	lit.OnRender()
	assert.Empty(t, device.Draws)
}

func TestInitShaderFailureReleasesBuffer(t *testing.T) {
	device := gputest.NewRecorder()
	device.CompileErr = assert.AnError
	lit := &Lit{Config: Config{MeshPath: writeQuad(t)}}

	err := lit.Init(device)
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, Terminated, lit.Phase)
	assert.Empty(t, device.Buffers)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "invalid", Phase(99).String())
}
