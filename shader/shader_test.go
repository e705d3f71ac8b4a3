package shader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adinfinit/g"
	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfinit/lightlab/gpu"
	"github.com/adinfinit/lightlab/gpu/gputest"
	"github.com/adinfinit/lightlab/light"
)

func names(contract Contract) []string {
	var list []string
	for _, binding := range contract {
		list = append(list, binding.Name)
	}
	return list
}

func TestFullContractNames(t *testing.T) {
	assert.Equal(t, []string{
		"v_position", "v_color", "v_norm",
		"ModelView", "Projection", "DP", "SP", "shininess",
		"spotLight.color", "spotLight.position", "spotLight.direction", "spotLight.fov", "spotLight.on",
		"pointLight.color", "pointLight.position", "pointLight.on",
		"distantLight.color", "distantLight.direction", "distantLight.on",
		"ambientLight.color", "ambientLight.on",
	}, names(FullContract()))
}

func TestPointContractNames(t *testing.T) {
	assert.Equal(t, []string{
		"v_position", "v_color", "v_norm",
		"ModelView", "Projection", "DP", "SP", "shininess",
		"pointLight.color", "pointLight.position",
	}, names(PointContract()))
}

func TestEmbeddedProgramsSatisfyContracts(t *testing.T) {
	point, err := Embedded("point")
	require.NoError(t, err)
	lighting, err := Embedded("lighting")
	require.NoError(t, err)

	for name, tc := range map[string]struct {
		source   Source
		contract Contract
	}{
		"mesh":     {MeshSource, MeshContract()},
		"point":    {point, PointContract()},
		"lighting": {lighting, FullContract()},
	} {
		t.Run(name, func(t *testing.T) {
			rec := gputest.NewRecorder()
			program, err := Build(rec, tc.source, tc.contract)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, program.Attrib(VertexPosition), int32(0))
			assert.GreaterOrEqual(t, program.Attrib(VertexColor), int32(0))
		})
	}

	_, err = Embedded("phong")
	assert.Error(t, err)
}

func TestBuildReportsAllMissingNames(t *testing.T) {
	rec := gputest.NewRecorder()
	_, err := Build(rec, MeshSource, PointContract())

	var missing *MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{
		"v_norm", "ModelView", "Projection", "DP", "SP", "shininess",
		"pointLight.color", "pointLight.position",
	}, missing.Names)
	assert.Contains(t, err.Error(), "unresolved shader locations: v_norm, ModelView")
	assert.Equal(t, []string{"program"}, rec.Deleted)
}

func TestBuildCompileFailure(t *testing.T) {
	rec := gputest.NewRecorder()
	rec.CompileErr = &gpu.CompileError{Stage: gpu.FragmentStage, Log: "0:1: syntax error"}

	_, err := Build(rec, MeshSource, MeshContract())
	var compile *gpu.CompileError
	require.True(t, errors.As(err, &compile))
	assert.Equal(t, "compile fragment shader: 0:1: syntax error", err.Error())
}

func buildLighting(t *testing.T, rec *gputest.Recorder) *Program {
	t.Helper()
	source, err := Embedded("lighting")
	require.NoError(t, err)
	program, err := Build(rec, source, FullContract())
	require.NoError(t, err)
	rec.UseProgram(program.ID)
	return program
}

func value(t *testing.T, rec *gputest.Recorder, program *Program, name string) any {
	t.Helper()
	v, ok := rec.Value(program.ID, name)
	require.True(t, ok, "%s was not uploaded", name)
	return v
}

func TestUploadMaterialToDistinctLocations(t *testing.T) {
	rec := gputest.NewRecorder()
	program := buildLighting(t, rec)

	set := light.DefaultSet()
	program.Upload(rec, &Frame{
		Model: m.Ident4(), View: m.Ident4(), Projection: m.Ident4(),
		Material: light.DefaultMaterial,
		Lights:   &set,
	})

	dp, _ := program.Lookup("DP")
	sp, _ := program.Lookup("SP")
	assert.NotEqual(t, dp, sp)
	assert.Equal(t, light.DefaultMaterial.Diffuse, value(t, rec, program, "DP"))
	assert.Equal(t, light.DefaultMaterial.Specular, value(t, rec, program, "SP"))
	assert.Equal(t, float32(100), value(t, rec, program, "shininess"))
}

func TestUploadLights(t *testing.T) {
	rec := gputest.NewRecorder()
	program := buildLighting(t, rec)

	set := light.DefaultSet()
	set.Toggle(light.Spot)
	view := m.Translate3D(0, 0, -10)
	program.Upload(rec, &Frame{
		Model: m.Ident4(), View: view, Projection: m.Ident4(),
		Material: light.DefaultMaterial,
		Lights:   &set,
	})

	assert.Equal(t, int32(1), value(t, rec, program, "spotLight.on"))
	assert.Equal(t, int32(0), value(t, rec, program, "pointLight.on"))
	assert.Equal(t, m.Vec3{10, 10, 0}, value(t, rec, program, "spotLight.position"))
	assert.Equal(t, m.Vec3{-1, -1, -1}, value(t, rec, program, "spotLight.direction"))
	assert.Equal(t, m.Vec3{3, 0, -13}, value(t, rec, program, "pointLight.position"))
	assert.Equal(t, m.Vec3{1, 0.4, 0.1}, value(t, rec, program, "ambientLight.color"))
	assert.InDelta(t, set[light.Spot].FieldOfView, value(t, rec, program, "spotLight.fov"), 1e-7)
	assert.Equal(t, view, value(t, rec, program, "ModelView"))

	// fields a kind does not use stay untouched
	for _, name := range []string{
		"ambientLight.position", "ambientLight.direction", "ambientLight.fov",
		"pointLight.direction", "pointLight.fov",
		"distantLight.position", "distantLight.fov",
	} {
		_, ok := rec.Value(program.ID, name)
		assert.False(t, ok, name)
	}
}

func TestUploadModelViewProjection(t *testing.T) {
	rec := gputest.NewRecorder()
	program, err := Build(rec, MeshSource, MeshContract())
	require.NoError(t, err)
	rec.UseProgram(program.ID)

	frame := &Frame{
		Model:      m.HomogRotate3DY(1),
		View:       m.Translate3D(0, 0, -5),
		Projection: m.Perspective(m.DegToRad(45), 4.0/3.0, 0.01, 100),
	}
	program.Upload(rec, frame)

	v, ok := rec.Value(program.ID, "mvpMatrix")
	require.True(t, ok)
	assert.True(t, frame.ModelViewProjection().ApproxEqual(v.(m.Mat4)))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	vs := filepath.Join(dir, "VertexShader.txt")
	fs := filepath.Join(dir, "FragShader.txt")
	require.NoError(t, os.WriteFile(vs, []byte("void main(void) {}"), 0o644))
	require.NoError(t, os.WriteFile(fs, nil, 0o644))

	_, err := Load(vs, fs)
	assert.ErrorIs(t, err, ErrEmptySource)

	_, err = Load(vs, filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fs, []byte("void main(void) {}"), 0o644))
	source, err := Load(vs, fs)
	require.NoError(t, err)
	assert.Equal(t, "void main(void) {}", source.Fragment)
}

func TestHomogeneous(t *testing.T) {
	assert.Equal(t, m.Vec4{1, 2, 3, 0}, homogeneous(g.V3(1, 2, 3), 0))
}
