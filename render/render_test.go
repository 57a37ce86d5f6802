package render

import (
	"strings"
	"testing"

	"simple-scene/libscn"
	"simple-scene/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	name  string
	value any
}

// journal records uniform writes and draws in the order they happen.
type journal struct {
	events []event
}

func (j *journal) SetUniform(name string, value any) {
	j.events = append(j.events, event{name, value})
}

func (j *journal) Use() {
	j.events = append(j.events, event{name: "use"})
}

type mesh struct {
	j     *journal
	shape libscn.Shape
}

func (m *mesh) Draw() {
	m.j.events = append(m.j.events, event{name: "draw", value: m.shape})
}

func meshes(j *journal) map[libscn.Shape]*mesh {
	m := map[libscn.Shape]*mesh{}
	for _, s := range libscn.Shapes() {
		m[s] = &mesh{j, s}
	}
	return m
}

func newPass(t *testing.T, j *journal) (*Pass, *scene.Properties) {
	props := scene.DefaultProperties()
	objects, err := Build(props.Objects(), meshes(j))
	require.NoError(t, err)
	return &Pass{Program: j, Objects: objects}, props
}

func TestBuildMissingMesh(t *testing.T) {
	props := scene.DefaultProperties()
	_, err := Build(props.Objects(), map[libscn.Shape]*mesh{})
	assert.ErrorIs(t, err, libscn.ErrUnknownShape)
}

func TestPassDrawOrder(t *testing.T) {
	j := &journal{}
	pass, props := newPass(t, j)
	pass.Draw(Frame{})

	var drawn []libscn.Shape
	for _, e := range j.events {
		if e.name == "draw" {
			drawn = append(drawn, e.value.(libscn.Shape))
		}
	}

	var want []libscn.Shape
	for _, o := range props.Objects() {
		want = append(want, o.Shape)
	}
	assert.Equal(t, want, drawn)
	assert.Equal(t, []libscn.Shape{libscn.ShapePlane, libscn.ShapePlane, libscn.ShapePlane, libscn.ShapePlane, libscn.ShapePlane, libscn.ShapeTable}, drawn[:6])
	assert.Len(t, drawn, 5+1+4+8)
}

func TestPassFrameUniformsFirst(t *testing.T) {
	j := &journal{}
	pass, props := newPass(t, j)
	rig := scene.NewLightRig(props, 1)
	view := mgl32.LookAtV(mgl32.Vec3{0, 1, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	pass.Draw(Frame{View: view, Projection: mgl32.Ident4(), ViewPos: mgl32.Vec3{0, 1, 5}, Lights: rig})

	require.NotEmpty(t, j.events)
	assert.Equal(t, "use", j.events[0].name)
	assert.Equal(t, event{"view", view}, j.events[1])
	assert.Equal(t, event{"projection", mgl32.Ident4()}, j.events[2])
	assert.Equal(t, event{"viewPos", mgl32.Vec3{0, 1, 5}}, j.events[3])

	// every light is uploaded before the first object
	firstModel := -1
	for i, e := range j.events {
		if e.name == "model" {
			firstModel = i
			break
		}
	}
	require.Positive(t, firstModel)
	lights := 0
	for _, e := range j.events[:firstModel] {
		if strings.HasSuffix(e.name, ".position") {
			lights++
		}
	}
	assert.Equal(t, scene.NumPointLights+1+scene.NumDiscoLights, lights)
}

// Each draw must be preceded by exactly the uniforms of its own object.
func TestPassMaterialPrecedesDraw(t *testing.T) {
	for _, tracking := range []bool{false, true} {
		j := &journal{}
		pass, _ := newPass(t, j)
		pass.Draw(Frame{ColorTracking: tracking})

		obj := 0
		var pending map[string]any
		for _, e := range j.events {
			switch {
			case e.name == "model":
				pending = map[string]any{"model": e.value}
			case e.name == "draw":
				require.Less(t, obj, len(pass.Objects))
				o := pass.Objects[obj]
				mat := o.Material
				if tracking {
					mat = mat.Tracking(o.Color)
				}
				assert.Equal(t, o.Model(), pending["model"], o.Name)
				assert.Equal(t, mat.Ambient, pending["material.ambient"], o.Name)
				assert.Equal(t, mat.Diffuse, pending["material.diffuse"], o.Name)
				assert.Equal(t, mat.Specular, pending["material.specular"], o.Name)
				assert.Equal(t, mat.Shininess, pending["material.shininess"], o.Name)
				assert.Contains(t, pending, "normalMatrix")
				pending = nil
				obj++
			case pending != nil:
				pending[e.name] = e.value
			}
		}
		assert.Equal(t, len(pass.Objects), obj)
	}
}

func TestUploadObjectColorTracking(t *testing.T) {
	j := &journal{}
	obj := &Object{ObjectProps: scene.ObjectProps{
		Material: scene.Ruby,
		Color:    mgl32.Vec3{1, 0, 0},
	}}
	UploadObject(j, obj, true)

	got := map[string]any{}
	for _, e := range j.events {
		got[e.name] = e.value
	}
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, got["material.ambient"])
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, got["material.diffuse"])
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, got["material.specular"])
	assert.Equal(t, scene.Ruby.Shininess, got["material.shininess"])
}

func TestNormalMatrix(t *testing.T) {
	j := &journal{}
	props := []scene.ObjectProps{{
		Shape:    libscn.ShapePlane,
		Scale:    mgl32.Vec3{2, 1, 4},
		Rotation: mgl32.Vec3{90, 0, 0},
	}}
	objects, err := Build(props, meshes(j))
	require.NoError(t, err)

	n := objects[0].normalMatrix.Mul3x1(mgl32.Vec3{0, 1, 0}).Normalize()
	want := mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, props[0].Model()).Normalize()
	assert.InDelta(t, 1, n.Dot(want), 1e-5)
}
