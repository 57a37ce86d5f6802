package scene

import (
	"testing"

	"simple-scene/libscn"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectsDrawOrder(t *testing.T) {
	props := DefaultProperties()
	objects := props.Objects()
	require.Len(t, objects, 5+1+4+8)

	for _, o := range objects[:5] {
		assert.Equal(t, libscn.ShapePlane, o.Shape, o.Name)
	}
	assert.Equal(t, libscn.ShapeTable, objects[5].Shape)
	for _, o := range objects[6:10] {
		assert.Equal(t, libscn.ShapeChair, o.Shape, o.Name)
	}
	assert.Equal(t, props.Ornaments, objects[10:])
}

func TestPlanesFaceIntoRoom(t *testing.T) {
	props := DefaultProperties()
	center := mgl32.Vec3{0, float32(libscn.FloorHeight) + props.WallHeight/2, 0}

	for _, plane := range props.Planes() {
		model := plane.Model()
		normal := model.Mat3().Inv().Transpose().Mul3x1(mgl32.Vec3{0, 1, 0}).Normalize()
		toCenter := center.Sub(plane.Position)
		assert.Greater(t, normal.Dot(toCenter), float32(0), plane.Name)
	}
}

func TestChairsFaceTable(t *testing.T) {
	for _, chair := range DefaultProperties().Chairs() {
		// The backrest sits on local -z.
		back := mgl32.TransformNormal(mgl32.Vec3{0, 0, -1}, chair.Model())
		assert.Greater(t, back.Dot(chair.Position), float32(0.99), chair.Name)
	}
}

func TestOrnamentTable(t *testing.T) {
	props := DefaultProperties()
	require.Len(t, props.Ornaments, 8)

	teapot := props.Ornaments[0]
	assert.Equal(t, libscn.ShapeTeapot, teapot.Shape)
	assert.Equal(t, Emerald, teapot.Material)
	assert.Equal(t, Emerald.Diffuse, teapot.Color)
	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, props.Ornaments[4].Scale)
}

func TestWithOrnamentMaterial(t *testing.T) {
	props := DefaultProperties()

	changed, ok := props.WithOrnamentMaterial("sphere", Copper)
	require.True(t, ok)
	assert.Equal(t, Copper, changed.Ornaments[1].Material)
	assert.Equal(t, Copper.Diffuse, changed.Ornaments[1].Color)
	assert.Equal(t, Jade, props.Ornaments[1].Material)

	same, ok := props.WithOrnamentMaterial("vase", Copper)
	assert.False(t, ok)
	assert.Same(t, props, same)
}

func TestDefaultLightTables(t *testing.T) {
	props := DefaultProperties()
	assert.Equal(t, mgl32.Vec3{0, 1.5, 2.85}, props.PointLights[0].Position)
	assert.Equal(t, mgl32.Vec3{0, 1.5, -2.85}, props.PointLights[1].Position)
	assert.Equal(t, float32(22.5), props.SpotLight.CutOff)
	assert.Equal(t, float32(25), props.SpotLight.OuterCutOff)
	for _, d := range props.DiscoLights {
		assert.Equal(t, mgl32.Vec3{0, -1, 0}, d.Direction)
		assert.Equal(t, float32(20.5), d.CutOff)
		assert.Equal(t, float32(23), d.OuterCutOff)
	}
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, props.DiscoLights[3].Material.Diffuse)
}
