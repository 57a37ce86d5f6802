package scene

import (
	"testing"

	"simple-scene/libutil"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMaterial = NewMaterial(mgl32.Vec3{0.3, 0.3, 0.3}, mgl32.Vec3{0.8, 0.8, 0.8}, mgl32.Vec3{1, 1, 1})

func TestNewMaterialDefaultsShininess(t *testing.T) {
	assert.Zero(t, testMaterial.Shininess)
	assert.Equal(t, float32(32), NewMaterial(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, 32).Shininess)
	assert.True(t, testMaterial.Equal(NewMaterial(mgl32.Vec3{0.3, 0.3, 0.3}, mgl32.Vec3{0.8, 0.8, 0.8}, mgl32.Vec3{1, 1, 1})))
	assert.False(t, testMaterial.Equal(Material{}))
}

func TestMaterialTracking(t *testing.T) {
	color := mgl32.Vec3{0.1, 0.2, 0.3}
	tracked := Emerald.Tracking(color)
	assert.Equal(t, color, tracked.Ambient)
	assert.Equal(t, color, tracked.Diffuse)
	assert.Equal(t, color, tracked.Specular)
	assert.Equal(t, Emerald.Shininess, tracked.Shininess)
}

func TestPointLightOnOff(t *testing.T) {
	l := NewPointLight(0, mgl32.Vec3{}, testMaterial, defaultAttenuation)
	assert.Equal(t, LightOn, l.State())
	assert.Equal(t, testMaterial, l.Active())

	l.Off()
	assert.Equal(t, LightOff, l.State())
	assert.Equal(t, Material{}, l.Active())

	l.Off()
	assert.Equal(t, Material{}, l.Active())

	l.On()
	assert.Equal(t, testMaterial, l.Active())
}

func TestToggleTwiceRestores(t *testing.T) {
	l := NewPointLight(0, mgl32.Vec3{}, testMaterial, defaultAttenuation)

	l.Toggle()
	assert.Equal(t, Material{}, l.Active())
	l.Toggle()
	assert.Equal(t, testMaterial, l.Active())

	l.Off()
	l.Toggle()
	l.Toggle()
	assert.Equal(t, Material{}, l.Active())
}

func TestLightStateString(t *testing.T) {
	assert.Equal(t, "on", LightOn.String())
	assert.Equal(t, "off", LightOff.String())
}

func TestPointLightRender(t *testing.T) {
	l := NewPointLight(1, mgl32.Vec3{0, 1.5, -2.85}, testMaterial, defaultAttenuation)
	rec := &recorder{}
	l.Render(rec)

	assert.Equal(t, []string{
		"pointLights[1].position",
		"pointLights[1].ambient",
		"pointLights[1].diffuse",
		"pointLights[1].specular",
		"pointLights[1].constant",
		"pointLights[1].linear",
		"pointLights[1].quadratic",
	}, rec.names())

	v, _ := rec.last("pointLights[1].diffuse")
	assert.Equal(t, testMaterial.Diffuse, v)
	v, _ = rec.last("pointLights[1].quadratic")
	assert.Equal(t, float32(0.032), v)

	l.Off()
	l.Render(rec)
	v, _ = rec.last("pointLights[1].specular")
	assert.Equal(t, mgl32.Vec3{}, v)
}

func TestSpotLightRender(t *testing.T) {
	l := NewSpotLight(0, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, -1, 0}, testMaterial, defaultAttenuation, 22.5, 25)
	rec := &recorder{}
	l.Render(rec)

	for _, name := range []string{"position", "ambient", "diffuse", "specular", "constant", "linear", "quadratic", "direction", "cutOff", "outerCutOff"} {
		_, ok := rec.last("spotLight." + name)
		assert.True(t, ok, "spotLight.%s not uploaded", name)
	}
	for _, name := range rec.names() {
		assert.NotContains(t, name, "pointLights")
	}

	v, _ := rec.last("spotLight.cutOff")
	assert.InDelta(t, math32.Cos(22.5*libutil.Deg2Rad), v, 1e-6)
	v, _ = rec.last("spotLight.outerCutOff")
	assert.InDelta(t, 0.906307787, v, 1e-6)
}

func TestSpotLightRenderAs(t *testing.T) {
	l := NewSpotLight(2, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, -1, 0}, testMaterial, defaultAttenuation, 20.5, 23)
	rec := &recorder{}
	l.RenderAs(rec, "discoLights[2]")

	require.Len(t, rec.calls, 10)
	for _, c := range rec.calls {
		assert.Contains(t, c.name, "discoLights[2].")
	}
}

func TestSetDirectionNormalizes(t *testing.T) {
	l := NewSpotLight(0, mgl32.Vec3{}, mgl32.Vec3{0, -4, 0}, testMaterial, defaultAttenuation, 10, 12)
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, l.Direction)

	for _, dir := range []mgl32.Vec3{{3, 4, 0}, {0.001, -0.002, 0.5}, {-7, -1, 9}} {
		l.SetDirection(dir)
		assert.InDelta(t, 1, l.Direction.Len(), 1e-6)
	}
}

func TestLightInterface(t *testing.T) {
	lights := []Light{
		NewPointLight(0, mgl32.Vec3{}, testMaterial, defaultAttenuation),
		NewSpotLight(0, mgl32.Vec3{}, mgl32.Vec3{0, -1, 0}, testMaterial, defaultAttenuation, 10, 12),
	}
	for _, l := range lights {
		l.Toggle()
		assert.Equal(t, LightOff, l.State())
	}

	rec := &recorder{}
	lights[1].Render(rec)
	_, ok := rec.last("spotLight.direction")
	assert.True(t, ok)
}
