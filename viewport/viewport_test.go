package viewport

import (
	"testing"

	"simple-scene/input"
	"simple-scene/input/inputtest"
	"simple-scene/libutil"
	"simple-scene/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewport() *ViewportState {
	return New("left", Rect{0, 0, 640, 720}, scene.DefaultProperties(), Options{
		CameraPosition: mgl32.Vec3{0, 1, 5},
		SwingSpeed:     scene.DefaultSwingSpeed,
	})
}

func TestNewDefaults(t *testing.T) {
	v := newTestViewport()
	assert.Equal(t, ShaderPhong, v.Shader)
	assert.True(t, v.CullFace)
	assert.True(t, v.DepthTest)
	assert.False(t, v.FlatShading)
	assert.False(t, v.ColorTracking)
	assert.False(t, v.Wireframe)

	want := mgl32.Vec3{0, -1, -5}.Normalize()
	assert.True(t, libutil.ApproxEqualVec3(want, v.Camera.Forward(), 1e-4))
}

func TestHandleKeyLights(t *testing.T) {
	v := newTestViewport()
	lights := v.Rig.Lights()

	keys := []input.Key{input.Key1, input.Key2, input.Key3, input.Key4, input.Key5, input.Key6, input.Key7}
	for i, key := range keys {
		require.True(t, v.HandleKey(key))
		for j, l := range lights {
			want := scene.LightOn
			if j <= i {
				want = scene.LightOff
			}
			assert.Equal(t, want, l.Light.State(), "after key %d light %v", key, l.Label)
		}
	}

	// toggling all disco lights turns them on again
	v.HandleKey(input.Key0)
	for _, l := range v.Rig.Disco {
		assert.True(t, l.IsOn())
	}
}

func TestHandleKeyToggles(t *testing.T) {
	tests := []struct {
		key  input.Key
		flag func(v *ViewportState) bool
	}{
		{input.KeyF1, func(v *ViewportState) bool { return v.FlatShading }},
		{input.KeyF2, func(v *ViewportState) bool { return v.ColorTracking }},
		{input.KeyF3, func(v *ViewportState) bool { return v.CullFace }},
		{input.KeyF4, func(v *ViewportState) bool { return v.DepthTest }},
		{input.KeyF6, func(v *ViewportState) bool { return v.Wireframe }},
	}

	for _, tt := range tests {
		v := newTestViewport()
		before := tt.flag(v)
		v.HandleKey(tt.key)
		assert.Equal(t, !before, tt.flag(v), "key %d", tt.key)
		v.HandleKey(tt.key)
		assert.Equal(t, before, tt.flag(v), "key %d", tt.key)
	}
}

func TestHandleKeyShader(t *testing.T) {
	v := newTestViewport()
	v.HandleKey(input.KeyF5)
	assert.Equal(t, ShaderGouraud, v.Shader)
	v.HandleKey(input.KeyF5)
	assert.Equal(t, ShaderPhong, v.Shader)
}

func TestHandleKeySwingSpeed(t *testing.T) {
	v := newTestViewport()
	v.HandleKey(input.KeyRightBracket)
	assert.InDelta(t, scene.DefaultSwingSpeed+SwingStep, v.Rig.SwingSpeed, 1e-6)

	for i := 0; i < 10; i++ {
		v.HandleKey(input.KeyLeftBracket)
	}
	assert.Zero(t, v.Rig.SwingSpeed)
}

func TestHandleKeyUnbound(t *testing.T) {
	v := newTestViewport()
	assert.False(t, v.HandleKey(input.KeyEscape))
}

func TestResetCamera(t *testing.T) {
	v := newTestViewport()
	start := *v.Camera
	v.Camera.Position = mgl32.Vec3{3, 3, 3}
	v.Camera.SetZoom(10)

	v.HandleKey(input.KeyR)
	assert.Equal(t, start.Position, v.Camera.Position)
	assert.Equal(t, start.Orientation, v.Camera.Orientation)
	assert.Equal(t, start.Zoom, v.Camera.Zoom)
}

func TestUpdateOnlyReadsInputWhenFocused(t *testing.T) {
	src := inputtest.NewSource()
	in := input.NewManager(src)
	src.Press(input.KeyF1)
	src.Keys[input.KeyW] = true
	in.Update(src)

	left, right := newTestViewport(), newTestViewport()
	left.Update(1, 0.1, in, true)
	right.Update(1, 0.1, in, false)

	assert.True(t, left.FlatShading)
	assert.False(t, right.FlatShading)
	assert.NotEqual(t, right.Camera.Position, left.Camera.Position)
	assert.Equal(t, mgl32.Vec3{0, 1, 5}, right.Camera.Position)
}

func TestUpdateAnimatesDisco(t *testing.T) {
	v := newTestViewport()
	v.Rig.SwingSpeed = 2
	v.Update(0.5, 0.016, nil, false)

	props := scene.DefaultProperties()
	want := scene.DiscoDirection(0, props.DiscoLights[0].Direction, 0.5, 2).Normalize()
	assert.True(t, libutil.ApproxEqualVec3(want, v.Rig.Disco[0].Direction, 1e-6))
}

func TestUpdateZoomAndLook(t *testing.T) {
	src := inputtest.NewSource()
	in := input.NewManager(src)
	v := newTestViewport()
	pitch := v.Camera.Orientation.X()

	src.Scroll = 5
	src.Buttons[input.MouseButtonRight] = true
	src.Y = 50
	in.Update(src)
	v.Update(0, 0.016, in, true)

	assert.Equal(t, float32(40), v.Camera.Zoom)
	assert.InDelta(t, pitch+50*v.Camera.Sensitivity, v.Camera.Orientation.X(), 1e-4)
}

func TestSplitHorizontal(t *testing.T) {
	rects := SplitHorizontal(1281, 720, 2)
	require.Len(t, rects, 2)
	assert.Equal(t, Rect{0, 0, 640, 720}, rects[0])
	assert.Equal(t, Rect{640, 0, 641, 720}, rects[1])
	assert.Nil(t, SplitHorizontal(100, 100, 0))
}

func TestFocused(t *testing.T) {
	rects := SplitHorizontal(1280, 720, 2)
	vps := []*ViewportState{newTestViewport(), newTestViewport()}
	vps[0].Rect, vps[1].Rect = rects[0], rects[1]

	assert.Equal(t, 0, Focused(vps, mgl32.Vec2{10, 10}, 720))
	assert.Equal(t, 1, Focused(vps, mgl32.Vec2{700, 700}, 720))
	assert.Equal(t, -1, Focused(vps, mgl32.Vec2{2000, 10}, 720))
}

func TestRectAspect(t *testing.T) {
	assert.InDelta(t, 640./720., Rect{Width: 640, Height: 720}.Aspect(), 1e-6)
	assert.Equal(t, float32(1), Rect{}.Aspect())
}
