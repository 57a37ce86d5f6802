package viewport

import (
	"simple-scene/input"

	"golang.org/x/exp/slices"
)

// SwingStep is how much [ and ] change the disco swing speed.
const SwingStep = 0.25

type Binding struct {
	Key    input.Key
	Label  string
	Action string
	apply  func(v *ViewportState)
}

func toggle(flag func(v *ViewportState) *bool) func(v *ViewportState) {
	return func(v *ViewportState) {
		f := flag(v)
		*f = !*f
	}
}

func toggleLight(i int) func(v *ViewportState) {
	return func(v *ViewportState) {
		v.Rig.Lights()[i].Light.Toggle()
	}
}

// Bindings is the per-viewport key map, in display order.
var Bindings = []Binding{
	{input.Key1, "1", "toggle point light 0", toggleLight(0)},
	{input.Key2, "2", "toggle point light 1", toggleLight(1)},
	{input.Key3, "3", "toggle spotlight", toggleLight(2)},
	{input.Key4, "4", "toggle disco light 0", toggleLight(3)},
	{input.Key5, "5", "toggle disco light 1", toggleLight(4)},
	{input.Key6, "6", "toggle disco light 2", toggleLight(5)},
	{input.Key7, "7", "toggle disco light 3", toggleLight(6)},
	{input.Key0, "0", "toggle all disco lights", func(v *ViewportState) { v.Rig.ToggleDisco() }},
	{input.KeyF1, "F1", "flat / smooth shading", toggle(func(v *ViewportState) *bool { return &v.FlatShading })},
	{input.KeyF2, "F2", "color tracking", toggle(func(v *ViewportState) *bool { return &v.ColorTracking })},
	{input.KeyF3, "F3", "back face culling", toggle(func(v *ViewportState) *bool { return &v.CullFace })},
	{input.KeyF4, "F4", "depth test", toggle(func(v *ViewportState) *bool { return &v.DepthTest })},
	{input.KeyF5, "F5", "phong / gouraud shader", func(v *ViewportState) {
		if v.Shader == ShaderPhong {
			v.Shader = ShaderGouraud
		} else {
			v.Shader = ShaderPhong
		}
	}},
	{input.KeyF6, "F6", "wireframe", toggle(func(v *ViewportState) *bool { return &v.Wireframe })},
	{input.KeyLeftBracket, "[", "slower disco swing", func(v *ViewportState) { v.Rig.SetSwingSpeed(v.Rig.SwingSpeed - SwingStep) }},
	{input.KeyRightBracket, "]", "faster disco swing", func(v *ViewportState) { v.Rig.SetSwingSpeed(v.Rig.SwingSpeed + SwingStep) }},
	{input.KeyR, "R", "reset camera", func(v *ViewportState) { v.ResetCamera() }},
}

// HandleKey runs the binding for key. It returns false if key is unbound.
func (v *ViewportState) HandleKey(key input.Key) bool {
	i := slices.IndexFunc(Bindings, func(b Binding) bool { return b.Key == key })
	if i < 0 {
		return false
	}
	b := Bindings[i]
	b.apply(v)
	logger.Debugf("%v: %v", v.Name, b.Action)
	return true
}
