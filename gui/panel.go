package gui

import (
	"fmt"

	"simple-scene/scene"
	"simple-scene/viewport"

	"github.com/inkyblackness/imgui-go/v4"
)

const maxSwingSpeed = 5

// Panel shows the state of one viewport and lets the user change it. The
// window is placed at the top left of the viewport.
func (gui *ImGui) Panel(v *viewport.ViewportState, frameTime float32) {
	dispWidth, _ := gui.win.GetSize()
	fbWidth, _ := gui.win.GetFramebufferSize()
	scale := float32(1)
	if fbWidth > 0 {
		scale = float32(dispWidth) / float32(fbWidth)
	}
	imgui.SetNextWindowPosV(imgui.Vec2{X: float32(v.Rect.X)*scale + 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})

	imgui.BeginV(v.Name, nil, imgui.WindowFlagsAlwaysAutoResize)
	defer imgui.End()

	imgui.Text(fmt.Sprintf("%.2f ms", frameTime*1000))
	pos := v.Camera.Position
	imgui.Text(fmt.Sprintf("camera (%.2f, %.2f, %.2f) fov %.0f", pos.X(), pos.Y(), pos.Z(), v.Camera.Zoom))

	imgui.Separator()
	for _, l := range v.Rig.Lights() {
		on := l.Light.State() == scene.LightOn
		if imgui.Checkbox(l.Label, &on) {
			if on {
				l.Light.On()
			} else {
				l.Light.Off()
			}
		}
	}
	speed := v.Rig.SwingSpeed
	if imgui.SliderFloat("swing speed", &speed, 0, maxSwingSpeed) {
		v.Rig.SetSwingSpeed(speed)
	}

	imgui.Separator()
	if imgui.BeginCombo("shader", v.Shader.String()) {
		for _, s := range []viewport.Shader{viewport.ShaderPhong, viewport.ShaderGouraud} {
			if imgui.Selectable(s.String()) {
				v.Shader = s
			}
		}
		imgui.EndCombo()
	}
	imgui.Checkbox("flat shading", &v.FlatShading)
	imgui.Checkbox("color tracking", &v.ColorTracking)
	imgui.Checkbox("back face culling", &v.CullFace)
	imgui.Checkbox("depth test", &v.DepthTest)
	imgui.Checkbox("wireframe", &v.Wireframe)
}
