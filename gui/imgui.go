package gui

import (
	"simple-scene/libgl"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

// ImGui renders the overlay. Window events are forwarded to it by the owner
// of the glfw callbacks.
type ImGui struct {
	IO        imgui.IO
	context   *imgui.Context
	FrameTime float32
	win       *glfw.Window
	vao       libgl.UnboundVertexArray
	vbo       libgl.UnboundBuffer
	ebo       libgl.UnboundBuffer
	atlas     uint32
	shader    libgl.Program
}

func NewImGui(win *glfw.Window, shader libgl.Program) *ImGui {
	context := imgui.CreateContext(nil)

	io := imgui.CurrentIO()
	dispWidth, dispHeight := win.GetSize()
	io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	imgui.StyleColorsDark()

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	vbo := libgl.NewBuffer()
	vbo.SetDebugLabel("imgui vertices")
	vbo.AllocateEmptyMutable(1<<16, gl.STREAM_DRAW)
	ebo := libgl.NewBuffer()
	ebo.SetDebugLabel("imgui indices")
	ebo.AllocateEmptyMutable(1<<14, gl.STREAM_DRAW)

	vao := libgl.NewVertexArray()
	vao.SetDebugLabel("imgui")
	vao.Layout(0, 0, 2, gl.FLOAT, false, vertexOffsetPos)
	vao.Layout(0, 1, 2, gl.FLOAT, false, vertexOffsetUv)
	vao.Layout(0, 2, 4, gl.UNSIGNED_BYTE, true, vertexOffsetCol)
	vao.BindBuffer(0, vbo, 0, vertexSize)
	vao.BindElementBuffer(ebo)

	image := io.Fonts().TextureDataRGBA32()
	var atlas uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &atlas)
	gl.TextureStorage2D(atlas, 1, gl.RGBA8, int32(image.Width), int32(image.Height))
	gl.TextureSubImage2D(atlas, 0, 0, 0, int32(image.Width), int32(image.Height), gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)
	gl.TextureParameteri(atlas, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TextureParameteri(atlas, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	io.Fonts().SetTextureID(imgui.TextureID(atlas))

	keys := map[int]glfw.Key{
		imgui.KeyTab:        glfw.KeyTab,
		imgui.KeyLeftArrow:  glfw.KeyLeft,
		imgui.KeyRightArrow: glfw.KeyRight,
		imgui.KeyUpArrow:    glfw.KeyUp,
		imgui.KeyDownArrow:  glfw.KeyDown,
		imgui.KeyHome:       glfw.KeyHome,
		imgui.KeyEnd:        glfw.KeyEnd,
		imgui.KeyDelete:     glfw.KeyDelete,
		imgui.KeyBackspace:  glfw.KeyBackspace,
		imgui.KeyEnter:      glfw.KeyEnter,
		imgui.KeyEscape:     glfw.KeyEscape,
	}
	for imguiKey, glfwKey := range keys {
		io.KeyMap(imguiKey, int(glfwKey))
	}

	return &ImGui{
		IO:        io,
		context:   context,
		FrameTime: float32(glfw.GetTime()),
		win:       win,
		vao:       vao,
		vbo:       vbo,
		ebo:       ebo,
		atlas:     atlas,
		shader:    shader,
	}
}

// WantsInput reports whether the overlay is using the mouse or keyboard, in
// which case the viewports should ignore them.
func (gui *ImGui) WantsInput() bool {
	return gui.IO.WantCaptureMouse() || gui.IO.WantCaptureKeyboard()
}

func (gui *ImGui) CursorPos(x, y float64) {
	gui.IO.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
}

func (gui *ImGui) MouseButton(button glfw.MouseButton, action glfw.Action) {
	if button <= glfw.MouseButtonMiddle {
		gui.IO.SetMouseButtonDown(int(button), action == glfw.Press)
	}
}

func (gui *ImGui) Scroll(x, y float64) {
	gui.IO.AddMouseWheelDelta(float32(x), float32(y))
}

func (gui *ImGui) Char(char rune) {
	gui.IO.AddInputCharacters(string(char))
}

func (gui *ImGui) Key(key glfw.Key, action glfw.Action) {
	if key == glfw.KeyUnknown {
		return
	}
	if action == glfw.Press {
		gui.IO.KeyPress(int(key))
	}
	if action == glfw.Release {
		gui.IO.KeyRelease(int(key))
	}

	// Modifiers are not reliable across systems
	gui.IO.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	gui.IO.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	gui.IO.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	gui.IO.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (gui *ImGui) NewFrame() {
	dispWidth, dispHeight := gui.win.GetSize()
	gui.IO.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})

	time := float32(glfw.GetTime())
	gui.IO.SetDeltaTime(max(time-gui.FrameTime, 1e-5))
	gui.FrameTime = time

	imgui.NewFrame()
}

func (gui *ImGui) Draw() {
	libgl.PushGroup("Draw ImGui")
	defer libgl.PopGroup()

	imgui.Render()

	dispWidth, dispHeight := gui.win.GetSize()
	fbWidth, fbHeight := gui.win.GetFramebufferSize()
	if fbWidth == 0 || fbHeight == 0 {
		return
	}
	libgl.State.Viewport(0, 0, fbWidth, fbHeight)
	ortho := mgl32.Ortho2D(0, float32(dispWidth), float32(dispHeight), 0)

	gui.vao.Bind()
	gui.shader.Use()
	gui.shader.SetUniform("u_proj_mat", ortho)

	libgl.State.Enable(libgl.Blend)
	libgl.State.Enable(libgl.ScissorTest)
	libgl.State.Disable(libgl.CullFace)
	libgl.State.Disable(libgl.DepthTest)
	libgl.State.Wireframe(false)
	libgl.State.BlendEquation(libgl.BlendFuncAdd)
	libgl.State.BlendFunc(libgl.BlendSrcAlpha, libgl.BlendOneMinusSrcAlpha)

	drawData := imgui.RenderedDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / float32(dispWidth),
		Y: float32(fbHeight) / float32(dispHeight),
	})

	var indexType uint32
	indexSize := imgui.IndexBufferLayout()
	switch indexSize {
	case 1:
		indexType = gl.UNSIGNED_BYTE
	case 2:
		indexType = gl.UNSIGNED_SHORT
	case 4:
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		if gui.vbo.Reserve(vertexBufferSize) {
			// storage was reallocated, rebind it
			vertexSize, _, _, _ := imgui.VertexBufferLayout()
			gui.vao.BindBuffer(0, gui.vbo, 0, vertexSize)
		}
		if vertexBufferSize > 0 {
			gui.vbo.WriteRange(0, vertexBufferSize, vertexBuffer)
		}

		indexBuffer, indexBufferSize := list.IndexBuffer()
		if gui.ebo.Reserve(indexBufferSize) {
			gui.vao.BindElementBuffer(gui.ebo)
		}
		if indexBufferSize > 0 {
			gui.ebo.WriteRange(0, indexBufferSize, indexBuffer)
		}

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			gl.BindTextureUnit(0, uint32(cmd.TextureID()))
			clipRect := cmd.ClipRect()
			x, y := int(clipRect.X), max(fbHeight-int(clipRect.W), 0)
			libgl.State.Scissor(x, y, int(clipRect.Z-clipRect.X), int(clipRect.W-clipRect.Y))
			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, uintptr(cmd.IndexOffset()*indexSize), int32(cmd.VertexOffset()))
		}
	}

	libgl.State.Disable(libgl.ScissorTest)
	libgl.State.Disable(libgl.Blend)
}

func (gui *ImGui) Delete() {
	gui.vao.Delete()
	gui.vbo.Delete()
	gui.ebo.Delete()
	gl.DeleteTextures(1, &gui.atlas)
	gui.context.Destroy()
}
