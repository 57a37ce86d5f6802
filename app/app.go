// Package app owns the window, the GL context and the render loop.
package app

import (
	"fmt"
	"runtime"
	"unsafe"

	"simple-scene/assets"
	"simple-scene/config"
	"simple-scene/gui"
	"simple-scene/input"
	"simple-scene/libgl"
	"simple-scene/libscn"
	"simple-scene/log"
	"simple-scene/render"
	"simple-scene/viewport"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var logger = log.New("app")

func init() {
	// GL and glfw calls must come from the main thread.
	runtime.LockOSThread()
}

func createWindow(w config.Window) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	if w.CompatibilityProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}

	win, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if w.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return win, nil
}

func initGL() error {
	err := gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr := glfw.GetProcAddress(name)
		if addr == nil {
			return unsafe.Pointer(uintptr(0xffff_ffff_ffff_ffff))
		}
		return addr
	})
	if err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	libgl.EnableDebugOutput()
	libgl.State = libgl.NewGlStateManager()
	libgl.Env = libgl.GetEnvironment()
	logger.Noticef("%v / %v / %v", libgl.Env.Vendor, libgl.Env.Renderer, libgl.Env.Version)
	return nil
}

type application struct {
	settings  *config.Settings
	win       *glfw.Window
	in        input.Manager
	source    *windowSource
	overlay   *gui.ImGui
	programs  *programs
	watcher   *assets.Watcher
	meshes    map[libscn.Shape]*libgl.StaticMesh
	objects   []render.Object
	viewports []*viewport.ViewportState
	fbSize    [2]int
}

// Run opens the window and renders until it is closed.
func Run(settings *config.Settings) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	win, err := createWindow(settings.Window)
	if err != nil {
		return err
	}
	if err := initGL(); err != nil {
		return err
	}
	if !settings.ShaderCache {
		libgl.ShaderCache = nil
	}

	app := &application{settings: settings, win: win}
	if err := app.setup(); err != nil {
		return err
	}
	defer app.delete()

	app.loop()
	return nil
}

func (app *application) setup() error {
	loader := assets.Embedded()
	if dir := app.settings.ShaderDir; dir != "" {
		loader = assets.FromDir(dir)
		w, err := assets.Watch(dir)
		if err != nil {
			logger.Warningf("shader hot reload disabled: %v", err)
		} else {
			app.watcher = w
		}
	}
	app.programs = newPrograms(loader)

	if app.settings.GUI {
		app.overlay = gui.NewImGui(app.win, app.programs.imgui)
	}
	app.source = newWindowSource(app.win, app.overlay)
	app.in = input.NewManager(app.source)

	var err error
	app.meshes, err = libgl.UploadShapes(libscn.Shapes())
	if err != nil {
		return err
	}
	props := app.settings.Properties()
	app.objects, err = render.Build(props.Objects(), app.meshes)
	if err != nil {
		return err
	}

	fbWidth, fbHeight := app.win.GetFramebufferSize()
	app.fbSize = [2]int{fbWidth, fbHeight}
	rects := viewport.SplitHorizontal(fbWidth, fbHeight, len(app.settings.Viewports))
	for i, vs := range app.settings.Viewports {
		shader := viewport.ShaderPhong
		if vs.Shader == "gouraud" {
			shader = viewport.ShaderGouraud
		}
		app.viewports = append(app.viewports, viewport.New(vs.Name, rects[i], props, viewport.Options{
			CameraPosition: vs.Camera,
			LookAt:         vs.LookAt,
			SwingSpeed:     vs.SwingSpeed,
			Shader:         shader,
		}))
	}
	logger.Infof("%d objects in %d viewports", len(app.objects), len(app.viewports))
	return nil
}

func (app *application) delete() {
	if app.watcher != nil {
		app.watcher.Close()
	}
	if app.overlay != nil {
		app.overlay.Delete()
	}
	for _, m := range app.meshes {
		m.Delete()
	}
	app.programs.delete()
}

func (app *application) loop() {
	start := glfw.GetTime()
	for !app.win.ShouldClose() {
		glfw.PollEvents()
		app.in.Update(app.source)
		if app.in.IsKeyTap(input.KeyEscape) {
			app.win.SetShouldClose(true)
		}
		app.reloadShaders()
		app.resize()

		// one clock reading per frame for every viewport
		elapsed := float32(glfw.GetTime() - start)
		dt := app.in.TimeDelta()
		focus := app.focused()
		for i, v := range app.viewports {
			v.Update(elapsed, dt, app.in, i == focus)
		}

		libgl.State.Disable(libgl.ScissorTest)
		libgl.State.ClearColor(0.05, 0.05, 0.07, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		for _, v := range app.viewports {
			app.draw(v)
		}

		if app.overlay != nil {
			app.overlay.NewFrame()
			for _, v := range app.viewports {
				app.overlay.Panel(v, dt)
			}
			app.overlay.Draw()
		}

		app.win.SwapBuffers()
	}
}

// focused returns the index of the viewport under the cursor, or -1 while
// the overlay has the input.
func (app *application) focused() int {
	if app.overlay != nil && app.overlay.WantsInput() {
		return -1
	}
	winWidth, winHeight := app.win.GetSize()
	if winWidth == 0 || winHeight == 0 {
		return -1
	}
	scale := mgl32.Vec2{float32(app.fbSize[0]) / float32(winWidth), float32(app.fbSize[1]) / float32(winHeight)}
	cursor := app.in.CursorPos()
	cursor = mgl32.Vec2{cursor.X() * scale.X(), cursor.Y() * scale.Y()}
	return viewport.Focused(app.viewports, cursor, app.fbSize[1])
}

func (app *application) resize() {
	fbWidth, fbHeight := app.win.GetFramebufferSize()
	if app.fbSize == [2]int{fbWidth, fbHeight} {
		return
	}
	app.fbSize = [2]int{fbWidth, fbHeight}
	rects := viewport.SplitHorizontal(fbWidth, fbHeight, len(app.viewports))
	for i, v := range app.viewports {
		v.Rect = rects[i]
	}
}

func (app *application) reloadShaders() {
	if app.watcher == nil {
		return
	}
	changed := app.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	logger.Noticef("reloading shaders, changed: %v", changed)
	app.programs.build()
}

func (app *application) draw(v *viewport.ViewportState) {
	r := v.Rect
	if r.Width == 0 || r.Height == 0 {
		return
	}
	libgl.PushGroup(v.Name)
	defer libgl.PopGroup()

	libgl.State.Viewport(r.X, r.Y, r.Width, r.Height)
	libgl.State.Toggle(libgl.DepthTest, v.DepthTest)
	libgl.State.Toggle(libgl.CullFace, v.CullFace)
	libgl.State.CullBack()
	libgl.State.DepthFunc(libgl.DepthFuncLess)
	libgl.State.Wireframe(v.Wireframe)

	pass := render.Pass{
		Program: app.programs.get(v.Shader, v.FlatShading),
		Objects: app.objects,
	}
	cam := v.Camera
	pass.Draw(render.Frame{
		View:          cam.GetViewMatrix(),
		Projection:    cam.ProjectionMatrix(r.Aspect()),
		ViewPos:       cam.Position,
		Lights:        v.Rig,
		ColorTracking: v.ColorTracking,
	})
}
