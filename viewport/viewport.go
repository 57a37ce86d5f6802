package viewport

import (
	"simple-scene/camera"
	"simple-scene/input"
	"simple-scene/log"
	"simple-scene/scene"

	"github.com/go-gl/mathgl/mgl32"
)

var logger = log.New("viewport")

type Shader int

const (
	ShaderPhong Shader = iota
	ShaderGouraud
)

func (s Shader) String() string {
	if s == ShaderGouraud {
		return "gouraud"
	}
	return "phong"
}

// Rect is a viewport rectangle in framebuffer pixels with the origin in the
// lower left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Aspect() float32 {
	if r.Height == 0 {
		return 1
	}
	return float32(r.Width) / float32(r.Height)
}

// ContainsCursor reports whether a cursor position in window coordinates,
// origin top left, lies inside r.
func (r Rect) ContainsCursor(x, y float32, windowHeight int) bool {
	y = float32(windowHeight) - y
	return x >= float32(r.X) && x < float32(r.X+r.Width) &&
		y >= float32(r.Y) && y < float32(r.Y+r.Height)
}

// SplitHorizontal divides a width x height framebuffer into n side by side
// columns. The last column takes the remainder.
func SplitHorizontal(width, height, n int) []Rect {
	if n <= 0 {
		return nil
	}
	rects := make([]Rect, n)
	w := width / n
	for i := range rects {
		rects[i] = Rect{X: i * w, Y: 0, Width: w, Height: height}
	}
	rects[n-1].Width = width - (n-1)*w
	return rects
}

type Options struct {
	CameraPosition mgl32.Vec3
	LookAt         mgl32.Vec3
	SwingSpeed     float32
	Shader         Shader
}

// ViewportState is everything one half of the window owns. Two states never
// share a camera or a light rig.
type ViewportState struct {
	Name   string
	Rect   Rect
	Camera *camera.Camera
	Rig    *scene.LightRig
	Shader Shader

	FlatShading   bool
	ColorTracking bool
	CullFace      bool
	DepthTest     bool
	Wireframe     bool

	home   mgl32.Vec3
	lookAt mgl32.Vec3
}

func New(name string, rect Rect, props *scene.Properties, opts Options) *ViewportState {
	v := &ViewportState{
		Name:      name,
		Rect:      rect,
		Camera:    camera.New(opts.CameraPosition),
		Rig:       scene.NewLightRig(props, opts.SwingSpeed),
		Shader:    opts.Shader,
		CullFace:  true,
		DepthTest: true,
		home:      opts.CameraPosition,
		lookAt:    opts.LookAt,
	}
	v.Camera.SetLookAt(opts.LookAt)
	return v
}

// ResetCamera puts the camera back where the viewport started.
func (v *ViewportState) ResetCamera() {
	v.Camera.ResetToPosition(v.home)
	v.Camera.SetLookAt(v.lookAt)
}

// Update applies one frame of input and advances the disco animation to
// elapsed seconds. Input is only read when focused is set.
func (v *ViewportState) Update(elapsed, dt float32, in input.Manager, focused bool) {
	if focused && in != nil {
		for _, b := range Bindings {
			if in.IsKeyTap(b.Key) {
				v.HandleKey(b.Key)
			}
		}
		v.move(in.GetMovement(input.KeyW, input.KeyS, input.KeyA, input.KeyD, input.KeySpace, input.KeyLeftControl), dt)

		if scroll := in.ScrollDelta(); scroll != 0 {
			v.Camera.SetZoom(v.Camera.Zoom - scroll)
		}
		if in.IsMouseDown(input.MouseButtonRight) {
			delta := in.CursorDelta()
			v.Camera.ProcessMouse(delta.X(), delta.Y())
		}
	}

	v.Rig.Animate(elapsed)
}

func (v *ViewportState) move(dir mgl32.Vec3, dt float32) {
	switch {
	case dir.Z() < 0:
		v.Camera.ProcessKeyboard(camera.Forward, dt)
	case dir.Z() > 0:
		v.Camera.ProcessKeyboard(camera.Backward, dt)
	}
	switch {
	case dir.X() < 0:
		v.Camera.ProcessKeyboard(camera.Left, dt)
	case dir.X() > 0:
		v.Camera.ProcessKeyboard(camera.Right, dt)
	}
	switch {
	case dir.Y() > 0:
		v.Camera.ProcessKeyboard(camera.Up, dt)
	case dir.Y() < 0:
		v.Camera.ProcessKeyboard(camera.Down, dt)
	}
}

// Focused returns the index of the viewport under the cursor, or -1.
func Focused(viewports []*ViewportState, cursor mgl32.Vec2, windowHeight int) int {
	for i, v := range viewports {
		if v.Rect.ContainsCursor(cursor.X(), cursor.Y(), windowHeight) {
			return i
		}
	}
	return -1
}
