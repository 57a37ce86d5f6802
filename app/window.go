package app

import (
	"simple-scene/gui"
	"simple-scene/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// windowSource samples input from a glfw window. It owns the window
// callbacks and forwards events to the overlay.
type windowSource struct {
	win    *glfw.Window
	scroll float32
}

func newWindowSource(win *glfw.Window, overlay *gui.ImGui) *windowSource {
	s := &windowSource{win: win}
	win.SetScrollCallback(func(w *glfw.Window, x, y float64) {
		s.scroll += float32(y)
		if overlay != nil {
			overlay.Scroll(x, y)
		}
	})
	if overlay == nil {
		return s
	}
	win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		overlay.CursorPos(x, y)
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		overlay.MouseButton(button, action)
	})
	win.SetCharCallback(func(w *glfw.Window, char rune) {
		overlay.Char(char)
	})
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		overlay.Key(key, action)
	})
	return s
}

func (s *windowSource) IsKeyPressed(key input.Key) bool {
	return s.win.GetKey(glfw.Key(key)) == glfw.Press
}

func (s *windowSource) IsMousePressed(button input.MouseButton) bool {
	return s.win.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (s *windowSource) CursorPos() (float64, float64) {
	return s.win.GetCursorPos()
}

func (s *windowSource) ScrollDelta() float32 {
	d := s.scroll
	s.scroll = 0
	return d
}

func (s *windowSource) Time() float64 {
	return glfw.GetTime()
}
