// Package inputtest provides a scripted input.Source for tests.
package inputtest

import "simple-scene/input"

type Source struct {
	Keys    map[input.Key]bool
	Buttons map[input.MouseButton]bool
	X, Y    float64
	Scroll  float32
	Now     float64
}

func NewSource() *Source {
	return &Source{
		Keys:    map[input.Key]bool{},
		Buttons: map[input.MouseButton]bool{},
	}
}

func (s *Source) IsKeyPressed(key input.Key) bool {
	return s.Keys[key]
}

func (s *Source) IsMousePressed(button input.MouseButton) bool {
	return s.Buttons[button]
}

func (s *Source) CursorPos() (float64, float64) {
	return s.X, s.Y
}

func (s *Source) ScrollDelta() float32 {
	d := s.Scroll
	s.Scroll = 0
	return d
}

func (s *Source) Time() float64 {
	return s.Now
}

// Press holds key down and advances the clock by one 60 Hz frame.
func (s *Source) Press(key input.Key) {
	s.Keys[key] = true
	s.Now += 1. / 60.
}

func (s *Source) Release(key input.Key) {
	s.Keys[key] = false
	s.Now += 1. / 60.
}
