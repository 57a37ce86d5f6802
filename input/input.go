package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Key uses the GLFW key codes.
type Key int

const (
	KeySpace        Key = 32
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	KeyA            Key = 65
	KeyD            Key = 68
	KeyR            Key = 82
	KeyS            Key = 83
	KeyW            Key = 87
	KeyLeftBracket  Key = 91
	KeyRightBracket Key = 93
	KeyEscape       Key = 256
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyLeftControl  Key = 341
	KeyLast         Key = 348
)

type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
	MouseButtonLast   MouseButton = 7
)

// Source is the window the state is sampled from.
type Source interface {
	IsKeyPressed(key Key) bool
	IsMousePressed(button MouseButton) bool
	CursorPos() (x, y float64)
	// ScrollDelta returns and resets the scroll offset accumulated since the
	// last call.
	ScrollDelta() float32
	Time() float64
}

type Manager interface {
	CursorPos() mgl32.Vec2
	CursorDelta() mgl32.Vec2
	ScrollDelta() float32
	TimeDelta() float32
	IsKeyDown(key Key) bool
	IsKeyTap(key Key) bool
	IsMouseDown(button MouseButton) bool
	IsMouseTap(button MouseButton) bool
	Update(src Source)
	GetMovement(forward, backward, left, right, up, down Key) mgl32.Vec3
}

type input struct {
	curr inputState
	prev inputState
}

type inputState struct {
	time         float32
	cursorPos    mgl32.Vec2
	scroll       float32
	keys         []bool
	mousebuttons []bool
}

func newInputState() inputState {
	return inputState{
		keys:         make([]bool, KeyLast+1),
		mousebuttons: make([]bool, MouseButtonLast+1),
	}
}

func NewManager(src Source) Manager {
	i := &input{
		curr: newInputState(),
		prev: newInputState(),
	}

	i.Update(src)
	i.prev.cursorPos = i.curr.cursorPos
	// Make sure dTime != 0 to avoid possible errors
	i.prev.time = i.curr.time - 1./60.
	copy(i.prev.keys, i.curr.keys)
	copy(i.prev.mousebuttons, i.curr.mousebuttons)

	return i
}

func (i *input) CursorPos() mgl32.Vec2 {
	return i.curr.cursorPos
}

func (i *input) CursorDelta() mgl32.Vec2 {
	return i.curr.cursorPos.Sub(i.prev.cursorPos)
}

func (i *input) ScrollDelta() float32 {
	return i.curr.scroll
}

func (i *input) TimeDelta() float32 {
	return i.curr.time - i.prev.time
}

func (i *input) IsKeyDown(key Key) bool {
	return i.curr.keys[key]
}

func (i *input) IsKeyTap(key Key) bool {
	return i.curr.keys[key] && !i.prev.keys[key]
}

func (i *input) IsMouseDown(button MouseButton) bool {
	return i.curr.mousebuttons[button]
}

func (i *input) IsMouseTap(button MouseButton) bool {
	return i.curr.mousebuttons[button] && !i.prev.mousebuttons[button]
}

func (i *input) GetMovement(forward, backward, left, right, up, down Key) mgl32.Vec3 {
	var x, y, z float32
	if forward != 0 && i.IsKeyDown(forward) {
		z -= 1
	}
	if backward != 0 && i.IsKeyDown(backward) {
		z += 1
	}
	if left != 0 && i.IsKeyDown(left) {
		x -= 1
	}
	if right != 0 && i.IsKeyDown(right) {
		x += 1
	}
	if up != 0 && i.IsKeyDown(up) {
		y += 1
	}
	if down != 0 && i.IsKeyDown(down) {
		y -= 1
	}
	return mgl32.Vec3{x, y, z}
}

func (i *input) Update(src Source) {
	keys := i.prev.keys
	mousebuttons := i.prev.mousebuttons
	i.prev = i.curr
	cursorX, cursorY := src.CursorPos()

	for key := KeySpace; key <= KeyLast; key++ {
		keys[key] = src.IsKeyPressed(key)
	}

	for button := MouseButton(0); button <= MouseButtonLast; button++ {
		mousebuttons[button] = src.IsMousePressed(button)
	}

	i.curr = inputState{
		time:         float32(src.Time()),
		cursorPos:    mgl32.Vec2{float32(cursorX), float32(cursorY)},
		scroll:       src.ScrollDelta(),
		keys:         keys,
		mousebuttons: mousebuttons,
	}
}
