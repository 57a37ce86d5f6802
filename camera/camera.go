package camera

import (
	"simple-scene/libutil"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	DefaultZoom  = 45
	MinZoom      = 1
	MaxZoom      = 45
	MaxPitch     = 89
	DefaultSpeed = 2.5
	// degrees per pixel
	DefaultSensitivity = 0.1
)

type Camera struct {
	Position mgl32.Vec3
	// pitch, yaw, roll in degrees
	Orientation mgl32.Vec3
	// vertical field of view in degrees
	Zoom           float32
	ClippingPlanes mgl32.Vec2
	Speed          float32
	Sensitivity    float32
}

func New(position mgl32.Vec3) *Camera {
	return &Camera{
		Position:       position,
		Zoom:           DefaultZoom,
		ClippingPlanes: mgl32.Vec2{0.1, 100},
		Speed:          DefaultSpeed,
		Sensitivity:    DefaultSensitivity,
	}
}

func (cam *Camera) Quaternion() mgl32.Quat {
	return mgl32.AnglesToQuat(cam.Orientation[0]*libutil.Deg2Rad, cam.Orientation[1]*libutil.Deg2Rad, cam.Orientation[2]*libutil.Deg2Rad, mgl32.XYZ)
}

func (cam *Camera) GetViewMatrix() mgl32.Mat4 {
	r := cam.Quaternion()
	t := mgl32.Translate3D(-cam.Position[0], -cam.Position[1], -cam.Position[2])
	return r.Mat4().Mul4(t)
}

func (cam *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(cam.Zoom*libutil.Deg2Rad, aspect, cam.ClippingPlanes[0], cam.ClippingPlanes[1])
}

// Forward is the world space viewing direction.
func (cam *Camera) Forward() mgl32.Vec3 {
	return cam.Quaternion().Conjugate().Rotate(mgl32.Vec3{0, 0, -1})
}

// Fly moves the camera by vec given in view space.
func (cam *Camera) Fly(vec mgl32.Vec3) {
	r := cam.Quaternion()
	cam.Position = cam.Position.Add(r.Conjugate().Rotate(vec))
}

// ProcessKeyboard moves along the view axes, Up and Down along world y.
func (cam *Camera) ProcessKeyboard(direction Movement, dt float32) {
	d := cam.Speed * dt
	switch direction {
	case Forward:
		cam.Fly(mgl32.Vec3{0, 0, -d})
	case Backward:
		cam.Fly(mgl32.Vec3{0, 0, d})
	case Left:
		cam.Fly(mgl32.Vec3{-d, 0, 0})
	case Right:
		cam.Fly(mgl32.Vec3{d, 0, 0})
	case Up:
		cam.Position[1] += d
	case Down:
		cam.Position[1] -= d
	}
}

// ProcessMouse turns the camera by a cursor delta in pixels.
func (cam *Camera) ProcessMouse(dx, dy float32) {
	cam.Orientation[1] += dx * cam.Sensitivity
	cam.Orientation[0] = libutil.Clamp(cam.Orientation[0]+dy*cam.Sensitivity, -MaxPitch, MaxPitch)
}

func (cam *Camera) SetZoom(zoom float32) {
	cam.Zoom = libutil.Clamp(zoom, MinZoom, MaxZoom)
}

// SetLookAt turns the camera towards target without moving it.
func (cam *Camera) SetLookAt(target mgl32.Vec3) {
	dir := target.Sub(cam.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	pitch := math32.Asin(libutil.Clamp(-dir.Y(), -1, 1)) * libutil.Rad2Deg
	yaw := math32.Atan2(dir.X(), -dir.Z()) * libutil.Rad2Deg
	cam.Orientation = mgl32.Vec3{libutil.Clamp(pitch, -MaxPitch, MaxPitch), yaw, 0}
}

// ResetToPosition moves the camera to position with a level view down -z and
// the default zoom.
func (cam *Camera) ResetToPosition(position mgl32.Vec3) {
	cam.Position = position
	cam.Orientation = mgl32.Vec3{}
	cam.Zoom = DefaultZoom
}
