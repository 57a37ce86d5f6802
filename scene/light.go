package scene

import (
	"fmt"

	"simple-scene/libutil"

	"github.com/go-gl/mathgl/mgl32"
)

type LightState int

const (
	LightOff LightState = iota
	LightOn
)

func (s LightState) String() string {
	if s == LightOn {
		return "on"
	}
	return "off"
}

type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Light is implemented by PointLight and SpotLight. Render uploads the light
// to the program under the light's own uniform name.
type Light interface {
	On()
	Off()
	Toggle()
	State() LightState
	Active() Material
	Render(p UniformSetter)
	RenderAs(p UniformSetter, prefix string)
}

type PointLight struct {
	ID          int
	Position    mgl32.Vec3
	Attenuation Attenuation
	// Material is the color state applied while the light is on.
	Material Material
	state    LightState
}

// NewPointLight returns a light that is switched on.
func NewPointLight(id int, position mgl32.Vec3, material Material, attenuation Attenuation) *PointLight {
	return &PointLight{
		ID:          id,
		Position:    position,
		Attenuation: attenuation,
		Material:    material,
		state:       LightOn,
	}
}

func (l *PointLight) On() {
	l.state = LightOn
}

func (l *PointLight) Off() {
	l.state = LightOff
}

func (l *PointLight) Toggle() {
	if l.state == LightOn {
		l.Off()
	} else {
		l.On()
	}
}

func (l *PointLight) State() LightState {
	return l.state
}

func (l *PointLight) IsOn() bool {
	return l.state == LightOn
}

// Active is the material currently applied: Material when on, black when off.
func (l *PointLight) Active() Material {
	if l.state == LightOn {
		return l.Material
	}
	return Material{}
}

func (l *PointLight) UniformName() string {
	return fmt.Sprintf("pointLights[%d]", l.ID)
}

func (l *PointLight) Render(p UniformSetter) {
	l.RenderAs(p, l.UniformName())
}

func (l *PointLight) RenderAs(p UniformSetter, prefix string) {
	active := l.Active()
	p.SetUniform(prefix+".position", l.Position)
	p.SetUniform(prefix+".ambient", active.Ambient)
	p.SetUniform(prefix+".diffuse", active.Diffuse)
	p.SetUniform(prefix+".specular", active.Specular)
	p.SetUniform(prefix+".constant", l.Attenuation.Constant)
	p.SetUniform(prefix+".linear", l.Attenuation.Linear)
	p.SetUniform(prefix+".quadratic", l.Attenuation.Quadratic)
}

// SpotLightUniform is the fixed uniform block used by SpotLight.Render. Any
// further spot lights have to be uploaded with RenderAs.
const SpotLightUniform = "spotLight"

type SpotLight struct {
	PointLight
	// unit length
	Direction mgl32.Vec3
	// in degrees
	CutOff, OuterCutOff float32
}

func NewSpotLight(id int, position, direction mgl32.Vec3, material Material, attenuation Attenuation, cutOff, outerCutOff float32) *SpotLight {
	l := &SpotLight{
		PointLight:  *NewPointLight(id, position, material, attenuation),
		CutOff:      cutOff,
		OuterCutOff: outerCutOff,
	}
	l.SetDirection(direction)
	return l
}

// SetDirection stores the normalized direction. A zero vector yields NaN.
func (l *SpotLight) SetDirection(dir mgl32.Vec3) {
	l.Direction = dir.Normalize()
}

func (l *SpotLight) UniformName() string {
	return SpotLightUniform
}

func (l *SpotLight) Render(p UniformSetter) {
	l.RenderAs(p, l.UniformName())
}

// RenderAs uploads the point light fields plus direction and the cosines of
// the cone angles. The cosines are taken here, the angles stay in degrees.
func (l *SpotLight) RenderAs(p UniformSetter, prefix string) {
	l.PointLight.RenderAs(p, prefix)
	p.SetUniform(prefix+".direction", l.Direction)
	p.SetUniform(prefix+".cutOff", libutil.CosDeg(l.CutOff))
	p.SetUniform(prefix+".outerCutOff", libutil.CosDeg(l.OuterCutOff))
}
