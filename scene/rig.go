package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	NumPointLights = 2
	NumDiscoLights = 4

	DefaultSwingSpeed = 1.0
)

// DiscoUniform returns the uniform prefix of the i-th disco light.
func DiscoUniform(i int) string {
	return fmt.Sprintf("discoLights[%d]", i)
}

// LightRig is the set of lights owned by a single viewport.
type LightRig struct {
	PointLights [NumPointLights]*PointLight
	Spot        *SpotLight
	Disco       [NumDiscoLights]*SpotLight
	// SwingSpeed scales the disco animation, in radians per second.
	SwingSpeed float32

	discoBase [NumDiscoLights]mgl32.Vec3
}

func NewLightRig(props *Properties, swingSpeed float32) *LightRig {
	rig := &LightRig{SwingSpeed: swingSpeed}
	for i, p := range props.PointLights {
		rig.PointLights[i] = NewPointLight(i, p.Position, p.Material, p.Attenuation)
	}
	s := props.SpotLight
	rig.Spot = NewSpotLight(0, s.Position, s.Direction, s.Material, s.Attenuation, s.CutOff, s.OuterCutOff)
	for i, d := range props.DiscoLights {
		rig.Disco[i] = NewSpotLight(i, d.Position, d.Direction, d.Material, d.Attenuation, d.CutOff, d.OuterCutOff)
		rig.discoBase[i] = d.Direction
	}
	return rig
}

// DiscoDirection is the direction of disco light i before normalization at
// time t. Light 0 swings along x, light 1 along z, lights 2 and 3 along both.
// Components that are not driven keep their value from base.
func DiscoDirection(i int, base mgl32.Vec3, t, speed float32) mgl32.Vec3 {
	dir := base
	phase := t * speed
	switch i {
	case 0:
		dir[0] = math32.Sin(phase)
	case 1:
		dir[2] = math32.Cos(phase)
	default:
		dir[0] = math32.Sin(phase)
		dir[2] = math32.Cos(phase)
	}
	return dir
}

// Animate recomputes the disco light directions for elapsed seconds t. The
// result depends only on t, so calling it any number of times per frame is
// harmless.
func (r *LightRig) Animate(t float32) {
	for i, l := range r.Disco {
		l.SetDirection(DiscoDirection(i, r.discoBase[i], t, r.SwingSpeed))
	}
}

// Render uploads every light of the rig to p.
func (r *LightRig) Render(p UniformSetter) {
	for _, l := range r.PointLights {
		l.Render(p)
	}
	r.Spot.Render(p)
	for i, l := range r.Disco {
		l.RenderAs(p, DiscoUniform(i))
	}
}

// ToggleDisco switches all disco lights off if any of them is on, and all of
// them on otherwise.
func (r *LightRig) ToggleDisco() {
	anyOn := false
	for _, l := range r.Disco {
		anyOn = anyOn || l.IsOn()
	}
	for _, l := range r.Disco {
		if anyOn {
			l.Off()
		} else {
			l.On()
		}
	}
}

type NamedLight struct {
	Label string
	Kind  string
	Light Light
}

// Lights lists the rig in key order: point lights, the spotlight, then the
// disco lights.
func (r *LightRig) Lights() []NamedLight {
	lights := make([]NamedLight, 0, NumPointLights+1+NumDiscoLights)
	for i, l := range r.PointLights {
		lights = append(lights, NamedLight{Label: fmt.Sprintf("point %d", i), Kind: "point", Light: l})
	}
	lights = append(lights, NamedLight{Label: "spot", Kind: "spot", Light: r.Spot})
	for i, l := range r.Disco {
		lights = append(lights, NamedLight{Label: fmt.Sprintf("disco %d", i), Kind: "spot", Light: l})
	}
	return lights
}

// SetSwingSpeed clamps the speed to be non-negative.
func (r *LightRig) SetSwingSpeed(speed float32) {
	r.SwingSpeed = max(speed, 0)
}
