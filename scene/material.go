package scene

import "github.com/go-gl/mathgl/mgl32"

// UniformSetter is anything that accepts named uniform values, usually the
// currently bound shader program. Unknown names must be ignored.
type UniformSetter interface {
	SetUniform(name string, value any)
}

type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// NewMaterial builds a material; shininess defaults to 0.
func NewMaterial(ambient, diffuse, specular mgl32.Vec3, shininess ...float32) Material {
	m := Material{
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
	}
	if len(shininess) > 0 {
		m.Shininess = shininess[0]
	}
	return m
}

func (m Material) Equal(other Material) bool {
	return m == other
}

// Tracking returns the material as seen with color tracking enabled: the flat
// color replaces all three reflectance terms, shininess is kept.
func (m Material) Tracking(color mgl32.Vec3) Material {
	return Material{
		Ambient:   color,
		Diffuse:   color,
		Specular:  color,
		Shininess: m.Shininess,
	}
}

// Upload writes the material to <name>.ambient, .diffuse, .specular and .shininess.
func (m Material) Upload(p UniformSetter, name string) {
	p.SetUniform(name+".ambient", m.Ambient)
	p.SetUniform(name+".diffuse", m.Diffuse)
	p.SetUniform(name+".specular", m.Specular)
	p.SetUniform(name+".shininess", m.Shininess)
}
