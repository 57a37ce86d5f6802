package scene

import (
	"simple-scene/libscn"

	"github.com/go-gl/mathgl/mgl32"
)

type PointLightProps struct {
	Position    mgl32.Vec3
	Material    Material
	Attenuation Attenuation
}

type SpotLightProps struct {
	PointLightProps
	Direction           mgl32.Vec3
	CutOff, OuterCutOff float32
}

// ObjectProps describes one placed mesh. Rotation is in degrees and applied
// x, then y, then z.
type ObjectProps struct {
	Name     string
	Shape    libscn.Shape
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Material Material
	// Color replaces the material while color tracking is enabled.
	Color mgl32.Vec3
}

func (o ObjectProps) Model() mgl32.Mat4 {
	return mgl32.Translate3D(o.Position.Elem()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(o.Rotation.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(o.Rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(o.Rotation.Z()))).
		Mul4(mgl32.Scale3D(o.Scale.Elem()))
}

// Properties holds the configuration tables a viewport is built from. It is
// created once and never mutated afterwards.
type Properties struct {
	PointLights [2]PointLightProps
	SpotLight   SpotLightProps
	DiscoLights [4]SpotLightProps

	PlaneMaterial Material
	TableMaterial Material
	ChairMaterial Material

	// RoomHalfSize is the half extent of the floor, WallHeight is measured
	// from the floor.
	RoomHalfSize float32
	WallHeight   float32

	Ornaments []ObjectProps
}

var defaultAttenuation = Attenuation{Constant: 1.0, Linear: 0.09, Quadratic: 0.032}

func gray(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}

// Materials with the names used in the ornament table.
var (
	Emerald   = NewMaterial(mgl32.Vec3{0.0215, 0.1745, 0.0215}, mgl32.Vec3{0.07568, 0.61424, 0.07568}, mgl32.Vec3{0.633, 0.727811, 0.633}, 0.6*128)
	Jade      = NewMaterial(mgl32.Vec3{0.135, 0.2225, 0.1575}, mgl32.Vec3{0.54, 0.89, 0.63}, gray(0.316228), 0.1*128)
	Obsidian  = NewMaterial(mgl32.Vec3{0.05375, 0.05, 0.06625}, mgl32.Vec3{0.18275, 0.17, 0.22525}, mgl32.Vec3{0.332741, 0.328634, 0.346435}, 0.3*128)
	Pearl     = NewMaterial(mgl32.Vec3{0.25, 0.20725, 0.20725}, mgl32.Vec3{1.0, 0.829, 0.829}, gray(0.296648), 0.088*128)
	Ruby      = NewMaterial(mgl32.Vec3{0.1745, 0.01175, 0.01175}, mgl32.Vec3{0.61424, 0.04136, 0.04136}, mgl32.Vec3{0.727811, 0.626959, 0.626959}, 0.6*128)
	Turquoise = NewMaterial(mgl32.Vec3{0.1, 0.18725, 0.1745}, mgl32.Vec3{0.396, 0.74151, 0.69102}, mgl32.Vec3{0.297254, 0.30829, 0.306678}, 0.1*128)
	Brass     = NewMaterial(mgl32.Vec3{0.329412, 0.223529, 0.027451}, mgl32.Vec3{0.780392, 0.568627, 0.113725}, mgl32.Vec3{0.992157, 0.941176, 0.807843}, 0.21794872*128)
	Bronze    = NewMaterial(mgl32.Vec3{0.2125, 0.1275, 0.054}, mgl32.Vec3{0.714, 0.4284, 0.18144}, mgl32.Vec3{0.393548, 0.271906, 0.166721}, 0.2*128)
	Chrome    = NewMaterial(gray(0.25), gray(0.4), gray(0.774597), 0.6*128)
	Copper    = NewMaterial(mgl32.Vec3{0.19125, 0.0735, 0.0225}, mgl32.Vec3{0.7038, 0.27048, 0.0828}, mgl32.Vec3{0.256777, 0.137622, 0.086014}, 0.1*128)
)

// NamedMaterials lets settings files refer to the stock materials by name.
var NamedMaterials = map[string]Material{
	"emerald":   Emerald,
	"jade":      Jade,
	"obsidian":  Obsidian,
	"pearl":     Pearl,
	"ruby":      Ruby,
	"turquoise": Turquoise,
	"brass":     Brass,
	"bronze":    Bronze,
	"chrome":    Chrome,
	"copper":    Copper,
}

// WithOrnamentMaterial returns a copy of p where the named ornament uses mat.
// The receiver is left untouched.
func (p *Properties) WithOrnamentMaterial(ornament string, mat Material) (*Properties, bool) {
	for i, o := range p.Ornaments {
		if o.Name != ornament {
			continue
		}
		clone := *p
		clone.Ornaments = append([]ObjectProps(nil), p.Ornaments...)
		clone.Ornaments[i].Material = mat
		clone.Ornaments[i].Color = mat.Diffuse
		return &clone, true
	}
	return p, false
}

func ornament(name string, shape libscn.Shape, pos, rot mgl32.Vec3, scale float32, mat Material) ObjectProps {
	return ObjectProps{
		Name:     name,
		Shape:    shape,
		Position: pos,
		Rotation: rot,
		Scale:    gray(scale),
		Material: mat,
		Color:    mat.Diffuse,
	}
}

func spot(pos, dir mgl32.Vec3, mat Material, cutOff, outerCutOff float32) SpotLightProps {
	return SpotLightProps{
		PointLightProps: PointLightProps{Position: pos, Material: mat, Attenuation: defaultAttenuation},
		Direction:       dir,
		CutOff:          cutOff,
		OuterCutOff:     outerCutOff,
	}
}

// DefaultProperties returns the stock room: two point lights at either end,
// a white spotlight above the table and four colored disco lights.
func DefaultProperties() *Properties {
	pointMaterial := NewMaterial(gray(0.3), gray(0.8), gray(1))
	down := mgl32.Vec3{0, -1, 0}
	ceiling := mgl32.Vec3{0, 2, 0}
	white := gray(1)

	return &Properties{
		PointLights: [2]PointLightProps{
			{Position: mgl32.Vec3{0, 1.5, 2.85}, Material: pointMaterial, Attenuation: defaultAttenuation},
			{Position: mgl32.Vec3{0, 1.5, -2.85}, Material: pointMaterial, Attenuation: defaultAttenuation},
		},
		SpotLight: spot(ceiling, down, NewMaterial(gray(0), gray(1), gray(1)), 22.5, 25),
		DiscoLights: [4]SpotLightProps{
			spot(ceiling, down, NewMaterial(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 0}, white), 20.5, 23),
			spot(ceiling, down, NewMaterial(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}, white), 20.5, 23),
			spot(ceiling, down, NewMaterial(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}, white), 20.5, 23),
			spot(ceiling, down, NewMaterial(mgl32.Vec3{1, 1, 0}, mgl32.Vec3{1, 1, 0}, white), 20.5, 23),
		},

		PlaneMaterial: Pearl,
		TableMaterial: NewMaterial(gray(0), gray(0.55), gray(0.70), 32),
		ChairMaterial: NewMaterial(gray(0.02), gray(0.01), gray(0.4), 10),

		RoomHalfSize: 3,
		WallHeight:   3,

		Ornaments: []ObjectProps{
			ornament("teapot", libscn.ShapeTeapot, mgl32.Vec3{0, 0.17, 0}, mgl32.Vec3{}, 1, Emerald),
			ornament("sphere", libscn.ShapeSphere, mgl32.Vec3{0.4, 0.20, -0.4}, mgl32.Vec3{}, 1, Jade),
			ornament("cone", libscn.ShapeCone, mgl32.Vec3{0.644, 0.06, 0.444}, mgl32.Vec3{-90, 0, 0}, 1, Obsidian),
			ornament("torus", libscn.ShapeTorus, mgl32.Vec3{-0.644, 0.15, -0.444}, mgl32.Vec3{-90, 0, 0}, 1, Pearl),
			ornament("dodecahedron", libscn.ShapeDodecahedron, mgl32.Vec3{-0.794, 0.20, 0.444}, mgl32.Vec3{60, 0, 0}, 0.1, Ruby),
			ornament("octahedron", libscn.ShapeOctahedron, mgl32.Vec3{-0.41111, 0.18, 0.4222}, mgl32.Vec3{36, 0, 45}, 0.2, Turquoise),
			ornament("tetrahedron", libscn.ShapeTetrahedron, mgl32.Vec3{0.21111, 0.12, 0.7222}, mgl32.Vec3{0, 0, -20}, 0.2, Brass),
			ornament("icosahedron", libscn.ShapeIcosahedron, mgl32.Vec3{0.71111, 0.21, -0.5222}, mgl32.Vec3{36, 0, 13}, 0.2, Bronze),
		},
	}
}
