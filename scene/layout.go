package scene

import (
	"simple-scene/libscn"

	"github.com/go-gl/mathgl/mgl32"
)

const chairDistance = 1.5

func object(name string, shape libscn.Shape, pos, rot, scale mgl32.Vec3, mat Material) ObjectProps {
	return ObjectProps{
		Name:     name,
		Shape:    shape,
		Position: pos,
		Rotation: rot,
		Scale:    scale,
		Material: mat,
		Color:    mat.Diffuse,
	}
}

// Planes returns the floor and the four walls, all facing into the room.
func (p *Properties) Planes() []ObjectProps {
	s, h := p.RoomHalfSize, p.WallHeight/2
	mid := float32(libscn.FloorHeight) + h
	mat := p.PlaneMaterial
	return []ObjectProps{
		object("floor", libscn.ShapePlane, mgl32.Vec3{0, libscn.FloorHeight, 0}, mgl32.Vec3{}, mgl32.Vec3{s, 1, s}, mat),
		object("wall north", libscn.ShapePlane, mgl32.Vec3{0, mid, -s}, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{s, 1, h}, mat),
		object("wall south", libscn.ShapePlane, mgl32.Vec3{0, mid, s}, mgl32.Vec3{-90, 0, 0}, mgl32.Vec3{s, 1, h}, mat),
		object("wall west", libscn.ShapePlane, mgl32.Vec3{-s, mid, 0}, mgl32.Vec3{0, 0, -90}, mgl32.Vec3{h, 1, s}, mat),
		object("wall east", libscn.ShapePlane, mgl32.Vec3{s, mid, 0}, mgl32.Vec3{0, 0, 90}, mgl32.Vec3{h, 1, s}, mat),
	}
}

func (p *Properties) Table() ObjectProps {
	return object("table", libscn.ShapeTable, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, p.TableMaterial)
}

// Chairs returns one chair per table side, backrests facing away from the table.
func (p *Properties) Chairs() []ObjectProps {
	one := mgl32.Vec3{1, 1, 1}
	mat := p.ChairMaterial
	return []ObjectProps{
		object("chair north", libscn.ShapeChair, mgl32.Vec3{0, 0, -chairDistance}, mgl32.Vec3{}, one, mat),
		object("chair south", libscn.ShapeChair, mgl32.Vec3{0, 0, chairDistance}, mgl32.Vec3{0, 180, 0}, one, mat),
		object("chair west", libscn.ShapeChair, mgl32.Vec3{-chairDistance, 0, 0}, mgl32.Vec3{0, 90, 0}, one, mat),
		object("chair east", libscn.ShapeChair, mgl32.Vec3{chairDistance, 0, 0}, mgl32.Vec3{0, -90, 0}, one, mat),
	}
}

// Objects returns everything in the room in draw order: planes, table,
// chairs, ornaments.
func (p *Properties) Objects() []ObjectProps {
	objects := p.Planes()
	objects = append(objects, p.Table())
	objects = append(objects, p.Chairs()...)
	objects = append(objects, p.Ornaments...)
	return objects
}
