package libscn

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// FloorHeight is the y coordinate of the room floor in world space.
const FloorHeight = -0.626866

var ErrUnknownShape = errors.New("libscn: unknown shape")

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

const VertexSize = int(unsafe.Sizeof(Vertex{}))

// Mesh is a non-indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []Vertex
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Append merges the triangles of other into m.
func (m *Mesh) Append(other *Mesh) {
	m.Vertices = append(m.Vertices, other.Vertices...)
}

// Transform applies mat to positions and its inverse transpose to normals.
func (m *Mesh) Transform(mat mgl32.Mat4) *Mesh {
	normalMat := mat.Mat3().Inv().Transpose()
	for i, v := range m.Vertices {
		m.Vertices[i].Position = mgl32.TransformCoordinate(v.Position, mat)
		m.Vertices[i].Normal = normalMat.Mul3x1(v.Normal).Normalize()
	}
	return m
}

func (m *Mesh) tri(a, b, c, n mgl32.Vec3) {
	m.Vertices = append(m.Vertices, Vertex{a, n}, Vertex{b, n}, Vertex{c, n})
}

// flatTri appends a triangle with its face normal, flipped if needed so it
// faces away from center. Only valid for convex pieces.
func (m *Mesh) flatTri(a, b, c, center mgl32.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	centroid := a.Add(b).Add(c).Mul(1. / 3.)
	if n.Dot(centroid.Sub(center)) < 0 {
		b, c = c, b
		n = n.Mul(-1)
	}
	m.tri(a, b, c, n)
}

type Shape string

const (
	ShapePlane        Shape = "plane"
	ShapeTable        Shape = "table"
	ShapeChair        Shape = "chair"
	ShapeTeapot       Shape = "teapot"
	ShapeSphere       Shape = "sphere"
	ShapeCone         Shape = "cone"
	ShapeTorus        Shape = "torus"
	ShapeDodecahedron Shape = "dodecahedron"
	ShapeOctahedron   Shape = "octahedron"
	ShapeTetrahedron  Shape = "tetrahedron"
	ShapeIcosahedron  Shape = "icosahedron"
)

var generators = map[Shape]func() *Mesh{
	ShapePlane:        Plane,
	ShapeTable:        Table,
	ShapeChair:        Chair,
	ShapeTeapot:       Teapot,
	ShapeSphere:       func() *Mesh { return Sphere(0.2, 32, 16) },
	ShapeCone:         func() *Mesh { return Cone(0.1, 0.25, 24, 4) },
	ShapeTorus:        func() *Mesh { return Torus(0.04, 0.12, 16, 32) },
	ShapeDodecahedron: Dodecahedron,
	ShapeOctahedron:   Octahedron,
	ShapeTetrahedron:  Tetrahedron,
	ShapeIcosahedron:  Icosahedron,
}

// Shapes lists every shape Generate knows, in a stable order.
func Shapes() []Shape {
	return []Shape{
		ShapePlane, ShapeTable, ShapeChair,
		ShapeTeapot, ShapeSphere, ShapeCone, ShapeTorus,
		ShapeDodecahedron, ShapeOctahedron, ShapeTetrahedron, ShapeIcosahedron,
	}
}

func Generate(shape Shape) (*Mesh, error) {
	gen, ok := generators[shape]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
	mesh := gen()
	mesh.Name = string(shape)
	return mesh, nil
}
