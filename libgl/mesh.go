package libgl

import (
	"unsafe"

	"simple-scene/libscn"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// StaticMesh is a vertex buffer uploaded once and drawn as plain triangles.
type StaticMesh struct {
	Name  string
	vao   UnboundVertexArray
	vbo   UnboundBuffer
	count int32
}

func NewStaticMesh(mesh *libscn.Mesh) *StaticMesh {
	vbo := NewBuffer()
	vbo.SetDebugLabel(mesh.Name + " vertices")
	vbo.Allocate(mesh.Vertices, 0)

	vao := NewVertexArray()
	vao.SetDebugLabel(mesh.Name)
	vao.Layout(0, 0, 3, gl.FLOAT, false, int(unsafe.Offsetof(libscn.Vertex{}.Position)))
	vao.Layout(0, 1, 3, gl.FLOAT, false, int(unsafe.Offsetof(libscn.Vertex{}.Normal)))
	vao.BindBuffer(0, vbo, 0, libscn.VertexSize)

	return &StaticMesh{
		Name:  mesh.Name,
		vao:   vao,
		vbo:   vbo,
		count: int32(mesh.VertexCount()),
	}
}

func (m *StaticMesh) Draw() {
	m.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

func (m *StaticMesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}

// UploadShapes generates and uploads every shape in shapes.
func UploadShapes(shapes []libscn.Shape) (map[libscn.Shape]*StaticMesh, error) {
	meshes := make(map[libscn.Shape]*StaticMesh, len(shapes))
	for _, shape := range shapes {
		mesh, err := libscn.Generate(shape)
		if err != nil {
			return nil, err
		}
		meshes[shape] = NewStaticMesh(mesh)
	}
	return meshes, nil
}
