// Package render marshals a viewport's frame into shader uniforms and issues
// the draws in room order.
package render

import (
	"fmt"

	"simple-scene/libscn"
	"simple-scene/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const MaterialUniform = "material"

// Program is the bound side of a shader program.
type Program interface {
	scene.UniformSetter
	Use()
}

type Drawable interface {
	Draw()
}

// Object is a placed mesh with its precomputed transforms.
type Object struct {
	scene.ObjectProps
	Mesh         Drawable
	model        mgl32.Mat4
	normalMatrix mgl32.Mat3
}

// Build pairs every object with the mesh of its shape. Meshes are shared
// between objects of the same shape.
func Build[D Drawable](props []scene.ObjectProps, meshes map[libscn.Shape]D) ([]Object, error) {
	objects := make([]Object, 0, len(props))
	for _, p := range props {
		mesh, ok := meshes[p.Shape]
		if !ok {
			return nil, fmt.Errorf("no mesh for %v: %w: %q", p.Name, libscn.ErrUnknownShape, p.Shape)
		}
		model := p.Model()
		objects = append(objects, Object{
			ObjectProps:  p,
			Mesh:         mesh,
			model:        model,
			normalMatrix: model.Mat3().Inv().Transpose(),
		})
	}
	return objects, nil
}

type Frame struct {
	View          mgl32.Mat4
	Projection    mgl32.Mat4
	ViewPos       mgl32.Vec3
	Lights        *scene.LightRig
	ColorTracking bool
}

// UploadFrame writes the uniforms shared by all objects of a frame.
func UploadFrame(p scene.UniformSetter, f Frame) {
	p.SetUniform("view", f.View)
	p.SetUniform("projection", f.Projection)
	p.SetUniform("viewPos", f.ViewPos)
	if f.Lights != nil {
		f.Lights.Render(p)
	}
}

// UploadObject writes the transform and material of obj. With color tracking
// the object's flat color stands in for the material.
func UploadObject(p scene.UniformSetter, obj *Object, colorTracking bool) {
	p.SetUniform("model", obj.model)
	p.SetUniform("normalMatrix", obj.normalMatrix)

	mat := obj.Material
	if colorTracking {
		mat = mat.Tracking(obj.Color)
	}
	mat.Upload(p, MaterialUniform)
}

// Pass draws objects in order, each draw preceded by its own uniforms.
type Pass struct {
	Program Program
	Objects []Object
}

func (pass *Pass) Draw(f Frame) {
	pass.Program.Use()
	UploadFrame(pass.Program, f)
	for i := range pass.Objects {
		obj := &pass.Objects[i]
		UploadObject(pass.Program, obj, f.ColorTracking)
		obj.Mesh.Draw()
	}
}
