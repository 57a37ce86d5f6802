package libscn

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// smoothTri appends a triangle wound so that its face normal agrees with the
// interpolated vertex normals. Degenerate triangles are dropped.
func (m *Mesh) smoothTri(a, b, c Vertex) {
	face := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
	if face.Len() < 1e-9 {
		return
	}
	if face.Dot(a.Normal.Add(b.Normal).Add(c.Normal)) < 0 {
		b, c = c, b
	}
	m.Vertices = append(m.Vertices, a, b, c)
}

// grid stitches a (rows+1) x (cols+1) lattice of vertices into triangles.
func (m *Mesh) grid(rows, cols int, at func(i, j int) Vertex) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a, b := at(i, j), at(i, j+1)
			c, d := at(i+1, j), at(i+1, j+1)
			m.smoothTri(a, c, b)
			m.smoothTri(b, c, d)
		}
	}
}

func Sphere(radius float32, slices, stacks int) *Mesh {
	m := &Mesh{}
	m.grid(stacks, slices, func(i, j int) Vertex {
		phi := math32.Pi * float32(i) / float32(stacks)
		theta := 2 * math32.Pi * float32(j) / float32(slices)
		n := mgl32.Vec3{
			math32.Sin(phi) * math32.Cos(theta),
			math32.Cos(phi),
			math32.Sin(phi) * math32.Sin(theta),
		}
		return Vertex{n.Mul(radius), n}
	})
	return m
}

// Cone points along +z with its base disc at z=0.
func Cone(base, height float32, slices, stacks int) *Mesh {
	m := &Mesh{}
	slope := math32.Atan2(base, height)
	m.grid(stacks, slices, func(i, j int) Vertex {
		f := float32(i) / float32(stacks)
		theta := 2 * math32.Pi * float32(j) / float32(slices)
		r := base * (1 - f)
		cos, sin := math32.Cos(theta), math32.Sin(theta)
		return Vertex{
			Position: mgl32.Vec3{r * cos, r * sin, height * f},
			Normal:   mgl32.Vec3{cos * math32.Cos(slope), sin * math32.Cos(slope), math32.Sin(slope)},
		}
	})

	down := mgl32.Vec3{0, 0, -1}
	for j := 0; j < slices; j++ {
		t0 := 2 * math32.Pi * float32(j) / float32(slices)
		t1 := 2 * math32.Pi * float32(j+1) / float32(slices)
		m.smoothTri(
			Vertex{mgl32.Vec3{}, down},
			Vertex{mgl32.Vec3{base * math32.Cos(t0), base * math32.Sin(t0), 0}, down},
			Vertex{mgl32.Vec3{base * math32.Cos(t1), base * math32.Sin(t1), 0}, down},
		)
	}
	return m
}

// Torus lies in the xy-plane around the z axis. inner is the tube radius,
// outer the distance from the center to the middle of the tube.
func Torus(inner, outer float32, sides, rings int) *Mesh {
	m := &Mesh{}
	m.grid(rings, sides, func(i, j int) Vertex {
		theta := 2 * math32.Pi * float32(i) / float32(rings)
		phi := 2 * math32.Pi * float32(j) / float32(sides)
		n := mgl32.Vec3{
			math32.Cos(phi) * math32.Cos(theta),
			math32.Cos(phi) * math32.Sin(theta),
			math32.Sin(phi),
		}
		center := mgl32.Vec3{outer * math32.Cos(theta), outer * math32.Sin(theta), 0}
		return Vertex{center.Add(n.Mul(inner)), n}
	})
	return m
}

// Lathe revolves a (radius, y) profile around the y axis. The profile is
// expected to run bottom to top.
func Lathe(profile []mgl32.Vec2, segments int) *Mesh {
	normals := make([]mgl32.Vec2, len(profile))
	for i := range profile {
		prev, next := profile[max(i-1, 0)], profile[min(i+1, len(profile)-1)]
		t := next.Sub(prev)
		normals[i] = mgl32.Vec2{t.Y(), -t.X()}.Normalize()
	}

	m := &Mesh{}
	m.grid(len(profile)-1, segments, func(i, j int) Vertex {
		theta := 2 * math32.Pi * float32(j) / float32(segments)
		cos, sin := math32.Cos(theta), math32.Sin(theta)
		p, n := profile[i], normals[i]
		return Vertex{
			Position: mgl32.Vec3{p.X() * cos, p.Y(), p.X() * sin},
			Normal:   mgl32.Vec3{n.X() * cos, n.Y(), n.X() * sin},
		}
	})
	return m
}

var teapotProfile = []mgl32.Vec2{
	{0, -0.17}, {0.10, -0.17}, {0.14, -0.14}, {0.17, -0.08},
	{0.17, -0.02}, {0.15, 0.04}, {0.11, 0.08}, {0.09, 0.09},
	{0.07, 0.12}, {0.02, 0.14}, {0.015, 0.16}, {0.03, 0.18}, {0, 0.19},
}

// Teapot is a lathed body with a cone spout on +x and a ring handle on -x,
// resting on y=-0.17.
func Teapot() *Mesh {
	m := Lathe(teapotProfile, 32)

	spout := Cone(0.04, 0.16, 12, 2).Transform(
		mgl32.Translate3D(0.14, -0.04, 0).
			Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(45))).
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90))),
	)
	m.Append(spout)

	handle := Torus(0.015, 0.07, 8, 24).Transform(mgl32.Translate3D(-0.17, -0.02, 0))
	m.Append(handle)
	return m
}
