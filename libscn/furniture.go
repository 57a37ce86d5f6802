package libscn

import "github.com/go-gl/mathgl/mgl32"

// Plane is a 2x2 quad in the xz-plane facing +y.
func Plane() *Mesh {
	m := &Mesh{}
	up := mgl32.Vec3{0, 1, 0}
	m.tri(mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{-1, 0, 1}, mgl32.Vec3{1, 0, 1}, up)
	m.tri(mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 0, -1}, up)
	return m
}

// Box is an axis aligned cuboid with flat faces.
func Box(min, max mgl32.Vec3) *Mesh {
	m := &Mesh{}
	center := min.Add(max).Mul(0.5)
	corner := func(x, y, z int) mgl32.Vec3 {
		var c mgl32.Vec3
		for i, pick := range [3]int{x, y, z} {
			if pick == 0 {
				c[i] = min[i]
			} else {
				c[i] = max[i]
			}
		}
		return c
	}

	faces := [6][4][3]int{
		{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {0, 0, 1}}, // -x
		{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, // +x
		{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // -y
		{{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}}, // +y
		{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, // -z
		{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // +z
	}
	for _, f := range faces {
		a := corner(f[0][0], f[0][1], f[0][2])
		b := corner(f[1][0], f[1][1], f[1][2])
		c := corner(f[2][0], f[2][1], f[2][2])
		d := corner(f[3][0], f[3][1], f[3][2])
		m.flatTri(a, b, c, center)
		m.flatTri(a, c, d, center)
	}
	return m
}

const (
	tableTop       = 0.0
	tableThickness = 0.06
	tableHalfSize  = 1.0
	tableLegInset  = 0.88
	tableLegHalf   = 0.04
)

// Table has its top surface at y=0 and its legs standing on the floor.
func Table() *Mesh {
	m := Box(
		mgl32.Vec3{-tableHalfSize, tableTop - tableThickness, -tableHalfSize},
		mgl32.Vec3{tableHalfSize, tableTop, tableHalfSize},
	)
	for _, sx := range []float32{-1, 1} {
		for _, sz := range []float32{-1, 1} {
			x, z := sx*tableLegInset, sz*tableLegInset
			m.Append(Box(
				mgl32.Vec3{x - tableLegHalf, FloorHeight, z - tableLegHalf},
				mgl32.Vec3{x + tableLegHalf, tableTop - tableThickness, z + tableLegHalf},
			))
		}
	}
	return m
}

const (
	chairSeat      = -0.25
	chairThickness = 0.04
	chairHalfSize  = 0.25
	chairLegInset  = 0.22
	chairLegHalf   = 0.025
	chairBackTop   = 0.35
)

// Chair faces +z with its backrest on the -z side, legs standing on the floor.
func Chair() *Mesh {
	m := Box(
		mgl32.Vec3{-chairHalfSize, chairSeat - chairThickness, -chairHalfSize},
		mgl32.Vec3{chairHalfSize, chairSeat, chairHalfSize},
	)
	for _, sx := range []float32{-1, 1} {
		for _, sz := range []float32{-1, 1} {
			x, z := sx*chairLegInset, sz*chairLegInset
			m.Append(Box(
				mgl32.Vec3{x - chairLegHalf, FloorHeight, z - chairLegHalf},
				mgl32.Vec3{x + chairLegHalf, chairSeat - chairThickness, z + chairLegHalf},
			))
		}
	}
	m.Append(Box(
		mgl32.Vec3{-chairHalfSize, chairSeat, -chairHalfSize},
		mgl32.Vec3{chairHalfSize, chairBackTop, -chairHalfSize + chairThickness},
	))
	return m
}
