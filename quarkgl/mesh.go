package quarkgl

import (
	"github.com/chewxy/math32"

	"quark/math3d"
)

type cubeFace struct {
	n, u, v math3d.Vec3 // u × v = n
	c       Color
}

var cubeFaces = [6]cubeFace{
	{math3d.V3(1, 0, 0), math3d.V3(0, 1, 0), math3d.V3(0, 0, 1), RGB(0xE0, 0x40, 0x40)},
	{math3d.V3(-1, 0, 0), math3d.V3(0, 0, 1), math3d.V3(0, 1, 0), RGB(0x60, 0x18, 0x18)},
	{math3d.V3(0, 1, 0), math3d.V3(0, 0, 1), math3d.V3(1, 0, 0), RGB(0x40, 0xE0, 0x40)},
	{math3d.V3(0, -1, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, 1), RGB(0x18, 0x60, 0x18)},
	{math3d.V3(0, 0, 1), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0), RGB(0x40, 0x60, 0xF0)},
	{math3d.V3(0, 0, -1), math3d.V3(0, 1, 0), math3d.V3(1, 0, 0), RGB(0x18, 0x20, 0x60)},
}

// NewCubeMesh returns an axis-aligned cube centered at the origin with
// counter-clockwise outward faces. Each face has its own vertex color, red/
// green/blue bright on the +x/+y/+z sides, so orientation stays readable.
func NewCubeMesh(size float32) Mesh {
	h := size / 2
	verts := make([]Vertex, 0, 24)
	indices := make([]uint16, 0, 36)

	for _, f := range cubeFaces {
		base := uint16(len(verts))
		center := f.n.Mul(h)
		u, v := f.u.Mul(h), f.v.Mul(h)
		for _, corner := range [4]math3d.Vec3{
			center.Sub(u).Sub(v),
			center.Add(u).Sub(v),
			center.Add(u).Add(v),
			center.Sub(u).Add(v),
		} {
			verts = append(verts, Vertex{Pos: corner, Normal: f.n, Color: f.c})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return Mesh{Vertices: verts, Indices: indices}
}

// NewTorusMesh returns a torus around the y axis with counter-clockwise
// outward faces.
func NewTorusMesh(major, minor float32, segU, segV int) Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	verts := make([]Vertex, 0, segU*segV)
	indices := make([]uint16, 0, segU*segV*6)

	for u := 0; u < segU; u++ {
		st, ct := math32.Sincos(2 * math32.Pi * float32(u) / float32(segU))
		for v := 0; v < segV; v++ {
			sp, cp := math32.Sincos(2 * math32.Pi * float32(v) / float32(segV))

			r := major + minor*cp
			verts = append(verts, Vertex{
				Pos:    math3d.V3(r*ct, minor*sp, r*st),
				Normal: math3d.V3(cp*ct, sp, cp*st),
				Color:  RGB(uint8(0x80+0x7F*ct), uint8(0x80+0x7F*sp), 0x60),
			})
		}
	}

	idx := func(u, v int) uint16 {
		return uint16((u%segU)*segV + v%segV)
	}

	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			i0 := idx(u, v)
			i1 := idx(u+1, v)
			i2 := idx(u+1, v+1)
			i3 := idx(u, v+1)

			indices = append(indices, i0, i2, i1)
			indices = append(indices, i0, i3, i2)
		}
	}

	return Mesh{Vertices: verts, Indices: indices}
}
