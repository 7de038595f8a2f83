package quarkgl

import "quark/math3d"

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	CullBack   bool
	ClearColor Color

	// Stats of the last Render call.
	Stats RenderStats

	depthBuf []float32
}

// RenderStats counts triangles of the last frame.
type RenderStats struct {
	Submitted int
	Clipped   int
	Culled    int
	Drawn     int
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		CullBack:   true,
		ClearColor: RGB(0, 0, 0),
	}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1
	}
}

// Render clears the target and draws every enabled mesh of the scene.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)
	r.Stats = RenderStats{}

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	viewProj := s.Camera.Projection(float32(w) / float32(h)).Mul(s.Camera.View())

	s.eachMesh(func(m *Mesh) {
		if !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, viewProj, m, s.Light)
	})
}

// screenVertex is a projected vertex: pixel position plus NDC depth.
type screenVertex struct {
	x, y int
	z    float32
	c    Color
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj math3d.Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	mvp := viewProj.Mul(m.Model())

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}
		r.Stats.Submitted++

		v0, v1, v2 := m.Vertices[i0], m.Vertices[i1], m.Vertices[i2]
		s0, ok0 := project(mvp, v0, w, h)
		s1, ok1 := project(mvp, v1, w, h)
		s2, ok2 := project(mvp, v2, w, h)
		if !ok0 || !ok1 || !ok2 {
			r.Stats.Clipped++
			continue
		}

		// Front faces wind counter-clockwise in NDC, which edgeFn reports
		// as a positive area once y points down.
		if r.CullBack && r.Mode != RenderWireframe && edgeFn(s0.x, s0.y, s1.x, s1.y, s2.x, s2.y) < 0 {
			r.Stats.Culled++
			continue
		}

		base := m.Material.BaseColor
		if light.Mode == LightAmbientDirectional {
			// Uniform scale and translation keep normal directions, so the
			// orientation alone carries the face normal into world space.
			n := m.Orientation.Rotate(triangleNormal(v0.Pos, v1.Pos, v2.Pos))
			base = base.MulScalar(lightIntensity(light, n))
		}
		r.Stats.Drawn++

		switch r.Mode {
		case RenderWireframe:
			drawLine(t, s0.x, s0.y, s1.x, s1.y, base)
			drawLine(t, s1.x, s1.y, s2.x, s2.y, base)
			drawLine(t, s2.x, s2.y, s0.x, s0.y, base)
		case RenderSolidVertexColor:
			r.fillTriangle(t, w, h, s0, s1, s2, func(a0, a1, a2 float32) Color {
				return blend(s0.c, s1.c, s2.c, a0, a1, a2)
			})
		default:
			r.fillTriangle(t, w, h, s0, s1, s2, func(_, _, _ float32) Color { return base })
		}
	}
}

// project maps a model-space vertex to the screen. It rejects vertices on or
// behind the eye plane.
func project(mvp math3d.Mat4, v Vertex, w, h int) (screenVertex, bool) {
	p := mvp.MulVec4(math3d.Vec4{X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, W: 1})
	if p.W <= 0 {
		return screenVertex{}, false
	}
	inv := 1 / p.W
	nx, ny, nz := p.X*inv, p.Y*inv, p.Z*inv
	sx := (nx*0.5 + 0.5) * float32(w-1)
	sy := (1 - (ny*0.5 + 0.5)) * float32(h-1)
	return screenVertex{x: int(sx + 0.5), y: int(sy + 0.5), z: nz, c: v.Color}, true
}

// triangleNormal returns the unit face normal, or zero for a degenerate
// triangle.
func triangleNormal(a, b, c math3d.Vec3) math3d.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Magnitude() == 0 {
		return math3d.Vec3{}
	}
	return n.Normalize()
}

func lightIntensity(l Light, n math3d.Vec3) float32 {
	amb := clamp01(l.Ambient)
	dir := clamp01(l.DirAmount)
	if l.Dir.Magnitude() == 0 {
		return amb
	}
	d := n.Dot(l.Dir.Normalize().Neg())
	if d < 0 {
		d = 0
	}
	return clamp01(amb + d*dir)
}

// depthTest maps NDC z from [-1,1] to [0,1] and keeps the nearer fragment.
func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	d := clamp01(z*0.5 + 0.5)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

// fillTriangle rasterizes with edge functions over the clipped bounding box
// and asks shade for the color at each covered pixel's barycentric weights.
func (r *Renderer) fillTriangle(t Target, w, h int, a, b, c screenVertex, shade func(a0, a1, a2 float32) Color) {
	minX := max(min(a.x, b.x, c.x), 0)
	maxX := min(max(a.x, b.x, c.x), w-1)
	minY := max(min(a.y, b.y, c.y), 0)
	maxY := min(max(a.y, b.y, c.y), h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 {
		return
	}
	invArea := 1 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(b.x, b.y, c.x, c.y, x, y)
			w1 := edgeFn(c.x, c.y, a.x, a.y, x, y)
			w2 := edgeFn(a.x, a.y, b.x, b.y, x, y)
			// Accept either winding: all weights share the sign of area.
			if area > 0 && (w0|w1|w2) < 0 {
				continue
			}
			if area < 0 && (w0 > 0 || w1 > 0 || w2 > 0) {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			if !r.depthTest(w, x, y, a0*a.z+a1*b.z+a2*c.z) {
				continue
			}
			t.SetPixel(x, y, shade(a0, a1, a2))
		}
	}
}

func blend(c0, c1, c2 Color, a0, a1, a2 float32) Color {
	ch := func(v0, v1, v2 uint8) uint8 {
		v := a0*float32(v0) + a1*float32(v1) + a2*float32(v2)
		return uint8(clamp01(v/255) * 255)
	}
	return Color{R: ch(c0.R, c1.R, c2.R), G: ch(c0.G, c1.G, c2.G), B: ch(c0.B, c1.B, c2.B), A: 0xFF}
}

// drawLine is Bresenham's line; the target clips.
func drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
