package math3d

import "github.com/chewxy/math32"

// Mat4 is a row-major 4x4 matrix: m[row*4+col].
//
// Vectors are columns, so M.MulVec4(v) computes M·v and A.Mul(B) applies B
// first when the product transforms a vector.
type Mat4 [16]float32

func Mat4Zero() Mat4 { return Mat4{} }

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product a·b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] =
				a[row*4+0]*b[0*4+col] +
					a[row*4+1]*b[1*4+col] +
					a[row*4+2]*b[2*4+col] +
					a[row*4+3]*b[3*4+col]
		}
	}
	return out
}

// ColumnMajor returns the matrix as four columns: out[col][row].
func (m Mat4) ColumnMajor() [4][4]float32 {
	return [4][4]float32{
		{m[0], m[4], m[8], m[12]},
		{m[1], m[5], m[9], m[13]},
		{m[2], m[6], m[10], m[14]},
		{m[3], m[7], m[11], m[15]},
	}
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies m to p with w=1 and drops w without dividing.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	r := m.MulVec4(p.vec4(1))
	return Vec3{r.X, r.Y, r.Z}
}

// TransformDir applies m to d with w=0, ignoring translation.
func (m Mat4) TransformDir(d Vec3) Vec3 {
	r := m.MulVec4(d.vec4(0))
	return Vec3{r.X, r.Y, r.Z}
}

func (m Mat4) ApproxEqual(o Mat4, eps float32) bool {
	for i := range m {
		if !approx(m[i], o[i], eps) {
			return false
		}
	}
	return true
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[3] = v.X
	m[7] = v.Y
	m[11] = v.Z
	return m
}

func Mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// Mat4LookAt returns a right-handed view matrix looking from eye at target.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Mat4Perspective returns an OpenGL-style projection mapping the view
// frustum to clip space with z in [-w, w].
func Mat4Perspective(fovYRad, aspect, zNear, zFar float32) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := 1 / math32.Tan(fovYRad/2)
	nf := 1 / (zNear - zFar)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zFar + zNear) * nf, (2 * zFar * zNear) * nf,
		0, 0, -1, 0,
	}
}

func Mat4Ortho(left, right, bottom, top, zNear, zFar float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := zFar - zNear
	if rl == 0 {
		rl = 1
	}
	if tb == 0 {
		tb = 1
	}
	if fn == 0 {
		fn = 1
	}
	return Mat4{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, -2 / fn, -(zFar + zNear) / fn,
		0, 0, 0, 1,
	}
}
