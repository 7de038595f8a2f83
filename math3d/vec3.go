package math3d

import "github.com/chewxy/math32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a homogeneous 4D vector.
type Vec4 struct {
	X, Y, Z, W float32
}

func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Div(s float32) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }
func (v Vec3) Neg() Vec3          { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Magnitude returns the Euclidean norm. It is 0 for the zero vector.
func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v divided by its magnitude.
//
// v must not be the zero vector; the result is NaN otherwise.
func (v Vec3) Normalize() Vec3 {
	checkNonZeroVec("Vec3.Normalize", v)
	return v.Div(v.Magnitude())
}

// IsUnit reports whether v has magnitude 1 within the tolerance used by the
// rotor constructors.
func (v Vec3) IsUnit() bool {
	return isUnitMagnitude(v.Magnitude())
}

// Perpendicular returns an arbitrary unit vector orthogonal to v.
//
// Let m be the index of the first non-zero component of v and n = (m+1)%3.
// The result has v[m] at n and -v[n] at m, so its dot product with v is
// v[m]v[n] - v[n]v[m] = 0 before normalization. v must not be zero.
func (v Vec3) Perpendicular() Vec3 {
	checkNonZeroVec("Vec3.Perpendicular", v)

	c := [3]float32{v.X, v.Y, v.Z}
	m := 2
	switch {
	case c[0] != 0:
		m = 0
	case c[1] != 0:
		m = 1
	}
	n := (m + 1) % 3

	var r [3]float32
	r[n] = c[m]
	r[m] = -c[n]
	// Scale the larger component to ±1 so squaring cannot overflow or
	// underflow inside Normalize.
	k := max(math32.Abs(r[m]), math32.Abs(r[n]))
	return Vec3{r[0] / k, r[1] / k, r[2] / k}.Normalize()
}

// ApproxEqual reports whether each component differs by less than eps.
func (v Vec3) ApproxEqual(o Vec3, eps float32) bool {
	return approx(v.X, o.X, eps) && approx(v.Y, o.Y, eps) && approx(v.Z, o.Z, eps)
}

func (v Vec3) vec4(w float32) Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w} }

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps
}
