package math3d

import "github.com/chewxy/math32"

// Rotor3 is s + xy·e12 + yz·e23 + zx·e31.
//
// Every operation assumes a unit rotor (s²+xy²+yz²+zx² ≈ 1). A rotor that has
// drifted away from unit length still rotates, but also scales.
type Rotor3 struct {
	S  float32 `json:"s"`
	XY float32 `json:"xy"`
	YZ float32 `json:"yz"`
	ZX float32 `json:"zx"`
}

// Rotor3Identity returns the rotor that leaves every vector unchanged.
func Rotor3Identity() Rotor3 {
	return Rotor3{S: 1}
}

// NewRotor3 returns the scalar and bivector parts of the geometric product
// b·a. The rotor rotates vectors by twice the angle from a to b, in the plane
// they span.
//
// a and b must be unit vectors.
func NewRotor3(a, b Vec3) Rotor3 {
	checkUnitPair("NewRotor3", a, b)

	return Rotor3{
		S:  b.X*a.X + b.Y*a.Y + b.Z*a.Z,
		XY: b.X*a.Y - b.Y*a.X,
		YZ: b.Y*a.Z - b.Z*a.Y,
		ZX: b.Z*a.X - b.X*a.Z,
	}
}

// NewRotor3Exact returns the rotor that rotates a onto b.
//
// It builds NewRotor3 from a and the unit bisector of a and b. When a and b
// are antiparallel the sum a+b vanishes, so any unit vector perpendicular to
// a serves as the bisector and the result is a half turn.
//
// a and b must be unit vectors.
func NewRotor3Exact(a, b Vec3) Rotor3 {
	checkUnitPair("NewRotor3Exact", a, b)

	var half Vec3
	if d := a.Dot(b); d >= -1-antiparallelEps && d < -1+antiparallelEps {
		half = a.Perpendicular()
	} else {
		sum := a.Add(b)
		half = sum.Div(sum.Magnitude())
	}
	return NewRotor3(a, half)
}

// Rotor3FromAxisAngle returns the rotor for a right-handed rotation of angle
// radians around a unit axis.
func Rotor3FromAxisAngle(axis Vec3, angle float32) Rotor3 {
	checkUnit("Rotor3FromAxisAngle", axis)

	sin, cos := math32.Sincos(angle / 2)
	return Rotor3{
		S:  cos,
		XY: -sin * axis.Z,
		YZ: -sin * axis.X,
		ZX: -sin * axis.Y,
	}
}

// Invert returns the reverse of r. For a unit rotor it is the inverse rotation.
func (r Rotor3) Invert() Rotor3 {
	r.XY = -r.XY
	r.YZ = -r.YZ
	r.ZX = -r.ZX
	return r
}

// Rotate returns R v R⁻¹.
func (r Rotor3) Rotate(v Vec3) Vec3 {
	tx := r.S*v.X + r.XY*v.Y - r.ZX*v.Z
	ty := r.S*v.Y - r.XY*v.X + r.YZ*v.Z
	tz := r.S*v.Z - r.YZ*v.Y + r.ZX*v.X
	txyz := r.XY*v.Z + r.YZ*v.X + r.ZX*v.Y

	return Vec3{
		X: tx*r.S + ty*r.XY - tz*r.ZX + txyz*r.YZ,
		Y: ty*r.S - tx*r.XY + tz*r.YZ + txyz*r.ZX,
		Z: tz*r.S + tx*r.ZX - ty*r.YZ + txyz*r.XY,
	}
}

// Append returns the rotor product of r and o.
//
// Under Rotate the product acts as o followed by r. Use Then to read the
// composition in application order. Chains of Append drift away from unit
// length; call Normalize periodically.
func (r Rotor3) Append(o Rotor3) Rotor3 {
	return Rotor3{
		S:  r.S*o.S - r.XY*o.XY - r.YZ*o.YZ - r.ZX*o.ZX,
		XY: r.S*o.XY + r.XY*o.S - r.YZ*o.ZX + r.ZX*o.YZ,
		YZ: r.S*o.YZ + r.YZ*o.S + r.XY*o.ZX - r.ZX*o.XY,
		ZX: r.S*o.ZX + r.ZX*o.S - r.XY*o.YZ + r.YZ*o.XY,
	}
}

// Then returns the rotor that rotates by r first and by next afterwards.
func (r Rotor3) Then(next Rotor3) Rotor3 {
	return next.Append(r)
}

func (r Rotor3) Magnitude() float32 {
	return math32.Sqrt(r.S*r.S + r.XY*r.XY + r.YZ*r.YZ + r.ZX*r.ZX)
}

// IsUnit reports whether r satisfies the unit-rotor invariant within 1e-4.
func (r Rotor3) IsUnit() bool {
	return isUnitMagnitude(r.Magnitude())
}

// Normalize returns r scaled back to unit length. r must not be zero.
func (r Rotor3) Normalize() Rotor3 {
	checkNonZeroRotor("Rotor3.Normalize", r)

	mag := r.Magnitude()
	r.S /= mag
	r.XY /= mag
	r.YZ /= mag
	r.ZX /= mag
	return r
}

// RotationMat returns the homogeneous matrix whose columns are the rotated
// basis vectors, so that RotationMat().TransformPoint(v) == Rotate(v).
//
// The entries are Rotate(e_i) expanded symbolically.
func (r Rotor3) RotationMat() Mat4 {
	s, xy, yz, zx := r.S, r.XY, r.YZ, r.ZX
	ss, xx, yy, zz := s*s, xy*xy, yz*yz, zx*zx

	return Mat4{
		ss - xx - zz + yy, 2 * (s*xy + yz*zx), 2 * (xy*yz - s*zx), 0,
		2 * (yz*zx - s*xy), ss - xx - yy + zz, 2 * (s*yz + xy*zx), 0,
		2 * (s*zx + xy*yz), 2 * (xy*zx - s*yz), ss - zz - yy + xx, 0,
		0, 0, 0, 1,
	}
}

func (r Rotor3) ApproxEqual(o Rotor3, eps float32) bool {
	return approx(r.S, o.S, eps) && approx(r.XY, o.XY, eps) &&
		approx(r.YZ, o.YZ, eps) && approx(r.ZX, o.ZX, eps)
}
