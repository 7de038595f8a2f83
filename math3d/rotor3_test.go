package math3d

import (
	"math"
	"math/rand"
	"testing"
)

var (
	xAxis = V3(1, 0, 0)
	yAxis = V3(0, 1, 0)
	zAxis = V3(0, 0, 1)
)

func randUnit(rng *rand.Rand) Vec3 {
	for {
		v := V3(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
		if m := v.Magnitude(); m > 0.1 && m <= 1 {
			return v.Normalize()
		}
	}
}

func randRotor(rng *rand.Rand) Rotor3 {
	return NewRotor3Exact(randUnit(rng), randUnit(rng))
}

func TestIdentityRotorIsNoop(t *testing.T) {
	r := Rotor3Identity()
	for _, v := range []Vec3{V3(1, 1, 1), V3(-3, 0.5, 7), V3(0, 0, 0)} {
		if got := r.Rotate(v); !got.ApproxEqual(v, 1e-4) {
			t.Fatalf("identity rotated %v to %v", v, got)
		}
	}
}

func TestNoRotation(t *testing.T) {
	rotor := NewRotor3(xAxis, xAxis)
	v := rotor.Rotate(V3(1, 1, 1))
	if !v.ApproxEqual(V3(1, 1, 1), 1e-4) {
		t.Fatalf("rotated (1,1,1) to %v", v)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 32; i++ {
		a := randUnit(rng)
		p := randUnit(rng).Mul(3)
		if got := NewRotor3(a, a).Rotate(p); !got.ApproxEqual(p, 1e-4) {
			t.Fatalf("NewRotor3(%v,%v) moved %v to %v", a, a, p, got)
		}
	}
}

func TestNewRotor3DoublesAngle(t *testing.T) {
	// 90 degrees between the inputs turns x a half turn.
	v := NewRotor3(xAxis, yAxis).Rotate(xAxis)
	if !v.ApproxEqual(V3(-1, 0, 0), 1e-4) {
		t.Fatalf("rotated x to %v, want -x", v)
	}

	s := float32(math.Sqrt(0.5))
	v = NewRotor3(xAxis, V3(s, s, 0)).Rotate(xAxis)
	if !v.ApproxEqual(yAxis, 1e-4) {
		t.Fatalf("45 degree input rotated x to %v, want y", v)
	}
}

func TestDoubleRotationFix(t *testing.T) {
	v := NewRotor3Exact(xAxis, yAxis).Rotate(xAxis)
	if !v.ApproxEqual(yAxis, 1e-4) {
		t.Fatalf("rotated x to %v, want y", v)
	}
}

func TestDoubleRotationFix180(t *testing.T) {
	r := NewRotor3Exact(xAxis, V3(-1, 0, 0))
	v := r.Rotate(xAxis)
	if !v.ApproxEqual(V3(-1, 0, 0), 1e-4) {
		t.Fatalf("rotated x to %v, want -x", v)
	}
	if !r.IsUnit() {
		t.Fatalf("antiparallel rotor %v not unit", r)
	}

	for _, a := range []Vec3{yAxis, zAxis, V3(1, 1, 1).Normalize(), V3(0.1, -1, 9999).Normalize()} {
		if got := NewRotor3Exact(a, a.Neg()).Rotate(a); !got.ApproxEqual(a.Neg(), 1e-4) {
			t.Fatalf("antiparallel %v rotated to %v", a, got)
		}
	}
}

func TestDoubleRotationFixIncludesLowerBound(t *testing.T) {
	// a·b lands exactly on the lower edge of the antiparallel window.
	b := V3(-1-antiparallelEps, 0, 0)
	if d := xAxis.Dot(b); d != -1-antiparallelEps {
		t.Fatalf("dot=%v", d)
	}
	if got := NewRotor3Exact(xAxis, b).Rotate(xAxis); !got.ApproxEqual(V3(-1, 0, 0), 1e-4) {
		t.Fatalf("rotated x to %v, want -x", got)
	}
}

func TestNewRotor3ExactMapsAOntoB(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i++ {
		a, b := randUnit(rng), randUnit(rng)
		if got := NewRotor3Exact(a, b).Rotate(a); !got.ApproxEqual(b, 1e-4) {
			t.Fatalf("NewRotor3Exact(%v,%v) rotated a to %v", a, b, got)
		}
	}
}

func TestAppend(t *testing.T) {
	rotor := NewRotor3(xAxis, yAxis)
	rotor = rotor.Append(rotor)
	v := rotor.Rotate(xAxis)
	if !v.ApproxEqual(xAxis, 1e-5) {
		t.Fatalf("rotated x to %v", v)
	}
}

func TestAppendSelfEqualsTwice(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 32; i++ {
		r := randRotor(rng)
		twice := r.Rotate(r.Rotate(xAxis))
		if got := r.Append(r).Rotate(xAxis); !got.ApproxEqual(twice, 1e-5) {
			t.Fatalf("%v appended to itself gives %v, sequential %v", r, got, twice)
		}
	}
}

func TestCompositionOrder(t *testing.T) {
	zQuarter := NewRotor3Exact(xAxis, yAxis) // x -> y
	xQuarter := NewRotor3Exact(yAxis, zAxis) // y -> z

	// z first, then x: x -> y -> z.
	if got := zQuarter.Then(xQuarter).Rotate(xAxis); !got.ApproxEqual(zAxis, 1e-5) {
		t.Fatalf("Then rotated x to %v, want z", got)
	}
	// Append applies its argument first: x -> x -> y.
	if got := zQuarter.Append(xQuarter).Rotate(xAxis); !got.ApproxEqual(yAxis, 1e-5) {
		t.Fatalf("Append rotated x to %v, want y", got)
	}

	want := Rotor3{S: 0.5, XY: -0.5, YZ: -0.5, ZX: -0.5}
	if got := zQuarter.Append(xQuarter); !got.ApproxEqual(want, 1e-6) {
		t.Fatalf("product=%+v, want %+v", got, want)
	}
}

func TestThenMatchesSequentialRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 64; i++ {
		a, b := randRotor(rng), randRotor(rng)
		v := randUnit(rng).Mul(2)
		want := b.Rotate(a.Rotate(v))
		if got := a.Then(b).Rotate(v); !got.ApproxEqual(want, 1e-4) {
			t.Fatalf("a.Then(b) rotated %v to %v, want %v", v, got, want)
		}
	}
}

func TestInvertRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 64; i++ {
		r := randRotor(rng)
		v := V3(rng.Float32()*10-5, rng.Float32()*10-5, rng.Float32()*10-5)
		if got := r.Invert().Rotate(r.Rotate(v)); !got.ApproxEqual(v, 1e-3) {
			t.Fatalf("inverse round trip %v -> %v", v, got)
		}
		if got := r.Then(r.Invert()); !got.ApproxEqual(Rotor3Identity(), 1e-5) {
			t.Fatalf("r then r⁻¹ = %+v", got)
		}
	}

	r := Rotor3{S: 0.5, XY: 0.5, YZ: -0.5, ZX: 0.5}
	if got := r.Invert(); got != (Rotor3{S: 0.5, XY: -0.5, YZ: 0.5, ZX: -0.5}) {
		t.Fatalf("Invert=%+v", got)
	}
}

func TestRotateIsIsometry(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 64; i++ {
		r := randRotor(rng)
		a, b := randUnit(rng).Mul(3), randUnit(rng)
		ra, rb := r.Rotate(a), r.Rotate(b)
		if !approx(ra.Magnitude(), a.Magnitude(), 1e-4) {
			t.Fatalf("length changed: %v -> %v", a.Magnitude(), ra.Magnitude())
		}
		if !approx(ra.Dot(rb), a.Dot(b), 1e-4) {
			t.Fatalf("angle changed: %v -> %v", a.Dot(b), ra.Dot(rb))
		}
	}
}

func TestNormalizeRestoresUnit(t *testing.T) {
	r := Rotor3{S: 2, XY: 0, YZ: 0, ZX: 0}
	if got := r.Normalize(); got != Rotor3Identity() {
		t.Fatalf("Normalize=%+v", got)
	}

	r = Rotor3{S: 1, XY: 1, YZ: 1, ZX: 1}
	if r.IsUnit() {
		t.Fatal("IsUnit true for magnitude 2")
	}
	if got := r.Normalize(); !got.ApproxEqual(Rotor3{0.5, 0.5, 0.5, 0.5}, 1e-6) || !got.IsUnit() {
		t.Fatalf("Normalize=%+v", got)
	}
}

func TestChainedAppendWithNormalize(t *testing.T) {
	step := Rotor3FromAxisAngle(V3(1, 2, 3).Normalize(), float32(math.Pi/180))
	r := Rotor3Identity()
	for i := 1; i <= 360; i++ {
		r = r.Then(step)
		if i%32 == 0 {
			r = r.Normalize()
		}
	}
	r = r.Normalize()
	if !r.IsUnit() {
		t.Fatalf("rotor %+v drifted", r)
	}
	// A full turn is the rotor -1, which acts as the identity.
	v := V3(0.3, -2, 1)
	if got := r.Rotate(v); !got.ApproxEqual(v, 1e-3) {
		t.Fatalf("full turn moved %v to %v", v, got)
	}
}

func TestAxisAngle(t *testing.T) {
	quarter := float32(math.Pi / 2)
	table := []struct {
		axis     Vec3
		from, to Vec3
	}{
		{zAxis, xAxis, yAxis},
		{xAxis, yAxis, zAxis},
		{yAxis, zAxis, xAxis},
		{zAxis.Neg(), yAxis, xAxis},
	}
	for _, tc := range table {
		r := Rotor3FromAxisAngle(tc.axis, quarter)
		if got := r.Rotate(tc.from); !got.ApproxEqual(tc.to, 1e-5) {
			t.Errorf("axis %v: rotated %v to %v, want %v", tc.axis, tc.from, got, tc.to)
		}
		if got := NewRotor3Exact(tc.from, tc.to); !got.ApproxEqual(r, 1e-5) {
			t.Errorf("axis %v: exact rotor %+v, axis-angle %+v", tc.axis, got, r)
		}
	}
}

func TestRotationMatMatchesRotate(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 64; i++ {
		r := randRotor(rng)
		m := r.RotationMat()
		v := V3(rng.Float32()*4-2, rng.Float32()*4-2, rng.Float32()*4-2)
		if got, want := m.TransformPoint(v), r.Rotate(v); !got.ApproxEqual(want, 1e-4) {
			t.Fatalf("matrix maps %v to %v, rotor to %v", v, got, want)
		}
		h := m.MulVec4(Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
		if h.W != 1 {
			t.Fatalf("homogeneous w=%v", h.W)
		}
	}
}

func TestRotationMatColumnsAreRotatedAxes(t *testing.T) {
	r := NewRotor3Exact(V3(1, 1, 0).Normalize(), V3(0, 0.6, 0.8))
	m := r.RotationMat()
	cols := m.ColumnMajor()
	for c, axis := range []Vec3{xAxis, yAxis, zAxis} {
		got := V3(cols[c][0], cols[c][1], cols[c][2])
		if want := r.Rotate(axis); !got.ApproxEqual(want, 1e-5) {
			t.Fatalf("column %d=%v, want %v", c, got, want)
		}
		if cols[c][3] != 0 || cols[3][c] != 0 {
			t.Fatalf("column %d not homogeneous: %v", c, cols)
		}
	}
	if cols[3][3] != 1 {
		t.Fatalf("m[3][3]=%v", cols[3][3])
	}
	if got := Rotor3Identity().RotationMat(); got != Mat4Identity() {
		t.Fatalf("identity rotor matrix=%v", got)
	}
}

func TestRotationMatComposesWithMat4Mul(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	a, b := randRotor(rng), randRotor(rng)
	got := b.RotationMat().Mul(a.RotationMat())
	want := a.Then(b).RotationMat()
	if !got.ApproxEqual(want, 1e-4) {
		t.Fatalf("Mb·Ma=%v, M(a then b)=%v", got, want)
	}
}
