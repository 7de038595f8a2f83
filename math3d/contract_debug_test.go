//go:build math3d_debug

package math3d

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := rec.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic %v, want %v", rec, target)
		}
	}()
	fn()
}

func TestContractPanics(t *testing.T) {
	expectPanic(t, ErrZeroVector, func() { (Vec3{}).Perpendicular() })
	expectPanic(t, ErrZeroVector, func() { (Vec3{}).Normalize() })
	expectPanic(t, ErrZeroRotor, func() { (Rotor3{}).Normalize() })
	expectPanic(t, ErrNotUnit, func() { NewRotor3(V3(2, 0, 0), V3(0, 1, 0)) })
	expectPanic(t, ErrNotUnit, func() { NewRotor3Exact(V3(1, 0, 0), V3(0, 1.01, 0)) })
	expectPanic(t, ErrNotUnit, func() { Rotor3FromAxisAngle(V3(0, 0, 3), 1) })
}

func TestContractsAcceptValidInputs(t *testing.T) {
	r := NewRotor3Exact(V3(1, 0, 0), V3(-1, 0, 0))
	if !r.IsUnit() {
		t.Fatalf("rotor %+v", r)
	}
	_ = V3(0, 0, -1).Perpendicular()
	_ = r.Append(r).Normalize()
}
