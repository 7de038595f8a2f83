package math3d

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	ErrNotUnit    = errors.New("math3d: vector is not normalized")
	ErrZeroVector = errors.New("math3d: zero vector")
	ErrZeroRotor  = errors.New("math3d: zero rotor")
)

const (
	// unitEps is the magnitude tolerance for unit inputs.
	unitEps = 1e-4
	// antiparallelEps is the window around a·b = -1 where NewRotor3Exact
	// switches to a perpendicular bisector.
	antiparallelEps = 1e-5
)

func isUnitMagnitude(mag float32) bool {
	return mag > 1-unitEps && mag < 1+unitEps
}

// The check helpers compile to nothing unless debugContracts is set by the
// math3d_debug build tag.

func checkUnit(op string, v Vec3) {
	if !debugContracts {
		return
	}
	if !v.IsUnit() {
		panic(fmt.Errorf("%s: %v has magnitude %g: %w", op, v, v.Magnitude(), ErrNotUnit))
	}
}

func checkUnitPair(op string, a, b Vec3) {
	if !debugContracts {
		return
	}
	checkUnit(op, a)
	checkUnit(op, b)
}

func checkNonZeroVec(op string, v Vec3) {
	if !debugContracts {
		return
	}
	if v == (Vec3{}) {
		panic(fmt.Errorf("%s: %w", op, ErrZeroVector))
	}
}

func checkNonZeroRotor(op string, r Rotor3) {
	if !debugContracts {
		return
	}
	if math32.Abs(r.S)+math32.Abs(r.XY)+math32.Abs(r.YZ)+math32.Abs(r.ZX) == 0 {
		panic(fmt.Errorf("%s: %w", op, ErrZeroRotor))
	}
}
