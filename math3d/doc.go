// Package math3d provides single-precision 3D vectors, 4x4 matrices and rotors.
//
// A Rotor3 is the even-grade part of 3D geometric algebra: a scalar plus three
// bivector components (xy, yz, zx). A unit rotor represents a rotation and is
// applied to vectors with the sandwich product R v R⁻¹.
//
// Matrices are row-major and use the column-vector convention: p' = M·p.
// ColumnMajor returns the transposed layout for column-major consumers.
//
// Preconditions:
//
// Several operations require unit or non-zero inputs (rotor construction,
// Normalize, Perpendicular). They are contracts, not checked errors. Building
// with the tag `math3d_debug` compiles in checks that panic with an error
// wrapping ErrNotUnit, ErrZeroVector or ErrZeroRotor. Without the tag the
// checks vanish and violations propagate NaN/Inf or a mis-scaled rotation.
package math3d
