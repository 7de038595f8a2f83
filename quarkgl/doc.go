// Package quarkgl is a small software 3D renderer driven by math3d rotors.
//
// Meshes carry a position, a scale and a Rotor3 orientation. The model matrix
// is built from the rotor's rotation matrix, so an orientation can be spun,
// composed and renormalized as a rotor and only turned into a matrix once per
// frame.
//
// Pipeline (fixed):
//
//	Scene → Model (rotor) → View → Projection → Clipping → Rasterization → Target.
//
// The renderer draws into a caller-provided Target and avoids allocations in
// the render hot path. Matrices are row-major with column vectors.
package quarkgl
