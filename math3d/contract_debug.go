//go:build math3d_debug

package math3d

const debugContracts = true
