// Package inertia converts mass moments of inertia between reference frames
// and derives mass properties from closed triangle meshes.
package inertia

import "github.com/philipparndt/gourdf/pkg/geometry"

// Tensor is a symmetric inertia tensor in vector form:
// [Ixx, Iyy, Izz, Ixy, Iyz, Ixz].
type Tensor [6]float64

// Component indices of a Tensor.
const (
	XX = iota
	YY
	ZZ
	XY
	YZ
	XZ
)

// Translation returns the parallel-axis term for an offset of com from the
// reference origin, per unit mass.
func Translation(com geometry.Vector3) Tensor {
	x, y, z := com.X, com.Y, com.Z
	return Tensor{
		y*y + z*z,
		x*x + z*z,
		x*x + y*y,
		-x * y,
		-y * z,
		-x * z,
	}
}

// ToCenterOfMassFrame shifts a tensor taken about the reference origin to the
// frame at the center of mass: result[i] = t[i] - mass*T[i].
//
// Inputs are not validated. A negative mass or an inconsistent tensor
// yields a meaningless result rather than an error.
func ToCenterOfMassFrame(t Tensor, com geometry.Vector3, mass float64) Tensor {
	translation := Translation(com)
	var result Tensor
	for i := range t {
		result[i] = t[i] - mass*translation[i]
	}
	return result
}

// FromCenterOfMassFrame is the inverse of ToCenterOfMassFrame.
func FromCenterOfMassFrame(t Tensor, com geometry.Vector3, mass float64) Tensor {
	translation := Translation(com)
	var result Tensor
	for i := range t {
		result[i] = t[i] + mass*translation[i]
	}
	return result
}

// Slice returns the components as a slice, in tensor order.
func (t Tensor) Slice() []float64 {
	return t[:]
}

// FromSlice builds a tensor from the first six values of s.
func FromSlice(s []float64) Tensor {
	var t Tensor
	copy(t[:], s)
	return t
}
