package inertia

import (
	"github.com/philipparndt/gourdf/pkg/geometry"
	"github.com/philipparndt/gourdf/pkg/stl"
)

// MassProperties of a solid of uniform density.
type MassProperties struct {
	Volume       float64
	Mass         float64
	CenterOfMass geometry.Vector3
	// Origin is the inertia tensor about the mesh origin.
	Origin Tensor
}

// CenterOfMassTensor returns the inertia tensor about the center of mass.
func (p MassProperties) CenterOfMassTensor() Tensor {
	return ToCenterOfMassFrame(p.Origin, p.CenterOfMass, p.Mass)
}

// FromMesh integrates volume, first and second moments over the solid
// bounded by model using the divergence theorem (D. Eberly, "Polyhedral
// Mass Properties"). The mesh must be closed with outward facing winding.
// Inverted meshes report a negative volume.
func FromMesh(model *stl.Model, density float64) MassProperties {
	// 1, x, y, z, x², y², z², xy, yz, zx
	var intg [10]float64

	for _, tri := range model.Triangles {
		p0, p1, p2 := tri.V1, tri.V2, tri.V3
		d := p1.Sub(p0).Cross(p2.Sub(p0))

		f1x, f2x, f3x, g0x, g1x, g2x := subexpressions(p0.X, p1.X, p2.X)
		_, f2y, f3y, g0y, g1y, g2y := subexpressions(p0.Y, p1.Y, p2.Y)
		_, f2z, f3z, g0z, g1z, g2z := subexpressions(p0.Z, p1.Z, p2.Z)

		intg[0] += d.X * f1x
		intg[1] += d.X * f2x
		intg[2] += d.Y * f2y
		intg[3] += d.Z * f2z
		intg[4] += d.X * f3x
		intg[5] += d.Y * f3y
		intg[6] += d.Z * f3z
		intg[7] += d.X * (p0.Y*g0x + p1.Y*g1x + p2.Y*g2x)
		intg[8] += d.Y * (p0.Z*g0y + p1.Z*g1y + p2.Z*g2y)
		intg[9] += d.Z * (p0.X*g0z + p1.X*g1z + p2.X*g2z)
	}

	intg[0] /= 6
	for i := 1; i <= 3; i++ {
		intg[i] /= 24
	}
	for i := 4; i <= 6; i++ {
		intg[i] /= 60
	}
	for i := 7; i <= 9; i++ {
		intg[i] /= 120
	}

	props := MassProperties{
		Volume: intg[0],
		Mass:   intg[0] * density,
	}
	if intg[0] != 0 {
		props.CenterOfMass = geometry.NewVector3(intg[1], intg[2], intg[3]).Mul(1 / intg[0])
	}

	xx, yy, zz := intg[4], intg[5], intg[6]
	props.Origin = Tensor{
		(yy + zz) * density,
		(xx + zz) * density,
		(xx + yy) * density,
		-intg[7] * density,
		-intg[8] * density,
		-intg[9] * density,
	}
	return props
}

func subexpressions(w0, w1, w2 float64) (f1, f2, f3, g0, g1, g2 float64) {
	temp0 := w0 + w1
	f1 = temp0 + w2
	temp1 := w0 * w0
	temp2 := temp1 + w1*temp0
	f2 = temp2 + w2*f1
	f3 = w0*temp1 + w1*temp2 + w2*f2
	g0 = f2 + w0*(f1+w0)
	g1 = f2 + w1*(f1+w1)
	g2 = f2 + w2*(f1+w2)
	return
}
