package inertia

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/gourdf/pkg/geometry"
	"github.com/philipparndt/gourdf/pkg/stl"
)

func v(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

func tetrahedron() *stl.Model {
	model := stl.NewModel("tetra")
	for _, f := range [][3]geometry.Vector3{
		{v(0, 0, 0), v(0, 1, 0), v(1, 0, 0)},
		{v(0, 0, 0), v(1, 0, 0), v(0, 0, 1)},
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 0)},
		{v(1, 0, 0), v(0, 1, 0), v(0, 0, 1)},
	} {
		model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, f[0], f[1], f[2]))
	}
	return model
}

// unitCube returns [0,1]³ moved by offset, with outward winding.
func unitCube(offset geometry.Vector3) *stl.Model {
	quads := [][4]geometry.Vector3{
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)},
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)},
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)},
		{v(0, 1, 0), v(0, 1, 1), v(1, 1, 1), v(1, 1, 0)},
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)},
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)},
	}

	model := stl.NewModel("cube")
	for _, q := range quads {
		a, b, c, d := q[0].Add(offset), q[1].Add(offset), q[2].Add(offset), q[3].Add(offset)
		model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, b, c))
		model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, c, d))
	}
	return model
}

func assertTensor(t *testing.T, want, got Tensor) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d", i)
	}
}

func TestFromMeshTetrahedron(t *testing.T) {
	props := FromMesh(tetrahedron(), 1)

	assert.InDelta(t, 1.0/6, props.Volume, 1e-12)
	assert.InDelta(t, 1.0/6, props.Mass, 1e-12)
	assert.InDelta(t, 0.25, props.CenterOfMass.X, 1e-12)
	assert.InDelta(t, 0.25, props.CenterOfMass.Y, 1e-12)
	assert.InDelta(t, 0.25, props.CenterOfMass.Z, 1e-12)

	// ∫x² = 1/60 and ∫xy = 1/120 over the unit tetrahedron
	assertTensor(t, Tensor{1.0 / 30, 1.0 / 30, 1.0 / 30, -1.0 / 120, -1.0 / 120, -1.0 / 120}, props.Origin)

	// about the centroid
	assertTensor(t, Tensor{1.0 / 80, 1.0 / 80, 1.0 / 80, 1.0 / 480, 1.0 / 480, 1.0 / 480}, props.CenterOfMassTensor())
}

func TestFromMeshCube(t *testing.T) {
	props := FromMesh(unitCube(geometry.Vector3{}), 1000)

	assert.InDelta(t, 1.0, props.Volume, 1e-12)
	assert.InDelta(t, 1000.0, props.Mass, 1e-9)
	assertTensor(t, Tensor{2000.0 / 3, 2000.0 / 3, 2000.0 / 3, -250, -250, -250}, props.Origin)
	assertTensor(t, Tensor{1000.0 / 6, 1000.0 / 6, 1000.0 / 6, 0, 0, 0}, props.CenterOfMassTensor())
}

func TestFromMeshTranslationInvariance(t *testing.T) {
	offset := v(1, -2, 3)
	props := FromMesh(unitCube(offset), 1)

	assert.InDelta(t, 1.5, props.CenterOfMass.X, 1e-12)
	assert.InDelta(t, -1.5, props.CenterOfMass.Y, 1e-12)
	assert.InDelta(t, 3.5, props.CenterOfMass.Z, 1e-12)
	assertTensor(t, Tensor{1.0 / 6, 1.0 / 6, 1.0 / 6, 0, 0, 0}, props.CenterOfMassTensor())
}

func TestFromMeshEmpty(t *testing.T) {
	props := FromMesh(stl.NewModel("empty"), 1000)
	assert.Zero(t, props.Volume)
	assert.Zero(t, props.Mass)
	assert.Equal(t, geometry.Vector3{}, props.CenterOfMass)
	assert.Equal(t, Tensor{}, props.Origin)
}
