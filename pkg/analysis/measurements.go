package analysis

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gourdf/pkg/geometry"
	"github.com/philipparndt/gourdf/pkg/inertia"
	"github.com/philipparndt/gourdf/pkg/stl"
)

// MeasurementResult contains the measurements of an STL model
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	Mass          inertia.MassProperties
	// CenterOfMassInertia is the tensor about the center of mass
	CenterOfMassInertia inertia.Tensor
}

// AnalyzeModel measures a model assuming uniform density
func AnalyzeModel(model *stl.Model, density float64) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
		Mass:          inertia.FromMesh(model, density),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.CenterOfMassInertia = result.Mass.CenterOfMassTensor()
	return result
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatTensor formats a tensor as labelled components
func FormatTensor(t inertia.Tensor) string {
	labels := [6]string{"ixx", "iyy", "izz", "ixy", "iyz", "ixz"}
	parts := make([]string, len(t))
	for i, value := range t {
		parts[i] = fmt.Sprintf("%s=%.9g", labels[i], value)
	}
	return strings.Join(parts, " ")
}
