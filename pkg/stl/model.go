package stl

import (
	"github.com/philipparndt/gourdf/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Merge appends the triangles of other, the way bodies of several
// occurrences are copied into one component
func (m *Model) Merge(other *Model) {
	m.Triangles = append(m.Triangles, other.Triangles...)
}

// Scaled returns a copy of the model with all vertices multiplied by f
func (m *Model) Scaled(f float64) *Model {
	scaled := &Model{
		Name:      m.Name,
		Triangles: make([]geometry.Triangle, len(m.Triangles)),
	}
	for i, triangle := range m.Triangles {
		scaled.Triangles[i] = triangle.Scaled(f)
	}
	return scaled
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
