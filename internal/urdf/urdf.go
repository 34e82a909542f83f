// Package urdf builds the robot description written next to exported meshes.
package urdf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gourdf/pkg/geometry"
	"github.com/philipparndt/gourdf/pkg/inertia"
	"github.com/philipparndt/gourdf/pkg/naming"
	"github.com/philipparndt/gourdf/pkg/xmltree"
)

// Robot is the root of a description
type Robot struct {
	Name  string
	Links []Link
}

// Inertial holds mass properties about the link's center of mass
type Inertial struct {
	Mass         float64
	CenterOfMass geometry.Vector3
	Inertia      inertia.Tensor
}

// Link is one rigid body with its mesh and mass properties
type Link struct {
	Name     string
	Mesh     string
	Inertial Inertial
}

// Node converts the robot into an XML tree.
//
// Links come first, in order. When a link named base_link exists, every
// other link is attached to it with a fixed joint at the origin, since all
// meshes share the same frame. Without base_link no joints are written and
// a description with more than one link is not a connected tree.
func (r *Robot) Node() *xmltree.Node {
	root := xmltree.NewNode("robot").SetAttr("name", r.Name)
	for _, link := range r.Links {
		root.Append(link.node())
	}
	if !r.HasBaseLink() {
		return root
	}
	for _, link := range r.Links {
		if link.Name != naming.BaseLink {
			root.Append(fixedJoint(naming.BaseLink, link.Name))
		}
	}
	return root
}

// HasBaseLink reports whether one of the links is the root link
func (r *Robot) HasBaseLink() bool {
	for _, link := range r.Links {
		if link.Name == naming.BaseLink {
			return true
		}
	}
	return false
}

func fixedJoint(parent, child string) *xmltree.Node {
	return xmltree.NewNode("joint").
		SetAttr("name", child+"_joint").
		SetAttr("type", "fixed").
		Append(
			origin(geometry.Vector3{}),
			xmltree.NewNode("parent").SetAttr("link", parent),
			xmltree.NewNode("child").SetAttr("link", child),
		)
}

func (l Link) node() *xmltree.Node {
	in := l.Inertial
	t := in.Inertia
	inertial := xmltree.NewNode("inertial").Append(
		origin(in.CenterOfMass),
		xmltree.NewNode("mass").SetAttr("value", formatFloat(in.Mass)),
		xmltree.NewNode("inertia").
			SetAttr("ixx", formatFloat(t[inertia.XX])).
			SetAttr("iyy", formatFloat(t[inertia.YY])).
			SetAttr("izz", formatFloat(t[inertia.ZZ])).
			SetAttr("ixy", formatFloat(t[inertia.XY])).
			SetAttr("iyz", formatFloat(t[inertia.YZ])).
			SetAttr("ixz", formatFloat(t[inertia.XZ])),
	)

	return xmltree.NewNode("link").SetAttr("name", l.Name).Append(
		inertial,
		l.meshElement("visual").Append(
			xmltree.NewNode("material").SetAttr("name", "silver"),
		),
		l.meshElement("collision"),
	)
}

// meshElement builds a visual or collision element referencing the mesh.
// Meshes are exported in meters, so no scale attribute is needed.
func (l Link) meshElement(tag string) *xmltree.Node {
	return xmltree.NewNode(tag).Append(
		origin(geometry.Vector3{}),
		xmltree.NewNode("geometry").Append(
			xmltree.NewNode("mesh").SetAttr("filename", l.Mesh),
		),
	)
}

func origin(xyz geometry.Vector3) *xmltree.Node {
	return xmltree.NewNode("origin").
		SetAttr("xyz", FormatVector(xyz)).
		SetAttr("rpy", "0 0 0")
}

// FormatVector renders a vector as space separated components
func FormatVector(v geometry.Vector3) string {
	return strings.Join([]string{formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z)}, " ")
}

// formatFloat uses the shortest representation that parses back to f.
// Negative zero is printed as 0.
func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// MeshURI returns the package URI of a mesh file inside pkg
func MeshURI(pkg, meshDir, file string) string {
	return fmt.Sprintf("package://%s/%s/%s", pkg, meshDir, file)
}
