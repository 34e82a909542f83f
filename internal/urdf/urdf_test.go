package urdf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gourdf/pkg/geometry"
	"github.com/philipparndt/gourdf/pkg/inertia"
	"github.com/philipparndt/gourdf/pkg/xmltree"
)

func TestRobotNode(t *testing.T) {
	robot := &Robot{
		Name: "arm",
		Links: []Link{{
			Name: "base_link",
			Mesh: MeshURI("arm_description", "meshes", "base_link.stl"),
			Inertial: Inertial{
				Mass:         1.25,
				CenterOfMass: geometry.NewVector3(0, -0.5, 0.125),
				Inertia:      inertia.Tensor{0.1, 0.2, 0.3, 0, -0.0001, 1e-7},
			},
		}},
	}

	want := `<robot name="arm">
  <link name="base_link">
    <inertial>
      <origin xyz="0 -0.5 0.125" rpy="0 0 0"/>
      <mass value="1.25"/>
      <inertia ixx="0.1" iyy="0.2" izz="0.3" ixy="0" iyz="-0.0001" ixz="1e-07"/>
    </inertial>
    <visual>
      <origin xyz="0 0 0" rpy="0 0 0"/>
      <geometry>
        <mesh filename="package://arm_description/meshes/base_link.stl"/>
      </geometry>
      <material name="silver"/>
    </visual>
    <collision>
      <origin xyz="0 0 0" rpy="0 0 0"/>
      <geometry>
        <mesh filename="package://arm_description/meshes/base_link.stl"/>
      </geometry>
    </collision>
  </link>
</robot>
`
	assert.Equal(t, want, xmltree.PrettyPrint(robot.Node()))
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "1 0 -2.5", FormatVector(geometry.NewVector3(1, math.Copysign(0, -1), -2.5)))
}

func TestLinkOrder(t *testing.T) {
	robot := &Robot{Name: "r", Links: []Link{{Name: "a"}, {Name: "b"}}}
	node := robot.Node()
	require.Len(t, node.Children, 2)
	name, _ := node.Children[1].GetAttr("name")
	assert.Equal(t, "b", name)
}

func TestFixedJointsToBaseLink(t *testing.T) {
	robot := &Robot{Name: "r", Links: []Link{{Name: "arm"}, {Name: "base_link"}, {Name: "gripper"}}}
	node := robot.Node()
	require.Len(t, node.Children, 5)

	want := `<joint name="arm_joint" type="fixed">
  <origin xyz="0 0 0" rpy="0 0 0"/>
  <parent link="base_link"/>
  <child link="arm"/>
</joint>
`
	assert.Equal(t, want, xmltree.PrettyPrint(node.Children[3]))

	joint := node.Children[4]
	assert.Equal(t, "joint", joint.Tag)
	parent, _ := joint.Find("parent").GetAttr("link")
	child, _ := joint.Find("child").GetAttr("link")
	assert.Equal(t, "base_link", parent)
	assert.Equal(t, "gripper", child)
}

func TestNoJointsWithoutBaseLink(t *testing.T) {
	robot := &Robot{Name: "r", Links: []Link{{Name: "a"}, {Name: "b"}}}
	assert.False(t, robot.HasBaseLink())
	assert.Nil(t, robot.Node().Find("joint"))
}
