package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gourdf/pkg/analysis"
	"github.com/philipparndt/gourdf/pkg/geometry"
	"github.com/philipparndt/gourdf/pkg/inertia"
	"github.com/spf13/cobra"
)

var (
	inertiaTensor   []float64
	inertiaCOM      []float64
	inertiaMass     float64
	inertiaToOrigin bool
)

var inertiaCmd = &cobra.Command{
	Use:   "inertia",
	Short: "Move an inertia tensor between the origin and the center of mass",
	Long: `Apply the parallel-axis theorem to a tensor given as ixx,iyy,izz,ixy,iyz,ixz.
By default the tensor is taken about the origin and converted to the center of
mass frame. Use --to-origin for the opposite direction.`,
	Args: cobra.NoArgs,
	Run:  runInertia,
}

func init() {
	rootCmd.AddCommand(inertiaCmd)

	inertiaCmd.Flags().Float64SliceVarP(&inertiaTensor, "tensor", "t", nil, "Tensor components ixx,iyy,izz,ixy,iyz,ixz")
	inertiaCmd.Flags().Float64SliceVarP(&inertiaCOM, "com", "c", nil, "Center of mass x,y,z")
	inertiaCmd.Flags().Float64VarP(&inertiaMass, "mass", "m", 0, "Mass")
	inertiaCmd.Flags().BoolVar(&inertiaToOrigin, "to-origin", false, "Convert from the center of mass frame to the origin")
	_ = inertiaCmd.MarkFlagRequired("tensor")
	_ = inertiaCmd.MarkFlagRequired("com")
	_ = inertiaCmd.MarkFlagRequired("mass")
}

func runInertia(cmd *cobra.Command, args []string) {
	if len(inertiaTensor) != 6 {
		fmt.Fprintf(os.Stderr, "Error: --tensor needs 6 values, got %d\n", len(inertiaTensor))
		os.Exit(1)
	}
	if len(inertiaCOM) != 3 {
		fmt.Fprintf(os.Stderr, "Error: --com needs 3 values, got %d\n", len(inertiaCOM))
		os.Exit(1)
	}

	tensor := inertia.FromSlice(inertiaTensor)
	com := geometry.FromSlice(inertiaCOM)

	var result inertia.Tensor
	if inertiaToOrigin {
		result = inertia.FromCenterOfMassFrame(tensor, com, inertiaMass)
	} else {
		result = inertia.ToCenterOfMassFrame(tensor, com, inertiaMass)
	}
	fmt.Println(analysis.FormatTensor(result))
}
