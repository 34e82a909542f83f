package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gourdf/pkg/analysis"
	"github.com/philipparndt/gourdf/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	infoDensity float64
	infoScale   float64
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display mass properties of an STL file",
	Long:  "Show dimensions, surface area, volume, mass, center of mass and inertia of a closed mesh.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64Var(&infoDensity, "density", 0, "Density in kg/m³ (default from configuration)")
	infoCmd.Flags().Float64Var(&infoScale, "scale", 0, "Mesh unit to meter factor (default from configuration)")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]
	cfg := loadConfig(cmd)
	if cmd.Flags().Changed("density") {
		cfg.Density = infoDensity
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = infoScale
	}

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(model.Scaled(cfg.Scale), cfg.Density)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics (meters):")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Surface Area: %.9g m²\n", result.SurfaceArea)
	fmt.Printf("  Dimensions: %s\n", analysis.FormatVector(result.Dimensions))
	fmt.Printf("  Volume: %.9g m³\n\n", result.Mass.Volume)

	fmt.Printf("Mass Properties (density %g kg/m³):\n", cfg.Density)
	fmt.Printf("  Mass: %.9g kg\n", result.Mass.Mass)
	fmt.Printf("  Center of Mass: %s\n", analysis.FormatVector(result.Mass.CenterOfMass))
	fmt.Printf("  Inertia (origin): %s\n", analysis.FormatTensor(result.Mass.Origin))
	fmt.Printf("  Inertia (center of mass): %s\n", analysis.FormatTensor(result.CenterOfMassInertia))

	if result.Mass.Volume <= 0 {
		fmt.Println("\nWarning: the mesh does not enclose a positive volume; check that it is closed and outward facing.")
	}
}
