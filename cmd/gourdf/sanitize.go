package main

import (
	"fmt"

	"github.com/philipparndt/gourdf/pkg/naming"
	"github.com/spf13/cobra"
)

var (
	sanitizeMesh      bool
	sanitizeComponent bool
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [label...]",
	Short: "Print the sanitized name of occurrence labels",
	Long:  "Map each label to the file and component name used during export, one per line.",
	Args:  cobra.MinimumNArgs(1),
	Run:   runSanitize,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)

	sanitizeCmd.Flags().BoolVarP(&sanitizeMesh, "mesh", "m", false, "Print the mesh file name instead")
	sanitizeCmd.Flags().BoolVarP(&sanitizeComponent, "component", "c", false, "Print the temporary component name instead")
}

func runSanitize(cmd *cobra.Command, args []string) {
	for _, label := range args {
		switch {
		case sanitizeMesh:
			fmt.Println(naming.MeshFileName(label))
		case sanitizeComponent:
			fmt.Println(naming.ComponentName(label))
		default:
			fmt.Println(naming.Sanitize(label))
		}
	}
}
