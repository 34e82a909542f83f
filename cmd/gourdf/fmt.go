package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/philipparndt/gourdf/pkg/xmltree"
	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Pretty-print an XML or URDF file",
	Long:  "Re-indent an XML document with two spaces per level and one element per line. Comments are dropped.",
	Args:  cobra.ExactArgs(1),
	Run:   runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write the result back to the file")
}

func runFmt(cmd *cobra.Command, args []string) {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	root, err := xmltree.Parse(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", filename, err)
		os.Exit(1)
	}

	if !fmtWrite {
		fmt.Print(xmltree.PrettyPrint(root))
		return
	}

	var buf bytes.Buffer
	if err := xmltree.WriteDocument(&buf, root); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", filename, err)
		os.Exit(1)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", filename, err)
		os.Exit(1)
	}
}
