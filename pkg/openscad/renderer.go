package openscad

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gourdf/pkg/stl"
)

// Renderer turns OpenSCAD sources into STL meshes using the openscad binary
type Renderer struct {
	workDir string
}

// NewRenderer creates a new OpenSCAD renderer
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
	}
}

// Available reports whether openscad can be found in PATH
func Available() bool {
	_, err := exec.LookPath("openscad")
	return err == nil
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(scadFile, outputFile string) error {
	absScadFile := scadFile
	if !filepath.IsAbs(scadFile) {
		absScadFile = filepath.Join(r.workDir, scadFile)
	}

	if !Available() {
		return fmt.Errorf("openscad not found in PATH. Please install OpenSCAD from https://openscad.org/")
	}

	cmd := exec.Command("openscad", "-o", outputFile, absScadFile)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		fmt.Fprintf(&errMsg, "failed to render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			errMsg.WriteString("\nstderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("\nstdout: ")
			errMsg.WriteString(stdout.String())
		}
		return fmt.Errorf("%s", errMsg.String())
	}

	return nil
}

// Render renders scadFile into a temporary STL file and parses it
func (r *Renderer) Render(scadFile string) (*stl.Model, error) {
	tmp, err := os.MkdirTemp("", "gourdf-scad-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	out := filepath.Join(tmp, strings.TrimSuffix(filepath.Base(scadFile), filepath.Ext(scadFile))+".stl")
	if err := r.RenderToSTL(scadFile, out); err != nil {
		return nil, err
	}
	return stl.Parse(out)
}
