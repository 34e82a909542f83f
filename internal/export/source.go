package export

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gourdf/pkg/openscad"
	"github.com/philipparndt/gourdf/pkg/stl"
)

// Body is a solid found in the assembly tree
type Body interface {
	// FullPathName identifies the body's occurrence, e.g. "Robot v3:1/Arm v2:1"
	FullPathName() string
	Mesh() (*stl.Model, error)
}

// Source enumerates the bodies of an assembly
type Source interface {
	Bodies() ([]Body, error)
}

// DirSource treats every STL file below Root as one body. The body's label
// is its slash separated path relative to Root without the extension.
// With SCAD set, OpenSCAD files are rendered and included as well.
type DirSource struct {
	Root string
	SCAD *openscad.Renderer
}

type fileBody struct {
	label string
	path  string
}

func (b fileBody) FullPathName() string {
	return b.label
}

func (b fileBody) Mesh() (*stl.Model, error) {
	return stl.Parse(b.path)
}

type scadBody struct {
	label    string
	path     string
	renderer *openscad.Renderer
}

func (b scadBody) FullPathName() string {
	return b.label
}

func (b scadBody) Mesh() (*stl.Model, error) {
	path, err := filepath.Abs(b.path)
	if err != nil {
		return nil, err
	}
	return b.renderer.Render(path)
}

// IsMesh reports whether path names an STL file
func IsMesh(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".stl")
}

// IsSCAD reports whether path names an OpenSCAD file
func IsSCAD(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".scad")
}

// Matches reports whether a change to path affects the bodies of s
func (s DirSource) Matches(path string) bool {
	return IsMesh(path) || (s.SCAD != nil && IsSCAD(path))
}

// Bodies walks Root in lexical order
func (s DirSource) Bodies() ([]Body, error) {
	var bodies []Body
	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !s.Matches(path) {
			return nil
		}

		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return err
		}
		label := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
		if IsSCAD(path) {
			bodies = append(bodies, scadBody{label: label, path: path, renderer: s.SCAD})
		} else {
			bodies = append(bodies, fileBody{label: label, path: path})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.Root, err)
	}
	return bodies, nil
}
