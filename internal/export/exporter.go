// Package export copies the bodies of an assembly into per-component meshes
// and writes a robot description referencing them.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/philipparndt/gourdf/internal/config"
	"github.com/philipparndt/gourdf/internal/urdf"
	"github.com/philipparndt/gourdf/pkg/inertia"
	"github.com/philipparndt/gourdf/pkg/naming"
	"github.com/philipparndt/gourdf/pkg/stl"
	"github.com/philipparndt/gourdf/pkg/xmltree"
)

// Exporter writes meshes and the URDF file below OutDir
type Exporter struct {
	cfg    config.Config
	outDir string
	log    *zap.SugaredLogger
}

// Result lists what a run produced
type Result struct {
	URDFPath string
	Meshes   []string
	Robot    *urdf.Robot
}

// component collects the bodies that share one sanitized name
type component struct {
	name  string
	file  string
	model *stl.Model
}

// New creates an exporter
func New(cfg config.Config, outDir string, log *zap.SugaredLogger) *Exporter {
	return &Exporter{cfg: cfg, outDir: outDir, log: log}
}

// MeshDir returns the directory meshes are written to
func (e *Exporter) MeshDir() string {
	return filepath.Join(e.outDir, e.cfg.MeshDir)
}

// Run exports every body of src. A body that fails does not stop the
// others; all failures are returned joined together with whatever was
// produced.
func (e *Exporter) Run(ctx context.Context, src Source) (*Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := os.MkdirAll(e.MeshDir(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create mesh directory: %w", err)
	}

	bodies, err := src.Bodies()
	if err != nil {
		return nil, err
	}

	components, errs := e.collect(ctx, bodies)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Robot: &urdf.Robot{Name: e.cfg.Robot}}
	for _, comp := range components {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		link, path, err := e.exportComponent(comp)
		if err != nil {
			e.log.Warnw("Component export failed", "component", comp.name, "error", err)
			errs = append(errs, fmt.Errorf("component %s: %w", comp.name, err))
			continue
		}
		result.Meshes = append(result.Meshes, path)
		result.Robot.Links = append(result.Robot.Links, link)
	}

	if len(result.Robot.Links) > 1 && !result.Robot.HasBaseLink() {
		e.log.Warnw("No base_link body, links are not joined", "links", len(result.Robot.Links))
	}
	if len(result.Robot.Links) > 0 {
		result.URDFPath = filepath.Join(e.outDir, e.cfg.Robot+".urdf")
		if err := writeURDF(result.URDFPath, result.Robot); err != nil {
			errs = append(errs, err)
		} else {
			e.log.Infow("Wrote robot description", "path", result.URDFPath, "links", len(result.Robot.Links))
		}
	}

	return result, errors.Join(errs...)
}

// collect loads each body and merges bodies that map to the same name,
// keeping first-seen order
func (e *Exporter) collect(ctx context.Context, bodies []Body) ([]*component, []error) {
	var (
		ordered []*component
		byName  = make(map[string]*component)
		errs    []error
	)

	for _, body := range bodies {
		if ctx.Err() != nil {
			break
		}

		label := body.FullPathName()
		name := naming.Sanitize(label)
		if name == "" {
			errs = append(errs, fmt.Errorf("body %q: name is empty after sanitizing", label))
			continue
		}
		if name == naming.BaseLink && !strings.Contains(label, naming.BaseLink) {
			e.log.Warnw("Label folded into base_link", "body", label)
		}

		mesh, err := body.Mesh()
		if err != nil {
			e.log.Warnw("Skipping body", "body", label, "error", err)
			errs = append(errs, fmt.Errorf("body %q: %w", label, err))
			continue
		}

		comp, ok := byName[name]
		if !ok {
			comp = &component{
				name:  name,
				file:  naming.MeshFileName(label),
				model: stl.NewModel(naming.ComponentName(label)),
			}
			byName[name] = comp
			ordered = append(ordered, comp)
		} else {
			e.log.Debugw("Merging body into component", "body", label, "component", name)
		}
		comp.model.Merge(mesh)
	}
	return ordered, errs
}

func (e *Exporter) exportComponent(comp *component) (urdf.Link, string, error) {
	model := comp.model.Scaled(e.cfg.Scale)
	path := filepath.Join(e.MeshDir(), comp.file)

	e.log.Infow("Export file", "component", comp.name, "triangles", model.TriangleCount(), "path", path)
	if err := stl.WriteFile(path, model); err != nil {
		return urdf.Link{}, "", err
	}

	props := inertia.FromMesh(model, e.cfg.Density)
	if props.Volume <= 0 {
		e.log.Warnw("Mesh does not enclose a positive volume, mass properties are unreliable",
			"component", comp.name, "volume", props.Volume)
	}

	return urdf.Link{
		Name: comp.name,
		Mesh: urdf.MeshURI(e.cfg.PackageName(), filepath.ToSlash(e.cfg.MeshDir), comp.file),
		Inertial: urdf.Inertial{
			Mass:         props.Mass,
			CenterOfMass: props.CenterOfMass,
			Inertia:      props.CenterOfMassTensor(),
		},
	}, path, nil
}

func writeURDF(path string, robot *urdf.Robot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create robot description: %w", err)
	}
	if err := xmltree.WriteDocument(file, robot.Node()); err != nil {
		file.Close()
		return fmt.Errorf("failed to write robot description: %w", err)
	}
	return file.Close()
}
