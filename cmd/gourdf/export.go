package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/philipparndt/gourdf/internal/config"
	"github.com/philipparndt/gourdf/internal/export"
	"github.com/philipparndt/gourdf/pkg/openscad"
	"github.com/philipparndt/gourdf/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOutput  string
	exportRobot   string
	exportDensity float64
	exportScale   float64
	exportMeshDir string
	exportWatch   bool
	exportSCAD    bool
)

var exportCmd = &cobra.Command{
	Use:   "export [source-dir]",
	Short: "Export every body below a directory as meshes plus a URDF file",
	Long: `Treat every STL file below the source directory as a body whose label is its
relative path. Bodies are grouped by sanitized name, written as binary STL into
<output>/meshes and described in <output>/<robot>.urdf with inertial properties
about each component's center of mass.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", ".", "Output folder")
	exportCmd.Flags().StringVarP(&exportRobot, "robot", "r", "", "Robot name (default from configuration)")
	exportCmd.Flags().Float64Var(&exportDensity, "density", 0, "Density in kg/m³ (default from configuration)")
	exportCmd.Flags().Float64Var(&exportScale, "scale", 0, "Mesh unit to meter factor (default from configuration)")
	exportCmd.Flags().StringVar(&exportMeshDir, "mesh-dir", "", "Mesh folder below the output folder (default from configuration)")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "Export again whenever a mesh changes")
	exportCmd.Flags().BoolVar(&exportSCAD, "scad", false, "Also render OpenSCAD files as bodies (requires openscad)")
}

// applyExportFlags lets explicitly set flags override the configuration
func applyExportFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("robot") {
		cfg.Robot = exportRobot
	}
	if flags.Changed("density") {
		cfg.Density = exportDensity
	}
	if flags.Changed("scale") {
		cfg.Scale = exportScale
	}
	if flags.Changed("mesh-dir") {
		cfg.MeshDir = exportMeshDir
	}
	return cfg
}

func runExport(cmd *cobra.Command, args []string) {
	log := setupLogger(debug)
	defer func() { _ = log.Sync() }()

	cfg := applyExportFlags(cmd, loadConfig(cmd))
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := export.DirSource{Root: args[0]}
	if exportSCAD {
		src.SCAD = openscad.NewRenderer(src.Root)
	}
	if within(exportOutput, src.Root) {
		fmt.Fprintf(os.Stderr, "Error: output folder %s must not be inside the source folder %s\n", exportOutput, src.Root)
		os.Exit(1)
	}
	exporter := export.New(cfg, exportOutput, log)

	ok := runOnce(ctx, exporter, src, log)
	if !exportWatch {
		if !ok {
			os.Exit(1)
		}
		return
	}

	if err := watchAndExport(ctx, exporter, src, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", src.Root, err)
		os.Exit(1)
	}
}

// within reports whether dir is parent or one of its descendants
func within(dir, parent string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absParent, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absParent, absDir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func runOnce(ctx context.Context, exporter *export.Exporter, src export.DirSource, log *zap.SugaredLogger) bool {
	result, err := exporter.Run(ctx, src)
	if result != nil && result.URDFPath != "" {
		fmt.Printf("Exported %d components to %s\n", len(result.Meshes), result.URDFPath)
	}
	if err != nil {
		log.Errorw("Export finished with errors", "error", err)
		return false
	}
	return true
}

func watchAndExport(ctx context.Context, exporter *export.Exporter, src export.DirSource, log *zap.SugaredLogger) error {
	tw, err := watcher.NewTreeWatcher(300*time.Millisecond, src.Matches)
	if err != nil {
		return err
	}
	defer tw.Close()

	tw.OnError = func(err error) {
		log.Warnw("Watcher error", "error", err)
	}
	if err := tw.Watch(src.Root); err != nil {
		return err
	}

	// exports never overlap
	var mu sync.Mutex
	tw.Start(func(changed []string) {
		mu.Lock()
		defer mu.Unlock()
		log.Infow("Meshes changed, exporting again", "files", changed)
		runOnce(ctx, exporter, src, log)
	})

	log.Infow("Watching for changes", "source", src.Root)
	<-ctx.Done()
	return nil
}
