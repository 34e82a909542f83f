package main

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipparndt/gourdf/internal/config"
	"github.com/philipparndt/gourdf/version"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "gourdf",
	Short: "Export assembly bodies as meshes and a robot description",
	Long: `gourdf turns a tree of solid bodies into per-component binary STL meshes
and a URDF robot description with inertial properties about each body's
center of mass. It also exposes the naming, inertia and XML helpers it is
built on.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "Path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339))
	}
	cfg.EncoderConfig.TimeKey = "ts"
	logger, err := cfg.Build()
	if err != nil {
		stdlog.Fatalf("failed to set up logger: %v", err)
	}
	return logger.Sugar()
}

// loadConfig reads the configuration file. The default file is optional,
// an explicitly passed one is not.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
