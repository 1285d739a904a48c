// platform-fighter simulates a single player falling onto one-sided
// segment colliders and landing.
//
// Usage:
//
//	platform-fighter play                 - Open a window and run the demo stage
//	platform-fighter simulate --ticks N   - Run headless and print the final state
//
// Global flags:
//
//	--config <dir>     - Load physics.yaml and stages/ from a directory instead of the built-in set
//	--stage <name>     - Stage to load (default: demo)
//	--log-level <lvl>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ilan-segal/platform-fighter/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagStage     string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platform-fighter",
	Short: "Platform fighter physics sandbox",
	Long: `Runs a fixed-timestep platform physics simulation: a player falls under
gravity, collides with one-sided segment colliders and lands.

Examples:
  platform-fighter play
  platform-fighter simulate --ticks 600 --trace out.json
  platform-fighter play --config ./configs --stage demo`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: built-in configs)")
	rootCmd.PersistentFlags().StringVar(&flagStage, "stage", "demo", "Stage name under stages/")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platform-fighter",
		Level:           lvl,
	}), nil
}

// newLoader reads from dir when set, otherwise from the embedded configs.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys), nil
}

// setup resolves the global flags into a logger and a loaded config.
func setup() (*config.GameConfig, *log.Logger, error) {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll(flagStage)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
