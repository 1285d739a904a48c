package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ilan-segal/platform-fighter/internal/application/game"
	"github.com/ilan-segal/platform-fighter/internal/application/trace"
	"github.com/ilan-segal/platform-fighter/internal/infrastructure/config"
)

var (
	flagTicks int
	flagTrace string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Step the simulation a fixed number of ticks without a window and log the
player's final state. With --trace, every tick's player state is written
to a JSON file.

Examples:
  platform-fighter simulate --ticks 300
  platform-fighter simulate --ticks 600 --trace run.json --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simulateCmd.Flags().StringVar(&flagTrace, "trace", "", "Write a per-tick trace to this file")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	_, err = simulate(cfg, logger, flagTicks, flagTrace)
	return err
}

// simulate runs ticks steps and optionally saves a trace to tracePath.
func simulate(cfg *config.GameConfig, logger *log.Logger, ticks int, tracePath string) (*game.Game, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("ticks must be positive, got %d", ticks)
	}

	g := game.New(cfg, logger)

	var recorder *trace.Recorder
	if tracePath != "" {
		recorder = trace.NewRecorder(cfg.Stage.ID, cfg.Physics.Physics.TickRate)
		g.SetRecorder(recorder)
	}

	g.Run(ticks)

	w := g.World()
	pos := w.GetPlayerPosition()
	fields := []any{"frame", w.Frame, "x", pos.X, "y", pos.Y}
	if mv, ok := w.Movement[w.PlayerID]; ok {
		fields = append(fields, "onGround", mv.OnGround)
	}
	if m, ok := w.Motion[w.PlayerID]; ok {
		fields = append(fields, "state", m.State())
	}
	logger.Info("simulation finished", fields...)

	if recorder != nil {
		if err := recorder.Save(tracePath); err != nil {
			return nil, fmt.Errorf("failed to save trace: %w", err)
		}
		logger.Info("trace saved", "file", tracePath, "frames", recorder.FrameCount())
	}

	return g, nil
}
