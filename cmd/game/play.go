package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/ilan-segal/platform-fighter/internal/application/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the stage in a window",
	Long: `Open a window and run the simulation at the configured tick rate.

Controls:
  Esc  - Pause / resume`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	g := game.New(cfg, logger)

	display := cfg.Physics.Display
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(cfg.Physics.Physics.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
