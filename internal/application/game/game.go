// Package game provides the runtime that drives the simulation at a fixed
// tick rate, both headless and as an ebiten.Game.
package game

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ilan-segal/platform-fighter/internal/application/state"
	"github.com/ilan-segal/platform-fighter/internal/application/system"
	"github.com/ilan-segal/platform-fighter/internal/application/trace"
	"github.com/ilan-segal/platform-fighter/internal/ecs"
	"github.com/ilan-segal/platform-fighter/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorCollider = color.RGBA{200, 200, 220, 255}
	colorNormal   = color.RGBA{100, 100, 200, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
)

const playerSize = 16

// Game owns the world and its systems and implements ebiten.Game.
type Game struct {
	world    *ecs.World
	physics  *system.PhysicsSystem
	motion   *system.MotionSystem
	recorder *trace.Recorder
	state    state.GameState
	screenW  int
	screenH  int
	logger   *log.Logger
}

// New builds the world from cfg and spawns the stage.
func New(cfg *config.GameConfig, logger *log.Logger) *Game {
	w := ecs.NewWorld()
	player := system.LoadStage(w, cfg.Stage, cfg.Physics, state.LogHooks(logger))

	logger.Info("stage loaded",
		"stage", cfg.Stage.ID,
		"colliders", w.CountColliders(),
		"player", player,
		"tickRate", cfg.Physics.Physics.TickRate,
	)

	return &Game{
		world:   w,
		physics: system.NewPhysicsSystem(cfg.Physics),
		motion:  system.NewMotionSystem(),
		state:   state.StateRunning,
		screenW: cfg.Physics.Display.ScreenWidth,
		screenH: cfg.Physics.Display.ScreenHeight,
		logger:  logger,
	}
}

// SetRecorder attaches a trace recorder fed after every tick
func (g *Game) SetRecorder(r *trace.Recorder) {
	g.recorder = r
}

// World returns the simulated world
func (g *Game) World() *ecs.World {
	return g.world
}

// State returns the runner state
func (g *Game) State() state.GameState {
	return g.state
}

// TogglePause pauses or resumes the simulation
func (g *Game) TogglePause() {
	g.state = g.state.Toggle()
	g.logger.Info("runner", "state", g.state, "frame", g.world.Frame)
}

// Step runs exactly one simulation tick, regardless of pause state.
func (g *Game) Step() {
	g.physics.Update(g.world)
	g.motion.Update(g.world)
	if g.recorder != nil {
		g.recorder.RecordFrame(g.world)
	}
}

// Run steps the simulation n times
func (g *Game) Run(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}

// Update advances one tick unless paused.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.TogglePause()
	}

	if g.state == state.StateRunning {
		g.Step()
	}
	return nil
}

// Draw outlines the colliders and the player.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	for c := range g.world.Colliders() {
		a, b := c.Endpoints()
		ax, ay := g.toScreen(a.X, a.Y)
		bx, by := g.toScreen(b.X, b.Y)
		vector.StrokeLine(screen, ax, ay, bx, by, 2, colorCollider, false)

		// Short tick on the blocking side
		cx, cy := g.toScreen(c.Centre.X, c.Centre.Y)
		nx, ny := g.toScreen(c.Centre.X+c.Normal.X*8, c.Centre.Y+c.Normal.Y*8)
		vector.StrokeLine(screen, cx, cy, nx, ny, 1, colorNormal, false)
	}

	for id := range g.world.IsPlayer {
		tf, ok := g.world.Transform[id]
		if !ok {
			continue
		}
		// The position is the player's feet.
		x, y := g.toScreen(tf.X, tf.Y)
		vector.FillRect(screen, x-playerSize/2, y-playerSize, playerSize, playerSize, colorPlayer, false)
	}

	status := fmt.Sprintf("frame %d  %s", g.world.Frame, g.state)
	if m, ok := g.world.Motion[g.world.PlayerID]; ok {
		status += "  " + m.State().String()
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// toScreen maps world coordinates (origin at centre, y up) to screen
// pixels (origin top-left, y down).
func (g *Game) toScreen(x, y float64) (float32, float32) {
	return float32(x + float64(g.screenW)/2), float32(float64(g.screenH)/2 - y)
}
