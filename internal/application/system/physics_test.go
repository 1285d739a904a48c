package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilan-segal/platform-fighter/internal/application/state"
	"github.com/ilan-segal/platform-fighter/internal/ecs"
	"github.com/ilan-segal/platform-fighter/internal/geom"
	"github.com/ilan-segal/platform-fighter/internal/infrastructure/config"
)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Display: config.DisplayConfig{ScreenWidth: 640, ScreenHeight: 480, Scale: 1},
		Physics: config.PhysicsSettings{
			TickRate:  60,
			Gravity:   100,
			FallSpeed: 400,
		},
	}
}

func createTestStage() *config.StageConfig {
	return &config.StageConfig{
		ID:          "test",
		PlayerSpawn: config.VectorConfig{X: 0, Y: 200},
		Colliders: []config.ColliderConfig{
			{
				Centre:  config.VectorConfig{X: 0, Y: -200},
				Normal:  config.VectorConfig{X: 0, Y: 1},
				Breadth: 400,
			},
		},
	}
}

func createTestWorld(t *testing.T, physics *config.PhysicsConfig, stage *config.StageConfig) (*ecs.World, ecs.EntityID) {
	t.Helper()
	w := ecs.NewWorld()
	id := LoadStage(w, stage, physics, state.Hooks{})
	require.NotZero(t, id)
	return w, id
}

func TestNewPhysicsSystem(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig())

	require.NotNil(t, sys)
	assert.InDelta(t, 1.0/60.0, sys.DT(), 1e-12)
}

func TestPhysicsSystem_UpdateOrder(t *testing.T) {
	cfg := createTestPhysicsConfig()
	w, id := createTestWorld(t, cfg, createTestStage())
	sys := NewPhysicsSystem(cfg)

	sys.Update(w)

	dt := sys.DT()
	// Gravity is applied before displacement within the same tick.
	assert.InDelta(t, -100*dt, w.Velocity[id].Y, 1e-12)
	assert.InDelta(t, 200-100*dt*dt, w.Position[id].Y, 1e-12)
	// Transform mirrors the resolved position.
	assert.Equal(t, w.Position[id].Y, w.Transform[id].Y)
	assert.Equal(t, w.Position[id].X, w.Transform[id].X)
	assert.Equal(t, ecs.FrameCounter(1), w.Frame)
}

func TestPhysicsSystem_GravityClamp(t *testing.T) {
	cfg := createTestPhysicsConfig()
	stage := createTestStage()
	stage.Colliders = nil
	w, id := createTestWorld(t, cfg, stage)
	sys := NewPhysicsSystem(cfg)

	for i := 0; i < 60*10; i++ {
		sys.Update(w)
		require.GreaterOrEqual(t, w.Velocity[id].Y, -400.0, "tick %d", i)
	}

	assert.Equal(t, -400.0, w.Velocity[id].Y)
	assert.Equal(t, ecs.FrameCounter(600), w.Frame)
}

// With one tick per second every quantity below is exactly representable.
func TestPhysicsSystem_FallThenRest(t *testing.T) {
	cfg := createTestPhysicsConfig()
	cfg.Physics.TickRate = 1
	cfg.Physics.Gravity = 8
	cfg.Physics.FallSpeed = 64
	stage := createTestStage()
	stage.PlayerSpawn = config.VectorConfig{X: 0, Y: -56}
	w, id := createTestWorld(t, cfg, stage)
	sys := NewPhysicsSystem(cfg)

	// Free fall: no collision for five ticks.
	expected := []float64{-64, -80, -104, -136, -176}
	for i, y := range expected {
		sys.Update(w)
		assert.Equal(t, y, w.Position[id].Y, "tick %d", i+1)
		assert.False(t, w.Movement[id].OnGround, "tick %d", i+1)
	}

	// Tick 6 crosses y=-200 half way through: snaps onto the floor.
	sys.Update(w)
	assert.Equal(t, -200.0, w.Position[id].Y)
	assert.True(t, w.Movement[id].Landed())

	// Further downward velocity is absorbed.
	for i := 0; i < 10; i++ {
		sys.Update(w)
		assert.Equal(t, -200.0, w.Position[id].Y)
		assert.Equal(t, -200.0, w.Transform[id].Y)
		assert.True(t, w.Movement[id].OnGround)
	}
	assert.Equal(t, -64.0, w.Velocity[id].Y)
}

func TestPhysicsSystem_RestsOnFloorAtSixtyHertz(t *testing.T) {
	cfg := createTestPhysicsConfig()
	w, id := createTestWorld(t, cfg, createTestStage())
	sys := NewPhysicsSystem(cfg)

	landedAt := -1
	for i := 1; i <= 600; i++ {
		prevY := w.Position[id].Y
		sys.Update(w)
		y := w.Position[id].Y

		require.LessOrEqual(t, y, prevY, "never moves up")
		require.GreaterOrEqual(t, y, -200.0-1e-9, "never sinks below the floor")
		if landedAt < 0 && w.Movement[id].OnGround {
			landedAt = i
		}
	}

	require.Greater(t, landedAt, 1, "falls freely before landing")
	assert.InDelta(t, -200.0, w.Position[id].Y, 1e-9)
}

func TestPhysicsSystem_MissesFloorOutsideBreadth(t *testing.T) {
	cfg := createTestPhysicsConfig()
	stage := createTestStage()
	stage.PlayerSpawn = config.VectorConfig{X: 201, Y: 200}
	w, id := createTestWorld(t, cfg, stage)
	sys := NewPhysicsSystem(cfg)

	for i := 0; i < 600; i++ {
		sys.Update(w)
	}

	assert.Less(t, w.Position[id].Y, -200.0)
	assert.Equal(t, 201.0, w.Position[id].X)
}

func TestPhysicsSystem_StaticCollidersUntouched(t *testing.T) {
	cfg := createTestPhysicsConfig()
	w, _ := createTestWorld(t, cfg, createTestStage())
	before := make(map[ecs.EntityID]geom.Collider, len(w.Collider))
	for id, c := range w.Collider {
		before[id] = c
	}

	sys := NewPhysicsSystem(cfg)
	for i := 0; i < 300; i++ {
		sys.Update(w)
	}

	assert.Equal(t, before, w.Collider)
}
