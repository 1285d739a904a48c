package system

import (
	"github.com/ilan-segal/platform-fighter/internal/ecs"
	"github.com/ilan-segal/platform-fighter/internal/infrastructure/config"
)

// PhysicsSystem runs the fixed-timestep integrator
type PhysicsSystem struct {
	config *config.PhysicsConfig
	dt     float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		dt:     cfg.TickDuration(),
	}
}

// DT returns the fixed tick duration in seconds
func (s *PhysicsSystem) DT() float64 {
	return s.dt
}

// Update advances the world by one tick. The order is fixed:
// gravity, displacement through colliders, presentation sync, frame count.
func (s *PhysicsSystem) Update(w *ecs.World) {
	ecs.ApplyGravity(w, s.dt)
	ecs.ApplyDisplacement(w, s.dt)
	ecs.SyncTransforms(w)
	ecs.IncrementFrame(w)
}
