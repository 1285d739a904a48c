package system

import (
	"github.com/ilan-segal/platform-fighter/internal/application/state"
	"github.com/ilan-segal/platform-fighter/internal/ecs"
	"github.com/ilan-segal/platform-fighter/internal/infrastructure/config"
)

// LoadStage spawns the stage's terrain colliders, in file order, and then
// the player at the spawn point. It returns the player's ID.
func LoadStage(w *ecs.World, stage *config.StageConfig, physics *config.PhysicsConfig, hooks state.Hooks) ecs.EntityID {
	for _, c := range stage.Colliders {
		w.CreateCollider(c.Collider())
	}

	return w.CreatePlayer(ecs.PlayerSpec{
		Spawn:     stage.PlayerSpawn.Vec(),
		Gravity:   physics.Physics.Gravity,
		FallSpeed: physics.Physics.FallSpeed,
	}, hooks)
}
