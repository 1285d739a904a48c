package system

import (
	"github.com/ilan-segal/platform-fighter/internal/application/state"
	"github.com/ilan-segal/platform-fighter/internal/ecs"
)

// MotionSystem turns physics results into player events
type MotionSystem struct{}

// NewMotionSystem creates a new motion system
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

// Update dispatches, per motion machine, Land on the tick the entity
// touched down and AdvanceFrame with the current frame count. Run it after
// PhysicsSystem.Update.
func (s *MotionSystem) Update(w *ecs.World) {
	for _, id := range w.MotionIDs() {
		m := w.Motion[id]

		if w.Movement[id].Landed() {
			m.Dispatch(state.Land{})
		}
		m.Dispatch(state.AdvanceFrame{FrameCount: uint32(w.Frame)})
	}
}
