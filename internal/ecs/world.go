package ecs

import (
	"iter"
	"maps"
	"slices"

	"github.com/ilan-segal/platform-fighter/internal/application/state"
	"github.com/ilan-segal/platform-fighter/internal/geom"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position  map[EntityID]Position
	Velocity  map[EntityID]Velocity
	Gravity   map[EntityID]Gravity
	FallSpeed map[EntityID]FallSpeed
	Movement  map[EntityID]Movement
	Transform map[EntityID]Transform
	Collider  map[EntityID]geom.Collider
	Motion    map[EntityID]*state.Machine

	// Tags
	IsPlayer map[EntityID]struct{}

	// Resources
	Frame FrameCounter

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		Position:  make(map[EntityID]Position),
		Velocity:  make(map[EntityID]Velocity),
		Gravity:   make(map[EntityID]Gravity),
		FallSpeed: make(map[EntityID]FallSpeed),
		Movement:  make(map[EntityID]Movement),
		Transform: make(map[EntityID]Transform),
		Collider:  make(map[EntityID]geom.Collider),
		Motion:    make(map[EntityID]*state.Machine),
		IsPlayer:  make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Gravity, id)
	delete(w.FallSpeed, id)
	delete(w.Movement, id)
	delete(w.Transform, id)
	delete(w.Collider, id)
	delete(w.Motion, id)
	delete(w.IsPlayer, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity is dynamic (has Position) or static terrain
// (has Collider)
func (w *World) Exists(id EntityID) bool {
	if _, ok := w.Position[id]; ok {
		return true
	}
	_, ok := w.Collider[id]
	return ok
}

// PlayerSpec holds the physical constants of a player at spawn
type PlayerSpec struct {
	Spawn     geom.Vec2
	Gravity   float64 // units/s²
	FallSpeed float64 // units/s
}

// CreatePlayer creates a player entity with a fresh motion machine
func (w *World) CreatePlayer(spec PlayerSpec, hooks state.Hooks) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{spec.Spawn}
	w.Velocity[id] = Velocity{}
	w.Gravity[id] = Gravity(spec.Gravity)
	w.FallSpeed[id] = FallSpeed(spec.FallSpeed)
	w.Movement[id] = Movement{}
	w.Transform[id] = Transform{X: spec.Spawn.X, Y: spec.Spawn.Y}
	w.Motion[id] = state.NewMachine(hooks)
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// CreateCollider creates a static terrain entity owning c
func (w *World) CreateCollider(c geom.Collider) EntityID {
	id := w.NewEntity()
	w.Collider[id] = c
	return id
}

// Colliders yields every collider in creation order
func (w *World) Colliders() iter.Seq[geom.Collider] {
	ids := slices.Sorted(maps.Keys(w.Collider))
	return func(yield func(geom.Collider) bool) {
		for _, id := range ids {
			if !yield(w.Collider[id]) {
				return
			}
		}
	}
}

// MotionIDs returns the entities with a motion machine, in creation order
func (w *World) MotionIDs() []EntityID {
	return slices.Sorted(maps.Keys(w.Motion))
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() Position {
	return w.Position[w.PlayerID]
}

// CountColliders returns the number of static colliders
func (w *World) CountColliders() int {
	return len(w.Collider)
}
