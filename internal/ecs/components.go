package ecs

import "github.com/ilan-segal/platform-fighter/internal/geom"

// Position is the authoritative simulation-space location of a dynamic
// entity. Only the displacement system writes it.
type Position struct {
	geom.Vec2
}

// Velocity is in units per second. Y grows upward.
type Velocity struct {
	geom.Vec2
}

// Gravity is the downward acceleration magnitude (units/s²)
type Gravity float64

// FallSpeed caps the downward speed (units/s)
type FallSpeed float64

// Movement represents contact state derived from collision
type Movement struct {
	OnGround    bool // pushed up by a surface this tick
	WasOnGround bool // OnGround of the previous tick
}

// Landed reports whether the entity touched down this tick
func (m Movement) Landed() bool {
	return m.OnGround && !m.WasOnGround
}

// Transform is the render-side copy of Position. No interpolation.
type Transform struct {
	X, Y float64
}

// FrameCounter counts fixed ticks since the world was created
type FrameCounter uint32
