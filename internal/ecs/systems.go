package ecs

import "github.com/ilan-segal/platform-fighter/internal/geom"

// The systems below run once per fixed tick, in this order:
// ApplyGravity, ApplyDisplacement, SyncTransforms, IncrementFrame.

// ApplyGravity pulls every entity with Velocity and Gravity down by
// gravity*dt, then clamps the fall to its FallSpeed.
func ApplyGravity(w *World, dt float64) {
	for id, vel := range w.Velocity {
		g, ok := w.Gravity[id]
		if !ok {
			continue
		}

		vel.Y -= float64(g) * dt

		// Clamp to max fall speed
		if fs, ok := w.FallSpeed[id]; ok && vel.Y < -float64(fs) {
			vel.Y = -float64(fs)
		}

		w.Velocity[id] = vel
	}
}

// ApplyDisplacement moves every entity with Position and Velocity by
// velocity*dt through the colliders, and records ground contact in
// Movement.
func ApplyDisplacement(w *World, dt float64) {
	colliders := w.Colliders()

	for id, pos := range w.Position {
		vel, ok := w.Velocity[id]
		if !ok {
			continue
		}

		pushback, hit := geom.Displace(&pos.Vec2, vel.Mult(dt), colliders)
		w.Position[id] = pos

		if mov, ok := w.Movement[id]; ok {
			mov.WasOnGround = mov.OnGround
			mov.OnGround = hit && pushback.Y > 0
			w.Movement[id] = mov
		}
	}
}

// SyncTransforms copies Position into Transform (x, y only)
func SyncTransforms(w *World) {
	for id := range w.Transform {
		pos, ok := w.Position[id]
		if !ok {
			continue
		}
		w.Transform[id] = Transform{X: pos.X, Y: pos.Y}
	}
}

// IncrementFrame advances the frame counter by one
func IncrementFrame(w *World) {
	w.Frame++
}
