// Package state holds the finite-state types of the game: the runtime's
// GameState and the player's hierarchical motion state machine.
package state

// GameState represents the current state of the runner
type GameState int

const (
	StateRunning GameState = iota
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Toggle flips between running and paused
func (s GameState) Toggle() GameState {
	if s == StatePaused {
		return StateRunning
	}
	return StatePaused
}
