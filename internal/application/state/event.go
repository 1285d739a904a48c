package state

import "fmt"

// Event is a discrete player event fed into the motion machine.
// The set is closed: AdvanceFrame and Land.
type Event interface {
	isEvent()
	fmt.Stringer
}

// AdvanceFrame is emitted once per fixed tick
type AdvanceFrame struct {
	FrameCount uint32
}

func (AdvanceFrame) isEvent() {}

func (e AdvanceFrame) String() string {
	return fmt.Sprintf("AdvanceFrame{FrameCount: %d}", e.FrameCount)
}

// Land is emitted when the player touches down on a surface
type Land struct{}

func (Land) isEvent() {}

func (Land) String() string { return "Land" }
