package state

// MotionState is a leaf state of the player motion machine.
type MotionState int

const (
	Falling MotionState = iota
	Landing
	Idle
)

// String returns the string representation of the motion state
func (s MotionState) String() string {
	switch s {
	case Falling:
		return "Falling"
	case Landing:
		return "Landing"
	case Idle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the declared leaf states
func (s MotionState) Valid() bool {
	return s >= Falling && s <= Idle
}

// Superstate returns the parent of s. Every leaf nests under Motion.
func (s MotionState) Superstate() Superstate {
	return Motion
}

// Superstate is a fallback level of the hierarchy that handles whatever
// a leaf state defers.
type Superstate int

const (
	Motion Superstate = iota
)

func (s Superstate) String() string {
	if s == Motion {
		return "Motion"
	}
	return "Unknown"
}

type responseKind int

const (
	handled responseKind = iota
	deferred
	transition
)

// Response is what a state handler decides to do with an event.
type Response struct {
	kind   responseKind
	target MotionState
}

// Handled consumes the event without changing state.
func Handled() Response { return Response{kind: handled} }

// Super defers the event to the enclosing superstate.
func Super() Response { return Response{kind: deferred} }

// TransitionTo consumes the event and moves to target.
func TransitionTo(target MotionState) Response {
	return Response{kind: transition, target: target}
}

// Handler decides how a leaf state responds to an event.
type Handler func(ev Event) Response

// Leaf states have no rules of their own yet; every event goes to the
// superstate.
func falling(ev Event) Response {
	switch ev.(type) {
	default:
		return Super()
	}
}

func landing(ev Event) Response {
	switch ev.(type) {
	default:
		return Super()
	}
}

func idle(ev Event) Response {
	switch ev.(type) {
	default:
		return Super()
	}
}
