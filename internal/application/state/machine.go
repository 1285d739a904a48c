package state

import "github.com/charmbracelet/log"

// Hooks are called by Machine.Dispatch. Either field may be nil.
type Hooks struct {
	// OnDispatch runs before the event is handled, once per Dispatch.
	OnDispatch func(state MotionState, ev Event)
	// OnTransition runs after the state has actually changed.
	OnTransition func(from, to MotionState)
}

// LogHooks returns hooks that trace dispatches and transitions to logger.
func LogHooks(logger *log.Logger) Hooks {
	return Hooks{
		OnDispatch: func(s MotionState, ev Event) {
			logger.Debug("dispatching", "event", ev, "state", s)
		},
		OnTransition: func(from, to MotionState) {
			logger.Info("transitioned", "from", from, "to", to)
		},
	}
}

// Machine is the player motion state machine. One per player entity.
type Machine struct {
	state    MotionState
	frame    uint32
	handlers [Idle + 1]Handler
	hooks    Hooks
}

// Option configures a Machine
type Option func(*Machine)

// WithHandler replaces the handler of one leaf state.
func WithHandler(s MotionState, h Handler) Option {
	return func(m *Machine) {
		if s.Valid() && h != nil {
			m.handlers[s] = h
		}
	}
}

// NewMachine creates a machine in the Falling state.
func NewMachine(hooks Hooks, opts ...Option) *Machine {
	m := &Machine{
		state:    Falling,
		handlers: [Idle + 1]Handler{Falling: falling, Landing: landing, Idle: idle},
		hooks:    hooks,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current leaf state
func (m *Machine) State() MotionState { return m.state }

// Frame returns the last frame count seen in an AdvanceFrame event
func (m *Machine) Frame() uint32 { return m.frame }

// Transition is a change of leaf state produced by Step.
type Transition struct {
	From, To MotionState
}

// Step is the transition function: it resolves ev against leaf state s and
// returns the next state, the transition if the state changed, and whether
// the leaf deferred ev to the superstate. It mutates nothing and runs no
// hooks.
func (m *Machine) Step(s MotionState, ev Event) (MotionState, *Transition, bool) {
	if !s.Valid() {
		return s, nil, true
	}

	resp := m.handlers[s](ev)
	switch {
	case resp.kind == deferred:
		return s, nil, true
	case resp.kind != transition || !resp.target.Valid() || resp.target == s:
		return s, nil, false
	}
	return resp.target, &Transition{From: s, To: resp.target}, false
}

// Dispatch feeds ev through the hierarchy. It never fails: an event the
// leaf defers is absorbed by the superstate.
func (m *Machine) Dispatch(ev Event) {
	if m.hooks.OnDispatch != nil {
		m.hooks.OnDispatch(m.state, ev)
	}

	next, tr, toSuper := m.Step(m.state, ev)
	if toSuper {
		m.superstate(ev)
	}
	m.state = next

	if tr != nil && m.hooks.OnTransition != nil {
		m.hooks.OnTransition(tr.From, tr.To)
	}
}

// superstate is the Motion handler. It keeps the frame count and
// otherwise absorbs everything.
func (m *Machine) superstate(ev Event) {
	switch e := ev.(type) {
	case AdvanceFrame:
		m.frame = e.FrameCount
	}
}
