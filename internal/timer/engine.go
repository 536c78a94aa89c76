package timer

import (
	"errors"
	"fmt"
)

// State enumerates the engine lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// ErrInvalidTransition is the sentinel behind every guard failure.
var ErrInvalidTransition = errors.New("invalid transition")

// TransitionError reports a rejected operation. The engine state is
// untouched when one is returned.
type TransitionError struct {
	Op     string
	From   State
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s while %s: %s", e.Op, e.From, e.Reason)
	}
	return fmt.Sprintf("%s while %s", e.Op, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Snapshot is the externally observable engine state. It is handed out
// by value; holders cannot reach back into the engine.
type Snapshot struct {
	Hours     int
	Minutes   int
	Seconds   int
	Remaining int
	Running   bool
	Completed bool
}

// Observer receives a snapshot after every successful transition,
// exactly once per transition. It must not call back into the engine.
type Observer func(Snapshot)

// Engine is the countdown state machine. It is not safe for concurrent
// use; the driver serializes all calls (for the TUI that is the
// bubbletea update loop).
type Engine struct {
	spec      Spec
	remaining int
	state     State
	observer  Observer
}

// NewEngine returns an idle engine configured with spec. The spec is
// assumed to have passed Validate.
func NewEngine(spec Spec) *Engine {
	return &Engine{
		spec:      spec,
		remaining: spec.TotalSeconds(),
		state:     StateIdle,
	}
}

// SetObserver registers the single observer. Passing nil detaches it.
func (e *Engine) SetObserver(fn Observer) {
	e.observer = fn
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Spec returns the last accepted configuration.
func (e *Engine) Spec() Spec { return e.spec }

// Snapshot returns the current observable state by value.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Hours:     e.spec.Hours,
		Minutes:   e.spec.Minutes,
		Seconds:   e.spec.Seconds,
		Remaining: e.remaining,
		Running:   e.state == StateRunning,
		Completed: e.state == StateCompleted,
	}
}

// Configure validates and stores a new time configuration, resetting
// the remaining count to its total. Allowed while Idle or Completed;
// configuring a completed engine returns it to Idle. A validation or
// guard failure leaves the engine untouched and the observer silent.
func (e *Engine) Configure(hours, minutes, seconds int) error {
	if e.state != StateIdle && e.state != StateCompleted {
		return &TransitionError{Op: "configure", From: e.state}
	}
	spec, err := Validate(hours, minutes, seconds)
	if err != nil {
		return err
	}
	e.spec = spec
	e.remaining = spec.TotalSeconds()
	e.state = StateIdle
	e.notify()
	return nil
}

// Start begins the countdown from Idle or resumes it from Paused.
// Starting an empty configuration is refused so the timer cannot
// complete before its first tick.
func (e *Engine) Start() error {
	switch e.state {
	case StateIdle:
		if e.remaining == 0 {
			return &TransitionError{Op: "start", From: e.state, Reason: "nothing to count down"}
		}
	case StatePaused:
		// resume
	default:
		return &TransitionError{Op: "start", From: e.state}
	}
	e.state = StateRunning
	e.notify()
	return nil
}

// Pause suspends a running countdown. Outside Running it is a no-op.
func (e *Engine) Pause() {
	if e.state != StateRunning {
		return
	}
	e.state = StatePaused
	e.notify()
}

// Reset returns the engine to Idle with the remaining count restored
// from the stored configuration.
func (e *Engine) Reset() {
	e.remaining = e.spec.TotalSeconds()
	e.state = StateIdle
	e.notify()
}

// Tick consumes one one-second clock event. Outside Running it is
// ignored. The tick that drains the last second completes the timer.
func (e *Engine) Tick() {
	if e.state != StateRunning {
		return
	}
	switch {
	case e.remaining > 1:
		e.remaining--
	case e.remaining == 1:
		e.remaining = 0
		e.state = StateCompleted
	default:
		// Running with zero remaining is unreachable through Start's
		// guard; ignore rather than go negative.
		return
	}
	e.notify()
}

func (e *Engine) notify() {
	if e.observer != nil {
		e.observer(e.Snapshot())
	}
}
