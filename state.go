package formstate

import "fmt"

// Phase identifies which of the five lifecycle variants a State holds.
type Phase uint8

const (
	PhaseUnloaded Phase = iota
	PhaseLoading
	PhaseDisplaying
	PhaseEditing
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseUnloaded:
		return "unloaded"
	case PhaseLoading:
		return "loading"
	case PhaseDisplaying:
		return "displaying"
	case PhaseEditing:
		return "editing"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the lifecycle state of a form over a domain object type O with
// field identifiers of type F. Exactly one variant is active at any time;
// the constructors below are the only way to produce coherent values, so a
// State can never hold, say, both an object and a failure message.
//
// The zero value is Unloaded. State values are immutable once constructed
// and safe to copy and share.
type State[O any, F comparable] struct {
	phase   Phase
	object  O
	errors  FieldErrors[F]
	message string
}

// Unloaded returns the initial state: nothing requested yet.
func Unloaded[O any, F comparable]() State[O, F] {
	return State[O, F]{phase: PhaseUnloaded}
}

// Loading returns the state for a data request in flight.
func Loading[O any, F comparable]() State[O, F] {
	return State[O, F]{phase: PhaseLoading}
}

// Displaying returns the state for a fully loaded, currently non-edited object.
func Displaying[O any, F comparable](object O) State[O, F] {
	return State[O, F]{phase: PhaseDisplaying, object: object}
}

// Editing returns the state for an object under active modification.
// The errors describe the last failed validation of that same object;
// pass nil when no validation has failed.
func Editing[O any, F comparable](object O, errs FieldErrors[F]) State[O, F] {
	return State[O, F]{phase: PhaseEditing, object: object, errors: errs}
}

// Failed returns the error state carrying a human-readable reason.
// The in-progress object, if any, is discarded.
func Failed[O any, F comparable](message string) State[O, F] {
	return State[O, F]{phase: PhaseFailed, message: message}
}

// Phase reports which variant the state holds.
func (s State[O, F]) Phase() Phase {
	return s.phase
}

// Object returns the held object. Meaningful only for Displaying and
// Editing states; other phases return the zero value of O.
func (s State[O, F]) Object() O {
	return s.object
}

// Errors returns the validation errors recorded against the held object.
// Non-empty only in an Editing state after a failed Save.
func (s State[O, F]) Errors() FieldErrors[F] {
	return s.errors
}

// Message returns the failure reason of a Failed state.
func (s State[O, F]) Message() string {
	return s.message
}

func (s State[O, F]) String() string {
	switch s.phase {
	case PhaseEditing:
		if len(s.errors) > 0 {
			return fmt.Sprintf("editing (%d validation errors)", len(s.errors))
		}
		return "editing"
	case PhaseFailed:
		return "failed: " + s.message
	default:
		return s.phase.String()
	}
}
