package formstate

type eventKind uint8

const (
	eventNone eventKind = iota
	eventCreate
	eventDisplay
	eventEdit
	eventFail
	eventPerform
	eventRequest
	eventSave
)

func (k eventKind) String() string {
	switch k {
	case eventCreate:
		return "create"
	case eventDisplay:
		return "display"
	case eventEdit:
		return "edit"
	case eventFail:
		return "fail"
	case eventPerform:
		return "perform"
	case eventRequest:
		return "request"
	case eventSave:
		return "save"
	default:
		return ""
	}
}

// Event is an input applied to a form State. There are seven constructors,
// exposed as methods on Machine so that the type parameters are inferred
// from the receiver: Create, Display, Edit, Fail, Perform, Request and Save.
//
// The zero value is the "no event" sentinel; an Executor returns it when an
// effect completion produces no follow-up event.
type Event[O any, F comparable, C any] struct {
	kind    eventKind
	object  O
	field   F
	message string
	custom  C
}

// Name returns the event constructor name ("create", "save", ...).
// The zero event returns the empty string.
func (e Event[O, F, C]) Name() string {
	return e.kind.String()
}

// IsZero reports whether the event is the "no event" sentinel.
func (e Event[O, F, C]) IsZero() bool {
	return e.kind == eventNone
}

// Object returns the payload of a Display event.
func (e Event[O, F, C]) Object() O {
	return e.object
}

// Field returns the payload of an Edit event.
func (e Event[O, F, C]) Field() F {
	return e.field
}

// Message returns the payload of a Fail event.
func (e Event[O, F, C]) Message() string {
	return e.message
}

// Custom returns the payload of a Perform event.
func (e Event[O, F, C]) Custom() C {
	return e.custom
}

func (e Event[O, F, C]) String() string {
	if e.kind == eventNone {
		return "none"
	}
	return e.kind.String()
}
