package formstate

// Effect is an inert description of a side effect requested by a
// transition. The engine never executes effects; it returns them to a
// caller-controlled runtime which runs them and feeds their completion back
// in as a new event. A nil Effect means the transition requested nothing.
//
// The set of effects is open: callers define their own types (returned from
// the Save, Perform and BadTransition hooks) and key dispatch on Name.
type Effect interface {
	Name() string
}

// SaveEffect requests persistence of a validated object. It is the default
// effect produced by the Save rules when no Save hook is configured, and a
// convenient type for Save hooks to return.
type SaveEffect[O any] struct {
	valid Valid[O]
}

// NewSaveEffect builds a save effect carrying the validated object.
func NewSaveEffect[O any](valid Valid[O]) SaveEffect[O] {
	return SaveEffect[O]{valid: valid}
}

func (SaveEffect[O]) Name() string {
	return "save"
}

// Object returns the validated object to persist.
func (e SaveEffect[O]) Object() Valid[O] {
	return e.valid
}
