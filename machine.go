package formstate

import "log/slog"

// Config parameterizes a Machine over an arbitrary domain object type O,
// field identifier type F and custom event payload type C. It is supplied
// once per logical form type, owns no mutable state, and may be shared
// across any number of concurrent form instances.
//
// Every hook is optional. A rule whose hook is nil does not match and the
// event falls through to BadTransition, so the machine stays total over
// incomplete configs; a nil BadTransition logs the unmatched pair at warn
// level and leaves the state unchanged.
type Config[O any, F comparable, C any] struct {
	// Name identifies the form type in logs and in the exported
	// definition. Empty defaults to "form".
	Name string

	// Default is the object used when creating a brand-new form.
	Default O

	// Update produces a new object reflecting an edit of the given field.
	// The Edit event carries only the field identifier; Update is
	// responsible for resolving the new value, typically by closing over
	// whatever holds the caller's input state.
	Update func(object O, field F) O

	// Validator decides whether the current object may be saved.
	Validator Validator[O, F]

	// Save builds the persistence effect for a validated object. It is
	// only ever invoked with a validator-produced Valid value. Nil
	// defaults to NewSaveEffect.
	Save func(valid Valid[O]) Effect

	// Perform handles custom events. It receives the current state
	// untouched and fully owns the resulting state and effect.
	Perform func(custom C, state State[O, F]) (State[O, F], Effect)

	// BadTransition is invoked for every (event, state) pair not covered
	// by the transition table, letting the caller log or recover instead
	// of the pair being dropped.
	BadTransition func(event Event[O, F, C], state State[O, F]) (State[O, F], Effect)

	// Logger is used by the default BadTransition and by the Runner.
	// Nil defaults to slog.Default().
	Logger *slog.Logger
}

// Machine is the form transition engine for one form type. It holds no
// mutable state; all state lives in caller-held State values, so a single
// Machine is safe to share across goroutines and form instances.
type Machine[O any, F comparable, C any] struct {
	cfg    Config[O, F, C]
	name   string
	logger *slog.Logger
}

// New creates a transition engine from the given configuration.
func New[O any, F comparable, C any](cfg Config[O, F, C]) *Machine[O, F, C] {
	name := cfg.Name
	if name == "" {
		name = "form"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine[O, F, C]{cfg: cfg, name: name, logger: logger}
}

// Name returns the configured form type name.
func (m *Machine[O, F, C]) Name() string {
	return m.name
}

// Unloaded returns the initial state with the machine's type parameters.
func (m *Machine[O, F, C]) Unloaded() State[O, F] { return Unloaded[O, F]() }

// Loading returns the in-flight loading state.
func (m *Machine[O, F, C]) Loading() State[O, F] { return Loading[O, F]() }

// Displaying returns the state showing the given object.
func (m *Machine[O, F, C]) Displaying(object O) State[O, F] { return Displaying[O, F](object) }

// Editing returns the state editing the given object with recorded errors.
func (m *Machine[O, F, C]) Editing(object O, errs FieldErrors[F]) State[O, F] {
	return Editing[O, F](object, errs)
}

// Failed returns the error state with the given reason.
func (m *Machine[O, F, C]) Failed(message string) State[O, F] { return Failed[O, F](message) }

// Create requests a brand-new object from the configured default.
func (m *Machine[O, F, C]) Create() Event[O, F, C] {
	return Event[O, F, C]{kind: eventCreate}
}

// Display supplies an object to show as-is.
func (m *Machine[O, F, C]) Display(object O) Event[O, F, C] {
	return Event[O, F, C]{kind: eventDisplay, object: object}
}

// Edit reports that the given field was modified. The new value is
// resolved by the configured Update hook, not carried by the event.
func (m *Machine[O, F, C]) Edit(field F) Event[O, F, C] {
	return Event[O, F, C]{kind: eventEdit, field: field}
}

// Fail forces a transition to the Failed state.
func (m *Machine[O, F, C]) Fail(message string) Event[O, F, C] {
	return Event[O, F, C]{kind: eventFail, message: message}
}

// Perform routes a caller-defined payload to the configured Perform hook.
func (m *Machine[O, F, C]) Perform(custom C) Event[O, F, C] {
	return Event[O, F, C]{kind: eventPerform, custom: custom}
}

// Request begins loading an object asynchronously.
func (m *Machine[O, F, C]) Request() Event[O, F, C] {
	return Event[O, F, C]{kind: eventRequest}
}

// Save validates the current object and, on success, requests persistence.
func (m *Machine[O, F, C]) Save() Event[O, F, C] {
	return Event[O, F, C]{kind: eventSave}
}

// Apply computes the transition for an event against a state, returning
// the next state and the effect to run (nil when none). It is a pure,
// total function: defined for every (event, state) pair, it never panics
// and performs no I/O. Unmatched pairs route to BadTransition.
//
// Fail and Perform are matched against any current state ahead of the
// state-specific rules, so both remain available escape hatches at every
// point of the lifecycle.
//
// Events must be applied to the state returned by the immediately
// preceding call; serializing dispatch is the caller's duty (see Runner).
func (m *Machine[O, F, C]) Apply(state State[O, F], event Event[O, F, C]) (State[O, F], Effect) {
	switch event.kind {
	case eventFail:
		return Failed[O, F](event.message), nil
	case eventPerform:
		if m.cfg.Perform == nil {
			return m.fallback(event, state)
		}
		return m.cfg.Perform(event.custom, state)
	}

	switch state.phase {
	case PhaseUnloaded:
		switch event.kind {
		case eventCreate:
			return Displaying[O, F](m.cfg.Default), nil
		case eventRequest:
			return Loading[O, F](), nil
		case eventDisplay:
			return Displaying[O, F](event.object), nil
		}

	case PhaseLoading:
		if event.kind == eventDisplay {
			return Displaying[O, F](event.object), nil
		}

	case PhaseDisplaying:
		switch event.kind {
		case eventEdit:
			if m.cfg.Update == nil {
				break
			}
			return Editing[O, F](m.cfg.Update(state.object, event.field), nil), nil
		case eventSave:
			if m.cfg.Validator == nil {
				break
			}
			valid, errs := m.cfg.Validator.Validate(state.object)
			if len(errs) > 0 {
				return Editing[O, F](state.object, errs), nil
			}
			// Successful save keeps the object on screen; the form only
			// leaves Displaying when a later Display event (typically the
			// save effect's completion) supplies an object explicitly.
			return state, m.saveEffect(valid)
		}

	case PhaseEditing:
		switch event.kind {
		case eventEdit:
			if m.cfg.Update == nil {
				break
			}
			// Prior errors are discarded: they described the
			// last-validated object, not the one being edited now.
			return Editing[O, F](m.cfg.Update(state.object, event.field), nil), nil
		case eventSave:
			if m.cfg.Validator == nil {
				break
			}
			valid, errs := m.cfg.Validator.Validate(state.object)
			if len(errs) > 0 {
				return Editing[O, F](state.object, errs), nil
			}
			return Editing[O, F](state.object, nil), m.saveEffect(valid)
		}
	}

	return m.fallback(event, state)
}

func (m *Machine[O, F, C]) saveEffect(valid Valid[O]) Effect {
	if m.cfg.Save != nil {
		return m.cfg.Save(valid)
	}
	return NewSaveEffect(valid)
}

func (m *Machine[O, F, C]) fallback(event Event[O, F, C], state State[O, F]) (State[O, F], Effect) {
	if m.cfg.BadTransition != nil {
		return m.cfg.BadTransition(event, state)
	}

	m.logger.Warn("unhandled form transition",
		slog.String("form", m.name),
		slog.String("event", event.Name()),
		slog.String("phase", state.phase.String()))

	return state, nil
}
