// Package formstate provides a generic finite-state machine governing the
// lifecycle of an editable, validatable data object in an interactive
// application (a form). Every form gets identical, predictable behavior
// around loading, editing, validating, saving and error reporting, so form
// logic reduces to a handful of pure data-transformation hooks supplied by
// the caller instead of control flow re-implemented per form.
//
// # Architecture
//
// The core is Machine.Apply, a pure, total transition function over five
// states (Unloaded, Loading, Displaying, Editing, Failed) and seven events
// (Create, Display, Edit, Fail, Perform, Request, Save). Apply maps
// (state, event) to (next state, effect) using only the caller-supplied
// Config; it holds no state between calls, performs no I/O, and never
// panics. Any (event, state) pair outside the transition table routes to
// the BadTransition hook, so unexpected events are observable and
// recoverable rather than fatal.
//
// Effects are inert descriptions, never performed actions. Apply returns
// an Effect value (nil for "nothing to do") and a caller-controlled
// runtime executes it and feeds its completion back in as the next event,
// typically Display on success or Fail on error. This keeps Apply
// unit-testable without mocking I/O.
//
// Validation is an opaque capability: a Validator turns an object into
// either a Valid wrapper or an ordered FieldErrors list. The Save hook is
// only ever invoked with a Valid value, a guarantee the transition
// function upholds structurally.
//
// # Usage
//
//	type profile struct{ Name string }
//
//	machine := formstate.New(formstate.Config[profile, string, string]{
//	    Name:    "profile",
//	    Default: profile{},
//	    Update: func(p profile, field string) profile {
//	        p.Name = readInput(field) // resolve the new value from input state
//	        return p
//	    },
//	    Validator: formstate.ValidatorFunc[profile, string](func(p profile) (formstate.Valid[profile], formstate.FieldErrors[string]) {
//	        var errs formstate.FieldErrors[string]
//	        if p.Name == "" {
//	            errs.Add("name", "required")
//	        }
//	        if !errs.IsEmpty() {
//	            return formstate.Valid[profile]{}, errs
//	        }
//	        return formstate.Validated(p), nil
//	    }),
//	})
//
//	state := machine.Unloaded()
//	state, _ = machine.Apply(state, machine.Create())
//	state, effect := machine.Apply(state, machine.Save())
//
// Runner wraps the dispatch loop for callers who want the serialization
// and effect plumbing handled: it owns the authoritative state, applies
// events one at a time from a single queue, hands effects to an injected
// Executor, and re-dispatches completion events.
//
// # Error Handling
//
// Validation errors are domain-level and recoverable: they ride inside the
// Editing state as FieldErrors and the user corrects fields and retries
// Save. Bad transitions go to the BadTransition hook, never dropped and
// never a fault. The Fail event is the explicit failure path: it discards
// the in-progress object and keeps only a message. These three channels
// are never conflated.
//
// # Concurrency
//
// Apply is synchronous and non-blocking. Events must be applied to the
// state returned by the immediately preceding call, so dispatch must be
// serialized per form instance; Runner implements exactly that with a
// single event queue. Machine and Config are immutable after New and safe
// to share across any number of form instances.
package formstate
