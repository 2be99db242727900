package formstate

import (
	"fmt"
	"strings"
)

// FieldError reports that a single field of the domain object failed
// validation and why.
type FieldError[F comparable] struct {
	Field   F
	Message string
}

// FieldErrors is an ordered collection of field errors. The order is the
// order the validator reported them in. An empty collection means the
// object validated successfully.
type FieldErrors[F comparable] []FieldError[F]

func (fe FieldErrors[F]) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, fmt.Sprintf("%v: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends an error for the given field.
func (fe *FieldErrors[F]) Add(field F, message string) {
	*fe = append(*fe, FieldError[F]{Field: field, Message: message})
}

// Has reports whether any error was recorded for the given field.
func (fe FieldErrors[F]) Has(field F) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages recorded for the given field, in order.
func (fe FieldErrors[F]) Get(field F) []string {
	var messages []string
	for _, err := range fe {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct fields with errors, in first-seen order.
func (fe FieldErrors[F]) Fields() []F {
	var fields []F
	seen := make(map[F]bool)
	for _, err := range fe {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (fe FieldErrors[F]) IsEmpty() bool {
	return len(fe) == 0
}

// Valid wraps an object that has passed validation. The transition engine
// only ever hands a Valid value to the configured save hook, so holding one
// is a structural witness that the wrapped object went through the
// validator, not a caller-checked precondition.
type Valid[O any] struct {
	value O
}

// Validated wraps an object as validated. Intended for Validator
// implementations; application code should have no reason to call it.
func Validated[O any](object O) Valid[O] {
	return Valid[O]{value: object}
}

// Value unwraps the validated object.
func (v Valid[O]) Value() O {
	return v.value
}

// Validator turns a domain object into either a validated wrapper or the
// ordered list of field errors explaining the rejection. Empty errors means
// success. Implementations must be deterministic and side-effect free.
//
// How validation rules are authored or composed is outside this package;
// only the capability surface the engine consumes is defined here.
type Validator[O any, F comparable] interface {
	Validate(object O) (Valid[O], FieldErrors[F])
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc[O any, F comparable] func(object O) (Valid[O], FieldErrors[F])

func (fn ValidatorFunc[O, F]) Validate(object O) (Valid[O], FieldErrors[F]) {
	return fn(object)
}
