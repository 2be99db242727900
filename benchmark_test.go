package formstate_test

import (
	"log/slog"
	"testing"

	"github.com/dmitrymomot/formstate"
)

func BenchmarkMachine_Apply(b *testing.B) {
	m := formstate.New(formstate.Config[profile, string, adminAction]{
		Default: profile{},
		Update: func(p profile, field string) profile {
			p.Name = "Ada"
			return p
		},
		Validator: formstate.ValidatorFunc[profile, string](requireName),
		Logger:    slog.New(slog.DiscardHandler),
	})

	state := m.Unloaded()
	create := m.Create()
	edit := m.Edit("name")
	save := m.Save()

	b.ResetTimer()

	for b.Loop() {
		// Cycle through the lifecycle: create, edit, save.
		next, _ := m.Apply(state, create)
		next, _ = m.Apply(next, edit)
		_, _ = m.Apply(next, save)
	}
}

func BenchmarkMachine_ApplyFallback(b *testing.B) {
	m := formstate.New(formstate.Config[profile, string, adminAction]{
		BadTransition: func(ev formstate.Event[profile, string, adminAction], s formstate.State[profile, string]) (formstate.State[profile, string], formstate.Effect) {
			return s, nil
		},
	})

	state := m.Loading()
	save := m.Save()

	b.ResetTimer()

	for b.Loop() {
		_, _ = m.Apply(state, save)
	}
}
