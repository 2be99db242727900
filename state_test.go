package formstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formstate"
)

func TestState(t *testing.T) {
	t.Parallel()

	t.Run("zero value is unloaded", func(t *testing.T) {
		t.Parallel()

		var state formstate.State[profile, string]
		assert.Equal(t, formstate.PhaseUnloaded, state.Phase())
		assert.Equal(t, formstate.Unloaded[profile, string](), state)
	})

	t.Run("accessors per variant", func(t *testing.T) {
		t.Parallel()

		displaying := formstate.Displaying[profile, string](profile{Name: "Ada"})
		assert.Equal(t, formstate.PhaseDisplaying, displaying.Phase())
		assert.Equal(t, profile{Name: "Ada"}, displaying.Object())
		assert.Empty(t, displaying.Errors())

		errs := formstate.FieldErrors[string]{{Field: "name", Message: "required"}}
		editing := formstate.Editing[profile, string](profile{}, errs)
		assert.Equal(t, formstate.PhaseEditing, editing.Phase())
		assert.Equal(t, errs, editing.Errors())

		failed := formstate.Failed[profile, string]("boom")
		assert.Equal(t, formstate.PhaseFailed, failed.Phase())
		assert.Equal(t, "boom", failed.Message())
		assert.Zero(t, failed.Object(), "failure discards the in-progress object")
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "unloaded", formstate.Unloaded[profile, string]().String())
		assert.Equal(t, "editing", formstate.Editing[profile, string](profile{}, nil).String())
		assert.Equal(t, "editing (1 validation errors)",
			formstate.Editing[profile, string](profile{}, formstate.FieldErrors[string]{{Field: "name", Message: "required"}}).String())
		assert.Equal(t, "failed: boom", formstate.Failed[profile, string]("boom").String())
	})

	t.Run("phase string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "loading", formstate.PhaseLoading.String())
		assert.Equal(t, "unknown", formstate.Phase(99).String())
	})
}

func TestEvent(t *testing.T) {
	t.Parallel()

	m := formstate.New(formstate.Config[profile, string, adminAction]{})

	t.Run("names", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "create", m.Create().Name())
		assert.Equal(t, "display", m.Display(profile{}).Name())
		assert.Equal(t, "edit", m.Edit("name").Name())
		assert.Equal(t, "fail", m.Fail("boom").Name())
		assert.Equal(t, "perform", m.Perform(adminAction{}).Name())
		assert.Equal(t, "request", m.Request().Name())
		assert.Equal(t, "save", m.Save().Name())
	})

	t.Run("payload accessors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, profile{Name: "Ada"}, m.Display(profile{Name: "Ada"}).Object())
		assert.Equal(t, "name", m.Edit("name").Field())
		assert.Equal(t, "boom", m.Fail("boom").Message())
		assert.Equal(t, adminAction{Kind: "archive"}, m.Perform(adminAction{Kind: "archive"}).Custom())
	})

	t.Run("zero event", func(t *testing.T) {
		t.Parallel()

		var ev formstate.Event[profile, string, adminAction]
		assert.True(t, ev.IsZero())
		assert.Equal(t, "", ev.Name())
		assert.Equal(t, "none", ev.String())
		assert.False(t, m.Create().IsZero())
	})
}
