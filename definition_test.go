package formstate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formstate"
)

func TestMachine_Definition(t *testing.T) {
	t.Parallel()

	m := formstate.New(formstate.Config[profile, string, adminAction]{Name: "signup"})
	def := m.Definition()

	t.Run("table shape", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "signup", def.Name)
		assert.Equal(t, "unloaded", def.Initial)
		assert.Equal(t, []string{"unloaded", "loading", "displaying", "editing", "failed"}, def.States)
		assert.Equal(t, []string{"create", "display", "edit", "fail", "perform", "request", "save"}, def.Events)
		assert.Len(t, def.Transitions, 12)
		assert.NotEmpty(t, def.Fallback)
	})

	t.Run("universal rules come first", func(t *testing.T) {
		t.Parallel()

		require.GreaterOrEqual(t, len(def.Transitions), 2)
		assert.Equal(t, formstate.Rule{From: "*", Event: "fail", To: "failed"}, def.Transitions[0])
		assert.Equal(t, "*", def.Transitions[1].From)
		assert.Equal(t, "perform", def.Transitions[1].Event)
	})

	t.Run("save rules carry guard and effect annotations", func(t *testing.T) {
		t.Parallel()

		var saveRules []formstate.Rule
		for _, rule := range def.Transitions {
			if rule.Event == "save" {
				saveRules = append(saveRules, rule)
			}
		}
		require.Len(t, saveRules, 4)
		for _, rule := range saveRules {
			assert.NotEmpty(t, rule.Guard)
			if rule.Effect != "" {
				assert.Equal(t, "save", rule.Effect)
			}
		}
	})

	t.Run("unnamed machine defaults to form", func(t *testing.T) {
		t.Parallel()

		anon := formstate.New(formstate.Config[profile, string, adminAction]{})
		assert.Equal(t, "form", anon.Definition().Name)
	})
}

func TestDefinition_Encoding(t *testing.T) {
	t.Parallel()

	m := formstate.New(formstate.Config[profile, string, adminAction]{Name: "signup"})
	def := m.Definition()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		data, err := def.JSON()
		require.NoError(t, err)

		var decoded formstate.Definition
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, def, decoded)
	})

	t.Run("json indent", func(t *testing.T) {
		t.Parallel()

		data, err := def.JSONIndent()
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"name\": \"signup\"")
	})

	t.Run("yaml agrees with json on content", func(t *testing.T) {
		t.Parallel()

		data, err := def.YAML()
		require.NoError(t, err)

		var decoded formstate.Definition
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, def, decoded)
	})
}
