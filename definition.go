package formstate

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Definition is the static transition table of a Machine as data, intended
// for documentation, debugging and visualization tooling. Dynamic behavior
// (the Perform handler, the BadTransition fallback, validation outcomes) is
// represented declaratively through the Guard and Fallback annotations,
// since the hooks themselves are opaque.
type Definition struct {
	Name        string   `json:"name" yaml:"name"`
	Initial     string   `json:"initial" yaml:"initial"`
	States      []string `json:"states" yaml:"states"`
	Events      []string `json:"events" yaml:"events"`
	Transitions []Rule   `json:"transitions" yaml:"transitions"`
	Fallback    string   `json:"fallback" yaml:"fallback"`
}

// Rule is a single row of the transition table. From "*" matches any
// state. Guard names the condition under which the row applies; Effect
// names the effect the row produces, empty when none.
type Rule struct {
	From   string `json:"from" yaml:"from"`
	Event  string `json:"event" yaml:"event"`
	To     string `json:"to" yaml:"to"`
	Guard  string `json:"guard,omitempty" yaml:"guard,omitempty"`
	Effect string `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// Definition exports the machine's transition table. The table is fixed
// for every machine; only the name varies with configuration.
func (m *Machine[O, F, C]) Definition() Definition {
	return Definition{
		Name:    m.name,
		Initial: PhaseUnloaded.String(),
		States: []string{
			PhaseUnloaded.String(),
			PhaseLoading.String(),
			PhaseDisplaying.String(),
			PhaseEditing.String(),
			PhaseFailed.String(),
		},
		Events: []string{
			"create", "display", "edit", "fail", "perform", "request", "save",
		},
		Transitions: []Rule{
			{From: "*", Event: "fail", To: "failed"},
			{From: "*", Event: "perform", To: "*", Guard: "delegated to Perform hook"},
			{From: "unloaded", Event: "create", To: "displaying"},
			{From: "unloaded", Event: "request", To: "loading"},
			{From: "unloaded", Event: "display", To: "displaying"},
			{From: "loading", Event: "display", To: "displaying"},
			{From: "displaying", Event: "edit", To: "editing"},
			{From: "editing", Event: "edit", To: "editing"},
			{From: "displaying", Event: "save", To: "displaying", Guard: "object valid", Effect: "save"},
			{From: "displaying", Event: "save", To: "editing", Guard: "object invalid"},
			{From: "editing", Event: "save", To: "editing", Guard: "object valid", Effect: "save"},
			{From: "editing", Event: "save", To: "editing", Guard: "object invalid"},
		},
		Fallback: "unmatched pairs delegate to BadTransition hook",
	}
}

// JSON encodes the definition as compact JSON.
func (d Definition) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// JSONIndent encodes the definition as indented JSON.
func (d Definition) JSONIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML encodes the definition as YAML.
func (d Definition) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
