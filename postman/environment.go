package postman

// EnvironmentScope is the variable scope tag stamped into generated
// environments.
const EnvironmentScope = "environment"

// Environment represents a Postman Environment v2 document.
type Environment struct {
	ID     string             `json:"id,omitempty"`
	Name   string             `json:"name"`
	Values []EnvironmentValue `json:"values"`
	Scope  string             `json:"_postman_variable_scope,omitempty"`
}

// EnvironmentValue is a single key/value variable entry.
type EnvironmentValue struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
	Type    string `json:"type,omitempty"`
}
