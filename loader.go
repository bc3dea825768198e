package linkage

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Model is a set of joint definitions, typically one robot description.
// The same document shape is accepted in JSON or YAML.
type Model struct {
	Name   string      `json:"name,omitempty" yaml:"name,omitempty"`
	Joints []JointSpec `json:"joints" yaml:"joints"`
}

// LoadModelJSON decodes a joint model from JSON.
func LoadModelJSON(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode joint model: %w", err)
	}
	return &m, nil
}

// LoadModelYAML decodes a joint model from YAML.
func LoadModelYAML(r io.Reader) (*Model, error) {
	var m Model
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode joint model: %w", err)
	}
	return &m, nil
}
