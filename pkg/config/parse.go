package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseRunYAML parses a Run from YAML bytes, applies defaults for optional
// fields and validates the result.
func ParseRunYAML(data []byte) (*Run, error) {
	var run Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to parse run yaml: %w", err)
	}

	run.ApplyDefaults()
	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}

	return &run, nil
}

// ParseRunYAMLString parses a Run from a YAML string and validates it.
func ParseRunYAMLString(yamlText string) (*Run, error) {
	return ParseRunYAML([]byte(yamlText))
}
