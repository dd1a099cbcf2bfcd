package blueprint

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML compiles a blueprint from a YAML mapping of field names to type
// tags or nested mappings:
//
//	firstName: string
//	age: int
//	address:
//	  zip: /^[0-9]{5}$/
//	tags: string[]?
func FromYAML(name string, data []byte, opts ...Option) (*Blueprint, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, name, err)
	}
	if schema == nil {
		schema = Schema{}
	}
	return New(name, schema, opts...)
}
