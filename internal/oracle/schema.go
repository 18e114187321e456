package oracle

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema is a named, resolved JSON Schema that oracle responses must satisfy.
type Schema struct {
	name     string
	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved
}

// For infers a Schema from T. Every object property is marked required and
// unknown properties are tolerated; the optional customize funcs may further constrain the inferred schema
// (for example, adding enums) before it is resolved.
func For[T any](name string, customize ...func(*jsonschema.Schema)) (*Schema, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, fmt.Errorf("infer schema %s: %w", name, err)
	}

	relax(s)
	for _, fn := range customize {
		fn(s)
	}

	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve schema %s: %w", name, err)
	}

	return &Schema{
		name:     name,
		schema:   s,
		resolved: resolved,
	}, nil
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// JSON returns the indented JSON Schema document.
func (s *Schema) JSON() ([]byte, error) {
	return json.MarshalIndent(s.schema, "", "  ")
}

// Validate checks a JSON document against the schema.
func (s *Schema) Validate(data []byte) error {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decode instance: %w", err)
	}
	return s.resolved.Validate(instance)
}

// relax marks every declared property required and drops the inferred
// additionalProperties restriction, recursively.
func relax(s *jsonschema.Schema) {
	if s == nil {
		return
	}

	if len(s.Properties) > 0 {
		keys := make([]string, 0, len(s.Properties))
		for k, prop := range s.Properties {
			keys = append(keys, k)
			relax(prop)
		}
		slices.Sort(keys)
		s.Required = keys
		s.AdditionalProperties = nil
	}

	relax(s.Items)
}
