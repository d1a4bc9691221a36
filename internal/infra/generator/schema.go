package generator

import "fmt"

// Schema is a minimal JSON-schema subset describing the expected shape of a
// structured generation response. It supports objects with required string or
// integer fields, arrays of objects, and nesting, which is enough to
// describe the workout plan and blog draft outputs.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// Object builds an object schema with the given properties, all required.
func Object(properties map[string]*Schema) *Schema {
	required := make([]string, 0, len(properties))
	for name := range properties {
		required = append(required, name)
	}
	return &Schema{Type: "object", Properties: properties, Required: required}
}

// Array builds an array schema with the given item shape.
func Array(items *Schema) *Schema {
	return &Schema{Type: "array", Items: items}
}

// String is the string field schema.
func String() *Schema { return &Schema{Type: "string"} }

// Integer is the integer field schema.
func Integer() *Schema { return &Schema{Type: "integer"} }

// Validate checks a decoded JSON value (as produced by encoding/json into
// any) against the schema. It reports the first violation found.
func (s *Schema) Validate(value any) error {
	return s.validate(value, "$")
}

func (s *Schema) validate(value any, path string) error {
	switch s.Type {
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %T", path, value)
		}
		for _, name := range s.Required {
			v, present := obj[name]
			if !present || v == nil {
				return fmt.Errorf("%s: missing required field %q", path, name)
			}
			if prop, hasProp := s.Properties[name]; hasProp {
				if err := prop.validate(v, path+"."+name); err != nil {
					return err
				}
			}
		}
	case "array":
		arr, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %T", path, value)
		}
		if s.Items != nil {
			for i, item := range arr {
				if err := s.Items.validate(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}
	case "string":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", path, value)
		}
		if str == "" {
			return fmt.Errorf("%s: string must not be empty", path)
		}
	case "integer":
		// encoding/json decodes all numbers as float64.
		num, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%s: expected integer, got %T", path, value)
		}
		if num != float64(int64(num)) {
			return fmt.Errorf("%s: expected integer, got fraction", path)
		}
	default:
		return fmt.Errorf("%s: unsupported schema type %q", path, s.Type)
	}
	return nil
}
