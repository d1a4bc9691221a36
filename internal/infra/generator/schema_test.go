package generator

import (
	"encoding/json"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("test fixture is not valid JSON: %v", err)
	}
	return v
}

func TestSchemaValidate(t *testing.T) {
	planSchema := Object(map[string]*Schema{
		"title": String(),
		"days": Array(Object(map[string]*Schema{
			"day":   Integer(),
			"focus": String(),
		})),
	})

	tests := []struct {
		name    string
		schema  *Schema
		input   string
		wantErr string
	}{
		{
			name:   "conformant document",
			schema: planSchema,
			input:  `{"title":"Push Pull Legs","days":[{"day":1,"focus":"push"}]}`,
		},
		{
			name:    "missing required field",
			schema:  planSchema,
			input:   `{"days":[{"day":1,"focus":"push"}]}`,
			wantErr: `missing required field "title"`,
		},
		{
			name:    "null counts as missing",
			schema:  planSchema,
			input:   `{"title":null,"days":[]}`,
			wantErr: `missing required field "title"`,
		},
		{
			name:    "nested violation is path annotated",
			schema:  planSchema,
			input:   `{"title":"x","days":[{"day":1,"focus":"push"},{"day":"two","focus":"pull"}]}`,
			wantErr: `$.days[1].day: expected integer`,
		},
		{
			name:    "wrong top-level shape",
			schema:  planSchema,
			input:   `["not","an","object"]`,
			wantErr: "expected object",
		},
		{
			name:    "empty string rejected",
			schema:  Object(map[string]*Schema{"slug": String()}),
			input:   `{"slug":""}`,
			wantErr: "string must not be empty",
		},
		{
			name:    "fractional number is not an integer",
			schema:  Object(map[string]*Schema{"sets": Integer()}),
			input:   `{"sets":3.5}`,
			wantErr: "expected integer, got fraction",
		},
		{
			name:   "whole float accepted as integer",
			schema: Object(map[string]*Schema{"sets": Integer()}),
			input:  `{"sets":3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate(decode(t, tt.input))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestObjectRequiresAllProperties(t *testing.T) {
	s := Object(map[string]*Schema{"a": String(), "b": Integer()})
	if len(s.Required) != 2 {
		t.Fatalf("Object() required = %v, want both properties", s.Required)
	}
}
