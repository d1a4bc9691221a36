package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseStructured(t *testing.T) {
	schema := Object(map[string]*Schema{
		"title": String(),
		"body":  String(),
	})

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name: "bare JSON document",
			text: `{"title":"t","body":"b"}`,
		},
		{
			name: "fenced JSON document",
			text: "```json\n{\"title\":\"t\",\"body\":\"b\"}\n```",
		},
		{
			name: "document wrapped in prose",
			text: `Here is the draft you asked for: {"title":"t","body":"b"} Hope it helps!`,
		},
		{
			name:    "empty response",
			text:    "",
			wantErr: ErrEmptyResponse,
		},
		{
			name:    "non-JSON response",
			text:    "I cannot produce that.",
			wantErr: ErrSchemaMismatch,
		},
		{
			name:    "missing required output field",
			text:    `{"title":"t"}`,
			wantErr: ErrSchemaMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parseStructured(tt.text, schema)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseStructured() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseStructured() unexpected error: %v", err)
			}
			if !strings.HasPrefix(string(doc), "{") || !strings.HasSuffix(string(doc), "}") {
				t.Errorf("parseStructured() = %q, want a JSON object", doc)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "nested braces",
			text: `prefix {"a":{"b":1}} suffix`,
			want: `{"a":{"b":1}}`,
		},
		{
			name: "braces inside strings ignored",
			text: `{"a":"close } brace"} trailing`,
			want: `{"a":"close } brace"}`,
		},
		{
			name: "escaped quote inside string",
			text: `{"a":"quote \" and } brace"}`,
			want: `{"a":"quote \" and } brace"}`,
		},
		{
			name: "no object returns input",
			text: "nothing here",
			want: "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.text); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNoopGenerator(t *testing.T) {
	g := Noop{}
	if g.Name() != "noop" {
		t.Errorf("Name() = %q, want noop", g.Name())
	}
	_, err := g.Generate(context.Background(), Request{Flow: "workout-plan"})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Generate() error = %v, want ErrDisabled", err)
	}
}
