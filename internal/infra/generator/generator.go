// Package generator provides structured text generation against hosted
// generative-AI providers. Prompts are rendered from templates with named
// placeholders, and every response is validated against the declared output
// schema before it reaches a caller. Adapters exist for Claude (Anthropic)
// and OpenAI, plus a noop used when AI features are disabled.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for structured generation.
var (
	// ErrEmptyResponse indicates the provider returned no content.
	ErrEmptyResponse = errors.New("generation provider returned empty response")

	// ErrSchemaMismatch indicates the provider's response does not conform
	// to the requested output schema. Providers are instructed, but not
	// guaranteed, to return conformant output; this check is mandatory.
	ErrSchemaMismatch = errors.New("generation response does not match output schema")

	// ErrDisabled is returned by the noop generator.
	ErrDisabled = errors.New("AI generation is disabled")
)

// Request describes one structured generation call.
type Request struct {
	// Flow identifies the call site for logs and metrics
	// (e.g. "workout-plan", "blog-draft").
	Flow string

	// Prompt is the fully rendered prompt text.
	Prompt string

	// MaxTokens bounds the provider response size. Zero uses the adapter default.
	MaxTokens int

	// OutputSchema describes the required response shape.
	OutputSchema *Schema
}

// Generator invokes a generative text provider and returns the raw,
// schema-validated JSON document. No retry is intrinsic to Generate;
// callers compose it with the retry package when resilience is required.
type Generator interface {
	Generate(ctx context.Context, req Request) (json.RawMessage, error)

	// Name identifies the provider for logs and metrics.
	Name() string
}

// parseStructured validates raw provider output against the schema and
// returns the JSON document. It distinguishes empty output, non-JSON
// output, and schema-nonconformant output.
func parseStructured(text string, schema *Schema) (json.RawMessage, error) {
	if text == "" {
		return nil, ErrEmptyResponse
	}

	doc := extractJSON(text)

	var parsed any
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return nil, fmt.Errorf("%w: response is not valid JSON: %v", ErrSchemaMismatch, err)
	}

	if schema != nil {
		if err := schema.Validate(parsed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
		}
	}

	return json.RawMessage(doc), nil
}

// extractJSON strips prose and code fences that models sometimes wrap
// around the JSON document, returning the outermost object.
func extractJSON(text string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i, r := range text {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return text
}
