package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Prompt is a template with named {{placeholder}} markers.
type Prompt struct {
	Name     string
	Template string
}

// Render substitutes the input values into the template.
// Every placeholder must be bound and every input must be consumed;
// a mismatch in either direction is an error, not a silent blank.
func (p Prompt) Render(input map[string]string) (string, error) {
	rendered := p.Template
	for key, value := range input {
		marker := "{{" + key + "}}"
		if !strings.Contains(rendered, marker) {
			return "", fmt.Errorf("prompt %q: input %q has no placeholder", p.Name, key)
		}
		rendered = strings.ReplaceAll(rendered, marker, value)
	}
	if idx := strings.Index(rendered, "{{"); idx >= 0 {
		end := strings.Index(rendered[idx:], "}}")
		if end < 0 {
			end = len(rendered) - idx
		}
		return "", fmt.Errorf("prompt %q: unbound placeholder %s", p.Name, rendered[idx:idx+end+2])
	}
	return rendered, nil
}

// WithSchema appends machine-readable output instructions to a rendered
// prompt. The provider is instructed to answer with a single JSON document
// conforming to the schema; conformance is still validated on the way back.
func WithSchema(rendered string, schema *Schema) string {
	encoded, err := json.Marshal(schema)
	if err != nil {
		// Schema values are built from literals; marshaling cannot fail in practice.
		return rendered
	}
	var b strings.Builder
	b.WriteString(rendered)
	b.WriteString("\n\nRespond with a single JSON document and nothing else. ")
	b.WriteString("The document must conform to this JSON schema:\n")
	b.Write(encoded)
	return b.String()
}
