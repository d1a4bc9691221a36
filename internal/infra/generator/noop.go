package generator

import (
	"context"
	"encoding/json"
)

// Noop is the generator used when AI features are disabled.
// Every call fails with ErrDisabled.
type Noop struct{}

// Generate always returns ErrDisabled.
func (Noop) Generate(_ context.Context, _ Request) (json.RawMessage, error) {
	return nil, ErrDisabled
}

// Name identifies the noop generator.
func (Noop) Name() string { return "noop" }
