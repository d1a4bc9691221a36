package entity

import "time"

// Lead represents a captured coaching lead.
// It records who signed up, where the signup came from, and which
// program interest (if any) was expressed.
type Lead struct {
	ID            int64
	Name          string
	Email         string
	Source        string // originating surface, e.g. "hero-form", "ai-generator"
	PlanRequested string // optional: workout plan goal attached to the signup
	CreatedAt     time.Time
}

// Validate checks the lead's required fields.
// Returns a ValidationError describing the first invalid field.
func (l *Lead) Validate() error {
	if l.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if err := ValidateEmail(l.Email); err != nil {
		return err
	}
	return nil
}
