// Package lead provides HTTP handlers for coaching lead capture and the
// admin lead list.
package lead

import (
	"time"

	"vmfit/internal/domain/entity"
)

// DTO is the JSON shape of a captured lead.
type DTO struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Source        string    `json:"source,omitempty"`
	PlanRequested string    `json:"plan_requested,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toDTO(l *entity.Lead) DTO {
	return DTO{
		ID:            l.ID,
		Name:          l.Name,
		Email:         l.Email,
		Source:        l.Source,
		PlanRequested: l.PlanRequested,
		CreatedAt:     l.CreatedAt,
	}
}
