// Package lead provides use cases for capturing and listing coaching leads.
package lead

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vmfit/internal/domain/entity"
	"vmfit/internal/observability/metrics"
	"vmfit/internal/repository"
)

// Sentinel errors for lead use case operations.
var (
	// ErrDuplicateLead indicates a lead with the same email already exists.
	ErrDuplicateLead = errors.New("lead with this email already exists")
)

// CaptureInput represents the input parameters for capturing a new lead.
type CaptureInput struct {
	Name          string
	Email         string
	Source        string
	PlanRequested string
}

// Service provides lead management use cases.
type Service struct {
	Repo repository.LeadRepository
}

// Capture validates and stores a new lead. Emails are normalized to lower
// case before the duplicate check so that casing variants of one address
// cannot sign up twice.
func (s *Service) Capture(ctx context.Context, input CaptureInput) (*entity.Lead, error) {
	lead := &entity.Lead{
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Source:        input.Source,
		PlanRequested: input.PlanRequested,
	}
	if err := lead.Validate(); err != nil {
		metrics.RecordLeadCaptured("failure")
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}

	exists, err := s.Repo.ExistsByEmail(ctx, lead.Email)
	if err != nil {
		metrics.RecordLeadCaptured("failure")
		return nil, fmt.Errorf("check lead email: %w", err)
	}
	if exists {
		metrics.RecordLeadCaptured("duplicate")
		return nil, fmt.Errorf("%w: %s", ErrDuplicateLead, lead.Email)
	}

	if err := s.Repo.Create(ctx, lead); err != nil {
		metrics.RecordLeadCaptured("failure")
		return nil, fmt.Errorf("create lead: %w", err)
	}

	metrics.RecordLeadCaptured("created")
	return lead, nil
}

// ListResult bundles one page of leads with the total count.
type ListResult struct {
	Leads []*entity.Lead
	Total int64
}

// List returns one page of captured leads, newest first.
func (s *Service) List(ctx context.Context, offset, limit int) (*ListResult, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	leads, err := s.Repo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return &ListResult{Leads: leads, Total: total}, nil
}
