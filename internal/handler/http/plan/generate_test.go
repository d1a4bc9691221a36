package plan_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	planH "vmfit/internal/handler/http/plan"
	"vmfit/internal/infra/generator"
	"vmfit/internal/resilience/retry"
	planUC "vmfit/internal/usecase/plan"
)

type stubGenerator struct {
	response json.RawMessage
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _ generator.Request) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Name() string { return "stub" }

const planJSON = `{
	"title": "Beginner Strength",
	"summary": "Three full-body sessions.",
	"days": [{"day": "Monday", "focus": "full body",
		"exercises": [{"name": "Squat", "sets": "3", "reps": "5"}]}]
}`

func newMux(gen generator.Generator) *http.ServeMux {
	svc := &planUC.Service{Generator: gen, Retry: retry.Config{
		Operation: "generation-api", MaxAttempts: 1,
		InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1.0,
	}}
	mux := http.NewServeMux()
	planH.Register(mux, svc, nil)
	return mux
}

func TestGeneratePlan(t *testing.T) {
	mux := newMux(&stubGenerator{response: json.RawMessage(planJSON)})

	body := `{"goal":"get stronger","level":"beginner","days_per_week":3}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/plans/generate", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var dto planH.DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatal(err)
	}
	if dto.Title != "Beginner Strength" || len(dto.Days) != 1 {
		t.Errorf("dto = %+v", dto)
	}
}

func TestGeneratePlanBadRequest(t *testing.T) {
	mux := newMux(&stubGenerator{response: json.RawMessage(planJSON)})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing goal", `{"level":"beginner","days_per_week":3}`},
		{"days out of range", `{"goal":"x","level":"beginner","days_per_week":9}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/plans/generate", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGeneratePlanFailureModes(t *testing.T) {
	body := `{"goal":"get stronger","level":"beginner","days_per_week":3}`

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"disabled", generator.ErrDisabled, http.StatusServiceUnavailable},
		{"schema mismatch", generator.ErrSchemaMismatch, http.StatusBadGateway},
		{"empty response", generator.ErrEmptyResponse, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newMux(&stubGenerator{err: tt.err})
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/plans/generate", strings.NewReader(body)))
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}
