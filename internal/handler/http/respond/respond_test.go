package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"slug": "test-post"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"slug":"test-post"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		wantBody string
	}{
		{
			name:     "validation error passes through",
			code:     http.StatusBadRequest,
			err:      errors.New("email: is required"),
			wantBody: "email: is required",
		},
		{
			name:     "internal detail is masked",
			code:     http.StatusBadGateway,
			err:      errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			wantBody: "internal server error",
		},
		{
			name:     "5xx is always generic",
			code:     http.StatusInternalServerError,
			err:      errors.New("post not found"),
			wantBody: "internal server error",
		},
		{
			name:     "app error uses its user message",
			code:     http.StatusBadGateway,
			err:      NewAppError(http.StatusServiceUnavailable, "content feed unavailable", errors.New("upstream 503")),
			wantBody: "content feed unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want substring %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSafeErrorHonorsAppErrorCode(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusInternalServerError,
		NewAppError(http.StatusTooManyRequests, "slow down", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want the AppError's code", rec.Code)
	}
}
