package worker

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthEndpoints(t *testing.T) {
	h := NewHealthServer(":0", slog.Default())

	t.Run("liveness always ok", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleLiveness(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("liveness = %d, want 200", rec.Code)
		}
	})

	t.Run("readiness flips with SetReady", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("readiness before SetReady = %d, want 503", rec.Code)
		}

		h.SetReady(true)
		rec = httptest.NewRecorder()
		h.handleReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("readiness after SetReady = %d, want 200", rec.Code)
		}

		h.SetReady(false)
		rec = httptest.NewRecorder()
		h.handleReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("readiness after SetReady(false) = %d, want 503", rec.Code)
		}
	})
}
