package http

import (
	"context"
	"net/http"
	"time"

	"database/sql"

	"vmfit/internal/handler/http/respond"
)

// HealthResponse is the JSON shape of the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the status of one dependency check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Pinger reports whether an external dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the health of the API's dependencies: the database,
// the commerce-blog API, and the generation provider configuration.
// Returns 200 when everything is healthy, 503 otherwise.
type HealthHandler struct {
	DB *sql.DB

	// ShopBlog is the commerce-blog reachability check. Optional.
	ShopBlog Pinger

	// GeneratorName is the configured generation provider ("claude",
	// "openai", or "noop" when AI features are disabled).
	GeneratorName string

	Version string
}

// ServeHTTP runs all dependency checks with a shared deadline.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	checks["database"] = h.checkDatabase(ctx)
	if checks["database"].Status != "healthy" {
		allHealthy = false
	}

	if h.ShopBlog != nil {
		checks["shop_blog"] = h.checkShopBlog(ctx)
		if checks["shop_blog"].Status != "healthy" {
			allHealthy = false
		}
	}

	checks["generator"] = h.checkGenerator()

	status := "healthy"
	code := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: "unhealthy", Message: "database not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "database unreachable",
		}
	}

	stats := h.DB.Stats()
	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
			"wait_count":       stats.WaitCount,
		},
	}
}

func (h *HealthHandler) checkShopBlog(ctx context.Context) CheckStatus {
	if err := h.ShopBlog.Ping(ctx); err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "commerce blog unreachable",
		}
	}
	return CheckStatus{Status: "healthy"}
}

// checkGenerator reports which generation provider is wired in. A disabled
// provider is a deliberate configuration, not a failure.
func (h *HealthHandler) checkGenerator() CheckStatus {
	if h.GeneratorName == "" {
		return CheckStatus{Status: "unhealthy", Message: "generator not configured"}
	}
	if h.GeneratorName == "noop" {
		return CheckStatus{Status: "healthy", Message: "AI generation disabled"}
	}
	return CheckStatus{
		Status:  "healthy",
		Details: map[string]any{"provider": h.GeneratorName},
	}
}
