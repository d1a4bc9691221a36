package plan

import (
	"net/http"

	planUC "vmfit/internal/usecase/plan"
)

// Register registers the plan generation route. The caller applies rate
// limiting; generation burns provider quota on every call.
func Register(mux *http.ServeMux, svc *planUC.Service, rateLimit func(http.Handler) http.Handler) {
	generate := http.Handler(GenerateHandler{svc})
	if rateLimit != nil {
		generate = rateLimit(generate)
	}
	mux.Handle("POST /plans/generate", generate)
}
