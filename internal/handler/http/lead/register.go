package lead

import (
	"net/http"

	"vmfit/internal/common/pagination"
	"vmfit/internal/handler/http/auth"
	leadUC "vmfit/internal/usecase/lead"
)

// Register registers the lead routes: public capture (rate limited by the
// caller's middleware stack) and the JWT-protected admin list.
func Register(mux *http.ServeMux, svc *leadUC.Service, paginationCfg pagination.Config, jwtSecret []byte, rateLimit func(http.Handler) http.Handler) {
	create := http.Handler(CreateHandler{svc})
	if rateLimit != nil {
		create = rateLimit(create)
	}
	mux.Handle("POST /leads", create)

	mux.Handle("GET /admin/leads", auth.Authz(jwtSecret)(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
	}))
}
