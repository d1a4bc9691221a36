package post

import (
	"net/http"

	contentUC "vmfit/internal/usecase/content"
)

// Register registers the public content feed routes.
func Register(mux *http.ServeMux, svc *contentUC.Service) {
	mux.Handle("GET /posts", ListHandler{svc})
	mux.Handle("GET /posts/", GetHandler{svc})
}
