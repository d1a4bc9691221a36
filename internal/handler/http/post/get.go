package post

import (
	"errors"
	"net/http"

	"vmfit/internal/handler/http/pathutil"
	"vmfit/internal/handler/http/respond"
	contentUC "vmfit/internal/usecase/content"
)

// GetHandler serves a single post, body included.
type GetHandler struct{ Svc *contentUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, "/posts/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	post, err := h.Svc.GetPostBySlug(r.Context(), slug)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, contentUC.ErrPostNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(post))
}
