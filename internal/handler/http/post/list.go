package post

import (
	"net/http"
	"strconv"

	"vmfit/internal/handler/http/respond"
	contentUC "vmfit/internal/usecase/content"
)

// ListHandler serves the merged blog feed.
type ListHandler struct{ Svc *contentUC.Service }

// ServeHTTP returns up to limit posts, most recent first. The limit query
// parameter is optional; invalid values are rejected rather than clamped.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			respond.SafeError(w, http.StatusBadRequest,
				respond.NewAppError(http.StatusBadRequest, "limit must be a positive integer", nil))
			return
		}
		limit = parsed
	}

	posts, err := h.Svc.ListPosts(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, toDTO(p))
	}
	respond.JSON(w, http.StatusOK, map[string]any{"posts": out})
}
