package lead

import (
	"net/http"

	"vmfit/internal/common/pagination"
	"vmfit/internal/handler/http/respond"
	leadUC "vmfit/internal/usecase/lead"
)

// ListHandler serves the admin lead list with pagination.
type ListHandler struct {
	Svc           *leadUC.Service
	PaginationCfg pagination.Config
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(r.Context(), params.Offset(), params.Limit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(result.Leads))
	for _, l := range result.Leads {
		out = append(out, toDTO(l))
	}
	respond.JSON(w, http.StatusOK,
		pagination.NewResponse(out, pagination.NewMetadata(result.Total, params)))
}
