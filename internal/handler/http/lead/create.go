package lead

import (
	"encoding/json"
	"errors"
	"net/http"

	"vmfit/internal/domain/entity"
	"vmfit/internal/handler/http/respond"
	leadUC "vmfit/internal/usecase/lead"
)

type createRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Source        string `json:"source"`
	PlanRequested string `json:"plan_requested"`
}

// CreateHandler captures a new lead from the public signup forms.
type CreateHandler struct{ Svc *leadUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "invalid request body", err))
		return
	}

	captured, err := h.Svc.Capture(r.Context(), leadUC.CaptureInput{
		Name:          req.Name,
		Email:         req.Email,
		Source:        req.Source,
		PlanRequested: req.PlanRequested,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidInput):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, leadUC.ErrDuplicateLead):
			// The form treats resubmission as success; no email disclosure.
			respond.JSON(w, http.StatusOK, map[string]string{"status": "already subscribed"})
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(captured))
}
