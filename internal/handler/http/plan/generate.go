// Package plan provides the HTTP handler for the free workout-plan
// generator on the landing page.
package plan

import (
	"encoding/json"
	"errors"
	"net/http"

	"vmfit/internal/domain/entity"
	"vmfit/internal/handler/http/respond"
	"vmfit/internal/infra/generator"
	planUC "vmfit/internal/usecase/plan"
)

type generateRequest struct {
	Goal        string `json:"goal"`
	Level       string `json:"level"`
	DaysPerWeek int    `json:"days_per_week"`
}

// DTO is the JSON shape of a generated workout plan.
type DTO struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Days    []DayDTO `json:"days"`
}

// DayDTO is one training day.
type DayDTO struct {
	Day       string        `json:"day"`
	Focus     string        `json:"focus"`
	Exercises []ExerciseDTO `json:"exercises"`
}

// ExerciseDTO is one prescribed movement.
type ExerciseDTO struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
}

// GenerateHandler serves workout plan generation requests.
type GenerateHandler struct{ Svc *planUC.Service }

func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "invalid request body", err))
		return
	}

	result, err := h.Svc.Generate(r.Context(), entity.PlanRequest{
		Goal:        req.Goal,
		Level:       req.Level,
		DaysPerWeek: req.DaysPerWeek,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidInput):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, generator.ErrDisabled):
			respond.SafeError(w, http.StatusServiceUnavailable,
				respond.NewAppError(http.StatusServiceUnavailable, "plan generation is disabled", nil))
		case errors.Is(err, generator.ErrSchemaMismatch), errors.Is(err, generator.ErrEmptyResponse):
			respond.SafeError(w, http.StatusBadGateway,
				respond.NewAppError(http.StatusBadGateway, "plan generation failed, please try again", err))
		default:
			respond.SafeError(w, http.StatusBadGateway,
				respond.NewAppError(http.StatusBadGateway, "plan generation is temporarily unavailable", err))
		}
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(result))
}

func toDTO(p *entity.WorkoutPlan) DTO {
	out := DTO{Title: p.Title, Summary: p.Summary, Days: make([]DayDTO, 0, len(p.Days))}
	for _, d := range p.Days {
		day := DayDTO{Day: d.Day, Focus: d.Focus, Exercises: make([]ExerciseDTO, 0, len(d.Exercises))}
		for _, e := range d.Exercises {
			day.Exercises = append(day.Exercises, ExerciseDTO{Name: e.Name, Sets: e.Sets, Reps: e.Reps})
		}
		out.Days = append(out.Days, day)
	}
	return out
}
