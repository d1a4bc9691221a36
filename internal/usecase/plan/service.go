// Package plan generates structured workout plans from validated user input.
// It renders the prompt, delegates to the configured generation provider,
// and decodes the schema-validated response into the domain entity.
package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"vmfit/internal/domain/entity"
	"vmfit/internal/infra/generator"
	"vmfit/internal/resilience/retry"
)

// workoutPrompt is the template behind the free workout-plan generator on
// the landing page.
var workoutPrompt = generator.Prompt{
	Name: "workout-plan",
	Template: `You are a certified personal trainer writing for a fitness coaching site.
Design a {{days}}-day weekly training plan for a {{level}} client whose goal is: {{goal}}.
Keep exercise selection practical for a commercial gym. Use concise exercise names.`,
}

// workoutSchema describes the required response shape. Conformance is
// enforced by the generator before the response reaches this package.
var workoutSchema = generator.Object(map[string]*generator.Schema{
	"title":   generator.String(),
	"summary": generator.String(),
	"days": generator.Array(generator.Object(map[string]*generator.Schema{
		"day":   generator.String(),
		"focus": generator.String(),
		"exercises": generator.Array(generator.Object(map[string]*generator.Schema{
			"name": generator.String(),
			"sets": generator.String(),
			"reps": generator.String(),
		})),
	})),
})

// Service provides the workout plan generation use case.
type Service struct {
	Generator generator.Generator
	Retry     retry.Config
}

// NewService creates a plan service with the standard generation retry policy.
func NewService(gen generator.Generator) *Service {
	return &Service{Generator: gen, Retry: retry.GenerationConfig()}
}

// planDocument is the wire shape of the generated plan.
type planDocument struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Days    []struct {
		Day       string `json:"day"`
		Focus     string `json:"focus"`
		Exercises []struct {
			Name string `json:"name"`
			Sets string `json:"sets"`
			Reps string `json:"reps"`
		} `json:"exercises"`
	} `json:"days"`
}

// Generate produces a workout plan for the given request. The generation
// call is retried only on the provider's rate-limit signal; schema and
// validation failures surface immediately.
func (s *Service) Generate(ctx context.Context, req entity.PlanRequest) (*entity.WorkoutPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}

	prompt, err := workoutPrompt.Render(map[string]string{
		"goal":  req.Goal,
		"level": req.Level,
		"days":  fmt.Sprintf("%d", req.DaysPerWeek),
	})
	if err != nil {
		return nil, fmt.Errorf("render workout prompt: %w", err)
	}

	var raw json.RawMessage
	err = retry.WithBackoff(ctx, s.Retry, func() error {
		var genErr error
		raw, genErr = s.Generator.Generate(ctx, generator.Request{
			Flow:         "workout-plan",
			Prompt:       prompt,
			OutputSchema: workoutSchema,
		})
		return genErr
	})
	if err != nil {
		return nil, fmt.Errorf("generate workout plan: %w", err)
	}

	var doc planDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		// The schema check passed, so this only trips on adapter bugs.
		return nil, fmt.Errorf("decode workout plan: %w", err)
	}

	return toEntity(doc), nil
}

func toEntity(doc planDocument) *entity.WorkoutPlan {
	plan := &entity.WorkoutPlan{
		Title:   doc.Title,
		Summary: doc.Summary,
		Days:    make([]entity.WorkoutDay, 0, len(doc.Days)),
	}
	for _, d := range doc.Days {
		day := entity.WorkoutDay{
			Day:       d.Day,
			Focus:     d.Focus,
			Exercises: make([]entity.Exercise, 0, len(d.Exercises)),
		}
		for _, e := range d.Exercises {
			day.Exercises = append(day.Exercises, entity.Exercise{
				Name: e.Name,
				Sets: e.Sets,
				Reps: e.Reps,
			})
		}
		plan.Days = append(plan.Days, day)
	}
	return plan
}
