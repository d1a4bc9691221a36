package entity

// WorkoutPlan is a structured, AI-generated training plan.
// The shape mirrors the output schema enforced on the generation call.
type WorkoutPlan struct {
	Title   string
	Summary string
	Days    []WorkoutDay
}

// WorkoutDay is one training day inside a plan.
type WorkoutDay struct {
	Day       string
	Focus     string
	Exercises []Exercise
}

// Exercise is a single prescribed movement.
type Exercise struct {
	Name string
	Sets string
	Reps string
}

// PlanRequest carries the validated user input for plan generation.
type PlanRequest struct {
	Goal        string
	Level       string
	DaysPerWeek int
}

// Validate checks the plan request fields against the allowed ranges.
func (r *PlanRequest) Validate() error {
	if r.Goal == "" {
		return &ValidationError{Field: "goal", Message: "is required"}
	}
	if r.Level == "" {
		return &ValidationError{Field: "level", Message: "is required"}
	}
	if r.DaysPerWeek < 1 || r.DaysPerWeek > 7 {
		return &ValidationError{Field: "daysPerWeek", Message: "must be between 1 and 7"}
	}
	return nil
}
