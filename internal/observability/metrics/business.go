package metrics

import "time"

// RecordProviderFetch records the outcome of a single content-provider fetch.
// Status should be either "success" or "failure".
func RecordProviderFetch(origin string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	ProviderFetchTotal.WithLabelValues(origin, status).Inc()
	ProviderFetchDuration.WithLabelValues(origin).Observe(duration.Seconds())
}

// RecordPostsReturned records the size of an aggregated list result.
func RecordPostsReturned(count int) {
	PostsReturned.Observe(float64(count))
}

// RecordGeneration records the result of a structured generation call.
// Flow identifies the call site (e.g. "workout-plan", "blog-draft").
func RecordGeneration(provider, flow string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	GenerationTotal.WithLabelValues(provider, flow, status).Inc()
	GenerationDuration.WithLabelValues(provider, flow).Observe(duration.Seconds())
}

// RecordRetryAttempt records a failed attempt observed by the retry wrapper.
func RecordRetryAttempt(operation string) {
	RetryAttemptsTotal.WithLabelValues(operation).Inc()
}

// RecordLeadCaptured records a lead capture outcome.
// Status is one of "created", "duplicate", or "failure".
func RecordLeadCaptured(status string) {
	LeadsCapturedTotal.WithLabelValues(status).Inc()
}

// RecordDraftJob records the outcome of one scheduled draft generation run.
// Status is "success", "failure", or "skipped" when the rotation is exhausted.
func RecordDraftJob(status string, duration time.Duration) {
	DraftJobRunsTotal.WithLabelValues(status).Inc()
	DraftJobDuration.Observe(duration.Seconds())
	if status == "success" {
		DraftJobLastSuccess.SetToCurrentTime()
	}
}
