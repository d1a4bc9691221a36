// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Content aggregation metrics track provider fetch outcomes
var (
	// ProviderFetchTotal counts provider fetch attempts by origin and status
	ProviderFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_provider_fetch_total",
			Help: "Total content provider fetch operations",
		},
		[]string{"origin", "status"},
	)

	// ProviderFetchDuration measures provider fetch duration in seconds
	ProviderFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "content_provider_fetch_duration_seconds",
			Help:    "Content provider fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"origin"},
	)

	// PostsReturned measures how many posts each list query returned after merging
	PostsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_posts_returned",
			Help:    "Number of posts returned per aggregated list query",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
)

// Generation metrics track AI structured-generation calls
var (
	// GenerationTotal counts generation calls by provider, flow, and status
	GenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_requests_total",
			Help: "Total structured generation requests",
		},
		[]string{"provider", "flow", "status"},
	)

	// GenerationDuration measures generation call duration in seconds
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "Structured generation call duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"provider", "flow"},
	)
)

// Reliability metrics track retry and lead capture behavior
var (
	// RetryAttemptsTotal counts failed attempts reported by the retry wrapper
	RetryAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retry_failed_attempts_total",
			Help: "Total failed attempts observed by the retry wrapper",
		},
		[]string{"operation"},
	)

	// LeadsCapturedTotal counts lead capture outcomes
	LeadsCapturedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total lead capture attempts by status",
		},
		[]string{"status"},
	)
)

// Worker metrics track scheduled draft-generation runs
var (
	// DraftJobRunsTotal counts draft job runs by outcome
	DraftJobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_draft_job_runs_total",
			Help: "Total scheduled draft generation runs by status",
		},
		[]string{"status"},
	)

	// DraftJobDuration measures draft job duration in seconds
	DraftJobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "worker_draft_job_duration_seconds",
			Help:    "Scheduled draft generation run duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	// DraftJobLastSuccess is the unix timestamp of the last successful run
	DraftJobLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_draft_job_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful draft generation run",
		},
	)
)
