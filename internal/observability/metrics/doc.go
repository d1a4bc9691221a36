// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count)
//   - Content aggregation metrics (provider fetches, merged result sizes)
//   - Structured generation metrics (per provider and flow)
//   - Retry and lead capture metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
package metrics
