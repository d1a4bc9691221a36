// Package resilience provides reliability patterns for external calls.
// It includes circuit breakers for the generation and commerce-blog APIs
// and bounded retry logic with per-operation policies.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.GenerationAPIConfig("claude"))
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
//
//	err := retry.WithBackoff(ctx, retry.GenerationConfig(), func() error {
//	    return performOperation()
//	})
package resilience
