// Package logging centralizes logger construction so that every binary emits
// the same JSON structure. Handlers obtain request-scoped loggers through
// WithRequestID; background jobs use the default logger directly.
package logging
