// Package config loads application configuration for the API server from
// environment variables. Provider-specific configuration (database, shop
// blog, generator, worker) lives next to its adapter.
package config

import (
	"fmt"
	"time"

	pkgcfg "vmfit/pkg/config"
)

// minJWTSecretLength guards against trivially brute-forceable signing keys.
const minJWTSecretLength = 32

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Port is the listen port for the API server.
	Port int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// MaxBodyBytes caps inbound request bodies.
	MaxBodyBytes int64

	// CORSOrigins lists the site origins allowed to call the API from a
	// browser. Empty disables cross-origin access.
	CORSOrigins []string

	// JWTSecret signs admin tokens. Required, minimum 32 bytes.
	JWTSecret []byte

	// LeadRPS and LeadBurst bound public lead submissions per client IP.
	LeadRPS   float64
	LeadBurst int

	// PlanRPS and PlanBurst bound plan generation per client IP. Kept low;
	// every call spends provider quota.
	PlanRPS   float64
	PlanBurst int

	// Version is reported by the health endpoint.
	Version string
}

// LoadServerConfig reads the server configuration from the environment.
//
// Environment variables:
//   - PORT (default 8080)
//   - SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT, SERVER_IDLE_TIMEOUT,
//     SERVER_SHUTDOWN_TIMEOUT
//   - MAX_BODY_BYTES (default 1 MiB)
//   - CORS_ORIGINS (comma separated)
//   - JWT_SECRET (required, >= 32 bytes)
//   - LEAD_RATE_RPS, LEAD_RATE_BURST, PLAN_RATE_RPS, PLAN_RATE_BURST
//   - APP_VERSION
func LoadServerConfig() (ServerConfig, error) {
	secret, err := pkgcfg.RequireEnv("JWT_SECRET")
	if err != nil {
		return ServerConfig{}, err
	}
	if len(secret) < minJWTSecretLength {
		return ServerConfig{}, fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}

	cfg := ServerConfig{
		Port:            pkgcfg.GetEnvInt("PORT", 8080),
		ReadTimeout:     pkgcfg.GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    pkgcfg.GetEnvDuration("SERVER_WRITE_TIMEOUT", 90*time.Second),
		IdleTimeout:     pkgcfg.GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: pkgcfg.GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
		MaxBodyBytes:    int64(pkgcfg.GetEnvInt("MAX_BODY_BYTES", 1<<20)),
		CORSOrigins:     pkgcfg.GetEnvStringSlice("CORS_ORIGINS", nil),
		JWTSecret:       []byte(secret),
		LeadRPS:         pkgcfg.GetEnvFloat("LEAD_RATE_RPS", 1),
		LeadBurst:       pkgcfg.GetEnvInt("LEAD_RATE_BURST", 5),
		PlanRPS:         pkgcfg.GetEnvFloat("PLAN_RATE_RPS", 0.2),
		PlanBurst:       pkgcfg.GetEnvInt("PLAN_RATE_BURST", 2),
		Version:         pkgcfg.GetEnvString("APP_VERSION", "dev"),
	}

	for name, d := range map[string]time.Duration{
		"SERVER_READ_TIMEOUT":     cfg.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":    cfg.WriteTimeout,
		"SERVER_IDLE_TIMEOUT":     cfg.IdleTimeout,
		"SERVER_SHUTDOWN_TIMEOUT": cfg.ShutdownTimeout,
	} {
		if err := pkgcfg.ValidatePositiveDuration(d); err != nil {
			return ServerConfig{}, fmt.Errorf("%s: %w", name, err)
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return ServerConfig{}, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}

	return cfg, nil
}
