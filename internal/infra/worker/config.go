// Package worker provides the scheduled blog-generation worker's
// configuration and health endpoints.
package worker

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	pkgcfg "vmfit/pkg/config"
)

// Config holds the worker settings. Everything has a fail-open default: a
// misconfigured worker runs on defaults rather than refusing to start,
// since a stale blog is preferable to no worker at all.
type Config struct {
	// CronSchedule is the standard 5-field cron expression for draft
	// generation runs. Default: every day at 06:00.
	CronSchedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	Timezone string

	// TopicsPath is the YAML file holding the topic rotation.
	TopicsPath string

	// JobTimeout bounds a single generation run.
	JobTimeout time.Duration

	// HealthPort serves the liveness and readiness probes.
	HealthPort int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		CronSchedule: "0 6 * * *",
		Timezone:     "America/New_York",
		TopicsPath:   "topics.yaml",
		JobTimeout:   10 * time.Minute,
		HealthPort:   9091,
	}
}

// LoadConfigFromEnv reads the worker configuration from WORKER_CRON_SCHEDULE,
// WORKER_TIMEZONE, WORKER_TOPICS_PATH, WORKER_JOB_TIMEOUT, and
// WORKER_HEALTH_PORT. Invalid values fall back to defaults field by field.
func LoadConfigFromEnv() Config {
	defaults := DefaultConfig()
	cfg := Config{
		CronSchedule: pkgcfg.GetEnvString("WORKER_CRON_SCHEDULE", defaults.CronSchedule),
		Timezone:     pkgcfg.GetEnvString("WORKER_TIMEZONE", defaults.Timezone),
		TopicsPath:   pkgcfg.GetEnvString("WORKER_TOPICS_PATH", defaults.TopicsPath),
		JobTimeout:   pkgcfg.GetEnvDuration("WORKER_JOB_TIMEOUT", defaults.JobTimeout),
		HealthPort:   pkgcfg.GetEnvInt("WORKER_HEALTH_PORT", defaults.HealthPort),
	}

	if err := validateCronSchedule(cfg.CronSchedule); err != nil {
		cfg.CronSchedule = defaults.CronSchedule
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		cfg.Timezone = defaults.Timezone
	}
	if err := pkgcfg.ValidatePositiveDuration(cfg.JobTimeout); err != nil {
		cfg.JobTimeout = defaults.JobTimeout
	}
	if cfg.HealthPort < 1024 || cfg.HealthPort > 65535 {
		cfg.HealthPort = defaults.HealthPort
	}
	return cfg
}

// Validate reports configuration problems without applying fallbacks.
func (c *Config) Validate() error {
	if err := validateCronSchedule(c.CronSchedule); err != nil {
		return fmt.Errorf("cron schedule: %w", err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if err := pkgcfg.ValidatePositiveDuration(c.JobTimeout); err != nil {
		return fmt.Errorf("job timeout: %w", err)
	}
	if c.HealthPort < 1024 || c.HealthPort > 65535 {
		return fmt.Errorf("health port must be between 1024 and 65535, got %d", c.HealthPort)
	}
	return nil
}

func validateCronSchedule(schedule string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", schedule, err)
	}
	return nil
}
