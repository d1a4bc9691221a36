package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"vmfit/internal/domain/entity"
	pgRepo "vmfit/internal/infra/adapter/persistence/postgres"
	"vmfit/internal/infra/db"
	"vmfit/internal/infra/generator"
	workerPkg "vmfit/internal/infra/worker"
	"vmfit/internal/observability/logging"
	"vmfit/internal/observability/metrics"
	"vmfit/internal/resilience/retry"
	blogUC "vmfit/internal/usecase/blog"
)

func main() {
	logger := logging.New()

	cfg := workerPkg.LoadConfigFromEnv()
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone),
		slog.String("topics_path", cfg.TopicsPath),
		slog.Duration("job_timeout", cfg.JobTimeout),
		slog.Int("health_port", cfg.HealthPort))

	topics, err := blogUC.LoadTopics(cfg.TopicsPath)
	if err != nil {
		logger.Error("failed to load topic rotation", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("topic rotation loaded", slog.Int("topics", len(topics)))

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	gen := initGenerator(logger)
	blogSvc := blogUC.NewService(gen, pgRepo.NewPostRepo(database), topics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	healthServer := workerPkg.NewHealthServer(fmt.Sprintf(":%d", cfg.HealthPort), logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	scheduler, err := startScheduler(ctx, logger, blogSvc, cfg)
	if err != nil {
		logger.Error("failed to start scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	logger.Info("shutting down worker...")
	healthServer.SetReady(false)

	// Let an in-flight run finish before exiting.
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(cfg.JobTimeout):
		logger.Warn("job did not finish before shutdown deadline")
	}
	logger.Info("worker stopped")
}

// initDatabase opens the connection pool and ensures the schema exists. The
// worker runs the same idempotent migrations as the API so either binary can
// start first.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initGenerator builds the generation adapter. Unlike the API, the worker is
// useless without one, so GENAI_PROVIDER=none stops the process.
func initGenerator(logger *slog.Logger) generator.Generator {
	genCfg, err := generator.LoadConfig()
	if err != nil {
		logger.Error("failed to load generator configuration", slog.Any("error", err))
		os.Exit(1)
	}
	gen, err := generator.New(genCfg)
	if err != nil {
		logger.Error("failed to build generator", slog.Any("error", err))
		os.Exit(1)
	}
	if gen.Name() == "noop" {
		logger.Error("draft generation requires a real provider, set GENAI_PROVIDER")
		os.Exit(1)
	}
	logger.Info("generation provider configured", slog.String("provider", gen.Name()))
	return gen
}

// startScheduler registers the draft job on the configured cron schedule.
func startScheduler(ctx context.Context, logger *slog.Logger, svc *blogUC.Service, cfg workerPkg.Config) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC",
			slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(cfg.CronSchedule, func() {
		runDraftJob(ctx, logger, svc, cfg.JobTimeout)
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// draftJobConfig is the fixed-delay policy for the whole run. An exhausted
// topic rotation is a final outcome, not a transient failure, so it is the
// one error the job never retries. Rate-limit retries against the provider
// happen inside the service with their own backoff.
func draftJobConfig() retry.Config {
	cfg := retry.ScheduledJobConfig()
	cfg.Classify = func(err error) bool {
		return !errors.Is(err, blogUC.ErrNoFreshTopic)
	}
	return cfg
}

// runDraftJob executes one scheduled draft generation run.
func runDraftJob(ctx context.Context, logger *slog.Logger, svc *blogUC.Service, timeout time.Duration) {
	start := time.Now()
	logger.Info("draft generation started")

	jobCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var post *entity.Post
	err := retry.WithBackoff(jobCtx, draftJobConfig(), func() error {
		p, err := svc.GenerateDraft(jobCtx)
		if err != nil {
			return err
		}
		post = p
		return nil
	})

	switch {
	case err == nil:
		metrics.RecordDraftJob("success", time.Since(start))
		logger.Info("draft generation completed",
			slog.String("slug", post.Slug),
			slog.String("title", post.Title),
			slog.Duration("duration", time.Since(start)))
	case errors.Is(err, blogUC.ErrNoFreshTopic):
		metrics.RecordDraftJob("skipped", time.Since(start))
		logger.Info("draft generation skipped, every topic already published")
	default:
		metrics.RecordDraftJob("failure", time.Since(start))
		logger.Error("draft generation failed", slog.Any("error", err))
	}
}
