package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"vmfit/internal/common/pagination"
	"vmfit/internal/config"
	pgRepo "vmfit/internal/infra/adapter/persistence/postgres"
	"vmfit/internal/infra/db"
	"vmfit/internal/infra/generator"
	"vmfit/internal/infra/shopblog"
	"vmfit/internal/observability/logging"
	"vmfit/internal/observability/tracing"

	contentUC "vmfit/internal/usecase/content"
	leadUC "vmfit/internal/usecase/lead"
	planUC "vmfit/internal/usecase/plan"

	hhttp "vmfit/internal/handler/http"
	hauth "vmfit/internal/handler/http/auth"
	hlead "vmfit/internal/handler/http/lead"
	hplan "vmfit/internal/handler/http/plan"
	hpost "vmfit/internal/handler/http/post"
	"vmfit/internal/handler/http/requestid"
)

func main() {
	logger := logging.New()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if err := hauth.ValidateAdminConfigured(); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	shopClient := initShopClient(logger)
	gen, genName := initGenerator(logger)

	handler := setupServer(logger, cfg, database, shopClient, gen, genName)
	runServer(logger, cfg, handler)
}

// initDatabase opens the connection pool and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initShopClient builds the commerce-blog client. The shop is the primary
// content source, so a missing configuration stops the process.
func initShopClient(logger *slog.Logger) *shopblog.Client {
	shopCfg, err := shopblog.LoadConfig()
	if err != nil {
		logger.Error("failed to load shop configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return shopblog.NewClient(shopCfg)
}

// initGenerator builds the generation adapter from the environment. With
// GENAI_PROVIDER=none the API serves content and leads but answers 503 on
// generation routes.
func initGenerator(logger *slog.Logger) (generator.Generator, string) {
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
	logger.Info("generation provider configured", slog.String("provider", gen.Name()))
	return gen, gen.Name()
}

// setupServer wires services, routes, and middleware into the root handler.
func setupServer(
	logger *slog.Logger,
	cfg config.ServerConfig,
	database *sql.DB,
	shopClient *shopblog.Client,
	gen generator.Generator,
	genName string,
) http.Handler {
	postRepo := pgRepo.NewPostRepo(database)

	// Provider order doubles as the slug tiebreak: the shop wins.
	contentSvc := contentUC.NewService(logger, shopClient, postRepo)
	leadSvc := &leadUC.Service{Repo: pgRepo.NewLeadRepo(database)}
	planSvc := planUC.NewService(gen)

	paginationCfg := pagination.LoadFromEnv()
	leadLimiter := hhttp.NewRateLimiter(cfg.LeadRPS, cfg.LeadBurst)
	planLimiter := hhttp.NewRateLimiter(cfg.PlanRPS, cfg.PlanBurst)

	mux := http.NewServeMux()
	hpost.Register(mux, contentSvc)
	hlead.Register(mux, leadSvc, paginationCfg, cfg.JWTSecret, leadLimiter.Limit)
	hplan.Register(mux, planSvc, planLimiter.Limit)
	mux.Handle("POST /auth/token", hauth.TokenHandler(cfg.JWTSecret))
	mux.Handle("GET /healthz", &hhttp.HealthHandler{
		DB:            database,
		ShopBlog:      shopClient,
		GeneratorName: genName,
		Version:       cfg.Version,
	})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Outermost first. Recover stays outside Logging so a panicking log
	// field cannot take the process down unobserved.
	return hhttp.Chain(mux,
		hhttp.Recover(logger),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Metrics,
		hhttp.CORS(cfg.CORSOrigins),
		hhttp.ValidateRequest(),
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
	)
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts down gracefully within the configured timeout.
func runServer(logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort("", strconv.Itoa(cfg.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
