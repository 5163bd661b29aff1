package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	apiMiddleware "github.com/phrazzld/taskpost-api/internal/api/middleware"
	"github.com/phrazzld/taskpost-api/internal/config"
	"github.com/phrazzld/taskpost-api/internal/platform/postgres"
	"github.com/phrazzld/taskpost-api/internal/service"
	"github.com/phrazzld/taskpost-api/internal/service/auth"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// janitorInterval is how often expired token revocations and idle rate
// limiter clients are swept.
const janitorInterval = 10 * time.Minute

// pinger is the part of *sql.DB the health check needs.
type pinger interface {
	PingContext(ctx context.Context) error
}

// tokenPurger removes revocations for tokens that have expired anyway.
type tokenPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// application holds the shared dependencies so they can be wired once and
// released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	health pinger

	tracerProvider *sdktrace.TracerProvider
	registry       *prometheus.Registry
	metrics        *apiMiddleware.Metrics
	rateLimiter    *apiMiddleware.RateLimiter

	tokenStore  store.TokenStore
	tokenPurger tokenPurger

	jwtService  auth.JWTService
	taskService service.TaskService
	postService service.PostService
	userService service.UserService
}

// newApplication wires stores, services and observability around an open
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		health: db,
	}

	app.tracerProvider = newTracerProvider(cfg.Tracing)

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "taskpost"),
	)
	app.metrics = apiMiddleware.NewMetrics(app.registry)

	if cfg.RateLimit.RequestsPerSecond > 0 {
		app.rateLimiter = apiMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	tokenStore := postgres.NewPostgresTokenStore(db, logger)
	app.tokenStore = tokenStore
	app.tokenPurger = tokenStore

	app.taskService, err = service.NewTaskService(postgres.NewPostgresTaskStore(db, logger), db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.postService, err = service.NewPostService(postgres.NewPostgresPostStore(db, logger), db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	app.userService, err = service.NewUserService(
		postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger),
		auth.NewBcryptVerifier(),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.serve(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// sweep runs one janitor pass. Failures are logged and retried on the next
// tick.
func (app *application) sweep(ctx context.Context, now time.Time) {
	if app.tokenPurger != nil {
		purged, err := app.tokenPurger.PurgeExpired(ctx, now)
		if err != nil {
			app.logger.Error("failed to purge expired token revocations", slog.String("error", err.Error()))
		} else if purged > 0 {
			app.logger.Info("purged expired token revocations", slog.Int64("count", purged))
		}
	}
	if app.rateLimiter != nil {
		if removed := app.rateLimiter.Cleanup(); removed > 0 {
			app.logger.Debug("dropped idle rate limiter clients", slog.Int("count", removed))
		}
	}
}

// cleanup releases resources acquired by newApplication.
func (app *application) cleanup() {
	if app.tracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.tracerProvider.Shutdown(ctx); err != nil {
			app.logger.Error("error shutting down tracer provider", slog.String("error", err.Error()))
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
