package server

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/crm-backend/internal/api/http"
	"github.com/spec-kit/crm-backend/internal/api/http/handlers"
	"github.com/spec-kit/crm-backend/internal/config"
	"github.com/spec-kit/crm-backend/internal/observability"
	"github.com/spec-kit/crm-backend/internal/persistence"
)

const shutdownTimeout = 10 * time.Second

// Entrypoint describes what differs between the binaries under cmd/.
type Entrypoint struct {
	Name        string
	DefaultPort int
	RootMessage string
	RootDetails bool
}

// Dependencies are the optional backing services and shared collectors.
type Dependencies struct {
	Postgres *persistence.Postgres
	Redis    *persistence.Redis
	Metrics  *observability.Metrics
}

// NewApp builds the fiber application with middlewares and routes.
func NewApp(cfg *config.Config, ep Entrypoint, logger *zap.Logger, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
	})

	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:       logger,
		Metrics:      deps.Metrics,
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps.Postgres, deps.Redis),
		Status: handlers.NewStatusHandler(handlers.StatusOptions{
			ServiceName: cfg.App.Name,
			Environment: cfg.App.Env,
			Port:        cfg.App.Port,
			RootMessage: ep.RootMessage,
			RootDetails: ep.RootDetails,
		}),
	})

	return app
}

// Run loads configuration, starts the HTTP server and blocks until SIGINT or SIGTERM.
func Run(ep Entrypoint) error {
	cfg, err := config.Load(ep.DefaultPort)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger = logger.With(zap.String("entrypoint", ep.Name))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pg.Close()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	app := NewApp(cfg, ep, logger, Dependencies{
		Postgres: pg,
		Redis:    redis,
		Metrics:  metrics,
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			zap.String("addr", cfg.App.Addr()),
			zap.String("env", cfg.App.Env))
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("fiber listen: %w", err)
	case sig := <-waitForSignal():
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logMetrics(logger, metrics)
	return nil
}

func logMetrics(logger *zap.Logger, metrics *observability.Metrics) {
	snap := metrics.Snapshot()
	logger.Info("request metrics",
		zap.Any("requests", snap.Requests),
		zap.Any("errors", snap.Errors),
		zap.Duration("total_duration", snap.TotalDuration))
}

// Main runs ep and exits the process on failure.
func Main(ep Entrypoint) {
	if err := Run(ep); err != nil {
		log.Fatalf("%s: %v", ep.Name, err)
	}
}

func waitForSignal() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}
