package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"bizdash/internal/config"
	apierrors "bizdash/internal/errors"
	"bizdash/internal/filter"
	"bizdash/internal/infrastructure"
	customMiddleware "bizdash/internal/middleware"
	"bizdash/internal/services"
	"bizdash/internal/snapshot"
	handlers "bizdash/internal/transport/http"
	"bizdash/pkg/contracts"
)

// Application represents the dashboard process
type Application struct {
	Config  *config.Config
	Paths   *config.Paths
	Logger  *slog.Logger
	Metrics *infrastructure.Metrics

	Snapshot  *snapshot.Snapshot
	Store     *filter.Store
	Dashboard *services.DashboardService
	Health    *services.HealthService

	Router *chi.Mux
	Server *http.Server
}

// NewApplication loads configuration and the snapshot and wires the API
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return New(context.Background(), cfg, logger)
}

// New builds an application from an explicit configuration
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Application, error) {
	logger.InfoContext(ctx, "Application starting",
		slog.String("name", config.AppName),
		slog.String("version", contracts.GetFullVersionString()))

	paths, err := config.GetPaths(cfg.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to get paths: %w", err)
	}
	paths.LogPathResolution()

	dataset, err := services.ParseDataset(cfg.Server.Dataset)
	if err != nil {
		return nil, apierrors.NewConfigError("invalid server dataset", err)
	}

	snap, err := snapshot.Load(ctx, paths, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	a := &Application{
		Config:   cfg,
		Paths:    paths,
		Logger:   logger,
		Metrics:  infrastructure.NewMetrics(),
		Snapshot: snap,
		Store:    filter.NewStore(),
	}
	a.Dashboard = services.NewDashboardService(snap, a.Store, dataset, a.Metrics, logger)
	a.Health = services.NewHealthService(contracts.Version, a.Dashboard, logger)

	a.setupRouter()
	a.createServer()

	return a, nil
}

// setupRouter configures the middleware chain and the API routes
func (a *Application) setupRouter() {
	r := chi.NewRouter()
	errorHandler := apierrors.NewErrorHandler(a.Logger, a.Config.Logging.Development)

	// RequestID → RealIP → Metrics → Logger → Recoverer
	r.Use(customMiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(customMiddleware.Metrics(a.Metrics))
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(errorHandler))
	r.Use(customMiddleware.SecurityHeaders)
	r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
		AllowedOrigins: a.Config.Security.AllowedOrigins,
		MaxAge:         300,
		Logger:         a.Logger,
	}))

	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		if a.Config.Security.RateLimit.Enabled {
			r.Use(customMiddleware.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.Logger,
				errorHandler,
			).Handler)
		}
		a.setupAPIRoutes(r, errorHandler)
	})

	r.Handle("/metrics", a.Metrics.Handler())

	a.Router = r
}

// setupAPIRoutes registers every /api route
func (a *Application) setupAPIRoutes(r chi.Router, errorHandler *apierrors.ErrorHandler) {
	validator := customMiddleware.NewValidator()

	healthHandler := handlers.NewHealthHandler(a.Health, a.Logger)
	filterHandler := handlers.NewFilterHandler(a.Dashboard, validator, a.Logger, errorHandler)
	dashboardHandler := handlers.NewDashboardHandler(a.Dashboard, a.Logger, errorHandler)
	clientsHandler := handlers.NewClientsHandler(a.Dashboard)
	clientLogHandler := handlers.NewClientLogHandler(validator, a.Logger, errorHandler)

	r.Get("/health", healthHandler.HealthCheck)
	r.Get("/version", healthHandler.Version)

	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.ContentTypeValidator(errorHandler, "application/json"))
		r.Mount("/filter", filterHandler.Routes())
		r.Post("/logs", clientLogHandler.Handle)
	})

	r.Get("/facets", filterHandler.GetFacets)
	r.Get("/clients", clientsHandler.GetClients)

	r.Mount("/{dataset}", dashboardHandler.Routes())
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start serves HTTP in the background. cancel is called if the listener fails.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	counts := a.Dashboard.Counts()
	a.Logger.InfoContext(ctx, "Starting server",
		slog.Int("port", a.Config.Server.Port),
		slog.String("dataset", string(a.Dashboard.DefaultDataset())),
		slog.Int("invoices", counts["invoices"]),
		slog.Int("contracts", counts["contracts"]),
		slog.Int("sales", counts["sales"]))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			infrastructure.WithError(a.Logger, err).ErrorContext(ctx, "Server error")
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "Application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))
	return nil
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		infrastructure.WithError(a.Logger, err).ErrorContext(ctx, "Failed to close log file")
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete",
		slog.Duration("uptime", time.Since(a.Dashboard.LoadedAt())))
	return nil
}

// Run runs the application until interrupted or the listener fails
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal")
	case <-ctx.Done():
		a.Stop(context.Background())
		return errors.New("server stopped unexpectedly")
	}

	return a.Stop(ctx)
}
