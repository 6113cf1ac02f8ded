// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/cart"
	cartmongo "github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/cart/mongo"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/catalog"
	catalogmongo "github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/catalog/mongo"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/config"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/identity"
	identityjwt "github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/identity/jwt"
	identitymongo "github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/identity/mongo"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/pkg/ctxlog"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/pkg/httputil"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/pkg/metrics"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/pkg/mongodb"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/version"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// App represents the application instance.
type App struct {
	config        *config.Config
	logger        *slog.Logger
	client        *mongo.Client
	db            *mongo.Database
	server        *http.Server
	metricsServer *http.Server
}

// New creates a new application instance: it connects to MongoDB, ensures
// indexes, and assembles both HTTP servers.
func New(cfg *config.Config) (*App, error) {
	logger := initLogger(cfg.Log)
	slog.SetDefault(logger)

	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer connectCancel()

	client, err := mongodb.Connect(connectCtx, mongodb.Config{
		URI:             cfg.Mongo.URI,
		ConnectTimeout:  cfg.Mongo.ConnectTimeout,
		ConnectAttempts: cfg.Mongo.ConnectAttempts,
		Monitor:         metrics.NewCommandMonitor(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer indexCancel()

	if err := mongodb.EnsureIndexes(indexCtx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	app := &App{
		config: cfg,
		logger: logger,
		client: client,
		db:     db,
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           app.setupRouter(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Metrics server on separate port
	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	app.metricsServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MetricsPort),
		Handler:           metricsRouter,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return app, nil
}

// Run starts the HTTP servers.
func (a *App) Run() error {
	go func() {
		a.logger.Info("starting metrics server",
			"host", a.config.Server.Host,
			"port", a.config.Server.MetricsPort,
		)
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("metrics server error", "error", err)
		}
	}()

	a.logger.Info("starting server",
		"host", a.config.Server.Host,
		"port", a.config.Server.Port,
	)

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")

	var wg sync.WaitGroup
	var errs []error
	var mu sync.Mutex

	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := a.server.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
			mu.Unlock()
		}
	}()

	go func() {
		defer wg.Done()
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
			mu.Unlock()
		}
	}()

	wg.Wait()

	if err := a.client.Disconnect(ctx); err != nil {
		errs = append(errs, fmt.Errorf("disconnect mongodb: %w", err))
	}

	return errors.Join(errs...)
}

// Router returns the HTTP handler for testing.
func (a *App) Router() http.Handler {
	return a.server.Handler
}

// Database returns the MongoDB database handle. Used in tests for seeding.
func (a *App) Database() *mongo.Database {
	return a.db
}

func (a *App) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware must be first to measure full request time
	r.Use(httputil.MetricsMiddleware)

	// CORS must be early to handle preflight requests before other middleware
	r.Use(httputil.CORSMiddleware(a.config.CORS.AllowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLoggerMiddleware(a.logger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httputil.Text(w, http.StatusOK, "Restaurant is Open now!")
	})
	r.Get("/healthz", a.healthzHandler)
	r.Get("/readyz", a.readyzHandler)
	r.Get("/version", a.versionHandler)

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		http.ServeFile(w, r, "api/openapi/openapi.yaml")
	})

	r.Get("/docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Bistro Boss API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        SwaggerUIBundle({
            url: "/api/openapi.yaml",
            dom_id: '#swagger-ui',
            presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
            layout: "BaseLayout"
        });
    </script>
</body>
</html>`))
	})

	tokens := identityjwt.NewAuthenticator(identityjwt.Config{
		Secret:         a.config.JWT.Secret,
		AccessTokenTTL: a.config.JWT.AccessTokenTTL,
	})

	identityRepo := identitymongo.NewRepository(a.db)
	identityService := identity.NewService(identityRepo)
	identityHandler := identity.NewHandler(identityService, tokens)

	catalogHandler := catalog.NewHandler(catalogmongo.NewRepository(a.db))
	cartHandler := cart.NewHandler(cartmongo.NewRepository(a.db))

	identityHandler.RegisterPublicRoutes(r)
	catalogHandler.RegisterRoutes(r)
	cartHandler.RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(httputil.AuthMiddleware(tokens))

		identityHandler.RegisterProtectedRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(httputil.RequireAdmin(identityService))
			identityHandler.RegisterAdminRoutes(r)
		})
	})

	return r
}

func (a *App) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) readyzHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.client.Ping(ctx, readpref.Primary()); err != nil {
		ctxlog.FromContext(r.Context()).Error("readiness check failed", "error", err)
		httputil.Text(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) versionHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"version":    version.Version,
		"commit":     version.GitCommit,
		"build_date": version.BuildDate,
	})
}

func initLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
