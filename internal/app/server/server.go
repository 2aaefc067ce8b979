package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrmdash/internal/domain/accounts"
	"hrmdash/internal/domain/attendance"
	"hrmdash/internal/domain/employees"
	"hrmdash/internal/domain/feedback"
	"hrmdash/internal/domain/payroll"
	"hrmdash/internal/domain/reports"
	"hrmdash/internal/domain/search"
	"hrmdash/internal/domain/settings"
	"hrmdash/internal/platform/config"
	"hrmdash/internal/platform/db"
	"hrmdash/internal/platform/metrics"
	"hrmdash/internal/transport/http/api"
	accountshandler "hrmdash/internal/transport/http/handlers/accounts"
	attendancehandler "hrmdash/internal/transport/http/handlers/attendance"
	authhandler "hrmdash/internal/transport/http/handlers/auth"
	employeeshandler "hrmdash/internal/transport/http/handlers/employees"
	feedbackhandler "hrmdash/internal/transport/http/handlers/feedback"
	payrollhandler "hrmdash/internal/transport/http/handlers/payroll"
	reportshandler "hrmdash/internal/transport/http/handlers/reports"
	searchhandler "hrmdash/internal/transport/http/handlers/search"
	settingshandler "hrmdash/internal/transport/http/handlers/settings"
	"hrmdash/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  http.Handler
	Metrics *metrics.Collector
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed failed: %w", err)
		}
	}

	app := &App{
		Config:  cfg,
		DB:      pool,
		Metrics: metrics.New(),
	}
	app.Router = app.buildRouter()
	return app, nil
}

func (a *App) buildRouter() http.Handler {
	cfg := a.Config

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Metrics(a.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := a.DB.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, a.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	accountStore := accounts.NewStore(a.DB)

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(accountStore, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)
		accountshandler.NewHandler(accountStore).RegisterRoutes(r)
		employeeshandler.NewHandler(employees.NewStore(a.DB)).RegisterRoutes(r)
		attendancehandler.NewHandler(attendance.NewStore(a.DB)).RegisterRoutes(r)
		payrollhandler.NewHandler(payroll.NewStore(a.DB)).RegisterRoutes(r)
		reportshandler.NewHandler(reports.NewStore(a.DB)).RegisterRoutes(r)
		feedbackhandler.NewHandler(feedback.NewStore(a.DB)).RegisterRoutes(r)
		settingshandler.NewHandler(settings.NewStore(a.DB)).RegisterRoutes(r)
		searchhandler.NewHandler(search.New(a.DB)).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return router
}

func (a *App) Run() error {
	slog.Info("server listening", "addr", a.Config.Addr, "env", a.Config.Environment)
	return http.ListenAndServe(a.Config.Addr, a.Router)
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

// spaHandler serves the built dashboard, falling back to index.html so
// client-side routes resolve on refresh.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
