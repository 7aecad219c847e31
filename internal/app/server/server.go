package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"koala/internal/domain/audit"
	"koala/internal/domain/auth"
	"koala/internal/domain/dtr"
	"koala/internal/domain/employee"
	"koala/internal/domain/leave"
	"koala/internal/domain/orders"
	"koala/internal/domain/payroll"
	"koala/internal/domain/tracker"
	"koala/internal/platform/config"
	"koala/internal/platform/db"
	audithandler "koala/internal/transport/http/handlers/audit"
	authhandler "koala/internal/transport/http/handlers/auth"
	dtrhandler "koala/internal/transport/http/handlers/dtr"
	employeeshandler "koala/internal/transport/http/handlers/employees"
	leaveshandler "koala/internal/transport/http/handlers/leaves"
	ordershandler "koala/internal/transport/http/handlers/orders"
	payrollhandler "koala/internal/transport/http/handlers/payroll"
	trackerhandler "koala/internal/transport/http/handlers/tracker"
	"koala/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

// New wires the full application: pool, migrations, domain services and
// the route tree. The caller owns the pool's lifetime.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	sessions, err := auth.NewService(cfg.JWTSecret, cfg.AdminPassword)
	if err != nil {
		pool.Close()
		return nil, err
	}

	auditSvc := audit.New(pool)
	employeeSvc := employee.NewService(employee.NewStore(pool), employee.RateDefaults{
		OTRate:      cfg.DefaultOTRate,
		HolidayRate: cfg.DefaultHolidayRate,
	})
	dtrSvc := dtr.NewService(dtr.NewStore(pool), employeeSvc, dtr.BreakRule{
		Threshold: cfg.BreakThresholdHours,
		Deduction: cfg.BreakDeductionHours,
	})
	payrollSvc := payroll.NewService(payroll.NewStore(pool))
	ordersSvc := orders.NewService(orders.NewStore(pool))
	leaveSvc := leave.NewService(leave.NewStore(pool), employeeSvc)
	trackerSvc := tracker.NewService(tracker.NewStore(pool), cfg.TrackerHourlyRate)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.Auth(sessions))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics)
		router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(sessions).RegisterRoutes(r)
		audithandler.NewHandler(auditSvc).RegisterRoutes(r)
		employeeshandler.NewHandler(employeeSvc, auditSvc).RegisterRoutes(r)
		dtrhandler.NewHandler(dtrSvc, auditSvc).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc, auditSvc).RegisterRoutes(r)
		ordershandler.NewHandler(ordersSvc, auditSvc).RegisterRoutes(r)
		leaveshandler.NewHandler(leaveSvc).RegisterRoutes(r)
		trackerhandler.NewHandler(trackerSvc).RegisterRoutes(r)
	})

	return &App{Config: cfg, DB: pool, Router: router}, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
