package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/api/handler"
	mw "github.com/NextAI-Gen/Credit-approval-system/internal/api/middleware"
	"github.com/NextAI-Gen/Credit-approval-system/internal/config"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/lending"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(lendingService lending.LendingService, customerService customer.CustomerService, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)

	customerHandler := handler.NewCustomerHandler(customerService, logger)
	loanHandler := handler.NewLoanHandler(lendingService, logger)

	router.Post("/register", customerHandler.Register)
	router.Post("/check-eligibility", loanHandler.CheckEligibility)
	router.Post("/create-loan", loanHandler.CreateLoan)
	router.Get("/view-loan/{loanID}", loanHandler.GetLoan)
	router.Get("/view-loans/{customerID}", loanHandler.ListByCustomer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	if !cfg.Metrics.Enabled {
		return
	}
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}
