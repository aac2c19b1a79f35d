package server

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"backoffice/internal/domain/salary"
	"backoffice/internal/platform/config"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/api"
	invoicehandler "backoffice/internal/transport/http/handlers/invoicing"
	salaryhandler "backoffice/internal/transport/http/handlers/salary"
	workloghandler "backoffice/internal/transport/http/handlers/worklog"
	"backoffice/internal/transport/http/middleware"
)

// NewRouter wires the middleware chain and every route of the service.
func NewRouter(cfg config.Config, tables salary.Tables, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.Logger(collector))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret, cfg.APIKeyHash))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
		renderLimit := middleware.RenderRateLimit(cfg.RateLimitPerMinute, time.Minute)

		invoicehandler.NewHandler(collector, cfg.InvoiceLanguage).RegisterRoutes(r, renderLimit)
		workloghandler.NewHandler(collector).RegisterRoutes(r)
		salaryhandler.NewHandler(tables, collector).RegisterRoutes(r)
	})
	return router
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	tables, err := salary.LoadTables(cfg.PayrollTaxTables)
	if err != nil {
		log.Fatalf("payroll tax tables: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg, tables, metrics.New()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("backoffice server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
}
