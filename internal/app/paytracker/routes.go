// Package paytracker предоставляет маршруты для основного приложения.
package paytracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/paytracker/internal/http/handlers/health"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/report/methods"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/report/months"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/report/services"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/report/summary"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/report/workers"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/templates"
	txcreate "github.com/magabrotheeeer/paytracker/internal/http/handlers/transaction/create"
	txlist "github.com/magabrotheeeer/paytracker/internal/http/handlers/transaction/list"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/transaction/pay"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/transaction/pending"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/transaction/recent"
	txremove "github.com/magabrotheeeer/paytracker/internal/http/handlers/transaction/remove"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/worker/create"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/worker/list"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/worker/remove"
	"github.com/magabrotheeeer/paytracker/internal/http/handlers/worker/update"
	"github.com/magabrotheeeer/paytracker/internal/http/middlewarectx"
	trackerservice "github.com/magabrotheeeer/paytracker/internal/services/tracker"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, trackerService *trackerservice.TrackerService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(middlewarectx.RateLimitMiddleware(logger))
	r.Use(middlewarectx.MetricsMiddleware())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/workers", create.New(logger, trackerService).ServeHTTP)
		r.Put("/workers/{id}", update.New(logger, trackerService).ServeHTTP)
		r.Delete("/workers/{id}", remove.New(logger, trackerService).ServeHTTP)
		r.Get("/workers", list.New(logger, trackerService).ServeHTTP)

		r.Post("/transactions", txcreate.New(logger, trackerService).ServeHTTP)
		r.Post("/transactions/{id}/pay", pay.New(logger, trackerService).ServeHTTP)
		r.Delete("/transactions/{id}", txremove.New(logger, trackerService).ServeHTTP)
		r.Get("/transactions", txlist.New(logger, trackerService).ServeHTTP)
		r.Get("/transactions/pending", pending.New(logger, trackerService).ServeHTTP)
		r.Get("/transactions/recent", recent.New(logger, trackerService).ServeHTTP)

		r.Get("/reports/summary", summary.New(logger, trackerService).ServeHTTP)
		r.Get("/reports/services", services.New(logger, trackerService).ServeHTTP)
		r.Get("/reports/methods", methods.New(logger, trackerService).ServeHTTP)
		r.Get("/reports/months", months.New(logger, trackerService).ServeHTTP)
		r.Get("/reports/workers", workers.New(logger, trackerService).ServeHTTP)

		r.Get("/templates", templates.New(logger, trackerService).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
