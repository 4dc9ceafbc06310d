// Package services реализует HTTP-обработчик разбивки выручки по видам услуг.
package services

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/report"
)

// Handler управляет HTTP-запросами на разбивку по услугам.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики разбивки по услугам.
type Service interface {
	ServiceBreakdown() []report.ServiceStats
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.services"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats := h.service.ServiceBreakdown()

	log.Info("service breakdown built", slog.Int("count", len(stats)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":    len(stats),
		"services": stats,
	}))
}
