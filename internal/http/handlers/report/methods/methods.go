// Package methods реализует HTTP-обработчик разбивки выручки по способам оплаты.
package methods

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/report"
)

// Handler управляет HTTP-запросами на разбивку по способам оплаты.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики разбивки по способам оплаты.
type Service interface {
	MethodBreakdown() []report.MethodStats
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.methods"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats := h.service.MethodBreakdown()

	log.Info("method breakdown built", slog.Int("count", len(stats)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":   len(stats),
		"methods": stats,
	}))
}
