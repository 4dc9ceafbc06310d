// Package workers реализует HTTP-обработчик аналитики по каждому работнику:
// отработанные часы, заработок, задолженность, последняя сессия.
package workers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/report"
)

// Handler управляет HTTP-запросами на аналитику по работникам.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики аналитики по работникам.
type Service interface {
	WorkerInsights() []report.WorkerInsights
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение аналитики по работникам.
// @Summary Аналитика по работникам
// @Description Возвращает статистику часов, заработка и задолженности по каждому работнику
// @Tags reports
// @Produce json
// @Success 200 {object} response.OKResponse
// @Router /api/v1/reports/workers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.workers"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	insights := h.service.WorkerInsights()

	log.Info("worker insights built", slog.Int("count", len(insights)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":   len(insights),
		"workers": insights,
	}))
}
