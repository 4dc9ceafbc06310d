// Package summary реализует HTTP-обработчик сводного отчета:
// количества работников и сессий, итоговые суммы, средние показатели.
package summary

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/report"
)

// Handler управляет HTTP-запросами на сводный отчет.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сводного отчета.
type Service interface {
	Summary() report.Summary
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение сводного отчета.
// @Summary Сводный отчет
// @Description Возвращает агрегированную статистику по работникам и сессиям
// @Tags reports
// @Produce json
// @Success 200 {object} response.OKResponse
// @Router /api/v1/reports/summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.summary"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sum := h.service.Summary()

	log.Info("summary report built")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"summary": sum,
	}))
}
