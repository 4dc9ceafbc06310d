// Package list реализует HTTP-обработчик списка работников с поиском по имени.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Handler управляет HTTP-запросами на список работников.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка работников.
type Service interface {
	ListWorkers(search string) []models.Worker
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список работников
// @Description Возвращает работников, отфильтрованных по подстроке имени без учёта регистра. Пустой search возвращает всех.
// @Tags Workers
// @Produce  json
// @Param search query string false "Подстрока для поиска по имени"
// @Success 200 {object} response.OKResponse "Список работников"
// @Router /workers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.worker.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	search := r.URL.Query().Get("search")
	workers := h.service.ListWorkers(search)

	log.Info("list workers", slog.Int("count", len(workers)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":   len(workers),
		"workers": workers,
	}))
}
