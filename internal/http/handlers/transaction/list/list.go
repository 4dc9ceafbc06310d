// Package list реализует HTTP-обработчик списка рабочих сессий с поиском
// по имени работника или услуге.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Handler управляет HTTP-запросами на список рабочих сессий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка сессий.
type Service interface {
	ListTransactions(search string) []models.Transaction
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список рабочих сессий
// @Description Возвращает сессии, отфильтрованные по подстроке имени работника или услуги. Пустой search возвращает все.
// @Tags Transactions
// @Produce  json
// @Param search query string false "Подстрока для поиска"
// @Success 200 {object} response.OKResponse "Список сессий"
// @Router /transactions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transaction.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	search := r.URL.Query().Get("search")
	txs := h.service.ListTransactions(search)

	log.Info("list transactions", slog.Int("count", len(txs)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":        len(txs),
		"transactions": txs,
	}))
}
