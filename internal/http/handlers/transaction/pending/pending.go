// Package pending реализует HTTP-обработчик списка неоплаченных сессий
// с общей суммой к выплате.
package pending

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Handler управляет HTTP-запросами на список неоплаченных сессий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики неоплаченных сессий.
type Service interface {
	PendingReport() ([]models.Transaction, float64)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transaction.pending"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	txs, total := h.service.PendingReport()

	log.Info("pending transactions", slog.Int("count", len(txs)), slog.Float64("total", total))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":         len(txs),
		"total_pending": total,
		"transactions":  txs,
	}))
}
