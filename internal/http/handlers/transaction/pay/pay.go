// Package pay реализует HTTP-обработчик оплаты рабочей сессии.
//
// Переход Pending -> Paid выполняется ровно один раз: повторная попытка
// оплаты возвращает 409, неизвестный id — 404.
package pay

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/ledger"
	"github.com/magabrotheeeer/paytracker/internal/lib/sl"
	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Handler управляет HTTP-запросами на оплату рабочих сессий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики оплаты.
type Service interface {
	MarkPaid(id string) (models.Transaction, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отметить сессию оплаченной
// @Description Переводит рабочую сессию из Pending в Paid и фиксирует момент оплаты.
// @Tags Transactions
// @Produce  json
// @Param id path string true "ID рабочей сессии"
// @Success 200 {object} response.OKResponse "Сессия оплачена"
// @Failure 404 {object} response.ErrorResponse "Сессия не найдена"
// @Failure 409 {object} response.ErrorResponse "Сессия уже оплачена"
// @Router /transactions/{id}/pay [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transaction.pay"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	tx, err := h.service.MarkPaid(id)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrTransactionNotFound):
			log.Error("transaction not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("transaction not found"))
		case errors.Is(err, ledger.ErrAlreadyPaid):
			log.Error("transaction is already paid", slog.String("id", id))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("transaction is already paid"))
		default:
			log.Error("failed to mark transaction paid", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not mark transaction paid"))
		}
		return
	}

	log.Info("payment completed",
		slog.String("id", tx.ID),
		slog.Float64("total", tx.Total))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"transaction": tx,
	}))
}
