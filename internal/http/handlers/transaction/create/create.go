// Package create реализует HTTP-обработчик записи новой рабочей сессии.
//
// Handler принимает JSON-запрос с данными сессии, валидирует их, вызывает
// бизнес-логику записи и возвращает созданную запись с рассчитанной оплатой.
// Если часы не переданы, но заданы обе отметки времени, длительность
// вычисляется из интервала на стороне сервиса.
package create

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/ledger"
	"github.com/magabrotheeeer/paytracker/internal/lib/sl"
	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Handler управляет HTTP-запросами на запись рабочих сессий.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики записи рабочей сессии.
type Service interface {
	RecordTransaction(req models.DummyTransaction) (models.Transaction, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Записать рабочую сессию
// @Description Записывает выполненную работу и рассчитывает оплату. Итог = часы * ставка, статус всегда Pending.
// @Tags Transactions
// @Accept  json
// @Produce  json
// @Param request body models.DummyTransaction true "Данные рабочей сессии"
// @Success 200 {object} response.OKResponse "Сессия записана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /transactions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transaction.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyTransaction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	tx, err := h.service.RecordTransaction(req)
	if err != nil {
		var verrs ledger.ValidationErrors
		if errors.As(err, &verrs) {
			log.Error("draft rejected", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.FieldErrors(verrs))
			return
		}
		log.Error("failed to record work session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not record work session"))
		return
	}

	log.Info("work session recorded",
		slog.String("id", tx.ID),
		slog.Float64("total", tx.Total))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"transaction": tx,
	}))
}
