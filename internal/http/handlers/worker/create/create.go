// Package create реализует HTTP-обработчик добавления нового работника.
//
// Handler принимает JSON-запрос с данными работника, валидирует их, вызывает
// бизнес-логику добавления и возвращает созданную запись в JSON-формате.
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

// Handler управляет HTTP-запросами на добавление работников.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления работника.
type Service interface {
	AddWorker(req models.DummyWorker) (models.Worker, error)
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
// @Summary Добавить работника
// @Description Добавляет нового работника в команду. Возвращает созданную запись.
// @Tags Workers
// @Accept  json
// @Produce  json
// @Param request body models.DummyWorker true "Данные нового работника"
// @Success 200 {object} response.OKResponse "Работник добавлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /workers [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.worker.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyWorker
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

	worker, err := h.service.AddWorker(req)
	if err != nil {
		var verrs ledger.ValidationErrors
		if errors.As(err, &verrs) {
			log.Error("draft rejected", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.FieldErrors(verrs))
			return
		}
		log.Error("failed to add worker", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add worker"))
		return
	}

	log.Info("worker added", slog.String("id", worker.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"worker": worker,
	}))
}
