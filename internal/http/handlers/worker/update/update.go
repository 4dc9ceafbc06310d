// Package update реализует HTTP-обработчик изменения данных работника.
package update

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/ledger"
	"github.com/magabrotheeeer/paytracker/internal/lib/sl"
	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Handler управляет HTTP-запросами на изменение работников.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики изменения работника.
type Service interface {
	UpdateWorker(id string, req models.DummyWorker) (models.Worker, error)
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
// @Summary Изменить работника
// @Description Заменяет данные работника с указанным id, сохраняя его позицию в списке.
// @Tags Workers
// @Accept  json
// @Produce  json
// @Param id path string true "ID работника"
// @Param request body models.DummyWorker true "Новые данные работника"
// @Success 200 {object} response.OKResponse "Работник обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Работник не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /workers/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.worker.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyWorker
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	worker, err := h.service.UpdateWorker(id, req)
	if err != nil {
		var verrs ledger.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			log.Error("draft rejected", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.FieldErrors(verrs))
		case errors.Is(err, ledger.ErrWorkerNotFound):
			log.Error("worker not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("worker not found"))
		default:
			log.Error("failed to update worker", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update worker"))
		}
		return
	}

	log.Info("worker updated", slog.String("id", worker.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"worker": worker,
	}))
}
