// Package remove реализует HTTP-обработчик удаления работника.
//
// Удаление жёсткое: история рабочих сессий остаётся нетронутой и хранит
// снимок имени. Подтверждение удаления — забота вызывающей стороны.
package remove

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
)

// Handler управляет HTTP-запросами на удаление работников.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления работника.
type Service interface {
	RemoveWorker(id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.worker.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.RemoveWorker(id); err != nil {
		if errors.Is(err, ledger.ErrWorkerNotFound) {
			log.Error("worker not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("worker not found"))
			return
		}
		log.Error("failed to remove worker", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove worker"))
		return
	}

	log.Info("worker removed", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
