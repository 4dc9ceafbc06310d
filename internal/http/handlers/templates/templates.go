// Package templates реализует HTTP-обработчик каталога шаблонов услуг.
package templates

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Handler управляет HTTP-запросами на каталог шаблонов услуг.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики шаблонов услуг.
type Service interface {
	Templates() []models.ServiceTemplate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.templates"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tmpls := h.service.Templates()

	log.Info("templates listed", slog.Int("count", len(tmpls)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":     len(tmpls),
		"templates": tmpls,
	}))
}
