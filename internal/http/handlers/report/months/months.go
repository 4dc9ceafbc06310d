// Package months реализует HTTP-обработчик сравнения выручки текущего
// и предыдущего месяцев.
package months

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/paytracker/internal/http/response"
	"github.com/magabrotheeeer/paytracker/internal/report"
)

// Handler управляет HTTP-запросами на сравнение месяцев.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сравнения месяцев.
type Service interface {
	CompareMonths() report.MonthComparison
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.months"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cmp := h.service.CompareMonths()

	log.Info("month comparison built")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"comparison": cmp,
	}))
}
