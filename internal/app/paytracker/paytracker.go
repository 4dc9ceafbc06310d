// Package paytracker собирает приложение учета работников и выплат:
// хранилище сессии, бизнес-логику и HTTP-сервер.
package paytracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/paytracker/internal/config"
	trackerservice "github.com/magabrotheeeer/paytracker/internal/services/tracker"
	"github.com/magabrotheeeer/paytracker/internal/session"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	store  *session.Store
}

func New(cfg *config.Config, logger *slog.Logger) *App {
	store := session.New()
	if cfg.SeedDemoData {
		store.SeedDemo()
		logger.Info("demo data seeded")
	}

	trackerService := trackerservice.NewTrackerService(store, cfg.ServiceTemplates, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, trackerService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
