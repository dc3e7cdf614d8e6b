package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - routes of the looking glass page.
func NewRouter(logger *slog.Logger, maps mapLister) http.Handler {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/ping", newPingHandler(logger))
	router.Get("/", NewMapsHandler(logger, maps).ServeHTTP)

	return router
}

// Start - serves the looking glass on port until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, port string, maps mapLister) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(logger, maps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("could not shut down looking glass", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
