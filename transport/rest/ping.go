package rest

import (
	"log/slog"
	"net/http"
	"time"
)

// pingHandler - liveness of the looking glass itself; it never calls the game service.
type pingHandler struct {
	logger  *slog.Logger
	started time.Time
}

func newPingHandler(logger *slog.Logger) *pingHandler {
	return &pingHandler{
		logger:  logger.With("handler", "ping"),
		started: time.Now(),
	}
}

func (that *pingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Uptime", time.Since(that.started).Truncate(time.Second).String())
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Warn("could not answer ping", "remote", r.RemoteAddr, "error", err)
		return
	}

	that.logger.Debug("ping answered", "remote", r.RemoteAddr)
}
