package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/deps"
	"github.com/MrSnakeDoc/releasewatch/internal/logger"
)

const defaultReadyTimeout = 2 * time.Second

type readyzResponse struct {
	Ready  bool   `json:"ready"`
	Source string `json:"source"`
	Error  string `json:"error,omitempty"`
}

// Readyz reports whether the summary source answers.
func Readyz(d deps.Deps) http.HandlerFunc {
	timeout := d.ReadyTimeout
	if timeout <= 0 {
		timeout = defaultReadyTimeout
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp := readyzResponse{Ready: true, Source: d.Source.Name()}
		status := http.StatusOK
		if err := d.Source.Ping(ctx); err != nil {
			d.Logger.Warn("readiness check failed",
				logger.String("source", resp.Source),
				logger.Error(err))
			resp.Ready = false
			resp.Error = err.Error()
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, resp)
	}
}
