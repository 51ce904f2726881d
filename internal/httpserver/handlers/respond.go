package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/releasewatch/internal/domain"
	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/deps"
	"github.com/MrSnakeDoc/releasewatch/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrServiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidModalType):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// writeError logs source failures and answers with a JSON error body.
// Messages of 5xx errors are not exposed to the client.
func writeError(w http.ResponseWriter, r *http.Request, d deps.Deps, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		d.Logger.Error("summary source failed",
			logger.String("source", d.Source.Name()),
			logger.String("path", r.URL.Path),
			logger.Error(err))
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
