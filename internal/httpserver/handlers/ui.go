package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/deps"
	"github.com/MrSnakeDoc/releasewatch/internal/logger"
)

// UpdateInfo renders the From/To fragment of one service.
// The optional visible query parameter defaults to true.
func UpdateInfo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visible := true
		if v := r.URL.Query().Get("visible"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "visible must be a boolean"})
				return
			}
			visible = b
		}

		svc, err := d.Source.Service(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		var buf bytes.Buffer
		if err := d.Renderer.UpdateInfo(&buf, *svc, visible); err != nil {
			renderFailed(w, d, err)
			return
		}
		writeHTML(w, buf.Bytes())
	}
}

// Approvals renders every service card in display order.
func Approvals(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := d.Source.MonitorSummary(r.Context())
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		hooks, err := d.Source.AllWebHooks(r.Context())
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		var buf bytes.Buffer
		if err := d.Renderer.Approvals(&buf, summary, hooks); err != nil {
			renderFailed(w, d, err)
			return
		}
		writeHTML(w, buf.Bytes())
	}
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func renderFailed(w http.ResponseWriter, d deps.Deps, err error) {
	d.Logger.Error("template rendering failed", logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
