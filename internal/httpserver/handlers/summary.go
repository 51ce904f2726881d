package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/releasewatch/internal/domain"
	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/deps"
)

// Summary returns the whole MonitorSummary.
func Summary(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := d.Source.MonitorSummary(r.Context())
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// Service returns one ServiceSummary.
func Service(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, err := d.Source.Service(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, svc)
	}
}

// WebHooks returns the webhook states of a service.
func WebHooks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hooks, err := d.Source.WebHooks(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		if hooks == nil {
			hooks = domain.WebHookSummaryMap{}
		}
		writeJSON(w, http.StatusOK, hooks)
	}
}

type webHookModalResponse struct {
	Modal domain.WebHookModal     `json:"modal"`
	Data  domain.WebHookModalData `json:"data"`
}

// WebHookModal assembles the payload of the webhook action dialog.
// It does not trigger any delivery.
func WebHookModal(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modalType, err := domain.ParseModalAction(chi.URLParam(r, "action"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		id := chi.URLParam(r, "id")
		svc, err := d.Source.Service(r.Context(), id)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		hooks, err := d.Source.WebHooks(r.Context(), id)
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		writeJSON(w, http.StatusOK, webHookModalResponse{
			Modal: domain.WebHookModal{Type: modalType, Service: *svc},
			Data:  domain.NewWebHookModalData(id, hooks),
		})
	}
}
