package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/deps"
	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/mw"
)

func init() { Register("public", registerPublic) }

// /api and /ui share one limiter so a client's budget covers both.
func registerPublic(r chi.Router, d deps.Deps) {
	r.Group(func(r chi.Router) {
		r.Use(mw.EnforceHost(d.AllowedHosts, d.Logger))
		r.Use(mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateLimitBurst,
			RefillPerIPPerMin: d.RateLimitPerMin,
			MaxEntries:        10000,
			TrustProxy:        d.TrustProxy,
			Now:               d.TimeNow,
			Logger:            d.Logger,
		}))

		r.Route("/api", func(r chi.Router) {
			r.Get("/summary", handlers.Summary(d))
			r.Get("/services/{id}", handlers.Service(d))
			r.Get("/services/{id}/webhooks", handlers.WebHooks(d))
			r.Get("/services/{id}/webhook-modal/{action}", handlers.WebHookModal(d))
		})

		r.Route("/ui", func(r chi.Router) {
			r.Get("/services/{id}/update-info", handlers.UpdateInfo(d))
			r.Get("/approvals", handlers.Approvals(d))
		})
	})
}
