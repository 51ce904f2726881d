package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/deps"
	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/mw"
)

func init() { Register("health", registerHealth) }

func registerHealth(r chi.Router, d deps.Deps) {
	r.Group(func(r chi.Router) {
		r.Use(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
		r.Get("/healthz", handlers.Healthz(d))
		r.Get("/readyz", handlers.Readyz(d))
	})
}
