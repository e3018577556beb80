package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/linentrack/pkg/app"
	"github.com/ghuser/linentrack/services/auth/application/handlers"
	appsvcs "github.com/ghuser/linentrack/services/auth/application/services"
)

// AuthRoutes registers credential endpoints on the provided chi router.
// These are the only unauthenticated endpoints in the API.
func AuthRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handlers.NewLoginHandler(svcs).Execute)
		r.Post("/refresh", handlers.NewRefreshHandler(svcs).Execute)
		r.Post("/logout", handlers.NewLogoutHandler(svcs).Execute)
	})
}
