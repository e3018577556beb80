package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/linentrack/pkg/app"
	"github.com/ghuser/linentrack/pkg/auth"
	"github.com/ghuser/linentrack/services/cartlog/application/handlers"
	appsvcs "github.com/ghuser/linentrack/services/cartlog/application/services"
)

// CartLogRoutes registers cart-log endpoints on the provided chi router.
// All endpoints require a valid bearer access token.
func CartLogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.Tokens, a.Logger))
		r.Route("/cartlogs", func(r chi.Router) {
			r.Get("/", handlers.NewListCartLogsHandler(svcs).Execute)
			r.Get("/{cartLogId}", handlers.NewGetCartLogHandler(svcs).Execute)
			r.Post("/upsert", handlers.NewUpsertCartLogHandler(svcs).Execute)
			r.Delete("/{cartLogId}", handlers.NewDeleteCartLogHandler(svcs).Execute)
		})
	})
}
