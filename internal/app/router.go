// Package app assembles the dashboard router and server.
package app

import (
	"time"

	"linkboard/internal/config"
	"linkboard/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitMiddleware - initializes middleware handlers for the router.
func InitMiddleware(r *chi.Mux, conf *config.Config, ctrl *handlers.Controller) {
	r.Use(ctrl.PanicRecoveryMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(conf.Timeout) * time.Second))
	r.Use(ctrl.LoggingMiddleware)

	r.Mount("/debug", middleware.Profiler())
}

// Routing - registers the dashboard routes.
// Public routes:
//   - GET/POST "/login", "/register": auth entry flows.
//   - GET "/forgot": recovery guidance.
//
// Protected routes (session guard; unauthenticated visitors are
// redirected to "/login"):
//   - GET "/": link collection dashboard.
//   - POST "/links": shorten a URL.
//   - GET "/links/{shortKey}": link details and stats.
//   - GET "/links/{shortKey}/qr": QR code download.
//   - POST "/links/{shortKey}/delete": delete a link.
//   - GET "/settings", POST "/settings/password", POST "/settings/username":
//     account mutation flows.
//   - POST "/logout": end the session.
func Routing(r *chi.Mux, ctrl *handlers.Controller) {
	r.Get("/login", ctrl.LoginPage())
	r.Post("/login", ctrl.LoginSubmit())
	r.Get("/register", ctrl.RegisterPage())
	r.Post("/register", ctrl.RegisterSubmit())
	r.Get("/forgot", ctrl.ForgotPassword())

	r.Group(func(r chi.Router) {
		r.Use(ctrl.RequireSession)
		r.Get("/", ctrl.Dashboard())
		r.Post("/links", ctrl.ShortenLink())
		r.Get("/links/{shortKey}", ctrl.LinkDetails())
		r.Get("/links/{shortKey}/qr", ctrl.LinkQR())
		r.Post("/links/{shortKey}/delete", ctrl.DeleteLink())
		r.Get("/settings", ctrl.SettingsPage())
		r.Post("/settings/password", ctrl.ChangePassword())
		r.Post("/settings/username", ctrl.ChangeUsername())
		r.Post("/logout", ctrl.Logout())
	})
}
