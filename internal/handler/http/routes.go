package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every API route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withHashCheck)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/send-otp", h.sendOTP)
		r.Post("/api/auth/verify-otp", h.verifyOTP)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/users/{userID}", func(r chi.Router) {
			r.Use(h.sameUser("userID"))
			r.Get("/settings", h.getSettings)
			r.Put("/settings", h.updateSettings)
		})

		// GET takes the owner id, PUT and DELETE the resource id. Both share
		// one param name so chi sees a single wildcard.
		r.Route("/api/categories", func(r chi.Router) {
			r.With(h.sameUser("id")).Get("/{id}", h.listCategories)
			r.Post("/", h.createCategory)
			r.Put("/{id}", h.updateCategory)
			r.Delete("/{id}", h.deleteCategory)
		})

		r.Route("/api/entries", func(r chi.Router) {
			r.With(h.sameUser("id")).Get("/{id}", h.listEntries)
			r.Post("/", h.createEntry)
			r.Put("/{id}", h.updateEntry)
			r.Delete("/{id}", h.deleteEntry)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
