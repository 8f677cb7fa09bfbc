package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(withGZip)
	if h.limiter != nil {
		router.Use(h.withRateLimit)
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/me", h.getMe)
			r.Get("/{userID}", h.getUser)
			r.Put("/{userID}", h.updateUser)
			r.Delete("/{userID}", h.deleteUser)
		})

		r.Route("/api/items", func(r chi.Router) {
			r.Get("/", h.listItems)
			r.Post("/", h.createItem)
			r.Get("/my", h.listMyItems)
			r.Get("/{itemID}", h.getItem)
			r.Put("/{itemID}", h.updateItem)
			r.Delete("/{itemID}", h.deleteItem)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
