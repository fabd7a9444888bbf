package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/etag", h.getETag)

		r.Get("/api/lists", h.getLists)
		r.Post("/api/lists", h.createList)
		r.Put("/api/lists/{listID}", h.updateList)

		r.Get("/api/lists/{listID}/tasks", h.getTasks)
		r.Post("/api/lists/{listID}/tasks", h.createTask)
		r.Put("/api/lists/{listID}/tasks/{taskID}", h.updateTask)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
