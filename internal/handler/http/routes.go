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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/status", h.getServerVersion)
	})

	// replication routes, replica token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/replication/{collection}/push", h.pushBatch)
		r.Post("/api/replication/{collection}/pull", h.pullSince)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
