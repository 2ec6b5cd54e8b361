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
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/v1/collections", h.fetchCollections)
		r.Get("/api/v1/collections/{collection}/chunks", h.fetchChunk)
		r.Post("/api/v1/changes", h.pushChange)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
