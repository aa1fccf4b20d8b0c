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

	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withUploadLimit)
		r.Use(withGzipBody)
		r.Post("/api/import", h.importFile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
