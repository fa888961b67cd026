package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{traceIDHeader},
	}
}

// Init builds the router. Layers run outside in: panic recovery, CORS,
// compression, trace id, access log, inspection, optional request timeout
// and finally the route table.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(corsOptions()))
	router.Use(withCompression)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withInspection)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.hello)
	router.Get("/page", h.listItems)
	router.Get("/version", h.getServerVersion)

	router.NotFound(writeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
