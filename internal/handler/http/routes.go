package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRequestToken,
		h.withRecover,
		cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestTokenHeader},
			ExposedHeaders: []string{requestTokenHeader, requestIDHeader, apiVersionHeader, traceIDHeader},
			MaxAge:         300,
		}),
		middleware.StripSlashes,
	)
	if h.requestTimeout > 0 {
		router.Use(h.withTimeout)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	// liveness and metrics
	router.Get("/", h.appRunning)
	router.Get("/test", h.test)
	router.Method(http.MethodGet, "/metrics", h.metrics.exposition())

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Post("/logout", h.logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Patch("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})

		r.Route("/posts", func(r chi.Router) {
			// routes without authorization
			r.Post("/", h.createPost)
			r.Get("/{id}", h.getPost)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/", h.listPosts)
				r.Put("/{id}", h.updatePost)
				r.Delete("/{id}", h.deletePost)
			})
		})
	})

	return router
}
