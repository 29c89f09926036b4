package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Compress(compressionLevel, "application/json"))
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/verify-email", h.verifyEmail)
			r.Post("/password/forgot", h.forgotPassword)
			r.Post("/password/reset", h.resetPassword)

			r.With(h.OptionalAuth).Get("/session", h.session)

			r.Group(func(r chi.Router) {
				r.Use(h.RequireAuth)
				r.Get("/me", h.me)
				r.Delete("/me", h.deleteMe)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.RequireAuth, h.Authorize(models.RoleAdmin))
			r.Patch("/users/{id}/status", h.setAccountStatus)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
