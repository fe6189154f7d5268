package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates the HTTP router with all routes and middleware
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.GetHealth)

		r.Post("/signup", h.Signup)
		r.Post("/signin", h.Signin)

		r.Group(func(r chi.Router) {
			r.Use(h.withAuth)

			r.Route("/dice", func(r chi.Router) {
				r.With(rateLimiter(h.rollRateLimit, h.rollRateWindow)).
					Post("/roll", h.RollDice)

				r.Group(func(r chi.Router) {
					r.Use(rateLimiter(h.statusRateLimit, h.statusRateWindow))
					r.Get("/pools", h.GetPools)
					r.Get("/stats", h.GetStats)
				})

				r.Get("/health", h.GetDiceHealth)
			})

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)

				r.Route("/users/me", func(r chi.Router) {
					r.Get("/", h.GetMe)
					r.Patch("/", h.UpdateMe)
				})

				r.Route("/history", func(r chi.Router) {
					r.Get("/", h.GetHistory)
					r.Post("/", h.SaveHistory)
				})
			})
		})
	})

	return r
}
