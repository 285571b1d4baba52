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
	router.Use(h.sessionContext)

	// routes reachable without an established session
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Get("/secrets", h.secrets)
		r.Get("/auth/google", h.googleLogin)
		r.Get("/auth/google/secrets", h.googleCallback)
	})

	// routes requiring a resolved principal
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/submit", h.submitPage)
		r.Post("/submit", h.submit)
	})

	return router
}
