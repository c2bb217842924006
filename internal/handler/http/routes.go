package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/promptkeep/prompt-keeper/internal/workers"
)

// Init wires the full route tree.
//
// Three admission regimes exist: /api/auth carries the tight
// per-origin limit, /api/public carries the loose one, and the
// authenticated resource routes carry none. Both limiters keep a
// cleanup goroutine running until StopWorkers is called.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", authTokenHeader, traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	authLimiter := NewRateLimiter(h.cfg.Server.AuthRateLimit)
	publicLimiter := NewRateLimiter(h.cfg.Server.PublicRateLimit)
	h.workers = workers.NewWorkers(authLimiter, publicLimiter)
	h.workers.Run()

	router.Get("/api/health", h.health)

	router.Route("/api/auth", func(r chi.Router) {
		r.Use(h.withRateLimit(authLimiter))

		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.With(h.auth).Get("/me", h.me)
	})

	router.Route("/api/categories", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createCategory)
		r.Get("/", h.listCategories)
		r.Get("/{id}", h.getCategory)
		r.Put("/{id}", h.updateCategory)
		r.Delete("/{id}", h.deleteCategory)
	})

	router.Route("/api/prompts", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createPrompt)
		r.Get("/", h.listPrompts)
		r.Get("/{id}", h.getPrompt)
		r.Put("/{id}", h.updatePrompt)
		r.Delete("/{id}", h.deletePrompt)
	})

	router.Route("/api/public/prompts", func(r chi.Router) {
		r.Use(h.withRateLimit(publicLimiter))

		r.Get("/", h.listPublicPrompts)
		r.Post("/", h.createAnonymousPrompt)
		r.Get("/{id}", h.getPublicPrompt)
		r.Post("/{id}/vote", h.votePrompt)
		r.With(h.identify).Post("/{id}/comment", h.commentPrompt)
	})

	return router
}
