package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wordvault/wordvault-api/internal/api"
	apiMiddleware "github.com/wordvault/wordvault-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	wordHandler := api.NewWordHandler(app.wordService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewScheduler, app.logger)
	practiceHandler := api.NewPracticeHandler(app.practiceSelector, app.config.Practice, app.logger)
	streakHandler := api.NewStreakHandler(app.streakCalculator, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		// Vocabulary management
		r.Post("/words", wordHandler.RegisterWord)
		r.Get("/words/{id}", wordHandler.GetWord)
		r.Delete("/words/{id}", wordHandler.DeleteWord)

		// Review scheduling
		r.Post("/words/{id}/review", reviewHandler.RecordReview)
		r.Post("/words/{id}/postpone", reviewHandler.PostponeReview)

		// Practice sessions and streaks
		r.Get("/practice", practiceHandler.SelectWords)
		r.Get("/streak", streakHandler.GetStreak)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
