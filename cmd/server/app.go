package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordvault/wordvault-api/internal/config"
	"github.com/wordvault/wordvault-api/internal/domain/srs"
	"github.com/wordvault/wordvault-api/internal/events"
	"github.com/wordvault/wordvault-api/internal/platform/postgres"
	"github.com/wordvault/wordvault-api/internal/service"
	"github.com/wordvault/wordvault-api/internal/service/auth"
	"github.com/wordvault/wordvault-api/internal/service/practice"
	"github.com/wordvault/wordvault-api/internal/service/review"
	"github.com/wordvault/wordvault-api/internal/service/streak"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool

	jwtService       auth.JWTService
	wordService      service.WordService
	reviewScheduler  review.ReviewScheduler
	practiceSelector practice.PracticeSelector
	streakCalculator streak.StreakCalculator
}

// newApplication constructs every service from configuration and the
// database pool. Wiring order follows the dependency direction: stores,
// then the memory model, then the services that combine them.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
) (*application, error) {
	notifier := events.NewNotifier(logger)
	wordStore := postgres.NewPostgresWordStore(pool, logger)
	stateStore := postgres.NewPostgresMemoryStateStore(pool, notifier, logger)

	// Dashboards and other observers subscribe here, before the first
	// write. For now every accepted state change is logged.
	stateStore.OnChange(events.StateChangeHandlerFunc(
		func(ctx context.Context, change events.StateChange) error {
			logger.Debug("memory state changed",
				slog.String("word_id", change.WordID.String()),
				slog.Int("review_count", change.State.ReviewCount))
			return nil
		}))

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("jwt service: %w", err)
	}

	srsService := srs.NewDefaultService()
	cooldown := time.Duration(cfg.Review.CooldownMinutes) * time.Minute

	return &application{
		config:      cfg,
		logger:      logger,
		pool:        pool,
		jwtService:  jwtService,
		wordService: service.NewWordService(wordStore, srsService, logger),
		reviewScheduler: review.NewReviewScheduler(
			wordStore, stateStore, srsService, cooldown, logger),
		practiceSelector: practice.NewPracticeSelector(
			stateStore, rand.New(rand.NewSource(time.Now().UnixNano())), logger),
		streakCalculator: streak.NewStreakCalculator(stateStore, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	app.pool.Close()
}
