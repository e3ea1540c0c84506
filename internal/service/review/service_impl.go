package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/domain/srs"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/store"
)

// Verify interface compliance at compile time
var _ ReviewScheduler = (*reviewSchedulerImpl)(nil)

// keyedMutex serializes work per word ID. Locks are never removed; the
// vocabulary is small and bounded, so the map stays small too.
type keyedMutex struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

// lock acquires the mutex for the given key and returns its unlock func.
func (k *keyedMutex) lock(key uuid.UUID) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// reviewSchedulerImpl implements the ReviewScheduler interface.
type reviewSchedulerImpl struct {
	wordStore  store.WordStore
	stateStore store.MemoryStateStore
	srsService srs.Service
	cooldown   time.Duration
	timeFunc   func() time.Time // Injectable for testing
	wordLocks  keyedMutex
	logger     *slog.Logger
}

// NewReviewScheduler creates a new ReviewScheduler implementation.
// The cooldown is the minimum wall-clock gap between two accepted reviews
// of the same word.
func NewReviewScheduler(
	wordStore store.WordStore,
	stateStore store.MemoryStateStore,
	srsService srs.Service,
	cooldown time.Duration,
	logger *slog.Logger,
) ReviewScheduler {
	if wordStore == nil {
		panic("wordStore cannot be nil")
	}
	if stateStore == nil {
		panic("stateStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if cooldown <= 0 {
		panic("cooldown must be positive")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &reviewSchedulerImpl{
		wordStore:  wordStore,
		stateStore: stateStore,
		srsService: srsService,
		cooldown:   cooldown,
		timeFunc:   time.Now,
		logger:     logger.With(slog.String("component", "review_scheduler")),
	}
}

// RecordReview implements ReviewScheduler.RecordReview.
func (s *reviewSchedulerImpl) RecordReview(
	ctx context.Context,
	wordID uuid.UUID,
	outcome domain.ReviewOutcome,
) (*domain.MemoryState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !outcome.IsValid() {
		log.Warn("invalid review outcome",
			slog.String("word_id", wordID.String()),
			slog.Int("outcome", int(outcome)))
		return nil, ErrInvalidOutcome
	}

	// The whole read-modify-write cycle runs under the word's lock so two
	// concurrent reviews cannot both pass the cooldown check.
	unlock := s.wordLocks.lock(wordID)
	defer unlock()

	state, err := s.loadState(ctx, wordID)
	if err != nil {
		return nil, err
	}

	now := s.timeFunc()

	if state.Reviewed() {
		elapsed := now.Sub(state.LastReview)
		if elapsed < s.cooldown {
			log.Debug("review rejected by cooldown",
				slog.String("word_id", wordID.String()),
				slog.Duration("elapsed", elapsed),
				slog.Duration("cooldown", s.cooldown))
			return nil, ErrReviewCooldown
		}
	}

	newState, err := s.srsService.CalculateNextReview(state, outcome, now)
	if err != nil {
		if errors.Is(err, srs.ErrInvalidOutcome) {
			return nil, ErrInvalidOutcome
		}
		return nil, fmt.Errorf("calculate next review: %w", err)
	}

	if err := s.stateStore.Save(ctx, newState); err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return nil, ErrWordNotFound
		}
		log.Error("failed to save memory state",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()))
		return nil, fmt.Errorf("save memory state: %w", err)
	}

	log.Debug("recorded review",
		slog.String("word_id", wordID.String()),
		slog.String("outcome", outcome.String()),
		slog.Int("review_count", newState.ReviewCount),
		slog.Time("next_review", newState.NextReview))
	return newState, nil
}

// PostponeReview implements ReviewScheduler.PostponeReview.
func (s *reviewSchedulerImpl) PostponeReview(
	ctx context.Context,
	wordID uuid.UUID,
	days int,
) (*domain.MemoryState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	unlock := s.wordLocks.lock(wordID)
	defer unlock()

	state, err := s.loadState(ctx, wordID)
	if err != nil {
		return nil, err
	}

	newState, err := s.srsService.PostponeReview(state, days, s.timeFunc())
	if err != nil {
		if errors.Is(err, srs.ErrInvalidDays) {
			return nil, ErrInvalidPostpone
		}
		return nil, fmt.Errorf("postpone review: %w", err)
	}

	if err := s.stateStore.Save(ctx, newState); err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, fmt.Errorf("save memory state: %w", err)
	}

	log.Debug("postponed review",
		slog.String("word_id", wordID.String()),
		slog.Int("days", days),
		slog.Time("next_review", newState.NextReview))
	return newState, nil
}

// loadState fetches the word's memory state, verifying the word exists
// first. A missing or malformed state is replaced by a fresh initial state
// rather than surfaced as an error.
func (s *reviewSchedulerImpl) loadState(
	ctx context.Context,
	wordID uuid.UUID,
) (*domain.MemoryState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.wordStore.GetByID(ctx, wordID); err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, fmt.Errorf("get word: %w", err)
	}

	state, err := s.stateStore.Get(ctx, wordID)
	if err == nil {
		return state, nil
	}

	switch {
	case errors.Is(err, store.ErrMemoryStateNotFound):
		log.Debug("no stored memory state, initializing",
			slog.String("word_id", wordID.String()))
	case errors.Is(err, store.ErrMalformedState):
		log.Warn("stored memory state is malformed, reinitializing",
			slog.String("word_id", wordID.String()),
			slog.String("error", err.Error()))
	default:
		return nil, fmt.Errorf("get memory state: %w", err)
	}

	return s.srsService.InitialState(wordID, s.timeFunc())
}
