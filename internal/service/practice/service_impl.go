package practice

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/store"
)

// bucket classifies a word by review urgency.
type bucket int

const (
	bucketFresh bucket = iota
	bucketDue
	bucketLearning
	bucketMastered
)

// learningStabilityCeiling separates words still being learned from words
// considered mastered. Stability is measured in days.
const learningStabilityCeiling = 30.0

// bucketWeights controls how many shuffle slots each bucket contributes
// per word. Due words are the most likely picks, mastered the least.
var bucketWeights = map[bucket]int{
	bucketFresh:    2,
	bucketDue:      4,
	bucketLearning: 3,
	bucketMastered: 1,
}

// String returns the bucket name used in logs.
func (b bucket) String() string {
	switch b {
	case bucketFresh:
		return "fresh"
	case bucketDue:
		return "due"
	case bucketLearning:
		return "learning"
	case bucketMastered:
		return "mastered"
	default:
		return "unknown"
	}
}

// classify assigns a listed word to its urgency bucket. Records that could
// not be read are treated as mastered, the lowest-urgency bucket, so a
// corrupt row cannot flood sessions.
func classify(entry store.ListedState, now time.Time) bucket {
	if entry.Malformed {
		return bucketMastered
	}

	state := entry.State
	if state == nil || !state.Reviewed() {
		return bucketFresh
	}
	if !state.NextReview.After(now) {
		return bucketDue
	}
	if state.Stability <= learningStabilityCeiling {
		return bucketLearning
	}
	return bucketMastered
}

// Verify interface compliance at compile time
var _ PracticeSelector = (*practiceSelectorImpl)(nil)

// practiceSelectorImpl implements the PracticeSelector interface.
type practiceSelectorImpl struct {
	stateStore store.MemoryStateStore
	timeFunc   func() time.Time // Injectable for testing

	mu  sync.Mutex // guards rng, which is not safe for concurrent use
	rng *rand.Rand

	logger *slog.Logger
}

// NewPracticeSelector creates a new PracticeSelector implementation.
// If rng is nil a time-seeded source is used; tests pass a fixed seed.
func NewPracticeSelector(
	stateStore store.MemoryStateStore,
	rng *rand.Rand,
	logger *slog.Logger,
) PracticeSelector {
	if stateStore == nil {
		panic("stateStore cannot be nil")
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &practiceSelectorImpl{
		stateStore: stateStore,
		timeFunc:   time.Now,
		rng:        rng,
		logger:     logger.With(slog.String("component", "practice_selector")),
	}
}

// SelectWords implements PracticeSelector.SelectWords.
// Each word appears in the draw pool once per weight unit of its bucket;
// a uniform shuffle of the pool followed by first-seen deduplication gives
// every word a chance while biasing toward urgent buckets.
func (s *practiceSelectorImpl) SelectWords(
	ctx context.Context,
	limit int,
) ([]uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	listed, err := s.stateStore.List(ctx)
	if err != nil {
		log.Error("failed to list memory states", slog.String("error", err.Error()))
		return nil, fmt.Errorf("list memory states: %w", err)
	}
	if len(listed) == 0 {
		return []uuid.UUID{}, nil
	}

	now := s.timeFunc()

	pool := make([]uuid.UUID, 0, len(listed)*bucketWeights[bucketDue])
	for _, entry := range listed {
		weight := bucketWeights[classify(entry, now)]
		for i := 0; i < weight; i++ {
			pool = append(pool, entry.WordID)
		}
	}

	s.mu.Lock()
	// Fisher-Yates; every permutation of the pool is equally likely.
	for i := len(pool) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	s.mu.Unlock()

	selected := make([]uuid.UUID, 0, limit)
	seen := make(map[uuid.UUID]struct{}, limit)
	for _, id := range pool {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		selected = append(selected, id)
		if len(selected) == limit {
			break
		}
	}

	log.Debug("selected practice words",
		slog.Int("limit", limit),
		slog.Int("vocabulary", len(listed)),
		slog.Int("selected", len(selected)))
	return selected, nil
}
