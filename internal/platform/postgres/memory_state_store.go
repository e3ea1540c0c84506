package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/events"
	"github.com/wordvault/wordvault-api/internal/store"
)

// PostgresMemoryStateStore implements the store.MemoryStateStore interface
// using a PostgreSQL database as the storage backend. Every successful Save
// publishes exactly one change notification.
type PostgresMemoryStateStore struct {
	pool     *pgxpool.Pool
	notifier *events.Notifier
	logger   *slog.Logger
}

// NewPostgresMemoryStateStore creates a new PostgreSQL implementation of the
// MemoryStateStore interface. The pool and notifier must be initialized and
// are managed by the caller. If logger is nil, a default logger will be used.
func NewPostgresMemoryStateStore(
	pool *pgxpool.Pool,
	notifier *events.Notifier,
	logger *slog.Logger,
) *PostgresMemoryStateStore {
	if pool == nil {
		panic("pool cannot be nil")
	}
	if notifier == nil {
		panic("notifier cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMemoryStateStore{
		pool:     pool,
		notifier: notifier,
		logger:   logger.With(slog.String("component", "memory_state_store")),
	}
}

// Ensure PostgresMemoryStateStore implements store.MemoryStateStore interface
var _ store.MemoryStateStore = (*PostgresMemoryStateStore)(nil)

// memoryStateRow holds one scanned memory_states row before validation.
// last_review is nullable; the zero time is its in-memory sentinel.
type memoryStateRow struct {
	wordID         uuid.UUID
	difficulty     float64
	stability      float64
	retrievability float64
	lastReview     *time.Time
	nextReview     time.Time
	reviewCount    int
	createdAt      time.Time
	updatedAt      time.Time
}

// toState converts a scanned row into a validated MemoryState.
// A row that fails domain validation is reported as store.ErrMalformedState
// so callers can apply their conservative fallbacks instead of crashing.
func (r memoryStateRow) toState() (*domain.MemoryState, error) {
	state := &domain.MemoryState{
		WordID:         r.wordID,
		Difficulty:     r.difficulty,
		Stability:      r.stability,
		Retrievability: r.retrievability,
		NextReview:     r.nextReview,
		ReviewCount:    r.reviewCount,
		CreatedAt:      r.createdAt,
		UpdatedAt:      r.updatedAt,
	}
	if r.lastReview != nil {
		state.LastReview = *r.lastReview
	}

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrMalformedState, err)
	}

	return state, nil
}

// nullableTime maps the zero-time sentinel to a SQL NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Get implements store.MemoryStateStore.Get.
func (s *PostgresMemoryStateStore) Get(
	ctx context.Context,
	wordID uuid.UUID,
) (*domain.MemoryState, error) {
	query := `
		SELECT word_id, difficulty, stability, retrievability,
		       last_review, next_review, review_count, created_at, updated_at
		FROM memory_states
		WHERE word_id = $1
	`

	var row memoryStateRow
	err := s.pool.QueryRow(ctx, query, wordID).Scan(
		&row.wordID,
		&row.difficulty,
		&row.stability,
		&row.retrievability,
		&row.lastReview,
		&row.nextReview,
		&row.reviewCount,
		&row.createdAt,
		&row.updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrMemoryStateNotFound
		}
		return nil, fmt.Errorf("get memory state: %w", err)
	}

	state, err := row.toState()
	if err != nil {
		s.logger.Warn("stored memory state failed validation",
			slog.String("word_id", wordID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	return state, nil
}

// Save implements store.MemoryStateStore.Save.
// The write is an upsert keyed on word_id; the persisted column names are
// the serialization contract and must stay stable. On success the change is
// published to the registered handlers exactly once.
func (s *PostgresMemoryStateStore) Save(ctx context.Context, state *domain.MemoryState) error {
	if err := state.Validate(); err != nil {
		return store.NewStoreError("memory_state", "save", "invalid memory state", err)
	}

	query := `
		INSERT INTO memory_states (
			word_id, difficulty, stability, retrievability,
			last_review, next_review, review_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (word_id) DO UPDATE SET
			difficulty = EXCLUDED.difficulty,
			stability = EXCLUDED.stability,
			retrievability = EXCLUDED.retrievability,
			last_review = EXCLUDED.last_review,
			next_review = EXCLUDED.next_review,
			review_count = EXCLUDED.review_count,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.pool.Exec(ctx, query,
		state.WordID, state.Difficulty, state.Stability, state.Retrievability,
		nullableTime(state.LastReview), state.NextReview, state.ReviewCount,
		state.CreatedAt, state.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrWordNotFound
		}
		return fmt.Errorf("save memory state: %w", err)
	}

	s.logger.Debug("saved memory state",
		slog.String("word_id", state.WordID.String()),
		slog.Int("review_count", state.ReviewCount))

	s.notifier.Notify(ctx, events.StateChange{
		WordID:     state.WordID,
		State:      state,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// List implements store.MemoryStateStore.List.
// Words without a stored state are included with a nil State; rows that fail
// validation are flagged malformed instead of aborting the whole listing.
func (s *PostgresMemoryStateStore) List(ctx context.Context) ([]store.ListedState, error) {
	query := `
		SELECT w.id,
		       m.word_id, m.difficulty, m.stability, m.retrievability,
		       m.last_review, m.next_review, m.review_count, m.created_at, m.updated_at
		FROM words w
		LEFT JOIN memory_states m ON m.word_id = w.id
		ORDER BY w.created_at
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list memory states: %w", err)
	}
	defer rows.Close()

	var listed []store.ListedState
	for rows.Next() {
		var wordID uuid.UUID
		var stateWordID *uuid.UUID
		var difficulty, stability, retrievability *float64
		var lastReview, nextReview, createdAt, updatedAt *time.Time
		var reviewCount *int

		err := rows.Scan(
			&wordID,
			&stateWordID, &difficulty, &stability, &retrievability,
			&lastReview, &nextReview, &reviewCount, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan memory state row: %w", err)
		}

		entry := store.ListedState{WordID: wordID}

		if stateWordID != nil {
			row := memoryStateRow{
				wordID:         *stateWordID,
				difficulty:     *difficulty,
				stability:      *stability,
				retrievability: *retrievability,
				lastReview:     lastReview,
				nextReview:     *nextReview,
				reviewCount:    *reviewCount,
				createdAt:      *createdAt,
				updatedAt:      *updatedAt,
			}

			state, err := row.toState()
			if err != nil {
				s.logger.Warn("skipping malformed memory state in listing",
					slog.String("word_id", wordID.String()),
					slog.String("error", err.Error()))
				entry.Malformed = true
			} else {
				entry.State = state
			}
		}

		listed = append(listed, entry)
	}

	return listed, rows.Err()
}

// OnChange implements store.MemoryStateStore.OnChange.
func (s *PostgresMemoryStateStore) OnChange(handler events.StateChangeHandler) {
	s.notifier.Register(handler)
}
