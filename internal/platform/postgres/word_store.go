package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/store"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the
// WordStore interface. The pool must be initialized and is managed by the
// caller. If logger is nil, a default logger will be used.
func NewPostgresWordStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresWordStore {
	if pool == nil {
		panic("pool cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		pool:   pool,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

// Create implements store.WordStore.Create.
// The word and its initial memory state are inserted in one transaction.
func (s *PostgresWordStore) Create(
	ctx context.Context,
	word *domain.Word,
	state *domain.MemoryState,
) error {
	if err := word.Validate(); err != nil {
		return store.NewStoreError("word", "create", "invalid word", err)
	}
	if err := state.Validate(); err != nil {
		return store.NewStoreError("word", "create", "invalid initial memory state", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		// Rollback is a no-op after a successful commit.
		_ = tx.Rollback(ctx)
	}()

	wordQuery := `
		INSERT INTO words (id, term, definition, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.Exec(ctx, wordQuery,
		word.ID, word.Term, word.Definition, word.CreatedAt, word.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrTermExists
		}
		return fmt.Errorf("insert word: %w", err)
	}

	stateQuery := `
		INSERT INTO memory_states (
			word_id, difficulty, stability, retrievability,
			last_review, next_review, review_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(ctx, stateQuery,
		state.WordID, state.Difficulty, state.Stability, state.Retrievability,
		nullableTime(state.LastReview), state.NextReview, state.ReviewCount,
		state.CreatedAt, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert memory state: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Debug("created word",
		slog.String("word_id", word.ID.String()),
		slog.String("term", word.Term))
	return nil
}

// GetByID implements store.WordStore.GetByID.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	query := `
		SELECT id, term, definition, created_at, updated_at
		FROM words
		WHERE id = $1
	`

	var word domain.Word
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&word.ID,
		&word.Term,
		&word.Definition,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrWordNotFound
		}
		return nil, fmt.Errorf("get word: %w", err)
	}

	return &word, nil
}

// Delete implements store.WordStore.Delete.
// The memory state row is removed by the ON DELETE CASCADE constraint.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return store.ErrWordNotFound
	}

	s.logger.Debug("deleted word", slog.String("word_id", id.String()))
	return nil
}
