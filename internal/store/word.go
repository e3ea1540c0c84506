package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
)

// WordStore defines the interface for vocabulary word persistence.
type WordStore interface {
	// Create saves a new word together with its initial memory state.
	// The two inserts are atomic. Returns ErrTermExists if a word with
	// the same term already exists, and validation errors from the
	// domain Word if data is invalid.
	Create(ctx context.Context, word *domain.Word, state *domain.MemoryState) error

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// Delete removes a word and its memory state.
	// Returns ErrWordNotFound if the word does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
