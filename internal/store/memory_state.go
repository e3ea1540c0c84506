package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/events"
)

// ListedState is one entry of a full memory-state listing. State is nil when
// the word has no stored state yet; Malformed is set when a stored record
// failed to parse or validate (the record itself is never surfaced).
type ListedState struct {
	WordID    uuid.UUID
	State     *domain.MemoryState
	Malformed bool
}

// MemoryStateStore defines the interface for memory-state persistence.
// It is the storage collaborator of the scheduling core: the review
// scheduler reads and writes through it, the practice selector and streak
// calculator read through it, and dashboards observe it via OnChange.
type MemoryStateStore interface {
	// Get retrieves the memory state for a word.
	// Returns ErrMemoryStateNotFound if no state is stored for the word,
	// and ErrMalformedState if the stored record fails to parse or
	// validate.
	Get(ctx context.Context, wordID uuid.UUID) (*domain.MemoryState, error)

	// Save upserts the memory state for a word and, on success, publishes
	// exactly one change notification to the handlers registered via
	// OnChange. Returns ErrWordNotFound if the owning word does not exist.
	Save(ctx context.Context, state *domain.MemoryState) error

	// List returns one entry per registered word, pairing each word ID
	// with its stored state (nil if absent, flagged if malformed).
	List(ctx context.Context) ([]ListedState, error)

	// OnChange registers a callback invoked after any successful state
	// write. Registration is not retroactive and handlers are never
	// deregistered; subscribe once at startup.
	OnChange(handler events.StateChangeHandler)
}
