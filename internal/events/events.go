package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
)

// StateChange describes a successful memory-state write. Stores publish
// one StateChange per accepted review (or postpone), which dashboards and
// statistics views consume to refresh themselves.
type StateChange struct {
	// WordID identifies the word whose state changed.
	WordID uuid.UUID `json:"word_id"`

	// State is the newly persisted memory state.
	State *domain.MemoryState `json:"state"`

	// OccurredAt is the timestamp when the write was committed.
	OccurredAt time.Time `json:"occurred_at"`
}

// StateChangeHandler defines an interface for components that react to
// memory-state changes. Handlers are responsible for their own error
// handling; a failing handler never blocks the write that triggered it.
type StateChangeHandler interface {
	// HandleStateChange processes the given change within the provided context.
	// Returns an error if the change cannot be handled successfully.
	HandleStateChange(ctx context.Context, change StateChange) error
}

// StateChangeHandlerFunc adapts a plain function to the StateChangeHandler
// interface.
type StateChangeHandlerFunc func(ctx context.Context, change StateChange) error

// HandleStateChange implements StateChangeHandler.
func (f StateChangeHandlerFunc) HandleStateChange(ctx context.Context, change StateChange) error {
	return f(ctx, change)
}
