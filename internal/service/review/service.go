package review

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
)

// ReviewScheduler coordinates the review workflow: it loads the current
// memory state, applies the memory model, and persists the result. All
// writes for a given word are serialized, so concurrent reviews of the same
// word never interleave their read-modify-write cycles.
type ReviewScheduler interface {
	// RecordReview processes a review outcome for a word and returns the
	// updated memory state.
	//
	// Returns:
	//   - (*domain.MemoryState, nil): The updated state after a recorded review
	//   - (nil, ErrWordNotFound): If the word is not registered
	//   - (nil, ErrReviewCooldown): If the word was reviewed too recently;
	//     the stored state is left untouched and no notification is sent
	//   - (nil, ErrInvalidOutcome): If the outcome is not a known grade
	//
	// A stored state that is missing or fails validation is replaced by a
	// fresh initial state before the outcome is applied, so a single
	// corrupt record never blocks reviewing.
	RecordReview(
		ctx context.Context,
		wordID uuid.UUID,
		outcome domain.ReviewOutcome,
	) (*domain.MemoryState, error)

	// PostponeReview pushes the word's next review date forward by the
	// given number of days without touching the memory model.
	//
	// Returns:
	//   - (*domain.MemoryState, nil): The state with the shifted due date
	//   - (nil, ErrWordNotFound): If the word is not registered
	//   - (nil, ErrInvalidPostpone): If days is less than 1
	PostponeReview(
		ctx context.Context,
		wordID uuid.UUID,
		days int,
	) (*domain.MemoryState, error)
}

// Common error types for ReviewScheduler
var (
	// ErrWordNotFound indicates the reviewed word is not registered.
	ErrWordNotFound = errors.New("word not found")

	// ErrReviewCooldown indicates the word was reviewed too recently and
	// the new review was rejected without side effects.
	ErrReviewCooldown = errors.New("word is in its review cooldown window")

	// ErrInvalidOutcome indicates the review outcome is not a known grade.
	ErrInvalidOutcome = errors.New("invalid review outcome")

	// ErrInvalidPostpone indicates a postpone request with less than one day.
	ErrInvalidPostpone = errors.New("postpone days must be at least 1")
)
