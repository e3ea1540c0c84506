package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewOutcome is the learner's graded recall of a word during a review.
// Outcomes are ordinal: Again (complete failure) through Easy (effortless
// recall). Quiz and game surfaces infer Good/Hard from answer correctness.
type ReviewOutcome int

// Possible review outcome values, ordered from worst to best recall.
const (
	ReviewOutcomeAgain ReviewOutcome = 1
	ReviewOutcomeHard  ReviewOutcome = 2
	ReviewOutcomeGood  ReviewOutcome = 3
	ReviewOutcomeEasy  ReviewOutcome = 4
)

// Common validation errors for MemoryState
var (
	ErrEmptyStateWordID      = errors.New("memory state word ID cannot be empty")
	ErrInvalidDifficulty     = errors.New("difficulty must be between 0 and 10")
	ErrInvalidStability      = errors.New("stability must be greater than or equal to 0")
	ErrInvalidRetrievability = errors.New("retrievability must be between 0 and 1")
	ErrInvalidReviewCount    = errors.New("review count must be greater than or equal to 0")
	ErrMissingNextReview     = errors.New("next review time must be set")
)

// IsValid reports whether the outcome is one of the four defined grades.
func (o ReviewOutcome) IsValid() bool {
	return o >= ReviewOutcomeAgain && o <= ReviewOutcomeEasy
}

// String returns the lowercase wire name of the outcome, matching the
// values accepted by the API ("again", "hard", "good", "easy").
func (o ReviewOutcome) String() string {
	switch o {
	case ReviewOutcomeAgain:
		return "again"
	case ReviewOutcomeHard:
		return "hard"
	case ReviewOutcomeGood:
		return "good"
	case ReviewOutcomeEasy:
		return "easy"
	default:
		return "unknown"
	}
}

// ParseReviewOutcome converts a wire name into a ReviewOutcome.
// Returns ErrInvalidReviewOutcome for anything other than the four grades.
func ParseReviewOutcome(s string) (ReviewOutcome, error) {
	switch s {
	case "again":
		return ReviewOutcomeAgain, nil
	case "hard":
		return ReviewOutcomeHard, nil
	case "good":
		return ReviewOutcomeGood, nil
	case "easy":
		return ReviewOutcomeEasy, nil
	default:
		return 0, ErrInvalidReviewOutcome
	}
}

// MemoryState tracks the forgetting-curve model for a single word.
//
// Stability 0 is the "never reviewed" sentinel; after the first accepted
// review stability is always at least 0.1. LastReview uses the zero time
// as its "never reviewed" sentinel and is persisted as NULL.
//
// The JSON field names (difficulty, stability, retrievability, last_review,
// next_review, review_count) are a serialization contract shared with
// existing stored data and must not change.
type MemoryState struct {
	WordID         uuid.UUID `json:"word_id"`
	Difficulty     float64   `json:"difficulty"`     // Intrinsic hardness for this learner, 0-10
	Stability      float64   `json:"stability"`      // Days until retrievability decays to ~90%
	Retrievability float64   `json:"retrievability"` // Predicted recall probability at last review, 0-1
	LastReview     time.Time `json:"last_review"`    // When the word was last reviewed (zero = never)
	NextReview     time.Time `json:"next_review"`    // When the word becomes due
	ReviewCount    int       `json:"review_count"`   // Total number of accepted reviews
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewMemoryState creates the fixed initial state for a freshly registered
// word: difficulty 0, stability 0 (fresh sentinel), retrievability 1, no
// last review, and a first review due one day from now.
func NewMemoryState(wordID uuid.UUID, now time.Time) (*MemoryState, error) {
	state := &MemoryState{
		WordID:         wordID,
		Difficulty:     0,
		Stability:      0,
		Retrievability: 1,
		LastReview:     time.Time{},
		NextReview:     now.AddDate(0, 0, 1),
		ReviewCount:    0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return state, nil
}

// Validate checks if the MemoryState has valid data.
// Returns an error if any field fails validation; stores treat a
// validation failure on read as a malformed record.
func (s *MemoryState) Validate() error {
	if s.WordID == uuid.Nil {
		return ErrEmptyStateWordID
	}

	if s.Difficulty < 0 || s.Difficulty > 10 {
		return ErrInvalidDifficulty
	}

	if s.Stability < 0 {
		return ErrInvalidStability
	}

	// Stability 0 is reserved for the fresh sentinel; a reviewed word
	// must carry a positive stability.
	if !s.LastReview.IsZero() && s.Stability == 0 {
		return ErrInvalidStability
	}

	if s.Retrievability < 0 || s.Retrievability > 1 {
		return ErrInvalidRetrievability
	}

	if s.ReviewCount < 0 {
		return ErrInvalidReviewCount
	}

	if s.NextReview.IsZero() {
		return ErrMissingNextReview
	}

	return nil
}

// Reviewed reports whether the word has ever had an accepted review.
func (s *MemoryState) Reviewed() bool {
	return !s.LastReview.IsZero()
}

// Clone returns a copy of the state. Callers that compute updates work on
// the copy so the original is never mutated in place.
func (s *MemoryState) Clone() *MemoryState {
	clone := *s
	return &clone
}
