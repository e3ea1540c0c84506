package practice

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// PracticeSelector assembles practice sessions. Words are grouped into
// urgency buckets and drawn with bucket-proportional probability, so due
// words dominate a session without ever excluding the rest of the
// vocabulary.
type PracticeSelector interface {
	// SelectWords returns up to limit distinct word IDs for a practice
	// session. Fewer IDs are returned when the vocabulary is smaller than
	// the limit; an empty vocabulary yields an empty selection.
	//
	// Returns ErrInvalidLimit if limit is less than 1.
	SelectWords(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// ErrInvalidLimit indicates a selection request with a non-positive limit.
var ErrInvalidLimit = errors.New("practice limit must be at least 1")
