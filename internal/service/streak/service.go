package streak

import (
	"context"
	"time"
)

// StreakCalculator derives the user's current daily review streak from the
// stored memory states. A streak is a run of consecutive calendar days with
// at least one recorded review, and it only counts while it is alive: the
// most recent review day must be today or yesterday.
type StreakCalculator interface {
	// CurrentStreak returns the length of the live streak in days.
	// Calendar days are evaluated in the given location; a nil location
	// means UTC. A user with no reviews, or whose latest review day is
	// before yesterday, has a streak of zero.
	CurrentStreak(ctx context.Context, loc *time.Location) (int, error)
}
