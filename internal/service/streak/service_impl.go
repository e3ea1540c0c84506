package streak

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/store"
)

// Verify interface compliance at compile time
var _ StreakCalculator = (*streakCalculatorImpl)(nil)

// streakCalculatorImpl implements the StreakCalculator interface.
type streakCalculatorImpl struct {
	stateStore store.MemoryStateStore
	timeFunc   func() time.Time // Injectable for testing
	logger     *slog.Logger
}

// NewStreakCalculator creates a new StreakCalculator implementation.
func NewStreakCalculator(stateStore store.MemoryStateStore, logger *slog.Logger) StreakCalculator {
	if stateStore == nil {
		panic("stateStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &streakCalculatorImpl{
		stateStore: stateStore,
		timeFunc:   time.Now,
		logger:     logger.With(slog.String("component", "streak_calculator")),
	}
}

// midnight truncates t to the start of its calendar day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// CurrentStreak implements StreakCalculator.CurrentStreak.
func (s *streakCalculatorImpl) CurrentStreak(
	ctx context.Context,
	loc *time.Location,
) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if loc == nil {
		loc = time.UTC
	}

	listed, err := s.stateStore.List(ctx)
	if err != nil {
		log.Error("failed to list memory states", slog.String("error", err.Error()))
		return 0, fmt.Errorf("list memory states: %w", err)
	}

	// Collapse review timestamps to distinct calendar days.
	daySet := make(map[time.Time]struct{})
	for _, entry := range listed {
		if entry.State == nil || !entry.State.Reviewed() {
			continue
		}
		daySet[midnight(entry.State.LastReview, loc)] = struct{}{}
	}
	if len(daySet) == 0 {
		return 0, nil
	}

	days := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := midnight(s.timeFunc(), loc)
	yesterday := today.AddDate(0, 0, -1)

	// A streak is only alive if it reaches today or yesterday.
	latest := days[0]
	if !latest.Equal(today) && !latest.Equal(yesterday) {
		return 0, nil
	}

	count := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			break
		}
		count++
	}

	log.Debug("computed review streak",
		slog.Int("days", count),
		slog.Time("latest_review_day", latest))
	return count, nil
}
