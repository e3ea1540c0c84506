package review

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/domain/srs"
	"github.com/wordvault/wordvault-api/internal/events"
	"github.com/wordvault/wordvault-api/internal/store"
)

// fakeWordStore is an in-memory WordStore for tests.
type fakeWordStore struct {
	mu    sync.Mutex
	words map[uuid.UUID]*domain.Word
}

func newFakeWordStore() *fakeWordStore {
	return &fakeWordStore{words: make(map[uuid.UUID]*domain.Word)}
}

func (f *fakeWordStore) Create(
	ctx context.Context,
	word *domain.Word,
	state *domain.MemoryState,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.words[word.ID] = word
	return nil
}

func (f *fakeWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	word, ok := f.words[id]
	if !ok {
		return nil, store.ErrWordNotFound
	}
	return word, nil
}

func (f *fakeWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.words[id]; !ok {
		return store.ErrWordNotFound
	}
	delete(f.words, id)
	return nil
}

// fakeStateStore is an in-memory MemoryStateStore. It mirrors the contract
// of the real store: one notification per successful Save, malformed
// records reported as ErrMalformedState.
type fakeStateStore struct {
	mu        sync.Mutex
	states    map[uuid.UUID]*domain.MemoryState
	malformed map[uuid.UUID]bool
	saves     int
	notifier  *events.Notifier
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{
		states:    make(map[uuid.UUID]*domain.MemoryState),
		malformed: make(map[uuid.UUID]bool),
		notifier:  events.NewNotifier(nil),
	}
}

func (f *fakeStateStore) Get(ctx context.Context, wordID uuid.UUID) (*domain.MemoryState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.malformed[wordID] {
		return nil, store.ErrMalformedState
	}
	state, ok := f.states[wordID]
	if !ok {
		return nil, store.ErrMemoryStateNotFound
	}
	return state.Clone(), nil
}

func (f *fakeStateStore) Save(ctx context.Context, state *domain.MemoryState) error {
	f.mu.Lock()
	f.states[state.WordID] = state.Clone()
	delete(f.malformed, state.WordID)
	f.saves++
	f.mu.Unlock()

	f.notifier.Notify(ctx, events.StateChange{
		WordID:     state.WordID,
		State:      state,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

func (f *fakeStateStore) List(ctx context.Context) ([]store.ListedState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var listed []store.ListedState
	for id, state := range f.states {
		listed = append(listed, store.ListedState{WordID: id, State: state.Clone()})
	}
	return listed, nil
}

func (f *fakeStateStore) OnChange(handler events.StateChangeHandler) {
	f.notifier.Register(handler)
}

func (f *fakeStateStore) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

// countingHandler counts received change notifications.
type countingHandler struct {
	mu    sync.Mutex
	count int
}

func (h *countingHandler) HandleStateChange(ctx context.Context, change events.StateChange) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	return nil
}

func (h *countingHandler) total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

type schedulerFixture struct {
	scheduler ReviewScheduler
	words     *fakeWordStore
	states    *fakeStateStore
	wordID    uuid.UUID
	now       time.Time
}

func newSchedulerFixture(t *testing.T) *schedulerFixture {
	t.Helper()

	words := newFakeWordStore()
	states := newFakeStateStore()

	word, err := domain.NewWord("ephemeral", "lasting for a very short time")
	require.NoError(t, err)
	require.NoError(t, words.Create(context.Background(), word, nil))

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	scheduler := NewReviewScheduler(words, states, srs.NewDefaultService(), 50*time.Minute, nil)
	scheduler.(*reviewSchedulerImpl).timeFunc = func() time.Time { return now }

	return &schedulerFixture{
		scheduler: scheduler,
		words:     words,
		states:    states,
		wordID:    word.ID,
		now:       now,
	}
}

func (fx *schedulerFixture) advance(d time.Duration) {
	fx.now = fx.now.Add(d)
	fx.scheduler.(*reviewSchedulerImpl).timeFunc = func() time.Time { return fx.now }
}

func TestRecordReviewFirstReview(t *testing.T) {
	fx := newSchedulerFixture(t)

	state, err := fx.scheduler.RecordReview(context.Background(), fx.wordID, domain.ReviewOutcomeGood)
	require.NoError(t, err)

	assert.Equal(t, 1, state.ReviewCount)
	assert.True(t, state.LastReview.Equal(fx.now))
	assert.True(t, state.NextReview.After(fx.now))
	assert.Equal(t, 1, fx.states.saveCount())
}

func TestRecordReviewUnknownWord(t *testing.T) {
	fx := newSchedulerFixture(t)

	_, err := fx.scheduler.RecordReview(context.Background(), uuid.New(), domain.ReviewOutcomeGood)
	assert.ErrorIs(t, err, ErrWordNotFound)
	assert.Equal(t, 0, fx.states.saveCount())
}

func TestRecordReviewInvalidOutcome(t *testing.T) {
	fx := newSchedulerFixture(t)

	_, err := fx.scheduler.RecordReview(context.Background(), fx.wordID, domain.ReviewOutcome(9))
	assert.ErrorIs(t, err, ErrInvalidOutcome)
}

func TestRecordReviewCooldownRejectsAndLeavesStateUntouched(t *testing.T) {
	fx := newSchedulerFixture(t)
	ctx := context.Background()

	first, err := fx.scheduler.RecordReview(ctx, fx.wordID, domain.ReviewOutcomeGood)
	require.NoError(t, err)

	fx.advance(49 * time.Minute)

	_, err = fx.scheduler.RecordReview(ctx, fx.wordID, domain.ReviewOutcomeEasy)
	assert.ErrorIs(t, err, ErrReviewCooldown)

	stored, err := fx.states.Get(ctx, fx.wordID)
	require.NoError(t, err)
	assert.Equal(t, first, stored, "rejected review must not change the stored state")
	assert.Equal(t, 1, fx.states.saveCount())
}

func TestRecordReviewAcceptedAfterCooldown(t *testing.T) {
	fx := newSchedulerFixture(t)
	ctx := context.Background()

	_, err := fx.scheduler.RecordReview(ctx, fx.wordID, domain.ReviewOutcomeGood)
	require.NoError(t, err)

	fx.advance(50 * time.Minute)

	state, err := fx.scheduler.RecordReview(ctx, fx.wordID, domain.ReviewOutcomeGood)
	require.NoError(t, err)
	assert.Equal(t, 2, state.ReviewCount)
}

func TestRecordReviewNotifiesExactlyOnce(t *testing.T) {
	fx := newSchedulerFixture(t)
	ctx := context.Background()

	handler := &countingHandler{}
	fx.states.OnChange(handler)

	_, err := fx.scheduler.RecordReview(ctx, fx.wordID, domain.ReviewOutcomeGood)
	require.NoError(t, err)
	assert.Equal(t, 1, handler.total())

	// A rejected review sends nothing.
	fx.advance(time.Minute)
	_, err = fx.scheduler.RecordReview(ctx, fx.wordID, domain.ReviewOutcomeGood)
	require.ErrorIs(t, err, ErrReviewCooldown)
	assert.Equal(t, 1, handler.total())
}

func TestRecordReviewReinitializesMalformedState(t *testing.T) {
	fx := newSchedulerFixture(t)
	ctx := context.Background()

	fx.states.malformed[fx.wordID] = true

	state, err := fx.scheduler.RecordReview(ctx, fx.wordID, domain.ReviewOutcomeGood)
	require.NoError(t, err)
	assert.Equal(t, 1, state.ReviewCount, "malformed state restarts from the initial state")
}

func TestRecordReviewCountMonotonic(t *testing.T) {
	fx := newSchedulerFixture(t)
	ctx := context.Background()

	outcomes := []domain.ReviewOutcome{
		domain.ReviewOutcomeGood,
		domain.ReviewOutcomeAgain,
		domain.ReviewOutcomeHard,
		domain.ReviewOutcomeEasy,
	}

	prev := 0
	for _, outcome := range outcomes {
		state, err := fx.scheduler.RecordReview(ctx, fx.wordID, outcome)
		require.NoError(t, err)
		assert.Equal(t, prev+1, state.ReviewCount)
		prev = state.ReviewCount
		fx.advance(time.Hour)
	}
}

func TestRecordReviewConcurrentSameWord(t *testing.T) {
	fx := newSchedulerFixture(t)
	ctx := context.Background()

	const goroutines = 8
	var wg sync.WaitGroup
	accepted := make(chan struct{}, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.scheduler.RecordReview(ctx, fx.wordID, domain.ReviewOutcomeGood)
			if err == nil {
				accepted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(accepted)

	// The fixed clock never advances, so exactly the first review is
	// accepted and the rest land in the cooldown window.
	assert.Len(t, accepted, 1)
	assert.Equal(t, 1, fx.states.saveCount())
}

func TestPostponeReview(t *testing.T) {
	fx := newSchedulerFixture(t)
	ctx := context.Background()

	first, err := fx.scheduler.RecordReview(ctx, fx.wordID, domain.ReviewOutcomeGood)
	require.NoError(t, err)

	state, err := fx.scheduler.PostponeReview(ctx, fx.wordID, 3)
	require.NoError(t, err)

	assert.True(t, state.NextReview.Equal(first.NextReview.AddDate(0, 0, 3)))
	assert.Equal(t, first.ReviewCount, state.ReviewCount, "postpone must not count as a review")
	assert.Equal(t, first.Stability, state.Stability)
}

func TestPostponeReviewValidation(t *testing.T) {
	fx := newSchedulerFixture(t)
	ctx := context.Background()

	_, err := fx.scheduler.PostponeReview(ctx, fx.wordID, 0)
	assert.ErrorIs(t, err, ErrInvalidPostpone)

	_, err = fx.scheduler.PostponeReview(ctx, uuid.New(), 2)
	assert.ErrorIs(t, err, ErrWordNotFound)
}
