package impl

import (
	"context"
	"testing"
	"time"

	"crosspromo/config"
	"crosspromo/internal/domain/entity"
	"crosspromo/internal/infra/persistence/memory"
	mockRepo "crosspromo/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker(clock *fakeClock) *PendingTracker {
	tracker := NewPendingTracker(memory.NewPendingMarkRepository(), &config.Config{Partners: &config.PartnersConfig{
		OptimisticTTL: 30 * time.Second,
		ConfirmedTTL:  10 * time.Minute,
	}})
	tracker.now = clock.Now

	return tracker
}

func TestPendingTracker_OptimisticMarkIsPendingImmediately(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	tracker := newTestTracker(clock)
	ctx := context.Background()

	require.NoError(t, tracker.MarkOptimistic(ctx, "viewer", "C"))

	ids, err := tracker.PendingIDs(ctx, "viewer")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"C": {}}, ids)

	other, err := tracker.PendingIDs(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPendingTracker_RollbackRemovesMark(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tracker := newTestTracker(clock)
	ctx := context.Background()

	require.NoError(t, tracker.MarkOptimistic(ctx, "viewer", "C"))
	require.NoError(t, tracker.Rollback(ctx, "viewer", "C"))

	ids, err := tracker.PendingIDs(ctx, "viewer")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPendingTracker_SupersedeDropsOnlyConfirmed(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tracker := newTestTracker(clock)
	ctx := context.Background()

	require.NoError(t, tracker.MarkOptimistic(ctx, "viewer", "in-flight"))
	require.NoError(t, tracker.MarkOptimistic(ctx, "viewer", "accepted"))
	require.NoError(t, tracker.Confirm(ctx, "viewer", "accepted"))

	require.NoError(t, tracker.Supersede(ctx, "viewer", clock.Now()))

	ids, err := tracker.PendingIDs(ctx, "viewer")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"in-flight": {}}, ids)
}

func TestPendingTracker_SupersedeKeepsMarksConfirmedDuringFetch(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tracker := newTestTracker(clock)
	ctx := context.Background()

	require.NoError(t, tracker.Confirm(ctx, "viewer", "before"))
	fetchStartedAt := clock.Now()

	clock.Advance(time.Second)
	require.NoError(t, tracker.Confirm(ctx, "viewer", "during"))

	require.NoError(t, tracker.Supersede(ctx, "viewer", fetchStartedAt))

	ids, err := tracker.PendingIDs(ctx, "viewer")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"during": {}}, ids)
}

func TestPendingTracker_MarksExpire(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tracker := newTestTracker(clock)
	ctx := context.Background()

	require.NoError(t, tracker.MarkOptimistic(ctx, "viewer", "optimistic"))
	require.NoError(t, tracker.Confirm(ctx, "viewer", "confirmed"))

	clock.Advance(time.Minute)
	ids, err := tracker.PendingIDs(ctx, "viewer")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"confirmed": {}}, ids)

	clock.Advance(10 * time.Minute)
	removed, err := tracker.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	ids, err = tracker.PendingIDs(ctx, "viewer")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPendingTracker_RepositoryErrorsAreWrapped(t *testing.T) {
	repo := mockRepo.NewMockPendingMarkRepository(t)
	tracker := NewPendingTracker(repo, &config.Config{})
	ctx := context.Background()
	dbErr := assert.AnError

	repo.EXPECT().SaveMark(ctx, mock.AnythingOfType("*entity.PendingMark")).Return(dbErr)
	repo.EXPECT().FindActiveMarks(ctx, "viewer", mock.AnythingOfType("time.Time")).Return(nil, dbErr)
	repo.EXPECT().DeleteMarksByState(ctx, "viewer", entity.PendingMarkConfirmed, mock.AnythingOfType("time.Time")).Return(dbErr)

	err := tracker.MarkOptimistic(ctx, "viewer", "C")
	require.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "optimistic")

	_, err = tracker.PendingIDs(ctx, "viewer")
	require.ErrorIs(t, err, dbErr)

	err = tracker.Supersede(ctx, "viewer", time.Now())
	require.ErrorIs(t, err, dbErr)
}
