package memory

import (
	"context"
	"testing"
	"time"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMarkRepository_SaveAndFind(t *testing.T) {
	repo := NewPendingMarkRepository()
	ctx := context.Background()
	expires := time.Now().Add(time.Minute)

	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{
		ViewerID: "v1", StoreID: "s1", State: entity.PendingMarkOptimistic, ExpiresAt: expires,
	}))

	mark, err := repo.FindMark(ctx, "v1", "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.PendingMarkOptimistic, mark.State)
	assert.False(t, mark.CreatedAt.IsZero())

	_, err = repo.FindMark(ctx, "v2", "s1")
	assert.ErrorIs(t, err, repository.ErrPendingMarkNotFound)
}

func TestPendingMarkRepository_SaveReplacesState(t *testing.T) {
	repo := NewPendingMarkRepository()
	ctx := context.Background()
	expires := time.Now().Add(time.Minute)

	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v1", StoreID: "s1", State: entity.PendingMarkOptimistic, ExpiresAt: expires}))
	first, err := repo.FindMark(ctx, "v1", "s1")
	require.NoError(t, err)

	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v1", StoreID: "s1", State: entity.PendingMarkConfirmed, ExpiresAt: expires}))
	second, err := repo.FindMark(ctx, "v1", "s1")
	require.NoError(t, err)

	assert.Equal(t, entity.PendingMarkConfirmed, second.State)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestPendingMarkRepository_FindActiveMarksDropsExpired(t *testing.T) {
	repo := NewPendingMarkRepository()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v1", StoreID: "live", ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v1", StoreID: "stale", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v2", StoreID: "other", ExpiresAt: now.Add(time.Minute)}))

	marks, err := repo.FindActiveMarks(ctx, "v1", now)
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, "live", marks[0].StoreID)

	_, err = repo.FindMark(ctx, "v1", "stale")
	assert.ErrorIs(t, err, repository.ErrPendingMarkNotFound)
}

func TestPendingMarkRepository_DeleteMarksByState(t *testing.T) {
	repo := NewPendingMarkRepository()
	ctx := context.Background()
	expires := time.Now().Add(time.Minute)

	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v1", StoreID: "a", State: entity.PendingMarkConfirmed, ExpiresAt: expires}))
	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v1", StoreID: "b", State: entity.PendingMarkOptimistic, ExpiresAt: expires}))
	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v2", StoreID: "c", State: entity.PendingMarkConfirmed, ExpiresAt: expires}))

	require.NoError(t, repo.DeleteMarksByState(ctx, "v1", entity.PendingMarkConfirmed, time.Now()))

	_, err := repo.FindMark(ctx, "v1", "a")
	assert.ErrorIs(t, err, repository.ErrPendingMarkNotFound)
	_, err = repo.FindMark(ctx, "v1", "b")
	assert.NoError(t, err)
	_, err = repo.FindMark(ctx, "v2", "c")
	assert.NoError(t, err)

	require.NoError(t, repo.DeleteMark(ctx, "v1", "missing"))
}

func TestPendingMarkRepository_DeleteMarksByStateKeepsNewerMarks(t *testing.T) {
	repo := NewPendingMarkRepository()
	ctx := context.Background()
	cutoff := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	expires := cutoff.Add(time.Hour)

	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{
		ViewerID: "v1", StoreID: "old", State: entity.PendingMarkConfirmed, ExpiresAt: expires, UpdatedAt: cutoff,
	}))
	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{
		ViewerID: "v1", StoreID: "new", State: entity.PendingMarkConfirmed, ExpiresAt: expires, UpdatedAt: cutoff.Add(time.Second),
	}))

	require.NoError(t, repo.DeleteMarksByState(ctx, "v1", entity.PendingMarkConfirmed, cutoff))

	_, err := repo.FindMark(ctx, "v1", "old")
	assert.ErrorIs(t, err, repository.ErrPendingMarkNotFound)
	_, err = repo.FindMark(ctx, "v1", "new")
	assert.NoError(t, err)
}

func TestPendingMarkRepository_DeleteExpiredMarks(t *testing.T) {
	repo := NewPendingMarkRepository()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v1", StoreID: "a", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v2", StoreID: "b", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, repo.SaveMark(ctx, &entity.PendingMark{ViewerID: "v2", StoreID: "c", ExpiresAt: now.Add(time.Minute)}))

	removed, err := repo.DeleteExpiredMarks(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	marks, err := repo.FindActiveMarks(ctx, "v2", now)
	require.NoError(t, err)
	assert.Len(t, marks, 1)
}
