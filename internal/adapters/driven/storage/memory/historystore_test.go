package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

func newRun(id string, startedAt time.Time) *domain.SplitRun {
	return &domain.SplitRun{
		ID:         id,
		SourcePath: "/tmp/" + id + ".txt",
		Parts:      2,
		TotalLines: 4,
		Outputs:    []string{"/tmp/" + id + "_part1.txt", "/tmp/" + id + "_part2.txt"},
		StartedAt:  startedAt,
		EndedAt:    startedAt.Add(time.Second),
		Success:    true,
	}
}

func TestHistoryStore_SaveAndGet(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	run := newRun("run-1", time.Now())

	require.NoError(t, store.Save(ctx, run))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.SourcePath, got.SourcePath)
	assert.Equal(t, run.Outputs, got.Outputs)
	assert.True(t, got.Success)
}

func TestHistoryStore_Save_CopiesOutputs(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	run := newRun("run-1", time.Now())

	require.NoError(t, store.Save(ctx, run))
	run.Outputs[0] = "changed"

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/run-1_part1.txt", got.Outputs[0])
}

func TestHistoryStore_Save_Invalid(t *testing.T) {
	store := NewHistoryStore()

	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(context.Background(), &domain.SplitRun{}), domain.ErrInvalidInput)
}

func TestHistoryStore_Get_NotFound(t *testing.T) {
	store := NewHistoryStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_List_MostRecentFirst(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, newRun("old", base)))
	require.NoError(t, store.Save(ctx, newRun("new", base.Add(2*time.Hour))))
	require.NoError(t, store.Save(ctx, newRun("mid", base.Add(time.Hour))))

	runs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)
	assert.Equal(t, "old", runs[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "new", limited[0].ID)
}

func TestHistoryStore_Clear(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, newRun("run-1", time.Now())))

	require.NoError(t, store.Clear(ctx))

	runs, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
