package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritext/veritext/domain/match"
)

func newTestStore(t *testing.T) HistoryStore {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return NewHistoryStore(db)
}

func TestSaveCheckAssignsID(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.SaveCheck(context.Background(), match.NewCheckRecord("check", 3, 10, 250*time.Millisecond))
	require.NoError(t, err)

	assert.NotZero(t, saved.ID())
	assert.Equal(t, "check", saved.Kind())
	assert.Equal(t, 3, saved.MatchCount())
	assert.Equal(t, 10, saved.SentenceCount())
	assert.Equal(t, int64(250), saved.ElapsedMillis())
}

func TestRecentChecksNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.SaveCheck(ctx, match.NewCheckRecord("check", 1, 1, time.Millisecond))
	require.NoError(t, err)
	second, err := store.SaveCheck(ctx, match.NewCheckRecord("bitext", 2, 2, time.Millisecond))
	require.NoError(t, err)

	records, err := store.RecentChecks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID(), records[0].ID())
	assert.Equal(t, first.ID(), records[1].ID())
}

func TestRecentChecksLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.SaveCheck(ctx, match.NewCheckRecord("check", i, i, time.Millisecond))
		require.NoError(t, err)
	}

	records, err := store.RecentChecks(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
