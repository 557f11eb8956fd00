package service

import (
	"context"
	"time"

	"github.com/veritext/veritext/domain/match"
)

// DefaultHistoryLimit caps how many records Recent returns when the caller
// does not say.
const DefaultHistoryLimit = 20

// History records check-run summaries in a store and reads them back.
type History struct {
	store match.Store
}

// NewHistory creates a History over a store.
func NewHistory(store match.Store) History {
	return History{store: store}
}

// Record persists a summary of one completed run.
func (h History) Record(ctx context.Context, kind string, matchCount, sentenceCount int, elapsed time.Duration) (match.CheckRecord, error) {
	record := match.NewCheckRecord(kind, matchCount, sentenceCount, elapsed)
	return h.store.SaveCheck(ctx, record)
}

// Recent returns the most recent run summaries, newest first.
func (h History) Recent(ctx context.Context, limit int) ([]match.CheckRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return h.store.RecentChecks(ctx, limit)
}
