package match

import (
	"context"
	"time"
)

// CheckRecord summarizes one completed check run for the history store.
type CheckRecord struct {
	id            int64
	kind          string
	matchCount    int
	sentenceCount int
	elapsedMillis int64
	createdAt     time.Time
}

// NewCheckRecord creates a CheckRecord for a run that has not been persisted.
func NewCheckRecord(kind string, matchCount, sentenceCount int, elapsed time.Duration) CheckRecord {
	return CheckRecord{
		kind:          kind,
		matchCount:    matchCount,
		sentenceCount: sentenceCount,
		elapsedMillis: elapsed.Milliseconds(),
	}
}

// ReconstructCheckRecord recreates a CheckRecord from persistence.
func ReconstructCheckRecord(id int64, kind string, matchCount, sentenceCount int, elapsedMillis int64, createdAt time.Time) CheckRecord {
	return CheckRecord{
		id:            id,
		kind:          kind,
		matchCount:    matchCount,
		sentenceCount: sentenceCount,
		elapsedMillis: elapsedMillis,
		createdAt:     createdAt,
	}
}

// ID returns the database identifier.
func (r CheckRecord) ID() int64 { return r.id }

// Kind returns the kind of run ("text" or "bitext").
func (r CheckRecord) Kind() string { return r.kind }

// MatchCount returns the number of matches the run produced.
func (r CheckRecord) MatchCount() int { return r.matchCount }

// SentenceCount returns the number of sentences checked.
func (r CheckRecord) SentenceCount() int { return r.sentenceCount }

// ElapsedMillis returns the wall-clock duration of the run in milliseconds.
func (r CheckRecord) ElapsedMillis() int64 { return r.elapsedMillis }

// CreatedAt returns when the record was persisted.
func (r CheckRecord) CreatedAt() time.Time { return r.createdAt }

// Store persists check-run summaries.
type Store interface {
	SaveCheck(ctx context.Context, record CheckRecord) (CheckRecord, error)
	RecentChecks(ctx context.Context, limit int) ([]CheckRecord, error)
}
