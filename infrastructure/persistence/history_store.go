package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/veritext/veritext/domain/match"
)

// checkRecordModel is the GORM model for persisted check-run summaries.
type checkRecordModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Kind          string `gorm:"index;not null"`
	MatchCount    int    `gorm:"not null"`
	SentenceCount int    `gorm:"not null"`
	ElapsedMillis int64  `gorm:"not null"`
	CreatedAt     time.Time
}

func (checkRecordModel) TableName() string { return "check_records" }

func (m checkRecordModel) toDomain() match.CheckRecord {
	return match.ReconstructCheckRecord(m.ID, m.Kind, m.MatchCount, m.SentenceCount, m.ElapsedMillis, m.CreatedAt)
}

func toModel(r match.CheckRecord) checkRecordModel {
	return checkRecordModel{
		ID:            r.ID(),
		Kind:          r.Kind(),
		MatchCount:    r.MatchCount(),
		SentenceCount: r.SentenceCount(),
		ElapsedMillis: r.ElapsedMillis(),
	}
}

// HistoryStore implements match.Store on GORM.
type HistoryStore struct {
	db *gorm.DB
}

// NewHistoryStore creates a HistoryStore.
func NewHistoryStore(db *gorm.DB) HistoryStore {
	return HistoryStore{db: db}
}

// SaveCheck persists a check-run summary and returns it with its assigned id.
func (s HistoryStore) SaveCheck(ctx context.Context, record match.CheckRecord) (match.CheckRecord, error) {
	model := toModel(record)
	if result := s.db.WithContext(ctx).Create(&model); result.Error != nil {
		return match.CheckRecord{}, fmt.Errorf("save check record: %w", result.Error)
	}
	return model.toDomain(), nil
}

// RecentChecks returns the most recent check-run summaries, newest first.
func (s HistoryStore) RecentChecks(ctx context.Context, limit int) ([]match.CheckRecord, error) {
	var models []checkRecordModel
	result := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("load check records: %w", result.Error)
	}

	records := make([]match.CheckRecord, len(models))
	for i, m := range models {
		records[i] = m.toDomain()
	}
	return records, nil
}

var _ match.Store = HistoryStore{}
