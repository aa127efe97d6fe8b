package logger

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/domain"
	"gorm.io/gorm"
)

type RefreshCycleEvent struct {
	ID           uint   `gorm:"primaryKey"`
	CycleID      string `gorm:"index"`
	Outcome      string
	Fetched      int
	Persisted    int
	Skipped      int
	SummaryError string
	Error        string
	StartedAt    time.Time
	FinishedAt   time.Time
}

func (RefreshCycleEvent) TableName() string {
	return "refresh_cycles"
}

type PGRefreshLogger struct {
	db *gorm.DB
}

func NewPGRefreshLogger(db *gorm.DB) *PGRefreshLogger {
	return &PGRefreshLogger{db: db}
}

func (l *PGRefreshLogger) LogRefreshCycle(ctx context.Context, cycle domain.RefreshCycle) error {
	event := RefreshCycleEvent{
		CycleID:      cycle.CycleID,
		Outcome:      string(cycle.Outcome),
		Fetched:      cycle.Fetched,
		Persisted:    cycle.Persisted,
		Skipped:      cycle.Skipped,
		SummaryError: cycle.SummaryError,
		Error:        cycle.Error,
		StartedAt:    cycle.StartedAt,
		FinishedAt:   cycle.FinishedAt,
	}
	return l.db.WithContext(ctx).Create(&event).Error
}
