package domain

import (
	"context"
	"time"
)

type RefreshOutcome string

const (
	RefreshSucceeded         RefreshOutcome = "succeeded"
	RefreshSourceUnavailable RefreshOutcome = "source_unavailable"
	RefreshPersistFailed     RefreshOutcome = "persist_failed"
)

// RefreshCycle describes one finished refresh run for the audit log.
type RefreshCycle struct {
	CycleID      string
	Outcome      RefreshOutcome
	Fetched      int
	Persisted    int
	Skipped      int
	SummaryError string
	Error        string
	StartedAt    time.Time
	FinishedAt   time.Time
}

type RefreshAuditLogger interface {
	LogRefreshCycle(ctx context.Context, cycle RefreshCycle) error
}
