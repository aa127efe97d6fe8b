package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/usecase"
)

type BackgroundTasks struct {
	RefreshUsecase  usecase.RefreshUsecase
	RefreshInterval time.Duration
}

func NewBackgroundTasks(refreshUC usecase.RefreshUsecase, refreshInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		RefreshUsecase:  refreshUC,
		RefreshInterval: refreshInterval,
	}
}

// StartAll launches the periodic jobs. A zero refresh interval leaves
// refreshes to the HTTP trigger only.
func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	if bt.RefreshInterval > 0 {
		go bt.startPeriodicRefresh(ctx)
	}
}

// startPeriodicRefresh runs cycles one after another, so scheduled cycles
// never overlap each other.
func (bt *BackgroundTasks) startPeriodicRefresh(ctx context.Context) {
	ticker := time.NewTicker(bt.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.refreshOnce(ctx)
		}
	}
}

func (bt *BackgroundTasks) refreshOnce(ctx context.Context) {
	result, err := bt.RefreshUsecase.Refresh(ctx)
	if err != nil {
		slog.Error("scheduled refresh failed", "error", err)
		return
	}
	slog.Info("scheduled refresh finished", "cycle_id", result.CycleID, "persisted", result.Persisted)
}
