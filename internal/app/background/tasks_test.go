package background

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/usecase"
	"github.com/stretchr/testify/assert"
)

type countingRefresh struct {
	calls atomic.Int32
}

func (c *countingRefresh) Refresh(ctx context.Context) (*usecase.RefreshResult, error) {
	c.calls.Add(1)
	return &usecase.RefreshResult{CycleID: "test"}, nil
}

func TestStartAll_RunsPeriodicRefresh(t *testing.T) {
	refresh := &countingRefresh{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewBackgroundTasks(refresh, 10*time.Millisecond).StartAll(ctx)

	assert.Eventually(t, func() bool { return refresh.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestStartAll_ZeroIntervalDisablesRefresh(t *testing.T) {
	refresh := &countingRefresh{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewBackgroundTasks(refresh, 0).StartAll(ctx)

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, refresh.calls.Load())
}
