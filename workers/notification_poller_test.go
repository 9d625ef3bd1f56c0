package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mealbridge/errors"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestNotificationPoller_RefreshesEveryTick(t *testing.T) {
	req := require.New(t)

	refresher := &countingRefresher{}
	poller := NewNotificationPoller(refresher, 20*time.Millisecond, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = poller.Run(ctx)
		close(done)
	}()

	req.Eventually(func() bool {
		return refresher.calls.Load() >= 3
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("poller should stop when the context is canceled")
	}
}

func TestNotificationPoller_KeepsPollingThroughFailures(t *testing.T) {
	req := require.New(t)

	refresher := &countingRefresher{err: errors.ErrNotConnected}
	poller := NewNotificationPoller(refresher, 20*time.Millisecond, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	req.NoError(poller.Run(ctx))
	req.GreaterOrEqual(refresher.calls.Load(), int32(2))
}
