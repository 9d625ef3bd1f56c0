package workers

import (
	"context"
	"log/slog"
	"time"
)

// Refresher is the piece of the notification store the poller drives.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// NotificationPoller refreshes the notification feed on a fixed
// interval. It is fully independent of the donation and chat flows and
// never blocks them; a failed poll is logged and retried next tick.
type NotificationPoller struct {
	log      *slog.Logger
	store    Refresher
	interval time.Duration
}

func NewNotificationPoller(store Refresher, interval time.Duration, log *slog.Logger) *NotificationPoller {
	return &NotificationPoller{log: log, store: store, interval: interval}
}

func (p *NotificationPoller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug("Context done, stopping notification poller")
			return nil
		case <-ticker.C:
			if err := p.store.Refresh(ctx); err != nil {
				p.log.Debug("Notification poll failed, retrying next tick", "error", err)
			}
		}
	}
}
