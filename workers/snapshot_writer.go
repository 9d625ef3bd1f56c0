package workers

import (
	"context"
	"log/slog"
	"time"

	"mealbridge/cache"
	"mealbridge/domain"
	"mealbridge/domain/chat"
)

// DonationSnapshot is the slice of the donation store the writer reads.
type DonationSnapshot interface {
	All() []domain.Donation
	LoadedAt() time.Time
}

// SessionSnapshot is the slice of the chat store the writer reads.
type SessionSnapshot interface {
	Sessions() []chat.Session
}

// SnapshotWriter persists both collections to the local cache on a
// fixed interval, so a crash loses at most one interval of offline
// state. The same Persist runs once more during shutdown.
type SnapshotWriter struct {
	log       *slog.Logger
	cache     cache.ISnapshotCache
	donations DonationSnapshot
	chats     SessionSnapshot
	interval  time.Duration
}

func NewSnapshotWriter(snapshots cache.ISnapshotCache, donations DonationSnapshot,
	chats SessionSnapshot, interval time.Duration, log *slog.Logger) *SnapshotWriter {
	return &SnapshotWriter{
		log:       log,
		cache:     snapshots,
		donations: donations,
		chats:     chats,
		interval:  interval,
	}
}

func (w *SnapshotWriter) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping snapshot writer")
			return nil
		case <-ticker.C:
			w.Persist()
		}
	}
}

// Persist writes both snapshots, best effort. Donations are skipped
// until the first live load so a fresh start never clobbers a good
// cached snapshot with an empty one.
func (w *SnapshotWriter) Persist() {
	if loadedAt := w.donations.LoadedAt(); !loadedAt.IsZero() {
		if err := w.cache.SaveDonations(w.donations.All(), loadedAt); err != nil {
			w.log.Debug("Could not persist donation snapshot", "error", err)
		}
	}
	if err := w.cache.SaveSessions(w.chats.Sessions(), time.Now()); err != nil {
		w.log.Debug("Could not persist chat snapshot", "error", err)
	}
}
