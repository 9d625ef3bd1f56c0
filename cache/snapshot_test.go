package cache

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"mealbridge/domain"
	"mealbridge/domain/chat"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	// Reduced value log size for testing
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSnapshotCache_DonationsRoundTrip(t *testing.T) {
	req := require.New(t)
	cache := NewSnapshotCache(openDB(t), slog.Default())

	savedAt := time.Now().Truncate(time.Second)
	donations := []domain.Donation{
		{ID: "d1", DonorID: "donor-1", FoodName: "Bread", Status: domain.StatusPending},
		{ID: "d2", DonorID: "donor-2", FoodName: "Soup", Status: domain.StatusAccepted,
			AcceptedBy: &domain.ActorRef{ID: "ngo-1", Name: "Food Rescue"}},
	}

	req.NoError(cache.SaveDonations(donations, savedAt))

	loaded, at, err := cache.LoadDonations()
	req.NoError(err)
	req.Equal(savedAt.Unix(), at.Unix())
	req.Len(loaded, 2)
	req.Equal("d1", loaded[0].ID)
	req.NotNil(loaded[1].AcceptedBy)
	req.Equal("ngo-1", loaded[1].AcceptedBy.ID)
}

func TestSnapshotCache_MissingKeyIsNotAnError(t *testing.T) {
	req := require.New(t)
	cache := NewSnapshotCache(openDB(t), slog.Default())

	donations, at, err := cache.LoadDonations()
	req.NoError(err)
	req.True(at.IsZero())
	req.Empty(donations)
}

func TestSnapshotCache_SessionsRoundTrip(t *testing.T) {
	req := require.New(t)
	cache := NewSnapshotCache(openDB(t), slog.Default())

	sessions := []chat.Session{{
		ID:       "chat-1",
		Donation: chat.DonationRef{ID: "d1", FoodName: "Bread", Status: domain.StatusPending},
		Status:   chat.SessionActive,
		Messages: []chat.Message{{ID: "m1", SenderID: "donor-1", Body: "hi"}},
	}}

	req.NoError(cache.SaveSessions(sessions, time.Now()))

	loaded, _, err := cache.LoadSessions()
	req.NoError(err)
	req.Len(loaded, 1)
	req.Equal("chat-1", loaded[0].ID)
	req.Len(loaded[0].Messages, 1)
}

func TestSnapshotCache_SaveOverwrites(t *testing.T) {
	req := require.New(t)
	cache := NewSnapshotCache(openDB(t), slog.Default())

	req.NoError(cache.SaveDonations([]domain.Donation{{ID: "old"}}, time.Now().Add(-time.Hour)))
	req.NoError(cache.SaveDonations([]domain.Donation{{ID: "new"}}, time.Now()))

	loaded, _, err := cache.LoadDonations()
	req.NoError(err)
	req.Len(loaded, 1)
	req.Equal("new", loaded[0].ID)
}
