//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=../mocks/mock_snapshot_cache.go -package=mocks
// Package cache persists the last known snapshots on disk so a fresh
// start (or a dead network) can show stale-but-available data until
// the first reload succeeds.
package cache

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"mealbridge/domain"
	"mealbridge/domain/chat"
)

const (
	keyDonations = "snap:donations"
	keySessions  = "snap:sessions"
)

type ISnapshotCache interface {
	SaveDonations(donations []domain.Donation, at time.Time) error
	LoadDonations() ([]domain.Donation, time.Time, error)
	SaveSessions(sessions []chat.Session, at time.Time) error
	LoadSessions() ([]chat.Session, time.Time, error)
}

// SnapshotCache stores whole-collection snapshots in BadgerDB. One key
// per collection; the value is a JSON envelope carrying the save time,
// so consumers can tell how stale the data is.
type SnapshotCache struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSnapshotCache(db *badger.DB, log *slog.Logger) SnapshotCache {
	return SnapshotCache{db: db, log: log}
}

type envelope struct {
	SavedAt time.Time       `json:"savedAt"`
	Payload json.RawMessage `json:"payload"`
}

func (c SnapshotCache) save(key string, payload any, at time.Time) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", key, err)
	}
	value, err := json.Marshal(envelope{SavedAt: at, Payload: raw})
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// load decodes the envelope under key into out. A missing key is not
// an error: it yields a zero time and leaves out untouched.
func (c SnapshotCache) load(key string, out any) (time.Time, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			value = append([]byte(nil), v...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}

	var env envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return time.Time{}, fmt.Errorf("decoding snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal(env.Payload, out); err != nil {
		return time.Time{}, fmt.Errorf("decoding snapshot %s payload: %w", key, err)
	}
	return env.SavedAt, nil
}

func (c SnapshotCache) SaveDonations(donations []domain.Donation, at time.Time) error {
	return c.save(keyDonations, donations, at)
}

func (c SnapshotCache) LoadDonations() ([]domain.Donation, time.Time, error) {
	var donations []domain.Donation
	at, err := c.load(keyDonations, &donations)
	return donations, at, err
}

func (c SnapshotCache) SaveSessions(sessions []chat.Session, at time.Time) error {
	return c.save(keySessions, sessions, at)
}

func (c SnapshotCache) LoadSessions() ([]chat.Session, time.Time, error) {
	var sessions []chat.Session
	at, err := c.load(keySessions, &sessions)
	return sessions, at, err
}
