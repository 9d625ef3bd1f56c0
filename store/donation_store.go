// Package store owns the mutable client-side snapshots: the donation
// collection, the chat session list, and the notification feed. Each
// snapshot has a single update entry point; every derived view is
// recomputed from the current snapshot on read and holds no state of
// its own.
package store

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"mealbridge/api"
	"mealbridge/auth"
	"mealbridge/domain"
	"mealbridge/errors"
)

type SortOrder string

const (
	SortSoonestExpiry SortOrder = "expiry"
	SortMostRecent    SortOrder = "recent"
)

// BrowseFilter narrows the available-donations view.
type BrowseFilter struct {
	Query string
	Sort  SortOrder
}

// DonationStore treats its donation list as a read-through cache over
// the backend: every successful mutation is followed by a full reload
// rather than an optimistic local patch, so the client never diverges
// from server-side derived fields such as expiry sweeps.
type DonationStore struct {
	mu   sync.RWMutex
	log  *slog.Logger
	api  api.IDonationAPI
	cred *auth.Credential

	donations []domain.Donation
	loadedAt  time.Time
}

func NewDonationStore(client api.IDonationAPI, cred *auth.Credential, log *slog.Logger) *DonationStore {
	return &DonationStore{log: log, api: client, cred: cred}
}

// Reload fetches the authoritative collection and swaps the snapshot.
// On failure the previous snapshot stays visible (stale-but-available)
// and the error is returned for surfacing.
func (s *DonationStore) Reload(ctx context.Context) error {
	donations, err := s.api.ListDonations(ctx)
	if err != nil {
		s.log.Warn("Donation reload failed, keeping previous snapshot", "error", err)
		return err
	}
	s.mu.Lock()
	s.donations = donations
	s.loadedAt = time.Now()
	s.mu.Unlock()
	s.log.Debug("Donation snapshot replaced", "count", len(donations))
	return nil
}

// Seed installs a cached snapshot before the first reload completes,
// so the UI has something to show while offline.
func (s *DonationStore) Seed(donations []domain.Donation, loadedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loadedAt.IsZero() {
		return // a live snapshot always wins over a cached one
	}
	s.donations = donations
	s.loadedAt = loadedAt
}

// Create validates the submission locally, posts it, and reloads.
func (s *DonationStore) Create(ctx context.Context, in domain.DonationInput) error {
	if _, ok := s.cred.User(); !ok {
		return errors.ErrNotAuthenticated
	}
	if err := in.Validate(time.Now()); err != nil {
		return err
	}
	if err := s.api.CreateDonation(ctx, in); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// Transition requests a status change. The transition table is checked
// against the current snapshot before any network call: an unsupported
// or unauthorized request never leaves the client and never mutates
// state. On success the collection is re-fetched in full.
func (s *DonationStore) Transition(ctx context.Context, donationID string, action domain.Action) error {
	actor, ok := s.cred.User()
	if !ok {
		return errors.ErrNotAuthenticated
	}
	donation, ok := s.ByID(donationID)
	if !ok {
		return errors.ErrUnknownDonation
	}
	if err := domain.Allowed(actor, donation, action); err != nil {
		return err
	}
	if err := s.api.Transition(ctx, donationID, action); err != nil {
		return err
	}
	s.log.Info(domain.SuccessLabel(action), "donation", donationID, "status", action.Target())
	return s.Reload(ctx)
}

// All returns a copy of the current snapshot.
func (s *DonationStore) All() []domain.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Donation(nil), s.donations...)
}

// LoadedAt reports when the snapshot was last replaced.
func (s *DonationStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *DonationStore) ByID(id string) (domain.Donation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.donations, func(d domain.Donation) bool { return d.ID == id })
}

// OwnedByActor is the donor dashboard view: donations created by the
// current actor. Empty when unauthenticated.
func (s *DonationStore) OwnedByActor() []domain.Donation {
	actor, ok := s.cred.User()
	if !ok {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Filter(s.donations, func(d domain.Donation, _ int) bool {
		return d.IsOwnedBy(actor)
	})
}

// AcceptedByActor is the NGO dashboard view: donations this actor is
// currently carrying. Membership requires both the acceptedBy match
// and a status still in the accepted/in_transit/picked_up set.
func (s *DonationStore) AcceptedByActor() []domain.Donation {
	actor, ok := s.cred.User()
	if !ok || actor.Role != domain.RoleNGO {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Filter(s.donations, func(d domain.Donation, _ int) bool {
		return d.IsAcceptedBy(actor)
	})
}

// Available is the browse view: pending donations, optionally filtered
// by a case-insensitive substring over food name, description and donor
// name, sorted by soonest expiry or most recent creation.
func (s *DonationStore) Available(filter BrowseFilter) []domain.Donation {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	s.mu.RLock()
	matched := lo.Filter(s.donations, func(d domain.Donation, _ int) bool {
		if d.Status != domain.StatusPending {
			return false
		}
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(d.FoodName), query) ||
			strings.Contains(strings.ToLower(d.Description), query) ||
			strings.Contains(strings.ToLower(d.DonorName), query)
	})
	s.mu.RUnlock()

	switch filter.Sort {
	case SortMostRecent:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].ExpiryTime.Before(matched[j].ExpiryTime)
		})
	}
	return matched
}
