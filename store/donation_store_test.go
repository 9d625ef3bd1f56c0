package store

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mealbridge/auth"
	"mealbridge/domain"
	"mealbridge/errors"
	"mealbridge/mocks"
)

var (
	storeDonor = domain.User{ID: "donor-1", Name: "Dana", Role: domain.RoleDonor}
	storeNGO   = domain.User{ID: "ngo-1", Name: "Food Rescue", Role: domain.RoleNGO}
)

func donationFixture() []domain.Donation {
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	return []domain.Donation{
		{
			ID: "d1", DonorID: "donor-1", DonorName: "Dana",
			FoodName: "Vegetable Soup", Quantity: "10 portions",
			Status:     domain.StatusPending,
			CreatedAt:  base,
			ExpiryTime: base.Add(48 * time.Hour),
		},
		{
			ID: "d2", DonorID: "donor-2", DonorName: "Miguel",
			FoodName: "Bread", Quantity: "30 loaves",
			Status:     domain.StatusPending,
			CreatedAt:  base.Add(2 * time.Hour),
			ExpiryTime: base.Add(12 * time.Hour),
		},
		{
			ID: "d3", DonorID: "donor-1", DonorName: "Dana",
			FoodName: "Rice", Quantity: "5 kg",
			Status:     domain.StatusAccepted,
			AcceptedBy: &domain.ActorRef{ID: "ngo-1", Name: "Food Rescue"},
			CreatedAt:  base.Add(time.Hour),
			ExpiryTime: base.Add(72 * time.Hour),
		},
	}
}

func credentialFor(u domain.User) *auth.Credential {
	cred := auth.NewCredential()
	cred.SetSession(u, "token-"+u.ID)
	return cred
}

func TestDonationStore_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockIDonationAPI(ctrl)
	store := NewDonationStore(mockAPI, credentialFor(storeDonor), slog.Default())

	t.Run("should replace the snapshot on success", func(t *testing.T) {
		req := require.New(t)

		mockAPI.EXPECT().ListDonations(gomock.Any()).Return(donationFixture(), nil)

		req.NoError(store.Reload(context.Background()))
		req.Len(store.All(), 3)
		req.False(store.LoadedAt().IsZero())
	})

	t.Run("should keep the previous snapshot when the fetch fails", func(t *testing.T) {
		req := require.New(t)

		mockAPI.EXPECT().ListDonations(gomock.Any()).Return(nil, errors.ErrUnknownDonation)

		req.Error(store.Reload(context.Background()))
		req.Len(store.All(), 3) // stale but still available
	})
}

func TestDonationStore_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockIDonationAPI(ctrl)
	store := NewDonationStore(mockAPI, credentialFor(storeDonor), slog.Default())

	t.Run("should install a cached snapshot while nothing is loaded", func(t *testing.T) {
		req := require.New(t)

		store.Seed(donationFixture()[:1], time.Now().Add(-time.Hour))

		req.Len(store.All(), 1)
	})

	t.Run("should never overwrite a live snapshot", func(t *testing.T) {
		req := require.New(t)

		mockAPI.EXPECT().ListDonations(gomock.Any()).Return(donationFixture(), nil)
		req.NoError(store.Reload(context.Background()))

		store.Seed(nil, time.Now())

		req.Len(store.All(), 3)
	})
}

func TestDonationStore_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockIDonationAPI(ctrl)

	input := domain.DonationInput{
		FoodName:   "Vegetable Soup",
		Quantity:   "10 portions",
		ExpiryTime: time.Now().Add(24 * time.Hour),
		Location:   domain.Location{Address: "12 Market St"},
	}

	t.Run("should reject when not logged in", func(t *testing.T) {
		req := require.New(t)
		store := NewDonationStore(mockAPI, auth.NewCredential(), slog.Default())

		mockAPI.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(store.Create(context.Background(), input), errors.ErrNotAuthenticated)
	})

	t.Run("should reject invalid input before any network call", func(t *testing.T) {
		req := require.New(t)
		store := NewDonationStore(mockAPI, credentialFor(storeDonor), slog.Default())

		bad := input
		bad.ExpiryTime = time.Now().Add(-time.Hour)
		mockAPI.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(store.Create(context.Background(), bad), errors.ErrInvalidInput)
	})

	t.Run("should post then reload the full collection", func(t *testing.T) {
		req := require.New(t)
		store := NewDonationStore(mockAPI, credentialFor(storeDonor), slog.Default())

		gomock.InOrder(
			mockAPI.EXPECT().CreateDonation(gomock.Any(), input).Return(nil),
			mockAPI.EXPECT().ListDonations(gomock.Any()).Return(donationFixture(), nil),
		)

		req.NoError(store.Create(context.Background(), input))
		req.Len(store.All(), 3)
	})
}

func TestDonationStore_Transition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seed := func(t *testing.T, mockAPI *mocks.MockIDonationAPI, actor domain.User) *DonationStore {
		t.Helper()
		store := NewDonationStore(mockAPI, credentialFor(actor), slog.Default())
		mockAPI.EXPECT().ListDonations(gomock.Any()).Return(donationFixture(), nil)
		require.NoError(t, store.Reload(context.Background()))
		return store
	}

	t.Run("should accept a pending donation and reload", func(t *testing.T) {
		req := require.New(t)
		mockAPI := mocks.NewMockIDonationAPI(ctrl)
		store := seed(t, mockAPI, storeNGO)

		accepted := donationFixture()
		accepted[0].Status = domain.StatusAccepted
		accepted[0].AcceptedBy = &domain.ActorRef{ID: storeNGO.ID, Name: storeNGO.Name}

		gomock.InOrder(
			mockAPI.EXPECT().Transition(gomock.Any(), "d1", domain.ActionAccept).Return(nil),
			mockAPI.EXPECT().ListDonations(gomock.Any()).Return(accepted, nil),
		)

		req.NoError(store.Transition(context.Background(), "d1", domain.ActionAccept))

		got, ok := store.ByID("d1")
		req.True(ok)
		req.Equal(domain.StatusAccepted, got.Status)
	})

	t.Run("should never call the backend for an unsupported transition", func(t *testing.T) {
		req := require.New(t)
		mockAPI := mocks.NewMockIDonationAPI(ctrl)
		store := seed(t, mockAPI, storeNGO)

		// d3 is already accepted; a second accept must die locally.
		mockAPI.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := store.Transition(context.Background(), "d3", domain.ActionAccept)
		req.ErrorIs(err, errors.ErrTransitionNotSupported)
	})

	t.Run("should never call the backend for an unauthorized actor", func(t *testing.T) {
		req := require.New(t)
		mockAPI := mocks.NewMockIDonationAPI(ctrl)
		store := seed(t, mockAPI, storeDonor)

		mockAPI.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := store.Transition(context.Background(), "d1", domain.ActionAccept)
		req.ErrorIs(err, errors.ErrNotAllowed)
	})

	t.Run("should fail for a donation missing from the snapshot", func(t *testing.T) {
		req := require.New(t)
		mockAPI := mocks.NewMockIDonationAPI(ctrl)
		store := seed(t, mockAPI, storeNGO)

		err := store.Transition(context.Background(), "ghost", domain.ActionAccept)
		req.ErrorIs(err, errors.ErrUnknownDonation)
	})

	t.Run("should not reload when the backend rejects the request", func(t *testing.T) {
		req := require.New(t)
		mockAPI := mocks.NewMockIDonationAPI(ctrl)
		store := seed(t, mockAPI, storeNGO)

		mockAPI.EXPECT().
			Transition(gomock.Any(), "d1", domain.ActionAccept).
			Return(errors.ErrNotAllowed)

		req.Error(store.Transition(context.Background(), "d1", domain.ActionAccept))

		got, _ := store.ByID("d1")
		req.Equal(domain.StatusPending, got.Status) // snapshot untouched
	})
}

func TestDonationStore_Views(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newStore := func(t *testing.T, actor domain.User) *DonationStore {
		t.Helper()
		mockAPI := mocks.NewMockIDonationAPI(ctrl)
		store := NewDonationStore(mockAPI, credentialFor(actor), slog.Default())
		mockAPI.EXPECT().ListDonations(gomock.Any()).Return(donationFixture(), nil)
		require.NoError(t, store.Reload(context.Background()))
		return store
	}

	t.Run("should list the donor's own donations", func(t *testing.T) {
		req := require.New(t)
		store := newStore(t, storeDonor)

		owned := store.OwnedByActor()
		req.Len(owned, 2)
		for _, d := range owned {
			req.Equal(storeDonor.ID, d.DonorID)
		}
	})

	t.Run("should list accepted donations only for an ngo actor", func(t *testing.T) {
		req := require.New(t)

		ngoStore := newStore(t, storeNGO)
		carrying := ngoStore.AcceptedByActor()
		req.Len(carrying, 1)
		req.Equal("d3", carrying[0].ID)

		donorStore := newStore(t, storeDonor)
		req.Empty(donorStore.AcceptedByActor())
	})

	t.Run("should browse pending donations sorted by soonest expiry", func(t *testing.T) {
		req := require.New(t)
		store := newStore(t, storeNGO)

		available := store.Available(BrowseFilter{})
		req.Len(available, 2)
		// d2 expires before d1; d3 is not pending.
		req.Equal("d2", available[0].ID)
		req.Equal("d1", available[1].ID)
	})

	t.Run("should browse most recent first when asked", func(t *testing.T) {
		req := require.New(t)
		store := newStore(t, storeNGO)

		available := store.Available(BrowseFilter{Sort: SortMostRecent})
		req.Equal("d2", available[0].ID)
	})

	t.Run("should filter by case-insensitive substring across fields", func(t *testing.T) {
		req := require.New(t)
		store := newStore(t, storeNGO)

		req.Len(store.Available(BrowseFilter{Query: "SOUP"}), 1)
		req.Len(store.Available(BrowseFilter{Query: "dana"}), 1) // donor name, d3 not pending
		req.Empty(store.Available(BrowseFilter{Query: "sushi"}))
	})
}
