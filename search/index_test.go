package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mealbridge/domain"
)

func snapshot() []domain.Donation {
	return []domain.Donation{
		{ID: "d1", FoodName: "Vegetable Soup", Description: "five liters, still warm", DonorName: "Dana", Status: domain.StatusPending},
		{ID: "d2", FoodName: "Bread", Description: "two dozen rolls", DonorName: "Miguel", Status: domain.StatusPending},
		{ID: "d3", FoodName: "Rice", Description: "vegetable fried rice", DonorName: "Dana", Status: domain.StatusAccepted},
	}
}

func TestIndex_QueryAcrossFields(t *testing.T) {
	req := require.New(t)
	idx, err := NewIndex()
	req.NoError(err)
	t.Cleanup(func() { _ = idx.Close() })
	req.NoError(idx.Rebuild(snapshot()))

	ctx := context.Background()

	t.Run("matches food name", func(t *testing.T) {
		ids, err := idx.Query(ctx, "soup", 10)
		require.NoError(t, err)
		require.Contains(t, ids, "d1")
	})

	t.Run("matches description", func(t *testing.T) {
		ids, err := idx.Query(ctx, "rolls", 10)
		require.NoError(t, err)
		require.Equal(t, []string{"d2"}, ids)
	})

	t.Run("matches donor name", func(t *testing.T) {
		ids, err := idx.Query(ctx, "dana", 10)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"d1", "d3"}, ids)
	})

	t.Run("no hits", func(t *testing.T) {
		ids, err := idx.Query(ctx, "pizza", 10)
		require.NoError(t, err)
		require.Empty(t, ids)
	})
}

func TestIndex_RebuildDropsRemovedDonations(t *testing.T) {
	req := require.New(t)
	idx, err := NewIndex()
	req.NoError(err)
	t.Cleanup(func() { _ = idx.Close() })

	req.NoError(idx.Rebuild(snapshot()))
	req.NoError(idx.Rebuild(snapshot()[:1])) // only the soup remains

	ids, err := idx.Query(context.Background(), "bread", 10)
	req.NoError(err)
	req.Empty(ids)
}
