//go:generate go run go.uber.org/mock/mockgen -source=donations.go -destination=../mocks/mock_donation_api.go -package=mocks
package api

import (
	"context"
	"fmt"
	"net/http"

	"mealbridge/domain"
)

// IDonationAPI is what the donation store needs from the backend.
type IDonationAPI interface {
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	CreateDonation(ctx context.Context, in domain.DonationInput) error
	Transition(ctx context.Context, donationID string, action domain.Action) error
}

// ListDonations fetches the full authoritative collection.
func (c *Client) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	var donations []domain.Donation
	if err := c.do(ctx, http.MethodGet, "/api/donations", nil, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// CreateDonation lists new surplus food. The server assigns identity,
// donor reference, creation time and the initial pending status.
func (c *Client) CreateDonation(ctx context.Context, in domain.DonationInput) error {
	return c.do(ctx, http.MethodPost, "/api/donations", in, nil)
}

// Transition invokes the named transition endpoint for a donation.
// The response body is ignored: the store always re-fetches the full
// collection afterwards instead of trusting an optimistic patch.
func (c *Client) Transition(ctx context.Context, donationID string, action domain.Action) error {
	path := fmt.Sprintf("/api/donations/%s/%s", donationID, action)
	return c.do(ctx, http.MethodPost, path, struct{}{}, nil)
}
