package domain

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotificationDonation     NotificationType = "donation"
	NotificationStatusUpdate NotificationType = "status_update"
	NotificationExpiryAlert  NotificationType = "expiry_alert"
)

// Notification is a server-issued alert fetched by the polling loop.
type Notification struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Type       NotificationType `json:"type"`
	Read       bool             `json:"read"`
	CreatedAt  time.Time        `json:"createdAt"`
	DonationID string           `json:"donationId,omitempty"`
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	type alias Notification
	aux := struct {
		AltID string `json:"_id"`
		*alias
	}{alias: (*alias)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.ID = PickID(aux.AltID, n.ID)
	return nil
}
