// Package domain contains core concepts of the donation system.
// This file defines the Donation entity and its invariants.
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusInTransit Status = "in_transit"
	StatusPickedUp  Status = "picked_up"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

// Coordinates is the canonical lat/lng pair. The backend historically
// served either this object form or a two-element [lng, lat] array;
// both are accepted on input, only the object form is ever emitted.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	type alias Coordinates
	var obj alias
	if err := json.Unmarshal(data, &obj); err == nil {
		*c = Coordinates(obj)
		return nil
	}
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinates are neither an object nor an array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate array must have exactly 2 elements, got %d", len(pair))
	}
	c.Lng, c.Lat = pair[0], pair[1]
	return nil
}

type Location struct {
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// Donation is the central entity. DonorID never changes after creation.
// AcceptedBy is present if and only if Status is one of accepted,
// in_transit or picked_up; it is retained through the later states
// for audit and never cleared.
type Donation struct {
	ID          string     `json:"id"`
	DonorID     string     `json:"donorId"`
	DonorName   string     `json:"donorName"`
	FoodName    string     `json:"foodName"`
	Quantity    string     `json:"quantity"`
	Description string     `json:"description"`
	ExpiryTime  time.Time  `json:"expiryTime"`
	CreatedAt   time.Time  `json:"createdAt"`
	Image       string     `json:"image,omitempty"`
	Location    Location   `json:"location"`
	Status      Status     `json:"status"`
	AcceptedBy  *ActorRef  `json:"acceptedBy,omitempty"`
	PickupTime  *time.Time `json:"pickupTime,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

func (d *Donation) UnmarshalJSON(data []byte) error {
	type alias Donation
	aux := struct {
		AltID string `json:"_id"`
		*alias
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d.ID = PickID(aux.AltID, d.ID)
	return nil
}

// IsOwnedBy reports whether the actor created this donation.
func (d Donation) IsOwnedBy(actor User) bool {
	return d.DonorID == actor.ID
}

// IsAcceptedBy reports whether the actor is the NGO currently carrying
// this donation. Acceptance history alone is not enough: a donation whose
// status fell back to a terminal non-pickup state no longer counts.
func (d Donation) IsAcceptedBy(actor User) bool {
	if d.AcceptedBy == nil || d.AcceptedBy.ID != actor.ID {
		return false
	}
	switch d.Status {
	case StatusAccepted, StatusInTransit, StatusPickedUp:
		return true
	}
	return false
}
