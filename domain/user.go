// Package domain contains core concepts of the donation system.
// This file defines actors and their roles.
// No runtime, network, or UI logic should be added here.
package domain

import "encoding/json"

type Role string

const (
	RoleDonor Role = "donor"
	RoleNGO   Role = "ngo"
	RoleAdmin Role = "admin"
)

// User is the authenticated actor. Role is immutable once assigned
// and gates every donation transition.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	Organization string `json:"organization,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Verified     bool   `json:"verified"`
}

// ActorRef is a denormalized reference to a user, kept on donations
// for audit even after the donation leaves the accepted states.
type ActorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PickID resolves the primary key of a remote document. The backend may
// expose either "_id" or "id" depending on the collection; callers must
// normalize before any lookup.
func PickID(alt, id string) string {
	if alt != "" {
		return alt
	}
	return id
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		AltID string `json:"_id"`
		*alias
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	u.ID = PickID(aux.AltID, u.ID)
	return nil
}

func (a *ActorRef) UnmarshalJSON(data []byte) error {
	type alias ActorRef
	aux := struct {
		AltID string `json:"_id"`
		*alias
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.ID = PickID(aux.AltID, a.ID)
	return nil
}
