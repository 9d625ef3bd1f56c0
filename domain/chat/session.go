// Package chat contains the conversation model: sessions scoped to a
// single donation, their participants, and the append-only message log
// with per-reader receipts. No transport logic lives here.
package chat

import (
	"encoding/json"
	"time"

	"mealbridge/domain"
)

type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionClosed SessionStatus = "closed"
)

// DonationRef is the denormalized donation snapshot carried by a session.
type DonationRef struct {
	ID       string        `json:"id"`
	FoodName string        `json:"foodName"`
	Status   domain.Status `json:"status"`
}

func (r *DonationRef) UnmarshalJSON(data []byte) error {
	type alias DonationRef
	aux := struct {
		AltID string `json:"_id"`
		*alias
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.ID = domain.PickID(aux.AltID, r.ID)
	return nil
}

// Participant set grows monotonically; nobody is ever removed.
type Participant struct {
	User     domain.ActorRef `json:"userId"`
	Role     domain.Role     `json:"role"`
	JoinedAt time.Time       `json:"joinedAt"`
}

// Receipt records that a reader has seen a message. At most one entry
// per reader; a reader moves from absent to present exactly once.
type Receipt struct {
	UserID string    `json:"userId"`
	ReadAt time.Time `json:"readAt"`
}

// Message is immutable once appended; only its receipt set grows.
// SenderRole is fixed at send time even if the sender's role changes later.
type Message struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"senderId"`
	SenderName string      `json:"senderName"`
	SenderRole domain.Role `json:"senderRole"`
	Body       string      `json:"message"`
	SentAt     time.Time   `json:"timestamp"`
	Reads      []Receipt   `json:"read"`
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type alias Message
	aux := struct {
		AltID string `json:"_id"`
		*alias
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.ID = domain.PickID(aux.AltID, m.ID)
	return nil
}

// ReadBy reports whether the given reader already has a receipt.
func (m Message) ReadBy(userID string) bool {
	for _, r := range m.Reads {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// Session is one conversation tied to exactly one donation. It is
// created lazily on first open and only ever marked closed, never
// deleted; closure policy belongs to the backend.
type Session struct {
	ID           string        `json:"id"`
	Donation     DonationRef   `json:"donationId"`
	Participants []Participant `json:"participants"`
	Messages     []Message     `json:"messages"`
	Status       SessionStatus `json:"status"`
	LastActivity time.Time     `json:"lastActivity"`
}

func (s *Session) UnmarshalJSON(data []byte) error {
	type alias Session
	aux := struct {
		AltID string `json:"_id"`
		*alias
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = domain.PickID(aux.AltID, s.ID)
	return nil
}

// Append adds a message to the log and bumps LastActivity to the
// arrival time. LastActivity is monotonically non-decreasing even when
// events arrive out of order after a reconnect gap.
func (s *Session) Append(m Message, arrivedAt time.Time) {
	s.Messages = append(s.Messages, m)
	if arrivedAt.After(s.LastActivity) {
		s.LastActivity = arrivedAt
	}
}

// UnreadFor derives the unread count for one reader: messages sent by
// somebody else that carry no receipt for them. Never stored.
func (s Session) UnreadFor(userID string) int {
	count := 0
	for _, m := range s.Messages {
		if m.SenderID != userID && !m.ReadBy(userID) {
			count++
		}
	}
	return count
}

// MarkReadLocal flags every foreign message as read by the given
// reader. Idempotent: existing receipts are left untouched. This is the
// best-effort local mirror of the backend's mark-read operation.
func (s *Session) MarkReadLocal(userID string, at time.Time) {
	for i := range s.Messages {
		m := &s.Messages[i]
		if m.SenderID == userID || m.ReadBy(userID) {
			continue
		}
		m.Reads = append(m.Reads, Receipt{UserID: userID, ReadAt: at})
	}
}

// LastMessage returns the newest entry of the log, or false when empty.
func (s Session) LastMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}
