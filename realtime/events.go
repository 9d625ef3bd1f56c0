// Package realtime is the bidirectional event channel to the chat
// backend. It carries named events over a single socket, authenticated
// with the same bearer credential as the REST client.
package realtime

import (
	"encoding/json"
	"time"

	"mealbridge/domain/chat"
)

// Event names on the wire. Connected and Disconnected are synthetic
// lifecycle events injected locally; they never cross the socket.
const (
	EventJoinChat     = "join-chat"
	EventSendMessage  = "send-message"
	EventNewMessage   = "new-message"
	EventAdminJoined  = "admin-joined"
	EventConnected    = "connect"
	EventDisconnected = "disconnect"
)

// Frame is the wire envelope: an event name, a correlation id assigned
// by the sender, and an event-specific payload.
type Frame struct {
	Event         string          `json:"event"`
	CorrelationID string          `json:"correlationId,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// Inbound is a received event, stamped with its local arrival time.
// Arrival time (not the server send time) drives lastActivity updates.
type Inbound struct {
	Event   string
	Payload json.RawMessage
	At      time.Time
}

// NewMessagePayload is the body of a new-message event.
type NewMessagePayload struct {
	SessionID string       `json:"chatId"`
	Message   chat.Message `json:"message"`
}

// AdminJoinedPayload is the body of an admin-joined event.
type AdminJoinedPayload struct {
	SessionID string `json:"chatId"`
	Notice    string `json:"message"`
}

// joinPayload and sendPayload are the outbound bodies.
type joinPayload struct {
	SessionID string `json:"chatId"`
}

type sendPayload struct {
	SessionID string `json:"chatId"`
	Message   string `json:"message"`
}
