//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=../mocks/mock_channel.go -package=mocks
package realtime

// Channel is the transport seen by the chat store. Implementations own
// reconnection; consumers only observe the connected flag flipping and
// the synthetic connect/disconnect events on the inbound stream.
type Channel interface {
	// JoinChat subscribes this connection to a session's events.
	JoinChat(sessionID string) error
	// SendMessage emits a fire-and-forget message event. The message
	// only appears locally once the server echoes it back.
	SendMessage(sessionID, body string) error
	// Events is the inbound stream, including synthetic lifecycle events.
	Events() <-chan Inbound
	// Connected reports whether the socket is currently up.
	Connected() bool
	// Close tears the connection down for good (logout, shutdown).
	Close() error
}
