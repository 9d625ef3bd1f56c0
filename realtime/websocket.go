package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mealbridge/auth"
	"mealbridge/errors"
)

const reconnectDelay = 2 * time.Second

// WebsocketChannel is the production Channel. Its Run method is a
// supervised worker: it dials, pumps inbound frames, and redials after
// a drop until the context is cancelled. Sends while disconnected fail
// fast with errors.ErrNotConnected instead of queueing.
type WebsocketChannel struct {
	url       string
	cred      *auth.Credential
	log       *slog.Logger
	events    chan Inbound
	connected atomic.Bool

	mu   sync.Mutex // guards conn writes; gorilla allows one writer at a time
	conn *websocket.Conn
}

func NewWebsocketChannel(url string, cred *auth.Credential, bufferSize int, log *slog.Logger) *WebsocketChannel {
	return &WebsocketChannel{
		url:    url,
		cred:   cred,
		log:    log,
		events: make(chan Inbound, bufferSize),
	}
}

func (c *WebsocketChannel) Events() <-chan Inbound { return c.events }

func (c *WebsocketChannel) Connected() bool { return c.connected.Load() }

func (c *WebsocketChannel) JoinChat(sessionID string) error {
	return c.emit(EventJoinChat, joinPayload{SessionID: sessionID})
}

func (c *WebsocketChannel) SendMessage(sessionID, body string) error {
	return c.emit(EventSendMessage, sendPayload{SessionID: sessionID, Message: body})
}

func (c *WebsocketChannel) emit(event string, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil || !c.connected.Load() {
		return errors.ErrNotConnected
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", event, err)
	}
	frame := Frame{Event: event, CorrelationID: uuid.NewString(), Payload: raw}
	if err := c.conn.WriteJSON(frame); err != nil {
		return fmt.Errorf("emitting %s: %w", event, err)
	}
	return nil
}

// Run pumps the socket until ctx is done. One connection attempt per
// loop iteration; a failed dial or a dropped connection surfaces a
// synthetic disconnect and retries after a fixed delay.
func (c *WebsocketChannel) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if err := c.connectAndPump(ctx); err != nil {
			c.log.Warn("Realtime channel dropped", "error", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func (c *WebsocketChannel) connectAndPump(ctx context.Context) error {
	token, err := c.cred.Token()
	if err != nil {
		return err
	}
	header := http.Header{"Authorization": []string{"Bearer " + token}}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, header)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", c.url, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.connected.Store(true)
	c.inject(EventConnected, nil)
	c.log.Info("Realtime channel connected", "url", c.url)

	defer func() {
		c.connected.Store(false)
		c.inject(EventDisconnected, nil)
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		_ = conn.Close()
	}()

	// Close the socket when the context ends so ReadJSON unblocks.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("reading frame: %w", err)
		}
		c.inject(frame.Event, frame.Payload)
	}
}

// inject pushes an event to the consumer without ever blocking the
// pump. A full buffer drops the event; the next full fetch resyncs.
func (c *WebsocketChannel) inject(event string, payload json.RawMessage) {
	select {
	case c.events <- Inbound{Event: event, Payload: payload, At: time.Now()}:
	default:
		c.log.Debug("Inbound event buffer full, dropping", "event", event)
	}
}

func (c *WebsocketChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected.Store(false)
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}
