//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_api.go -package=mocks
package api

import (
	"context"
	"fmt"
	"net/http"

	"mealbridge/domain/chat"
)

// IChatAPI is what the chat store needs from the backend.
type IChatAPI interface {
	MySessions(ctx context.Context) ([]chat.Session, error)
	CreateOrJoinSession(ctx context.Context, donationID string) (chat.Session, error)
	MarkSessionRead(ctx context.Context, sessionID string) error
}

// MySessions lists every session the current actor participates in.
func (c *Client) MySessions(ctx context.Context) ([]chat.Session, error) {
	var sessions []chat.Session
	if err := c.do(ctx, http.MethodGet, "/api/chat/my-chats", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateOrJoinSession is idempotent on the server: it returns the
// existing session for the donation or creates one lazily.
func (c *Client) CreateOrJoinSession(ctx context.Context, donationID string) (chat.Session, error) {
	var session chat.Session
	path := fmt.Sprintf("/api/chat/donation/%s", donationID)
	if err := c.do(ctx, http.MethodPost, path, nil, &session); err != nil {
		return chat.Session{}, err
	}
	return session, nil
}

// MarkSessionRead records the current actor as having read everything
// in the session. The authoritative receipt set lives server-side.
func (c *Client) MarkSessionRead(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/api/chat/%s/mark-read", sessionID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}
