//go:generate go run go.uber.org/mock/mockgen -source=notifications.go -destination=../mocks/mock_notification_api.go -package=mocks
package api

import (
	"context"
	"fmt"
	"net/http"

	"mealbridge/domain"
)

// INotificationAPI is what the notification store needs from the backend.
type INotificationAPI interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	RegisterPushToken(ctx context.Context, token string) error
}

func (c *Client) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/notifications/%s/read", id), nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/read-all", nil, nil)
}

// RegisterPushToken enrolls a push token with the backend. Best effort:
// callers degrade to the fixed-interval poll when this fails.
func (c *Client) RegisterPushToken(ctx context.Context, token string) error {
	in := struct {
		Token string `json:"fcmToken"`
	}{Token: token}
	return c.do(ctx, http.MethodPost, "/api/notifications/register", in, nil)
}
