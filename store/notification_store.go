package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"mealbridge/api"
	"mealbridge/auth"
	"mealbridge/domain"
	"mealbridge/push"
)

// NotificationStore holds the polled server-side notification feed.
// Unlike chat notices these are durable records with their own read
// flags managed by the backend.
type NotificationStore struct {
	mu   sync.RWMutex
	log  *slog.Logger
	api  api.INotificationAPI
	cred *auth.Credential

	notifications []domain.Notification
}

func NewNotificationStore(client api.INotificationAPI, cred *auth.Credential, log *slog.Logger) *NotificationStore {
	return &NotificationStore{log: log, api: client, cred: cred}
}

// Refresh swaps the feed with the server's view. Called by the poller
// on a fixed interval; failures keep the previous feed visible.
func (s *NotificationStore) Refresh(ctx context.Context) error {
	if _, ok := s.cred.User(); !ok {
		return nil // nothing to poll for while logged out
	}
	notifications, err := s.api.ListNotifications(ctx)
	if err != nil {
		s.log.Debug("Notification refresh failed", "error", err)
		return err
	}
	s.mu.Lock()
	s.notifications = notifications
	s.mu.Unlock()
	return nil
}

// RegisterPush enrolls the device token with the backend. Best effort
// on every level: no token, or a failing registration, degrades to the
// poll without surfacing an error to the user.
func (s *NotificationStore) RegisterPush(ctx context.Context, source push.TokenSource) {
	token, err := source.Token(ctx)
	if err != nil || token == "" {
		s.log.Info("Push notifications not available, using polling instead")
		return
	}
	if err := s.api.RegisterPushToken(ctx, token); err != nil {
		s.log.Warn("Push token registration failed, using polling instead", "error", err)
	}
}

// MarkRead flips one notification's flag, backend first, then locally.
func (s *NotificationStore) MarkRead(ctx context.Context, id string) error {
	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
		}
	}
	return nil
}

// MarkAllRead flips every flag, backend first.
func (s *NotificationStore) MarkAllRead(ctx context.Context) error {
	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	return nil
}

func (s *NotificationStore) All() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Notification(nil), s.notifications...)
}

// UnreadCount is derived on demand, never stored.
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.CountBy(s.notifications, func(n domain.Notification) bool { return !n.Read })
}
