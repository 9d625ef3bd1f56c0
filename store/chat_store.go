package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"mealbridge/api"
	"mealbridge/auth"
	"mealbridge/domain/chat"
	"mealbridge/errors"
	"mealbridge/realtime"
)

const noticePreviewLimit = 50

// Masker redacts message previews before they reach a notice. The
// moderation package provides the production implementation.
type Masker interface {
	Censor(string) string
}

// Notice is a transient, user-facing notification (new message toast,
// admin-joined banner). Delivered through a bounded channel and dropped
// when nobody is listening; sync never blocks on the UI.
type Notice struct {
	Title string
	Body  string
}

// ChatStore owns the session list for the current actor and the
// active-session pointer for the conversation being viewed. Inbound
// realtime events are merged here; there is no optimistic local insert,
// the server-authoritative log is the only ordering.
type ChatStore struct {
	mu      sync.RWMutex
	log     *slog.Logger
	api     api.IChatAPI
	cred    *auth.Credential
	channel realtime.Channel
	masker  Masker

	sessions []chat.Session
	activeID string
	notices  chan Notice
}

func NewChatStore(client api.IChatAPI, cred *auth.Credential, channel realtime.Channel,
	masker Masker, noticeBuffer int, log *slog.Logger) *ChatStore {
	return &ChatStore{
		log:     log,
		api:     client,
		cred:    cred,
		channel: channel,
		masker:  masker,
		notices: make(chan Notice, noticeBuffer),
	}
}

// Notices is the transient notification stream.
func (s *ChatStore) Notices() <-chan Notice { return s.notices }

// Connected mirrors the realtime channel state for the persistent
// connection indicator.
func (s *ChatStore) Connected() bool { return s.channel.Connected() }

// FetchSessions replaces the session list with the server's view.
func (s *ChatStore) FetchSessions(ctx context.Context) error {
	sessions, err := s.api.MySessions(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions = sessions
	s.mu.Unlock()
	s.log.Debug("Chat session list replaced", "count", len(sessions))
	return nil
}

// CreateOrJoinSession is idempotent: the backend returns the existing
// session for the donation or creates one. The result is merged into
// the list (replace-if-exists-by-id, else prepend) and the realtime
// subscription for it is opened best-effort.
func (s *ChatStore) CreateOrJoinSession(ctx context.Context, donationID string) (chat.Session, error) {
	if _, ok := s.cred.User(); !ok {
		return chat.Session{}, errors.ErrNotAuthenticated
	}
	session, err := s.api.CreateOrJoinSession(ctx, donationID)
	if err != nil {
		return chat.Session{}, err
	}

	s.mu.Lock()
	if _, idx, found := lo.FindIndexOf(s.sessions, func(c chat.Session) bool { return c.ID == session.ID }); found {
		s.sessions[idx] = session
	} else {
		s.sessions = append([]chat.Session{session}, s.sessions...)
	}
	s.mu.Unlock()

	if err := s.channel.JoinChat(session.ID); err != nil {
		s.log.Debug("Could not join realtime room yet", "session", session.ID, "error", err)
	}
	return session, nil
}

// SendMessage emits a fire-and-forget message event. The message shows
// up locally only once the server echoes it back as new-message.
func (s *ChatStore) SendMessage(sessionID, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return errors.ErrEmptyMessage
	}
	if !s.channel.Connected() {
		return errors.ErrNotConnected
	}
	return s.channel.SendMessage(sessionID, body)
}

// MarkRead records the actor as having read the whole session on the
// backend, then mirrors the receipts locally so unread counts drop
// without waiting for the next fetch.
func (s *ChatStore) MarkRead(ctx context.Context, sessionID string) error {
	actor, ok := s.cred.User()
	if !ok {
		return errors.ErrNotAuthenticated
	}
	if err := s.api.MarkSessionRead(ctx, sessionID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			s.sessions[i].MarkReadLocal(actor.ID, time.Now())
			return nil
		}
	}
	return errors.ErrUnknownSession
}

// SetActive points the store at the conversation being viewed.
func (s *ChatStore) SetActive(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = sessionID
}

func (s *ChatStore) ClearActive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = ""
}

// Active returns the currently viewed session, if any.
func (s *ChatStore) Active() (chat.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeID == "" {
		return chat.Session{}, false
	}
	return lo.Find(s.sessions, func(c chat.Session) bool { return c.ID == s.activeID })
}

// Sessions returns a copy of the list, newest activity first.
func (s *ChatStore) Sessions() []chat.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]chat.Session(nil), s.sessions...)
	return out
}

// UnreadFor derives the unread count of one session for the current
// actor. Zero when logged out or the session is unknown.
func (s *ChatStore) UnreadFor(sessionID string) int {
	actor, ok := s.cred.User()
	if !ok {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.sessions {
		if session.ID == sessionID {
			return session.UnreadFor(actor.ID)
		}
	}
	return 0
}

// HandleInbound merges one realtime event into the session list. It is
// the single write path for socket-driven state and must tolerate
// events arriving before the initial fetch completes.
func (s *ChatStore) HandleInbound(evt realtime.Inbound) {
	switch evt.Event {
	case realtime.EventNewMessage:
		var payload realtime.NewMessagePayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			s.log.Debug("Malformed new-message payload", "error", err)
			return
		}
		s.applyNewMessage(payload, evt.At)
	case realtime.EventAdminJoined:
		var payload realtime.AdminJoinedPayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			s.log.Debug("Malformed admin-joined payload", "error", err)
			return
		}
		s.notify(Notice{Title: "Admin joined", Body: payload.Notice})
	case realtime.EventConnected:
		s.log.Info("Connected to chat server")
	case realtime.EventDisconnected:
		s.log.Warn("Disconnected from chat server")
	default:
		s.log.Debug("Ignoring unknown realtime event", "event", evt.Event)
	}
}

func (s *ChatStore) applyNewMessage(payload realtime.NewMessagePayload, arrivedAt time.Time) {
	s.mu.Lock()
	appended := false
	for i := range s.sessions {
		if s.sessions[i].ID == payload.SessionID {
			s.sessions[i].Append(payload.Message, arrivedAt)
			appended = true
			break
		}
	}
	s.mu.Unlock()

	if !appended {
		// Session unknown yet, likely a race with the initial fetch.
		// Dropped silently; the next full fetch picks it up.
		s.log.Debug("Dropping message for unknown session", "session", payload.SessionID)
		return
	}

	actor, ok := s.cred.User()
	if ok && payload.Message.SenderID != actor.ID {
		s.notify(Notice{
			Title: "New message",
			Body:  payload.Message.SenderName + ": " + s.preview(payload.Message.Body),
		})
	}
}

// preview masks and truncates a message body for a transient notice.
func (s *ChatStore) preview(body string) string {
	if s.masker != nil {
		body = s.masker.Censor(body)
	}
	runes := []rune(body)
	if len(runes) <= noticePreviewLimit {
		return body
	}
	return string(runes[:noticePreviewLimit]) + "..."
}

func (s *ChatStore) notify(n Notice) {
	select {
	case s.notices <- n:
	default:
		s.log.Debug("Notice buffer full, dropping", "title", n.Title)
	}
}
