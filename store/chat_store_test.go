package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mealbridge/auth"
	"mealbridge/domain"
	"mealbridge/domain/chat"
	"mealbridge/errors"
	"mealbridge/mocks"
	"mealbridge/moderation"
	"mealbridge/realtime"
)

func sessionFixture() chat.Session {
	base := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)
	return chat.Session{
		ID:       "c1",
		Donation: chat.DonationRef{ID: "d1", FoodName: "Vegetable Soup", Status: domain.StatusAccepted},
		Participants: []chat.Participant{
			{User: domain.ActorRef{ID: "donor-1", Name: "Dana"}, Role: domain.RoleDonor, JoinedAt: base},
			{User: domain.ActorRef{ID: "ngo-1", Name: "Food Rescue"}, Role: domain.RoleNGO, JoinedAt: base},
		},
		Messages: []chat.Message{
			{ID: "m1", SenderID: "ngo-1", SenderName: "Food Rescue", Body: "We can pick up at 5pm", SentAt: base.Add(time.Minute)},
		},
		Status:       chat.SessionActive,
		LastActivity: base.Add(time.Minute),
	}
}

func newMessageEvent(t *testing.T, sessionID string, m chat.Message, at time.Time) realtime.Inbound {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"chatId": sessionID,
		"message": map[string]any{
			"id":         m.ID,
			"senderId":   m.SenderID,
			"senderName": m.SenderName,
			"senderRole": m.SenderRole,
			"message":    m.Body,
			"timestamp":  m.SentAt,
		},
	})
	require.NoError(t, err)
	return realtime.Inbound{Event: realtime.EventNewMessage, Payload: payload, At: at}
}

func newChatStore(t *testing.T, ctrl *gomock.Controller, actor domain.User) (*ChatStore, *mocks.MockIChatAPI, *mocks.MockChannel) {
	t.Helper()
	mockAPI := mocks.NewMockIChatAPI(ctrl)
	mockChannel := mocks.NewMockChannel(ctrl)
	masker, err := moderation.NewMasker([]string{"scam"}, '*')
	require.NoError(t, err)

	cred := auth.NewCredential()
	if actor.ID != "" {
		cred.SetSession(actor, "token-"+actor.ID)
	}
	return NewChatStore(mockAPI, cred, mockChannel, masker, 8, slog.Default()), mockAPI, mockChannel
}

func TestChatStore_FetchSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	store, mockAPI, _ := newChatStore(t, ctrl, storeDonor)

	mockAPI.EXPECT().MySessions(gomock.Any()).Return([]chat.Session{sessionFixture()}, nil)

	req.NoError(store.FetchSessions(context.Background()))
	req.Len(store.Sessions(), 1)
	req.Equal("c1", store.Sessions()[0].ID)
}

func TestChatStore_CreateOrJoinSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should reject when not logged in", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, _ := newChatStore(t, ctrl, domain.User{})

		mockAPI.EXPECT().CreateOrJoinSession(gomock.Any(), gomock.Any()).Times(0)

		_, err := store.CreateOrJoinSession(context.Background(), "d1")
		req.ErrorIs(err, errors.ErrNotAuthenticated)
	})

	t.Run("should prepend a new session and open the realtime room", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, mockChannel := newChatStore(t, ctrl, storeNGO)

		mockAPI.EXPECT().CreateOrJoinSession(gomock.Any(), "d1").Return(sessionFixture(), nil)
		mockChannel.EXPECT().JoinChat("c1").Return(nil)

		session, err := store.CreateOrJoinSession(context.Background(), "d1")
		req.NoError(err)
		req.Equal("c1", session.ID)
		req.Len(store.Sessions(), 1)
	})

	t.Run("should replace an already known session instead of duplicating it", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, mockChannel := newChatStore(t, ctrl, storeNGO)

		first := sessionFixture()
		second := sessionFixture()
		second.Messages = append(second.Messages, chat.Message{ID: "m2", SenderID: "donor-1", Body: "See you then"})

		gomock.InOrder(
			mockAPI.EXPECT().CreateOrJoinSession(gomock.Any(), "d1").Return(first, nil),
			mockAPI.EXPECT().CreateOrJoinSession(gomock.Any(), "d1").Return(second, nil),
		)
		mockChannel.EXPECT().JoinChat("c1").Return(nil).Times(2)

		_, err := store.CreateOrJoinSession(context.Background(), "d1")
		req.NoError(err)
		_, err = store.CreateOrJoinSession(context.Background(), "d1")
		req.NoError(err)

		req.Len(store.Sessions(), 1)
		req.Len(store.Sessions()[0].Messages, 2)
	})

	t.Run("should still succeed when the room join fails", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, mockChannel := newChatStore(t, ctrl, storeNGO)

		mockAPI.EXPECT().CreateOrJoinSession(gomock.Any(), "d1").Return(sessionFixture(), nil)
		mockChannel.EXPECT().JoinChat("c1").Return(errors.ErrNotConnected)

		_, err := store.CreateOrJoinSession(context.Background(), "d1")
		req.NoError(err)
	})
}

func TestChatStore_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should reject whitespace-only bodies without touching the socket", func(t *testing.T) {
		req := require.New(t)
		store, _, mockChannel := newChatStore(t, ctrl, storeDonor)

		mockChannel.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(store.SendMessage("c1", "   \n"), errors.ErrEmptyMessage)
	})

	t.Run("should fail fast while disconnected", func(t *testing.T) {
		req := require.New(t)
		store, _, mockChannel := newChatStore(t, ctrl, storeDonor)

		mockChannel.EXPECT().Connected().Return(false)
		mockChannel.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(store.SendMessage("c1", "hello"), errors.ErrNotConnected)
	})

	t.Run("should emit the trimmed body and nothing else", func(t *testing.T) {
		req := require.New(t)
		store, _, mockChannel := newChatStore(t, ctrl, storeDonor)

		mockChannel.EXPECT().Connected().Return(true)
		mockChannel.EXPECT().SendMessage("c1", "hello").Return(nil)

		req.NoError(store.SendMessage("c1", "  hello  "))
		// No local append: the message shows up on the server echo only.
		req.Empty(store.Sessions())
	})
}

func TestChatStore_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seed := func(t *testing.T, store *ChatStore, mockAPI *mocks.MockIChatAPI) {
		t.Helper()
		mockAPI.EXPECT().MySessions(gomock.Any()).Return([]chat.Session{sessionFixture()}, nil)
		require.NoError(t, store.FetchSessions(context.Background()))
	}

	t.Run("should mirror receipts locally after the backend call", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, _ := newChatStore(t, ctrl, storeDonor)
		seed(t, store, mockAPI)

		req.Equal(1, store.UnreadFor("c1"))

		mockAPI.EXPECT().MarkSessionRead(gomock.Any(), "c1").Return(nil)

		req.NoError(store.MarkRead(context.Background(), "c1"))
		req.Zero(store.UnreadFor("c1"))
	})

	t.Run("should not flip local receipts when the backend fails", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, _ := newChatStore(t, ctrl, storeDonor)
		seed(t, store, mockAPI)

		mockAPI.EXPECT().MarkSessionRead(gomock.Any(), "c1").Return(errors.ErrUnknownSession)

		req.Error(store.MarkRead(context.Background(), "c1"))
		req.Equal(1, store.UnreadFor("c1"))
	})

	t.Run("should report an unknown session", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, _ := newChatStore(t, ctrl, storeDonor)

		mockAPI.EXPECT().MarkSessionRead(gomock.Any(), "ghost").Return(nil)

		req.ErrorIs(store.MarkRead(context.Background(), "ghost"), errors.ErrUnknownSession)
	})
}

func TestChatStore_HandleInbound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seed := func(t *testing.T, store *ChatStore, mockAPI *mocks.MockIChatAPI) {
		t.Helper()
		mockAPI.EXPECT().MySessions(gomock.Any()).Return([]chat.Session{sessionFixture()}, nil)
		require.NoError(t, store.FetchSessions(context.Background()))
	}

	t.Run("should append an incoming message and raise a notice", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, _ := newChatStore(t, ctrl, storeDonor)
		seed(t, store, mockAPI)

		incoming := chat.Message{ID: "m2", SenderID: "ngo-1", SenderName: "Food Rescue",
			SenderRole: domain.RoleNGO, Body: "On our way", SentAt: time.Now()}
		store.HandleInbound(newMessageEvent(t, "c1", incoming, time.Now()))

		req.Len(store.Sessions()[0].Messages, 2)
		req.Equal(2, store.UnreadFor("c1"))

		select {
		case notice := <-store.Notices():
			req.Equal("New message", notice.Title)
			req.Equal("Food Rescue: On our way", notice.Body)
		default:
			t.Fatal("expected a notice")
		}
	})

	t.Run("should not raise a notice for the actor's own echoed message", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, _ := newChatStore(t, ctrl, storeDonor)
		seed(t, store, mockAPI)

		own := chat.Message{ID: "m2", SenderID: storeDonor.ID, SenderName: "Dana", Body: "thanks!"}
		store.HandleInbound(newMessageEvent(t, "c1", own, time.Now()))

		req.Len(store.Sessions()[0].Messages, 2)
		select {
		case <-store.Notices():
			t.Fatal("own message must not notify")
		default:
		}
	})

	t.Run("should mask flagged words and truncate long previews", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, _ := newChatStore(t, ctrl, storeDonor)
		seed(t, store, mockAPI)

		long := "this scam offer is " + strings.Repeat("x", 60) // padded way past the preview limit
		incoming := chat.Message{ID: "m2", SenderID: "ngo-1", SenderName: "Food Rescue", Body: long}
		store.HandleInbound(newMessageEvent(t, "c1", incoming, time.Now()))

		notice := <-store.Notices()
		req.Contains(notice.Body, "****")
		req.NotContains(notice.Body, "scam")
		req.Contains(notice.Body, "...")
	})

	t.Run("should drop a message for a session not fetched yet", func(t *testing.T) {
		req := require.New(t)
		store, mockAPI, _ := newChatStore(t, ctrl, storeDonor)
		seed(t, store, mockAPI)

		incoming := chat.Message{ID: "mx", SenderID: "ngo-1", SenderName: "Food Rescue", Body: "hello?"}
		store.HandleInbound(newMessageEvent(t, "ghost", incoming, time.Now()))

		req.Len(store.Sessions(), 1)
		req.Len(store.Sessions()[0].Messages, 1)
		select {
		case <-store.Notices():
			t.Fatal("unknown session must not notify")
		default:
		}
	})

	t.Run("should surface admin-joined as a notice", func(t *testing.T) {
		req := require.New(t)
		store, _, _ := newChatStore(t, ctrl, storeDonor)

		payload, err := json.Marshal(realtime.AdminJoinedPayload{SessionID: "c1", Notice: "An admin joined the conversation"})
		req.NoError(err)
		store.HandleInbound(realtime.Inbound{Event: realtime.EventAdminJoined, Payload: payload, At: time.Now()})

		notice := <-store.Notices()
		req.Equal("Admin joined", notice.Title)
	})

	t.Run("should ignore unknown events and malformed payloads", func(t *testing.T) {
		store, _, _ := newChatStore(t, ctrl, storeDonor)

		store.HandleInbound(realtime.Inbound{Event: "presence-ping", At: time.Now()})
		store.HandleInbound(realtime.Inbound{Event: realtime.EventNewMessage, Payload: []byte("{"), At: time.Now()})
	})
}

func TestChatStore_ActiveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	store, mockAPI, _ := newChatStore(t, ctrl, storeDonor)

	mockAPI.EXPECT().MySessions(gomock.Any()).Return([]chat.Session{sessionFixture()}, nil)
	req.NoError(store.FetchSessions(context.Background()))

	_, ok := store.Active()
	req.False(ok)

	store.SetActive("c1")
	active, ok := store.Active()
	req.True(ok)
	req.Equal("c1", active.ID)

	store.ClearActive()
	_, ok = store.Active()
	req.False(ok)
}
