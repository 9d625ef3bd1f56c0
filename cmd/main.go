package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"mealbridge/api"
	"mealbridge/auth"
	"mealbridge/cache"
	"mealbridge/internal"
	"mealbridge/moderation"
	"mealbridge/push"
	"mealbridge/realtime"
	"mealbridge/search"
	"mealbridge/store"
	"mealbridge/workers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the client lifecycle, and centralizes error reporting.
// Keeping everything behind a single error return guarantees the defers
// (database close, socket teardown) execute before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.LoggerFromString(config.LogLevel)

	// 2. Local snapshot database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	snapshots := cache.NewSnapshotCache(db, log)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Credentials & REST client
	cred := auth.NewCredential()
	client := api.NewClient(config.APIBaseURL, cred, config.HTTPTimeout, log)

	session, err := client.Login(ctx, config.Email, config.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	cred.SetSession(session.User, session.Token)
	if cred.Expired(time.Now()) {
		return fmt.Errorf("received an already expired session token")
	}
	log.Info("Logged in", "user", session.User.Name, "role", session.User.Role)

	// 5. Moderation masker for message previews
	var masker store.Masker
	if words := internal.SplitWords(config.CensoredWords); len(words) > 0 {
		replacement, err := internal.CharacterRune(config.CharReplacement)
		if err != nil {
			return err
		}
		m, err := moderation.NewMasker(words, replacement)
		if err != nil {
			return fmt.Errorf("moderation setup failed: %w", err)
		}
		masker = m
	}

	// 6. Realtime channel & stores
	channel := realtime.NewWebsocketChannel(config.SocketURL, cred, config.EventBufferSize, log)
	defer func() { _ = channel.Close() }()

	donations := store.NewDonationStore(client, cred, log)
	chats := store.NewChatStore(client, cred, channel, masker, config.NoticeBufferSize, log)
	notifications := store.NewNotificationStore(client, cred, log)

	// Cached snapshots bridge the gap until the first fetch lands.
	if cached, at, err := snapshots.LoadDonations(); err == nil && !at.IsZero() {
		donations.Seed(cached, at)
	}

	index, err := search.NewIndex()
	if err != nil {
		return fmt.Errorf("search index setup failed: %w", err)
	}
	defer func() { _ = index.Close() }()

	// 7. Initial fetches, best effort: a failure leaves the cached view up.
	if err := donations.Reload(ctx); err != nil {
		log.Warn("Initial donation fetch failed", "error", err)
	}
	if err := chats.FetchSessions(ctx); err != nil {
		log.Warn("Initial chat fetch failed", "error", err)
	}
	if err := notifications.Refresh(ctx); err != nil {
		log.Warn("Initial notification fetch failed", "error", err)
	}
	if err := index.Rebuild(donations.All()); err != nil {
		log.Warn("Search index rebuild failed", "error", err)
	}

	var tokens push.TokenSource = push.Disabled{}
	if config.PushToken != "" {
		tokens = push.Static(config.PushToken)
	}
	notifications.RegisterPush(ctx, tokens)

	// 8. Supervised background loops
	writer := workers.NewSnapshotWriter(snapshots, donations, chats, config.SnapshotInterval, log)
	sup := workers.NewSupervisor(log)
	sup.Add(
		channel,
		workers.NewChatPump(channel, chats, log),
		workers.NewNotificationPoller(notifications, config.PollInterval, log),
		workers.NewTelemetryWorker(config.TelemetryInterval, log),
		writer,
	)

	done := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(done)
	}()

	// Transient notices land in the log when no UI is attached.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case notice := <-chats.Notices():
				log.Info("Notice", "title", notice.Title, "body", notice.Body)
			}
		}
	}()

	// 9. Wait for Stop
	<-ctx.Done()
	log.Info("Shutting down gracefully...")

	// 10. Persist snapshots one last time, then drain the workers.
	writer.Persist()

	sup.Stop()
	<-done
	log.Info("Program stopped cleanly")

	return nil
}
