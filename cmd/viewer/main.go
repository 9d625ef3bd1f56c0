package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"mealbridge/cache"
	"mealbridge/domain"
	"mealbridge/domain/chat"
	"mealbridge/internal"
	"mealbridge/search"
)

// The viewer renders the last persisted snapshots without touching the
// network, so it works offline and while the main client is running.
func main() {
	query := flag.String("q", "", "Full-text query over the cached donations")
	flag.Parse()

	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if the main client holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	snapshots := cache.NewSnapshotCache(db, internal.LoggerFromString(config.LogLevel))

	donations, savedAt, err := snapshots.LoadDonations()
	if err != nil {
		log.Fatalf("Failed to load donation snapshot: %v", err)
	}
	sessions, _, err := snapshots.LoadSessions()
	if err != nil {
		log.Fatalf("Failed to load chat snapshot: %v", err)
	}

	if *query != "" {
		donations, err = searchDonations(donations, *query, config.SearchLimit)
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}
		fmt.Printf("%d donation(s) matching %q\n\n", len(donations), *query)
		renderDonations(donations)
		return
	}

	if savedAt.IsZero() {
		fmt.Println("No snapshot yet; run the client once first.")
		return
	}

	fmt.Printf("Snapshot saved at %s\n", savedAt.Format(time.RFC822))
	counts := lo.CountValuesBy(donations, func(d domain.Donation) domain.Status { return d.Status })
	fmt.Printf("%d donation(s): %d pending, %d accepted, %d in transit, %d picked up\n\n",
		len(donations),
		counts[domain.StatusPending],
		counts[domain.StatusAccepted],
		counts[domain.StatusInTransit],
		counts[domain.StatusPickedUp],
	)
	renderDonations(donations)
	fmt.Println()
	renderSessions(sessions)
}

// searchDonations rebuilds the in-memory index from the snapshot and
// keeps only the hits, preserving score order.
func searchDonations(donations []domain.Donation, query string, limit int) ([]domain.Donation, error) {
	index, err := search.NewIndex()
	if err != nil {
		return nil, err
	}
	defer index.Close()

	if err := index.Rebuild(donations); err != nil {
		return nil, err
	}
	ids, err := index.Query(context.Background(), query, limit)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Donation, len(donations))
	for _, d := range donations {
		byID[d.ID] = d
	}
	var hits []domain.Donation
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			hits = append(hits, d)
		}
	}
	return hits, nil
}

func renderDonations(donations []domain.Donation) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Food", "Quantity", "Status", "Donor", "Expires", "Accepted By"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, d := range donations {
		acceptedBy := ""
		if d.AcceptedBy != nil {
			acceptedBy = d.AcceptedBy.Name
		}
		table.Append([]string{
			shortID(d.ID),
			d.FoodName,
			d.Quantity,
			statusCell(d.Status),
			d.DonorName,
			d.ExpiryTime.Format("02 Jan 15:04"),
			acceptedBy,
		})
	}
	table.Render()
}

func renderSessions(sessions []chat.Session) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Donation", "Unread", "Last Message", "Status", "Last Activity"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, s := range sessions {
		table.Append([]string{
			shortID(s.ID),
			s.Donation.FoodName,
			unreadBadges(s),
			lastMessageCell(s),
			string(s.Status),
			s.LastActivity.Format("02 Jan 15:04"),
		})
	}
	table.Render()
}

// unreadBadges shows the per-reader unread counts, one badge per
// participant; the snapshot carries no actor so every reader is shown.
func unreadBadges(s chat.Session) string {
	var badges []string
	for _, p := range s.Participants {
		unread := s.UnreadFor(p.User.ID)
		badge := fmt.Sprintf("%s:%d", p.User.Name, unread)
		if unread > 0 {
			badge = color.New(color.FgYellow).Render(badge)
		}
		badges = append(badges, badge)
	}
	return strings.Join(badges, " ")
}

func lastMessageCell(s chat.Session) string {
	last, ok := s.LastMessage()
	if !ok {
		return ""
	}
	body := last.Body
	if runes := []rune(body); len(runes) > 40 {
		body = string(runes[:40]) + "..."
	}
	return last.SenderName + ": " + body
}

func statusCell(status domain.Status) string {
	switch status {
	case domain.StatusPending:
		return color.New(color.FgYellow).Render(string(status))
	case domain.StatusAccepted, domain.StatusInTransit:
		return color.New(color.FgCyan).Render(string(status))
	case domain.StatusPickedUp:
		return color.New(color.FgGreen).Render(string(status))
	default:
		return color.New(color.FgRed).Render(string(status))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
