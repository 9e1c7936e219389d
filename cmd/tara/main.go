// Command tara is a terminal harness for the Tara client library: it signs
// in with credentials from the environment, warms up every resource family,
// and prints a dashboard-style summary.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tara-app/tara/internal/api"
	"github.com/tara-app/tara/internal/cache"
	"github.com/tara-app/tara/internal/calculator"
	"github.com/tara-app/tara/internal/config"
	"github.com/tara-app/tara/internal/notify"
	"github.com/tara-app/tara/internal/planner"
	"github.com/tara-app/tara/internal/session"
	"github.com/tara-app/tara/internal/storage/sqlite"
	"github.com/tara-app/tara/pkg/logging"
)

func main() {
	logger := logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := sqlite.New(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("failed to open session store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	tokens := session.NewTokenHolder()
	client := api.NewClient(cfg.BaseURL, tokens, logger)
	client.SetHTTPClient(httpClient(cfg.HTTPTimeout))

	sess := session.New(client, tokens, store, logger)
	if err := sess.Rehydrate(ctx); err != nil {
		logger.Error("failed to rehydrate session", "error", err)
		os.Exit(1)
	}

	if !sess.IsAuthenticated() {
		if cfg.Email == "" || cfg.Password == "" {
			logger.Error("no session and no credentials; set TARA_EMAIL and TARA_PASSWORD")
			os.Exit(1)
		}
		user, err := sess.Login(ctx, cfg.Email, cfg.Password)
		if err != nil {
			logger.Error("login failed", "error", api.UserMessage(err))
			os.Exit(1)
		}
		logger.Info("signed in", "user", user.DisplayName)
	}

	notifier := notify.New()
	metrics := cache.NewMetrics(prometheus.DefaultRegisterer)
	p := planner.New(client, notifier, logger, metrics)

	if err := p.WarmUp(ctx); err != nil {
		logger.Warn("some resources failed to load", "error", err)
	}

	printDashboard(p, sess)
}

func httpClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func printDashboard(p *planner.Planner, sess *session.Store) {
	user := sess.User()
	fmt.Printf("Hello, %s!\n\n", user.DisplayName)

	if view, _, ok := p.Partnership.Snapshot(); ok && view != nil && view.Partner != nil {
		fmt.Printf("Partner: %s (connected %s)\n",
			view.Partner.DisplayName,
			view.Partnership.ConnectedAt.Format("2006-01-02"))
	} else if invites, _, ok := p.Pending.Snapshot(); ok && len(invites) > 0 {
		fmt.Printf("Pending invite from %s — accept it to connect.\n", invites[0].UserA.DisplayName)
	} else {
		fmt.Printf("No partner yet. Share your invite code: %s\n", user.InviteCode)
	}

	if events, _, ok := p.Events.Snapshot(); ok {
		part := calculator.PartitionByDate(events, time.Now())
		fmt.Printf("\nEvents: %d upcoming, %d past\n", len(part.Upcoming), len(part.Past))
		for _, e := range part.Upcoming {
			fmt.Printf("  %s %s — %s\n", e.Emoji, e.Title, e.Date)
		}
	}

	if checklists, _, ok := p.Checklists.Snapshot(); ok {
		fmt.Printf("\nChecklists:\n")
		for _, c := range checklists {
			fmt.Printf("  %s %s — %d%%\n", c.Emoji, c.Title, calculator.ChecklistProgress(c))
		}
	}

	if goals, _, ok := p.Savings.Snapshot(); ok {
		summary := calculator.AggregateSavings(goals)
		fmt.Printf("\nSavings: %.2f of %.2f saved, %d goal(s) achieved\n",
			summary.TotalSaved, summary.TotalTarget, summary.AchievedCount)
		for _, g := range goals {
			fmt.Printf("  %s %s — %d%% (%.2f to go)\n",
				g.Emoji, g.Title, calculator.SavingsProgress(g), calculator.SavingsRemaining(g))
		}
	}
}
