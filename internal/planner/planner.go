// Package planner is the intent layer: one method per user action, each
// running the mutate-invalidate-refetch protocol against the right resource
// family and routing the outcome to the notification channel.
package planner

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tara-app/tara/internal/api"
	"github.com/tara-app/tara/internal/cache"
	"github.com/tara-app/tara/internal/models"
	"github.com/tara-app/tara/internal/notify"
)

// Gateway is the slice of the API client the planner drives.
type Gateway interface {
	Partnership(ctx context.Context) (*models.PartnershipView, error)
	SendInvite(ctx context.Context, inviteCode string) (string, error)
	AcceptInvite(ctx context.Context) (*models.PartnershipView, error)
	LeavePartnership(ctx context.Context) error
	PendingInvites(ctx context.Context) ([]models.Invite, error)

	Events(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, input models.EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, input models.EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	Checklists(ctx context.Context) ([]models.Checklist, error)
	CreateChecklist(ctx context.Context, input models.ChecklistInput) (*models.Checklist, error)
	DeleteChecklist(ctx context.Context, id int64) error
	AddChecklistItem(ctx context.Context, checklistID int64, title string) (*models.Checklist, error)
	ToggleChecklistItem(ctx context.Context, checklistID, itemID int64) (*models.Checklist, error)
	DeleteChecklistItem(ctx context.Context, checklistID, itemID int64) error

	SavingsGoals(ctx context.Context) ([]models.SavingsGoal, error)
	CreateSavingsGoal(ctx context.Context, input models.SavingsGoalInput) (*models.SavingsGoal, error)
	DeleteSavingsGoal(ctx context.Context, id int64) error
	AddContribution(ctx context.Context, goalID int64, input models.ContributionInput) (*models.SavingsGoal, error)
	DeleteContribution(ctx context.Context, goalID, contributionID int64) error
}

// Planner coordinates all resource families for one signed-in user.
//
// The family fields are exported for read access (snapshots, states); all
// writes go through the intent methods.
type Planner struct {
	gateway  Gateway
	notifier *notify.Channel
	logger   *slog.Logger

	Events      *cache.Family[[]models.Event]
	Checklists  *cache.Family[[]models.Checklist]
	Savings     *cache.Family[[]models.SavingsGoal]
	Partnership *cache.Family[*models.PartnershipView]
	Pending     *cache.Family[[]models.Invite]
}

// New wires a planner over the gateway. metrics may be nil.
func New(gateway Gateway, notifier *notify.Channel, logger *slog.Logger, metrics *cache.Metrics) *Planner {
	return &Planner{
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
		Events:      cache.NewFamily("events", gateway.Events, logger, metrics),
		Checklists:  cache.NewFamily("checklists", gateway.Checklists, logger, metrics),
		Savings:     cache.NewFamily("savings", gateway.SavingsGoals, logger, metrics),
		Partnership: cache.NewFamily("partnership", gateway.Partnership, logger, metrics),
		Pending:     cache.NewFamily("pending-invites", gateway.PendingInvites, logger, metrics),
	}
}

// WarmUp fetches every family concurrently so first render has data. Each
// family fails independently; the first error is returned after all
// fetches complete.
func (p *Planner) WarmUp(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { _, err := p.Events.Fetch(ctx); return err })
	g.Go(func() error { _, err := p.Checklists.Fetch(ctx); return err })
	g.Go(func() error { _, err := p.Savings.Fetch(ctx); return err })
	g.Go(func() error { _, err := p.Partnership.Fetch(ctx); return err })
	g.Go(func() error { _, err := p.Pending.Fetch(ctx); return err })
	return g.Wait()
}

// fail routes a mutation failure to the notification channel unless it was
// the synchronous duplicate guard (which produces no user-visible effect,
// matching a swallowed double-click). fallback is used when the server gave
// no message.
func (p *Planner) fail(err error, fallback string) error {
	if errors.Is(err, cache.ErrDuplicateInFlight) {
		return err
	}
	message := fallback
	if apiErr, ok := api.AsError(err); ok && (apiErr.Message != "" || len(apiErr.Fields) > 0) {
		message = apiErr.Error()
	}
	p.notifier.Show(message, notify.Error)
	return err
}
