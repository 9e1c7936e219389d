package planner

import (
	"context"

	"github.com/tara-app/tara/internal/cache"
	"github.com/tara-app/tara/internal/models"
	"github.com/tara-app/tara/internal/notify"
)

// CreateGoal creates a savings goal.
func (p *Planner) CreateGoal(ctx context.Context, input models.SavingsGoalInput) (*models.SavingsGoal, error) {
	goal, err := cache.Mutate(ctx, p.Savings, "", func(ctx context.Context) (*models.SavingsGoal, error) {
		return p.gateway.CreateSavingsGoal(ctx, input)
	})
	if err != nil {
		return nil, p.fail(err, "Failed to create goal.")
	}
	p.notifier.Show("Goal created! 💰", notify.Success)
	return goal, nil
}

// DeleteGoal removes a goal and all its contributions.
func (p *Planner) DeleteGoal(ctx context.Context, id int64) error {
	_, err := cache.Mutate(ctx, p.Savings, "", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.gateway.DeleteSavingsGoal(ctx, id)
	})
	if err != nil {
		return p.fail(err, "Failed to delete goal.")
	}
	p.notifier.Show("Goal deleted.", notify.Info)
	return nil
}

// AddContribution records a payment toward the goal.
func (p *Planner) AddContribution(ctx context.Context, goalID int64, input models.ContributionInput) error {
	_, err := cache.Mutate(ctx, p.Savings, "", func(ctx context.Context) (*models.SavingsGoal, error) {
		return p.gateway.AddContribution(ctx, goalID, input)
	})
	if err != nil {
		return p.fail(err, "Failed to add contribution.")
	}
	p.notifier.Show("Contribution added! 💸", notify.Success)
	return nil
}

// DeleteContribution removes one contribution from its goal.
func (p *Planner) DeleteContribution(ctx context.Context, goalID, contributionID int64) error {
	_, err := cache.Mutate(ctx, p.Savings, "", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.gateway.DeleteContribution(ctx, goalID, contributionID)
	})
	if err != nil {
		return p.fail(err, "Failed to remove contribution.")
	}
	p.notifier.Show("Contribution removed.", notify.Info)
	return nil
}
