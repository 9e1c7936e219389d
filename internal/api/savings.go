package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tara-app/tara/internal/models"
)

// SavingsGoals lists all savings goals with their contributions.
func (c *Client) SavingsGoals(ctx context.Context) ([]models.SavingsGoal, error) {
	var out struct {
		Goals []models.SavingsGoal `json:"goals"`
	}
	if err := c.do(ctx, http.MethodGet, "/savings", nil, &out); err != nil {
		return nil, err
	}
	return out.Goals, nil
}

// CreateSavingsGoal creates a goal with no contributions.
func (c *Client) CreateSavingsGoal(ctx context.Context, input models.SavingsGoalInput) (*models.SavingsGoal, error) {
	var out struct {
		Goal models.SavingsGoal `json:"goal"`
	}
	if err := c.do(ctx, http.MethodPost, "/savings", input, &out); err != nil {
		return nil, err
	}
	return &out.Goal, nil
}

// DeleteSavingsGoal removes a goal and all its contributions.
func (c *Client) DeleteSavingsGoal(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/savings/%d", id), nil, nil)
}

// AddContribution records a payment toward the goal and returns the updated
// goal.
func (c *Client) AddContribution(ctx context.Context, goalID int64, input models.ContributionInput) (*models.SavingsGoal, error) {
	var out struct {
		Goal models.SavingsGoal `json:"goal"`
	}
	path := fmt.Sprintf("/savings/%d/contributions", goalID)
	if err := c.do(ctx, http.MethodPost, path, input, &out); err != nil {
		return nil, err
	}
	return &out.Goal, nil
}

// DeleteContribution removes one contribution from its goal.
func (c *Client) DeleteContribution(ctx context.Context, goalID, contributionID int64) error {
	path := fmt.Sprintf("/savings/%d/contributions/%d", goalID, contributionID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
