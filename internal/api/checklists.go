package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tara-app/tara/internal/models"
)

// Checklists lists all checklists with their items.
func (c *Client) Checklists(ctx context.Context) ([]models.Checklist, error) {
	var out struct {
		Checklists []models.Checklist `json:"checklists"`
	}
	if err := c.do(ctx, http.MethodGet, "/checklists", nil, &out); err != nil {
		return nil, err
	}
	return out.Checklists, nil
}

// CreateChecklist creates an empty checklist.
func (c *Client) CreateChecklist(ctx context.Context, input models.ChecklistInput) (*models.Checklist, error) {
	var out struct {
		Checklist models.Checklist `json:"checklist"`
	}
	if err := c.do(ctx, http.MethodPost, "/checklists", input, &out); err != nil {
		return nil, err
	}
	return &out.Checklist, nil
}

// DeleteChecklist removes a checklist and all its items.
func (c *Client) DeleteChecklist(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/checklists/%d", id), nil, nil)
}

// AddChecklistItem appends an incomplete item and returns the updated
// checklist.
func (c *Client) AddChecklistItem(ctx context.Context, checklistID int64, title string) (*models.Checklist, error) {
	body := struct {
		Title string `json:"title"`
	}{Title: title}

	var out struct {
		Checklist models.Checklist `json:"checklist"`
	}
	path := fmt.Sprintf("/checklists/%d/items", checklistID)
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Checklist, nil
}

// ToggleChecklistItem flips the item's completion state server-side and
// returns the updated checklist.
func (c *Client) ToggleChecklistItem(ctx context.Context, checklistID, itemID int64) (*models.Checklist, error) {
	var out struct {
		Checklist models.Checklist `json:"checklist"`
	}
	path := fmt.Sprintf("/checklists/%d/items/%d/toggle", checklistID, itemID)
	if err := c.do(ctx, http.MethodPatch, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Checklist, nil
}

// DeleteChecklistItem removes one item from its checklist.
func (c *Client) DeleteChecklistItem(ctx context.Context, checklistID, itemID int64) error {
	path := fmt.Sprintf("/checklists/%d/items/%d", checklistID, itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
