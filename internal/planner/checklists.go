package planner

import (
	"context"

	"github.com/tara-app/tara/internal/cache"
	"github.com/tara-app/tara/internal/models"
	"github.com/tara-app/tara/internal/notify"
)

// CreateChecklist creates an empty checklist.
func (p *Planner) CreateChecklist(ctx context.Context, input models.ChecklistInput) (*models.Checklist, error) {
	checklist, err := cache.Mutate(ctx, p.Checklists, "", func(ctx context.Context) (*models.Checklist, error) {
		return p.gateway.CreateChecklist(ctx, input)
	})
	if err != nil {
		return nil, p.fail(err, "Failed to create checklist.")
	}
	p.notifier.Show("Checklist created! ✅", notify.Success)
	return checklist, nil
}

// DeleteChecklist removes a checklist and its items.
func (p *Planner) DeleteChecklist(ctx context.Context, id int64) error {
	_, err := cache.Mutate(ctx, p.Checklists, "", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.gateway.DeleteChecklist(ctx, id)
	})
	if err != nil {
		return p.fail(err, "Failed to delete checklist.")
	}
	p.notifier.Show("Checklist deleted.", notify.Info)
	return nil
}

// AddItem appends an item to the checklist.
func (p *Planner) AddItem(ctx context.Context, checklistID int64, title string) error {
	_, err := cache.Mutate(ctx, p.Checklists, "", func(ctx context.Context) (*models.Checklist, error) {
		return p.gateway.AddChecklistItem(ctx, checklistID, title)
	})
	if err != nil {
		return p.fail(err, "Failed to add item.")
	}
	p.notifier.Show("Item added!", notify.Success)
	return nil
}

// ToggleItem flips one item's completion state. The fresh snapshot, not a
// local patch, carries the new state back to the UI.
func (p *Planner) ToggleItem(ctx context.Context, checklistID, itemID int64) error {
	_, err := cache.Mutate(ctx, p.Checklists, "", func(ctx context.Context) (*models.Checklist, error) {
		return p.gateway.ToggleChecklistItem(ctx, checklistID, itemID)
	})
	if err != nil {
		return p.fail(err, "Failed to update item.")
	}
	return nil
}

// DeleteItem removes one item from its checklist.
func (p *Planner) DeleteItem(ctx context.Context, checklistID, itemID int64) error {
	_, err := cache.Mutate(ctx, p.Checklists, "", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.gateway.DeleteChecklistItem(ctx, checklistID, itemID)
	})
	if err != nil {
		return p.fail(err, "Failed to delete item.")
	}
	p.notifier.Show("Item removed.", notify.Info)
	return nil
}
