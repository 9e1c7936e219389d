package planner

import (
	"context"

	"github.com/tara-app/tara/internal/cache"
	"github.com/tara-app/tara/internal/models"
	"github.com/tara-app/tara/internal/notify"
)

// CreateEvent adds an event to the shared calendar.
func (p *Planner) CreateEvent(ctx context.Context, input models.EventInput) (*models.Event, error) {
	event, err := cache.Mutate(ctx, p.Events, "", func(ctx context.Context) (*models.Event, error) {
		return p.gateway.CreateEvent(ctx, input)
	})
	if err != nil {
		return nil, p.fail(err, "Failed to create event.")
	}
	p.notifier.Show("Event added! 📅", notify.Success)
	return event, nil
}

// UpdateEvent replaces the event's fields.
func (p *Planner) UpdateEvent(ctx context.Context, id int64, input models.EventInput) (*models.Event, error) {
	event, err := cache.Mutate(ctx, p.Events, "", func(ctx context.Context) (*models.Event, error) {
		return p.gateway.UpdateEvent(ctx, id, input)
	})
	if err != nil {
		return nil, p.fail(err, "Failed to update event.")
	}
	p.notifier.Show("Event updated.", notify.Success)
	return event, nil
}

// DeleteEvent removes the event.
func (p *Planner) DeleteEvent(ctx context.Context, id int64) error {
	_, err := cache.Mutate(ctx, p.Events, "", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.gateway.DeleteEvent(ctx, id)
	})
	if err != nil {
		return p.fail(err, "Failed to delete event.")
	}
	p.notifier.Show("Event deleted.", notify.Info)
	return nil
}
