package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tara-app/tara/internal/models"
)

// Events lists all events shared by the couple.
func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	var out struct {
		Events []models.Event `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, "/events", nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// CreateEvent creates an event and returns the server's copy.
func (c *Client) CreateEvent(ctx context.Context, input models.EventInput) (*models.Event, error) {
	var out struct {
		Event models.Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodPost, "/events", input, &out); err != nil {
		return nil, err
	}
	return &out.Event, nil
}

// UpdateEvent replaces the event's fields with input.
func (c *Client) UpdateEvent(ctx context.Context, id int64, input models.EventInput) (*models.Event, error) {
	var out struct {
		Event models.Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out.Event, nil
}

// DeleteEvent removes the event.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil)
}
