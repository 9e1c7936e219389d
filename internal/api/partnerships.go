package api

import (
	"context"
	"net/http"

	"github.com/tara-app/tara/internal/models"
)

// Partnership returns the caller's partnership state. Both fields of the
// view are nil for an unpartnered user.
func (c *Client) Partnership(ctx context.Context) (*models.PartnershipView, error) {
	var out models.PartnershipView
	if err := c.do(ctx, http.MethodGet, "/partnerships", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendInvite invites the user owning inviteCode and returns the server's
// confirmation message.
func (c *Client) SendInvite(ctx context.Context, inviteCode string) (string, error) {
	body := struct {
		InviteCode string `json:"invite_code"`
	}{InviteCode: inviteCode}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/partnerships/invite", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// AcceptInvite accepts the caller's pending invite, consuming it and
// creating the partnership.
func (c *Client) AcceptInvite(ctx context.Context) (*models.PartnershipView, error) {
	var out models.PartnershipView
	if err := c.do(ctx, http.MethodPost, "/partnerships/accept", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LeavePartnership dissolves the caller's partnership.
func (c *Client) LeavePartnership(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/partnerships/leave", nil, nil)
}

// PendingInvites lists invites awaiting the caller's acceptance.
func (c *Client) PendingInvites(ctx context.Context) ([]models.Invite, error) {
	var out struct {
		Invites []models.Invite `json:"invites"`
	}
	if err := c.do(ctx, http.MethodGet, "/partnerships/pending", nil, &out); err != nil {
		return nil, err
	}
	return out.Invites, nil
}
