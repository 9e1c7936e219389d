package planner

import (
	"context"

	"github.com/tara-app/tara/internal/cache"
	"github.com/tara-app/tara/internal/notify"
)

// sendInviteKey guards the invite form: the endpoint is not idempotent, so
// a resubmit while the first send is pending must never reach the network.
const sendInviteKey = "send-invite"

// SendInvite invites the partner owning inviteCode. Returns the server's
// confirmation message.
func (p *Planner) SendInvite(ctx context.Context, inviteCode string) (string, error) {
	message, err := cache.Mutate(ctx, p.Partnership, sendInviteKey, func(ctx context.Context) (string, error) {
		return p.gateway.SendInvite(ctx, inviteCode)
	})
	if err != nil {
		return "", p.fail(err, "Something went wrong.")
	}
	p.notifier.Show("Invite sent! 💌", notify.Success)
	return message, nil
}

// AcceptInvite accepts the pending invite, refreshing both the partnership
// and the pending-invites families (the invite is consumed server-side).
func (p *Planner) AcceptInvite(ctx context.Context) error {
	_, err := cache.Mutate(ctx, p.Partnership, "accept-invite", func(ctx context.Context) (struct{}, error) {
		_, err := p.gateway.AcceptInvite(ctx)
		return struct{}{}, err
	})
	if err != nil {
		return p.fail(err, "Something went wrong.")
	}
	if _, err := p.Pending.Fetch(ctx); err != nil {
		p.logger.Warn("pending invites refetch failed after accept", "error", err)
	}
	p.notifier.Show("You are now connected! 💑", notify.Success)
	return nil
}

// LeavePartnership dissolves the partnership.
func (p *Planner) LeavePartnership(ctx context.Context) error {
	_, err := cache.Mutate(ctx, p.Partnership, "leave", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.gateway.LeavePartnership(ctx)
	})
	if err != nil {
		return p.fail(err, "Something went wrong.")
	}
	p.notifier.Show("Partnership dissolved.", notify.Info)
	return nil
}
