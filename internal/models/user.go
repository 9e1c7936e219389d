package models

import "time"

// UserProfile represents a registered user as returned by the API.
//
// The profile is immutable from the client's perspective except through an
// explicit profile update; the session store replaces it wholesale.
type UserProfile struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// DisplayName is the name shown to the partner.
	DisplayName string `json:"display_name"`

	// Email is the login identifier (unique).
	Email string `json:"email"`

	// InviteCode is the short code a partner enters to send an invite.
	InviteCode string `json:"invite_code"`
}

// Partnership links two users. A user has at most one active partnership.
type Partnership struct {
	ID          int64     `json:"id"`
	ConnectedAt time.Time `json:"connected_at"`
}

// PartnershipView is the GET /partnerships response: both fields are nil
// for an unpartnered user.
type PartnershipView struct {
	Partnership *Partnership `json:"partnership"`
	Partner     *UserProfile `json:"partner"`
}

// Invite is a pending partnership invite, visible only to the invitee.
// UserA is the sender; accepting consumes the invite.
type Invite struct {
	ID    int64       `json:"id"`
	UserA UserProfile `json:"user_a"`
}
