// Package storage persists the session across process restarts.
//
// Only the restricted projection of the session is ever written: the bearer
// token and the user profile. Transient state (in-flight operations, cached
// snapshots, notifications) is never persisted.
package storage

import (
	"context"

	"github.com/tara-app/tara/internal/models"
)

// SessionRecord is the durable projection of an authenticated session.
type SessionRecord struct {
	Token string
	User  models.UserProfile
}

// Store defines the interface for session persistence. This abstraction
// allows swapping backends (SQLite on disk, in-memory for tests) without
// changing the session layer.
type Store interface {
	// Save replaces the stored session record.
	Save(ctx context.Context, record SessionRecord) error

	// Load returns the stored record, or nil when none exists.
	Load(ctx context.Context) (*SessionRecord, error)

	// Clear removes any stored record. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
