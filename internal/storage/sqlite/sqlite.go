// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface. It is the desktop analog of the browser's
// localStorage slot: one durable record holding the session projection.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/tara-app/tara/internal/models"
	"github.com/tara-app/tara/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save upserts the single session row.
func (s *SQLiteStore) Save(ctx context.Context, record storage.SessionRecord) error {
	userJSON, err := json.Marshal(record.User)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session (id, token, user_json, saved_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET token = excluded.token,
		 user_json = excluded.user_json, saved_at = excluded.saved_at`,
		record.Token, string(userJSON), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the stored session record, or nil when none exists.
func (s *SQLiteStore) Load(ctx context.Context) (*storage.SessionRecord, error) {
	var token, userJSON string
	err := s.db.QueryRowContext(ctx,
		"SELECT token, user_json FROM session WHERE id = 1",
	).Scan(&token, &userJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user models.UserProfile
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to decode stored user profile: %w", err)
	}

	return &storage.SessionRecord{Token: token, User: user}, nil
}

// Clear deletes the session row if present.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
