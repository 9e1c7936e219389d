// Package session owns the authenticated session: the current user profile
// and the bearer credential, kept in lockstep.
//
// The invariant maintained throughout is that user and credential are both
// present or both absent. Login and register set them atomically; logout
// clears them unconditionally, even when the server-side logout call fails.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tara-app/tara/internal/api"
	"github.com/tara-app/tara/internal/models"
	"github.com/tara-app/tara/internal/storage"
)

// Gateway is the slice of the API client the session store needs.
type Gateway interface {
	Register(ctx context.Context, input api.RegisterInput) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Store is the process-wide session state. Exactly one instance exists per
// application; construct it, call Rehydrate, then hand it to the layers
// above.
type Store struct {
	gateway Gateway
	tokens  *TokenHolder
	persist storage.Store
	logger  *slog.Logger
	now     func() time.Time

	mu   sync.RWMutex
	user *models.UserProfile
}

// New creates a session store. tokens must be the same holder the API
// client reads from, so that establishing a session immediately affects
// outbound requests.
func New(gateway Gateway, tokens *TokenHolder, persist storage.Store, logger *slog.Logger) *Store {
	return &Store{
		gateway: gateway,
		tokens:  tokens,
		persist: persist,
		logger:  logger,
		now:     time.Now,
	}
}

// Rehydrate restores a persisted session, if any, before first use. A
// stored credential that is a JWT past its expiry is discarded rather than
// restored, since every request carrying it would be rejected.
func (s *Store) Rehydrate(ctx context.Context) error {
	record, err := s.persist.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load persisted session: %w", err)
	}
	if record == nil || record.Token == "" {
		return nil
	}

	if tokenExpired(record.Token, s.now()) {
		s.logger.Info("discarding expired persisted credential", "user_id", record.User.ID)
		if err := s.persist.Clear(ctx); err != nil {
			s.logger.Warn("failed to clear expired credential", "error", err)
		}
		return nil
	}

	user := record.User
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.tokens.set(record.Token)

	s.logger.Info("session rehydrated", "user_id", user.ID, "email", user.Email)
	return nil
}

// Register creates an account and establishes the session. On failure the
// error is returned untouched and no session state changes.
func (s *Store) Register(ctx context.Context, input api.RegisterInput) (*models.UserProfile, error) {
	resp, err := s.gateway.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, resp)
}

// Login authenticates and establishes the session. On failure the error is
// returned untouched and no session state changes.
func (s *Store) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	resp, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, resp)
}

// establish sets user and credential together and persists the projection.
func (s *Store) establish(ctx context.Context, resp *api.AuthResponse) (*models.UserProfile, error) {
	user := resp.User
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.tokens.set(resp.Token)

	record := storage.SessionRecord{Token: resp.Token, User: user}
	if err := s.persist.Save(ctx, record); err != nil {
		// The live session stands; only durability across restarts is lost.
		s.logger.Warn("failed to persist session", "user_id", user.ID, "error", err)
	}

	s.logger.Info("session established", "user_id", user.ID, "email", user.Email)
	return &user, nil
}

// Logout revokes the token server-side on a best-effort basis, then clears
// the session unconditionally. The local session must always be clearable
// regardless of server reachability, so gateway errors are swallowed.
func (s *Store) Logout(ctx context.Context) {
	if err := s.gateway.Logout(ctx); err != nil {
		s.logger.Warn("server logout failed, clearing local session anyway", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.tokens.set("")

	if err := s.persist.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear persisted session", "error", err)
	}

	s.logger.Info("session cleared")
}

// SetUser replaces the cached profile without touching the credential.
func (s *Store) SetUser(ctx context.Context, user models.UserProfile) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if token := s.tokens.Token(); token != "" {
		record := storage.SessionRecord{Token: token, User: user}
		if err := s.persist.Save(ctx, record); err != nil {
			s.logger.Warn("failed to persist updated profile", "user_id", user.ID, "error", err)
		}
	}
}

// User returns a copy of the current profile, or nil when signed out.
func (s *Store) User() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAuthenticated reports whether a session is established.
func (s *Store) IsAuthenticated() bool {
	return s.User() != nil && s.tokens.Token() != ""
}
