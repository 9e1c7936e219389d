package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tara-app/tara/internal/api"
	"github.com/tara-app/tara/internal/models"
	"github.com/tara-app/tara/internal/storage"
)

type fakeGateway struct {
	registerResp *api.AuthResponse
	loginResp    *api.AuthResponse
	loginErr     error
	logoutErr    error
	logoutCalls  int
}

func (g *fakeGateway) Register(_ context.Context, _ api.RegisterInput) (*api.AuthResponse, error) {
	return g.registerResp, nil
}

func (g *fakeGateway) Login(_ context.Context, _, _ string) (*api.AuthResponse, error) {
	if g.loginErr != nil {
		return nil, g.loginErr
	}
	return g.loginResp, nil
}

func (g *fakeGateway) Logout(_ context.Context) error {
	g.logoutCalls++
	return g.logoutErr
}

func newTestStore(gateway Gateway) (*Store, *TokenHolder, *storage.MemoryStore) {
	tokens := NewTokenHolder()
	persist := storage.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(gateway, tokens, persist, logger), tokens, persist
}

func TestStore_LoginEstablishesSessionAtomically(t *testing.T) {
	gateway := &fakeGateway{loginResp: &api.AuthResponse{
		User:  models.UserProfile{ID: 1, DisplayName: "Ana", Email: "ana@example.com"},
		Token: "tok-1",
	}}
	store, tokens, persist := newTestStore(gateway)

	user, err := store.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "Ana", user.DisplayName)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok-1", tokens.Token())

	record, err := persist.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "tok-1", record.Token)
	assert.Equal(t, int64(1), record.User.ID)
}

func TestStore_RegisterEstablishesSession(t *testing.T) {
	gateway := &fakeGateway{registerResp: &api.AuthResponse{
		User:  models.UserProfile{ID: 2, DisplayName: "Bea", InviteCode: "BEA456"},
		Token: "tok-2",
	}}
	store, tokens, _ := newTestStore(gateway)

	user, err := store.Register(context.Background(), api.RegisterInput{
		DisplayName:          "Bea",
		Email:                "bea@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "BEA456", user.InviteCode)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok-2", tokens.Token())
}

func TestStore_LoginFailureLeavesNoSession(t *testing.T) {
	wantErr := &api.Error{Status: 401, Message: "Invalid credentials."}
	gateway := &fakeGateway{loginErr: wantErr}
	store, tokens, persist := newTestStore(gateway)

	_, err := store.Login(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)

	// The error propagates untouched for the form to render.
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, wantErr, apiErr)

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	assert.Empty(t, tokens.Token())

	record, err := persist.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestStore_LogoutClearsEvenWhenServerFails(t *testing.T) {
	gateway := &fakeGateway{
		loginResp: &api.AuthResponse{User: models.UserProfile{ID: 1}, Token: "tok"},
		logoutErr: errors.New("server unreachable"),
	}
	store, tokens, persist := newTestStore(gateway)

	_, err := store.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	store.Logout(context.Background())

	assert.Equal(t, 1, gateway.logoutCalls)
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	assert.Empty(t, tokens.Token())

	record, err := persist.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, record, "durable storage must not retain a credential after logout")
}

func TestStore_SetUserKeepsCredential(t *testing.T) {
	gateway := &fakeGateway{loginResp: &api.AuthResponse{
		User:  models.UserProfile{ID: 1, DisplayName: "Ana"},
		Token: "tok",
	}}
	store, tokens, _ := newTestStore(gateway)

	_, err := store.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	store.SetUser(context.Background(), models.UserProfile{ID: 1, DisplayName: "Ana Maria"})

	assert.Equal(t, "Ana Maria", store.User().DisplayName)
	assert.Equal(t, "tok", tokens.Token())
}

func TestStore_RehydrateRestoresPersistedSession(t *testing.T) {
	store, tokens, persist := newTestStore(&fakeGateway{})
	err := persist.Save(context.Background(), storage.SessionRecord{
		Token: "opaque-token",
		User:  models.UserProfile{ID: 7, DisplayName: "Bea"},
	})
	require.NoError(t, err)

	require.NoError(t, store.Rehydrate(context.Background()))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "Bea", store.User().DisplayName)
	assert.Equal(t, "opaque-token", tokens.Token())
}

func TestStore_RehydrateEmptyStoreIsNoop(t *testing.T) {
	store, tokens, _ := newTestStore(&fakeGateway{})

	require.NoError(t, store.Rehydrate(context.Background()))

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, tokens.Token())
}

func TestStore_RehydrateDiscardsExpiredJWT(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	expired := signedJWT(t, now.Add(-time.Hour))
	live := signedJWT(t, now.Add(time.Hour))

	t.Run("expired token is dropped and storage cleared", func(t *testing.T) {
		store, tokens, persist := newTestStore(&fakeGateway{})
		store.now = func() time.Time { return now }
		require.NoError(t, persist.Save(context.Background(), storage.SessionRecord{
			Token: expired,
			User:  models.UserProfile{ID: 1},
		}))

		require.NoError(t, store.Rehydrate(context.Background()))

		assert.False(t, store.IsAuthenticated())
		assert.Empty(t, tokens.Token())
		record, err := persist.Load(context.Background())
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("live token is restored", func(t *testing.T) {
		store, tokens, persist := newTestStore(&fakeGateway{})
		store.now = func() time.Time { return now }
		require.NoError(t, persist.Save(context.Background(), storage.SessionRecord{
			Token: live,
			User:  models.UserProfile{ID: 1},
		}))

		require.NoError(t, store.Rehydrate(context.Background()))

		assert.True(t, store.IsAuthenticated())
		assert.Equal(t, live, tokens.Token())
	})
}

func signedJWT(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}
