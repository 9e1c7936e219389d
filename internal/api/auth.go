package api

import (
	"context"
	"net/http"

	"github.com/tara-app/tara/internal/models"
)

// RegisterInput is the body of POST /auth/register.
type RegisterInput struct {
	DisplayName          string `json:"display_name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	User  models.UserProfile `json:"user"`
	Token string             `json:"token"`
}

// Register creates a new account. No credential is attached; the caller has
// no session yet.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a user profile and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the current token server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
