package api

import (
	"context"
	"net/http"

	"opportune-web/internal/model"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token and a (possibly partial)
// user record. The profile fetch is authoritative for fields the login
// response omits.
func (c *Client) Login(ctx context.Context, username, password string) (model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, loginRequest{
		Username: username,
		Password: password,
	}, &out)
	return out, err
}

// Register creates a job-seeker account and returns the issued token and
// user, same shape as Login.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, req, &out)
	return out, err
}

// Profile fetches the full user record for the token's owner.
func (c *Client) Profile(ctx context.Context, token string) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, nil, &out)
	return out, err
}

// UpdateProfile saves editable profile fields and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, token string, upd model.ProfileUpdate) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodPut, "/auth/profile", token, nil, upd, &out)
	return out, err
}

// ChangePassword submits a password change for the current user.
func (c *Client) ChangePassword(ctx context.Context, token string, req model.PasswordChange) error {
	return c.do(ctx, http.MethodPost, "/auth/change-password", token, nil, req, nil)
}

// EmailPreferences fetches the current notification settings.
func (c *Client) EmailPreferences(ctx context.Context, token string) (model.EmailPreferences, error) {
	var out model.EmailPreferences
	err := c.do(ctx, http.MethodGet, "/auth/email-preferences", token, nil, nil, &out)
	return out, err
}

// UpdateEmailPreferences saves notification settings.
func (c *Client) UpdateEmailPreferences(ctx context.Context, token string, prefs model.EmailPreferences) error {
	return c.do(ctx, http.MethodPut, "/auth/email-preferences", token, nil, prefs, nil)
}
