package api

import (
	"context"
	"fmt"
	"net/http"

	"opportune-web/internal/model"
)

// AdminOverview fetches the aggregate counts for the admin overview tab.
func (c *Client) AdminOverview(ctx context.Context, token string) (model.AdminOverview, error) {
	var out model.AdminOverview
	err := c.do(ctx, http.MethodGet, "/admin/overview", token, nil, nil, &out)
	return out, err
}

// ListUsers fetches every user account for the admin users tab.
func (c *Client) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	var out []model.User
	err := c.do(ctx, http.MethodGet, "/admin/users", token, nil, nil, &out)
	return out, err
}

type enabledUpdate struct {
	Enabled bool `json:"enabled"`
}

// SetUserEnabled enables or disables an account.
func (c *Client) SetUserEnabled(ctx context.Context, token string, id int64, enabled bool) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/enabled", id), token, nil, enabledUpdate{Enabled: enabled}, &out)
	return out, err
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), token, nil, nil, nil)
}
