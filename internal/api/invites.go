package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"opportune-web/internal/model"
)

// CreateInvite issues a new invite. Company name is optional even for the
// HR role; the backend decides what it requires.
func (c *Client) CreateInvite(ctx context.Context, token string, req model.CreateInvite) (model.Invite, error) {
	var out model.Invite
	err := c.do(ctx, http.MethodPost, "/invites", token, nil, req, &out)
	return out, err
}

// PendingInvites lists invites that have not been used, revoked or expired.
func (c *Client) PendingInvites(ctx context.Context, token string) ([]model.Invite, error) {
	var out []model.Invite
	err := c.do(ctx, http.MethodGet, "/invites/pending", token, nil, nil, &out)
	return out, err
}

// InviteByToken fetches an invite by its opaque token. Public endpoint:
// the invitee is not logged in yet.
func (c *Client) InviteByToken(ctx context.Context, token string) (model.Invite, error) {
	q := url.Values{}
	q.Set("token", token)
	var out model.Invite
	err := c.do(ctx, http.MethodGet, "/invites/by-token", "", q, nil, &out)
	return out, err
}

// AcceptInvite completes an invited registration and returns the issued
// session token and user, same shape as Login.
func (c *Client) AcceptInvite(ctx context.Context, req model.AcceptInvite) (model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/invites/accept", "", nil, req, &out)
	return out, err
}

// RevokeInvite cancels a pending invite.
func (c *Client) RevokeInvite(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/invites/%d/revoke", id), token, nil, nil, nil)
}
