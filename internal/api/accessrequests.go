package api

import (
	"context"
	"fmt"
	"net/http"

	"opportune-web/internal/model"
)

// CreateAccessRequest files a public request for an HR or admin account.
func (c *Client) CreateAccessRequest(ctx context.Context, req model.CreateAccessRequest) (model.AccessRequest, error) {
	var out model.AccessRequest
	err := c.do(ctx, http.MethodPost, "/access-requests", "", nil, req, &out)
	return out, err
}

// ListAccessRequests fetches every access request for admin review.
func (c *Client) ListAccessRequests(ctx context.Context, token string) ([]model.AccessRequest, error) {
	var out []model.AccessRequest
	err := c.do(ctx, http.MethodGet, "/access-requests", token, nil, nil, &out)
	return out, err
}

// ApproveAccessRequest approves a request; the backend cascades approval
// into invite creation.
func (c *Client) ApproveAccessRequest(ctx context.Context, token string, id int64) (model.AccessRequest, error) {
	var out model.AccessRequest
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/access-requests/%d/approve", id), token, nil, nil, &out)
	return out, err
}

// DenyAccessRequest denies a request.
func (c *Client) DenyAccessRequest(ctx context.Context, token string, id int64) (model.AccessRequest, error) {
	var out model.AccessRequest
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/access-requests/%d/deny", id), token, nil, nil, &out)
	return out, err
}

// DeleteAccessRequest removes a request record.
func (c *Client) DeleteAccessRequest(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/access-requests/%d", id), token, nil, nil, nil)
}
