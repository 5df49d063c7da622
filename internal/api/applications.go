package api

import (
	"context"
	"fmt"
	"net/http"

	"opportune-web/internal/model"
)

// Apply submits a job application for the token owner.
func (c *Client) Apply(ctx context.Context, token string, req model.ApplyRequest) (model.Application, error) {
	var out model.Application
	err := c.do(ctx, http.MethodPost, "/applications", token, nil, req, &out)
	return out, err
}

// MyApplications lists the token owner's applications.
func (c *Client) MyApplications(ctx context.Context, token string) ([]model.Application, error) {
	var out []model.Application
	err := c.do(ctx, http.MethodGet, "/applications/my", token, nil, nil, &out)
	return out, err
}

// GetApplication fetches one application by id.
func (c *Client) GetApplication(ctx context.Context, token string, id int64) (model.Application, error) {
	var out model.Application
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/applications/%d", id), token, nil, nil, &out)
	return out, err
}

// ApplicationsByJob lists applications for one job post (HR view).
func (c *Client) ApplicationsByJob(ctx context.Context, token string, jobID int64) ([]model.Application, error) {
	var out []model.Application
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/applications/job/%d", jobID), token, nil, nil, &out)
	return out, err
}

type statusUpdate struct {
	Status string `json:"status"`
}

// UpdateApplicationStatus requests a status transition. The backend
// enforces transition validity; any status value may be submitted.
func (c *Client) UpdateApplicationStatus(ctx context.Context, token string, id int64, status string) (model.Application, error) {
	var out model.Application
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/applications/%d/status", id), token, nil, statusUpdate{Status: status}, &out)
	return out, err
}

// WithdrawApplication deletes the token owner's application.
func (c *Client) WithdrawApplication(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/applications/%d", id), token, nil, nil, nil)
}
