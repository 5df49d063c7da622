package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"opportune-web/internal/model"
)

// ListJobs fetches the unfiltered, unpaginated job listing.
func (c *Client) ListJobs(ctx context.Context, token string) ([]model.JobPost, error) {
	var out []model.JobPost
	err := c.do(ctx, http.MethodGet, "/jobs", token, nil, nil, &out)
	return out, err
}

// GetJob fetches one job post by id.
func (c *Client) GetJob(ctx context.Context, token string, id int64) (model.JobPost, error) {
	var out model.JobPost
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), token, nil, nil, &out)
	return out, err
}

// SearchJobs runs a filtered search. Page filter names are remapped to the
// backend's parameter names here, and full-text search is enabled only when
// the free-text query is non-empty.
func (c *Client) SearchJobs(ctx context.Context, token string, f model.JobFilters) (model.JobPage, error) {
	req := model.JobSearchRequest{
		Keyword:        f.Query,
		Location:       f.Location,
		MinExp:         f.MinExperience,
		MinSalary:      f.MinSalary,
		SortField:      f.SortBy,
		SortOrder:      f.SortDir,
		FullTextSearch: f.Query != "",
		Page:           f.Page,
		Size:           f.Size,
	}
	var out model.JobPage
	err := c.do(ctx, http.MethodPost, "/jobs/search", token, nil, req, &out)
	return out, err
}

// JobSuggestions fetches title suggestions for the given prefix.
func (c *Client) JobSuggestions(ctx context.Context, token, prefix string) ([]string, error) {
	q := url.Values{}
	q.Set("prefix", prefix)
	var out []string
	err := c.do(ctx, http.MethodGet, "/jobs/suggestions", token, q, nil, &out)
	return out, err
}

// RelatedJobs fetches jobs sharing tech-stack entries with the given post.
func (c *Client) RelatedJobs(ctx context.Context, token string, techStack []string) ([]model.JobPost, error) {
	q := url.Values{}
	for _, t := range techStack {
		q.Add("tech", t)
	}
	var out []model.JobPost
	err := c.do(ctx, http.MethodGet, "/jobs/related", token, q, nil, &out)
	return out, err
}

// CreateJob creates a posting on behalf of the HR token owner.
func (c *Client) CreateJob(ctx context.Context, token string, job model.EditableJobPost) (model.JobPost, error) {
	var out model.JobPost
	err := c.do(ctx, http.MethodPost, "/jobs", token, nil, job, &out)
	return out, err
}

// UpdateJob saves edits to an existing posting.
func (c *Client) UpdateJob(ctx context.Context, token string, id int64, job model.EditableJobPost) (model.JobPost, error) {
	var out model.JobPost
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/jobs/%d", id), token, nil, job, &out)
	return out, err
}

// DeleteJob removes a posting.
func (c *Client) DeleteJob(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), token, nil, nil, nil)
}

// JobsByHR lists the postings authored by the token's HR user.
func (c *Client) JobsByHR(ctx context.Context, token string) ([]model.JobPost, error) {
	var out []model.JobPost
	err := c.do(ctx, http.MethodGet, "/jobs/my-jobs", token, nil, nil, &out)
	return out, err
}

// JobAnalytics fetches the precomputed analytics breakdowns.
func (c *Client) JobAnalytics(ctx context.Context, token string) (model.JobAnalytics, error) {
	var out model.JobAnalytics
	err := c.do(ctx, http.MethodGet, "/jobs/analytics", token, nil, nil, &out)
	return out, err
}
