package api

import (
	"context"
	"fmt"
	"net/http"

	"opportune-web/internal/model"
)

// ResumeAIStatus reports whether the backend's resume-analysis service is
// up. Rendered as an informational badge only.
func (c *Client) ResumeAIStatus(ctx context.Context, token string) (model.AIStatus, error) {
	var out model.AIStatus
	err := c.do(ctx, http.MethodGet, "/resume-analytics/status", token, nil, nil, &out)
	return out, err
}

// ParsedResume fetches the AI enrichment for one application. A 404 means
// the resume has not been analyzed yet; callers treat it as absence, not
// failure.
func (c *Client) ParsedResume(ctx context.Context, token string, applicationID int64) (model.ParsedResume, error) {
	var out model.ParsedResume
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/resume-analytics/application/%d", applicationID), token, nil, nil, &out)
	return out, err
}

// SearchCandidates runs a skill/experience search over parsed resumes.
func (c *Client) SearchCandidates(ctx context.Context, token string, q model.CandidateQuery) ([]model.CandidateHit, error) {
	var out []model.CandidateHit
	err := c.do(ctx, http.MethodPost, "/resume-analytics/search", token, nil, q, &out)
	return out, err
}
