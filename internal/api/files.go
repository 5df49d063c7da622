package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"opportune-web/internal/model"
)

// UploadResume streams one resume file to the backend as multipart form
// data and returns the stored metadata. Validation (extension, size) is the
// caller's job and happens before this is reached.
func (c *Client) UploadResume(ctx context.Context, token, filename string, content io.Reader) (model.FileUpload, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return model.FileUpload{}, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return model.FileUpload{}, fmt.Errorf("failed to read file content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return model.FileUpload{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files/upload", &buf)
	if err != nil {
		return model.FileUpload{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.FileUpload{}, fmt.Errorf("upload request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.FileUpload{}, decodeStatusError(resp)
	}

	var out model.FileUpload
	if err := decodeJSON(resp.Body, &out); err != nil {
		return model.FileUpload{}, err
	}
	return out, nil
}

// MyFiles lists the token owner's uploads.
func (c *Client) MyFiles(ctx context.Context, token string) ([]model.FileUpload, error) {
	var out []model.FileUpload
	err := c.do(ctx, http.MethodGet, "/files/my", token, nil, nil, &out)
	return out, err
}

// GetFile fetches one upload's metadata by id.
func (c *Client) GetFile(ctx context.Context, token string, id int64) (model.FileUpload, error) {
	var out model.FileUpload
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/files/%d", id), token, nil, nil, &out)
	return out, err
}

// DeleteFile removes an upload.
func (c *Client) DeleteFile(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/files/%d", id), token, nil, nil, nil)
}
