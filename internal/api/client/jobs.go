package client

import (
	"context"
	"net/url"
	"strconv"

	domain "arbitrack/pkg/types"
)

// ListJobs returns job records newest first, optionally filtered by type.
func (c *Client) ListJobs(ctx context.Context, jobType string, limit int) ([]domain.Job, error) {
	q := url.Values{}
	if jobType != "" {
		q.Set("type", jobType)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/v1/jobs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var jobs []domain.Job
	if err := c.get(ctx, path, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob returns a single job by ID.
func (c *Client) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := c.get(ctx, "/api/v1/jobs/"+id, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Refresh enqueues a score refresh job. An empty marketplace refreshes all
// marketplaces.
func (c *Client) Refresh(ctx context.Context, marketplace string) (*domain.Job, error) {
	body := map[string]string{}
	if marketplace != "" {
		body["marketplace"] = marketplace
	}

	var job domain.Job
	if err := c.post(ctx, "/api/v1/refresh", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
