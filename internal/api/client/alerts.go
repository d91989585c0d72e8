package client

import (
	"context"
	"fmt"

	domain "arbitrack/pkg/types"
)

// alertRequest contains only the fields the API accepts for create/update.
type alertRequest struct {
	Name        string              `json:"name,omitempty"`
	Description string              `json:"description,omitempty"`
	Filters     domain.AlertFilters `json:"filters"`
	Active      *bool               `json:"active,omitempty"`
}

// ListAlerts returns all alerts.
func (c *Client) ListAlerts(ctx context.Context) ([]domain.Alert, error) {
	var alerts []domain.Alert
	if err := c.get(ctx, "/api/v1/alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// GetAlert returns a single alert by ID.
func (c *Client) GetAlert(ctx context.Context, id string) (*domain.Alert, error) {
	var a domain.Alert
	if err := c.get(ctx, "/api/v1/alerts/"+id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAlert creates a new alert.
func (c *Client) CreateAlert(ctx context.Context, a *domain.Alert) (*domain.Alert, error) {
	var created domain.Alert
	req := alertRequest{
		Name:        a.Name,
		Description: a.Description,
		Filters:     a.Filters,
		Active:      &a.Active,
	}
	if err := c.post(ctx, "/api/v1/alerts", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAlert updates an existing alert.
func (c *Client) UpdateAlert(ctx context.Context, a *domain.Alert) (*domain.Alert, error) {
	var updated domain.Alert
	req := alertRequest{
		Name:        a.Name,
		Description: a.Description,
		Filters:     a.Filters,
		Active:      &a.Active,
	}
	if err := c.put(ctx, "/api/v1/alerts/"+a.ID, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetAlertActive enables or disables an alert.
func (c *Client) SetAlertActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"active": active}
	return c.put(ctx, fmt.Sprintf("/api/v1/alerts/%s/active", id), body, nil)
}

// DeleteAlert deletes an alert by ID.
func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/alerts/"+id, nil)
}

// RunAlert enqueues an evaluation job for an alert and returns the job record.
func (c *Client) RunAlert(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := c.post(ctx, fmt.Sprintf("/api/v1/alerts/%s/run", id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
