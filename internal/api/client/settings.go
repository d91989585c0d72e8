package client

import (
	"context"
	"encoding/json"

	domain "arbitrack/pkg/types"
)

// ListSettings returns all stored settings.
func (c *Client) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	var settings []domain.Setting
	if err := c.get(ctx, "/api/v1/settings", &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetSetting returns a single setting by key.
func (c *Client) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	var s domain.Setting
	if err := c.get(ctx, "/api/v1/settings/"+key, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// PutSetting writes a JSON value for an engine-recognized key.
func (c *Client) PutSetting(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
	var s domain.Setting
	body := map[string]json.RawMessage{"value": value}
	if err := c.put(ctx, "/api/v1/settings/"+key, body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
