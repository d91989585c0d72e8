package client

import (
	"context"
	"encoding/json"
	"fmt"

	domain "arbitrack/pkg/types"
)

// storeRequest contains only the fields the API accepts for create/update.
type storeRequest struct {
	Name      string          `json:"name,omitempty"`
	URL       string          `json:"url,omitempty"`
	Selectors json.RawMessage `json:"selectors,omitempty"`
	Active    *bool           `json:"active,omitempty"`
}

// ListStores returns all retail stores.
func (c *Client) ListStores(ctx context.Context) ([]domain.RetailStore, error) {
	var stores []domain.RetailStore
	if err := c.get(ctx, "/api/v1/stores", &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// GetStore returns a single retail store by ID.
func (c *Client) GetStore(ctx context.Context, id string) (*domain.RetailStore, error) {
	var s domain.RetailStore
	if err := c.get(ctx, "/api/v1/stores/"+id, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateStore creates a new retail store.
func (c *Client) CreateStore(ctx context.Context, s *domain.RetailStore) (*domain.RetailStore, error) {
	var created domain.RetailStore
	req := storeRequest{
		Name:      s.Name,
		URL:       s.URL,
		Selectors: s.Selectors,
		Active:    &s.Active,
	}
	if err := c.post(ctx, "/api/v1/stores", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStore updates an existing retail store.
func (c *Client) UpdateStore(ctx context.Context, s *domain.RetailStore) (*domain.RetailStore, error) {
	var updated domain.RetailStore
	req := storeRequest{
		Name:      s.Name,
		URL:       s.URL,
		Selectors: s.Selectors,
		Active:    &s.Active,
	}
	if err := c.put(ctx, "/api/v1/stores/"+s.ID, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetStoreActive enables or disables a retail store.
func (c *Client) SetStoreActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"active": active}
	return c.put(ctx, fmt.Sprintf("/api/v1/stores/%s/active", id), body, nil)
}

// DeleteStore deletes a retail store by ID.
func (c *Client) DeleteStore(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/stores/"+id, nil)
}
