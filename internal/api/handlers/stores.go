package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// StoresHandler handles retail store CRUD endpoints.
type StoresHandler struct {
	store store.Store
}

// NewStoresHandler creates a new StoresHandler.
func NewStoresHandler(s store.Store) *StoresHandler {
	return &StoresHandler{store: s}
}

// StoreBody is the writable portion of a retail store.
type StoreBody struct {
	Name      string          `json:"name"                minLength:"1" doc:"Store name" example:"brickseek"`
	URL       string          `json:"url"                 minLength:"1" doc:"Store base URL"`
	Selectors json.RawMessage `json:"selectors,omitempty"               doc:"Scraper extraction configuration"`
	Active    *bool           `json:"active,omitempty"                  doc:"Whether the store participates in scoring (default true)"`
}

// ListStoresInput is the input for listing retail stores.
type ListStoresInput struct {
	Active bool `query:"active" doc:"Return only active stores"`
}

// ListStoresOutput is the response for listing retail stores.
type ListStoresOutput struct {
	Body []domain.RetailStore
}

// StoreIDInput identifies one retail store by UUID.
type StoreIDInput struct {
	ID string `path:"id" doc:"Store UUID"`
}

// StoreOutput is the response carrying a single retail store.
type StoreOutput struct {
	Body domain.RetailStore
}

// CreateStoreInput is the input for creating a retail store.
type CreateStoreInput struct {
	Body StoreBody
}

// UpdateStoreInput is the input for updating a retail store.
type UpdateStoreInput struct {
	ID   string `path:"id" doc:"Store UUID"`
	Body StoreBody
}

// SetStoreActiveInput is the input for toggling a retail store.
type SetStoreActiveInput struct {
	ID   string `path:"id" doc:"Store UUID"`
	Body struct {
		Active bool `json:"active" doc:"New active state"`
	}
}

// ListStores returns all retail stores, optionally restricted to active ones.
func (h *StoresHandler) ListStores(
	ctx context.Context,
	input *ListStoresInput,
) (*ListStoresOutput, error) {
	stores, err := h.store.ListStores(ctx, input.Active)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing stores: " + err.Error())
	}

	if stores == nil {
		stores = []domain.RetailStore{}
	}

	return &ListStoresOutput{Body: stores}, nil
}

// GetStore returns a single retail store by ID.
func (h *StoresHandler) GetStore(
	ctx context.Context,
	input *StoreIDInput,
) (*StoreOutput, error) {
	s, err := h.store.GetStore(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("store not found")
		}
		return nil, huma.Error500InternalServerError("fetching store: " + err.Error())
	}

	return &StoreOutput{Body: *s}, nil
}

// CreateStore creates a new retail store.
func (h *StoresHandler) CreateStore(
	ctx context.Context,
	input *CreateStoreInput,
) (*StoreOutput, error) {
	s := domain.RetailStore{
		Name:      input.Body.Name,
		URL:       input.Body.URL,
		Selectors: input.Body.Selectors,
		Active:    true,
	}
	if input.Body.Active != nil {
		s.Active = *input.Body.Active
	}
	if s.Selectors == nil {
		s.Selectors = json.RawMessage(`{}`)
	}

	if err := h.store.CreateStore(ctx, &s); err != nil {
		return nil, huma.Error500InternalServerError("creating store: " + err.Error())
	}

	return &StoreOutput{Body: s}, nil
}

// UpdateStore replaces a retail store's writable fields.
func (h *StoresHandler) UpdateStore(
	ctx context.Context,
	input *UpdateStoreInput,
) (*StoreOutput, error) {
	existing, err := h.store.GetStore(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("store not found")
		}
		return nil, huma.Error500InternalServerError("fetching store: " + err.Error())
	}

	existing.Name = input.Body.Name
	existing.URL = input.Body.URL
	if input.Body.Selectors != nil {
		existing.Selectors = input.Body.Selectors
	}
	if input.Body.Active != nil {
		existing.Active = *input.Body.Active
	}

	if err := h.store.UpdateStore(ctx, existing); err != nil {
		return nil, huma.Error500InternalServerError("updating store: " + err.Error())
	}

	return &StoreOutput{Body: *existing}, nil
}

// SetStoreActive toggles a retail store's active flag. Inactive stores are
// excluded from best-offer selection on the next refresh.
func (h *StoresHandler) SetStoreActive(
	ctx context.Context,
	input *SetStoreActiveInput,
) (*StatusOutput, error) {
	if err := h.store.SetStoreActive(ctx, input.ID, input.Body.Active); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("store not found")
		}
		return nil, huma.Error500InternalServerError("setting store active: " + err.Error())
	}

	return &StatusOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// DeleteStore deletes a retail store by ID.
func (h *StoresHandler) DeleteStore(
	ctx context.Context,
	input *StoreIDInput,
) (*struct{}, error) {
	if err := h.store.DeleteStore(ctx, input.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("store not found")
		}
		return nil, huma.Error500InternalServerError("deleting store: " + err.Error())
	}

	return &struct{}{}, nil
}

// RegisterStoreRoutes registers retail store endpoints with the Huma API.
func RegisterStoreRoutes(api huma.API, h *StoresHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-stores",
		Method:      http.MethodGet,
		Path:        "/api/v1/stores",
		Summary:     "List retail stores",
		Tags:        []string{"stores"},
	}, h.ListStores)

	huma.Register(api, huma.Operation{
		OperationID: "get-store",
		Method:      http.MethodGet,
		Path:        "/api/v1/stores/{id}",
		Summary:     "Get a retail store",
		Tags:        []string{"stores"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetStore)

	huma.Register(api, huma.Operation{
		OperationID:   "create-store",
		Method:        http.MethodPost,
		Path:          "/api/v1/stores",
		Summary:       "Create a retail store",
		Tags:          []string{"stores"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateStore)

	huma.Register(api, huma.Operation{
		OperationID: "update-store",
		Method:      http.MethodPut,
		Path:        "/api/v1/stores/{id}",
		Summary:     "Update a retail store",
		Tags:        []string{"stores"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateStore)

	huma.Register(api, huma.Operation{
		OperationID: "set-store-active",
		Method:      http.MethodPut,
		Path:        "/api/v1/stores/{id}/active",
		Summary:     "Enable or disable a retail store",
		Tags:        []string{"stores"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetStoreActive)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-store",
		Method:        http.MethodDelete,
		Path:          "/api/v1/stores/{id}",
		Summary:       "Delete a retail store",
		Tags:          []string{"stores"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteStore)
}
