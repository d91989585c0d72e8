package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"arbitrack/internal/settings"
	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// knownSettingKeys lists the keys the engine reads. Writes to other keys are
// rejected so typos never silently become dead configuration.
var knownSettingKeys = map[string]struct{}{
	settings.KeyVATRate:  {},
	settings.KeyPrepCost: {},
	settings.KeyFBAFees:  {},
}

// SettingsHandler handles configuration KV endpoints.
type SettingsHandler struct {
	store store.Store
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(s store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// ListSettingsOutput is the response for listing all settings.
type ListSettingsOutput struct {
	Body []domain.Setting
}

// SettingKeyInput identifies one setting by key.
type SettingKeyInput struct {
	Key string `path:"key" doc:"Setting key" example:"vat_rate"`
}

// SettingOutput is the response carrying a single setting.
type SettingOutput struct {
	Body domain.Setting
}

// PutSettingInput is the input for writing a setting.
type PutSettingInput struct {
	Key  string `path:"key" doc:"Setting key" example:"vat_rate"`
	Body struct {
		Value json.RawMessage `json:"value" doc:"JSON value for the key" example:"0.20"`
	}
}

// ListSettings returns all stored settings.
func (h *SettingsHandler) ListSettings(
	ctx context.Context,
	_ *struct{},
) (*ListSettingsOutput, error) {
	all, err := h.store.ListSettings(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing settings: " + err.Error())
	}

	if all == nil {
		all = []domain.Setting{}
	}

	return &ListSettingsOutput{Body: all}, nil
}

// GetSetting returns a single setting by key.
func (h *SettingsHandler) GetSetting(
	ctx context.Context,
	input *SettingKeyInput,
) (*SettingOutput, error) {
	s, err := h.store.GetSetting(ctx, input.Key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("setting not found")
		}
		return nil, huma.Error500InternalServerError("fetching setting: " + err.Error())
	}

	return &SettingOutput{Body: *s}, nil
}

// PutSetting writes a setting value. Only engine-recognized keys are allowed.
func (h *SettingsHandler) PutSetting(
	ctx context.Context,
	input *PutSettingInput,
) (*SettingOutput, error) {
	if _, ok := knownSettingKeys[input.Key]; !ok {
		return nil, huma.Error422UnprocessableEntity("unknown setting key: " + input.Key)
	}

	if err := h.store.PutSetting(ctx, input.Key, input.Body.Value); err != nil {
		return nil, huma.Error500InternalServerError("writing setting: " + err.Error())
	}

	s, err := h.store.GetSetting(ctx, input.Key)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching setting: " + err.Error())
	}

	return &SettingOutput{Body: *s}, nil
}

// RegisterSettingRoutes registers settings endpoints with the Huma API.
func RegisterSettingRoutes(api huma.API, h *SettingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-settings",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings",
		Summary:     "List settings",
		Tags:        []string{"settings"},
	}, h.ListSettings)

	huma.Register(api, huma.Operation{
		OperationID: "get-setting",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings/{key}",
		Summary:     "Get a setting",
		Tags:        []string{"settings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSetting)

	huma.Register(api, huma.Operation{
		OperationID: "put-setting",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings/{key}",
		Summary:     "Write a setting",
		Description: "Writes a JSON value for an engine-recognized key. The new value applies on the next refresh.",
		Tags:        []string{"settings"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.PutSetting)
}
