package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arbitrack/internal/api/handlers"
	storeMocks "arbitrack/internal/store/mocks"
	domain "arbitrack/pkg/types"
)

func newSettingsAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()

	h := handlers.NewSettingsHandler(ms)
	_, api := humatest.New(t)
	handlers.RegisterSettingRoutes(api, h)
	return api
}

func TestSettingsHandler_Put(t *testing.T) {
	t.Parallel()

	t.Run("writes known key", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			PutSetting(mock.Anything, "vat_rate", mock.MatchedBy(func(v json.RawMessage) bool {
				return string(v) == `"0.19"`
			})).
			Return(nil).
			Once()
		ms.EXPECT().
			GetSetting(mock.Anything, "vat_rate").
			Return(&domain.Setting{Key: "vat_rate", Value: json.RawMessage(`"0.19"`)}, nil).
			Once()

		api := newSettingsAPI(t, ms)
		resp := api.Put("/api/v1/settings/vat_rate", map[string]any{"value": "0.19"})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"0.19"`)
	})

	t.Run("unknown key returns 422", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		api := newSettingsAPI(t, ms)

		resp := api.Put("/api/v1/settings/vta_rate", map[string]any{"value": "0.19"})
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), "unknown setting key")
		ms.AssertNotCalled(t, "PutSetting", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSettingsHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetSetting(mock.Anything, "fba_fees").
			Return(&domain.Setting{
				Key:   "fba_fees",
				Value: json.RawMessage(`{"FR":{"fba_fee":"3.20","referral_fee":"4.50"}}`),
			}, nil).
			Once()

		api := newSettingsAPI(t, ms)
		resp := api.Get("/api/v1/settings/fba_fees")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"3.20"`)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetSetting(mock.Anything, "vat_rate").
			Return(nil, domain.ErrNotFound).
			Once()

		api := newSettingsAPI(t, ms)
		resp := api.Get("/api/v1/settings/vat_rate")
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestSettingsHandler_List(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListSettings(mock.Anything).
		Return([]domain.Setting{
			{Key: "vat_rate", Value: json.RawMessage(`"0.21"`)},
			{Key: "prep_cost", Value: json.RawMessage(`"0.50"`)},
		}, nil).
		Once()

	api := newSettingsAPI(t, ms)
	resp := api.Get("/api/v1/settings")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"vat_rate"`)
	assert.Contains(t, resp.Body.String(), `"prep_cost"`)
}
