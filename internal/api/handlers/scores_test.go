package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arbitrack/internal/api/handlers"
	"arbitrack/internal/store"
	storeMocks "arbitrack/internal/store/mocks"
	domain "arbitrack/pkg/types"
)

func scoreRowFixture() domain.ScoreRow {
	retail := decimal.RequireFromString("11.99")
	bsr := 1200
	return domain.ScoreRow{
		ProductID:    "p1",
		ASIN:         "B0TEST1234",
		Title:        "Wooden puzzle",
		Marketplace:  "FR",
		AmazonPrice:  decimal.RequireFromString("29.99"),
		RetailPrice:  &retail,
		LandedCost:   decimal.RequireFromString("11.99"),
		Margin:       decimal.RequireFromString("13.01"),
		ROIPercent:   decimal.RequireFromString("108.51"),
		BSR:          &bsr,
		SellersCount: 3,
		BuyboxStable: true,
	}
}

func TestScoresHandler_ListScores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns scores",
			path: "/api/v1/scores",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					QueryScores(mock.Anything, mock.Anything).
					Return([]domain.ScoreRow{scoreRowFixture()}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"B0TEST1234"`,
		},
		{
			name: "filters are passed through",
			path: "/api/v1/scores?roi_min=30&marketplace=FR&bsr_max=5000&order_by=roi",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					QueryScores(mock.Anything, mock.MatchedBy(func(q *store.ScoreQuery) bool {
						return q.ROIMin != nil && q.ROIMin.Equal(decimal.NewFromInt(30)) &&
							q.Marketplace != nil && *q.Marketplace == "FR" &&
							q.BSRMax != nil && *q.BSRMax == 5000 &&
							q.OrderBy == "roi"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"scores":[]`,
		},
		{
			name:       "invalid roi_min returns 422",
			path:       "/api/v1/scores?roi_min=abc",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `invalid roi_min`,
		},
		{
			name: "store error returns 500",
			path: "/api/v1/scores",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					QueryScores(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `score query failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewScoresHandler(ms)

			_, api := humatest.New(t)
			handlers.RegisterScoreRoutes(api, h)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestScoresHandler_ExportScores(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		QueryScores(mock.Anything, mock.Anything).
		Return([]domain.ScoreRow{scoreRowFixture()}, 1, nil).
		Once()

	h := handlers.NewScoresHandler(ms)
	_, api := humatest.New(t)
	handlers.RegisterScoreRoutes(api, h)

	resp := api.Get("/api/v1/scores/export?roi_min=30")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, "asin,title,marketplace")
	assert.Contains(t, body, "B0TEST1234,Wooden puzzle,FR,29.99,11.99,11.99,13.01,108.51,1200,3,true")
}

func TestScoresHandler_GetScore(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetScore(mock.Anything, "p1", "FR").
			Return(&domain.Score{
				ProductID:   "p1",
				Marketplace: "FR",
				ROIPercent:  decimal.RequireFromString("108.51"),
			}, nil).
			Once()

		h := handlers.NewScoresHandler(ms)
		_, api := humatest.New(t)
		handlers.RegisterScoreRoutes(api, h)

		resp := api.Get("/api/v1/products/p1/scores/FR")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"108.51"`)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetScore(mock.Anything, "p1", "DE").
			Return(nil, domain.ErrNotFound).
			Once()

		h := handlers.NewScoresHandler(ms)
		_, api := humatest.New(t)
		handlers.RegisterScoreRoutes(api, h)

		resp := api.Get("/api/v1/products/p1/scores/DE")
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}
