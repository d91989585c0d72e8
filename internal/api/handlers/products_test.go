package handlers_test

import (
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

func newProductsAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()

	h := handlers.NewProductsHandler(ms)
	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, h)
	return api
}

func TestProductsHandler_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("upserts product", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			UpsertProduct(mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
				return p.ASIN == "B0TEST1234" && p.Title == "Wooden puzzle"
			})).
			Return(nil).
			Once()

		api := newProductsAPI(t, ms)
		resp := api.Post("/api/v1/products", map[string]any{
			"asin":  "B0TEST1234",
			"title": "Wooden puzzle",
		})
		require.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("short asin returns 422", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		api := newProductsAPI(t, ms)

		resp := api.Post("/api/v1/products", map[string]any{
			"asin":  "B0X",
			"title": "Wooden puzzle",
		})
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

func TestProductsHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("uuid lookup", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetProduct(mock.Anything, "3f1c9a6e-0000-0000-0000-000000000001").
			Return(&domain.Product{ID: "3f1c9a6e-0000-0000-0000-000000000001", ASIN: "B0TEST1234"}, nil).
			Once()

		api := newProductsAPI(t, ms)
		resp := api.Get("/api/v1/products/3f1c9a6e-0000-0000-0000-000000000001")
		require.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("asin lookup", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetProductByASIN(mock.Anything, "B0TEST1234").
			Return(&domain.Product{ID: "p1", ASIN: "B0TEST1234"}, nil).
			Once()

		api := newProductsAPI(t, ms)
		resp := api.Get("/api/v1/products/B0TEST1234")
		require.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetProductByASIN(mock.Anything, "B0MISSING0").
			Return(nil, domain.ErrNotFound).
			Once()

		api := newProductsAPI(t, ms)
		resp := api.Get("/api/v1/products/B0MISSING0")
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestProductsHandler_ImportAmazonOffer(t *testing.T) {
	t.Parallel()

	t.Run("imports offer", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetProduct(mock.Anything, "p1").
			Return(&domain.Product{ID: "p1"}, nil).
			Once()
		ms.EXPECT().
			UpsertAmazonOffer(mock.Anything, mock.MatchedBy(func(o *domain.AmazonOffer) bool {
				return o.ProductID == "p1" && o.Marketplace == "FR" &&
					o.Price.String() == "29.99" && o.BSR != nil && *o.BSR == 1200
			})).
			Return(nil).
			Once()

		api := newProductsAPI(t, ms)
		resp := api.Post("/api/v1/products/p1/offers/amazon", map[string]any{
			"marketplace":   "FR",
			"price":         "29.99",
			"bsr":           1200,
			"sellers_count": 3,
		})
		require.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetProduct(mock.Anything, "p9").
			Return(nil, domain.ErrNotFound).
			Once()

		api := newProductsAPI(t, ms)
		resp := api.Post("/api/v1/products/p9/offers/amazon", map[string]any{
			"marketplace": "FR",
			"price":       "29.99",
		})
		require.Equal(t, http.StatusNotFound, resp.Code)
		ms.AssertNotCalled(t, "UpsertAmazonOffer", mock.Anything, mock.Anything)
	})
}

func TestProductsHandler_ImportRetailOffer(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetProduct(mock.Anything, "p1").
		Return(&domain.Product{ID: "p1"}, nil).
		Once()
	ms.EXPECT().
		UpsertRetailOffer(mock.Anything, mock.MatchedBy(func(o *domain.RetailOffer) bool {
			return o.ProductID == "p1" && o.StoreID == "s1" &&
				o.Price.String() == "9.99" && o.Availability
		})).
		Return(nil).
		Once()

	api := newProductsAPI(t, ms)
	resp := api.Post("/api/v1/products/p1/offers/retail", map[string]any{
		"store_id":     "s1",
		"price":        "9.99",
		"availability": true,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
}

func TestProductsHandler_ListOffers(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListAmazonOffers(mock.Anything, "p1").
		Return([]domain.AmazonOffer{{ID: "ao1", Marketplace: "FR"}}, nil).
		Once()
	ms.EXPECT().
		ListRetailOffers(mock.Anything, "p1").
		Return(nil, nil).
		Once()

	api := newProductsAPI(t, ms)
	resp := api.Get("/api/v1/products/p1/offers")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"FR"`)
	assert.Contains(t, resp.Body.String(), `"retail":[]`)
}
