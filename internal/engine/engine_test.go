package engine

import (
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	notifyMocks "arbitrack/internal/notify/mocks"
	storeMocks "arbitrack/internal/store/mocks"
	domain "arbitrack/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEngine builds an engine on mocks, silenced.
func newTestEngine(
	ms *storeMocks.MockStore,
	mn *notifyMocks.MockNotifier,
	opts ...EngineOption,
) *Engine {
	return NewEngine(ms, mn, append([]EngineOption{WithLogger(quietLogger())}, opts...)...)
}

func newMocks(t *testing.T) (*storeMocks.MockStore, *notifyMocks.MockNotifier) {
	t.Helper()
	return storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testProduct(id, asin string) domain.Product {
	return domain.Product{ID: id, ASIN: asin, Title: "LEGO Technic " + asin}
}

func testAmazonOffer(id, productID, marketplace, price string) domain.AmazonOffer {
	return domain.AmazonOffer{
		ID:          id,
		ProductID:   productID,
		Marketplace: marketplace,
		Price:       dec(price),
	}
}

func testRetailOffer(id, productID, price string) *domain.RetailOffer {
	return &domain.RetailOffer{
		ID:           id,
		ProductID:    productID,
		Price:        dec(price),
		Availability: true,
	}
}
