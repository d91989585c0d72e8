package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arbitrack/internal/settings"
	"arbitrack/internal/store"
	storeMocks "arbitrack/internal/store/mocks"
	domain "arbitrack/pkg/types"
)

func expectDefaultSettings(ms *storeMocks.MockStore) {
	ms.EXPECT().GetSetting(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
}

func TestRefreshScores_ComputesAndUpserts(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	expectDefaultSettings(ms)

	p := testProduct("p1", "B0AAAA")
	ao := testAmazonOffer("ao1", "p1", "FR", "25.00")

	ms.EXPECT().ListCandidateProducts(mock.Anything, "").Return([]domain.Product{p}, nil)
	ms.EXPECT().BestRetailOffer(mock.Anything, "p1").Return(testRetailOffer("ro1", "p1", "9.99"), nil)
	ms.EXPECT().ListAmazonOffers(mock.Anything, "p1").Return([]domain.AmazonOffer{ao}, nil)

	var captured domain.Score
	ms.EXPECT().UpsertScore(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sc *domain.Score) { captured = *sc }).
		Return(nil)

	eng := newTestEngine(ms, mn)
	res, err := eng.RefreshScores(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, res.ProductsSeen)
	assert.Equal(t, 1, res.ScoresUpdated)

	// 9.99 * 1.20 = 11.988, stored as 11.99 at currency precision.
	assert.True(t, captured.LandedCost.Equal(dec("11.99")), "landed = %s", captured.LandedCost)
	assert.True(t, captured.Margin.Equal(dec("13.01")), "margin = %s", captured.Margin)
	assert.True(t, captured.ROIPercent.Equal(dec("108.51")), "roi = %s", captured.ROIPercent)
	assert.Equal(t, "ro1", captured.BestRetailOfferID)
	assert.Equal(t, "ao1", captured.BestAmazonOfferID)
	assert.Equal(t, "FR", captured.Marketplace)
}

func TestRefreshScores_UsesConfiguredSettings(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyVATRate).
		Return(&domain.Setting{Key: settings.KeyVATRate, Value: json.RawMessage(`"0.20"`)}, nil)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyPrepCost).
		Return(&domain.Setting{Key: settings.KeyPrepCost, Value: json.RawMessage(`"0.50"`)}, nil)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyFBAFees).
		Return(&domain.Setting{
			Key:   settings.KeyFBAFees,
			Value: json.RawMessage(`{"FR": {"fba_fee": "3.00", "referral_fee": "2.10"}}`),
		}, nil)

	p := testProduct("p1", "B0AAAA")
	ao := testAmazonOffer("ao1", "p1", "FR", "25.00")

	ms.EXPECT().ListCandidateProducts(mock.Anything, "").Return([]domain.Product{p}, nil)
	ms.EXPECT().BestRetailOffer(mock.Anything, "p1").Return(
		&domain.RetailOffer{ID: "ro1", ProductID: "p1", Price: dec("10.00"), ShippingCost: dec("2.00"), Availability: true}, nil)
	ms.EXPECT().ListAmazonOffers(mock.Anything, "p1").Return([]domain.AmazonOffer{ao}, nil)

	var captured domain.Score
	ms.EXPECT().UpsertScore(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sc *domain.Score) { captured = *sc }).
		Return(nil)

	eng := newTestEngine(ms, mn)
	_, err := eng.RefreshScores(context.Background(), "")
	require.NoError(t, err)

	// (10.00 + 2.00) * 1.20 + 0.50 = 14.90; 25.00 - 3.00 - 2.10 - 14.90 = 5.00.
	assert.True(t, captured.LandedCost.Equal(dec("14.90")), "landed = %s", captured.LandedCost)
	assert.True(t, captured.Margin.Equal(dec("5.00")), "margin = %s", captured.Margin)
	assert.True(t, captured.ROIPercent.Equal(dec("33.56")), "roi = %s", captured.ROIPercent)
}

func TestRefreshScores_FeesComeFromScheduleNotOffer(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyVATRate).Return(nil, domain.ErrNotFound)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyPrepCost).Return(nil, domain.ErrNotFound)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyFBAFees).
		Return(&domain.Setting{
			Key:   settings.KeyFBAFees,
			Value: json.RawMessage(`{"FR": {"fba_fee": "2.00", "referral_fee": "1.00"}}`),
		}, nil)

	p := testProduct("p1", "B0AAAA")
	ao := testAmazonOffer("ao1", "p1", "FR", "25.00")
	// Fee figures on the offer row are observations only and must not leak
	// into the score.
	ao.FBAFee = dec("5.00")
	ao.ReferralFee = dec("4.00")

	ms.EXPECT().ListCandidateProducts(mock.Anything, "").Return([]domain.Product{p}, nil)
	ms.EXPECT().BestRetailOffer(mock.Anything, "p1").Return(testRetailOffer("ro1", "p1", "9.99"), nil)
	ms.EXPECT().ListAmazonOffers(mock.Anything, "p1").Return([]domain.AmazonOffer{ao}, nil)

	var captured domain.Score
	ms.EXPECT().UpsertScore(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sc *domain.Score) { captured = *sc }).
		Return(nil)

	eng := newTestEngine(ms, mn)
	_, err := eng.RefreshScores(context.Background(), "")
	require.NoError(t, err)

	// 25.00 - 2.00 - 1.00 - 11.99, not 25.00 - 5.00 - 4.00 - 11.99.
	assert.True(t, captured.Margin.Equal(dec("10.01")), "margin = %s", captured.Margin)
	assert.True(t, captured.ROIPercent.Equal(dec("83.49")), "roi = %s", captured.ROIPercent)
}

func TestRefreshScores_NoRetailOfferSkipsPair(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	expectDefaultSettings(ms)

	p := testProduct("p1", "B0AAAA")
	ms.EXPECT().ListCandidateProducts(mock.Anything, "").Return([]domain.Product{p}, nil)
	ms.EXPECT().BestRetailOffer(mock.Anything, "p1").Return(nil, domain.ErrNotFound)

	eng := newTestEngine(ms, mn)
	res, err := eng.RefreshScores(context.Background(), "")
	require.NoError(t, err)

	// Stale scores stay untouched: no upsert happened.
	assert.Equal(t, 1, res.ProductsSeen)
	assert.Zero(t, res.ScoresUpdated)
	ms.AssertNotCalled(t, "UpsertScore", mock.Anything, mock.Anything)
}

func TestRefreshScores_MarketplaceFilter(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	expectDefaultSettings(ms)

	p := testProduct("p1", "B0AAAA")
	offers := []domain.AmazonOffer{
		testAmazonOffer("ao-fr", "p1", "FR", "25.00"),
		testAmazonOffer("ao-de", "p1", "DE", "27.00"),
	}

	ms.EXPECT().ListCandidateProducts(mock.Anything, "FR").Return([]domain.Product{p}, nil)
	ms.EXPECT().BestRetailOffer(mock.Anything, "p1").Return(testRetailOffer("ro1", "p1", "9.99"), nil)
	ms.EXPECT().ListAmazonOffers(mock.Anything, "p1").Return(offers, nil)

	var marketplaces []string
	ms.EXPECT().UpsertScore(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sc *domain.Score) { marketplaces = append(marketplaces, sc.Marketplace) }).
		Return(nil)

	eng := newTestEngine(ms, mn)
	res, err := eng.RefreshScores(context.Background(), "FR")
	require.NoError(t, err)

	assert.Equal(t, 1, res.ScoresUpdated)
	assert.Equal(t, []string{"FR"}, marketplaces)
	assert.Equal(t, "FR", res.Marketplace)
}

func TestRefreshScores_PartialProgressOnFailure(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	expectDefaultSettings(ms)

	p1 := testProduct("p1", "B0AAAA")
	p2 := testProduct("p2", "B0BBBB")

	ms.EXPECT().ListCandidateProducts(mock.Anything, "").Return([]domain.Product{p1, p2}, nil)
	ms.EXPECT().BestRetailOffer(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*domain.RetailOffer, error) {
			return testRetailOffer("ro-"+id, id, "9.99"), nil
		})
	ms.EXPECT().ListAmazonOffers(mock.Anything, "p1").
		Return([]domain.AmazonOffer{testAmazonOffer("ao1", "p1", "FR", "25.00")}, nil)
	ms.EXPECT().ListAmazonOffers(mock.Anything, "p2").
		Return([]domain.AmazonOffer{testAmazonOffer("ao2", "p2", "FR", "30.00")}, nil)

	ms.EXPECT().UpsertScore(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().UpsertScore(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	eng := newTestEngine(ms, mn)
	res, err := eng.RefreshScores(context.Background(), "")

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, res.ScoresUpdated, "first score committed before the failure")
}

func TestRefreshScores_Idempotent(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	expectDefaultSettings(ms)

	p := testProduct("p1", "B0AAAA")
	ao := testAmazonOffer("ao1", "p1", "FR", "25.00")

	ms.EXPECT().ListCandidateProducts(mock.Anything, "").Return([]domain.Product{p}, nil).Times(2)
	ms.EXPECT().BestRetailOffer(mock.Anything, "p1").Return(testRetailOffer("ro1", "p1", "9.99"), nil).Times(2)
	ms.EXPECT().ListAmazonOffers(mock.Anything, "p1").Return([]domain.AmazonOffer{ao}, nil).Times(2)

	var scores []domain.Score
	ms.EXPECT().UpsertScore(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sc *domain.Score) { scores = append(scores, *sc) }).
		Return(nil).Times(2)

	eng := newTestEngine(ms, mn)
	ctx := context.Background()

	first, err := eng.RefreshScores(ctx, "")
	require.NoError(t, err)
	second, err := eng.RefreshScores(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, first.ScoresUpdated, second.ScoresUpdated)
	require.Len(t, scores, 2)
	assert.True(t, scores[0].LandedCost.Equal(scores[1].LandedCost))
	assert.True(t, scores[0].Margin.Equal(scores[1].Margin))
	assert.True(t, scores[0].ROIPercent.Equal(scores[1].ROIPercent))
}

func TestRefreshScores_TransactionalMode(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	expectDefaultSettings(ms)

	ms.EXPECT().WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(store.Store) error) error {
			return fn(ms)
		}).Once()
	ms.EXPECT().ListCandidateProducts(mock.Anything, "").Return(nil, nil)

	eng := newTestEngine(ms, mn, WithTransactional(true))
	res, err := eng.RefreshScores(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, res.ScoresUpdated)
}

func TestRefreshScores_SettingsErrorAborts(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	ms.EXPECT().GetSetting(mock.Anything, settings.KeyVATRate).Return(nil, assert.AnError)

	eng := newTestEngine(ms, mn)
	_, err := eng.RefreshScores(context.Background(), "")
	assert.ErrorIs(t, err, assert.AnError)
}
