package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arbitrack/internal/notify"
	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

func activeAlert(id string) *domain.Alert {
	roiMin := dec("30")
	return &domain.Alert{
		ID:      id,
		Name:    "High ROI FR",
		Active:  true,
		Filters: domain.AlertFilters{ROIMin: &roiMin},
	}
}

func scoreRow(asin string, roi string) domain.ScoreRow {
	return domain.ScoreRow{
		ProductID:   "p-" + asin,
		ASIN:        asin,
		Title:       "LEGO Technic " + asin,
		Marketplace: "FR",
		AmazonPrice: dec("25.00"),
		LandedCost:  dec("11.99"),
		Margin:      dec("13.01"),
		ROIPercent:  dec(roi),
	}
}

func TestEvaluateAlert_NotFound(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	ms.EXPECT().GetAlert(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	eng := newTestEngine(ms, mn)
	_, err := eng.EvaluateAlert(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	ms.AssertNotCalled(t, "TouchAlertLastRun", mock.Anything, mock.Anything)
}

func TestEvaluateAlert_Inactive(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	a := activeAlert("a1")
	a.Active = false
	ms.EXPECT().GetAlert(mock.Anything, "a1").Return(a, nil)

	eng := newTestEngine(ms, mn)
	_, err := eng.EvaluateAlert(context.Background(), "a1")

	assert.ErrorIs(t, err, domain.ErrInactive)
	ms.AssertNotCalled(t, "QueryScores", mock.Anything, mock.Anything)
	ms.AssertNotCalled(t, "TouchAlertLastRun", mock.Anything, mock.Anything)
}

func TestEvaluateAlert_MatchesAndNotifies(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	a := activeAlert("a1")
	rows := []domain.ScoreRow{scoreRow("B0AAAA", "108.51"), scoreRow("B0BBBB", "45.20")}

	ms.EXPECT().GetAlert(mock.Anything, "a1").Return(a, nil)
	ms.EXPECT().QueryScores(mock.Anything, mock.Anything).
		Run(func(_ context.Context, q *store.ScoreQuery) {
			require.NotNil(t, q.ROIMin)
			assert.True(t, q.ROIMin.Equal(dec("30")))
			assert.Equal(t, store.NoLimit, q.Limit, "alerts never paginate")
		}).
		Return(rows, 2, nil)
	ms.EXPECT().TouchAlertLastRun(mock.Anything, "a1").Return(nil)

	var sent []notify.MatchPayload
	mn.EXPECT().SendMatchBatch(mock.Anything, "High ROI FR", mock.Anything).
		Run(func(_ context.Context, _ string, matches []notify.MatchPayload) { sent = matches }).
		Return(nil)

	eng := newTestEngine(ms, mn)
	res, err := eng.EvaluateAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, "a1", res.AlertID)
	assert.Equal(t, "High ROI FR", res.AlertName)
	assert.Equal(t, 2, res.ProductsCount)
	assert.Len(t, res.Products, 2)

	require.Len(t, sent, 2)
	assert.Equal(t, "B0AAAA", sent[0].ASIN)
	assert.Equal(t, "108.5%", sent[0].ROIPercent)
	assert.Equal(t, "25.00", sent[0].AmazonPrice)
	assert.Equal(t, "https://www.amazon.fr/dp/B0AAAA", sent[0].ProductURL)
}

func TestEvaluateAlert_FilterPredicateDecides(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	a := activeAlert("a1")

	// A candidate row below the ROI floor never reaches the result or the
	// notifier, whatever the store hands back.
	ms.EXPECT().GetAlert(mock.Anything, "a1").Return(a, nil)
	ms.EXPECT().QueryScores(mock.Anything, mock.Anything).
		Return([]domain.ScoreRow{scoreRow("B0AAAA", "108.51"), scoreRow("B0CCCC", "10.00")}, 2, nil)
	ms.EXPECT().TouchAlertLastRun(mock.Anything, "a1").Return(nil)

	var sent []notify.MatchPayload
	mn.EXPECT().SendMatchBatch(mock.Anything, "High ROI FR", mock.Anything).
		Run(func(_ context.Context, _ string, matches []notify.MatchPayload) { sent = matches }).
		Return(nil)

	eng := newTestEngine(ms, mn)
	res, err := eng.EvaluateAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, 1, res.ProductsCount)
	require.Len(t, sent, 1)
	assert.Equal(t, "B0AAAA", sent[0].ASIN)
}

func TestEvaluateAlert_NoMatches(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	ms.EXPECT().GetAlert(mock.Anything, "a1").Return(activeAlert("a1"), nil)
	ms.EXPECT().QueryScores(mock.Anything, mock.Anything).Return(nil, 0, nil)
	ms.EXPECT().TouchAlertLastRun(mock.Anything, "a1").Return(nil)

	eng := newTestEngine(ms, mn)
	res, err := eng.EvaluateAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Zero(t, res.ProductsCount)
	assert.NotNil(t, res.Products, "empty result still serializes as a list")
	mn.AssertNotCalled(t, "SendMatchBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestEvaluateAlert_NotificationFailureDoesNotFailRun(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	ms.EXPECT().GetAlert(mock.Anything, "a1").Return(activeAlert("a1"), nil)
	ms.EXPECT().QueryScores(mock.Anything, mock.Anything).
		Return([]domain.ScoreRow{scoreRow("B0AAAA", "108.51")}, 1, nil)
	ms.EXPECT().TouchAlertLastRun(mock.Anything, "a1").Return(nil)
	mn.EXPECT().SendMatchBatch(mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	eng := newTestEngine(ms, mn)
	res, err := eng.EvaluateAlert(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, 1, res.ProductsCount)
}

func TestEvaluateAlert_TouchesLastRunEvenWithoutMatches(t *testing.T) {
	t.Parallel()

	ms, mn := newMocks(t)
	ms.EXPECT().GetAlert(mock.Anything, "a1").Return(activeAlert("a1"), nil)
	ms.EXPECT().QueryScores(mock.Anything, mock.Anything).Return([]domain.ScoreRow{}, 0, nil)
	ms.EXPECT().TouchAlertLastRun(mock.Anything, "a1").Return(nil).Once()

	eng := newTestEngine(ms, mn)
	_, err := eng.EvaluateAlert(context.Background(), "a1")
	require.NoError(t, err)
}
