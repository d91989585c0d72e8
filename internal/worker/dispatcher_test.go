package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arbitrack/internal/engine"
	storeMocks "arbitrack/internal/store/mocks"
	domain "arbitrack/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDispatcher(ms *storeMocks.MockStore, opts ...Option) *Dispatcher {
	eng := engine.NewEngine(ms, nil, engine.WithLogger(quietLogger()))
	return NewDispatcher(ms, eng, append([]Option{WithLogger(quietLogger())}, opts...)...)
}

func TestExecute_RefreshJobCompletes(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetSetting(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	ms.EXPECT().ListCandidateProducts(mock.Anything, "FR").Return(nil, nil)

	var result json.RawMessage
	ms.EXPECT().CompleteJob(mock.Anything, "j1", mock.Anything).
		Run(func(_ context.Context, _ string, payload json.RawMessage) { result = payload }).
		Return(nil)

	d := newTestDispatcher(ms)
	d.execute(context.Background(), &domain.Job{
		ID:     "j1",
		Type:   domain.JobRefreshScores,
		Params: json.RawMessage(`{"marketplace": "FR"}`),
	})

	var res engine.RefreshResult
	require.NoError(t, json.Unmarshal(result, &res))
	assert.Zero(t, res.ScoresUpdated)
	assert.Equal(t, "FR", res.Marketplace)
}

func TestExecute_AlertJobFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetAlert(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	var errText string
	ms.EXPECT().FailJob(mock.Anything, "j2", mock.Anything).
		Run(func(_ context.Context, _ string, msg string) { errText = msg }).
		Return(nil)

	d := newTestDispatcher(ms)
	d.execute(context.Background(), &domain.Job{
		ID:     "j2",
		Type:   domain.JobRunAlert,
		Params: json.RawMessage(`{"alert_id": "missing"}`),
	})

	assert.Contains(t, errText, "not found")
}

func TestExecute_MalformedParams(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().FailJob(mock.Anything, "j3", mock.Anything).Return(nil)

	d := newTestDispatcher(ms)
	d.execute(context.Background(), &domain.Job{
		ID:     "j3",
		Type:   domain.JobRunAlert,
		Params: json.RawMessage(`{`),
	})
}

func TestExecute_UnknownJobType(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)

	var errText string
	ms.EXPECT().FailJob(mock.Anything, "j4", mock.Anything).
		Run(func(_ context.Context, _ string, msg string) { errText = msg }).
		Return(nil)

	d := newTestDispatcher(ms)
	d.execute(context.Background(), &domain.Job{ID: "j4", Type: "bogus"})

	assert.Contains(t, errText, "unknown job type")
}

func TestRun_ClaimsAndStops(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetSetting(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Maybe()

	job := domain.Job{ID: "j1", Type: domain.JobRefreshScores, Status: domain.JobRunning}
	ms.EXPECT().ClaimJobs(mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Job{job}, nil).Once()
	ms.EXPECT().ClaimJobs(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Maybe()
	ms.EXPECT().ListCandidateProducts(mock.Anything, "").Return(nil, nil).Maybe()

	done := make(chan struct{})
	ms.EXPECT().CompleteJob(mock.Anything, "j1", mock.Anything).
		RunAndReturn(func(context.Context, string, json.RawMessage) error {
			close(done)
			return nil
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	d := newTestDispatcher(ms, WithWorkers(1), WithPollInterval(10*time.Millisecond))
	go func() { errCh <- d.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was never completed")
	}

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
