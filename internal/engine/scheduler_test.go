package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "arbitrack/internal/store/mocks"
	domain "arbitrack/pkg/types"
)

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	sched, err := NewScheduler(ms, 15*time.Minute, time.Hour, quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 2)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	sched, err := NewScheduler(ms, time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	stopCtx := sched.Stop()

	select {
	case <-stopCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}

func TestScheduler_RefreshEnqueue(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().EnqueueJob(mock.Anything, domain.JobRefreshScores, mock.Anything).
		Return(&domain.Job{ID: "j1", Type: domain.JobRefreshScores, Status: domain.JobPending}, nil).Once()

	sched, err := NewScheduler(ms, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.runRefreshEnqueue()
}

func TestScheduler_Recovery(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().RecoverStaleJobs(mock.Anything, staleJobAge).Return(2, nil).Once()

	sched, err := NewScheduler(ms, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.runRecovery()
}
