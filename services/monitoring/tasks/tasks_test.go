package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecurringTaskRunsUntilStopped(t *testing.T) {
	ts := NewTaskScheduler(logging.NewNopLogger())
	var runs atomic.Int32

	_, err := ts.AddTask("sweep", "sweep", func(context.Context) error {
		runs.Add(1)
		return nil
	}, 5*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, ts.ScheduleTask("sweep", 0))

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	ts.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestRunTaskReportsErrors(t *testing.T) {
	ts := NewTaskScheduler(logging.NewNopLogger())
	boom := errors.New("boom")

	task, err := ts.AddTask("once", "once", func(context.Context) error { return boom }, 0)
	require.NoError(t, err)
	require.NoError(t, ts.RunTask("once"))

	select {
	case got := <-task.ErrorChan:
		assert.ErrorIs(t, got, boom)
	case <-time.After(time.Second):
		t.Fatal("task error was not reported")
	}
	ts.Stop()

	last, err := ts.LastRun("once")
	require.NoError(t, err)
	assert.False(t, last.IsZero())
}

func TestAddTaskRejectsDuplicates(t *testing.T) {
	ts := NewTaskScheduler(logging.NewNopLogger())
	_, err := ts.AddTask("a", "a", func(context.Context) error { return nil }, 0)
	require.NoError(t, err)
	_, err = ts.AddTask("a", "a", func(context.Context) error { return nil }, 0)
	assert.Error(t, err)
	assert.Error(t, ts.RunTask("missing"))
}
