package hooks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/services/notification"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingNotifier struct{ calls atomic.Int32 }

func (f *failingNotifier) NotifyProjectParties(context.Context, uuid.UUID, int64, notification.Message) error {
	f.calls.Add(1)
	return errors.New("smtp down")
}

type keyLocker struct{ keys []string }

func (l *keyLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	l.keys = append(l.keys, key)
	return fn(ctx)
}

func TestNilHooksAreNoOps(t *testing.T) {
	var h *Hooks
	ctx := context.Background()

	h.Notify(ctx, uuid.New(), 1, notification.Message{})
	h.Fire(ctx, 1, "milestone.funded", nil)
	h.AdvanceStages(ctx, uuid.New(), "Washing", 1)
	h.Wait()

	ran := false
	require.NoError(t, h.WithLock(ctx, "k", func(context.Context) error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
}

func TestNotifyFailureIsSwallowed(t *testing.T) {
	n := &failingNotifier{}
	h := &Hooks{Notifier: n}

	h.Notify(context.Background(), uuid.New(), 1, notification.Message{Type: "x"})
	assert.Equal(t, int32(1), n.calls.Load())
}

func TestWithLockUsesLocker(t *testing.T) {
	l := &keyLocker{}
	h := &Hooks{Locker: l}

	err := h.WithLock(context.Background(), "lock:milestone:1", func(context.Context) error {
		return errors.New("boom")
	})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []string{"lock:milestone:1"}, l.keys)
}

func TestGoSurvivesCallerCancellation(t *testing.T) {
	h := &Hooks{AsyncTimeout: time.Second}
	ctx, cancel := context.WithCancel(context.Background())

	var done atomic.Bool
	h.Go(ctx, "test", func(ctx context.Context) error {
		cancel()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
			done.Store(true)
			return nil
		}
	})
	h.Wait()
	assert.True(t, done.Load())
}
