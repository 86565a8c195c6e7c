package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *RedisService {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisServiceFromClient(client)
}

func TestSetGetDelete(t *testing.T) {
	r := newTestService(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "v", time.Minute))
	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, r.Delete(ctx, "k"))
	_, err = r.Get(ctx, "k")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestWithLockSerializes(t *testing.T) {
	r := newTestService(t)
	ctx := context.Background()

	var mu sync.Mutex
	inside, maxInside := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := r.WithLock(ctx, "lock:milestone:x", func(ctx context.Context) error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()
				time.Sleep(5 * time.Millisecond)
				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxInside)
}

func TestWithLockBusy(t *testing.T) {
	r := newTestService(t)
	r.SetLockConfig(LockConfig{Expiry: time.Second, Tries: 1, RetryDelay: time.Millisecond})
	ctx := context.Background()

	err := r.WithLock(ctx, "lock:a", func(ctx context.Context) error {
		return r.WithLock(ctx, "lock:a", func(context.Context) error { return nil })
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLockBusy))
	assert.Equal(t, models.KindConflict, models.KindOf(err))

	sentinel := errors.New("boom")
	err = r.WithLock(ctx, "lock:b", func(context.Context) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}
