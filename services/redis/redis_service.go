package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var ErrLockBusy = models.NewKindedError(models.KindConflict, "RESOURCE_BUSY", "another request is already working on this resource, retry shortly")

type RedisService struct {
	client *redis.Client
	rs     *redsync.Redsync
	lock   LockConfig
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type LockConfig struct {
	Expiry     time.Duration
	Tries      int
	RetryDelay time.Duration
}

func defaultLockConfig() LockConfig {
	return LockConfig{
		Expiry:     10 * time.Second,
		Tries:      32,
		RetryDelay: 100 * time.Millisecond,
	}
}

func NewRedisService(config *RedisConfig) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return NewRedisServiceFromClient(client), nil
}

// NewRedisServiceFromClient wraps an existing client without pinging it.
func NewRedisServiceFromClient(client *redis.Client) *RedisService {
	return &RedisService{
		client: client,
		rs:     redsync.New(goredis.NewPool(client)),
		lock:   defaultLockConfig(),
	}
}

// SetLockConfig overrides how long locks live and how hard WithLock tries.
func (r *RedisService) SetLockConfig(c LockConfig) {
	r.lock = c
}

// WithLock runs fn while holding the distributed mutex named key. The lock
// is released when fn returns, whatever the outcome.
func (r *RedisService) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	mutex := r.rs.NewMutex(key,
		redsync.WithExpiry(r.lock.Expiry),
		redsync.WithTries(r.lock.Tries),
		redsync.WithRetryDelay(r.lock.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		if errors.Is(err, redsync.ErrFailed) || strings.Contains(err.Error(), "lock already taken") {
			return fmt.Errorf("%w: %s", ErrLockBusy, key)
		}
		return fmt.Errorf("acquire lock %s: %w", key, err)
	}
	defer mutex.UnlockContext(context.Background())

	return fn(ctx)
}

// Set stores a key-value pair with optional expiration
func (r *RedisService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func (r *RedisService) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// Delete removes a key
func (r *RedisService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping reports whether the server is reachable.
func (r *RedisService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisService) Close() error {
	return r.client.Close()
}
