//go:build integration

package db

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newPostgresStore starts a throwaway postgres, migrates it and returns a
// store over it.
func newPostgresStore(t *testing.T) *SQLStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("escrow"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, container.Terminate(ctx)) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := migrate.New("file://../migrations", dsn)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	conn, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewStore(conn, 3)
}

func TestIntegrationWalletGuardRejectsOverdraw(t *testing.T) {
	store := newPostgresStore(t)
	ctx := context.Background()

	w, err := store.GetOrCreateWallet(ctx, GetOrCreateWalletParams{UserID: 1, Currency: "INR"})
	require.NoError(t, err)
	_, err = store.AdjustWalletBalance(ctx, AdjustWalletBalanceParams{ID: w.ID, AvailableDelta: 1000})
	require.NoError(t, err)

	_, err = store.AdjustWalletBalance(ctx, AdjustWalletBalanceParams{ID: w.ID, AvailableDelta: -2000})
	assert.True(t, IsNoRows(err))

	_, err = store.AdjustWalletBalance(ctx, AdjustWalletBalanceParams{ID: w.ID, HeldDelta: -1})
	assert.True(t, IsNoRows(err))

	got, err := store.GetWalletByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.AvailableCents)
	assert.Equal(t, int64(0), got.HeldCents)
}

func TestIntegrationConcurrentDebitsNeverOverdraw(t *testing.T) {
	store := newPostgresStore(t)
	ctx := context.Background()

	w, err := store.GetOrCreateWallet(ctx, GetOrCreateWalletParams{UserID: 7, Currency: "INR"})
	require.NoError(t, err)
	_, err = store.AdjustWalletBalance(ctx, AdjustWalletBalanceParams{ID: w.ID, AvailableDelta: 500})
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.ExecTx(ctx, func(q Querier) error {
				locked, err := q.GetWalletForUpdate(ctx, 7)
				if err != nil {
					return err
				}
				if _, err := q.AdjustWalletBalance(ctx, AdjustWalletBalanceParams{ID: locked.ID, AvailableDelta: -100}); err != nil {
					return err
				}
				_, err = q.CreateWalletTransaction(ctx, CreateWalletTransactionParams{
					WalletID:            locked.ID,
					Type:                WalletTxHold,
					AmountCents:         100,
					AvailableDeltaCents: -100,
				})
				return err
			})
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), succeeded.Load())
	got, err := store.GetWalletByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.AvailableCents)

	sums, err := store.SumWalletTransactionDeltas(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-500), sums.AvailableTotal)
}

func TestIntegrationReleaseGuardsOnPreviousAmount(t *testing.T) {
	store := newPostgresStore(t)
	ctx := context.Background()

	p, err := store.CreateProject(ctx, CreateProjectParams{ClientID: 1, Title: "Hotel linen"})
	require.NoError(t, err)
	m, err := store.CreateMilestone(ctx, CreateMilestoneParams{ProjectID: p.ID, Title: "Washing", AmountCents: 20000})
	require.NoError(t, err)
	_, err = store.FundMilestone(ctx, FundMilestoneParams{ID: m.ID})
	require.NoError(t, err)
	_, err = store.SubmitMilestone(ctx, m.ID)
	require.NoError(t, err)

	released, err := store.ReleaseMilestone(ctx, ReleaseMilestoneParams{
		ID:                    m.ID,
		ReleasedCents:         8000,
		Status:                MilestoneSubmitted,
		ExpectedReleasedCents: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8000), released.ReleasedCents)

	// A second writer that read the pre-release row loses.
	_, err = store.ReleaseMilestone(ctx, ReleaseMilestoneParams{
		ID:                    m.ID,
		ReleasedCents:         8000,
		Status:                MilestoneSubmitted,
		ExpectedReleasedCents: 0,
	})
	assert.True(t, IsNoRows(err))

	released, err = store.ReleaseMilestone(ctx, ReleaseMilestoneParams{
		ID:                    m.ID,
		ReleasedCents:         20000,
		Status:                MilestoneReleased,
		ExpectedReleasedCents: 8000,
	})
	require.NoError(t, err)
	assert.Equal(t, MilestoneReleased, released.Status)
	assert.True(t, released.ReleasedAt.Valid)
}
