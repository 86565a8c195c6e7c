package features

import (
	"context"
	"testing"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDefaultsOff(t *testing.T) {
	svc := NewFeatureService(memstore.New(), logging.NewNopLogger(), time.Minute)
	caps, err := svc.Lookup(context.Background(), 1)
	require.NoError(t, err)
	for _, k := range AllKeys {
		assert.False(t, caps.Enabled(k), k)
	}
}

func TestSetInvalidatesCache(t *testing.T) {
	svc := NewFeatureService(memstore.New(), logging.NewNopLogger(), time.Minute)
	ctx := context.Background()

	caps, err := svc.Lookup(ctx, 1)
	require.NoError(t, err)
	assert.False(t, caps.Enabled(PartialRelease))

	_, err = svc.Set(ctx, models.Actor{UserID: 99}, 1, PartialRelease, true)
	require.NoError(t, err)

	caps, err = svc.Lookup(ctx, 1)
	require.NoError(t, err)
	assert.True(t, caps.Enabled(PartialRelease))
}

func TestLookupServesFromCache(t *testing.T) {
	store := memstore.New()
	svc := NewFeatureService(store, logging.NewNopLogger(), time.Minute)
	ctx := context.Background()

	_, err := svc.Lookup(ctx, 1)
	require.NoError(t, err)

	// written behind the service's back
	_, err = store.UpsertFeatureFlag(ctx, db.UpsertFeatureFlagParams{UserID: 1, Key: string(WalletEnabled), Enabled: true})
	require.NoError(t, err)

	caps, err := svc.Lookup(ctx, 1)
	require.NoError(t, err)
	assert.False(t, caps.Enabled(WalletEnabled))

	svc.Flush()
	caps, err = svc.Lookup(ctx, 1)
	require.NoError(t, err)
	assert.True(t, caps.Enabled(WalletEnabled))
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("PARTIAL_RELEASE")
	require.NoError(t, err)
	assert.Equal(t, PartialRelease, k)

	_, err = ParseKey("TELEPORT")
	assert.ErrorIs(t, err, ErrUnknownFeature)
}
