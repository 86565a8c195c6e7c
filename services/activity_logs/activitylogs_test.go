package activitylogs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListRecent(t *testing.T) {
	a := NewActivityLog(memstore.New(), logging.NewNopLogger())
	ctx := context.Background()
	advanceID := uuid.New()

	a.Record(ctx, Entry{Type: AdvanceRequested, ActorID: 2, CapitalAdvanceID: advanceID, Summary: "first"})
	log, err := a.Create(ctx, Entry{
		Type:     AdvanceApproved,
		ActorID:  9,
		Summary:  "second",
		Metadata: map[string]interface{}{"approved_cents": 7500},
	})
	require.NoError(t, err)
	assert.True(t, log.Metadata.Valid)

	var meta map[string]int64
	require.NoError(t, json.Unmarshal(log.Metadata.RawMessage, &meta))
	assert.EqualValues(t, 7500, meta["approved_cents"])

	recent, err := a.GetRecent(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Summary)
	assert.Equal(t, advanceID, recent[1].CapitalAdvanceID.UUID)
	assert.False(t, recent[1].ProjectID.Valid)
}
