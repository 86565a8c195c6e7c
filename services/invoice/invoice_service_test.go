package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-2026-000042", FormatNumber(2026, 42))
	assert.Equal(t, "INV-2026-1234567", FormatNumber(2026, 1234567))
}

func TestCreateInvoice(t *testing.T) {
	svc := NewInvoiceService(memstore.New(), logging.NewNopLogger(), "INR")
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	first, err := svc.Create(ctx, Request{Type: TypeRelease, UserID: 2, AmountCents: 8000, Description: "Full release for milestone: Wash"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, Request{Type: TypePartialRelease, UserID: 2, AmountCents: 500, FeeCents: 20, Description: "Partial release for milestone: Dry"})
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-000001", first.Number)
	assert.Equal(t, fmt.Sprintf("INV-2026-%06d", 2), second.Number)
	assert.EqualValues(t, 520, second.TotalCents)
	assert.False(t, second.ProjectID.Valid)

	var data Data
	require.NoError(t, json.Unmarshal(second.Data.RawMessage, &data))
	assert.Equal(t, "INR", data.Currency)
	require.Len(t, data.LineItems, 2)
	assert.Equal(t, "Platform fee", data.LineItems[1].Label)

	list, err := svc.ListForUser(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
