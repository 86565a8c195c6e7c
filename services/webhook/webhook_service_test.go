package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	body      []byte
	signature string
}

func newReceiver(t *testing.T, status *atomic.Int32) (*httptest.Server, func() []received) {
	var mu sync.Mutex
	var got []received
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		got = append(got, received{body: body, signature: r.Header.Get(SignatureHeader)})
		mu.Unlock()
		w.WriteHeader(int(status.Load()))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []received {
		mu.Lock()
		defer mu.Unlock()
		return append([]received(nil), got...)
	}
}

func undelivered(t *testing.T, store db.Querier) []db.WebhookEvent {
	events, err := store.ListUndeliveredWebhookEvents(context.Background(), db.ListUndeliveredWebhookEventsParams{
		MaxAttempts:   100,
		CreatedBefore: time.Now().Add(time.Hour),
		MaxRows:       100,
	})
	require.NoError(t, err)
	return events
}

func TestFireSignsAndDelivers(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv, got := newReceiver(t, &status)

	store := memstore.New()
	svc := NewWebhookService(store, logging.NewNopLogger(), Config{InlineTries: 1})
	ctx := context.Background()

	_, err := svc.RegisterEndpoint(ctx, 1, srv.URL, "s3cret", []string{MilestoneFunded})
	require.NoError(t, err)
	_, err = svc.RegisterEndpoint(ctx, 1, srv.URL, "", []string{DisputeOpened})
	require.NoError(t, err)

	require.NoError(t, svc.Fire(ctx, 1, MilestoneFunded, map[string]interface{}{"amountCents": 20000}))
	svc.Wait()

	calls := got()
	require.Len(t, calls, 1)
	assert.True(t, Verify("s3cret", calls[0].body, calls[0].signature))

	var env struct {
		Event string                 `json:"event"`
		Data  map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(calls[0].body, &env))
	assert.Equal(t, MilestoneFunded, env.Event)
	assert.EqualValues(t, 20000, env.Data["amountCents"])

	assert.Empty(t, undelivered(t, store))
}

func TestFailedDeliveryIsSwept(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusInternalServerError)
	srv, got := newReceiver(t, &status)

	store := memstore.New()
	svc := NewWebhookService(store, logging.NewNopLogger(), Config{InlineTries: 1, MaxAttempts: 3})
	ctx := context.Background()

	_, err := svc.RegisterEndpoint(ctx, 1, srv.URL, "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Fire(ctx, 1, DisputeOpened, map[string]interface{}{"reason": "late"}))
	svc.Wait()

	pending := undelivered(t, store)
	require.Len(t, pending, 1)
	assert.Equal(t, db.WebhookFailed, pending[0].Status)
	assert.EqualValues(t, 1, pending[0].Attempts)
	assert.EqualValues(t, http.StatusInternalServerError, pending[0].ResponseStatus.Int32)

	status.Store(http.StatusNoContent)
	n, err := svc.Sweep(ctx, -time.Minute, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, got(), 2)
	assert.Empty(t, undelivered(t, store))
}

func TestRegisterEndpointRejectsBadURL(t *testing.T) {
	svc := NewWebhookService(memstore.New(), logging.NewNopLogger(), Config{})
	_, err := svc.RegisterEndpoint(context.Background(), 1, "ftp://example.com/hook", "", nil)
	assert.ErrorIs(t, err, ErrInvalidURL)
	_, err = svc.RegisterEndpoint(context.Background(), 1, "not a url", "", nil)
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("", MilestoneFunded))
	assert.True(t, Matches("*", MilestoneFunded))
	assert.True(t, Matches("dispute.opened, milestone.funded", MilestoneFunded))
	assert.False(t, Matches("dispute.opened", MilestoneFunded))
}

type disabledEndpoints struct {
	db.Querier
}

func (d disabledEndpoints) GetWebhookEndpoint(ctx context.Context, id uuid.UUID) (db.WebhookEndpoint, error) {
	ep, err := d.Querier.GetWebhookEndpoint(ctx, id)
	ep.Enabled = false
	return ep, err
}

func TestSweepRetiresEventsOfDisabledEndpoints(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusInternalServerError)
	srv, got := newReceiver(t, &status)

	store := memstore.New()
	svc := NewWebhookService(store, logging.NewNopLogger(), Config{InlineTries: 1, MaxAttempts: 3})
	ctx := context.Background()

	_, err := svc.RegisterEndpoint(ctx, 1, srv.URL, "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Fire(ctx, 1, MilestoneFunded, map[string]interface{}{"amount": 100}))
	svc.Wait()
	require.Len(t, got(), 1)

	sweeper := NewWebhookService(disabledEndpoints{store}, logging.NewNopLogger(), Config{MaxAttempts: 3})
	n, err := sweeper.Sweep(ctx, -time.Minute, 10)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, got(), 1)

	pending := undelivered(t, store)
	require.Len(t, pending, 1)
	assert.Equal(t, db.WebhookFailed, pending[0].Status)
	assert.EqualValues(t, 3, pending[0].Attempts)

	events, err := store.ListUndeliveredWebhookEvents(ctx, db.ListUndeliveredWebhookEventsParams{
		MaxAttempts:   3,
		CreatedBefore: time.Now().Add(time.Hour),
		MaxRows:       10,
	})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestInlineWindowCoversEveryTry(t *testing.T) {
	svc := NewWebhookService(memstore.New(), logging.NewNopLogger(), Config{Timeout: 10 * time.Second, InlineTries: 3})
	assert.Greater(t, svc.InlineWindow(), 30*time.Second)

	single := NewWebhookService(memstore.New(), logging.NewNopLogger(), Config{Timeout: 2 * time.Second, InlineTries: 1})
	assert.Equal(t, 2*time.Second, single.InlineWindow())
}
