package wallet

import (
	"context"
	"testing"

	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*WalletService, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return NewWalletService(store, logging.NewNopLogger(), "INR"), store
}

func TestGetWalletCreatesOnFirstTouch(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	w, err := svc.GetWallet(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.AvailableCents)
	assert.Equal(t, int64(0), w.HeldCents)
	assert.Equal(t, "INR", w.Currency)

	again, err := svc.GetWallet(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, w.ID, again.ID)
}

func TestAdjustMovesAvailableToHeld(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	_, _, err := svc.CreditDeposit(ctx, 1, 10000, "pay_1", "")
	require.NoError(t, err)

	err = store.ExecTx(ctx, func(q db.Querier) error {
		_, _, err := svc.Adjust(ctx, q, Adjustment{UserID: 1, Type: db.WalletTxHold, AmountCents: 4000, AvailableDelta: -4000, HeldDelta: 4000})
		return err
	})
	require.NoError(t, err)

	w, err := svc.GetWallet(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), w.AvailableCents)
	assert.Equal(t, int64(4000), w.HeldCents)
}

func TestAdjustInsufficientFundsLeavesNoTrace(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	_, _, err := svc.CreditDeposit(ctx, 1, 1000, "pay_1", "")
	require.NoError(t, err)

	err = store.ExecTx(ctx, func(q db.Querier) error {
		_, _, err := svc.Adjust(ctx, q, Adjustment{UserID: 1, Type: db.WalletTxHold, AmountCents: 1001, AvailableDelta: -1001, HeldDelta: 1001})
		return err
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	txs, err := svc.ListTransactions(ctx, 1, 50, 0)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestAdjustRejectsNonPositiveAmount(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	err := store.ExecTx(ctx, func(q db.Querier) error {
		_, _, err := svc.Adjust(ctx, q, Adjustment{UserID: 1, Type: db.WalletTxDeposit, AmountCents: 0})
		return err
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreditDepositIsIdempotentPerReference(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, replayed, err := svc.CreditDeposit(ctx, 5, 2500, "pay_abc", "gateway")
	require.NoError(t, err)
	assert.False(t, replayed)

	second, replayed, err := svc.CreditDeposit(ctx, 5, 2500, "pay_abc", "gateway")
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, first.ID, second.ID)

	w, err := svc.GetWallet(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), w.AvailableCents)
}

func TestReconcileMatchesTransactionDeltas(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	_, _, err := svc.CreditDeposit(ctx, 2, 9000, "pay_1", "")
	require.NoError(t, err)
	err = store.ExecTx(ctx, func(q db.Querier) error {
		_, _, err := svc.Adjust(ctx, q, Adjustment{UserID: 2, Type: db.WalletTxHold, AmountCents: 3000, AvailableDelta: -3000, HeldDelta: 3000})
		return err
	})
	require.NoError(t, err)

	rec, err := svc.Reconcile(ctx, 2)
	require.NoError(t, err)
	assert.True(t, rec.Balanced)
	assert.Equal(t, int64(6000), rec.LedgerAvail)
	assert.Equal(t, int64(3000), rec.LedgerHeld)
}

func TestReconcileUnknownWallet(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Reconcile(context.Background(), 99)
	assert.ErrorIs(t, err, ErrWalletNotFound)
}
