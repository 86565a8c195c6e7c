package wallet

import (
	"context"
	"fmt"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

type WalletService struct {
	store    db.Store
	logger   *logging.Logger
	currency string
}

func NewWalletService(store db.Store, logger *logging.Logger, currency string) *WalletService {
	return &WalletService{
		store:    store,
		logger:   logger,
		currency: currency,
	}
}

func (w *WalletService) Currency() string {
	return w.currency
}

// GetWallet returns the user's wallet, creating an empty one on first touch.
func (w *WalletService) GetWallet(ctx context.Context, userID int64) (db.Wallet, error) {
	return w.store.GetOrCreateWallet(ctx, db.GetOrCreateWalletParams{UserID: userID, Currency: w.currency})
}

// GetOrCreate is GetWallet inside an open transaction.
func (w *WalletService) GetOrCreate(ctx context.Context, q db.Querier, userID int64) (db.Wallet, error) {
	return q.GetOrCreateWallet(ctx, db.GetOrCreateWalletParams{UserID: userID, Currency: w.currency})
}

// Adjust applies both deltas to the user's wallet and appends the matching
// transaction row. It must run inside the caller's transaction; a negative
// delta larger than the current balance fails with ErrInsufficientFunds and
// leaves the wallet untouched.
func (w *WalletService) Adjust(ctx context.Context, q db.Querier, a Adjustment) (db.Wallet, db.WalletTransaction, error) {
	if a.AmountCents <= 0 {
		return db.Wallet{}, db.WalletTransaction{}, NewWalletError(ErrInvalidAmount, a.UserID)
	}

	wallet, err := w.GetOrCreate(ctx, q, a.UserID)
	if err != nil {
		return db.Wallet{}, db.WalletTransaction{}, fmt.Errorf("get wallet: %w", err)
	}

	updated, err := q.AdjustWalletBalance(ctx, db.AdjustWalletBalanceParams{
		ID:             wallet.ID,
		AvailableDelta: a.AvailableDelta,
		HeldDelta:      a.HeldDelta,
	})
	if db.IsNoRows(err) || db.IsCheckViolation(err) {
		return db.Wallet{}, db.WalletTransaction{}, NewWalletError(ErrInsufficientFunds, a.UserID)
	} else if err != nil {
		return db.Wallet{}, db.WalletTransaction{}, fmt.Errorf("adjust wallet: %w", err)
	}

	tx, err := q.CreateWalletTransaction(ctx, db.CreateWalletTransactionParams{
		WalletID:            wallet.ID,
		Type:                a.Type,
		AmountCents:         a.AmountCents,
		AvailableDeltaCents: a.AvailableDelta,
		HeldDeltaCents:      a.HeldDelta,
		ProjectID:           a.ProjectID,
		MilestoneID:         a.MilestoneID,
		Reference:           nullString(a.Reference),
		Note:                nullString(a.Note),
	})
	if err != nil {
		return db.Wallet{}, db.WalletTransaction{}, fmt.Errorf("record wallet transaction: %w", err)
	}

	w.logger.WithFields(logrus.Fields{
		"user_id":         a.UserID,
		"type":            a.Type,
		"available_delta": a.AvailableDelta,
		"held_delta":      a.HeldDelta,
	}).Debug("wallet adjusted")

	return updated, tx, nil
}

// CreditDeposit lands a gateway payment in the user's available balance.
// A reference that was already credited returns the original transaction
// with replayed set and moves no money.
func (w *WalletService) CreditDeposit(ctx context.Context, userID, amountCents int64, reference, note string) (tx db.WalletTransaction, replayed bool, err error) {
	if reference == "" {
		return db.WalletTransaction{}, false, NewWalletError(ErrInvalidAmount, userID, fmt.Errorf("reference is required"))
	}

	err = w.store.ExecTx(ctx, func(q db.Querier) error {
		wallet, err := w.GetOrCreate(ctx, q, userID)
		if err != nil {
			return err
		}
		existing, err := q.GetWalletTransactionByReference(ctx, db.GetWalletTransactionByReferenceParams{
			WalletID:  wallet.ID,
			Reference: nullString(reference),
		})
		if err == nil {
			tx, replayed = existing, true
			return nil
		} else if !db.IsNoRows(err) {
			return err
		}

		_, tx, err = w.Adjust(ctx, q, Adjustment{
			UserID:         userID,
			Type:           db.WalletTxDeposit,
			AmountCents:    amountCents,
			AvailableDelta: amountCents,
			Reference:      reference,
			Note:           note,
		})
		return err
	})

	if db.IsDuplicate(err) {
		// Lost the race to a concurrent credit of the same reference.
		wallet, werr := w.GetWallet(ctx, userID)
		if werr != nil {
			return db.WalletTransaction{}, false, werr
		}
		existing, rerr := w.store.GetWalletTransactionByReference(ctx, db.GetWalletTransactionByReferenceParams{
			WalletID:  wallet.ID,
			Reference: nullString(reference),
		})
		return existing, true, rerr
	}
	if err != nil {
		return db.WalletTransaction{}, false, err
	}

	if !replayed {
		w.logger.WithFields(logrus.Fields{"user_id": userID, "amount_cents": amountCents, "reference": reference}).Info("deposit credited")
	}
	return tx, replayed, nil
}

func (w *WalletService) ListTransactions(ctx context.Context, userID int64, limit, offset int32) ([]db.WalletTransaction, error) {
	wallet, err := w.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return w.store.ListWalletTransactions(ctx, db.ListWalletTransactionsParams{
		WalletID: wallet.ID,
		Limit:    limit,
		Offset:   offset,
	})
}

// Reconcile checks that the balances equal the sum of every transaction
// delta ever posted to the wallet.
func (w *WalletService) Reconcile(ctx context.Context, userID int64) (Reconciliation, error) {
	var rec Reconciliation
	err := w.store.ExecTx(ctx, func(q db.Querier) error {
		wallet, err := q.GetWalletForUpdate(ctx, userID)
		if db.IsNoRows(err) {
			return NewWalletError(ErrWalletNotFound, userID)
		} else if err != nil {
			return err
		}
		sums, err := q.SumWalletTransactionDeltas(ctx, wallet.ID)
		if err != nil {
			return err
		}
		rec = Reconciliation{
			WalletID:       wallet.ID,
			AvailableCents: wallet.AvailableCents,
			HeldCents:      wallet.HeldCents,
			LedgerAvail:    sums.AvailableTotal,
			LedgerHeld:     sums.HeldTotal,
			Balanced:       sums.AvailableTotal == wallet.AvailableCents && sums.HeldTotal == wallet.HeldCents,
		}
		return nil
	})
	if err != nil {
		return Reconciliation{}, err
	}

	if !rec.Balanced {
		w.logger.WithFields(logrus.Fields{
			"user_id":   userID,
			"wallet_id": rec.WalletID,
			"available": rec.AvailableCents,
			"held":      rec.HeldCents,
			"ledger_av": rec.LedgerAvail,
			"ledger_hd": rec.LedgerHeld,
		}).Error("wallet balance drift detected")
	}
	return rec, nil
}
