package memstore

import (
	"context"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
)

func (q *Queries) walletByUser(userID int64) (db.Wallet, bool) {
	for _, w := range q.t.wallets {
		if w.UserID == userID {
			return w, true
		}
	}
	return db.Wallet{}, false
}

func (q *Queries) GetOrCreateWallet(_ context.Context, arg db.GetOrCreateWalletParams) (db.Wallet, error) {
	defer q.lock()()
	if w, ok := q.walletByUser(arg.UserID); ok {
		return w, nil
	}
	now := q.now()
	w := db.Wallet{
		ID:        uuid.New(),
		UserID:    arg.UserID,
		Currency:  arg.Currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	q.t.wallets[w.ID] = w
	return w, nil
}

func (q *Queries) GetWalletByUserID(_ context.Context, userID int64) (db.Wallet, error) {
	defer q.lock()()
	w, ok := q.walletByUser(userID)
	if !ok {
		return noRows[db.Wallet]()
	}
	return w, nil
}

func (q *Queries) GetWalletForUpdate(ctx context.Context, userID int64) (db.Wallet, error) {
	return q.GetWalletByUserID(ctx, userID)
}

func (q *Queries) AdjustWalletBalance(_ context.Context, arg db.AdjustWalletBalanceParams) (db.Wallet, error) {
	defer q.lock()()
	w, ok := q.t.wallets[arg.ID]
	if !ok || w.AvailableCents+arg.AvailableDelta < 0 || w.HeldCents+arg.HeldDelta < 0 {
		return noRows[db.Wallet]()
	}
	w.AvailableCents += arg.AvailableDelta
	w.HeldCents += arg.HeldDelta
	w.UpdatedAt = q.now()
	q.t.wallets[w.ID] = w
	return w, nil
}

func (q *Queries) CreateWalletTransaction(_ context.Context, arg db.CreateWalletTransactionParams) (db.WalletTransaction, error) {
	defer q.lock()()
	if _, ok := q.t.wallets[arg.WalletID]; !ok {
		return db.WalletTransaction{}, foreignKey("wallet_transactions_wallet_id_fkey")
	}
	if arg.AmountCents <= 0 {
		return db.WalletTransaction{}, checkViolation("wallet_transactions_amount_cents_check")
	}
	if arg.Reference.Valid {
		for _, tx := range q.t.walletTxs {
			if tx.WalletID == arg.WalletID && tx.Reference.Valid && tx.Reference.String == arg.Reference.String {
				return db.WalletTransaction{}, duplicate("wallet_transactions_reference_key")
			}
		}
	}
	tx := db.WalletTransaction{
		ID:                  uuid.New(),
		WalletID:            arg.WalletID,
		Type:                arg.Type,
		AmountCents:         arg.AmountCents,
		AvailableDeltaCents: arg.AvailableDeltaCents,
		HeldDeltaCents:      arg.HeldDeltaCents,
		Status:              db.WalletTxPosted,
		ProjectID:           arg.ProjectID,
		MilestoneID:         arg.MilestoneID,
		Reference:           arg.Reference,
		Note:                arg.Note,
		CreatedAt:           q.now(),
	}
	q.t.walletTxs = append(q.t.walletTxs, tx)
	return tx, nil
}

func (q *Queries) GetWalletTransactionByReference(_ context.Context, arg db.GetWalletTransactionByReferenceParams) (db.WalletTransaction, error) {
	defer q.lock()()
	for _, tx := range q.t.walletTxs {
		if tx.WalletID == arg.WalletID && tx.Reference.Valid && arg.Reference.Valid && tx.Reference.String == arg.Reference.String {
			return tx, nil
		}
	}
	return noRows[db.WalletTransaction]()
}

func (q *Queries) ListWalletTransactions(_ context.Context, arg db.ListWalletTransactionsParams) ([]db.WalletTransaction, error) {
	defer q.lock()()
	out := []db.WalletTransaction{}
	for _, tx := range q.t.walletTxs {
		if tx.WalletID == arg.WalletID {
			out = append(out, tx)
		}
	}
	sortByCreated(out, func(tx db.WalletTransaction) time.Time { return tx.CreatedAt }, true)
	return page(out, arg.Limit, arg.Offset), nil
}

func (q *Queries) SumWalletTransactionDeltas(_ context.Context, walletID uuid.UUID) (db.SumWalletTransactionDeltasRow, error) {
	defer q.lock()()
	var row db.SumWalletTransactionDeltasRow
	for _, tx := range q.t.walletTxs {
		if tx.WalletID == walletID {
			row.AvailableTotal += tx.AvailableDeltaCents
			row.HeldTotal += tx.HeldDeltaCents
		}
	}
	return row, nil
}
