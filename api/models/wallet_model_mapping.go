package models

import (
	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/wallet"
)

func ToWalletResponse(rhs db.Wallet) WalletResponse {
	return WalletResponse{
		ID:             rhs.ID,
		UserID:         ID(rhs.UserID),
		AvailableCents: rhs.AvailableCents,
		HeldCents:      rhs.HeldCents,
		Available:      currency.FormatCents(rhs.AvailableCents),
		Held:           currency.FormatCents(rhs.HeldCents),
		Currency:       rhs.Currency,
		UpdatedAt:      rhs.UpdatedAt,
	}
}

func ToWalletTransactionResponse(rhs db.WalletTransaction) WalletTransactionResponse {
	return WalletTransactionResponse{
		ID:                  rhs.ID,
		Type:                rhs.Type,
		Status:              rhs.Status,
		AmountCents:         rhs.AmountCents,
		Amount:              currency.FormatCents(rhs.AmountCents),
		AvailableDeltaCents: rhs.AvailableDeltaCents,
		HeldDeltaCents:      rhs.HeldDeltaCents,
		ProjectID:           optUUID(rhs.ProjectID),
		MilestoneID:         optUUID(rhs.MilestoneID),
		Reference:           optString(rhs.Reference),
		Note:                optString(rhs.Note),
		CreatedAt:           rhs.CreatedAt,
	}
}

func ToWalletTransactionCollectionResponse(txs []db.WalletTransaction) WalletTransactionCollectionResponse {
	response := make(WalletTransactionCollectionResponse, len(txs))
	for i, tx := range txs {
		response[i] = ToWalletTransactionResponse(tx)
	}
	return response
}

func ToReconciliationResponse(rhs wallet.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		WalletID:             rhs.WalletID,
		AvailableCents:       rhs.AvailableCents,
		HeldCents:            rhs.HeldCents,
		LedgerAvailableCents: rhs.LedgerAvail,
		LedgerHeldCents:      rhs.LedgerHeld,
		Balanced:             rhs.Balanced,
	}
}
