package wallet

import (
	"database/sql"

	"github.com/google/uuid"
)

// Adjustment is one balance change together with the transaction row that
// explains it. Deltas are signed; AmountCents is the positive magnitude
// shown to the user.
type Adjustment struct {
	UserID         int64
	Type           string
	AmountCents    int64
	AvailableDelta int64
	HeldDelta      int64
	ProjectID      uuid.NullUUID
	MilestoneID    uuid.NullUUID
	Reference      string
	Note           string
}

// Reconciliation compares a wallet's running balances with the sum of its
// transaction deltas.
type Reconciliation struct {
	WalletID       uuid.UUID `json:"wallet_id"`
	AvailableCents int64     `json:"available_cents"`
	HeldCents      int64     `json:"held_cents"`
	LedgerAvail    int64     `json:"ledger_available_cents"`
	LedgerHeld     int64     `json:"ledger_held_cents"`
	Balanced       bool      `json:"balanced"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func NullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}
