package models

import (
	"time"

	"github.com/google/uuid"
)

type WalletResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         ID        `json:"user_id"`
	AvailableCents int64     `json:"available_cents"`
	HeldCents      int64     `json:"held_cents"`
	Available      string    `json:"available"`
	Held           string    `json:"held"`
	Currency       string    `json:"currency"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type WalletTransactionCollectionResponse []WalletTransactionResponse

type WalletTransactionResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Type                string     `json:"type"`
	Status              string     `json:"status"`
	AmountCents         int64      `json:"amount_cents"`
	Amount              string     `json:"amount"`
	AvailableDeltaCents int64      `json:"available_delta_cents"`
	HeldDeltaCents      int64      `json:"held_delta_cents"`
	ProjectID           *uuid.UUID `json:"project_id,omitempty"`
	MilestoneID         *uuid.UUID `json:"milestone_id,omitempty"`
	Reference           *string    `json:"reference,omitempty"`
	Note                *string    `json:"note,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

type ReconciliationResponse struct {
	WalletID             uuid.UUID `json:"wallet_id"`
	AvailableCents       int64     `json:"available_cents"`
	HeldCents            int64     `json:"held_cents"`
	LedgerAvailableCents int64     `json:"ledger_available_cents"`
	LedgerHeldCents      int64     `json:"ledger_held_cents"`
	Balanced             bool      `json:"balanced"`
}

type DepositResponse struct {
	Transaction WalletTransactionResponse `json:"transaction"`
	Replayed    bool                      `json:"replayed"`
}
