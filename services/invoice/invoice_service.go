package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sqlc-dev/pqtype"
)

// Invoice types.
const (
	TypeRelease        = "RELEASE"
	TypePartialRelease = "PARTIAL_RELEASE"
	TypeAdvancePayout  = "ADVANCE_PAYOUT"
	TypeCompensation   = "COMPENSATION"
)

type Request struct {
	Type        string
	UserID      int64
	AmountCents int64
	FeeCents    int64
	ProjectID   uuid.UUID
	MilestoneID uuid.UUID
	Description string
}

type LineItem struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amountCents"`
}

type Data struct {
	Description string     `json:"description"`
	LineItems   []LineItem `json:"lineItems"`
	Total       int64      `json:"total"`
	Currency    string     `json:"currency"`
	IssuedAt    time.Time  `json:"issuedAt"`
}

type InvoiceService struct {
	store    db.Querier
	logger   *logging.Logger
	currency string
	now      func() time.Time
}

func NewInvoiceService(store db.Querier, logger *logging.Logger, currency string) *InvoiceService {
	return &InvoiceService{
		store:    store,
		logger:   logger,
		currency: currency,
		now:      time.Now,
	}
}

// FormatNumber renders an invoice number such as INV-2026-000042.
func FormatNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%06d", year, seq)
}

func (i *InvoiceService) Create(ctx context.Context, r Request) (db.Invoice, error) {
	seq, err := i.store.NextInvoiceNumber(ctx)
	if err != nil {
		return db.Invoice{}, fmt.Errorf("next invoice number: %w", err)
	}

	now := i.now().UTC()
	total := r.AmountCents + r.FeeCents
	items := []LineItem{{Label: r.Description, AmountCents: r.AmountCents}}
	if r.FeeCents > 0 {
		items = append(items, LineItem{Label: "Platform fee", AmountCents: r.FeeCents})
	}

	data, err := json.Marshal(Data{
		Description: r.Description,
		LineItems:   items,
		Total:       total,
		Currency:    i.currency,
		IssuedAt:    now,
	})
	if err != nil {
		return db.Invoice{}, err
	}

	inv, err := i.store.CreateInvoice(ctx, db.CreateInvoiceParams{
		Number:        FormatNumber(now.Year(), seq),
		Type:          r.Type,
		UserID:        r.UserID,
		SubtotalCents: r.AmountCents,
		FeeCents:      r.FeeCents,
		TotalCents:    total,
		ProjectID:     uuid.NullUUID{UUID: r.ProjectID, Valid: r.ProjectID != uuid.Nil},
		MilestoneID:   uuid.NullUUID{UUID: r.MilestoneID, Valid: r.MilestoneID != uuid.Nil},
		Data:          pqtype.NullRawMessage{RawMessage: data, Valid: true},
	})
	if err != nil {
		return db.Invoice{}, err
	}

	i.logger.WithFields(logrus.Fields{"number": inv.Number, "user_id": r.UserID, "type": r.Type}).Info("invoice issued")
	return inv, nil
}

func (i *InvoiceService) ListForUser(ctx context.Context, userID int64, limit int32) ([]db.Invoice, error) {
	return i.store.ListInvoicesByUser(ctx, db.ListInvoicesByUserParams{UserID: userID, Limit: limit})
}
