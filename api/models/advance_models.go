package models

import (
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/advance"
	"github.com/google/uuid"
)

type AdvanceResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProjectID      uuid.UUID  `json:"project_id"`
	VendorID       ID         `json:"vendor_id"`
	Status         string     `json:"status"`
	RequestedCents int64      `json:"requested_cents"`
	ApprovedCents  int64      `json:"approved_cents"`
	RepaidCents    int64      `json:"repaid_cents"`
	RequestNote    *string    `json:"request_note,omitempty"`
	DecisionNote   *string    `json:"decision_note,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	RepaidAt       *time.Time `json:"repaid_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type AdvanceLimitResponse struct {
	EligibleBaseCents int64 `json:"eligible_base_cents"`
	MaxAdvanceCents   int64 `json:"max_advance_cents"`
	OutstandingCents  int64 `json:"outstanding_cents"`
	AvailableCents    int64 `json:"available_cents"`
}

type AdvanceRequestResponse struct {
	Advance AdvanceResponse      `json:"advance"`
	Limit   AdvanceLimitResponse `json:"limit"`
}

type AdvanceListResponse struct {
	Advances []AdvanceResponse    `json:"advances"`
	Limit    AdvanceLimitResponse `json:"limit"`
}

func ToAdvanceResponse(rhs db.CapitalAdvance) AdvanceResponse {
	return AdvanceResponse{
		ID:             rhs.ID,
		ProjectID:      rhs.ProjectID,
		VendorID:       ID(rhs.VendorID),
		Status:         rhs.Status,
		RequestedCents: rhs.RequestedCents,
		ApprovedCents:  rhs.ApprovedCents,
		RepaidCents:    rhs.RepaidCents,
		RequestNote:    optString(rhs.RequestNote),
		DecisionNote:   optString(rhs.DecisionNote),
		DecidedAt:      optTime(rhs.DecidedAt),
		RepaidAt:       optTime(rhs.RepaidAt),
		CreatedAt:      rhs.CreatedAt,
	}
}

func ToAdvanceCollectionResponse(advs []db.CapitalAdvance) []AdvanceResponse {
	response := make([]AdvanceResponse, len(advs))
	for i, a := range advs {
		response[i] = ToAdvanceResponse(a)
	}
	return response
}

func ToAdvanceLimitResponse(rhs advance.Limit) AdvanceLimitResponse {
	return AdvanceLimitResponse{
		EligibleBaseCents: rhs.EligibleBase,
		MaxAdvanceCents:   rhs.MaxAdvance,
		OutstandingCents:  rhs.Outstanding,
		AvailableCents:    rhs.Available,
	}
}
