package models

import (
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/escrow"
	"github.com/google/uuid"
)

type LedgerEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	AmountCents int64     `json:"amount_cents"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type EvidenceFileResponse struct {
	ID         uuid.UUID `json:"id"`
	UploaderID ID        `json:"uploader_id"`
	FileName   string    `json:"file_name"`
	MimeType   *string   `json:"mime_type,omitempty"`
	SizeBytes  *int64    `json:"size_bytes,omitempty"`
	URL        *string   `json:"url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type MilestoneDetailResponse struct {
	MilestoneResponse
	Evidence []EvidenceFileResponse `json:"evidence"`
}

type ReleaseResponse struct {
	Milestone             MilestoneResponse `json:"milestone"`
	ReleasedAmountCents   int64             `json:"released_amount_cents"`
	AdvanceDeductionCents int64             `json:"advance_deduction_cents"`
	VendorCreditCents     int64             `json:"vendor_credit_cents"`
	FullyReleased         bool              `json:"fully_released"`
}

type DisputeResponse struct {
	ID                    uuid.UUID  `json:"id"`
	ProjectID             uuid.UUID  `json:"project_id"`
	MilestoneID           *uuid.UUID `json:"milestone_id,omitempty"`
	OpenedBy              ID         `json:"opened_by"`
	Reason                string     `json:"reason"`
	ClaimType             *string    `json:"claim_type,omitempty"`
	Status                string     `json:"status"`
	Resolution            *string    `json:"resolution,omitempty"`
	CompensationCents     int64      `json:"compensation_cents"`
	CompensationRecipient *string    `json:"compensation_recipient,omitempty"`
	CompensationNote      *string    `json:"compensation_note,omitempty"`
	DecidedBy             *ID        `json:"decided_by,omitempty"`
	DecidedAt             *time.Time `json:"decided_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

func ToLedgerCollectionResponse(entries []db.EscrowLedgerEntry) []LedgerEntryResponse {
	response := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = LedgerEntryResponse{
			ID:          e.ID,
			Type:        e.Type,
			AmountCents: e.AmountCents,
			Note:        optString(e.Note),
			CreatedAt:   e.CreatedAt,
		}
	}
	return response
}

func ToMilestoneDetailResponse(rhs escrow.MilestoneDetail) MilestoneDetailResponse {
	files := make([]EvidenceFileResponse, len(rhs.Evidence))
	for i, f := range rhs.Evidence {
		files[i] = EvidenceFileResponse{
			ID:         f.ID,
			UploaderID: ID(f.UploaderID),
			FileName:   f.FileName,
			MimeType:   optString(f.MimeType),
			SizeBytes:  optInt64(f.SizeBytes),
			URL:        optString(f.Url),
			CreatedAt:  f.CreatedAt,
		}
	}
	return MilestoneDetailResponse{
		MilestoneResponse: ToMilestoneResponse(rhs.Milestone),
		Evidence:          files,
	}
}

func ToReleaseResponse(rhs escrow.ReleaseResult) ReleaseResponse {
	return ReleaseResponse{
		Milestone:             ToMilestoneResponse(rhs.Milestone),
		ReleasedAmountCents:   rhs.ReleasedAmount,
		AdvanceDeductionCents: rhs.AdvanceDeduction,
		VendorCreditCents:     rhs.VendorCredit,
		FullyReleased:         rhs.FullyReleased,
	}
}

func ToDisputeResponse(rhs db.Dispute) DisputeResponse {
	return DisputeResponse{
		ID:                    rhs.ID,
		ProjectID:             rhs.ProjectID,
		MilestoneID:           optUUID(rhs.MilestoneID),
		OpenedBy:              ID(rhs.OpenedBy),
		Reason:                rhs.Reason,
		ClaimType:             optString(rhs.ClaimType),
		Status:                rhs.Status,
		Resolution:            optString(rhs.Resolution),
		CompensationCents:     rhs.CompensationCents,
		CompensationRecipient: optString(rhs.CompensationRecipient),
		CompensationNote:      optString(rhs.CompensationNote),
		DecidedBy:             NullableID(rhs.DecidedBy),
		DecidedAt:             optTime(rhs.DecidedAt),
		CreatedAt:             rhs.CreatedAt,
	}
}

func ToDisputeCollectionResponse(ds []db.Dispute) []DisputeResponse {
	response := make([]DisputeResponse, len(ds))
	for i, d := range ds {
		response[i] = ToDisputeResponse(d)
	}
	return response
}
