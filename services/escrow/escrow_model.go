package escrow

import (
	"database/sql"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
)

type EvidenceFile struct {
	FileName  string `json:"fileName"`
	MimeType  string `json:"mimeType,omitempty"`
	SizeBytes int64  `json:"sizeBytes,omitempty"`
	URL       string `json:"url,omitempty"`
}

type MilestoneDetail struct {
	db.Milestone
	Evidence []db.EvidenceFile `json:"evidence"`
}

type ReleaseResult struct {
	Milestone        db.Milestone `json:"milestone"`
	ReleasedAmount   int64        `json:"released_amount_cents"`
	AdvanceDeduction int64        `json:"advance_deduction_cents"`
	VendorCredit     int64        `json:"vendor_credit_cents"`
	FullyReleased    bool         `json:"fully_released"`
}

func lockKey(milestoneID uuid.UUID) string {
	return "lock:milestone:" + milestoneID.String()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(i int64) sql.NullInt64 {
	return sql.NullInt64{Int64: i, Valid: i > 0}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
