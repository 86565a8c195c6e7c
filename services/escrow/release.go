package escrow

import (
	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
)

// ReleasePlan is what one approval will do to a milestone.
type ReleasePlan struct {
	Amount        int64
	NewReleased   int64
	FullyReleased bool
	LedgerType    string
	Status        string
}

// ComputeRelease works out how much of m an approval releases. A partial
// amount is only honoured when partialEnabled is set; without it the whole
// remainder is released. It touches no state.
func ComputeRelease(m db.Milestone, partial *int64, partialEnabled bool) (ReleasePlan, error) {
	if m.Status != db.MilestoneSubmitted {
		return ReleasePlan{}, NewEscrowError(ErrNotReleasable, m.ID)
	}

	remaining := m.AmountCents - m.ReleasedCents
	if remaining <= 0 {
		return ReleasePlan{}, NewEscrowError(ErrNotReleasable, m.ID)
	}

	amount := remaining
	if partial != nil && partialEnabled {
		if *partial <= 0 {
			return ReleasePlan{}, NewEscrowError(ErrInvalidAmount, m.ID)
		}
		if *partial > remaining {
			return ReleasePlan{}, NewEscrowError(ErrExceedsRemaining, m.ID)
		}
		amount = *partial
	}

	plan := ReleasePlan{
		Amount:      amount,
		NewReleased: m.ReleasedCents + amount,
	}
	plan.FullyReleased = plan.NewReleased >= m.AmountCents
	if plan.FullyReleased {
		plan.LedgerType = db.LedgerRelease
		plan.Status = db.MilestoneReleased
	} else {
		plan.LedgerType = db.LedgerPartialRelease
		plan.Status = db.MilestoneSubmitted
	}
	return plan, nil
}
