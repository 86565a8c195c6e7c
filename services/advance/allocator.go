package advance

import (
	"sort"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
)

// Milestone statuses whose unreleased remainder counts as advanceable
// escrow.
var eligibleStatuses = map[string]bool{
	db.MilestoneFunded:     true,
	db.MilestoneInProgress: true,
	db.MilestoneSubmitted:  true,
}

type Limit struct {
	EligibleBase int64 `json:"eligible_base_cents"`
	MaxAdvance   int64 `json:"max_advance_cents"`
	Outstanding  int64 `json:"outstanding_cents"`
	Available    int64 `json:"available_cents"`
}

// EligibleBase sums amount minus released over funded, in-progress and
// submitted milestones.
func EligibleBase(milestones []db.Milestone) int64 {
	var base int64
	for _, m := range milestones {
		if eligibleStatuses[m.Status] {
			base += m.AmountCents - m.ReleasedCents
		}
	}
	return base
}

// MaxAdvance is floor(base * percent / 100), computed without overflowing
// for any base that fits in an int64.
func MaxAdvance(base, percent int64) int64 {
	if base <= 0 || percent <= 0 {
		return 0
	}
	return (base/100)*percent + (base%100)*percent/100
}

// Outstanding sums approved minus repaid over APPROVED advances.
func Outstanding(advances []db.CapitalAdvance) int64 {
	var total int64
	for _, a := range advances {
		if a.Status == db.AdvanceApproved {
			total += a.ApprovedCents - a.RepaidCents
		}
	}
	return total
}

func Available(maxAdvance, outstanding int64) int64 {
	if avail := maxAdvance - outstanding; avail > 0 {
		return avail
	}
	return 0
}

func ComputeLimit(milestones []db.Milestone, advances []db.CapitalAdvance, percent int64) Limit {
	l := Limit{
		EligibleBase: EligibleBase(milestones),
		Outstanding:  Outstanding(advances),
	}
	l.MaxAdvance = MaxAdvance(l.EligibleBase, percent)
	l.Available = Available(l.MaxAdvance, l.Outstanding)
	return l
}

// Repayment is the share of one release applied to one advance.
type Repayment struct {
	AdvanceID      uuid.UUID
	PreviousRepaid int64
	Amount         int64
	ApprovedCents  int64
}

func (r Repayment) NewRepaid() int64 {
	return r.PreviousRepaid + r.Amount
}

func (r Repayment) FullyRepaid() bool {
	return r.NewRepaid() >= r.ApprovedCents
}

// AllocateRepayment walks the approved advances oldest first and takes
// what each still owes out of amount until it runs out. It returns the
// per-advance shares and their total. The input slice is not modified.
func AllocateRepayment(advances []db.CapitalAdvance, amount int64) ([]Repayment, int64) {
	if amount <= 0 {
		return nil, 0
	}

	ordered := make([]db.CapitalAdvance, 0, len(advances))
	for _, a := range advances {
		if a.Status == db.AdvanceApproved {
			ordered = append(ordered, a)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	var out []Repayment
	remaining := amount
	for _, a := range ordered {
		if remaining == 0 {
			break
		}
		owed := a.ApprovedCents - a.RepaidCents
		if owed <= 0 {
			continue
		}
		take := owed
		if remaining < take {
			take = remaining
		}
		out = append(out, Repayment{
			AdvanceID:      a.ID,
			PreviousRepaid: a.RepaidCents,
			Amount:         take,
			ApprovedCents:  a.ApprovedCents,
		})
		remaining -= take
	}
	return out, amount - remaining
}
