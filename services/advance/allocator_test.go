package advance

import (
	"math"
	"testing"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedAdvance(approved, repaid int64, at time.Time) db.CapitalAdvance {
	return db.CapitalAdvance{
		ID:             uuid.New(),
		Status:         db.AdvanceApproved,
		RequestedCents: approved,
		ApprovedCents:  approved,
		RepaidCents:    repaid,
		CreatedAt:      at,
	}
}

func TestAllocateRepaymentIsFIFO(t *testing.T) {
	t0 := time.Now()
	a1 := approvedAdvance(1000, 0, t0)
	a2 := approvedAdvance(500, 0, t0.Add(time.Second))

	// Passed newest first on purpose.
	shares, total := AllocateRepayment([]db.CapitalAdvance{a2, a1}, 1200)
	require.Len(t, shares, 2)
	assert.EqualValues(t, 1200, total)

	assert.Equal(t, a1.ID, shares[0].AdvanceID)
	assert.EqualValues(t, 1000, shares[0].NewRepaid())
	assert.True(t, shares[0].FullyRepaid())

	assert.Equal(t, a2.ID, shares[1].AdvanceID)
	assert.EqualValues(t, 200, shares[1].NewRepaid())
	assert.False(t, shares[1].FullyRepaid())
}

func TestAllocateRepaymentStopsWhenOwedRunsOut(t *testing.T) {
	t0 := time.Now()
	advances := []db.CapitalAdvance{
		approvedAdvance(1000, 1000, t0),
		approvedAdvance(500, 300, t0.Add(time.Second)),
		{ID: uuid.New(), Status: db.AdvanceRejected, RequestedCents: 900, CreatedAt: t0.Add(2 * time.Second)},
	}

	shares, total := AllocateRepayment(advances, 5000)
	require.Len(t, shares, 1)
	assert.EqualValues(t, 200, total)
	assert.EqualValues(t, 500, shares[0].NewRepaid())

	shares, total = AllocateRepayment(advances, 0)
	assert.Empty(t, shares)
	assert.Zero(t, total)
}

func TestAllocateRepaymentIsDeterministic(t *testing.T) {
	t0 := time.Now()
	advances := []db.CapitalAdvance{approvedAdvance(700, 0, t0), approvedAdvance(700, 0, t0.Add(time.Millisecond))}
	first, _ := AllocateRepayment(advances, 1000)
	second, _ := AllocateRepayment(advances, 1000)
	assert.Equal(t, first, second)
	assert.Zero(t, advances[0].RepaidCents)
}

func TestLimit(t *testing.T) {
	milestones := []db.Milestone{
		{Status: db.MilestoneFunded, AmountCents: 15000},
		{Status: db.MilestoneDraft, AmountCents: 9999},
		{Status: db.MilestoneReleased, AmountCents: 4000, ReleasedCents: 4000},
		{Status: db.MilestoneSubmitted, AmountCents: 20000, ReleasedCents: 8000},
		{Status: db.MilestoneDisputed, AmountCents: 3000},
	}
	assert.EqualValues(t, 27000, EligibleBase(milestones))

	lim := ComputeLimit(milestones[:1], nil, 50)
	assert.EqualValues(t, 7500, lim.MaxAdvance)
	assert.EqualValues(t, 7500, lim.Available)

	lim = ComputeLimit(milestones[:1], []db.CapitalAdvance{approvedAdvance(8000, 0, time.Now())}, 50)
	assert.EqualValues(t, 8000, lim.Outstanding)
	assert.Zero(t, lim.Available)
}

func TestMaxAdvance(t *testing.T) {
	assert.EqualValues(t, 7500, MaxAdvance(15000, 50))
	assert.EqualValues(t, 7, MaxAdvance(15, 50))
	assert.EqualValues(t, 0, MaxAdvance(1, 50))
	assert.EqualValues(t, 0, MaxAdvance(-100, 50))
	assert.EqualValues(t, math.MaxInt64/2, MaxAdvance(math.MaxInt64, 50))
}
