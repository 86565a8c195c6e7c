package memstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMilestone(t *testing.T, s *Store, amount int64) db.Milestone {
	t.Helper()
	ctx := context.Background()
	p, err := s.CreateProject(ctx, db.CreateProjectParams{ClientID: 1, Title: "Shirts"})
	require.NoError(t, err)
	m, err := s.CreateMilestone(ctx, db.CreateMilestoneParams{ProjectID: p.ID, Title: "Wash", AmountCents: amount})
	require.NoError(t, err)
	return m
}

func TestExecTxRollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	w, err := s.GetOrCreateWallet(ctx, db.GetOrCreateWalletParams{UserID: 7, Currency: "INR"})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.ExecTx(ctx, func(q db.Querier) error {
		_, err := q.AdjustWalletBalance(ctx, db.AdjustWalletBalanceParams{ID: w.ID, AvailableDelta: 500})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.GetWalletByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.AvailableCents)
}

func TestExecTxCommits(t *testing.T) {
	s := New()
	ctx := context.Background()
	w, err := s.GetOrCreateWallet(ctx, db.GetOrCreateWalletParams{UserID: 7, Currency: "INR"})
	require.NoError(t, err)

	err = s.ExecTx(ctx, func(q db.Querier) error {
		_, err := q.AdjustWalletBalance(ctx, db.AdjustWalletBalanceParams{ID: w.ID, AvailableDelta: 500})
		return err
	})
	require.NoError(t, err)

	got, err := s.GetWalletByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.AvailableCents)
}

func TestGetOrCreateWalletIsIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	a, err := s.GetOrCreateWallet(ctx, db.GetOrCreateWalletParams{UserID: 3, Currency: "INR"})
	require.NoError(t, err)
	b, err := s.GetOrCreateWallet(ctx, db.GetOrCreateWalletParams{UserID: 3, Currency: "INR"})
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestAdjustWalletBalanceRefusesNegative(t *testing.T) {
	s := New()
	ctx := context.Background()
	w, err := s.GetOrCreateWallet(ctx, db.GetOrCreateWalletParams{UserID: 3, Currency: "INR"})
	require.NoError(t, err)

	_, err = s.AdjustWalletBalance(ctx, db.AdjustWalletBalanceParams{ID: w.ID, HeldDelta: -1})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestReleaseMilestoneGuardsOnExpectedReleased(t *testing.T) {
	s := New()
	ctx := context.Background()
	m := seedMilestone(t, s, 10000)
	_, err := s.FundMilestone(ctx, db.FundMilestoneParams{ID: m.ID})
	require.NoError(t, err)
	_, err = s.SubmitMilestone(ctx, m.ID)
	require.NoError(t, err)

	_, err = s.ReleaseMilestone(ctx, db.ReleaseMilestoneParams{ID: m.ID, ReleasedCents: 4000, Status: db.MilestoneSubmitted, ExpectedReleasedCents: 0})
	require.NoError(t, err)

	_, err = s.ReleaseMilestone(ctx, db.ReleaseMilestoneParams{ID: m.ID, ReleasedCents: 10000, Status: db.MilestoneReleased, ExpectedReleasedCents: 0})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = s.ReleaseMilestone(ctx, db.ReleaseMilestoneParams{ID: m.ID, ReleasedCents: 10000, Status: db.MilestoneSubmitted, ExpectedReleasedCents: 4000})
	assert.True(t, db.IsCheckViolation(err))

	got, err := s.ReleaseMilestone(ctx, db.ReleaseMilestoneParams{ID: m.ID, ReleasedCents: 10000, Status: db.MilestoneReleased, ExpectedReleasedCents: 4000})
	require.NoError(t, err)
	assert.Equal(t, db.MilestoneReleased, got.Status)
	assert.True(t, got.ReleasedAt.Valid)
}

func TestOnePendingAdvancePerVendor(t *testing.T) {
	s := New()
	ctx := context.Background()
	m := seedMilestone(t, s, 10000)

	_, err := s.CreateCapitalAdvance(ctx, db.CreateCapitalAdvanceParams{ProjectID: m.ProjectID, VendorID: 9, RequestedCents: 100})
	require.NoError(t, err)
	_, err = s.CreateCapitalAdvance(ctx, db.CreateCapitalAdvanceParams{ProjectID: m.ProjectID, VendorID: 9, RequestedCents: 100})
	assert.True(t, db.IsDuplicate(err))
}

func TestListApprovedAdvancesOldestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	m := seedMilestone(t, s, 10000)

	var ids []string
	for _, amount := range []int64{1000, 500} {
		a, err := s.CreateCapitalAdvance(ctx, db.CreateCapitalAdvanceParams{ProjectID: m.ProjectID, VendorID: 9, RequestedCents: amount})
		require.NoError(t, err)
		_, err = s.ApproveCapitalAdvance(ctx, db.ApproveCapitalAdvanceParams{ID: a.ID, ApprovedCents: amount})
		require.NoError(t, err)
		ids = append(ids, a.ID.String())
	}

	got, err := s.ListApprovedAdvancesForUpdate(ctx, db.ListApprovedAdvancesForUpdateParams{ProjectID: m.ProjectID, VendorID: 9})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids[0], got[0].ID.String())
	assert.Equal(t, ids[1], got[1].ID.String())
}

func TestWalletReferenceIsUnique(t *testing.T) {
	s := New()
	ctx := context.Background()
	w, err := s.GetOrCreateWallet(ctx, db.GetOrCreateWalletParams{UserID: 3, Currency: "INR"})
	require.NoError(t, err)

	arg := db.CreateWalletTransactionParams{
		WalletID:            w.ID,
		Type:                db.WalletTxDeposit,
		AmountCents:         100,
		AvailableDeltaCents: 100,
		Reference:           sql.NullString{String: "pay_1", Valid: true},
	}
	_, err = s.CreateWalletTransaction(ctx, arg)
	require.NoError(t, err)
	_, err = s.CreateWalletTransaction(ctx, arg)
	assert.True(t, db.IsDuplicate(err))
}
