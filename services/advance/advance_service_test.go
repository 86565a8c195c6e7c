package advance

import (
	"context"
	"database/sql"
	"testing"

	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	activitylogs "github.com/SwiftFiat/SwiftFiat-Escrow/services/activity_logs"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/hooks"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/wallet"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	client = models.Actor{UserID: 1, Role: utils.RoleClient}
	vendor = models.Actor{UserID: 2, Role: utils.RoleVendor}
	admin  = models.Actor{UserID: 9, Role: utils.RoleAdmin}
)

type fixture struct {
	store     *memstore.Store
	svc       *AdvanceService
	wallets   *wallet.WalletService
	projectID uuid.UUID
	milestone db.Milestone
}

func newFixture(t *testing.T, fundedCents int64) fixture {
	t.Helper()
	store := memstore.New()
	logger := logging.NewNopLogger()
	ctx := context.Background()

	p, err := store.CreateProject(ctx, db.CreateProjectParams{ClientID: client.UserID, Title: "Laundry"})
	require.NoError(t, err)
	_, err = store.AssignProjectVendor(ctx, db.AssignProjectVendorParams{ID: p.ID, VendorID: sql.NullInt64{Int64: vendor.UserID, Valid: true}})
	require.NoError(t, err)
	m, err := store.CreateMilestone(ctx, db.CreateMilestoneParams{ProjectID: p.ID, Title: "Wash", AmountCents: fundedCents})
	require.NoError(t, err)
	m, err = store.FundMilestone(ctx, db.FundMilestoneParams{ID: m.ID})
	require.NoError(t, err)

	wallets := wallet.NewWalletService(store, logger, "INR")
	h := &hooks.Hooks{Activity: activitylogs.NewActivityLog(store, logger), Logger: logger}
	return fixture{
		store:     store,
		svc:       NewAdvanceService(store, wallets, h, logger, 50),
		wallets:   wallets,
		projectID: p.ID,
		milestone: m,
	}
}

func TestRequestRespectsLimit(t *testing.T) {
	f := newFixture(t, 15000)
	ctx := context.Background()

	_, lim, err := f.svc.Request(ctx, vendor, f.projectID, 8000, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.EqualValues(t, 7500, lim.Available)
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	adv, lim, err := f.svc.Request(ctx, vendor, f.projectID, 7500, "float for detergent")
	require.NoError(t, err)
	assert.Equal(t, db.AdvanceRequested, adv.Status)
	assert.EqualValues(t, 7500, lim.MaxAdvance)

	_, _, err = f.svc.Request(ctx, vendor, f.projectID, 100, "")
	assert.ErrorIs(t, err, ErrDuplicatePending)
	assert.Equal(t, models.KindConflict, models.KindOf(err))

	recent, err := f.store.ListRecentActivity(ctx, db.ListRecentActivityParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, activitylogs.AdvanceRequested, recent[0].Type)
}

func TestRequestRequiresProjectVendor(t *testing.T) {
	f := newFixture(t, 15000)
	ctx := context.Background()

	_, _, err := f.svc.Request(ctx, client, f.projectID, 100, "")
	assert.Equal(t, models.KindForbidden, models.KindOf(err))

	other := models.Actor{UserID: 77, Role: utils.RoleVendor}
	_, _, err = f.svc.Request(ctx, other, f.projectID, 100, "")
	assert.Equal(t, models.KindForbidden, models.KindOf(err))

	_, _, err = f.svc.Request(ctx, vendor, f.projectID, 0, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestApprovePaysVendorOnce(t *testing.T) {
	f := newFixture(t, 15000)
	ctx := context.Background()

	adv, _, err := f.svc.Request(ctx, vendor, f.projectID, 5000, "")
	require.NoError(t, err)

	_, err = f.svc.Decide(ctx, vendor, adv.ID, Decision{Action: ActionApprove})
	assert.ErrorIs(t, err, ErrForbidden)

	tooMuch := int64(6000)
	_, err = f.svc.Decide(ctx, admin, adv.ID, Decision{Action: ActionApprove, ApprovedCents: &tooMuch})
	assert.ErrorIs(t, err, ErrExceedsRequested)

	partial := int64(4000)
	approved, err := f.svc.Decide(ctx, admin, adv.ID, Decision{Action: ActionApprove, ApprovedCents: &partial})
	require.NoError(t, err)
	assert.Equal(t, db.AdvanceApproved, approved.Status)
	assert.EqualValues(t, 4000, approved.ApprovedCents)

	w, err := f.wallets.GetWallet(ctx, vendor.UserID)
	require.NoError(t, err)
	assert.EqualValues(t, 4000, w.AvailableCents)

	entries, err := f.store.ListEscrowLedgerEntries(ctx, f.milestone.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, db.LedgerAdvanceApprovedPayout, entries[0].Type)

	_, err = f.svc.Decide(ctx, admin, adv.ID, Decision{Action: ActionApprove})
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	_, err = f.svc.Decide(ctx, admin, adv.ID, Decision{Action: ActionReject})
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	w, err = f.wallets.GetWallet(ctx, vendor.UserID)
	require.NoError(t, err)
	assert.EqualValues(t, 4000, w.AvailableCents)

	rec, err := f.wallets.Reconcile(ctx, vendor.UserID)
	require.NoError(t, err)
	assert.True(t, rec.Balanced)

	lim, err := f.svc.Limit(ctx, vendor, f.projectID)
	require.NoError(t, err)
	assert.EqualValues(t, 4000, lim.Outstanding)
	assert.EqualValues(t, 3500, lim.Available)
}

func TestRejectMovesNoMoney(t *testing.T) {
	f := newFixture(t, 15000)
	ctx := context.Background()

	adv, _, err := f.svc.Request(ctx, vendor, f.projectID, 5000, "")
	require.NoError(t, err)

	rejected, err := f.svc.Decide(ctx, admin, adv.ID, Decision{Action: ActionReject})
	require.NoError(t, err)
	assert.Equal(t, db.AdvanceRejected, rejected.Status)
	assert.Equal(t, "Rejected by admin", rejected.DecisionNote.String)

	w, err := f.wallets.GetWallet(ctx, vendor.UserID)
	require.NoError(t, err)
	assert.Zero(t, w.AvailableCents)

	// A new request is allowed once the old one is decided.
	_, _, err = f.svc.Request(ctx, vendor, f.projectID, 5000, "")
	assert.NoError(t, err)

	_, err = f.svc.Decide(ctx, admin, uuid.New(), Decision{Action: ActionReject})
	assert.ErrorIs(t, err, ErrAdvanceNotFound)
	_, err = f.svc.Decide(ctx, admin, adv.ID, Decision{Action: "defer"})
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestApplyRepaymentsFIFO(t *testing.T) {
	f := newFixture(t, 100000)
	ctx := context.Background()

	var ids []uuid.UUID
	for _, amt := range []int64{1000, 500} {
		adv, _, err := f.svc.Request(ctx, vendor, f.projectID, amt, "")
		require.NoError(t, err)
		_, err = f.svc.Decide(ctx, admin, adv.ID, Decision{Action: ActionApprove})
		require.NoError(t, err)
		ids = append(ids, adv.ID)
	}

	var total int64
	err := f.store.ExecTx(ctx, func(q db.Querier) error {
		var err error
		_, total, err = ApplyRepayments(ctx, q, f.projectID, vendor.UserID, 1200)
		return err
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1200, total)

	a1, err := f.store.GetCapitalAdvance(ctx, ids[0])
	require.NoError(t, err)
	assert.EqualValues(t, 1000, a1.RepaidCents)
	assert.True(t, a1.RepaidAt.Valid)

	a2, err := f.store.GetCapitalAdvance(ctx, ids[1])
	require.NoError(t, err)
	assert.EqualValues(t, 200, a2.RepaidCents)
	assert.False(t, a2.RepaidAt.Valid)

	list, err := f.svc.ListByProject(ctx, client, f.projectID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
