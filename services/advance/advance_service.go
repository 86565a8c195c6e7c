package advance

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	activitylogs "github.com/SwiftFiat/SwiftFiat-Escrow/services/activity_logs"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/hooks"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/project"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/wallet"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/webhook"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type Decision struct {
	Action string
	// ApprovedCents defaults to the requested amount when nil.
	ApprovedCents *int64
	Note          string
}

type AdvanceService struct {
	store   db.Store
	wallets *wallet.WalletService
	hooks   *hooks.Hooks
	logger  *logging.Logger
	percent int64
}

func NewAdvanceService(store db.Store, wallets *wallet.WalletService, h *hooks.Hooks, logger *logging.Logger, limitPercent int64) *AdvanceService {
	return &AdvanceService{
		store:   store,
		wallets: wallets,
		hooks:   h,
		logger:  logger,
		percent: limitPercent,
	}
}

func (a *AdvanceService) limit(ctx context.Context, q db.Querier, projectID uuid.UUID, vendorID int64) (Limit, error) {
	milestones, err := q.ListMilestonesByProject(ctx, projectID)
	if err != nil {
		return Limit{}, err
	}
	approved, err := q.ListApprovedAdvancesForUpdate(ctx, db.ListApprovedAdvancesForUpdateParams{
		ProjectID: projectID,
		VendorID:  vendorID,
	})
	if err != nil {
		return Limit{}, err
	}
	return ComputeLimit(milestones, approved, a.percent), nil
}

// Limit reports what the project's vendor could request right now.
func (a *AdvanceService) Limit(ctx context.Context, actor models.Actor, projectID uuid.UUID) (Limit, error) {
	p, err := project.Load(ctx, a.store, projectID)
	if err != nil {
		return Limit{}, err
	}
	if !project.CanView(p, actor) {
		return Limit{}, project.NewProjectError(project.ErrForbidden, projectID)
	}
	if !p.VendorID.Valid {
		return Limit{}, nil
	}
	return a.limit(ctx, a.store, projectID, p.VendorID.Int64)
}

// Request files a REQUESTED advance for the project's vendor. The amount
// must fit in the available limit and the vendor may only have one
// request pending per project.
func (a *AdvanceService) Request(ctx context.Context, actor models.Actor, projectID uuid.UUID, requestedCents int64, note string) (db.CapitalAdvance, Limit, error) {
	if requestedCents <= 0 {
		return db.CapitalAdvance{}, Limit{}, ErrInvalidAmount
	}

	p, err := project.Load(ctx, a.store, projectID)
	if err != nil {
		return db.CapitalAdvance{}, Limit{}, err
	}
	if err := project.RequireParty(p, actor, utils.RoleVendor); err != nil {
		return db.CapitalAdvance{}, Limit{}, err
	}

	var (
		adv db.CapitalAdvance
		lim Limit
	)
	err = a.store.ExecTx(ctx, func(q db.Querier) error {
		var err error
		lim, err = a.limit(ctx, q, projectID, actor.UserID)
		if err != nil {
			return err
		}
		if requestedCents > lim.Available {
			return &LimitError{Limit: lim}
		}

		pending, err := q.CountPendingAdvances(ctx, db.CountPendingAdvancesParams{ProjectID: projectID, VendorID: actor.UserID})
		if err != nil {
			return err
		}
		if pending > 0 {
			return ErrDuplicatePending
		}

		adv, err = q.CreateCapitalAdvance(ctx, db.CreateCapitalAdvanceParams{
			ProjectID:      projectID,
			VendorID:       actor.UserID,
			RequestedCents: requestedCents,
			RequestNote:    sql.NullString{String: note, Valid: note != ""},
		})
		if db.IsDuplicate(err) {
			return ErrDuplicatePending
		}
		return err
	})
	if err != nil {
		return db.CapitalAdvance{}, lim, err
	}

	a.logger.WithFields(logrus.Fields{
		"advance_id": adv.ID,
		"project_id": projectID,
		"vendor_id":  actor.UserID,
		"requested":  requestedCents,
		"available":  lim.Available,
	}).Info("capital advance requested")

	a.hooks.Record(ctx, activitylogs.Entry{
		Type:             activitylogs.AdvanceRequested,
		ActorID:          actor.UserID,
		ProjectID:        projectID,
		CapitalAdvanceID: adv.ID,
		Summary:          fmt.Sprintf("Vendor requested advance of ₹%s", currency.FormatCents(requestedCents)),
		Metadata:         map[string]interface{}{"requestedCents": requestedCents, "availableLimit": lim.Available},
	})
	return adv, lim, nil
}

// Decide approves or rejects a REQUESTED advance. Approval pays the
// vendor immediately.
func (a *AdvanceService) Decide(ctx context.Context, actor models.Actor, advanceID uuid.UUID, d Decision) (db.CapitalAdvance, error) {
	if !actor.IsAdmin() {
		return db.CapitalAdvance{}, NewAdvanceError(ErrForbidden, advanceID)
	}
	if d.Action != ActionApprove && d.Action != ActionReject {
		return db.CapitalAdvance{}, NewAdvanceError(ErrInvalidDecision, advanceID)
	}

	var adv db.CapitalAdvance
	err := a.hooks.WithLock(ctx, "lock:advance:"+advanceID.String(), func(ctx context.Context) error {
		return a.store.ExecTx(ctx, func(q db.Querier) error {
			current, err := q.GetCapitalAdvanceForUpdate(ctx, advanceID)
			if db.IsNoRows(err) {
				return NewAdvanceError(ErrAdvanceNotFound, advanceID)
			} else if err != nil {
				return err
			}
			if current.Status != db.AdvanceRequested {
				return NewAdvanceError(ErrAlreadyProcessed, advanceID)
			}

			if d.Action == ActionReject {
				adv, err = a.reject(ctx, q, current, actor, d.Note)
				return err
			}
			adv, err = a.approve(ctx, q, current, actor, d)
			return err
		})
	})
	if err != nil {
		return db.CapitalAdvance{}, err
	}

	a.afterDecision(ctx, actor, adv)
	return adv, nil
}

func (a *AdvanceService) reject(ctx context.Context, q db.Querier, current db.CapitalAdvance, actor models.Actor, note string) (db.CapitalAdvance, error) {
	if note == "" {
		note = "Rejected by admin"
	}
	adv, err := q.RejectCapitalAdvance(ctx, db.RejectCapitalAdvanceParams{
		ID:           current.ID,
		DecisionNote: sql.NullString{String: note, Valid: true},
		DecidedBy:    sql.NullInt64{Int64: actor.UserID, Valid: true},
	})
	if db.IsNoRows(err) {
		return db.CapitalAdvance{}, NewAdvanceError(ErrAlreadyProcessed, current.ID)
	}
	return adv, err
}

func (a *AdvanceService) approve(ctx context.Context, q db.Querier, current db.CapitalAdvance, actor models.Actor, d Decision) (db.CapitalAdvance, error) {
	approved := current.RequestedCents
	if d.ApprovedCents != nil {
		approved = *d.ApprovedCents
	}
	if approved > current.RequestedCents {
		return db.CapitalAdvance{}, NewAdvanceError(ErrExceedsRequested, current.ID)
	}
	if approved <= 0 {
		return db.CapitalAdvance{}, NewAdvanceError(ErrInvalidAmount, current.ID)
	}

	note := d.Note
	if note == "" {
		note = "Approved"
	}
	adv, err := q.ApproveCapitalAdvance(ctx, db.ApproveCapitalAdvanceParams{
		ID:            current.ID,
		ApprovedCents: approved,
		DecisionNote:  sql.NullString{String: note, Valid: true},
		DecidedBy:     sql.NullInt64{Int64: actor.UserID, Valid: true},
	})
	if db.IsNoRows(err) {
		return db.CapitalAdvance{}, NewAdvanceError(ErrAlreadyProcessed, current.ID)
	} else if err != nil {
		return db.CapitalAdvance{}, err
	}

	_, _, err = a.wallets.Adjust(ctx, q, wallet.Adjustment{
		UserID:         adv.VendorID,
		Type:           db.WalletTxDeposit,
		AmountCents:    approved,
		AvailableDelta: approved,
		ProjectID:      wallet.NullUUID(adv.ProjectID),
		Note:           fmt.Sprintf("Working capital advance (Ref: %s)", adv.ID.String()[:8]),
	})
	if err != nil {
		return db.CapitalAdvance{}, err
	}

	earliest, err := q.GetEarliestMilestone(ctx, adv.ProjectID)
	if db.IsNoRows(err) {
		return adv, nil
	} else if err != nil {
		return db.CapitalAdvance{}, err
	}
	_, err = q.CreateEscrowLedgerEntry(ctx, db.CreateEscrowLedgerEntryParams{
		MilestoneID: earliest.ID,
		Type:        db.LedgerAdvanceApprovedPayout,
		AmountCents: approved,
		Note:        sql.NullString{String: "Working capital advance approved for vendor", Valid: true},
	})
	if err != nil {
		return db.CapitalAdvance{}, err
	}
	return adv, nil
}

func (a *AdvanceService) afterDecision(ctx context.Context, actor models.Actor, adv db.CapitalAdvance) {
	fields := logrus.Fields{"advance_id": adv.ID, "admin_id": actor.UserID, "status": adv.Status}

	if adv.Status == db.AdvanceRejected {
		a.logger.WithFields(fields).Info("capital advance rejected")
		a.hooks.Record(ctx, activitylogs.Entry{
			Type:             activitylogs.AdvanceRejected,
			ActorID:          actor.UserID,
			ProjectID:        adv.ProjectID,
			CapitalAdvanceID: adv.ID,
			Summary:          fmt.Sprintf("Advance request of ₹%s rejected", currency.FormatCents(adv.RequestedCents)),
		})
		return
	}

	fields["approved_cents"] = adv.ApprovedCents
	a.logger.WithFields(fields).Info("capital advance approved")
	a.hooks.Record(ctx, activitylogs.Entry{
		Type:             activitylogs.AdvanceApproved,
		ActorID:          actor.UserID,
		ProjectID:        adv.ProjectID,
		CapitalAdvanceID: adv.ID,
		Summary:          fmt.Sprintf("Advance of ₹%s approved and credited", currency.FormatCents(adv.ApprovedCents)),
		Metadata:         map[string]interface{}{"approvedCents": adv.ApprovedCents, "requestedCents": adv.RequestedCents},
	})
	a.hooks.Fire(ctx, adv.VendorID, webhook.AdvanceApproved, map[string]interface{}{
		"projectId":     adv.ProjectID,
		"advanceId":     adv.ID,
		"approvedCents": adv.ApprovedCents,
	})
}

func (a *AdvanceService) ListByProject(ctx context.Context, actor models.Actor, projectID uuid.UUID) ([]db.CapitalAdvance, error) {
	p, err := project.Load(ctx, a.store, projectID)
	if err != nil {
		return nil, err
	}
	if !project.CanView(p, actor) {
		return nil, project.NewProjectError(project.ErrForbidden, projectID)
	}
	return a.store.ListCapitalAdvancesByProject(ctx, projectID)
}

// ApplyRepayments deducts what the vendor owes on this project's advances
// from a release of amount, oldest advance first, inside the caller's
// transaction. It returns the shares applied and their total.
func ApplyRepayments(ctx context.Context, q db.Querier, projectID uuid.UUID, vendorID, amount int64) ([]Repayment, int64, error) {
	approved, err := q.ListApprovedAdvancesForUpdate(ctx, db.ListApprovedAdvancesForUpdateParams{
		ProjectID: projectID,
		VendorID:  vendorID,
	})
	if err != nil {
		return nil, 0, err
	}

	shares, total := AllocateRepayment(approved, amount)
	for _, s := range shares {
		_, err := q.RecordAdvanceRepayment(ctx, db.RecordAdvanceRepaymentParams{
			ID:                  s.AdvanceID,
			RepaidCents:         s.NewRepaid(),
			ExpectedRepaidCents: s.PreviousRepaid,
		})
		if db.IsNoRows(err) {
			return nil, 0, NewAdvanceError(ErrConcurrentUpdate, s.AdvanceID)
		} else if err != nil {
			return nil, 0, err
		}
	}
	return shares, total, nil
}
