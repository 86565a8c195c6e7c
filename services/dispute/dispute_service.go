package dispute

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	activitylogs "github.com/SwiftFiat/SwiftFiat-Escrow/services/activity_logs"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/hooks"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/invoice"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/notification"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/project"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/wallet"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/webhook"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const minResolutionLength = 5

type Claim struct {
	ClaimType   string
	Reason      string
	MilestoneID uuid.UUID
}

type Resolution struct {
	Text              string
	CompensationCents int64
	Recipient         string
	Note              string
}

type DisputeService struct {
	store   db.Store
	wallets *wallet.WalletService
	hooks   *hooks.Hooks
	logger  *logging.Logger
}

func NewDisputeService(store db.Store, wallets *wallet.WalletService, h *hooks.Hooks, logger *logging.Logger) *DisputeService {
	return &DisputeService{
		store:   store,
		wallets: wallets,
		hooks:   h,
		logger:  logger,
	}
}

// FileClaim opens a typed claim against a project. The milestone, if any,
// keeps its status.
func (d *DisputeService) FileClaim(ctx context.Context, actor models.Actor, projectID uuid.UUID, c Claim) (db.Dispute, error) {
	if actor.IsAdmin() {
		return db.Dispute{}, NewDisputeError(ErrAdminCannotFileClaim, uuid.Nil)
	}
	claimType, err := ParseClaimType(c.ClaimType)
	if err != nil {
		return db.Dispute{}, NewDisputeError(err, uuid.Nil)
	}
	reason := strings.TrimSpace(c.Reason)
	if reason == "" {
		return db.Dispute{}, NewDisputeError(ErrReasonRequired, uuid.Nil)
	}

	p, err := project.Load(ctx, d.store, projectID)
	if err != nil {
		return db.Dispute{}, err
	}
	if err := project.RequireParty(p, actor, utils.RoleClient, utils.RoleVendor); err != nil {
		return db.Dispute{}, err
	}
	if c.MilestoneID != uuid.Nil {
		m, _, err := project.LoadMilestone(ctx, d.store, c.MilestoneID)
		if err != nil {
			return db.Dispute{}, err
		}
		if m.ProjectID != p.ID {
			return db.Dispute{}, NewDisputeError(ErrMilestoneMismatch, uuid.Nil)
		}
	}

	dispute, err := d.store.CreateDispute(ctx, db.CreateDisputeParams{
		ProjectID:   p.ID,
		MilestoneID: wallet.NullUUID(c.MilestoneID),
		OpenedBy:    actor.UserID,
		Reason:      reason,
		ClaimType:   sql.NullString{String: claimType, Valid: true},
	})
	if err != nil {
		return db.Dispute{}, err
	}

	d.logger.WithFields(logrus.Fields{"dispute_id": dispute.ID, "project_id": p.ID, "claim_type": claimType}).Info("claim filed")

	d.hooks.Notify(ctx, p.ID, actor.UserID, notification.Message{
		Type:    notification.DisputeOpened,
		Title:   "Claim Filed",
		Body:    fmt.Sprintf("A %s claim has been filed on %q.", strings.ToLower(claimType), p.Title),
		LinkURL: "/app/disputes",
	})
	d.hooks.Record(ctx, activitylogs.Entry{
		Type:        activitylogs.ClaimOpened,
		ActorID:     actor.UserID,
		ProjectID:   p.ID,
		MilestoneID: c.MilestoneID,
		DisputeID:   dispute.ID,
		Summary:     fmt.Sprintf("%s claim filed: %s", claimType, reason),
	})
	return dispute, nil
}

func (d *DisputeService) ListDisputes(ctx context.Context, actor models.Actor, projectID uuid.UUID) ([]db.Dispute, error) {
	p, err := project.Load(ctx, d.store, projectID)
	if err != nil {
		return nil, err
	}
	if !project.CanView(p, actor) {
		return nil, project.NewProjectError(project.ErrForbidden, p.ID)
	}
	return d.store.ListDisputesByProject(ctx, projectID)
}

// Resolve closes an OPEN dispute. A positive compensation moves money from
// the other party to the recipient, drawn from the payer's held balance
// before the available one; the transfer and the status change commit
// together.
func (d *DisputeService) Resolve(ctx context.Context, actor models.Actor, disputeID uuid.UUID, r Resolution) (db.Dispute, error) {
	if !actor.IsAdmin() {
		return db.Dispute{}, NewDisputeError(ErrForbidden, disputeID)
	}
	text := strings.TrimSpace(r.Text)
	if utf8.RuneCountInString(text) < minResolutionLength {
		return db.Dispute{}, NewDisputeError(ErrResolutionRequired, disputeID)
	}
	if r.CompensationCents < 0 {
		return db.Dispute{}, NewDisputeError(ErrInvalidCompensation, disputeID)
	}
	var recipient string
	if r.CompensationCents > 0 {
		var err error
		if recipient, err = ParseRecipient(r.Recipient); err != nil {
			return db.Dispute{}, NewDisputeError(err, disputeID)
		}
	}

	var (
		resolved db.Dispute
		p        db.Project
		payee    int64
	)
	err := d.hooks.WithLock(ctx, "lock:dispute:"+disputeID.String(), func(ctx context.Context) error {
		return d.store.ExecTx(ctx, func(q db.Querier) error {
			current, err := q.GetDisputeForUpdate(ctx, disputeID)
			if db.IsNoRows(err) {
				return NewDisputeError(ErrDisputeNotFound, disputeID)
			} else if err != nil {
				return err
			}
			if current.Status != db.DisputeOpen {
				return NewDisputeError(ErrAlreadyResolved, disputeID)
			}
			p, err = project.Load(ctx, q, current.ProjectID)
			if err != nil {
				return err
			}

			if r.CompensationCents > 0 {
				payee, err = d.compensate(ctx, q, p, current, recipient, r.CompensationCents)
				if err != nil {
					return err
				}
			}

			resolved, err = q.ResolveDispute(ctx, db.ResolveDisputeParams{
				ID:                    disputeID,
				Status:                db.DisputeResolved,
				Resolution:            sql.NullString{String: text, Valid: true},
				CompensationCents:     r.CompensationCents,
				CompensationRecipient: sql.NullString{String: recipient, Valid: recipient != ""},
				CompensationNote:      sql.NullString{String: strings.TrimSpace(r.Note), Valid: strings.TrimSpace(r.Note) != ""},
				DecidedBy:             sql.NullInt64{Int64: actor.UserID, Valid: true},
			})
			if db.IsNoRows(err) {
				return NewDisputeError(ErrAlreadyResolved, disputeID)
			}
			return err
		})
	})
	if err != nil {
		return db.Dispute{}, err
	}

	d.afterResolve(ctx, actor, p, resolved, payee)
	return resolved, nil
}

func (d *DisputeService) compensate(ctx context.Context, q db.Querier, p db.Project, dispute db.Dispute, recipient string, amount int64) (int64, error) {
	payer, payee, err := Parties(p, recipient)
	if err != nil {
		return 0, NewDisputeError(err, dispute.ID)
	}

	if _, err := d.wallets.GetOrCreate(ctx, q, payer); err != nil {
		return 0, err
	}
	source, err := q.GetWalletForUpdate(ctx, payer)
	if err != nil {
		return 0, err
	}
	fromHeld, fromAvailable := Split(amount, source.HeldCents)

	ref := dispute.ID.String()[:8]
	_, _, err = d.wallets.Adjust(ctx, q, wallet.Adjustment{
		UserID:         payer,
		Type:           db.WalletTxRelease,
		AmountCents:    amount,
		AvailableDelta: -fromAvailable,
		HeldDelta:      -fromHeld,
		ProjectID:      wallet.NullUUID(p.ID),
		MilestoneID:    dispute.MilestoneID,
		Note:           fmt.Sprintf("Compensation paid (Claim: %s)", ref),
	})
	if err != nil {
		return 0, err
	}
	_, _, err = d.wallets.Adjust(ctx, q, wallet.Adjustment{
		UserID:         payee,
		Type:           db.WalletTxRelease,
		AmountCents:    amount,
		AvailableDelta: amount,
		ProjectID:      wallet.NullUUID(p.ID),
		MilestoneID:    dispute.MilestoneID,
		Note:           fmt.Sprintf("Compensation awarded (Claim: %s)", ref),
	})
	if err != nil {
		return 0, err
	}

	d.logger.WithFields(logrus.Fields{
		"dispute_id":     dispute.ID,
		"payer_id":       payer,
		"payee_id":       payee,
		"from_held":      fromHeld,
		"from_available": fromAvailable,
	}).Info("compensation transferred")
	return payee, nil
}

func (d *DisputeService) afterResolve(ctx context.Context, actor models.Actor, p db.Project, res db.Dispute, payee int64) {
	body := fmt.Sprintf("A dispute on %q has been resolved: %s", p.Title, res.Resolution.String)
	if res.CompensationCents > 0 {
		body += fmt.Sprintf(" Compensation of %s INR awarded to the %s.", currency.FormatCents(res.CompensationCents), strings.ToLower(res.CompensationRecipient.String))

		d.hooks.Invoice(ctx, invoice.Request{
			Type:        invoice.TypeCompensation,
			UserID:      payee,
			AmountCents: res.CompensationCents,
			ProjectID:   p.ID,
			MilestoneID: res.MilestoneID.UUID,
			Description: "Compensation for claim " + res.ID.String()[:8],
		})
	}
	d.hooks.Notify(ctx, p.ID, actor.UserID, notification.Message{
		Type:    notification.DisputeResolved,
		Title:   "Dispute Resolved",
		Body:    body,
		LinkURL: "/app/disputes",
	})

	payload := map[string]interface{}{
		"projectId":             p.ID,
		"disputeId":             res.ID,
		"resolution":            res.Resolution.String,
		"compensationCents":     res.CompensationCents,
		"compensationRecipient": res.CompensationRecipient.String,
	}
	for _, userID := range project.PartyIDs(p) {
		d.hooks.Fire(ctx, userID, webhook.DisputeResolved, payload)
	}

	d.hooks.Record(ctx, activitylogs.Entry{
		Type:        activitylogs.ClaimDecided,
		ActorID:     actor.UserID,
		ProjectID:   p.ID,
		MilestoneID: res.MilestoneID.UUID,
		DisputeID:   res.ID,
		Summary:     fmt.Sprintf("Claim resolved: %s", res.Resolution.String),
		Metadata: map[string]interface{}{
			"compensationCents":     res.CompensationCents,
			"compensationRecipient": res.CompensationRecipient.String,
		},
	})
}
