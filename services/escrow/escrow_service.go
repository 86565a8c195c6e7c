package escrow

import (
	"context"
	"fmt"
	"strings"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	activitylogs "github.com/SwiftFiat/SwiftFiat-Escrow/services/activity_logs"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/advance"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/features"
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

type EscrowService struct {
	store   db.Store
	wallets *wallet.WalletService
	hooks   *hooks.Hooks
	logger  *logging.Logger
}

func NewEscrowService(store db.Store, wallets *wallet.WalletService, h *hooks.Hooks, logger *logging.Logger) *EscrowService {
	return &EscrowService{
		store:   store,
		wallets: wallets,
		hooks:   h,
		logger:  logger,
	}
}

// loadForUpdate locks the milestone row and checks the actor against its
// project.
func loadForUpdate(ctx context.Context, q db.Querier, milestoneID uuid.UUID, actor models.Actor, roles ...string) (db.Milestone, db.Project, error) {
	m, err := q.GetMilestoneForUpdate(ctx, milestoneID)
	if db.IsNoRows(err) {
		return db.Milestone{}, db.Project{}, project.NewProjectError(project.ErrMilestoneNotFound, uuid.Nil)
	} else if err != nil {
		return db.Milestone{}, db.Project{}, err
	}
	p, err := project.Load(ctx, q, m.ProjectID)
	if err != nil {
		return db.Milestone{}, db.Project{}, err
	}
	if err := project.RequireParty(p, actor, roles...); err != nil {
		return db.Milestone{}, db.Project{}, err
	}
	return m, p, nil
}

func projectLink(projectID uuid.UUID) string {
	return "/app/projects/" + projectID.String()
}

// Fund moves a DRAFT milestone to FUNDED. Funding an already FUNDED
// milestone again needs a note. When the payer has wallets enabled the
// amount is moved from available to held; otherwise only the state and
// ledger change.
func (e *EscrowService) Fund(ctx context.Context, actor models.Actor, milestoneID uuid.UUID, note string, caps features.Capabilities) (db.Milestone, error) {
	note = strings.TrimSpace(note)
	walletFunded := caps.Enabled(features.WalletEnabled)

	var m db.Milestone
	err := e.hooks.WithLock(ctx, lockKey(milestoneID), func(ctx context.Context) error {
		return e.store.ExecTx(ctx, func(q db.Querier) error {
			current, _, err := loadForUpdate(ctx, q, milestoneID, actor, utils.RoleClient)
			if err != nil {
				return err
			}

			switch current.Status {
			case db.MilestoneDraft:
			case db.MilestoneFunded:
				if note == "" {
					return NewEscrowError(ErrRefundNoteRequired, milestoneID)
				}
			default:
				return NewEscrowError(ErrNotFundable, milestoneID)
			}

			ledgerNote := "Client funded escrow (demo)."
			if walletFunded {
				ledgerNote = "Client funded escrow via wallet."
				_, _, err = e.wallets.Adjust(ctx, q, wallet.Adjustment{
					UserID:         actor.UserID,
					Type:           db.WalletTxHold,
					AmountCents:    current.AmountCents,
					AvailableDelta: -current.AmountCents,
					HeldDelta:      current.AmountCents,
					ProjectID:      wallet.NullUUID(current.ProjectID),
					MilestoneID:    wallet.NullUUID(current.ID),
					Note:           orDefault(note, "Funds held in escrow."),
				})
				if err != nil {
					return err
				}
			}

			m, err = q.FundMilestone(ctx, db.FundMilestoneParams{
				ID:           milestoneID,
				WalletFunded: current.WalletFunded || walletFunded,
			})
			if db.IsNoRows(err) {
				return NewEscrowError(ErrNotFundable, milestoneID)
			} else if err != nil {
				return err
			}

			_, err = q.CreateEscrowLedgerEntry(ctx, db.CreateEscrowLedgerEntryParams{
				MilestoneID: milestoneID,
				Type:        db.LedgerDeposit,
				AmountCents: m.AmountCents,
				Note:        nullString(orDefault(note, ledgerNote)),
			})
			return err
		})
	})
	if err != nil {
		return db.Milestone{}, err
	}

	e.logger.WithFields(logrus.Fields{
		"milestone_id":  m.ID,
		"client_id":     actor.UserID,
		"amount_cents":  m.AmountCents,
		"wallet_funded": walletFunded,
	}).Info("milestone funded")

	e.hooks.Notify(ctx, m.ProjectID, actor.UserID, notification.Message{
		Type:    notification.MilestoneFunded,
		Title:   "Milestone Funded",
		Body:    fmt.Sprintf("%q has been funded with %s INR.", m.Title, currency.FormatCents(m.AmountCents)),
		LinkURL: projectLink(m.ProjectID),
	})
	e.hooks.Fire(ctx, actor.UserID, webhook.MilestoneFunded, map[string]interface{}{
		"projectId":   m.ProjectID,
		"milestoneId": m.ID,
		"title":       m.Title,
		"amountCents": m.AmountCents,
	})
	e.hooks.Record(ctx, activitylogs.Entry{
		Type:        activitylogs.MilestoneFunded,
		ActorID:     actor.UserID,
		ProjectID:   m.ProjectID,
		MilestoneID: m.ID,
		Summary:     fmt.Sprintf("Milestone %q funded with ₹%s", m.Title, currency.FormatCents(m.AmountCents)),
	})
	return m, nil
}

// Start marks a FUNDED milestone as being worked on.
func (e *EscrowService) Start(ctx context.Context, actor models.Actor, milestoneID uuid.UUID) (db.Milestone, error) {
	var m db.Milestone
	err := e.store.ExecTx(ctx, func(q db.Querier) error {
		current, _, err := loadForUpdate(ctx, q, milestoneID, actor, utils.RoleVendor)
		if err != nil {
			return err
		}
		if current.Status != db.MilestoneFunded {
			return NewEscrowError(ErrNotStartable, milestoneID)
		}
		m, err = q.StartMilestone(ctx, milestoneID)
		if db.IsNoRows(err) {
			return NewEscrowError(ErrNotStartable, milestoneID)
		}
		return err
	})
	if err != nil {
		return db.Milestone{}, err
	}

	e.hooks.Record(ctx, activitylogs.Entry{
		Type:        activitylogs.MilestoneStarted,
		ActorID:     actor.UserID,
		ProjectID:   m.ProjectID,
		MilestoneID: m.ID,
		Summary:     fmt.Sprintf("Work started on %q", m.Title),
	})
	return m, nil
}

func (e *EscrowService) addEvidence(ctx context.Context, q db.Querier, milestoneID uuid.UUID, uploaderID int64, files []EvidenceFile) error {
	for _, f := range files {
		if strings.TrimSpace(f.FileName) == "" {
			return NewEscrowError(ErrInvalidEvidenceFile, milestoneID)
		}
		_, err := q.CreateEvidenceFile(ctx, db.CreateEvidenceFileParams{
			MilestoneID: milestoneID,
			UploaderID:  uploaderID,
			FileName:    f.FileName,
			MimeType:    nullString(f.MimeType),
			SizeBytes:   nullInt64(f.SizeBytes),
			Url:         nullString(f.URL),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Submit records the vendor's proof of completion.
func (e *EscrowService) Submit(ctx context.Context, actor models.Actor, milestoneID uuid.UUID, note string, files []EvidenceFile) (db.Milestone, error) {
	var (
		m db.Milestone
		p db.Project
	)
	err := e.hooks.WithLock(ctx, lockKey(milestoneID), func(ctx context.Context) error {
		return e.store.ExecTx(ctx, func(q db.Querier) error {
			current, proj, err := loadForUpdate(ctx, q, milestoneID, actor, utils.RoleVendor)
			if err != nil {
				return err
			}
			p = proj
			if current.Status != db.MilestoneFunded && current.Status != db.MilestoneInProgress {
				return NewEscrowError(ErrNotSubmittable, milestoneID)
			}

			m, err = q.SubmitMilestone(ctx, milestoneID)
			if db.IsNoRows(err) {
				return NewEscrowError(ErrNotSubmittable, milestoneID)
			} else if err != nil {
				return err
			}

			_, err = q.CreateEscrowLedgerEntry(ctx, db.CreateEscrowLedgerEntryParams{
				MilestoneID: milestoneID,
				Type:        db.LedgerProofSubmitted,
				Note:        nullString(orDefault(strings.TrimSpace(note), "Proof submitted.")),
			})
			if err != nil {
				return err
			}
			return e.addEvidence(ctx, q, milestoneID, actor.UserID, files)
		})
	})
	if err != nil {
		return db.Milestone{}, err
	}

	e.logger.WithFields(logrus.Fields{"milestone_id": m.ID, "vendor_id": actor.UserID, "files": len(files)}).Info("milestone submitted")

	e.hooks.Notify(ctx, m.ProjectID, actor.UserID, notification.Message{
		Type:    notification.MilestoneSubmitted,
		Title:   "Work Submitted",
		Body:    fmt.Sprintf("%q: provider has submitted proof of completion.", m.Title),
		LinkURL: projectLink(m.ProjectID),
	})
	if p.VendorID.Valid {
		e.hooks.Fire(ctx, p.VendorID.Int64, webhook.MilestoneSubmitted, map[string]interface{}{
			"projectId":   m.ProjectID,
			"milestoneId": m.ID,
			"title":       m.Title,
		})
	}
	e.hooks.Record(ctx, activitylogs.Entry{
		Type:        activitylogs.MilestoneSubmit,
		ActorID:     actor.UserID,
		ProjectID:   m.ProjectID,
		MilestoneID: m.ID,
		Summary:     fmt.Sprintf("Proof submitted for %q", m.Title),
	})
	return m, nil
}

// Release approves a SUBMITTED milestone and pays the vendor. The
// milestone update, ledger entry, advance repayments and both wallet
// movements commit together or not at all.
func (e *EscrowService) Release(ctx context.Context, actor models.Actor, milestoneID uuid.UUID, partialCents *int64, note string, caps features.Capabilities) (ReleaseResult, error) {
	note = strings.TrimSpace(note)

	var (
		res ReleaseResult
		p   db.Project
	)
	err := e.hooks.WithLock(ctx, lockKey(milestoneID), func(ctx context.Context) error {
		return e.store.ExecTx(ctx, func(q db.Querier) error {
			res = ReleaseResult{}
			current, proj, err := loadForUpdate(ctx, q, milestoneID, actor, utils.RoleClient)
			if err != nil {
				return err
			}
			p = proj

			plan, err := ComputeRelease(current, partialCents, caps.Enabled(features.PartialRelease))
			if err != nil {
				return err
			}

			m, err := q.ReleaseMilestone(ctx, db.ReleaseMilestoneParams{
				ID:                    milestoneID,
				ReleasedCents:         plan.NewReleased,
				Status:                plan.Status,
				ExpectedReleasedCents: current.ReleasedCents,
			})
			if db.IsNoRows(err) {
				return NewEscrowError(ErrConcurrentRelease, milestoneID)
			} else if err != nil {
				return err
			}

			defaultNote := "Funds released."
			if !plan.FullyReleased {
				defaultNote = "Partial funds released."
			}
			_, err = q.CreateEscrowLedgerEntry(ctx, db.CreateEscrowLedgerEntryParams{
				MilestoneID: milestoneID,
				Type:        plan.LedgerType,
				AmountCents: plan.Amount,
				Note:        nullString(orDefault(note, defaultNote)),
			})
			if err != nil {
				return err
			}

			var deducted int64
			if p.VendorID.Valid {
				vendorID := p.VendorID.Int64
				_, deducted, err = advance.ApplyRepayments(ctx, q, p.ID, vendorID, plan.Amount)
				if err != nil {
					return err
				}

				if net := plan.Amount - deducted; net > 0 {
					_, _, err = e.wallets.Adjust(ctx, q, wallet.Adjustment{
						UserID:         vendorID,
						Type:           db.WalletTxRelease,
						AmountCents:    net,
						AvailableDelta: net,
						ProjectID:      wallet.NullUUID(p.ID),
						MilestoneID:    wallet.NullUUID(milestoneID),
						Note:           releaseNote(plan.FullyReleased, deducted),
					})
					if err != nil {
						return err
					}
				}
				res.VendorCredit = plan.Amount - deducted
			}

			if current.WalletFunded {
				_, _, err = e.wallets.Adjust(ctx, q, wallet.Adjustment{
					UserID:      p.ClientID,
					Type:        db.WalletTxRelease,
					AmountCents: plan.Amount,
					HeldDelta:   -plan.Amount,
					ProjectID:   wallet.NullUUID(p.ID),
					MilestoneID: wallet.NullUUID(milestoneID),
					Note:        "Escrow released to provider.",
				})
				if err != nil {
					return err
				}
			}

			res.Milestone = m
			res.ReleasedAmount = plan.Amount
			res.AdvanceDeduction = deducted
			res.FullyReleased = plan.FullyReleased
			return nil
		})
	})
	if err != nil {
		return ReleaseResult{}, err
	}

	e.afterRelease(ctx, actor, p, res)
	return res, nil
}

func releaseNote(fully bool, deducted int64) string {
	prefix := "Payment"
	if !fully {
		prefix = "Partial payment"
	}
	if deducted > 0 {
		return fmt.Sprintf("%s received. ₹%s deducted for advance repayment.", prefix, currency.FormatCents(deducted))
	}
	return prefix + " received."
}

func (e *EscrowService) afterRelease(ctx context.Context, actor models.Actor, p db.Project, res ReleaseResult) {
	m := res.Milestone
	e.logger.WithFields(logrus.Fields{
		"milestone_id":      m.ID,
		"released_cents":    res.ReleasedAmount,
		"total_released":    m.ReleasedCents,
		"advance_deduction": res.AdvanceDeduction,
		"fully_released":    res.FullyReleased,
	}).Info("milestone released")

	invType, desc := invoice.TypeRelease, "Full release for milestone: "+m.Title
	if !res.FullyReleased {
		invType, desc = invoice.TypePartialRelease, "Partial release for milestone: "+m.Title
	}
	payee := p.ClientID
	if p.VendorID.Valid {
		payee = p.VendorID.Int64
	}
	e.hooks.Invoice(ctx, invoice.Request{
		Type:        invType,
		UserID:      payee,
		AmountCents: res.ReleasedAmount,
		ProjectID:   p.ID,
		MilestoneID: m.ID,
		Description: desc,
	})

	e.hooks.AdvanceStages(ctx, p.ID, m.Title, actor.UserID)

	title, body := "Payment Released", fmt.Sprintf("%q: full payment of %s INR released.", m.Title, currency.FormatCents(m.AmountCents))
	event := webhook.MilestoneReleased
	if !res.FullyReleased {
		title = "Partial Payment Released"
		body = fmt.Sprintf("%q: %s INR released (%s/%s total).", m.Title,
			currency.FormatCents(res.ReleasedAmount), currency.FormatCents(m.ReleasedCents), currency.FormatCents(m.AmountCents))
		event = webhook.MilestonePartialRelease
	}
	e.hooks.Notify(ctx, p.ID, actor.UserID, notification.Message{
		Type:    notification.MilestoneReleased,
		Title:   title,
		Body:    body,
		LinkURL: projectLink(p.ID),
	})
	e.hooks.Fire(ctx, p.ClientID, event, map[string]interface{}{
		"projectId":           p.ID,
		"milestoneId":         m.ID,
		"title":               m.Title,
		"releasedAmountCents": res.ReleasedAmount,
		"totalReleasedCents":  m.ReleasedCents,
		"fullyReleased":       res.FullyReleased,
	})
	e.hooks.Record(ctx, activitylogs.Entry{
		Type:        activitylogs.MilestoneReleased,
		ActorID:     actor.UserID,
		ProjectID:   p.ID,
		MilestoneID: m.ID,
		Summary:     fmt.Sprintf("₹%s released for %q", currency.FormatCents(res.ReleasedAmount), m.Title),
		Metadata: map[string]interface{}{
			"releasedAmountCents": res.ReleasedAmount,
			"advanceDeduction":    res.AdvanceDeduction,
			"fullyReleased":       res.FullyReleased,
		},
	})
}

// Dispute freezes a milestone that has not been released yet. No money
// moves.
func (e *EscrowService) Dispute(ctx context.Context, actor models.Actor, milestoneID uuid.UUID, reason string, files []EvidenceFile) (db.Dispute, error) {
	if actor.IsAdmin() {
		return db.Dispute{}, NewEscrowError(ErrAdminCannotDispute, milestoneID)
	}
	reason = orDefault(strings.TrimSpace(reason), "Dispute opened.")

	var (
		d db.Dispute
		m db.Milestone
		p db.Project
	)
	err := e.hooks.WithLock(ctx, lockKey(milestoneID), func(ctx context.Context) error {
		return e.store.ExecTx(ctx, func(q db.Querier) error {
			current, proj, err := loadForUpdate(ctx, q, milestoneID, actor, utils.RoleClient, utils.RoleVendor)
			if err != nil {
				return err
			}
			p = proj
			if current.Status == db.MilestoneReleased {
				return NewEscrowError(ErrAlreadyReleased, milestoneID)
			}

			m, err = q.DisputeMilestone(ctx, milestoneID)
			if db.IsNoRows(err) {
				return NewEscrowError(ErrAlreadyReleased, milestoneID)
			} else if err != nil {
				return err
			}

			d, err = q.CreateDispute(ctx, db.CreateDisputeParams{
				ProjectID:   p.ID,
				MilestoneID: wallet.NullUUID(milestoneID),
				OpenedBy:    actor.UserID,
				Reason:      reason,
			})
			if err != nil {
				return err
			}

			_, err = q.CreateEscrowLedgerEntry(ctx, db.CreateEscrowLedgerEntryParams{
				MilestoneID: milestoneID,
				Type:        db.LedgerDisputeOpened,
				Note:        nullString(reason),
			})
			if err != nil {
				return err
			}
			return e.addEvidence(ctx, q, milestoneID, actor.UserID, files)
		})
	})
	if err != nil {
		return db.Dispute{}, err
	}

	e.logger.WithFields(logrus.Fields{"milestone_id": m.ID, "dispute_id": d.ID, "actor_id": actor.UserID}).Info("milestone disputed")

	e.hooks.Notify(ctx, p.ID, actor.UserID, notification.Message{
		Type:    notification.DisputeOpened,
		Title:   "Dispute Opened",
		Body:    fmt.Sprintf("A dispute has been opened for %q.", m.Title),
		LinkURL: "/app/disputes",
	})
	e.hooks.Fire(ctx, p.ClientID, webhook.DisputeOpened, map[string]interface{}{
		"projectId":   p.ID,
		"milestoneId": m.ID,
		"title":       m.Title,
		"reason":      reason,
	})
	e.hooks.Record(ctx, activitylogs.Entry{
		Type:        activitylogs.MilestoneDisputed,
		ActorID:     actor.UserID,
		ProjectID:   p.ID,
		MilestoneID: m.ID,
		DisputeID:   d.ID,
		Summary:     fmt.Sprintf("Dispute opened for %q", m.Title),
	})
	return d, nil
}

func (e *EscrowService) Get(ctx context.Context, actor models.Actor, milestoneID uuid.UUID) (MilestoneDetail, error) {
	m, p, err := project.LoadMilestone(ctx, e.store, milestoneID)
	if err != nil {
		return MilestoneDetail{}, err
	}
	if !project.CanView(p, actor) {
		return MilestoneDetail{}, project.NewProjectError(project.ErrForbidden, p.ID)
	}
	files, err := e.store.ListEvidenceFiles(ctx, milestoneID)
	if err != nil {
		return MilestoneDetail{}, err
	}
	return MilestoneDetail{Milestone: m, Evidence: files}, nil
}

// ListLedger returns the milestone's ledger, oldest entry first.
func (e *EscrowService) ListLedger(ctx context.Context, actor models.Actor, milestoneID uuid.UUID) ([]db.EscrowLedgerEntry, error) {
	_, p, err := project.LoadMilestone(ctx, e.store, milestoneID)
	if err != nil {
		return nil, err
	}
	if !project.CanView(p, actor) {
		return nil, project.NewProjectError(project.ErrForbidden, p.ID)
	}
	return e.store.ListEscrowLedgerEntries(ctx, milestoneID)
}

// Wait blocks until background follow-ups such as stage advancement have
// finished.
func (e *EscrowService) Wait() {
	e.hooks.Wait()
}
