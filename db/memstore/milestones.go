package memstore

import (
	"context"
	"database/sql"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
)

func (q *Queries) CreateMilestone(_ context.Context, arg db.CreateMilestoneParams) (db.Milestone, error) {
	defer q.lock()()
	if _, ok := q.t.projects[arg.ProjectID]; !ok {
		return db.Milestone{}, foreignKey("milestones_project_id_fkey")
	}
	if arg.AmountCents <= 0 {
		return db.Milestone{}, checkViolation("milestones_amount_cents_check")
	}
	now := q.now()
	m := db.Milestone{
		ID:          uuid.New(),
		ProjectID:   arg.ProjectID,
		Title:       arg.Title,
		Description: arg.Description,
		AmountCents: arg.AmountCents,
		Status:      db.MilestoneDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	q.t.milestones[m.ID] = m
	return m, nil
}

func (q *Queries) GetMilestone(_ context.Context, id uuid.UUID) (db.Milestone, error) {
	defer q.lock()()
	m, ok := q.t.milestones[id]
	if !ok {
		return noRows[db.Milestone]()
	}
	return m, nil
}

func (q *Queries) GetMilestoneForUpdate(ctx context.Context, id uuid.UUID) (db.Milestone, error) {
	return q.GetMilestone(ctx, id)
}

func (q *Queries) ListMilestonesByProject(_ context.Context, projectID uuid.UUID) ([]db.Milestone, error) {
	defer q.lock()()
	return q.milestonesOf(projectID), nil
}

func (q *Queries) milestonesOf(projectID uuid.UUID) []db.Milestone {
	out := []db.Milestone{}
	for _, m := range q.t.milestones {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	sortByCreated(out, func(m db.Milestone) time.Time { return m.CreatedAt }, false)
	return out
}

func (q *Queries) GetEarliestMilestone(_ context.Context, projectID uuid.UUID) (db.Milestone, error) {
	defer q.lock()()
	ms := q.milestonesOf(projectID)
	if len(ms) == 0 {
		return noRows[db.Milestone]()
	}
	return ms[0], nil
}

// transition applies fn to the milestone when its status is one of from.
// A missing row or a status outside from reads as no rows, like a guarded
// UPDATE ... RETURNING.
func (q *Queries) transition(id uuid.UUID, from []string, fn func(m *db.Milestone, now time.Time)) (db.Milestone, error) {
	defer q.lock()()
	m, ok := q.t.milestones[id]
	if !ok || !contains(from, m.Status) {
		return noRows[db.Milestone]()
	}
	now := q.now()
	fn(&m, now)
	m.UpdatedAt = now
	q.t.milestones[id] = m
	return m, nil
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func (q *Queries) FundMilestone(_ context.Context, arg db.FundMilestoneParams) (db.Milestone, error) {
	return q.transition(arg.ID, []string{db.MilestoneDraft, db.MilestoneFunded}, func(m *db.Milestone, now time.Time) {
		m.Status = db.MilestoneFunded
		m.WalletFunded = arg.WalletFunded
		m.FundedAt = sql.NullTime{Time: now, Valid: true}
	})
}

func (q *Queries) StartMilestone(_ context.Context, id uuid.UUID) (db.Milestone, error) {
	return q.transition(id, []string{db.MilestoneFunded}, func(m *db.Milestone, _ time.Time) {
		m.Status = db.MilestoneInProgress
	})
}

func (q *Queries) SubmitMilestone(_ context.Context, id uuid.UUID) (db.Milestone, error) {
	return q.transition(id, []string{db.MilestoneFunded, db.MilestoneInProgress}, func(m *db.Milestone, now time.Time) {
		m.Status = db.MilestoneSubmitted
		m.SubmittedAt = sql.NullTime{Time: now, Valid: true}
	})
}

func (q *Queries) ReleaseMilestone(_ context.Context, arg db.ReleaseMilestoneParams) (db.Milestone, error) {
	defer q.lock()()
	m, ok := q.t.milestones[arg.ID]
	if !ok || m.Status != db.MilestoneSubmitted || m.ReleasedCents != arg.ExpectedReleasedCents {
		return noRows[db.Milestone]()
	}
	if arg.ReleasedCents < 0 || arg.ReleasedCents > m.AmountCents {
		return db.Milestone{}, checkViolation("milestones_released_range")
	}
	if (arg.Status == db.MilestoneReleased) != (arg.ReleasedCents == m.AmountCents) {
		return db.Milestone{}, checkViolation("milestones_released_status")
	}
	now := q.now()
	m.ReleasedCents = arg.ReleasedCents
	m.Status = arg.Status
	if arg.Status == db.MilestoneReleased {
		m.ReleasedAt = sql.NullTime{Time: now, Valid: true}
	}
	m.UpdatedAt = now
	q.t.milestones[m.ID] = m
	return m, nil
}

func (q *Queries) DisputeMilestone(_ context.Context, id uuid.UUID) (db.Milestone, error) {
	return q.transition(id, []string{db.MilestoneDraft, db.MilestoneFunded, db.MilestoneInProgress, db.MilestoneSubmitted, db.MilestoneDisputed}, func(m *db.Milestone, _ time.Time) {
		m.Status = db.MilestoneDisputed
	})
}

func (q *Queries) CreateEscrowLedgerEntry(_ context.Context, arg db.CreateEscrowLedgerEntryParams) (db.EscrowLedgerEntry, error) {
	defer q.lock()()
	if _, ok := q.t.milestones[arg.MilestoneID]; !ok {
		return db.EscrowLedgerEntry{}, foreignKey("escrow_ledger_entries_milestone_id_fkey")
	}
	if arg.AmountCents < 0 {
		return db.EscrowLedgerEntry{}, checkViolation("escrow_ledger_entries_amount_cents_check")
	}
	e := db.EscrowLedgerEntry{
		ID:          uuid.New(),
		MilestoneID: arg.MilestoneID,
		Type:        arg.Type,
		AmountCents: arg.AmountCents,
		Note:        arg.Note,
		CreatedAt:   q.now(),
	}
	q.t.ledger = append(q.t.ledger, e)
	return e, nil
}

func (q *Queries) ListEscrowLedgerEntries(_ context.Context, milestoneID uuid.UUID) ([]db.EscrowLedgerEntry, error) {
	defer q.lock()()
	out := []db.EscrowLedgerEntry{}
	for _, e := range q.t.ledger {
		if e.MilestoneID == milestoneID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (q *Queries) CreateEvidenceFile(_ context.Context, arg db.CreateEvidenceFileParams) (db.EvidenceFile, error) {
	defer q.lock()()
	if _, ok := q.t.milestones[arg.MilestoneID]; !ok {
		return db.EvidenceFile{}, foreignKey("evidence_files_milestone_id_fkey")
	}
	f := db.EvidenceFile{
		ID:          uuid.New(),
		MilestoneID: arg.MilestoneID,
		UploaderID:  arg.UploaderID,
		FileName:    arg.FileName,
		MimeType:    arg.MimeType,
		SizeBytes:   arg.SizeBytes,
		Url:         arg.Url,
		CreatedAt:   q.now(),
	}
	q.t.evidence = append(q.t.evidence, f)
	return f, nil
}

func (q *Queries) ListEvidenceFiles(_ context.Context, milestoneID uuid.UUID) ([]db.EvidenceFile, error) {
	defer q.lock()()
	out := []db.EvidenceFile{}
	for _, f := range q.t.evidence {
		if f.MilestoneID == milestoneID {
			out = append(out, f)
		}
	}
	return out, nil
}
