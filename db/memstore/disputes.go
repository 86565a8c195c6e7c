package memstore

import (
	"context"
	"database/sql"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
)

func (q *Queries) CreateDispute(_ context.Context, arg db.CreateDisputeParams) (db.Dispute, error) {
	defer q.lock()()
	if _, ok := q.t.projects[arg.ProjectID]; !ok {
		return db.Dispute{}, foreignKey("disputes_project_id_fkey")
	}
	if arg.MilestoneID.Valid {
		if _, ok := q.t.milestones[arg.MilestoneID.UUID]; !ok {
			return db.Dispute{}, foreignKey("disputes_milestone_id_fkey")
		}
	}
	now := q.now()
	d := db.Dispute{
		ID:          uuid.New(),
		ProjectID:   arg.ProjectID,
		MilestoneID: arg.MilestoneID,
		OpenedBy:    arg.OpenedBy,
		Reason:      arg.Reason,
		ClaimType:   arg.ClaimType,
		Status:      db.DisputeOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	q.t.disputes[d.ID] = d
	return d, nil
}

func (q *Queries) GetDispute(_ context.Context, id uuid.UUID) (db.Dispute, error) {
	defer q.lock()()
	d, ok := q.t.disputes[id]
	if !ok {
		return noRows[db.Dispute]()
	}
	return d, nil
}

func (q *Queries) GetDisputeForUpdate(ctx context.Context, id uuid.UUID) (db.Dispute, error) {
	return q.GetDispute(ctx, id)
}

func (q *Queries) ListDisputesByProject(_ context.Context, projectID uuid.UUID) ([]db.Dispute, error) {
	defer q.lock()()
	out := []db.Dispute{}
	for _, d := range q.t.disputes {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	sortByCreated(out, func(d db.Dispute) time.Time { return d.CreatedAt }, true)
	return out, nil
}

func (q *Queries) ResolveDispute(_ context.Context, arg db.ResolveDisputeParams) (db.Dispute, error) {
	defer q.lock()()
	d, ok := q.t.disputes[arg.ID]
	if !ok || d.Status != db.DisputeOpen {
		return noRows[db.Dispute]()
	}
	now := q.now()
	d.Status = arg.Status
	d.Resolution = arg.Resolution
	d.CompensationCents = arg.CompensationCents
	d.CompensationRecipient = arg.CompensationRecipient
	d.CompensationNote = arg.CompensationNote
	d.DecidedBy = arg.DecidedBy
	d.DecidedAt = sql.NullTime{Time: now, Valid: true}
	d.UpdatedAt = now
	q.t.disputes[d.ID] = d
	return d, nil
}
