package memstore

import (
	"context"
	"database/sql"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
)

func (q *Queries) CreateCapitalAdvance(_ context.Context, arg db.CreateCapitalAdvanceParams) (db.CapitalAdvance, error) {
	defer q.lock()()
	if _, ok := q.t.projects[arg.ProjectID]; !ok {
		return db.CapitalAdvance{}, foreignKey("capital_advances_project_id_fkey")
	}
	if arg.RequestedCents <= 0 {
		return db.CapitalAdvance{}, checkViolation("capital_advances_requested_cents_check")
	}
	for _, a := range q.t.advances {
		if a.ProjectID == arg.ProjectID && a.VendorID == arg.VendorID && a.Status == db.AdvanceRequested {
			return db.CapitalAdvance{}, duplicate("capital_advances_one_pending")
		}
	}
	now := q.now()
	a := db.CapitalAdvance{
		ID:             uuid.New(),
		ProjectID:      arg.ProjectID,
		VendorID:       arg.VendorID,
		RequestedCents: arg.RequestedCents,
		Status:         db.AdvanceRequested,
		RequestNote:    arg.RequestNote,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	q.t.advances[a.ID] = a
	return a, nil
}

func (q *Queries) GetCapitalAdvance(_ context.Context, id uuid.UUID) (db.CapitalAdvance, error) {
	defer q.lock()()
	a, ok := q.t.advances[id]
	if !ok {
		return noRows[db.CapitalAdvance]()
	}
	return a, nil
}

func (q *Queries) GetCapitalAdvanceForUpdate(ctx context.Context, id uuid.UUID) (db.CapitalAdvance, error) {
	return q.GetCapitalAdvance(ctx, id)
}

func (q *Queries) ListCapitalAdvancesByProject(_ context.Context, projectID uuid.UUID) ([]db.CapitalAdvance, error) {
	defer q.lock()()
	out := []db.CapitalAdvance{}
	for _, a := range q.t.advances {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	sortByCreated(out, func(a db.CapitalAdvance) time.Time { return a.CreatedAt }, true)
	return out, nil
}

func (q *Queries) ListApprovedAdvancesForUpdate(_ context.Context, arg db.ListApprovedAdvancesForUpdateParams) ([]db.CapitalAdvance, error) {
	defer q.lock()()
	out := []db.CapitalAdvance{}
	for _, a := range q.t.advances {
		if a.ProjectID == arg.ProjectID && a.VendorID == arg.VendorID && a.Status == db.AdvanceApproved {
			out = append(out, a)
		}
	}
	sortByCreated(out, func(a db.CapitalAdvance) time.Time { return a.CreatedAt }, false)
	return out, nil
}

func (q *Queries) CountPendingAdvances(_ context.Context, arg db.CountPendingAdvancesParams) (int64, error) {
	defer q.lock()()
	var n int64
	for _, a := range q.t.advances {
		if a.ProjectID == arg.ProjectID && a.VendorID == arg.VendorID && a.Status == db.AdvanceRequested {
			n++
		}
	}
	return n, nil
}

func (q *Queries) decideAdvance(id uuid.UUID, fn func(a *db.CapitalAdvance, now time.Time)) (db.CapitalAdvance, error) {
	defer q.lock()()
	a, ok := q.t.advances[id]
	if !ok || a.Status != db.AdvanceRequested {
		return noRows[db.CapitalAdvance]()
	}
	now := q.now()
	fn(&a, now)
	a.DecidedAt = sql.NullTime{Time: now, Valid: true}
	a.UpdatedAt = now
	q.t.advances[id] = a
	return a, nil
}

func (q *Queries) ApproveCapitalAdvance(_ context.Context, arg db.ApproveCapitalAdvanceParams) (db.CapitalAdvance, error) {
	return q.decideAdvance(arg.ID, func(a *db.CapitalAdvance, _ time.Time) {
		a.Status = db.AdvanceApproved
		a.ApprovedCents = arg.ApprovedCents
		a.DecisionNote = arg.DecisionNote
		a.DecidedBy = arg.DecidedBy
	})
}

func (q *Queries) RejectCapitalAdvance(_ context.Context, arg db.RejectCapitalAdvanceParams) (db.CapitalAdvance, error) {
	return q.decideAdvance(arg.ID, func(a *db.CapitalAdvance, _ time.Time) {
		a.Status = db.AdvanceRejected
		a.DecisionNote = arg.DecisionNote
		a.DecidedBy = arg.DecidedBy
	})
}

func (q *Queries) RecordAdvanceRepayment(_ context.Context, arg db.RecordAdvanceRepaymentParams) (db.CapitalAdvance, error) {
	defer q.lock()()
	a, ok := q.t.advances[arg.ID]
	if !ok || a.Status != db.AdvanceApproved || a.RepaidCents != arg.ExpectedRepaidCents {
		return noRows[db.CapitalAdvance]()
	}
	if arg.RepaidCents < 0 || arg.RepaidCents > a.ApprovedCents {
		return db.CapitalAdvance{}, checkViolation("capital_advances_repaid_range")
	}
	now := q.now()
	a.RepaidCents = arg.RepaidCents
	if arg.RepaidCents >= a.ApprovedCents {
		a.RepaidAt = sql.NullTime{Time: now, Valid: true}
	}
	a.UpdatedAt = now
	q.t.advances[a.ID] = a
	return a, nil
}
