package memstore

import (
	"context"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
)

func (q *Queries) CreateProject(_ context.Context, arg db.CreateProjectParams) (db.Project, error) {
	defer q.lock()()
	now := q.now()
	p := db.Project{
		ID:          uuid.New(),
		ClientID:    arg.ClientID,
		Title:       arg.Title,
		Description: arg.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	q.t.projects[p.ID] = p
	return p, nil
}

func (q *Queries) GetProject(_ context.Context, id uuid.UUID) (db.Project, error) {
	defer q.lock()()
	p, ok := q.t.projects[id]
	if !ok {
		return noRows[db.Project]()
	}
	return p, nil
}

func (q *Queries) AssignProjectVendor(_ context.Context, arg db.AssignProjectVendorParams) (db.Project, error) {
	defer q.lock()()
	p, ok := q.t.projects[arg.ID]
	if !ok {
		return noRows[db.Project]()
	}
	p.VendorID = arg.VendorID
	p.UpdatedAt = q.now()
	q.t.projects[p.ID] = p
	return p, nil
}

func (q *Queries) ListProjectsByUser(_ context.Context, arg db.ListProjectsByUserParams) ([]db.Project, error) {
	defer q.lock()()
	out := []db.Project{}
	for _, p := range q.t.projects {
		if p.ClientID == arg.UserID || (p.VendorID.Valid && p.VendorID.Int64 == arg.UserID) {
			out = append(out, p)
		}
	}
	sortByCreated(out, func(p db.Project) time.Time { return p.CreatedAt }, true)
	return page(out, arg.MaxRows, arg.SkipRows), nil
}
