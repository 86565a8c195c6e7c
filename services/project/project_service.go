package project

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Detail is a project with everything hanging off it that the owner
// screen needs.
type Detail struct {
	db.Project
	Milestones []db.Milestone `json:"milestones"`
	OrderItems []db.OrderItem `json:"order_items"`
}

type ProjectService struct {
	store  db.Store
	logger *logging.Logger
}

func NewProjectService(store db.Store, logger *logging.Logger) *ProjectService {
	return &ProjectService{
		store:  store,
		logger: logger,
	}
}

func (p *ProjectService) Create(ctx context.Context, actor models.Actor, title, description string) (db.Project, error) {
	if !actor.IsClient() {
		return db.Project{}, ErrForbidden
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return db.Project{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	project, err := p.store.CreateProject(ctx, db.CreateProjectParams{
		ClientID:    actor.UserID,
		Title:       title,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return db.Project{}, err
	}

	p.logger.WithFields(logrus.Fields{"project_id": project.ID, "client_id": actor.UserID}).Info("project created")
	return project, nil
}

// Load fetches a project and maps a missing row to ErrProjectNotFound.
func Load(ctx context.Context, q db.Querier, projectID uuid.UUID) (db.Project, error) {
	project, err := q.GetProject(ctx, projectID)
	if db.IsNoRows(err) {
		return db.Project{}, NewProjectError(ErrProjectNotFound, projectID)
	}
	return project, err
}

// LoadMilestone fetches a milestone together with its project.
func LoadMilestone(ctx context.Context, q db.Querier, milestoneID uuid.UUID) (db.Milestone, db.Project, error) {
	m, err := q.GetMilestone(ctx, milestoneID)
	if db.IsNoRows(err) {
		return db.Milestone{}, db.Project{}, NewProjectError(ErrMilestoneNotFound, uuid.Nil)
	} else if err != nil {
		return db.Milestone{}, db.Project{}, err
	}
	project, err := Load(ctx, q, m.ProjectID)
	if err != nil {
		return db.Milestone{}, db.Project{}, err
	}
	return m, project, nil
}

func (p *ProjectService) Get(ctx context.Context, actor models.Actor, projectID uuid.UUID) (Detail, error) {
	project, err := Load(ctx, p.store, projectID)
	if err != nil {
		return Detail{}, err
	}
	if !CanView(project, actor) {
		return Detail{}, NewProjectError(ErrForbidden, projectID)
	}

	milestones, err := p.store.ListMilestonesByProject(ctx, projectID)
	if err != nil {
		return Detail{}, err
	}
	items, err := p.store.ListOrderItemsByProject(ctx, projectID)
	if err != nil {
		return Detail{}, err
	}

	return Detail{Project: project, Milestones: milestones, OrderItems: items}, nil
}

func (p *ProjectService) ListForUser(ctx context.Context, actor models.Actor, limit, offset int32) ([]db.Project, error) {
	return p.store.ListProjectsByUser(ctx, db.ListProjectsByUserParams{
		UserID:   actor.UserID,
		MaxRows:  limit,
		SkipRows: offset,
	})
}

// AssignVendor is open to admins and the owning client.
func (p *ProjectService) AssignVendor(ctx context.Context, actor models.Actor, projectID uuid.UUID, vendorID int64) (db.Project, error) {
	if vendorID <= 0 {
		return db.Project{}, fmt.Errorf("%w: vendor id is required", ErrInvalidInput)
	}

	project, err := Load(ctx, p.store, projectID)
	if err != nil {
		return db.Project{}, err
	}
	if err := RequireParty(project, actor, utils.RoleAdmin, utils.RoleClient); err != nil {
		return db.Project{}, err
	}

	project, err = p.store.AssignProjectVendor(ctx, db.AssignProjectVendorParams{
		ID:       projectID,
		VendorID: sql.NullInt64{Int64: vendorID, Valid: true},
	})
	if err != nil {
		return db.Project{}, err
	}

	p.logger.WithFields(logrus.Fields{"project_id": projectID, "vendor_id": vendorID, "actor_id": actor.UserID}).Info("vendor assigned")
	return project, nil
}

// CreateMilestone adds a DRAFT milestone. Only the project's client or an
// admin may price work.
func (p *ProjectService) CreateMilestone(ctx context.Context, actor models.Actor, projectID uuid.UUID, title, description string, amountCents int64) (db.Milestone, error) {
	if amountCents <= 0 {
		return db.Milestone{}, NewProjectError(ErrInvalidAmount, projectID)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return db.Milestone{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	project, err := Load(ctx, p.store, projectID)
	if err != nil {
		return db.Milestone{}, err
	}
	if err := RequireParty(project, actor, utils.RoleAdmin, utils.RoleClient); err != nil {
		return db.Milestone{}, err
	}

	return p.store.CreateMilestone(ctx, db.CreateMilestoneParams{
		ProjectID:   projectID,
		Title:       title,
		Description: strings.TrimSpace(description),
		AmountCents: amountCents,
	})
}

func (p *ProjectService) CreateOrderItem(ctx context.Context, actor models.Actor, projectID uuid.UUID, label string) (db.OrderItem, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return db.OrderItem{}, fmt.Errorf("%w: label is required", ErrInvalidInput)
	}

	project, err := Load(ctx, p.store, projectID)
	if err != nil {
		return db.OrderItem{}, err
	}
	if err := RequireParty(project, actor, utils.RoleAdmin, utils.RoleClient, utils.RoleVendor); err != nil {
		return db.OrderItem{}, err
	}

	return p.store.CreateOrderItem(ctx, db.CreateOrderItemParams{ProjectID: projectID, Label: label})
}
