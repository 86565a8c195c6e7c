package activitylogs

import (
	"context"
	"database/sql"
	"encoding/json"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sqlc-dev/pqtype"
)

// Activity types written by the domain services.
const (
	AdvanceRequested  = "ADVANCE_REQUESTED"
	AdvanceApproved   = "ADVANCE_APPROVED"
	AdvanceRejected   = "ADVANCE_REJECTED"
	ClaimOpened       = "CLAIM_OPENED"
	ClaimDecided      = "CLAIM_DECIDED"
	MilestoneFunded   = "MILESTONE_FUNDED"
	MilestoneStarted  = "MILESTONE_STARTED"
	MilestoneSubmit   = "MILESTONE_SUBMITTED"
	MilestoneReleased = "MILESTONE_RELEASED"
	MilestoneDisputed = "MILESTONE_DISPUTED"
	AdminRequest      = "ADMIN_REQUEST"
)

type ActivityLog struct {
	store  db.Querier
	logger *logging.Logger
}

func NewActivityLog(store db.Querier, logger *logging.Logger) *ActivityLog {
	return &ActivityLog{
		store:  store,
		logger: logger,
	}
}

type Entry struct {
	Type             string
	ActorID          int64
	ProjectID        uuid.UUID
	MilestoneID      uuid.UUID
	DisputeID        uuid.UUID
	CapitalAdvanceID uuid.UUID
	Summary          string
	Metadata         map[string]interface{}
}

func (a *ActivityLog) Create(ctx context.Context, e Entry) (db.ActivityLog, error) {
	meta, err := toRawMessage(e.Metadata)
	if err != nil {
		return db.ActivityLog{}, err
	}
	return a.store.CreateActivityLog(ctx, db.CreateActivityLogParams{
		Type:             e.Type,
		ActorID:          toNullInt64(e.ActorID),
		ProjectID:        toNullUUID(e.ProjectID),
		MilestoneID:      toNullUUID(e.MilestoneID),
		DisputeID:        toNullUUID(e.DisputeID),
		CapitalAdvanceID: toNullUUID(e.CapitalAdvanceID),
		Summary:          e.Summary,
		Metadata:         meta,
	})
}

// Record is Create for callers that have already committed their work and
// only want the failure logged.
func (a *ActivityLog) Record(ctx context.Context, e Entry) {
	if _, err := a.Create(ctx, e); err != nil {
		a.logger.WithFields(logrus.Fields{"type": e.Type, "actor_id": e.ActorID}).WithError(err).Warn("activity log write failed")
	}
}

func (a *ActivityLog) GetRecent(ctx context.Context, limit, offset int32) ([]db.ActivityLog, error) {
	return a.store.ListRecentActivity(ctx, db.ListRecentActivityParams{
		Limit:  limit,
		Offset: offset,
	})
}

// Helper functions
func toNullInt64(i int64) sql.NullInt64 {
	return sql.NullInt64{Int64: i, Valid: i != 0}
}

func toNullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func toRawMessage(m map[string]interface{}) (pqtype.NullRawMessage, error) {
	if len(m) == 0 {
		return pqtype.NullRawMessage{}, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	return pqtype.NullRawMessage{RawMessage: b, Valid: true}, nil
}
