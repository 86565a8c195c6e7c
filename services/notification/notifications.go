package notification

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// In-app notification types.
const (
	MilestoneFunded    = "MILESTONE_FUNDED"
	MilestoneSubmitted = "MILESTONE_SUBMITTED"
	MilestoneReleased  = "MILESTONE_RELEASED"
	DisputeOpened      = "DISPUTE_OPENED"
	DisputeResolved    = "DISPUTE_RESOLVED"
	AdvanceDecided     = "ADVANCE_DECIDED"
)

type Message struct {
	Type    string
	Title   string
	Body    string
	LinkURL string
}

type Notification struct {
	store  db.Querier
	logger *logging.Logger
}

func NewNotificationService(store db.Querier, logger *logging.Logger) *Notification {
	return &Notification{store: store, logger: logger}
}

func (n *Notification) Create(ctx context.Context, userID int64, m Message) (*db.Notification, error) {
	nots, err := n.store.CreateNotification(ctx, db.CreateNotificationParams{
		UserID:  userID,
		Type:    m.Type,
		Title:   m.Title,
		Body:    m.Body,
		LinkUrl: sql.NullString{String: m.LinkURL, Valid: m.LinkURL != ""},
	})

	if err != nil {
		return nil, err
	}
	return &nots, nil
}

// NotifyProjectParties writes m for the project's client and vendor,
// skipping excludeUserID (normally the actor). It stops at the first
// failed write.
func (n *Notification) NotifyProjectParties(ctx context.Context, projectID uuid.UUID, excludeUserID int64, m Message) error {
	p, err := n.store.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	recipients := []int64{p.ClientID}
	if p.VendorID.Valid {
		recipients = append(recipients, p.VendorID.Int64)
	}

	for _, uid := range recipients {
		if uid == excludeUserID {
			continue
		}
		if _, err := n.Create(ctx, uid, m); err != nil {
			return err
		}
	}

	n.logger.WithFields(logrus.Fields{"project_id": projectID, "type": m.Type}).Debug("project parties notified")
	return nil
}

func (n *Notification) Get(ctx context.Context, userID int64, limit int32) ([]db.Notification, error) {
	nots, err := n.store.ListNotificationsByUser(ctx, db.ListNotificationsByUserParams{
		UserID: userID,
		Limit:  limit,
	})

	if err != nil {
		return nil, err
	}
	return nots, nil
}
