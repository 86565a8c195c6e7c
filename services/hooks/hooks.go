// Package hooks carries the best-effort collaborators that run after a
// money movement has committed. Every method is nil-safe and only logs
// failures; none of them can undo the committed work.
package hooks

import (
	"context"
	"sync"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	activitylogs "github.com/SwiftFiat/SwiftFiat-Escrow/services/activity_logs"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/invoice"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/notification"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Notifier interface {
	NotifyProjectParties(ctx context.Context, projectID uuid.UUID, excludeUserID int64, m notification.Message) error
}

type WebhookFirer interface {
	Fire(ctx context.Context, userID int64, eventType string, payload map[string]interface{}) error
}

type ActivityRecorder interface {
	Create(ctx context.Context, e activitylogs.Entry) (db.ActivityLog, error)
}

type Invoicer interface {
	Create(ctx context.Context, r invoice.Request) (db.Invoice, error)
}

type StageAdvancer interface {
	AdvanceForMilestone(ctx context.Context, projectID uuid.UUID, title string, actorID int64) (int, error)
}

// Locker serializes work on one resource across instances.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type Hooks struct {
	Notifier Notifier
	Webhooks WebhookFirer
	Activity ActivityRecorder
	Invoices Invoicer
	Stages   StageAdvancer
	Locker   Locker
	Logger   *logging.Logger

	// AsyncTimeout bounds background work started with Go.
	AsyncTimeout time.Duration

	wg sync.WaitGroup
}

func (h *Hooks) logger() *logging.Logger {
	if h.Logger == nil {
		return logging.NewNopLogger()
	}
	return h.Logger
}

// detach keeps request values but drops the request's cancellation, so
// follow-up writes are not cut short when the client goes away.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

func (h *Hooks) Notify(ctx context.Context, projectID uuid.UUID, excludeUserID int64, m notification.Message) {
	if h == nil || h.Notifier == nil {
		return
	}
	if err := h.Notifier.NotifyProjectParties(detach(ctx), projectID, excludeUserID, m); err != nil {
		h.logger().WithFields(logrus.Fields{"project_id": projectID, "type": m.Type}).WithError(err).Warn("notification failed")
	}
}

func (h *Hooks) Fire(ctx context.Context, userID int64, eventType string, payload map[string]interface{}) {
	if h == nil || h.Webhooks == nil {
		return
	}
	if err := h.Webhooks.Fire(detach(ctx), userID, eventType, payload); err != nil {
		h.logger().WithFields(logrus.Fields{"user_id": userID, "event_type": eventType}).WithError(err).Warn("webhook fire failed")
	}
}

func (h *Hooks) Record(ctx context.Context, e activitylogs.Entry) {
	if h == nil || h.Activity == nil {
		return
	}
	if _, err := h.Activity.Create(detach(ctx), e); err != nil {
		h.logger().WithFields(logrus.Fields{"type": e.Type, "actor_id": e.ActorID}).WithError(err).Warn("activity log failed")
	}
}

func (h *Hooks) Invoice(ctx context.Context, r invoice.Request) {
	if h == nil || h.Invoices == nil {
		return
	}
	if _, err := h.Invoices.Create(detach(ctx), r); err != nil {
		h.logger().WithFields(logrus.Fields{"user_id": r.UserID, "type": r.Type, "amount_cents": r.AmountCents}).WithError(err).Error("invoice emission failed")
	}
}

// AdvanceStages runs stage inference in the background.
func (h *Hooks) AdvanceStages(ctx context.Context, projectID uuid.UUID, title string, actorID int64) {
	if h == nil || h.Stages == nil {
		return
	}
	h.Go(ctx, "advance stages", func(ctx context.Context) error {
		_, err := h.Stages.AdvanceForMilestone(ctx, projectID, title, actorID)
		return err
	})
}

// Go runs fn on its own goroutine with a detached, time-bounded context.
func (h *Hooks) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	timeout := h.AsyncTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ctx, cancel := context.WithTimeout(detach(ctx), timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			h.logger().WithField("task", name).WithError(err).Warn("background task failed")
		}
	}()
}

// Wait blocks until background work started with Go has finished.
func (h *Hooks) Wait() {
	if h == nil {
		return
	}
	h.wg.Wait()
}

// WithLock runs fn under the configured Locker, or directly when there is
// none.
func (h *Hooks) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if h == nil || h.Locker == nil {
		return fn(ctx)
	}
	return h.Locker.WithLock(ctx, key, fn)
}
