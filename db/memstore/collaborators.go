package memstore

import (
	"context"
	"sort"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
)

func (q *Queries) GetFeatureFlag(_ context.Context, arg db.GetFeatureFlagParams) (db.FeatureFlag, error) {
	defer q.lock()()
	f, ok := q.t.flags[flagKey{arg.UserID, arg.Key}]
	if !ok {
		return noRows[db.FeatureFlag]()
	}
	return f, nil
}

func (q *Queries) ListFeatureFlags(_ context.Context, userID int64) ([]db.FeatureFlag, error) {
	defer q.lock()()
	out := []db.FeatureFlag{}
	for k, f := range q.t.flags {
		if k.userID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (q *Queries) UpsertFeatureFlag(_ context.Context, arg db.UpsertFeatureFlagParams) (db.FeatureFlag, error) {
	defer q.lock()()
	f := db.FeatureFlag{UserID: arg.UserID, Key: arg.Key, Enabled: arg.Enabled, UpdatedAt: q.now()}
	q.t.flags[flagKey{arg.UserID, arg.Key}] = f
	return f, nil
}

func (q *Queries) NextInvoiceNumber(_ context.Context) (int64, error) {
	defer q.lock()()
	q.t.invoiceSeq++
	return q.t.invoiceSeq, nil
}

func (q *Queries) CreateInvoice(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
	defer q.lock()()
	for _, inv := range q.t.invoices {
		if inv.Number == arg.Number {
			return db.Invoice{}, duplicate("invoices_number_key")
		}
	}
	inv := db.Invoice{
		ID:            uuid.New(),
		Number:        arg.Number,
		Type:          arg.Type,
		UserID:        arg.UserID,
		SubtotalCents: arg.SubtotalCents,
		FeeCents:      arg.FeeCents,
		TotalCents:    arg.TotalCents,
		ProjectID:     arg.ProjectID,
		MilestoneID:   arg.MilestoneID,
		Data:          arg.Data,
		CreatedAt:     q.now(),
	}
	q.t.invoices = append(q.t.invoices, inv)
	return inv, nil
}

func (q *Queries) ListInvoicesByUser(_ context.Context, arg db.ListInvoicesByUserParams) ([]db.Invoice, error) {
	defer q.lock()()
	out := []db.Invoice{}
	for _, inv := range q.t.invoices {
		if inv.UserID == arg.UserID {
			out = append(out, inv)
		}
	}
	sortByCreated(out, func(inv db.Invoice) time.Time { return inv.CreatedAt }, true)
	return page(out, arg.Limit, 0), nil
}

func (q *Queries) CreateNotification(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
	defer q.lock()()
	n := db.Notification{
		ID:        uuid.New(),
		UserID:    arg.UserID,
		Type:      arg.Type,
		Title:     arg.Title,
		Body:      arg.Body,
		LinkUrl:   arg.LinkUrl,
		CreatedAt: q.now(),
	}
	q.t.notifications = append(q.t.notifications, n)
	return n, nil
}

func (q *Queries) ListNotificationsByUser(_ context.Context, arg db.ListNotificationsByUserParams) ([]db.Notification, error) {
	defer q.lock()()
	out := []db.Notification{}
	for _, n := range q.t.notifications {
		if n.UserID == arg.UserID {
			out = append(out, n)
		}
	}
	sortByCreated(out, func(n db.Notification) time.Time { return n.CreatedAt }, true)
	return page(out, arg.Limit, 0), nil
}

func (q *Queries) CreateWebhookEndpoint(_ context.Context, arg db.CreateWebhookEndpointParams) (db.WebhookEndpoint, error) {
	defer q.lock()()
	ep := db.WebhookEndpoint{
		ID:         uuid.New(),
		UserID:     arg.UserID,
		Url:        arg.Url,
		Secret:     arg.Secret,
		EventTypes: arg.EventTypes,
		Enabled:    true,
		CreatedAt:  q.now(),
	}
	q.t.endpoints[ep.ID] = ep
	return ep, nil
}

func (q *Queries) GetWebhookEndpoint(_ context.Context, id uuid.UUID) (db.WebhookEndpoint, error) {
	defer q.lock()()
	ep, ok := q.t.endpoints[id]
	if !ok {
		return noRows[db.WebhookEndpoint]()
	}
	return ep, nil
}

func (q *Queries) ListWebhookEndpointsByUser(_ context.Context, userID int64) ([]db.WebhookEndpoint, error) {
	defer q.lock()()
	out := []db.WebhookEndpoint{}
	for _, ep := range q.t.endpoints {
		if ep.UserID == userID {
			out = append(out, ep)
		}
	}
	sortByCreated(out, func(ep db.WebhookEndpoint) time.Time { return ep.CreatedAt }, false)
	return out, nil
}

func (q *Queries) CreateWebhookEvent(_ context.Context, arg db.CreateWebhookEventParams) (db.WebhookEvent, error) {
	defer q.lock()()
	if _, ok := q.t.endpoints[arg.EndpointID]; !ok {
		return db.WebhookEvent{}, foreignKey("webhook_events_endpoint_id_fkey")
	}
	ev := db.WebhookEvent{
		ID:         uuid.New(),
		EndpointID: arg.EndpointID,
		EventType:  arg.EventType,
		Payload:    arg.Payload,
		Status:     db.WebhookPending,
		CreatedAt:  q.now(),
	}
	q.t.events[ev.ID] = ev
	return ev, nil
}

func (q *Queries) RecordWebhookAttempt(_ context.Context, arg db.RecordWebhookAttemptParams) (db.WebhookEvent, error) {
	defer q.lock()()
	ev, ok := q.t.events[arg.ID]
	if !ok {
		return noRows[db.WebhookEvent]()
	}
	now := q.now()
	ev.Status = arg.Status
	ev.ResponseStatus = arg.ResponseStatus
	ev.Attempts++
	ev.LastAttemptAt = sqlTime(now)
	if arg.Status == db.WebhookDelivered {
		ev.DeliveredAt = sqlTime(now)
	}
	q.t.events[ev.ID] = ev
	return ev, nil
}

func (q *Queries) AbandonWebhookEvent(_ context.Context, arg db.AbandonWebhookEventParams) (db.WebhookEvent, error) {
	defer q.lock()()
	ev, ok := q.t.events[arg.ID]
	if !ok {
		return noRows[db.WebhookEvent]()
	}
	ev.Status = db.WebhookFailed
	if ev.Attempts < arg.MaxAttempts {
		ev.Attempts = arg.MaxAttempts
	}
	q.t.events[ev.ID] = ev
	return ev, nil
}

func (q *Queries) ListUndeliveredWebhookEvents(_ context.Context, arg db.ListUndeliveredWebhookEventsParams) ([]db.WebhookEvent, error) {
	defer q.lock()()
	out := []db.WebhookEvent{}
	for _, ev := range q.t.events {
		if (ev.Status == db.WebhookPending || ev.Status == db.WebhookFailed) &&
			ev.Attempts < arg.MaxAttempts && ev.CreatedAt.Before(arg.CreatedBefore) {
			out = append(out, ev)
		}
	}
	sortByCreated(out, func(ev db.WebhookEvent) time.Time { return ev.CreatedAt }, false)
	return page(out, arg.MaxRows, 0), nil
}

func (q *Queries) CreateActivityLog(_ context.Context, arg db.CreateActivityLogParams) (db.ActivityLog, error) {
	defer q.lock()()
	l := db.ActivityLog{
		ID:               uuid.New(),
		Type:             arg.Type,
		ActorID:          arg.ActorID,
		ProjectID:        arg.ProjectID,
		MilestoneID:      arg.MilestoneID,
		DisputeID:        arg.DisputeID,
		CapitalAdvanceID: arg.CapitalAdvanceID,
		Summary:          arg.Summary,
		Metadata:         arg.Metadata,
		CreatedAt:        q.now(),
	}
	q.t.activity = append(q.t.activity, l)
	return l, nil
}

func (q *Queries) ListRecentActivity(_ context.Context, arg db.ListRecentActivityParams) ([]db.ActivityLog, error) {
	defer q.lock()()
	out := copySlice(q.t.activity)
	sortByCreated(out, func(l db.ActivityLog) time.Time { return l.CreatedAt }, true)
	return page(out, arg.Limit, arg.Offset), nil
}

func (q *Queries) CreateOrderItem(_ context.Context, arg db.CreateOrderItemParams) (db.OrderItem, error) {
	defer q.lock()()
	if _, ok := q.t.projects[arg.ProjectID]; !ok {
		return db.OrderItem{}, foreignKey("order_items_project_id_fkey")
	}
	now := q.now()
	it := db.OrderItem{
		ID:             uuid.New(),
		ProjectID:      arg.ProjectID,
		Label:          arg.Label,
		CurrentStage:   db.OrderStages[0],
		CurrentStageAt: now,
		CreatedAt:      now,
	}
	q.t.orderItems[it.ID] = it
	return it, nil
}

func (q *Queries) GetOrderItem(_ context.Context, id uuid.UUID) (db.OrderItem, error) {
	defer q.lock()()
	it, ok := q.t.orderItems[id]
	if !ok {
		return noRows[db.OrderItem]()
	}
	return it, nil
}

func (q *Queries) ListOrderItemsByProject(_ context.Context, projectID uuid.UUID) ([]db.OrderItem, error) {
	defer q.lock()()
	out := []db.OrderItem{}
	for _, it := range q.t.orderItems {
		if it.ProjectID == projectID {
			out = append(out, it)
		}
	}
	sortByCreated(out, func(it db.OrderItem) time.Time { return it.CreatedAt }, false)
	return out, nil
}

func (q *Queries) UpdateOrderItemStage(_ context.Context, arg db.UpdateOrderItemStageParams) (db.OrderItem, error) {
	defer q.lock()()
	it, ok := q.t.orderItems[arg.ID]
	if !ok {
		return noRows[db.OrderItem]()
	}
	it.CurrentStage = arg.CurrentStage
	it.CurrentStageAt = q.now()
	q.t.orderItems[it.ID] = it
	return it, nil
}

func (q *Queries) CreateStageUpdate(_ context.Context, arg db.CreateStageUpdateParams) (db.StageUpdate, error) {
	defer q.lock()()
	if _, ok := q.t.orderItems[arg.OrderItemID]; !ok {
		return db.StageUpdate{}, foreignKey("stage_updates_order_item_id_fkey")
	}
	su := db.StageUpdate{
		ID:          uuid.New(),
		OrderItemID: arg.OrderItemID,
		Stage:       arg.Stage,
		Note:        arg.Note,
		ActorID:     arg.ActorID,
		CreatedAt:   q.now(),
	}
	q.t.stageUpdates = append(q.t.stageUpdates, su)
	return su, nil
}
