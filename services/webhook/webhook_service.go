package webhook

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/providers"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sqlc-dev/pqtype"
)

// Event types fired by the escrow services.
const (
	MilestoneFunded         = "milestone.funded"
	MilestoneSubmitted      = "milestone.submitted"
	MilestoneReleased       = "milestone.released"
	MilestonePartialRelease = "milestone.partial_release"
	DisputeOpened           = "dispute.opened"
	DisputeResolved         = "dispute.resolved"
	AdvanceApproved         = "advance.approved"
)

type envelope struct {
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

type Config struct {
	Timeout     time.Duration
	MaxAttempts int32
	// InlineTries is how many attempts a fresh event gets before it is
	// left for the sweeper.
	InlineTries uint
}

const (
	initialRetryInterval = 500 * time.Millisecond
	maxRetryInterval     = 5 * time.Second
)

type WebhookService struct {
	store   db.Querier
	sender  *providers.BaseProvider
	logger  *logging.Logger
	config  Config
	backOff func() backoff.BackOff
	wg      sync.WaitGroup
}

func NewWebhookService(store db.Querier, logger *logging.Logger, config Config) *WebhookService {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 5
	}
	if config.InlineTries == 0 {
		config.InlineTries = 3
	}
	return &WebhookService{
		store:  store,
		sender: providers.NewBaseProvider(providers.Webhooks, config.Timeout, logger),
		logger: logger,
		config: config,
		backOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initialRetryInterval
			b.MaxInterval = maxRetryInterval
			return b
		},
	}
}

func (w *WebhookService) RegisterEndpoint(ctx context.Context, userID int64, rawURL, secret string, eventTypes []string) (db.WebhookEndpoint, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return db.WebhookEndpoint{}, ErrInvalidURL
	}

	cleaned := make([]string, 0, len(eventTypes))
	for _, t := range eventTypes {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}

	return w.store.CreateWebhookEndpoint(ctx, db.CreateWebhookEndpointParams{
		UserID:     userID,
		Url:        u.String(),
		Secret:     sql.NullString{String: secret, Valid: secret != ""},
		EventTypes: strings.Join(cleaned, ","),
	})
}

func (w *WebhookService) ListEndpoints(ctx context.Context, userID int64) ([]db.WebhookEndpoint, error) {
	return w.store.ListWebhookEndpointsByUser(ctx, userID)
}

// Fire records one PENDING event per enabled endpoint of userID whose
// filter accepts eventType, then delivers them in the background.
func (w *WebhookService) Fire(ctx context.Context, userID int64, eventType string, payload map[string]interface{}) error {
	endpoints, err := w.store.ListWebhookEndpointsByUser(ctx, userID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	for _, ep := range endpoints {
		if !ep.Enabled || !Matches(ep.EventTypes, eventType) {
			continue
		}
		ev, err := w.store.CreateWebhookEvent(ctx, db.CreateWebhookEventParams{
			EndpointID: ep.ID,
			EventType:  eventType,
			Payload:    pqtype.NullRawMessage{RawMessage: data, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("persist webhook event: %w", err)
		}

		w.wg.Add(1)
		go func(ep db.WebhookEndpoint, ev db.WebhookEvent) {
			defer w.wg.Done()
			w.deliverWithRetry(context.Background(), ep, ev, w.config.InlineTries)
		}(ep, ev)
	}
	return nil
}

// Wait blocks until every in-flight background delivery has finished.
func (w *WebhookService) Wait() {
	w.wg.Wait()
}

func (w *WebhookService) deliverWithRetry(ctx context.Context, ep db.WebhookEndpoint, ev db.WebhookEvent, tries uint) {
	_, err := backoff.Retry(ctx, func() (db.WebhookEvent, error) {
		updated, err := w.Deliver(ctx, ep, ev)
		if err != nil {
			return updated, err
		}
		ev = updated
		if updated.Status != db.WebhookDelivered {
			if updated.Attempts >= w.config.MaxAttempts {
				return updated, backoff.Permanent(fmt.Errorf("gave up after %d attempts", updated.Attempts))
			}
			return updated, fmt.Errorf("endpoint answered %d", updated.ResponseStatus.Int32)
		}
		return updated, nil
	}, backoff.WithBackOff(w.backOff()), backoff.WithMaxTries(tries))

	if err != nil {
		w.logger.WithFields(logrus.Fields{
			"event_id":    ev.ID,
			"endpoint_id": ep.ID,
			"event_type":  ev.EventType,
		}).WithError(err).Warn("webhook delivery failed")
	}
}

// Deliver makes a single POST attempt and records its outcome. The
// returned error is only set when the outcome could not be stored.
func (w *WebhookService) Deliver(ctx context.Context, ep db.WebhookEndpoint, ev db.WebhookEvent) (db.WebhookEvent, error) {
	status, respCode := w.post(ctx, ep, ev)

	return w.store.RecordWebhookAttempt(ctx, db.RecordWebhookAttemptParams{
		ID:             ev.ID,
		Status:         status,
		ResponseStatus: respCode,
	})
}

func (w *WebhookService) post(ctx context.Context, ep db.WebhookEndpoint, ev db.WebhookEvent) (string, sql.NullInt32) {
	data := json.RawMessage("{}")
	if ev.Payload.Valid {
		data = ev.Payload.RawMessage
	}
	body, err := json.Marshal(envelope{Event: ev.EventType, Data: data, Timestamp: time.Now().UTC()})
	if err != nil {
		return db.WebhookFailed, sql.NullInt32{}
	}

	headers := map[string]string{}
	if ep.Secret.Valid && ep.Secret.String != "" {
		headers[SignatureHeader] = Sign(ep.Secret.String, body)
	}

	resp, err := w.sender.MakeRequest(ctx, http.MethodPost, ep.Url, body, headers)
	if err != nil {
		return db.WebhookFailed, sql.NullInt32{}
	}
	defer resp.Body.Close()

	code := sql.NullInt32{Int32: int32(resp.StatusCode), Valid: true}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return db.WebhookDelivered, code
	}
	return db.WebhookFailed, code
}

// InlineWindow bounds how long a fresh event can stay in its inline retry
// loop: every try hitting the request timeout plus the longest randomized
// wait between tries. Sweeping younger events would race that loop.
func (w *WebhookService) InlineWindow() time.Duration {
	tries := time.Duration(w.config.InlineTries)
	wait := time.Duration(float64(maxRetryInterval) * (1 + backoff.DefaultRandomizationFactor))
	return tries*w.config.Timeout + (tries-1)*wait
}

// Sweep retries undelivered events older than minAge, one attempt each.
// Events whose endpoint has been disabled are marked FAILED for good.
func (w *WebhookService) Sweep(ctx context.Context, minAge time.Duration, batch int32) (int, error) {
	events, err := w.store.ListUndeliveredWebhookEvents(ctx, db.ListUndeliveredWebhookEventsParams{
		MaxAttempts:   w.config.MaxAttempts,
		CreatedBefore: time.Now().Add(-minAge),
		MaxRows:       batch,
	})
	if err != nil {
		return 0, err
	}

	endpoints := map[uuid.UUID]db.WebhookEndpoint{}
	delivered := 0
	for _, ev := range events {
		ep, ok := endpoints[ev.EndpointID]
		if !ok {
			ep, err = w.store.GetWebhookEndpoint(ctx, ev.EndpointID)
			if err != nil {
				return delivered, err
			}
			endpoints[ev.EndpointID] = ep
		}
		if !ep.Enabled {
			if _, err := w.store.AbandonWebhookEvent(ctx, db.AbandonWebhookEventParams{
				MaxAttempts: w.config.MaxAttempts,
				ID:          ev.ID,
			}); err != nil {
				return delivered, err
			}
			continue
		}
		updated, err := w.Deliver(ctx, ep, ev)
		if err != nil {
			return delivered, err
		}
		if updated.Status == db.WebhookDelivered {
			delivered++
		}
	}

	if len(events) > 0 {
		w.logger.WithFields(logrus.Fields{"pending": len(events), "delivered": delivered}).Info("webhook sweep finished")
	}
	return delivered, nil
}
