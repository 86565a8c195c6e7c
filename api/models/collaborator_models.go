package models

import (
	"encoding/json"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	LinkURL   *string    `json:"link_url,omitempty"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type WebhookEndpointResponse struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	HasSecret  bool      `json:"has_secret"`
	EventTypes string    `json:"event_types"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

type ActivityResponse struct {
	ID               uuid.UUID       `json:"id"`
	Type             string          `json:"type"`
	ActorID          *ID             `json:"actor_id,omitempty"`
	ProjectID        *uuid.UUID      `json:"project_id,omitempty"`
	MilestoneID      *uuid.UUID      `json:"milestone_id,omitempty"`
	DisputeID        *uuid.UUID      `json:"dispute_id,omitempty"`
	CapitalAdvanceID *uuid.UUID      `json:"capital_advance_id,omitempty"`
	Summary          string          `json:"summary"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type FeatureFlagResponse struct {
	UserID    ID        `json:"user_id"`
	Key       string    `json:"key"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"`
	Type          string          `json:"type"`
	SubtotalCents int64           `json:"subtotal_cents"`
	FeeCents      int64           `json:"fee_cents"`
	TotalCents    int64           `json:"total_cents"`
	ProjectID     *uuid.UUID      `json:"project_id,omitempty"`
	MilestoneID   *uuid.UUID      `json:"milestone_id,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToNotificationCollectionResponse(ns []db.Notification) []NotificationResponse {
	response := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		response[i] = NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Body:      n.Body,
			LinkURL:   optString(n.LinkUrl),
			ReadAt:    optTime(n.ReadAt),
			CreatedAt: n.CreatedAt,
		}
	}
	return response
}

func ToWebhookEndpointResponse(rhs db.WebhookEndpoint) WebhookEndpointResponse {
	return WebhookEndpointResponse{
		ID:         rhs.ID,
		URL:        rhs.Url,
		HasSecret:  rhs.Secret.Valid && rhs.Secret.String != "",
		EventTypes: rhs.EventTypes,
		Enabled:    rhs.Enabled,
		CreatedAt:  rhs.CreatedAt,
	}
}

func ToWebhookEndpointCollectionResponse(eps []db.WebhookEndpoint) []WebhookEndpointResponse {
	response := make([]WebhookEndpointResponse, len(eps))
	for i, ep := range eps {
		response[i] = ToWebhookEndpointResponse(ep)
	}
	return response
}

func ToActivityCollectionResponse(logs []db.ActivityLog) []ActivityResponse {
	response := make([]ActivityResponse, len(logs))
	for i, l := range logs {
		var meta json.RawMessage
		if l.Metadata.Valid {
			meta = l.Metadata.RawMessage
		}
		response[i] = ActivityResponse{
			ID:               l.ID,
			Type:             l.Type,
			ActorID:          NullableID(l.ActorID),
			ProjectID:        optUUID(l.ProjectID),
			MilestoneID:      optUUID(l.MilestoneID),
			DisputeID:        optUUID(l.DisputeID),
			CapitalAdvanceID: optUUID(l.CapitalAdvanceID),
			Summary:          l.Summary,
			Metadata:         meta,
			CreatedAt:        l.CreatedAt,
		}
	}
	return response
}

func ToFeatureFlagResponse(rhs db.FeatureFlag) FeatureFlagResponse {
	return FeatureFlagResponse{
		UserID:    ID(rhs.UserID),
		Key:       rhs.Key,
		Enabled:   rhs.Enabled,
		UpdatedAt: rhs.UpdatedAt,
	}
}

func ToInvoiceCollectionResponse(invs []db.Invoice) []InvoiceResponse {
	response := make([]InvoiceResponse, len(invs))
	for i, inv := range invs {
		var data json.RawMessage
		if inv.Data.Valid {
			data = inv.Data.RawMessage
		}
		response[i] = InvoiceResponse{
			ID:            inv.ID,
			Number:        inv.Number,
			Type:          inv.Type,
			SubtotalCents: inv.SubtotalCents,
			FeeCents:      inv.FeeCents,
			TotalCents:    inv.TotalCents,
			ProjectID:     optUUID(inv.ProjectID),
			MilestoneID:   optUUID(inv.MilestoneID),
			Data:          data,
			CreatedAt:     inv.CreatedAt,
		}
	}
	return response
}
