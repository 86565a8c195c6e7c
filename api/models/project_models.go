package models

import (
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/project"
	"github.com/google/uuid"
)

type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientID    ID        `json:"client_id"`
	VendorID    *ID       `json:"vendor_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type MilestoneResponse struct {
	ID            uuid.UUID  `json:"id"`
	ProjectID     uuid.UUID  `json:"project_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	AmountCents   int64      `json:"amount_cents"`
	ReleasedCents int64      `json:"released_cents"`
	Amount        string     `json:"amount"`
	Released      string     `json:"released"`
	WalletFunded  bool       `json:"wallet_funded"`
	FundedAt      *time.Time `json:"funded_at,omitempty"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	ReleasedAt    *time.Time `json:"released_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type OrderItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Label          string    `json:"label"`
	CurrentStage   string    `json:"current_stage"`
	CurrentStageAt time.Time `json:"current_stage_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	Milestones []MilestoneResponse `json:"milestones"`
	OrderItems []OrderItemResponse `json:"order_items"`
}

func ToProjectResponse(rhs db.Project) ProjectResponse {
	return ProjectResponse{
		ID:          rhs.ID,
		ClientID:    ID(rhs.ClientID),
		VendorID:    NullableID(rhs.VendorID),
		Title:       rhs.Title,
		Description: rhs.Description,
		CreatedAt:   rhs.CreatedAt,
	}
}

func ToProjectCollectionResponse(projects []db.Project) []ProjectResponse {
	response := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = ToProjectResponse(p)
	}
	return response
}

func ToMilestoneResponse(rhs db.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:            rhs.ID,
		ProjectID:     rhs.ProjectID,
		Title:         rhs.Title,
		Description:   rhs.Description,
		Status:        rhs.Status,
		AmountCents:   rhs.AmountCents,
		ReleasedCents: rhs.ReleasedCents,
		Amount:        currency.FormatCents(rhs.AmountCents),
		Released:      currency.FormatCents(rhs.ReleasedCents),
		WalletFunded:  rhs.WalletFunded,
		FundedAt:      optTime(rhs.FundedAt),
		SubmittedAt:   optTime(rhs.SubmittedAt),
		ReleasedAt:    optTime(rhs.ReleasedAt),
		CreatedAt:     rhs.CreatedAt,
	}
}

func ToOrderItemResponse(rhs db.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:             rhs.ID,
		Label:          rhs.Label,
		CurrentStage:   rhs.CurrentStage,
		CurrentStageAt: rhs.CurrentStageAt,
	}
}

func ToProjectDetailResponse(rhs project.Detail) ProjectDetailResponse {
	ms := make([]MilestoneResponse, len(rhs.Milestones))
	for i, m := range rhs.Milestones {
		ms[i] = ToMilestoneResponse(m)
	}
	items := make([]OrderItemResponse, len(rhs.OrderItems))
	for i, it := range rhs.OrderItems {
		items[i] = ToOrderItemResponse(it)
	}
	return ProjectDetailResponse{
		ProjectResponse: ToProjectResponse(rhs.Project),
		Milestones:      ms,
		OrderItems:      items,
	}
}
