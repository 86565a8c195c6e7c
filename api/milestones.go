package api

import (
	"net/http"
	"strings"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/escrow"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/features"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	actionFund    = "fund"
	actionStart   = "start"
	actionSubmit  = "submit"
	actionApprove = "approve"
	actionDispute = "dispute"
)

type Milestone struct {
	server *Server
}

func (m Milestone) router(server *Server) {
	m.server = server

	serverGroupV1 := server.v1().Group("/milestones")
	serverGroupV1.GET("/:mid", m.getMilestone)
	serverGroupV1.GET("/:mid/ledger", m.listLedger)
	serverGroupV1.POST("/:mid/actions", m.performAction)
}

type milestoneActionRequest struct {
	Action              string                `json:"action" binding:"required"`
	Note                string                `json:"note" binding:"max=2000"`
	ReleaseAmountRupees string                `json:"releaseAmountRupees"`
	Files               []escrow.EvidenceFile `json:"files" binding:"max=20"`
}

func (m *Milestone) getMilestone(ctx *gin.Context) {
	milestoneID, ok := uuidParam(ctx, "mid", apistrings.InvalidMilestoneID)
	if !ok {
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	detail, err := m.server.escrow.Get(ctx.Request.Context(), actor, milestoneID)
	if err != nil {
		m.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Milestone Fetched Successfully", apimodels.ToMilestoneDetailResponse(detail)))
}

func (m *Milestone) listLedger(ctx *gin.Context) {
	milestoneID, ok := uuidParam(ctx, "mid", apistrings.InvalidMilestoneID)
	if !ok {
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	entries, err := m.server.escrow.ListLedger(ctx.Request.Context(), actor, milestoneID)
	if err != nil {
		m.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Ledger Fetched Successfully", apimodels.ToLedgerCollectionResponse(entries)))
}

func (m *Milestone) performAction(ctx *gin.Context) {
	milestoneID, ok := uuidParam(ctx, "mid", apistrings.InvalidMilestoneID)
	if !ok {
		return
	}
	var request milestoneActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidActionInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	switch strings.ToLower(request.Action) {
	case actionFund:
		m.fund(ctx, actor, milestoneID, request)
	case actionStart:
		milestone, err := m.server.escrow.Start(ctx.Request.Context(), actor, milestoneID)
		if err != nil {
			m.server.respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, basemodels.NewSuccess("Milestone Started", apimodels.ToMilestoneResponse(milestone)))
	case actionSubmit:
		milestone, err := m.server.escrow.Submit(ctx.Request.Context(), actor, milestoneID, request.Note, request.Files)
		if err != nil {
			m.server.respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, basemodels.NewSuccess("Milestone Submitted", apimodels.ToMilestoneResponse(milestone)))
	case actionApprove:
		m.approve(ctx, actor, milestoneID, request)
	case actionDispute:
		dispute, err := m.server.escrow.Dispute(ctx.Request.Context(), actor, milestoneID, request.Note, request.Files)
		if err != nil {
			m.server.respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Dispute Opened", apimodels.ToDisputeResponse(dispute)))
	default:
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.UnknownAction))
	}
}

func (m *Milestone) fund(ctx *gin.Context, actor basemodels.Actor, milestoneID uuid.UUID, request milestoneActionRequest) {
	caps, ok := m.server.capabilities(ctx, actor.UserID)
	if !ok {
		return
	}

	milestone, err := m.server.escrow.Fund(ctx.Request.Context(), actor, milestoneID, request.Note, caps)
	if err != nil {
		m.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Milestone Funded", apimodels.ToMilestoneResponse(milestone)))
}

func (m *Milestone) approve(ctx *gin.Context, actor basemodels.Actor, milestoneID uuid.UUID, request milestoneActionRequest) {
	caps, ok := m.server.capabilities(ctx, actor.UserID)
	if !ok {
		return
	}
	// Without partial release the amount is ignored, malformed or not.
	var partial *int64
	if caps.Enabled(features.PartialRelease) {
		var err error
		if partial, err = optionalRupees(request.ReleaseAmountRupees); err != nil {
			m.server.respondError(ctx, err)
			return
		}
	}

	result, err := m.server.escrow.Release(ctx.Request.Context(), actor, milestoneID, partial, request.Note, caps)
	if err != nil {
		m.server.respondError(ctx, err)
		return
	}

	message := "Payment Released"
	if !result.FullyReleased {
		message = "Partial Payment Released"
	}
	ctx.JSON(http.StatusOK, basemodels.NewSuccess(message, apimodels.ToReleaseResponse(result)))
}
