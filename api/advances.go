package api

import (
	"net/http"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/advance"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/gin-gonic/gin"
)

type CapitalAdvance struct {
	server *Server
}

func (a CapitalAdvance) router(server *Server) {
	a.server = server

	serverGroupV1 := server.v1().Group("/projects")
	serverGroupV1.POST("/:id/capital-advances", RoleMiddleware(utils.RoleVendor), a.requestAdvance)
	serverGroupV1.GET("/:id/capital-advances", a.listAdvances)

	adminGroup := server.admin().Group("/capital-advances")
	adminGroup.PATCH("/:aid", a.decideAdvance)
}

func (a *CapitalAdvance) requestAdvance(ctx *gin.Context) {
	projectID, ok := uuidParam(ctx, "id", apistrings.InvalidProjectID)
	if !ok {
		return
	}
	request := struct {
		RequestedRupees string `json:"requestedRupees" binding:"required,rupees"`
		Note            string `json:"note" binding:"max=2000"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAdvanceInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	requestedCents, err := currency.ParsePositiveRupees(request.RequestedRupees)
	if err != nil {
		a.server.respondError(ctx, err)
		return
	}

	adv, limit, err := a.server.advances.Request(ctx.Request.Context(), actor, projectID, requestedCents, request.Note)
	if err != nil {
		a.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Capital Advance Requested", apimodels.AdvanceRequestResponse{
		Advance: apimodels.ToAdvanceResponse(adv),
		Limit:   apimodels.ToAdvanceLimitResponse(limit),
	}))
}

func (a *CapitalAdvance) listAdvances(ctx *gin.Context) {
	projectID, ok := uuidParam(ctx, "id", apistrings.InvalidProjectID)
	if !ok {
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	advances, err := a.server.advances.ListByProject(ctx.Request.Context(), actor, projectID)
	if err != nil {
		a.server.respondError(ctx, err)
		return
	}
	limit, err := a.server.advances.Limit(ctx.Request.Context(), actor, projectID)
	if err != nil {
		a.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Capital Advances Fetched Successfully", apimodels.AdvanceListResponse{
		Advances: apimodels.ToAdvanceCollectionResponse(advances),
		Limit:    apimodels.ToAdvanceLimitResponse(limit),
	}))
}

func (a *CapitalAdvance) decideAdvance(ctx *gin.Context) {
	advanceID, ok := uuidParam(ctx, "aid", apistrings.InvalidAdvanceID)
	if !ok {
		return
	}
	request := struct {
		Action         string `json:"action" binding:"required,oneof=approve reject"`
		ApprovedRupees string `json:"approvedRupees" binding:"rupees"`
		Note           string `json:"note" binding:"max=2000"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidDecisionInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	approved, err := optionalRupees(request.ApprovedRupees)
	if err != nil {
		a.server.respondError(ctx, err)
		return
	}

	adv, err := a.server.advances.Decide(ctx.Request.Context(), actor, advanceID, advance.Decision{
		Action:        request.Action,
		ApprovedCents: approved,
		Note:          request.Note,
	})
	if err != nil {
		a.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Capital Advance Updated", apimodels.ToAdvanceResponse(adv)))
}
