package api

import (
	"net/http"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/dispute"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Claim struct {
	server *Server
}

func (c Claim) router(server *Server) {
	c.server = server

	serverGroupV1 := server.v1().Group("/projects")
	serverGroupV1.POST("/:id/claims", c.fileClaim)
	serverGroupV1.GET("/:id/claims", c.listClaims)

	adminGroup := server.admin().Group("/claims")
	adminGroup.PATCH("/:did", c.resolveClaim)
}

func (c *Claim) fileClaim(ctx *gin.Context) {
	projectID, ok := uuidParam(ctx, "id", apistrings.InvalidProjectID)
	if !ok {
		return
	}
	request := struct {
		ClaimType   string `json:"claimType" binding:"required"`
		Reason      string `json:"reason" binding:"required,max=4000"`
		MilestoneID string `json:"milestoneId" binding:"omitempty,uuid"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidClaimInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	claim := dispute.Claim{ClaimType: request.ClaimType, Reason: request.Reason}
	if request.MilestoneID != "" {
		claim.MilestoneID = uuid.MustParse(request.MilestoneID)
	}

	filed, err := c.server.disputes.FileClaim(ctx.Request.Context(), actor, projectID, claim)
	if err != nil {
		c.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Claim Filed Successfully", apimodels.ToDisputeResponse(filed)))
}

func (c *Claim) listClaims(ctx *gin.Context) {
	projectID, ok := uuidParam(ctx, "id", apistrings.InvalidProjectID)
	if !ok {
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	disputes, err := c.server.disputes.ListDisputes(ctx.Request.Context(), actor, projectID)
	if err != nil {
		c.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Claims Fetched Successfully", apimodels.ToDisputeCollectionResponse(disputes)))
}

func (c *Claim) resolveClaim(ctx *gin.Context) {
	disputeID, ok := uuidParam(ctx, "did", apistrings.InvalidDisputeID)
	if !ok {
		return
	}
	request := struct {
		Resolution            string `json:"resolution" binding:"required,max=4000"`
		CompensationRupees    string `json:"compensationRupees"`
		CompensationRecipient string `json:"compensationRecipient"`
		Note                  string `json:"note" binding:"max=2000"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidResolveInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	var compensation int64
	if request.CompensationRupees != "" {
		cents, err := currency.ParseRupees(request.CompensationRupees)
		if err != nil {
			c.server.respondError(ctx, err)
			return
		}
		compensation = cents
	}

	resolved, err := c.server.disputes.Resolve(ctx.Request.Context(), actor, disputeID, dispute.Resolution{
		Text:              request.Resolution,
		CompensationCents: compensation,
		Recipient:         request.CompensationRecipient,
		Note:              request.Note,
	})
	if err != nil {
		c.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Claim Resolved Successfully", apimodels.ToDisputeResponse(resolved)))
}
