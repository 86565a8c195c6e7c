package api

import (
	"net/http"
	"strings"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/gin-gonic/gin"
)

type Project struct {
	server *Server
}

func (p Project) router(server *Server) {
	p.server = server

	serverGroupV1 := server.v1().Group("/projects")
	serverGroupV1.POST("", RoleMiddleware(utils.RoleClient), p.createProject)
	serverGroupV1.GET("", p.listProjects)
	serverGroupV1.GET("/:id", p.getProject)
	serverGroupV1.POST("/:id/assign", RoleMiddleware(utils.RoleClient, utils.RoleAdmin), p.assignVendor)
	serverGroupV1.POST("/:id/milestones", RoleMiddleware(utils.RoleClient, utils.RoleAdmin), p.createMilestone)
	serverGroupV1.POST("/:id/order-items", p.createOrderItem)
}

func (p *Project) createProject(ctx *gin.Context) {
	request := struct {
		Title       string `json:"title" binding:"required,max=200"`
		Description string `json:"description" binding:"max=4000"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidProjectInput))
		return
	}

	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	project, err := p.server.projects.Create(ctx.Request.Context(), actor, request.Title, request.Description)
	if err != nil {
		p.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Project Created Successfully", apimodels.ToProjectResponse(project)))
}

func (p *Project) listProjects(ctx *gin.Context) {
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}
	limit, offset := pageParams(ctx)

	projects, err := p.server.projects.ListForUser(ctx.Request.Context(), actor, limit, offset)
	if err != nil {
		p.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Projects Fetched Successfully", apimodels.ToProjectCollectionResponse(projects)))
}

func (p *Project) getProject(ctx *gin.Context) {
	projectID, ok := uuidParam(ctx, "id", apistrings.InvalidProjectID)
	if !ok {
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	detail, err := p.server.projects.Get(ctx.Request.Context(), actor, projectID)
	if err != nil {
		p.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Project Fetched Successfully", apimodels.ToProjectDetailResponse(detail)))
}

func (p *Project) assignVendor(ctx *gin.Context) {
	projectID, ok := uuidParam(ctx, "id", apistrings.InvalidProjectID)
	if !ok {
		return
	}
	request := struct {
		VendorID apimodels.ID `json:"vendorId" binding:"required"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAssignInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	project, err := p.server.projects.AssignVendor(ctx.Request.Context(), actor, projectID, int64(request.VendorID))
	if err != nil {
		p.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Vendor Assigned Successfully", apimodels.ToProjectResponse(project)))
}

func (p *Project) createMilestone(ctx *gin.Context) {
	projectID, ok := uuidParam(ctx, "id", apistrings.InvalidProjectID)
	if !ok {
		return
	}
	request := struct {
		Title        string `json:"title" binding:"required,max=200"`
		Description  string `json:"description" binding:"max=4000"`
		AmountRupees string `json:"amountRupees" binding:"required,rupees"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidMilestoneInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	amountCents, err := currency.ParsePositiveRupees(request.AmountRupees)
	if err != nil {
		p.server.respondError(ctx, err)
		return
	}

	milestone, err := p.server.projects.CreateMilestone(ctx.Request.Context(), actor, projectID, strings.TrimSpace(request.Title), request.Description, amountCents)
	if err != nil {
		p.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Milestone Created Successfully", apimodels.ToMilestoneResponse(milestone)))
}

func (p *Project) createOrderItem(ctx *gin.Context) {
	projectID, ok := uuidParam(ctx, "id", apistrings.InvalidProjectID)
	if !ok {
		return
	}
	request := struct {
		Label string `json:"label" binding:"required,max=200"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidOrderItemInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	item, err := p.server.projects.CreateOrderItem(ctx.Request.Context(), actor, projectID, request.Label)
	if err != nil {
		p.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Order Item Created Successfully", apimodels.ToOrderItemResponse(item)))
}
