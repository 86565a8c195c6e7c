package api

import (
	"net/http"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/features"
	"github.com/gin-gonic/gin"
)

type Webhook struct {
	server *Server
}

func (w Webhook) router(server *Server) {
	w.server = server

	serverGroupV1 := server.v1().Group("/webhooks")
	serverGroupV1.POST("", w.registerEndpoint)
	serverGroupV1.GET("", w.listEndpoints)
}

func (w *Webhook) registerEndpoint(ctx *gin.Context) {
	request := struct {
		URL        string   `json:"url" binding:"required,url,max=2000"`
		Secret     string   `json:"secret" binding:"max=200"`
		EventTypes []string `json:"eventTypes" binding:"max=20"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidWebhookInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	caps, ok := w.server.capabilities(ctx, actor.UserID)
	if !ok {
		return
	}
	if !caps.Enabled(features.WebhooksEnabled) {
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.FeatureNotEnabled))
		return
	}

	endpoint, err := w.server.webhooks.RegisterEndpoint(ctx.Request.Context(), actor.UserID, request.URL, request.Secret, request.EventTypes)
	if err != nil {
		w.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Webhook Registered", apimodels.ToWebhookEndpointResponse(endpoint)))
}

func (w *Webhook) listEndpoints(ctx *gin.Context) {
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	endpoints, err := w.server.webhooks.ListEndpoints(ctx.Request.Context(), actor.UserID)
	if err != nil {
		w.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Webhooks Fetched Successfully", apimodels.ToWebhookEndpointCollectionResponse(endpoints)))
}
