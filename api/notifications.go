package api

import (
	"net/http"

	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/gin-gonic/gin"
)

type Notification struct {
	server *Server
}

func (n Notification) router(server *Server) {
	n.server = server

	serverGroupV1 := server.v1()
	serverGroupV1.GET("/notifications", n.getNotifications)
}

func (n *Notification) getNotifications(ctx *gin.Context) {
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}
	limit, _ := pageParams(ctx)

	notifications, err := n.server.notifications.Get(ctx.Request.Context(), actor.UserID, limit)
	if err != nil {
		n.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Notifications Fetched Successfully", apimodels.ToNotificationCollectionResponse(notifications)))
}
