package api

import (
	"net/http"

	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/gin-gonic/gin"
)

type ActivityLog struct {
	server *Server
}

func (h ActivityLog) router(server *Server) {
	h.server = server

	adminGroup := server.admin()
	adminGroup.GET("/activity", h.GetRecentActivity)
}

func (h *ActivityLog) GetRecentActivity(c *gin.Context) {
	limit, offset := pageParams(c)

	logs, err := h.server.activity.GetRecent(c.Request.Context(), limit, offset)
	if err != nil {
		h.server.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, basemodels.NewSuccess("Activity logs retrieved successfully", apimodels.ToActivityCollectionResponse(logs)))
}
