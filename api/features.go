package api

import (
	"net/http"
	"strings"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/features"
	"github.com/gin-gonic/gin"
)

type Feature struct {
	server *Server
}

func (f Feature) router(server *Server) {
	f.server = server

	adminGroup := server.admin().Group("/users")
	adminGroup.PUT("/:uid/features", f.setFeature)
}

func (f *Feature) setFeature(ctx *gin.Context) {
	userID, err := apimodels.ParseID(ctx.Param("uid"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidUserID))
		return
	}
	request := struct {
		Key     string `json:"key" binding:"required"`
		Enabled *bool  `json:"enabled" binding:"required"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidFeatureInput))
		return
	}
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	key, err := features.ParseKey(strings.ToUpper(strings.TrimSpace(request.Key)))
	if err != nil {
		f.server.respondError(ctx, err)
		return
	}

	flag, err := f.server.features.Set(ctx.Request.Context(), actor, int64(userID), key, *request.Enabled)
	if err != nil {
		f.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Feature Updated", apimodels.ToFeatureFlagResponse(flag)))
}
