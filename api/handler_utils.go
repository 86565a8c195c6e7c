package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/features"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// activeActor returns the caller, answering 401 itself when there is none.
func activeActor(ctx *gin.Context) (basemodels.Actor, bool) {
	user, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return basemodels.Actor{}, false
	}
	return basemodels.ActorFromToken(user), true
}

func uuidParam(ctx *gin.Context, name, invalidMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(invalidMsg))
		return uuid.Nil, false
	}
	return id, true
}

func pageParams(ctx *gin.Context) (limit, offset int32) {
	l, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || l <= 0 {
		l = defaultPageSize
	}
	if l > maxPageSize {
		l = maxPageSize
	}
	o, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || o < 0 {
		o = 0
	}
	if o > math.MaxInt32 {
		o = math.MaxInt32
	}
	return int32(l), int32(o)
}

// capabilities looks up the caller's feature flags. A lookup failure is
// answered with 500 and reported as !ok.
func (s *Server) capabilities(ctx *gin.Context, userID int64) (features.Capabilities, bool) {
	caps, err := s.features.Lookup(ctx.Request.Context(), userID)
	if err != nil {
		s.respondError(ctx, err)
		return nil, false
	}
	return caps, true
}
